// Package server exposes the convolution engine over HTTP: a JSON API for
// running convolutions, a health endpoint, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmorel/convcalc/internal/conv"
	"github.com/jmorel/convcalc/internal/logging"
	"github.com/jmorel/convcalc/internal/profile"
)

const (
	// DefaultRequestTimeout bounds a single convolution request.
	DefaultRequestTimeout = 30 * time.Second

	// ShutdownGracePeriod is how long in-flight requests get to finish when
	// the server is stopped.
	ShutdownGracePeriod = 5 * time.Second
)

// Server serves the convolution HTTP API.
type Server struct {
	addr     string
	factory  *conv.ConvolverFactory
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
	timeout  time.Duration
}

// New creates a Server listening on addr, serving the algorithms registered
// in factory.
func New(addr string, factory *conv.ConvolverFactory, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		factory:  factory,
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
		timeout:  DefaultRequestTimeout,
	}
}

// Handler returns the fully wired HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/convolve", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleConvolve)))
	mux.HandleFunc("/healthz", s.metricsMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.handleMetrics)
	return mux
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails. On cancellation, in-flight requests get ShutdownGracePeriod to
// complete.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownGracePeriod)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// metricsMiddleware tracks request counts and in-flight requests.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.RecordRequest(r.URL.Path, r.Method)
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// ConvolveRequest is the JSON body accepted by the convolve endpoint.
type ConvolveRequest struct {
	// A and B are the input coefficient sequences.
	A []int64 `json:"a"`
	B []int64 `json:"b"`
	// Algo selects the algorithm; defaults to "linear".
	Algo string `json:"algo,omitempty"`
}

// ConvolveResponse is the JSON body returned on success.
type ConvolveResponse struct {
	Algo       string  `json:"algo"`
	Result     []int64 `json:"result"`
	DurationNs int64   `json:"duration_ns"`
}

// errorResponse is the JSON body returned on failure.
type errorResponse struct {
	Error string `json:"error"`
}

// handleConvolve runs one convolution per request.
func (s *Server) handleConvolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.security.MaxBodyBytes)
	var req ConvolveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if len(req.A) > s.security.MaxSequenceLen || len(req.B) > s.security.MaxSequenceLen {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("sequence too long (max %d coefficients)", s.security.MaxSequenceLen))
		return
	}

	algo := req.Algo
	if algo == "" {
		algo = "linear"
	}
	convolver, err := s.factory.Get(algo)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	result, duration, err := profile.MeasureErr(func() (conv.Sequence, error) {
		return convolver.Convolve(ctx, nil, req.A, req.B)
	})
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			status = http.StatusGatewayTimeout
		}
		s.logger.Error("convolution failed", err,
			logging.String("algorithm", convolver.Name()),
			logging.Int("len_a", len(req.A)),
			logging.Int("len_b", len(req.B)))
		s.writeError(w, status, err.Error())
		return
	}

	s.metrics.ObserveConvolutionDuration(convolver.Name(), duration)
	s.logger.Info("convolution served",
		logging.String("algorithm", convolver.Name()),
		logging.Int("coefficients", len(result)),
		logging.Int64("duration_ns", duration.Nanoseconds()))

	s.writeJSON(w, http.StatusOK, ConvolveResponse{
		Algo:       convolver.Name(),
		Result:     result,
		DurationNs: duration.Nanoseconds(),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
