package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to every HTTP response.
type SecurityConfig struct {
	// EnableCORS toggles Cross-Origin Resource Sharing headers.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to call the API ("*" for any).
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to browsers.
	AllowedMethods []string
	// MaxSequenceLen caps the length of each input sequence accepted by the
	// convolve endpoint.
	MaxSequenceLen int
	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64
}

// DefaultSecurityConfig returns the standard hardening configuration.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		MaxSequenceLen: 1 << 20,
		MaxBodyBytes:   32 << 20,
	}
}

// SecurityMiddleware applies security headers and CORS handling before
// delegating to next. OPTIONS preflight requests are answered directly.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin returns the CORS origin value to advertise, or "" when the
// request origin is not allowed. A wildcard entry matches any request,
// including ones without an Origin header.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
