// Package app wires the application together: it parses configuration,
// selects the execution mode (one-shot run, REPL, HTTP server, completion
// generation), and drives it to an exit code.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/jmorel/convcalc/internal/cli"
	"github.com/jmorel/convcalc/internal/config"
	"github.com/jmorel/convcalc/internal/conv"
	apperrors "github.com/jmorel/convcalc/internal/errors"
	"github.com/jmorel/convcalc/internal/logging"
	"github.com/jmorel/convcalc/internal/server"
	"github.com/jmorel/convcalc/internal/ui"
)

// Application represents the convcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   *conv.ConvolverFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom ConvolverFactory for the application.
func WithFactory(f *conv.ConvolverFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = conv.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "convcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Serve {
		return a.runServe(ctx)
	}

	if a.Config.REPL {
		return a.runREPL()
	}

	return a.runCalculate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	availableAlgos := a.Factory.List()
	if err := cli.GenerateCompletion(out, a.Config.Completion, availableAlgos); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runServe starts the HTTP API server and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(a.ErrWriter, "server")
	srv := server.New(a.Config.Addr, a.Factory, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session on the standard streams.
func (a *Application) runREPL() int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
