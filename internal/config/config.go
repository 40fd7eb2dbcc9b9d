// Package config defines the application configuration and its resolution
// chain: CLI flags take precedence over CONVCALC_* environment variables,
// which take precedence over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/jmorel/convcalc/internal/errors"
	"github.com/jmorel/convcalc/internal/format"
)

// Default input polynomials: A(x) = 1 + 2x + 3x^2 + 4x^3 and
// B(x) = 5 + 6x + 7x^2 + 8x^3. Running the binary without flags convolves
// exactly these.
const (
	DefaultSequenceA = "1,2,3,4"
	DefaultSequenceB = "5,6,7,8"
)

// Default values for the remaining settings.
const (
	DefaultAlgo    = "all"
	DefaultTimeout = 1 * time.Minute
	DefaultSeed    = 1
	DefaultAddr    = ":8080"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "CONVCALC_"

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// A and B are the input coefficient sequences.
	A []int64
	B []int64
	// Algo selects the algorithm: "linear", "circular", or "all".
	Algo string
	// BenchSize, when positive, replaces A and B with two pseudo-random
	// sequences of this length.
	BenchSize int
	// Seed drives the benchmark input generator.
	Seed int64
	// Timeout bounds a single run.
	Timeout time.Duration
	// Quiet suppresses everything but the results.
	Quiet bool
	// Verbose adds memory statistics after the run.
	Verbose bool
	// OutputFile, when set, receives the results as a text report.
	OutputFile string
	// NoColor disables ANSI colors.
	NoColor bool
	// REPL starts the interactive session instead of a one-shot run.
	REPL bool
	// Serve starts the HTTP API instead of a one-shot run.
	Serve bool
	// Addr is the HTTP listen address used with Serve.
	Addr string
	// Completion requests a shell completion script ("bash", "zsh", "fish").
	Completion string
}

// ParseConfig parses command-line arguments and environment overrides into
// an AppConfig. availableAlgos is used for validation and usage text.
//
// Returns flag.ErrHelp when -h/-help was requested, and a ConfigError for
// invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var (
		rawA       = fs.String("a", DefaultSequenceA, "comma-separated coefficients of the first polynomial")
		rawB       = fs.String("b", DefaultSequenceB, "comma-separated coefficients of the second polynomial")
		algo       = fs.String("algo", DefaultAlgo, "algorithm to run: linear, circular, or all")
		benchSize  = fs.Int("n", 0, "benchmark mode: convolve two random sequences of this length")
		seed       = fs.Int64("seed", DefaultSeed, "seed for benchmark input generation")
		timeout    = fs.Duration("timeout", DefaultTimeout, "maximum execution time")
		quiet      = fs.Bool("q", false, "quiet mode: print results only")
		verbose    = fs.Bool("v", false, "verbose mode: include memory statistics")
		outputFile = fs.String("o", "", "write the results to this file")
		noColor    = fs.Bool("no-color", false, "disable colored output")
		repl       = fs.Bool("repl", false, "start the interactive session")
		serve      = fs.Bool("serve", false, "start the HTTP API server")
		addr       = fs.String("addr", DefaultAddr, "HTTP listen address (with -serve)")
		completion = fs.String("completion", "", "generate a completion script: bash, zsh, or fish")
	)

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Computes the linear (polynomial product) and circular (positive\n")
		fmt.Fprintf(errWriter, "wrapped) convolution of two integer sequences, timing each run.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{
		Algo:       *algo,
		BenchSize:  *benchSize,
		Seed:       *seed,
		Timeout:    *timeout,
		Quiet:      *quiet,
		Verbose:    *verbose,
		OutputFile: *outputFile,
		NoColor:    *noColor,
		REPL:       *repl,
		Serve:      *serve,
		Addr:       *addr,
		Completion: *completion,
	}

	applyEnvOverrides(&cfg, fs, rawA, rawB)

	a, err := format.ParseSequence(*rawA)
	if err != nil {
		return AppConfig{}, apperrors.NewConfigError("flag -a: %v", err)
	}
	b, err := format.ParseSequence(*rawB)
	if err != nil {
		return AppConfig{}, apperrors.NewConfigError("flag -b: %v", err)
	}
	cfg.A, cfg.B = a, b

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the rest of the application cannot act on.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Algo != "all" && !contains(availableAlgos, cfg.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: all, %s)",
			cfg.Algo, join(availableAlgos))
	}
	if cfg.BenchSize < 0 {
		return apperrors.NewConfigError("flag -n must be positive, got %d", cfg.BenchSize)
	}
	if cfg.BenchSize == 0 {
		if len(cfg.A) == 0 {
			return apperrors.NewConfigError("flag -a: sequence must not be empty")
		}
		if len(cfg.B) == 0 {
			return apperrors.NewConfigError("flag -b: sequence must not be empty")
		}
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("flag -timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Completion != "" && cfg.Completion != "bash" && cfg.Completion != "zsh" && cfg.Completion != "fish" {
		return apperrors.NewConfigError("unsupported completion shell %q", cfg.Completion)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func join(list []string) string {
	out := ""
	for i, v := range list {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}
