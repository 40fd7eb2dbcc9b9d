package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os/signal"
	"syscall"

	"github.com/jmorel/convcalc/internal/cli"
	"github.com/jmorel/convcalc/internal/conv"
	apperrors "github.com/jmorel/convcalc/internal/errors"
	"github.com/jmorel/convcalc/internal/metrics"
	"github.com/jmorel/convcalc/internal/orchestration"
)

// benchCoefficientRange bounds the pseudo-random benchmark coefficients to
// [-1000, 1000] so products stay far from int64 overflow for realistic sizes.
const benchCoefficientRange = 1000

// runCalculate orchestrates the execution of the CLI convolution command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	// Resolve inputs: explicit sequences, or generated benchmark inputs
	seqA, seqB := a.Config.A, a.Config.B
	if a.Config.BenchSize > 0 {
		seqA, seqB = generateBenchInputs(a.Config.BenchSize, a.Config.Seed)
	}

	// Get convolvers to run
	convolversToRun := orchestration.GetConvolversToRun(a.Config, a.Factory)

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, seqA, seqB, out)
		cli.PrintExecutionMode(convolversToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	// Execute convolutions
	results := orchestration.ExecuteConvolutions(ctx, convolversToRun, seqA, seqB, progressReporter, progressOut)

	// Build output config for the CLI options
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	exitCode := a.analyzeResultsWithOutput(results, seqA, seqB, outputCfg, out)

	if a.Config.Verbose && !a.Config.Quiet {
		delta := collector.Snapshot().Delta(before)
		cli.DisplayMemoryStats(delta.HeapAlloc, delta.TotalAlloc, delta.NumGC, delta.PauseTotalNs, out)
	}

	return exitCode
}

// generateBenchInputs produces two deterministic pseudo-random sequences of
// the given length. The same seed always yields the same inputs, so timings
// are comparable across runs.
func generateBenchInputs(n int, seed int64) (conv.Sequence, conv.Sequence) {
	rng := rand.New(rand.NewSource(seed))
	a := make(conv.Sequence, n)
	b := make(conv.Sequence, n)
	for i := 0; i < n; i++ {
		a[i] = rng.Int63n(2*benchCoefficientRange+1) - benchCoefficientRange
		b[i] = rng.Int63n(2*benchCoefficientRange+1) - benchCoefficientRange
	}
	return a, b
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.ConvolutionResult, seqA, seqB conv.Sequence, outputCfg cli.OutputConfig, out io.Writer) int {
	// Quiet mode bypasses the comparison report entirely
	if outputCfg.Quiet {
		if err := cli.DisplayResultsWithConfig(out, results, seqA, seqB, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !anySucceeded(results) {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	exitCode := orchestration.AnalyzeResults(results, seqA, seqB, cli.CLIResultPresenter{}, out)

	// Handle file output for non-quiet mode
	if exitCode == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		if err := cli.DisplayResultsWithConfig(out, results, seqA, seqB, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	return exitCode
}

func anySucceeded(results []orchestration.ConvolutionResult) bool {
	for i := range results {
		if results[i].Err == nil {
			return true
		}
	}
	return false
}
