package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jmorel/convcalc/internal/conv"
	apperrors "github.com/jmorel/convcalc/internal/errors"
	"github.com/jmorel/convcalc/internal/profile"
	"github.com/jmorel/convcalc/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking convolution
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteConvolutions orchestrates the concurrent execution of one or more
// convolution algorithms over the same input pair.
//
// It manages the lifecycle of the convolution goroutines, times each run,
// collects the results, and coordinates the display of progress updates. This
// function is the core of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - convolvers: A slice of convolvers to execute.
//   - a, b: The input coefficient sequences.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []ConvolutionResult: A slice containing the result of each run.
func ExecuteConvolutions(ctx context.Context, convolvers []conv.Convolver, a, b conv.Sequence, progressReporter ProgressReporter, out io.Writer) []ConvolutionResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]ConvolutionResult, len(convolvers))
	progressChan := make(chan progress.Update, len(convolvers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(convolvers), out)

	for i, c := range convolvers {
		idx, convolver := i, c
		g.Go(func() error {
			report := progress.ChannelCallback(progressChan, idx)
			res, duration, err := profile.MeasureErr(func() (conv.Sequence, error) {
				return convolver.Convolve(ctx, report, a, b)
			})
			results[idx] = ConvolutionResult{
				Name: convolver.Name(), Result: res, Duration: duration, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeResults processes the results from the executed algorithms and
// generates a summary report.
//
// It sorts the results by execution time, displays a comparative table, prints
// each algorithm's coefficient sequence, and cross-checks the runs through the
// wrap identity: reducing the linear convolution modulo x^n - 1 must reproduce
// the circular convolution whenever both inputs have length n.
//
// Parameters:
//   - results: The slice of convolution results to analyze.
//   - a, b: The input sequences the results were computed from.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []ConvolutionResult, a, b conv.Sequence, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstError error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the convolution.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	if !resultsConsistent(results, a, b) {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The circular convolution does not match the wrapped linear convolution.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	for _, res := range results {
		if res.Err == nil {
			presenter.PresentResult(res, out)
		}
	}
	return apperrors.ExitSuccess
}

// resultsConsistent verifies the wrap identity between the linear and circular
// results. When either algorithm did not run (or failed), or the inputs have
// different lengths, there is nothing to compare and the results are
// trivially consistent.
func resultsConsistent(results []ConvolutionResult, a, b conv.Sequence) bool {
	if len(a) != len(b) || len(a) == 0 {
		return true
	}

	var linear, circular conv.Sequence
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		switch res.Name {
		case "Linear":
			linear = res.Result
		case "Circular":
			circular = res.Result
		}
	}
	if linear == nil || circular == nil {
		return true
	}

	wrapped := conv.WrapLinear(linear, len(a))
	if len(wrapped) != len(circular) {
		return false
	}
	for i := range wrapped {
		if wrapped[i] != circular[i] {
			return false
		}
	}
	return true
}
