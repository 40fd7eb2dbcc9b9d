package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/jmorel/convcalc/internal/conv"
	"github.com/jmorel/convcalc/internal/progress"
)

// ConvolutionResult encapsulates the outcome of a single convolution run.
// It serves as the shared domain type between the orchestration and
// presentation layers.
type ConvolutionResult struct {
	// Name is the identifier of the algorithm used (e.g., "Linear").
	Name string
	// Result is the computed coefficient sequence. It is nil if an error
	// occurred.
	Result conv.Sequence
	// Duration is the time taken to complete the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner,
// progress bar) while orchestration focuses on coordinating the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// channel is closed, then signal wg.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, numConvolvers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan progress.Update, numConvolvers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, numConvolvers int, out io.Writer) {
	f(wg, updates, numConvolvers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the update channel without displaying anything. Useful for
// quiet mode and testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
	}
}

// ResultPresenter defines the interface for presenting run results,
// allowing different output formats without modifying the orchestration
// logic.
type ResultPresenter interface {
	ErrorHandler

	// PresentComparisonTable displays the per-algorithm summary table.
	PresentComparisonTable(results []ConvolutionResult, out io.Writer)

	// PresentResult displays one algorithm's coefficient sequence.
	PresentResult(result ConvolutionResult, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
