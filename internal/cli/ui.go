package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/jmorel/convcalc/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// Optimized to 200ms to reduce updates and improve performance.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the decoupling of the DisplayProgress function from a specific
// spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface. This adapter allows the spinner library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of concurrent runs.
// It maintains the individual progress of each convolver and computes the
// average, which provides a consolidated progress view when multiple
// algorithms are running in parallel.
type ProgressState struct {
	progresses    []float64
	numConvolvers int
}

// NewProgressState creates and initializes a new ProgressState for tracking
// the given number of convolvers.
func NewProgressState(numConvolvers int) *ProgressState {
	return &ProgressState{
		progresses:    make([]float64, numConvolvers),
		numConvolvers: numConvolvers,
	}
}

// Update records a new progress value for a specific convolver. Updates are
// only applied for valid indices.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// convolvers. This is used to display a single, consolidated progress bar
// representing the overall progress of the run.
func (ps *ProgressState) CalculateAverage() float64 {
	var totalProgress float64
	for _, p := range ps.progresses {
		totalProgress += p
	}
	if ps.numConvolvers == 0 {
		return 0.0
	}
	return totalProgress / float64(ps.numConvolvers)
}

// progressBar generates a string representing a textual progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress consumes progress updates from the channel and renders a
// spinner with an aggregated progress bar until the channel is closed. It
// signals wg when display is complete.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numConvolvers int, out io.Writer) {
	defer wg.Done()

	if numConvolvers == 0 {
		for range progressChan {
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(fmt.Sprintf(" [%s] 0.0%%", progressBar(0, ProgressBarWidth)))
	s.Start()
	defer s.Stop()

	state := NewProgressState(numConvolvers)
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(fmt.Sprintf(" [%s] 100.0%%", progressBar(1.0, ProgressBarWidth)))
				return
			}
			state.Update(update.ConvolverIndex, update.Value)
		case <-ticker.C:
			avg := state.CalculateAverage()
			s.UpdateSuffix(fmt.Sprintf(" [%s] %.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
		}
	}
}
