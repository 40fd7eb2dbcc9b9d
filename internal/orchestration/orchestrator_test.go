package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jmorel/convcalc/internal/config"
	"github.com/jmorel/convcalc/internal/conv"
	apperrors "github.com/jmorel/convcalc/internal/errors"
)

// stubPresenter records presentation calls so tests can assert on the
// orchestration flow without a real terminal presenter.
type stubPresenter struct {
	tableCalls   int
	presented    []ConvolutionResult
	handledErr   error
	handleReturn int
}

func (p *stubPresenter) PresentComparisonTable(results []ConvolutionResult, out io.Writer) {
	p.tableCalls++
}

func (p *stubPresenter) PresentResult(result ConvolutionResult, out io.Writer) {
	p.presented = append(p.presented, result)
}

func (p *stubPresenter) HandleError(err error, _ time.Duration, _ io.Writer) int {
	p.handledErr = err
	return p.handleReturn
}

func TestExecuteConvolutions(t *testing.T) {
	t.Parallel()

	a := conv.Sequence{1, 2, 3, 4}
	b := conv.Sequence{5, 6, 7, 8}
	convolvers := conv.NewDefaultFactory().GetAll()

	var buf bytes.Buffer
	results := ExecuteConvolutions(context.Background(), convolvers, a, b, NullProgressReporter{}, &buf)

	if len(results) != len(convolvers) {
		t.Fatalf("got %d results, want %d", len(results), len(convolvers))
	}

	want := map[string]conv.Sequence{
		"Circular": {66, 68, 66, 60},
		"Linear":   {5, 16, 34, 60, 61, 52, 32},
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: unexpected error: %v", res.Name, res.Err)
			continue
		}
		if !reflect.DeepEqual(res.Result, want[res.Name]) {
			t.Errorf("%s = %v, want %v", res.Name, res.Result, want[res.Name])
		}
		if res.Duration < 0 {
			t.Errorf("%s: negative duration %v", res.Name, res.Duration)
		}
	}
}

func TestExecuteConvolutionsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := make(conv.Sequence, 4096)
	b := make(conv.Sequence, 4096)
	convolvers := conv.NewDefaultFactory().GetAll()

	results := ExecuteConvolutions(ctx, convolvers, a, b, NullProgressReporter{}, io.Discard)
	for _, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", res.Name, res.Err)
		}
	}
}

func TestAnalyzeResultsSuccess(t *testing.T) {
	t.Parallel()

	a := conv.Sequence{1, 2, 3, 4}
	b := conv.Sequence{5, 6, 7, 8}
	results := []ConvolutionResult{
		{Name: "Linear", Result: conv.Sequence{5, 16, 34, 60, 61, 52, 32}, Duration: 2 * time.Millisecond},
		{Name: "Circular", Result: conv.Sequence{66, 68, 66, 60}, Duration: time.Millisecond},
	}

	presenter := &stubPresenter{}
	var buf bytes.Buffer
	code := AnalyzeResults(results, a, b, presenter, &buf)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if presenter.tableCalls != 1 {
		t.Errorf("comparison table presented %d times", presenter.tableCalls)
	}
	if len(presenter.presented) != 2 {
		t.Errorf("presented %d results, want 2", len(presenter.presented))
	}
	if !strings.Contains(buf.String(), "Success") {
		t.Errorf("missing success status in output: %q", buf.String())
	}
}

func TestAnalyzeResultsSortsByDuration(t *testing.T) {
	t.Parallel()

	a := conv.Sequence{1, 2, 3, 4}
	b := conv.Sequence{5, 6, 7, 8}
	results := []ConvolutionResult{
		{Name: "Linear", Result: conv.Sequence{5, 16, 34, 60, 61, 52, 32}, Duration: 5 * time.Millisecond},
		{Name: "Circular", Result: conv.Sequence{66, 68, 66, 60}, Duration: time.Millisecond},
	}

	presenter := &stubPresenter{}
	AnalyzeResults(results, a, b, presenter, io.Discard)

	if results[0].Name != "Circular" {
		t.Errorf("fastest result should sort first, got %q", results[0].Name)
	}
}

func TestAnalyzeResultsMismatch(t *testing.T) {
	t.Parallel()

	a := conv.Sequence{1, 2, 3, 4}
	b := conv.Sequence{5, 6, 7, 8}
	results := []ConvolutionResult{
		{Name: "Linear", Result: conv.Sequence{5, 16, 34, 60, 61, 52, 32}, Duration: time.Millisecond},
		// Corrupted circular result: must trip the wrap identity check.
		{Name: "Circular", Result: conv.Sequence{66, 68, 66, 61}, Duration: time.Millisecond},
	}

	presenter := &stubPresenter{}
	var buf bytes.Buffer
	code := AnalyzeResults(results, a, b, presenter, &buf)

	if code != apperrors.ExitErrorMismatch {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(buf.String(), "CRITICAL") {
		t.Errorf("missing mismatch status in output: %q", buf.String())
	}
	if len(presenter.presented) != 0 {
		t.Errorf("inconsistent results should not be presented, got %d", len(presenter.presented))
	}
}

func TestAnalyzeResultsAllFailed(t *testing.T) {
	t.Parallel()

	failure := errors.New("boom")
	results := []ConvolutionResult{
		{Name: "Linear", Err: failure},
		{Name: "Circular", Err: failure},
	}

	presenter := &stubPresenter{handleReturn: apperrors.ExitErrorGeneric}
	var buf bytes.Buffer
	code := AnalyzeResults(results, conv.Sequence{1}, conv.Sequence{2}, presenter, &buf)

	if code != apperrors.ExitErrorGeneric {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !errors.Is(presenter.handledErr, failure) {
		t.Errorf("handled error = %v, want %v", presenter.handledErr, failure)
	}
	if !strings.Contains(buf.String(), "Failure") {
		t.Errorf("missing failure status in output: %q", buf.String())
	}
}

func TestAnalyzeResultsPartialFailure(t *testing.T) {
	t.Parallel()

	// Unequal input lengths: circular legitimately fails while linear
	// succeeds, and there is no identity to cross-check.
	a := conv.Sequence{1, 2, 3}
	b := conv.Sequence{4, 5}
	results := []ConvolutionResult{
		{Name: "Linear", Result: conv.Sequence{4, 13, 22, 15}, Duration: time.Millisecond},
		{Name: "Circular", Err: conv.ErrLengthMismatch},
	}

	presenter := &stubPresenter{}
	code := AnalyzeResults(results, a, b, presenter, io.Discard)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if len(presenter.presented) != 1 || presenter.presented[0].Name != "Linear" {
		t.Errorf("only the successful result should be presented, got %+v", presenter.presented)
	}
}

func TestGetConvolversToRun(t *testing.T) {
	t.Parallel()

	factory := conv.NewDefaultFactory()

	tests := []struct {
		name string
		algo string
		want []string
	}{
		{"all algorithms", "all", []string{"Circular", "Linear"}},
		{"single algorithm", "linear", []string{"Linear"}},
		{"case insensitive", "CIRCULAR", []string{"Circular"}},
		{"unknown algorithm", "fft", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.AppConfig{Algo: tt.algo}
			convolvers := GetConvolversToRun(cfg, factory)

			var names []string
			for _, c := range convolvers {
				names = append(names, c.Name())
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("got %v, want %v", names, tt.want)
			}
		})
	}
}
