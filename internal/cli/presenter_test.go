package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jmorel/convcalc/internal/conv"
	apperrors "github.com/jmorel/convcalc/internal/errors"
	"github.com/jmorel/convcalc/internal/orchestration"
	"github.com/jmorel/convcalc/internal/ui"
)

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme(true)

	results := []orchestration.ConvolutionResult{
		{Name: "Circular", Result: conv.Sequence{66, 68, 66, 60}, Duration: 50 * time.Microsecond},
		{Name: "Linear", Err: conv.ErrLengthMismatch},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)

	output := buf.String()
	for _, want := range []string{"Comparison Summary", "Algorithm", "Duration", "Status", "Circular", "Linear", "Success", "Failure"} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q:\n%s", want, output)
		}
	}
}

func TestPresentComparisonTableZeroDuration(t *testing.T) {
	ui.InitTheme(true)

	results := []orchestration.ConvolutionResult{
		{Name: "Linear", Result: conv.Sequence{5}, Duration: 0},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)

	if !strings.Contains(buf.String(), "< 1µs") {
		t.Errorf("zero duration should render as '< 1µs':\n%s", buf.String())
	}
}

func TestPresentResult(t *testing.T) {
	ui.InitTheme(true)

	result := orchestration.ConvolutionResult{
		Name:     "Linear",
		Result:   conv.Sequence{5, 16, 34, 60, 61, 52, 32},
		Duration: time.Millisecond,
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(result, &buf)

	output := buf.String()
	for _, want := range []string{"Linear", "7 coefficients", "[5 16 34 60 61 52 32]"} {
		if !strings.Contains(output, want) {
			t.Errorf("result output missing %q:\n%s", want, output)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	got := CLIResultPresenter{}.FormatDuration(500 * time.Microsecond)
	if got != "500µs" {
		t.Errorf("FormatDuration = %q, want 500µs", got)
	}
}

func TestHandleError(t *testing.T) {
	ui.InitTheme(true)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"generic", conv.ErrLengthMismatch, apperrors.ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := CLIResultPresenter{}.HandleError(tt.err, time.Second, &buf)
			if got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(1024*1024, 10*1024*1024, 3, 1500000, &buf)

	output := buf.String()
	for _, want := range []string{"Memory Stats", "Peak heap", "Total allocated", "GC cycles"} {
		if !strings.Contains(output, want) {
			t.Errorf("memory stats missing %q:\n%s", want, output)
		}
	}
}
