package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jmorel/convcalc/internal/config"
	"github.com/jmorel/convcalc/internal/conv"
	"github.com/jmorel/convcalc/internal/format"
	"github.com/jmorel/convcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the input sequences, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - a, b: The resolved input sequences (after benchmark generation).
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, a, b conv.Sequence, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Convolving %sA%s (%d coefficients) with %sB%s (%d coefficients), timeout %s%s%s.\n",
		ui.ColorMagenta(), ui.ColorReset(), len(a),
		ui.ColorMagenta(), ui.ColorReset(), len(b),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "A = %s\n", format.FormatSequence(a))
	fmt.Fprintf(out, "B = %s\n", format.FormatSequence(b))
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs
// comparison).
//
// Parameters:
//   - convolvers: The slice of convolvers that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(convolvers []conv.Convolver, out io.Writer) {
	var modeDesc string
	if len(convolvers) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single run with the %s%s%s algorithm",
			ui.ColorGreen(), convolvers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
