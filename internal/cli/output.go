// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayQuietResults], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jmorel/convcalc/internal/conv"
	"github.com/jmorel/convcalc/internal/orchestration"
	"github.com/jmorel/convcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows memory statistics after the run.
	Verbose bool
}

// WriteResultsToFile writes the convolution results to a file as a plain
// text report.
//
// Parameters:
//   - results: The per-algorithm results to save.
//   - a, b: The input coefficient sequences.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultsToFile(results []orchestration.ConvolutionResult, a, b conv.Sequence, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Convolution Results\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# A (%d coefficients): %s\n", len(a), joinCoefficients(a))
	fmt.Fprintf(file, "# B (%d coefficients): %s\n", len(b), joinCoefficients(b))
	fmt.Fprintf(file, "\n")

	// Write one block per algorithm
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(file, "%s: error: %v\n\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(file, "%s (%s, %d coefficients):\n%s\n\n",
			res.Name, res.Duration, len(res.Result), joinCoefficients(res.Result))
	}

	return nil
}

// joinCoefficients renders a full, untruncated comma-separated coefficient
// list. File output never truncates.
func joinCoefficients(s conv.Sequence) string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(c, 10))
	}
	return b.String()
}

// FormatQuietResult formats a single result for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietResult(result orchestration.ConvolutionResult) string {
	return fmt.Sprintf("%s: %s", strings.ToLower(result.Name), joinCoefficients(result.Result))
}

// DisplayQuietResults outputs the successful results in quiet mode, one line
// per algorithm with no decoration.
func DisplayQuietResults(out io.Writer, results []orchestration.ConvolutionResult) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		fmt.Fprintln(out, FormatQuietResult(res))
	}
}

// DisplayResultsWithConfig displays results with the given output
// configuration. This is a unified function that handles all output modes.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultsWithConfig(out io.Writer, results []orchestration.ConvolutionResult, a, b conv.Sequence, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResults(out, results)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultsToFile(results, a, b, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
