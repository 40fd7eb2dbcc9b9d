// Package cli provides the command-line presentation layer, including the
// REPL (Read-Eval-Print Loop) for interactive convolution sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jmorel/convcalc/internal/conv"
	"github.com/jmorel/convcalc/internal/format"
	"github.com/jmorel/convcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the default algorithm used by the conv command.
	DefaultAlgo string
	// Timeout is the maximum duration for each run.
	Timeout time.Duration
}

// REPL represents an interactive convolution session.
type REPL struct {
	config      REPLConfig
	factory     *conv.ConvolverFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance backed by the given factory.
func NewREPL(factory *conv.ConvolverFactory, config REPLConfig) *REPL {
	currentAlgo := config.DefaultAlgo
	if currentAlgo == "" || currentAlgo == "all" {
		// Pick the first registered algorithm as default
		if keys := factory.List(); len(keys) > 0 {
			currentAlgo = keys[0]
		}
	}

	return &REPL{
		config:      config,
		factory:     factory,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"conv> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s∗ Convolution Calculator - Interactive Mode%s           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sconv <a> <b>%s     - Convolve two sequences with the current algorithm\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s      - Change algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.getAlgoList())
	fmt.Fprintf(r.out, "  %scompare <a> <b>%s  - Run all algorithms on the same inputs\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s             - List available algorithms\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s      - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "\nSequences are comma-separated integers, e.g. %sconv 1,2,3,4 5,6,7,8%s\n", ui.ColorCyan(), ui.ColorReset())
}

// getAlgoList returns a comma-separated list of available algorithms.
func (r *REPL) getAlgoList() string {
	return strings.Join(r.factory.List(), ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "conv", "c":
		r.cmdConv(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}

	return true
}

// parseSequenceArgs parses two sequence arguments, reporting usage errors
// to the session output. The usage string names the invoking command.
func (r *REPL) parseSequenceArgs(args []string, usage string) (conv.Sequence, conv.Sequence, bool) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return nil, nil, false
	}
	a, err := format.ParseSequence(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid sequence %q: %v%s\n", ui.ColorRed(), args[0], err, ui.ColorReset())
		return nil, nil, false
	}
	b, err := format.ParseSequence(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid sequence %q: %v%s\n", ui.ColorRed(), args[1], err, ui.ColorReset())
		return nil, nil, false
	}
	return a, b, true
}

// cmdConv handles the "conv" command.
func (r *REPL) cmdConv(args []string) {
	a, b, ok := r.parseSequenceArgs(args, "conv <a> <b>")
	if !ok {
		return
	}

	convolver, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Convolving with %s%s%s...\n",
		ui.ColorCyan(), convolver.Name(), ui.ColorReset())

	start := time.Now()
	result, err := convolver.Convolve(ctx, nil, a, b)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time:         %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Coefficients: %s%d%s\n", ui.ColorCyan(), len(result), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorGreen(), format.FormatSequence(result), ui.ColorReset())
	fmt.Fprintln(r.out)
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	name := strings.ToLower(args[0])
	convolver, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), convolver.Name(), ui.ColorReset())
}

// cmdCompare handles the "compare" command.
func (r *REPL) cmdCompare(args []string) {
	a, b, ok := r.parseSequenceArgs(args, "compare <a> <b>")
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "\n%sComparison:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	for _, name := range r.factory.List() {
		convolver, err := r.factory.Get(name)
		if err != nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)

		start := time.Now()
		result, err := convolver.Convolve(ctx, nil, a, b)
		duration := time.Since(start)
		cancel()

		if err != nil {
			fmt.Fprintf(r.out, "  %s%-10s%s: %sError - %v%s\n",
				ui.ColorYellow(), name, ui.ColorReset(),
				ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		fmt.Fprintf(r.out, "  %s%-10s%s: %s%10s%s  %s\n",
			ui.ColorYellow(), name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset(),
			format.FormatSequence(result))
	}

	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		convolver, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), convolver.Description())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm: %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:   %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}
