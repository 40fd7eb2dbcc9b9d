package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Name      string   // flag name without "-" (e.g., "algo")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "sequence", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from the algorithm list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion
// generation.
var flagRegistry = []FlagCompletion{
	{Name: "help", Help: "Show help message"},
	{Name: "version", Help: "Show version information"},
	{Name: "a", Help: "Coefficients of the first polynomial", ValueName: "sequence"},
	{Name: "b", Help: "Coefficients of the second polynomial", ValueName: "sequence"},
	{Name: "algo", Help: "Algorithm to run", IsAlgo: true, ValueName: "algorithm"},
	{Name: "n", Help: "Benchmark mode input length", Values: []string{"256", "1024", "4096", "16384"}, ValueName: "length"},
	{Name: "seed", Help: "Benchmark input seed", ValueName: "seed"},
	{Name: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Name: "q", Help: "Quiet mode for scripts"},
	{Name: "v", Help: "Verbose mode with memory statistics"},
	{Name: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Name: "no-color", Help: "Disable colored output"},
	{Name: "repl", Help: "Start the interactive session"},
	{Name: "serve", Help: "Start the HTTP API server"},
	{Name: "addr", Help: "HTTP listen address", Values: []string{":8080", "localhost:8080"}, ValueName: "address"},
	{Name: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified
// shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - algorithms: List of available algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// formatAlgoList joins algorithm names with space separators.
func formatAlgoList(algorithms []string) string {
	return strings.Join(algorithms, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	// Build opts string from registry
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, "-"+f.Name)
	}

	// Build case entries from registry: algo first, then file flags, then
	// flags with static values.
	var caseBody strings.Builder
	writeCase := func(pattern, body string) {
		caseBody.WriteString("        ")
		caseBody.WriteString(pattern)
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	for _, f := range flagRegistry {
		if f.IsAlgo {
			writeCase("-"+f.Name, `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`)
		}
	}
	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			filePatterns = append(filePatterns, "-"+f.Name)
		}
	}
	if len(filePatterns) > 0 {
		writeCase(strings.Join(filePatterns, "|"), `COMPREPLY=( $(compgen -f -- "${cur}") )`)
	}
	for _, f := range flagRegistry {
		if !f.IsAlgo && !f.IsFile && len(f.Values) > 0 {
			writeCase("-"+f.Name, fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")))
		}
	}

	script := fmt.Sprintf(`# Bash completion script for convcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_convcalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available algorithms
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _convcalc_completions convcalc
`, strings.Join(opts, " "), formatAlgoList(algorithms), caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	// Build _arguments entries from registry
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef convcalc

# Zsh completion script for convcalc
# Add this to your ~/.zshrc or place in $fpath

_convcalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_convcalc "$@"
`, formatAlgoList(algorithms), strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	// Build the value suffix
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if f.IsAlgo {
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		// Value-taking flag with no suggestions (e.g., -seed)
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	return fmt.Sprintf("        '-%s[%s]%s'", f.Name, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for convcalc")
	lines = append(lines, "# Add this to ~/.config/fish/completions/convcalc.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c convcalc -f")
	lines = append(lines, "")

	algoList := formatAlgoList(algorithms)
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	_, err := fmt.Fprint(out, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete
// command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	var parts []string
	parts = append(parts, "complete -c convcalc")

	if len(f.Name) == 1 {
		parts = append(parts, fmt.Sprintf("-s %s", f.Name))
	} else {
		parts = append(parts, fmt.Sprintf("-o %s", f.Name))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if f.IsAlgo {
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		// Takes a value but no suggestions (e.g., -seed)
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}
