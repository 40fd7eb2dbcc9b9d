// Package ui provides the terminal color theme used by the CLI output.
// Themes are plain ANSI escape sequences; the NO_COLOR environment variable
// and the -no-color flag disable them entirely.
package ui
