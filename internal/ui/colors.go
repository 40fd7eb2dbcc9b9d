package ui

// Color accessors return the active theme's escape code for each semantic
// category. They read the current theme on every call so a theme switch
// takes effect immediately.

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary accent color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the informational color.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the highlight color used for user-supplied values.
func ColorMagenta() string { return GetCurrentTheme().Highlight }

// ColorGrey returns the secondary color.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
