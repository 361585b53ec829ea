package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for the different result statuses.
type ColorScheme struct {
	Passed    *color.Color
	Failed    *color.Color
	Error     *color.Color
	Skipped   *color.Color
	Latency   *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Passed:    color.New(color.FgGreen, color.Bold),
		Failed:    color.New(color.FgRed, color.Bold),
		Error:     color.New(color.FgRed),
		Skipped:   color.New(color.FgYellow),
		Latency:   color.New(color.FgCyan),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	scheme.Passed.DisableColor()
	scheme.Failed.DisableColor()
	scheme.Error.DisableColor()
	scheme.Skipped.DisableColor()
	scheme.Latency.DisableColor()
	scheme.Highlight.DisableColor()
	return scheme
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// SuccessIcon returns a checkmark symbol with appropriate color.
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color.
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// WarningIcon returns a warning symbol with appropriate color.
func WarningIcon(noColor bool) string {
	if noColor {
		return "⚠"
	}
	return color.New(color.FgYellow).Sprint("⚠")
}
