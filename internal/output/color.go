// Package output provides styled terminal rendering helpers for incpath.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess marks found references and usable directories.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError marks misses.
	ColorError = lipgloss.Color("#ef5350")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleBold = lipgloss.NewStyle().
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleMuted = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// ConfigureColor turns color off when the user asked for it (flag or config)
// or when f is not a terminal.
func ConfigureColor(flagNoColor, cfgColor bool, f *os.File) {
	if flagNoColor || !cfgColor || !IsTerminal(f) {
		SetNoColor(true)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
