package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorMode selects whether output is styled
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DetectColor reports whether styled output should be written to output
func DetectColor(output *os.File) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return false
	}

	// Check terminal color support
	return termenv.ColorProfile() != termenv.Ascii
}

// Configure applies mode to lipgloss and pterm and reports whether color is on
func Configure(mode ColorMode, output *os.File) bool {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	default:
		color = DetectColor(output)
	}

	if color {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		pterm.EnableStyling()
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}
	return color
}
