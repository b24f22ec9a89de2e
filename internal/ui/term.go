package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Major courses: bold cyan
	colorMajor = color.New(color.FgCyan, color.Bold)

	// General education: plain white
	colorGeneral = color.New(color.FgWhite)

	// Electives: dim/grey
	colorElective = color.New(color.FgWhite, color.Faint)

	// Conflicts: red to make them impossible to miss
	colorConflict = color.New(color.FgRed, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatCategory formats text according to the course category.
func formatCategory(category, s string) string {
	switch category {
	case "major":
		return colorMajor.Sprint(s)
	case "general":
		return colorGeneral.Sprint(s)
	default:
		return colorElective.Sprint(s)
	}
}

// formatConflict formats text for conflicting courses.
func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
