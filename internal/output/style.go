package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorsEnabled is decided once: color only when stdout is a terminal and
// NO_COLOR is unset.
var colorsEnabled = (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
	os.Getenv("NO_COLOR") == ""

var (
	branchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func render(style lipgloss.Style, text string) string {
	if !colorsEnabled {
		return text
	}
	return style.Render(text)
}

// BranchName colors a branch name
func BranchName(name string) string {
	return render(branchStyle, name)
}

// Dim makes text dim/gray
func Dim(text string) string {
	return render(dimStyle, text)
}

// Success colors text for successful outcomes
func Success(text string) string {
	return render(successStyle, text)
}

// Conflict colors text for conflict outcomes
func Conflict(text string) string {
	return render(conflictStyle, text)
}

// Failed colors text for failed outcomes
func Failed(text string) string {
	return render(failedStyle, text)
}
