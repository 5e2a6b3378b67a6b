package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

// MessageFrame wraps the fully revealed message in a rounded box sized to
// its content, truncating lines that would overflow the terminal.
func MessageFrame(message string) string {
	maxWidth := 76
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 {
		maxWidth = w - 8
	}

	lines := strings.Split(message, "\n")
	width := 0
	for i, line := range lines {
		if runewidth.StringWidth(line) > maxWidth {
			lines[i] = ansi.Truncate(line, maxWidth, "…")
		}
		if w := runewidth.StringWidth(lines[i]); w > width {
			width = w
		}
	}
	return frameStyle.Width(width).Render(strings.Join(lines, "\n"))
}
