// Package display formats passwords for terminal output.
package display

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultWidth is the number of characters per display line.
const DefaultWidth = 64

// Chunk splits password into lines of width characters joined by "\n". The
// last line may be shorter. Passwords no longer than width, and any width
// below 1, are returned unchanged.
func Chunk(password string, width int) string {
	if width <= 0 {
		return password
	}
	runes := []rune(password)
	if len(runes) <= width {
		return password
	}
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return strings.Join(lines, "\n")
}

// Columns returns the number of terminal columns s occupies.
func Columns(s string) int {
	return runewidth.StringWidth(s)
}

// TerminalWidth returns the width of stdout, or fallback when stdout is not a
// terminal.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// FitWidth returns the largest chunk width, capped at want, for which every
// line of password fits in cols terminal columns.
func FitWidth(password string, want, cols int) int {
	if want <= 0 || cols <= 0 {
		return want
	}
	widest := 1
	for _, r := range password {
		widest = max(widest, runewidth.RuneWidth(r))
	}
	return min(want, max(cols/widest, 1))
}
