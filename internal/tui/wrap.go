package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type runeClass int

const (
	classASCII runeClass = iota
	classDigit
	classSymbol
	classScript
)

var (
	asciiStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C"))
	symbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	scriptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

type styledRune struct {
	s     string
	width int
}

func classify(r rune) runeClass {
	switch {
	case unicode.IsDigit(r):
		return classDigit
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return classASCII
	case unicode.IsLetter(r) || unicode.IsMark(r):
		return classScript
	default:
		return classSymbol
	}
}

func styleFor(c runeClass) lipgloss.Style {
	switch c {
	case classDigit:
		return digitStyle
	case classSymbol:
		return symbolStyle
	case classScript:
		return scriptStyle
	default:
		return asciiStyle
	}
}

func buildStyledRunes(password []rune) []styledRune {
	out := make([]styledRune, 0, len(password))
	for _, r := range password {
		width := runewidth.RuneWidth(r)
		if width < 1 {
			// Zero-width marks render as a standalone cell.
			width = 1
		}
		out = append(out, styledRune{
			s:     styleFor(classify(r)).Render(string(r)),
			width: width,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into lines of at most width columns. Passwords
// have no word boundaries, so lines break at any rune.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0

	for _, item := range runes {
		if lineWidth+item.width > width && len(line) > 0 {
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
		}
		line = append(line, item)
		lineWidth += item.width
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}
