package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestClassify(t *testing.T) {
	cases := map[rune]runeClass{
		'a':      classASCII,
		'Z':      classASCII,
		'7':      classDigit,
		'\u0663': classDigit,
		'!':      classSymbol,
		'€':      classSymbol,
		'Ж':      classScript,
		'あ':      classScript,
		'\u0301': classScript,
	}
	for r, want := range cases {
		if got := classify(r); got != want {
			t.Fatalf("classify(%q) = %d, want %d", r, got, want)
		}
	}
}

func TestBuildStyledRunesStylesByClass(t *testing.T) {
	runes := buildStyledRunes([]rune("a7!Ж"))
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	if runes[0].s != asciiStyle.Render("a") {
		t.Fatalf("expected ascii style for first rune")
	}
	if runes[1].s != digitStyle.Render("7") {
		t.Fatalf("expected digit style for second rune")
	}
	if runes[2].s != symbolStyle.Render("!") {
		t.Fatalf("expected symbol style for third rune")
	}
	if runes[3].s != scriptStyle.Render("Ж") {
		t.Fatalf("expected script style for fourth rune")
	}
}

func TestBuildStyledRunesWidths(t *testing.T) {
	runes := buildStyledRunes([]rune("a漢\u0301"))
	if runes[0].width != 1 || runes[1].width != 2 || runes[2].width != 1 {
		t.Fatalf("unexpected widths %d %d %d", runes[0].width, runes[1].width, runes[2].width)
	}
}

func TestWrapStyledRunesBreaksAtWidth(t *testing.T) {
	out := wrapStyledRunes(buildStyledRunes([]rune("abcdefghij")), 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for i, want := range []int{4, 4, 2} {
		if got := lipgloss.Width(lines[i]); got != want {
			t.Fatalf("line %d: expected width %d, got %d", i, want, got)
		}
	}
}

func TestWrapStyledRunesWideRunes(t *testing.T) {
	out := wrapStyledRunes(buildStyledRunes([]rune("漢字漢字漢")), 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 5 {
			t.Fatalf("line %d exceeds width: %d", i, w)
		}
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := buildStyledRunes([]rune("abc"))
	if got := wrapStyledRunes(runes, 0); got != renderStyledRunes(runes) {
		t.Fatalf("expected unwrapped output")
	}
	if strings.Contains(wrapStyledRunes(runes, 0), "\n") {
		t.Fatalf("expected a single line")
	}
}
