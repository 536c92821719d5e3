package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Script", "Chars", "Bits"}
	rows := [][]string{
		{"Thai", "87", "12.5"},
		{"Hiragana", "93", "6.1"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Script    Chars  Bits" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "--------  -----  ----" {
		t.Fatalf("unexpected rule line: %q", lines[1])
	}
	if lines[2] != "Thai         87  12.5" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
	if lines[3] != "Hiragana     93   6.1" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	headers := []string{"Sample", "N"}
	rows := [][]string{
		{"漢字", "1"},
		{"abcd", "2"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if lines[2] != "漢字    1" {
		t.Fatalf("expected wide runes to count double: %q", lines[2])
	}
	if lines[3] != "abcd    2" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil lines, got %v", lines)
	}
}
