package pool

import (
	"os"
	"path/filepath"
	"testing"
	"unicode"
)

func TestStandardPool(t *testing.T) {
	std := Standard()
	if std.Len() != 94 {
		t.Fatalf("expected 94 characters, got %d", std.Len())
	}
	seen := map[rune]struct{}{}
	for _, r := range std {
		if r < '!' || r > '~' {
			t.Fatalf("unexpected rune %q in standard pool", r)
		}
		if _, ok := seen[r]; ok {
			t.Fatalf("duplicate rune %q in standard pool", r)
		}
		seen[r] = struct{}{}
	}
	if std[0] != 'a' || std[26] != 'A' || std[52] != '0' || std[62] != '!' {
		t.Fatalf("unexpected pool order: %q", std.String())
	}
}

func TestExtendedPoolEligible(t *testing.T) {
	ext := Extended()
	if ext.Len() <= Standard().Len() {
		t.Fatalf("expected extended pool to be larger than standard, got %d", ext.Len())
	}
	for i, r := range ext {
		if !IsEligible(r) {
			t.Fatalf("rune %U at %d is not printable non-whitespace", r, i)
		}
	}
	if string(ext[:94]) != Standard().String() {
		t.Fatalf("expected extended pool to start with the standard pool")
	}
	for _, r := range []rune{'é', 'Ж', 'ก', 'あ', '가', '€', '✓'} {
		if !ext.Contains(r) {
			t.Fatalf("expected extended pool to contain %q", r)
		}
	}
	for _, r := range []rune{'\u2000', '\u200B', '\u2028', '\u0600', '\u3000'} {
		if ext.Contains(r) {
			t.Fatalf("expected extended pool to exclude %U", r)
		}
	}
}

func TestExtendedPoolDeterministic(t *testing.T) {
	a := Extended()
	b := Extended()
	if a.Len() != b.Len() {
		t.Fatalf("pool sizes differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pools differ at %d: %U vs %U", i, a[i], b[i])
		}
	}
	setA, setB := a.Set(), b.Set()
	if len(setA) != len(setB) {
		t.Fatalf("distinct members differ: %d vs %d", len(setA), len(setB))
	}
}

func TestFromRangesHalfOpen(t *testing.T) {
	got := FromRanges(Block{Name: "digits", Lo: '0', Hi: '9'})
	if got.String() != "012345678" {
		t.Fatalf("expected half-open range, got %q", got.String())
	}
	if got := FromRanges(Block{Name: "empty", Lo: 'b', Hi: 'a'}); len(got) != 0 {
		t.Fatalf("expected empty pool for inverted block, got %q", got.String())
	}
}

func TestFromRangesKeepsOverlap(t *testing.T) {
	got := FromRanges(
		Block{Name: "a", Lo: 'a', Hi: 'd'},
		Block{Name: "b", Lo: 'c', Hi: 'e'},
	)
	if got.String() != "abccd" {
		t.Fatalf("expected overlapping ranges to repeat, got %q", got.String())
	}
}

func TestFromRangesSupplementary(t *testing.T) {
	got := FromRanges(Block{Name: "emoji", Lo: 0x1F600, Hi: 0x1F603})
	if len(got) != 3 || got[0] != 0x1F600 {
		t.Fatalf("unexpected supplementary pool: %U", got)
	}
}

func TestBlocksWellFormed(t *testing.T) {
	for _, b := range Blocks() {
		if b.Name == "" {
			t.Fatalf("block %U-%U has no name", b.Lo, b.Hi)
		}
		if b.Size() <= 0 {
			t.Fatalf("block %s is empty", b.Name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.txt")
	content := "abc\n\n  ΩЖ \n\u200bx\t y\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pool file: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load pool: %v", err)
	}
	if got.String() != "abcΩЖxy" {
		t.Fatalf("unexpected pool %q", got.String())
	}
}

func TestLoadFileFiltered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.txt")
	if err := os.WriteFile(path, []byte("a1b2c3\n"), 0o644); err != nil {
		t.Fatalf("write pool file: %v", err)
	}
	got, err := LoadFileFiltered(path, unicode.IsDigit)
	if err != nil {
		t.Fatalf("load pool: %v", err)
	}
	if got.String() != "123" {
		t.Fatalf("unexpected pool %q", got.String())
	}
}

func TestLoadFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.txt")
	if err := os.WriteFile(path, []byte("\n \n\u200b\n"), 0o644); err != nil {
		t.Fatalf("write pool file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for pool without eligible characters")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
