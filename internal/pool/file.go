package pool

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FilterFunc returns true when a rune should be kept.
type FilterFunc func(rune) bool

// LoadFile reads a custom pool from path. Each line contributes its runes in
// order; surrounding whitespace and blank lines are ignored and runes that are
// not eligible are dropped.
func LoadFile(path string) (Pool, error) {
	return LoadFileFiltered(path, IsEligible)
}

// LoadFileFiltered is LoadFile with a caller-supplied filter. The filter is
// applied after the eligibility check.
func LoadFileFiltered(path string, keep FilterFunc) (Pool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only pool file.
			_ = cerr
		}
	}()

	var out Pool
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, r := range line {
			if !IsEligible(r) {
				continue
			}
			if keep != nil && !keep(r) {
				continue
			}
			out = append(out, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("pool file %s has no eligible characters", path)
	}
	return out, nil
}
