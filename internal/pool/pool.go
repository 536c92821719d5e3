// Package pool builds the character pools passwords are drawn from.
package pool

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

const (
	lowercase   = "abcdefghijklmnopqrstuvwxyz"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Pool is an ordered sequence of candidate runes. Duplicates are allowed and
// weight selection toward the repeated rune.
type Pool []rune

// Len returns the number of entries, counting duplicates.
func (p Pool) Len() int {
	return len(p)
}

// String returns the pool as a string in pool order.
func (p Pool) String() string {
	return string(p)
}

// Contains reports whether r appears in the pool.
func (p Pool) Contains(r rune) bool {
	for _, c := range p {
		if c == r {
			return true
		}
	}
	return false
}

// Set returns the distinct members of the pool.
func (p Pool) Set() map[rune]struct{} {
	set := make(map[rune]struct{}, len(p))
	for _, r := range p {
		set[r] = struct{}{}
	}
	return set
}

// Block is a named half-open code point range [Lo, Hi).
type Block struct {
	Name string
	Lo   rune
	Hi   rune
}

// Size returns the number of code points the block spans.
func (b Block) Size() int {
	if b.Hi <= b.Lo {
		return 0
	}
	return int(b.Hi - b.Lo)
}

// Table returns the block as a stride-1 range table.
func (b Block) Table() *unicode.RangeTable {
	if b.Size() == 0 {
		return &unicode.RangeTable{}
	}
	hi := b.Hi - 1
	if hi <= 0xFFFF {
		return &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(b.Lo), Hi: uint16(hi), Stride: 1}},
		}
	}
	if b.Lo > 0xFFFF {
		return &unicode.RangeTable{
			R32: []unicode.Range32{{Lo: uint32(b.Lo), Hi: uint32(hi), Stride: 1}},
		}
	}
	return &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: uint16(b.Lo), Hi: 0xFFFF, Stride: 1}},
		R32: []unicode.Range32{{Lo: 0x10000, Hi: uint32(hi), Stride: 1}},
	}
}

// IsEligible reports whether r may appear in a password: printable and not
// whitespace.
func IsEligible(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Standard returns the 94 printable ASCII characters: lowercase, uppercase,
// digits, then punctuation.
func Standard() Pool {
	return Pool(lowercase + uppercase + digits + punctuation)
}

// Digits returns the ASCII digits.
func Digits() Pool {
	return Pool(digits)
}

// FromRanges returns the eligible code points of each block, in block order
// and ascending code point order within a block. Overlapping blocks
// contribute their shared code points more than once.
func FromRanges(blocks ...Block) Pool {
	out := make(Pool, 0, totalSize(blocks))
	for _, b := range blocks {
		rangetable.Visit(b.Table(), func(r rune) {
			if IsEligible(r) {
				out = append(out, r)
			}
		})
	}
	return out
}

// Extended returns the standard pool followed by the eligible code points of
// every block in Blocks. The result depends only on the Unicode tables the
// binary was built with.
func Extended() Pool {
	std := Standard()
	ext := FromRanges(Blocks()...)
	out := make(Pool, 0, len(std)+len(ext))
	out = append(out, std...)
	return append(out, ext...)
}

func totalSize(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		total += b.Size()
	}
	return total
}
