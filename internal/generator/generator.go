// Package generator builds random passwords from character pools.
package generator

import (
	"errors"
	"unicode"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/samber/oops"

	"github.com/verte-zerg/glyphpass/internal/pool"
	"github.com/verte-zerg/glyphpass/internal/samples"
)

// MultilingualPunct is mixed into every multilingual working pool.
const MultilingualPunct = "!@#$%^&*()-_=+[]{}|;:,.<>?"

var (
	// ErrInvalidLength is returned for a non-positive password length.
	ErrInvalidLength = errors.New("password length must be at least 1")
	// ErrEmptyPool is returned when there is nothing to draw from.
	ErrEmptyPool = errors.New("character pool is empty")
	// ErrTooFewScripts is returned when the registry cannot satisfy the
	// requested script diversity.
	ErrTooFewScripts = errors.New("not enough scripts available")
	// ErrInvalidMinScripts is returned for a negative script minimum.
	ErrInvalidMinScripts = errors.New("minimum script count must not be negative")
)

// Generator draws passwords from a cryptographically secure PRNG. It is not
// safe for concurrent use.
type Generator struct {
	rnd *rand.PRNG
}

// New returns a Generator backed by a freshly seeded ChaCha20 PRNG.
func New() (*Generator, error) {
	p, err := rand.NewPRNG()
	if err != nil {
		return nil, oops.Code("prng_seed").Wrapf(err, "failed to seed PRNG")
	}
	return &Generator{rnd: p}, nil
}

// Generate draws length runes independently and uniformly, with replacement,
// from p.
func (g *Generator) Generate(length int, p pool.Pool) (string, error) {
	out, err := g.generate(length, p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// GenerateWithMinDigits generates a password and then, while it holds fewer
// than minDigits digits, overwrites a random not-yet-chosen non-digit position
// with a random ASCII digit. The repair saturates: once every position is a
// digit it stops without error, even if minDigits exceeds length.
func (g *Generator) GenerateWithMinDigits(length int, p pool.Pool, minDigits int) (string, error) {
	out, err := g.generate(length, p)
	if err != nil {
		return "", err
	}
	g.repairDigits(out, minDigits)
	return string(out), nil
}

func (g *Generator) generate(length int, p pool.Pool) ([]rune, error) {
	if length <= 0 {
		return nil, oops.
			Code("invalid_length").
			With("length", length).
			Wrap(ErrInvalidLength)
	}
	if len(p) == 0 {
		return nil, oops.Code("empty_pool").Wrap(ErrEmptyPool)
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = p[g.rnd.IntN(len(p))]
	}
	return out, nil
}

// repairDigits is a single bounded pass: each missing digit consumes one
// distinct non-digit position.
func (g *Generator) repairDigits(out []rune, minDigits int) {
	have := CountDigits(string(out))
	if have >= minDigits {
		return
	}
	positions := make([]int, 0, len(out)-have)
	for i, r := range out {
		if !unicode.IsDigit(r) {
			positions = append(positions, i)
		}
	}
	digits := pool.Digits()
	for need := minDigits - have; need > 0 && len(positions) > 0; need-- {
		k := g.rnd.IntN(len(positions))
		out[positions[k]] = digits[g.rnd.IntN(len(digits))]
		positions[k] = positions[len(positions)-1]
		positions = positions[:len(positions)-1]
	}
}

// pick returns a uniform random subset of size k from names. names is not
// modified.
func (g *Generator) pick(names []string, k int) []string {
	shuffled := append([]string(nil), names...)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}

// CountDigits returns the number of decimal digits in s, including non-ASCII
// decimal digits.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// CountScripts returns how many scripts of s have at least one character in
// password.
func CountScripts(password string, s samples.Samples) int {
	return len(PresentScripts(password, s))
}

// PresentScripts lists the scripts of s with at least one character in
// password, in sorted order.
func PresentScripts(password string, s samples.Samples) []string {
	var names []string
	for _, name := range s.Names() {
		if represented(password, s[name].Set()) {
			names = append(names, name)
		}
	}
	return names
}

func represented(password string, set map[rune]struct{}) bool {
	for _, r := range password {
		if _, ok := set[r]; ok {
			return true
		}
	}
	return false
}
