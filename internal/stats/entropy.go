// Package stats contains entropy estimates and reporting.
package stats

import (
	"errors"
	"math"

	"github.com/samber/oops"
)

var (
	// ErrInvalidPoolSize is returned when a pool has no members.
	ErrInvalidPoolSize = errors.New("pool size must be at least 1")
	// ErrInvalidLength is returned for a negative password length.
	ErrInvalidLength = errors.New("length must not be negative")
)

// Bits returns length * log2(poolSize), the entropy of a password built from
// length independent uniform draws over poolSize symbols.
//
// The figure is an upper bound. Repair passes that force digits or script
// characters into a password lower the true entropy slightly below it.
func Bits(length, poolSize int) (float64, error) {
	if poolSize <= 0 {
		return 0, oops.
			Code("invalid_pool_size").
			With("pool_size", poolSize).
			Wrap(ErrInvalidPoolSize)
	}
	if length < 0 {
		return 0, oops.
			Code("invalid_length").
			With("length", length).
			Wrap(ErrInvalidLength)
	}
	return float64(length) * math.Log2(float64(poolSize)), nil
}

// MustBits is Bits for callers that already validated their inputs.
func MustBits(length, poolSize int) float64 {
	bits, err := Bits(length, poolSize)
	if err != nil {
		panic(err)
	}
	return bits
}
