package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/samber/oops"
)

func TestBitsKnownValue(t *testing.T) {
	got, err := Bits(64, 94)
	if err != nil {
		t.Fatalf("bits: %v", err)
	}
	if math.Abs(got-419.49) > 0.01 {
		t.Fatalf("expected ~419.49 bits, got %.4f", got)
	}
	if got, _ := Bits(10, 1); got != 0 {
		t.Fatalf("expected single-symbol pool to carry no entropy, got %f", got)
	}
	if got, _ := Bits(0, 94); got != 0 {
		t.Fatalf("expected zero length to carry no entropy, got %f", got)
	}
}

func TestBitsMonotonic(t *testing.T) {
	prev := -1.0
	for length := 1; length <= 256; length *= 2 {
		got := MustBits(length, 94)
		if got <= prev {
			t.Fatalf("expected bits to grow with length, %f <= %f at %d", got, prev, length)
		}
		prev = got
	}
	prev = -1.0
	for size := 1; size <= 20000; size *= 3 {
		got := MustBits(64, size)
		if got <= prev && size > 1 {
			t.Fatalf("expected bits to grow with pool size, %f <= %f at %d", got, prev, size)
		}
		prev = got
	}
}

func TestBitsInvalid(t *testing.T) {
	_, err := Bits(64, 0)
	if !errors.Is(err, ErrInvalidPoolSize) {
		t.Fatalf("expected ErrInvalidPoolSize, got %v", err)
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		t.Fatalf("expected oops error, got %T", err)
	}
	if oopsErr.Code() != "invalid_pool_size" {
		t.Fatalf("unexpected code %v", oopsErr.Code())
	}
	if _, err := Bits(64, -3); !errors.Is(err, ErrInvalidPoolSize) {
		t.Fatalf("expected ErrInvalidPoolSize for negative pool, got %v", err)
	}
	if _, err := Bits(-1, 94); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestMustBitsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty pool")
		}
	}()
	MustBits(1, 0)
}
