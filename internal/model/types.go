// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Variant selects which pool a password is drawn from.
type Variant string

const (
	VariantStandard     Variant = "standard"
	VariantExtended     Variant = "extended"
	VariantMultilingual Variant = "multilingual"
	VariantCustom       Variant = "custom"
)

// Variants lists the built-in variants in report order.
var Variants = []Variant{VariantStandard, VariantExtended, VariantMultilingual}

// ParseVariant parses a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VariantStandard, VariantExtended, VariantMultilingual, VariantCustom:
		return v, nil
	}
	return "", fmt.Errorf("unknown variant %q (want standard, extended, multilingual or custom)", s)
}

// Label returns a human-readable name for report headings.
func (v Variant) Label() string {
	switch v {
	case VariantStandard:
		return "Standard ASCII"
	case VariantExtended:
		return "Extended Unicode"
	case VariantMultilingual:
		return "Multilingual"
	case VariantCustom:
		return "Custom pool"
	default:
		return string(v)
	}
}

// LongRepair forces a minimum digit count on multilingual passwords of one
// exact length. A zero Length disables it.
type LongRepair struct {
	Length    int
	MinDigits int
}

// Applies reports whether the repair runs for a password of the given length.
func (l LongRepair) Applies(length int) bool {
	return l.Length > 0 && l.MinDigits > 0 && length == l.Length
}

// Config defines generation settings.
type Config struct {
	Lengths     []int
	MinDigits   int
	MinScripts  int
	Long        LongRepair
	Width       int
	PoolFile    string
	History     bool
	HistoryPath string
}

// Request builds the generation request for one password. Extended and custom
// passwords get the long-length digit floor on top of MinDigits.
func (c Config) Request(variant Variant, length int) Request {
	minDigits := c.MinDigits
	switch variant {
	case VariantExtended, VariantCustom:
		if c.Long.Applies(length) && c.Long.MinDigits > minDigits {
			minDigits = c.Long.MinDigits
		}
	}
	return Request{
		Variant:    variant,
		Length:     length,
		MinDigits:  minDigits,
		MinScripts: c.MinScripts,
		Long:       c.Long,
	}
}

// Request describes a single generation call.
type Request struct {
	Variant    Variant
	Length     int
	MinDigits  int
	MinScripts int
	Long       LongRepair
}

// Run is the metadata of one generated password. It never carries the
// password itself.
type Run struct {
	ID          int64
	CreatedAt   time.Time
	Variant     Variant
	Length      int
	PoolSize    int
	EntropyBits float64
	Digits      int
	Scripts     int
}

// Result pairs a generated password with its metadata.
type Result struct {
	Password string
	Run      Run
}

// VariantAggregate summarizes recorded runs of one variant.
type VariantAggregate struct {
	Variant     Variant
	Runs        int
	AvgLength   float64
	AvgEntropy  float64
	MaxEntropy  float64
	LastCreated time.Time
}
