package generator

import (
	"github.com/samber/oops"

	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/pool"
	"github.com/verte-zerg/glyphpass/internal/samples"
)

// GenerateMultilingual builds a password mixing characters from several
// scripts.
//
// A script count k is drawn uniformly from [minScripts, len(s)] and k scripts
// are chosen at random. Their pools, the ASCII digits and MultilingualPunct
// form the working pool for the base password. Every chosen script that the
// base password does not represent then gets one random position overwritten
// with one of its characters. Later overwrites may replace earlier ones, so
// when k approaches length a chosen script can end up missing; the result is
// returned as is rather than retried.
//
// When long applies to length, a final digit repair pass enforces
// long.MinDigits the same way GenerateWithMinDigits does.
func (g *Generator) GenerateMultilingual(length int, s samples.Samples, minScripts int, long model.LongRepair) (string, error) {
	out, err := g.multilingual(length, s, minScripts, long)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (g *Generator) multilingual(length int, s samples.Samples, minScripts int, long model.LongRepair) ([]rune, error) {
	if length <= 0 {
		return nil, oops.
			Code("invalid_length").
			With("length", length).
			Wrap(ErrInvalidLength)
	}
	if minScripts < 0 {
		return nil, oops.
			Code("invalid_min_scripts").
			With("min_scripts", minScripts).
			Wrap(ErrInvalidMinScripts)
	}
	if len(s) < minScripts {
		return nil, oops.
			Code("too_few_scripts").
			With("min_scripts", minScripts).
			With("available", len(s)).
			Wrapf(ErrTooFewScripts, "need at least %d scripts, have %d", minScripts, len(s))
	}

	k := minScripts + g.rnd.IntN(len(s)-minScripts+1)
	selected := g.pick(s.Names(), k)

	working := make(pool.Pool, 0, workingSize(s, selected))
	for _, name := range selected {
		working = append(working, s[name]...)
	}
	working = append(working, pool.Digits()...)
	working = append(working, []rune(MultilingualPunct)...)

	out, err := g.generate(length, working)
	if err != nil {
		return nil, err
	}

	base := string(out)
	for _, name := range selected {
		script := s[name]
		if represented(base, script.Set()) {
			continue
		}
		out[g.rnd.IntN(length)] = script[g.rnd.IntN(len(script))]
	}

	if long.Applies(length) {
		g.repairDigits(out, long.MinDigits)
	}
	return out, nil
}

func workingSize(s samples.Samples, selected []string) int {
	n := len(pool.Digits()) + len(MultilingualPunct)
	for _, name := range selected {
		n += len(s[name])
	}
	return n
}
