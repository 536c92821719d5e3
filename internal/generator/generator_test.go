package generator

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/pool"
	"github.com/verte-zerg/glyphpass/internal/samples"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return g
}

func assertFromPool(t *testing.T, password string, p pool.Pool) {
	t.Helper()
	set := p.Set()
	for _, r := range password {
		if _, ok := set[r]; !ok {
			t.Fatalf("rune %q in %q is not in the pool", r, password)
		}
	}
}

func TestGenerateLengthAndMembership(t *testing.T) {
	g := newGenerator(t)
	pools := []pool.Pool{pool.Standard(), pool.Extended(), pool.Pool("x")}
	for _, p := range pools {
		for _, length := range []int{1, 16, 64, 257} {
			password, err := g.Generate(length, p)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if got := utf8.RuneCountInString(password); got != length {
				t.Fatalf("expected %d runes, got %d", length, got)
			}
			assertFromPool(t, password, p)
		}
	}
}

func TestGenerateRejectsDegenerateInput(t *testing.T) {
	g := newGenerator(t)
	for _, length := range []int{0, -1} {
		password, err := g.Generate(length, pool.Standard())
		if !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("expected ErrInvalidLength for %d, got %v", length, err)
		}
		if password != "" {
			t.Fatalf("expected no password, got %q", password)
		}
	}
	if _, err := g.Generate(8, nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestGenerateUniqueness(t *testing.T) {
	g := newGenerator(t)
	a, err := g.Generate(32, pool.Standard())
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Generate(32, pool.Standard())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two generated passwords are identical: %q", a)
	}
}

func TestGenerateCoversPool(t *testing.T) {
	g := newGenerator(t)
	p := pool.Pool("abcd")
	password, err := g.Generate(2000, p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	counts := map[rune]int{}
	for _, r := range password {
		counts[r]++
	}
	for _, r := range p {
		if counts[r] < 350 || counts[r] > 650 {
			t.Fatalf("rune %q drawn %d times out of 2000, expected roughly 500", r, counts[r])
		}
	}
}

func TestGenerateWithMinDigitsExtended(t *testing.T) {
	g := newGenerator(t)
	ext := pool.Extended()
	for i := 0; i < 50; i++ {
		password, err := g.GenerateWithMinDigits(64, ext, 4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if got := utf8.RuneCountInString(password); got != 64 {
			t.Fatalf("expected 64 runes, got %d", got)
		}
		if got := CountDigits(password); got < 4 {
			t.Fatalf("expected at least 4 digits, got %d in %q", got, password)
		}
	}
}

func TestGenerateWithMinDigitsExactRepair(t *testing.T) {
	g := newGenerator(t)
	password, err := g.GenerateWithMinDigits(10, pool.Pool("abc"), 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := CountDigits(password); got != 3 {
		t.Fatalf("expected exactly 3 repaired digits, got %d in %q", got, password)
	}
}

func TestGenerateWithMinDigitsLengthEqualsMinimum(t *testing.T) {
	g := newGenerator(t)
	password, err := g.GenerateWithMinDigits(6, pool.Pool("xyz"), 6)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := CountDigits(password); got != 6 {
		t.Fatalf("expected every position to be a digit, got %q", password)
	}
}

func TestGenerateWithMinDigitsSaturates(t *testing.T) {
	g := newGenerator(t)
	password, err := g.GenerateWithMinDigits(5, pool.Pool("xyz"), 10)
	if err != nil {
		t.Fatalf("expected saturation rather than an error, got %v", err)
	}
	if utf8.RuneCountInString(password) != 5 || CountDigits(password) != 5 {
		t.Fatalf("expected 5 digits, got %q", password)
	}
}

func TestGenerateWithMinDigitsNoop(t *testing.T) {
	g := newGenerator(t)
	password, err := g.GenerateWithMinDigits(12, pool.Pool("q"), 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if password != "qqqqqqqqqqqq" {
		t.Fatalf("expected password untouched, got %q", password)
	}
}

func TestCountDigits(t *testing.T) {
	if got := CountDigits("a1b2٣"); got != 3 {
		t.Fatalf("expected 3 digits, got %d", got)
	}
	if got := CountDigits(""); got != 0 {
		t.Fatalf("expected 0 digits, got %d", got)
	}
}

func TestCountScripts(t *testing.T) {
	s := samples.Samples{
		"Greek":    pool.Pool("αβγ"),
		"Cyrillic": pool.Pool("жзи"),
		"Thai":     pool.Pool("กข"),
	}
	if got := CountScripts("αж12", s); got != 2 {
		t.Fatalf("expected 2 scripts, got %d", got)
	}
	if got := CountScripts("abc", s); got != 0 {
		t.Fatalf("expected 0 scripts, got %d", got)
	}
}

func TestPresentScripts(t *testing.T) {
	s := samples.Samples{
		"Greek": pool.Pool([]rune("αβγδ")),
		"Latin": pool.Pool([]rune("abcd")),
	}
	got := PresentScripts("xxα1", s)
	if len(got) != 1 || got[0] != "Greek" {
		t.Fatalf("unexpected scripts %v", got)
	}
	if got := PresentScripts("aβ", s); len(got) != 2 || got[0] != "Greek" || got[1] != "Latin" {
		t.Fatalf("unexpected scripts %v", got)
	}
	if got := PresentScripts("123", s); got != nil {
		t.Fatalf("expected no scripts, got %v", got)
	}
}

func TestRunVariants(t *testing.T) {
	g := newGenerator(t)
	pools := Pools{
		Standard: pool.Standard(),
		Extended: pool.Extended(),
		Custom:   pool.Pool("01"),
		Samples:  samples.Build(),
	}
	cases := []struct {
		variant  model.Variant
		poolSize int
	}{
		{model.VariantStandard, pools.Standard.Len()},
		{model.VariantExtended, pools.Extended.Len()},
		{model.VariantCustom, 2},
		{model.VariantMultilingual, pools.Samples.TotalSize()},
	}
	for _, tc := range cases {
		t.Run(string(tc.variant), func(t *testing.T) {
			res, err := g.Run(model.Request{
				Variant:    tc.variant,
				Length:     32,
				MinDigits:  2,
				MinScripts: 3,
			}, pools)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if utf8.RuneCountInString(res.Password) != 32 {
				t.Fatalf("expected 32 runes, got %q", res.Password)
			}
			if res.Run.PoolSize != tc.poolSize {
				t.Fatalf("expected pool size %d, got %d", tc.poolSize, res.Run.PoolSize)
			}
			if res.Run.EntropyBits <= 0 {
				t.Fatalf("expected positive entropy, got %f", res.Run.EntropyBits)
			}
			if res.Run.Digits != CountDigits(res.Password) {
				t.Fatalf("digit count mismatch: %d", res.Run.Digits)
			}
			if res.Run.Digits < 2 {
				t.Fatalf("expected at least 2 digits, got %d in %q", res.Run.Digits, res.Password)
			}
			if res.Run.Variant != tc.variant || res.Run.Length != 32 {
				t.Fatalf("unexpected run metadata: %+v", res.Run)
			}
			if res.Run.CreatedAt.IsZero() {
				t.Fatalf("expected creation time")
			}
		})
	}
}

func TestRunMultilingualMinDigits(t *testing.T) {
	g := newGenerator(t)
	pools := Pools{Samples: samples.Build()}
	cfg := model.Config{MinDigits: 20, MinScripts: 5}
	for i := 0; i < 50; i++ {
		res, err := g.Run(cfg.Request(model.VariantMultilingual, 32), pools)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if res.Run.Digits < 20 {
			t.Fatalf("expected at least 20 digits, got %d in %q", res.Run.Digits, res.Password)
		}
		if utf8.RuneCountInString(res.Password) != 32 {
			t.Fatalf("expected 32 runes, got %q", res.Password)
		}
	}
}

func TestRunMultilingualMinDigitsSaturates(t *testing.T) {
	g := newGenerator(t)
	res, err := g.Run(model.Request{
		Variant:    model.VariantMultilingual,
		Length:     8,
		MinDigits:  12,
		MinScripts: 1,
	}, Pools{Samples: samples.Build()})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Run.Digits != 8 {
		t.Fatalf("expected every position to be a digit, got %q", res.Password)
	}
}

func TestRunErrors(t *testing.T) {
	g := newGenerator(t)
	if _, err := g.Run(model.Request{Variant: "emoji", Length: 8}, Pools{}); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
	if _, err := g.Run(model.Request{Variant: model.VariantCustom, Length: 8}, Pools{}); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool for missing custom pool, got %v", err)
	}
	_, err := g.Run(model.Request{Variant: model.VariantStandard, Length: 0}, Pools{Standard: pool.Standard()})
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}
