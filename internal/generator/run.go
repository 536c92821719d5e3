package generator

import (
	"time"

	"github.com/samber/oops"

	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/pool"
	"github.com/verte-zerg/glyphpass/internal/samples"
	"github.com/verte-zerg/glyphpass/internal/stats"
)

// Pools holds the prebuilt inputs a Run may draw from. Custom is only needed
// for the custom variant.
type Pools struct {
	Standard pool.Pool
	Extended pool.Pool
	Custom   pool.Pool
	Samples  samples.Samples
}

// Run generates one password for req and describes it. MinDigits applies to
// every variant; for multilingual it runs after the long repair.
//
// The entropy of a multilingual password is computed over the combined size
// of every registered script, not the randomly chosen subset, so it stays
// comparable across runs.
func (g *Generator) Run(req model.Request, pools Pools) (model.Result, error) {
	var (
		password string
		poolSize int
		err      error
	)
	switch req.Variant {
	case model.VariantStandard:
		poolSize = pools.Standard.Len()
		password, err = g.GenerateWithMinDigits(req.Length, pools.Standard, req.MinDigits)
	case model.VariantExtended:
		poolSize = pools.Extended.Len()
		password, err = g.GenerateWithMinDigits(req.Length, pools.Extended, req.MinDigits)
	case model.VariantCustom:
		poolSize = pools.Custom.Len()
		password, err = g.GenerateWithMinDigits(req.Length, pools.Custom, req.MinDigits)
	case model.VariantMultilingual:
		poolSize = pools.Samples.TotalSize()
		var out []rune
		out, err = g.multilingual(req.Length, pools.Samples, req.MinScripts, req.Long)
		if err == nil {
			g.repairDigits(out, req.MinDigits)
			password = string(out)
		}
	default:
		return model.Result{}, oops.
			Code("unknown_variant").
			With("variant", req.Variant).
			Errorf("unknown variant %q", req.Variant)
	}
	if err != nil {
		return model.Result{}, err
	}

	bits, err := stats.Bits(req.Length, poolSize)
	if err != nil {
		return model.Result{}, err
	}
	return model.Result{
		Password: password,
		Run: model.Run{
			CreatedAt:   time.Now().UTC(),
			Variant:     req.Variant,
			Length:      req.Length,
			PoolSize:    poolSize,
			EntropyBits: bits,
			Digits:      CountDigits(password),
			Scripts:     CountScripts(password, pools.Samples),
		},
	}, nil
}
