package stats

import (
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/glyphpass/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	last := len(sparkChars) - 1
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(last)))
		b.WriteByte(sparkChars[min(max(idx, 0), last)])
	}
	return b.String()
}

// EntropySeries returns the entropy of each run, oldest first.
func EntropySeries(runs []model.Run) []float64 {
	out := make([]float64, len(runs))
	for i, r := range runs {
		out[i] = r.EntropyBits
	}
	return out
}

// EntropyByVariant groups run entropies per variant, keeping run order.
func EntropyByVariant(runs []model.Run) map[model.Variant][]float64 {
	out := map[model.Variant][]float64{}
	for _, r := range runs {
		out[r.Variant] = append(out[r.Variant], r.EntropyBits)
	}
	return out
}

// RenderEntropyCurves plots run entropy and its moving average over window
// runs. A zero totalWidth fits the terminal.
func RenderEntropyCurves(w io.Writer, runs []model.Run, window, totalWidth, height int, useColor bool) error {
	if len(runs) == 0 {
		return nil
	}
	bits := EntropySeries(runs)
	lo, hi := bounds([]Series{{Values: bits}})
	rows := height
	if rows <= 0 {
		rows = defaultPlotHeight
	}
	labelWidth := 0
	for _, l := range axisLabels(lo, hi, rows) {
		labelWidth = max(labelWidth, len(l))
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth, labelWidth)
	}
	return PlotSeries(w, "Entropy per run (bits)", []Series{
		{Name: "Entropy", Values: bits},
		{Name: "Moving avg", Values: MovingAverage(bits, window)},
	}, width, height, useColor)
}
