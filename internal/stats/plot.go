package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/glyphpass/internal/display"
)

// Series is a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	axisSeparator     = " ┤ "
	fallbackWidth     = 80
)

// brailleDots maps a dot position (column, row) inside a cell to its bit.
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

var seriesStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#5BC0DE")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F")),
}

// PlotSeries renders a braille line plot of series on one shared vertical
// scale. A zero width fits the plot to the terminal.
func PlotSeries(w io.Writer, title string, series []Series, width, height int, useColor bool) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	lo, hi := bounds(series)
	labels := axisLabels(lo, hi, height)
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}
	if width <= 0 {
		width = PlotWidthFor(display.TerminalWidth(fallbackWidth), labelWidth)
	}
	width = max(width, minPlotWidth)

	layers := make([][][]uint8, len(series))
	for i, s := range series {
		layers[i] = rasterize(resample(s.Values, width), lo, hi, width, height)
	}

	useColor = useColor && os.Getenv("NO_COLOR") == ""
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", labelWidth, labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			mask, owner := overlay(layers, x, y)
			cell := string(rune(0x2800 + int(mask)))
			if useColor && owner >= 0 {
				cell = seriesStyles[owner%len(seriesStyles)].Render(cell)
			}
			row.WriteString(cell)
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, legend(series, useColor))
	return err
}

// PlotWidthFor returns the plot area left in totalWidth columns after an axis
// of labelWidth characters.
func PlotWidthFor(totalWidth, labelWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	return max(totalWidth-labelWidth-display.Columns(axisSeparator), minPlotWidth)
}

// IsTerminal reports whether w is a terminal that can show colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func nonEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func bounds(series []Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi-lo < 1e-9 {
		lo--
		hi++
	}
	return lo, hi
}

func axisLabels(lo, hi float64, height int) []string {
	labels := make([]string, height)
	labels[0] = formatTick(hi)
	if height > 1 {
		labels[height-1] = formatTick(lo)
	}
	if height > 2 {
		labels[height/2] = formatTick(hi - (hi-lo)*float64(height/2)/float64(height-1))
	}
	return labels
}

func formatTick(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// rasterize draws values as a connected line into a height x width grid of
// braille masks. Each cell holds 2x4 dots.
func rasterize(values []float64, lo, hi float64, width, height int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	dots := height * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		py := dotRow(v, lo, hi, dots)
		px := x * 2
		if prevX < 0 {
			setDot(cells, px, py)
		} else {
			line(prevX, prevY, px, py, func(dx, dy int) { setDot(cells, dx, dy) })
		}
		prevX, prevY = px, py
	}
	return cells
}

func dotRow(v, lo, hi float64, dots int) int {
	if dots <= 1 {
		return 0
	}
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(dots-1)))
	return min(max(row, 0), dots-1)
}

func setDot(cells [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if y < 0 || x < 0 || cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= brailleDots[x%2][y%4]
}

// overlay merges the layers at one cell. The first layer with a dot owns the
// cell color.
func overlay(layers [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, cells := range layers {
		m := cells[y][x]
		if m == 0 {
			continue
		}
		if owner < 0 {
			owner = i
		}
		mask |= m
	}
	return mask, owner
}

// line walks the Bresenham line from (x0,y0) to (x1,y1).
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// resample stretches or averages values to exactly width points.
func resample(values []float64, width int) []float64 {
	n := len(values)
	out := make([]float64, width)
	switch {
	case n == 0 || width <= 0:
		return nil
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			start := i * n / width
			end := max((i+1)*n/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := int(pos)
			if idx >= n-1 {
				out[i] = values[n-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func legend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		label := "⠉ " + s.Name
		if useColor {
			label = seriesStyles[i%len(seriesStyles)].Render(label)
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
