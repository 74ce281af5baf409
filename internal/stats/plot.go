package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series is a named run of values drawn as one line.
type Series struct {
	Name   string
	Values []float64
}

// PlotOptions controls how a plot is laid out.
type PlotOptions struct {
	Title  string
	Width  int
	Height int
	// Shared draws every series against one value range and labels the
	// axis with real values. Otherwise each series is normalised to its
	// own min/max and the axis shows percentages of that range.
	Shared bool
	Color  bool
}

type valueRange struct {
	lo, hi float64
}

type dash struct {
	name   string
	period int
	on     int
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	axisLabelWidth    = 6
	axisSeparator     = " │ "
	perSeriesNote     = "Scaled per series; see min/max below."
	colorReset        = "\x1b[0m"
	fallbackTermWidth = 80
)

var dashes = []dash{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
}

var palette = []string{
	"\x1b[36m", // cyan
	"\x1b[35m", // magenta
	"\x1b[33m", // yellow
	"\x1b[32m", // green
}

// Plot renders series as a braille line chart.
func Plot(w io.Writer, opts PlotOptions, series ...Series) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}
	height := opts.Height
	if height <= 0 {
		height = defaultPlotHeight
	}
	width := opts.Width
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	resampled := make([]Series, len(series))
	ranges := make([]valueRange, len(series))
	for i, s := range series {
		resampled[i] = Series{Name: s.Name, Values: resample(s.Values, width)}
		ranges[i] = rangeOf(resampled[i].Values)
	}
	if opts.Shared {
		shared := ranges[0]
		for _, r := range ranges[1:] {
			shared.lo = math.Min(shared.lo, r.lo)
			shared.hi = math.Max(shared.hi, r.hi)
		}
		for i := range ranges {
			ranges[i] = shared
		}
	}
	for i := range ranges {
		if ranges[i].hi-ranges[i].lo < 1e-9 {
			ranges[i].lo--
			ranges[i].hi++
		}
	}

	layers := make([]*canvas, len(resampled))
	for i, s := range resampled {
		layers[i] = newCanvas(width, height)
		layers[i].polyline(s.Values, ranges[i], dashes[i%len(dashes)])
	}

	useColor := colorEnabled(w, opts.Color)
	labels := axisLabels(height, ranges[0], opts.Shared)

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(opts.Title)
		b.WriteByte('\n')
	}
	if !opts.Shared && len(resampled) > 1 {
		b.WriteString(perSeriesNote)
		b.WriteByte('\n')
		for i, s := range resampled {
			fmt.Fprintf(&b, "%s: min=%.2f max=%.2f\n", s.Name, ranges[i].lo, ranges[i].hi)
		}
	}
	for y := 0; y < height; y++ {
		fmt.Fprintf(&b, "%*s%s", axisLabelWidth, labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			mask, owner := merge(layers, x, y)
			ch := rune(0x2800 + int(mask))
			if useColor && owner >= 0 {
				b.WriteString(palette[owner%len(palette)])
				b.WriteRune(ch)
				b.WriteString(colorReset)
				continue
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	b.WriteString(legend(resampled, useColor))
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// PlotWidthFor returns the plot width that fits a line of totalWidth cells
// once the axis is drawn.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	width := totalWidth - axisLabelWidth - utf8.RuneCountInString(axisSeparator)
	if width < minPlotWidth {
		return minPlotWidth
	}
	return width
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

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func colorEnabled(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func axisLabels(height int, r valueRange, shared bool) []string {
	labels := make([]string, height)
	top, mid, bottom := "100%", "50%", "0%"
	if shared {
		top = fmt.Sprintf("%.1f", r.hi)
		mid = fmt.Sprintf("%.1f", (r.lo+r.hi)/2)
		bottom = fmt.Sprintf("%.1f", r.lo)
	}
	labels[0] = top
	if height > 2 {
		labels[height/2] = mid
	}
	if height > 1 {
		labels[height-1] = bottom
	}
	return labels
}

func legend(series []Series, useColor bool) string {
	parts := make([]string, len(series))
	for i, s := range series {
		label := fmt.Sprintf("⠁ %s (%s)", s.Name, dashes[i%len(dashes)].name)
		if useColor {
			label = palette[i%len(palette)] + label + colorReset
		}
		parts[i] = label
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func rangeOf(values []float64) valueRange {
	if len(values) == 0 {
		return valueRange{}
	}
	r := valueRange{lo: values[0], hi: values[0]}
	for _, v := range values[1:] {
		r.lo = math.Min(r.lo, v)
		r.hi = math.Max(r.hi, v)
	}
	return r
}

// resample stretches or averages values to exactly width points.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	n := len(values)
	switch {
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			start := i * n / width
			end := (i + 1) * n / width
			if end <= start {
				end = start + 1
			}
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

// canvas is a grid of braille cells, each holding 2x4 dots.
type canvas struct {
	cells  [][]uint8
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return &canvas{cells: cells, width: width, height: height}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.width*2 || y >= c.height*4 {
		return
	}
	c.cells[y/4][x/2] |= dotBits[x%2][y%4]
}

func (c *canvas) polyline(values []float64, r valueRange, d dash) {
	rows := c.height * 4
	prevX, prevY := -1, -1
	for i, v := range values {
		x := i * 2
		y := int(math.Round((1 - (v-r.lo)/(r.hi-r.lo)) * float64(rows-1)))
		y = max(0, min(rows-1, y))
		if prevX < 0 {
			if d.visible(x) {
				c.set(x, y)
			}
		} else {
			bresenham(prevX, prevY, x, y, func(px, py int) {
				if d.visible(px) {
					c.set(px, py)
				}
			})
		}
		prevX, prevY = x, y
	}
}

func (d dash) visible(x int) bool {
	if d.period <= 1 {
		return true
	}
	return x%d.period < d.on
}

func merge(layers []*canvas, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, c := range layers {
		if m := c.cells[y][x]; m != 0 {
			if owner < 0 {
				owner = i
			}
			mask |= m
		}
	}
	return mask, owner
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
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
