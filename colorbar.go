package coplot

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A ColorBar explains the color mapping of a contour plot or heatmap.
// It is rendered as a one column heatmap whose y axis carries the data
// values; on a log scaled bar the axis runs in log10 space with tick
// labels in original units.
type ColorBar struct {
	Palette  palette.Palette
	Min, Max float64
	Log      bool

	// Ticks forces tick positions (data values). If nil, linear bars
	// use gonum's automatic ticks.
	Ticks []float64

	Label  string
	Shrink float64 // vertical fraction of the strip, default 1

	plt *plot.Plot
}

// gradientGrid is the single column value ramp backing the bar.
type gradientGrid struct {
	min, max float64
	n        int
}

func (g gradientGrid) Dims() (c, r int) { return 1, g.n }
func (g gradientGrid) X(c int) float64  { return 0 }
func (g gradientGrid) Y(r int) float64 {
	return g.min + (float64(r)+0.5)*(g.max-g.min)/float64(g.n)
}
func (g gradientGrid) Z(c, r int) float64 { return g.Y(r) }

func newColorBar(pal palette.Palette, min, max float64, log bool, ticks []float64, label string, shrink float64) (*ColorBar, error) {
	cb := &ColorBar{
		Palette: pal,
		Min:     min,
		Max:     max,
		Log:     log,
		Ticks:   ticks,
		Label:   label,
		Shrink:  shrink,
	}
	if cb.Shrink <= 0 || cb.Shrink > 1 {
		cb.Shrink = 1
	}
	if err := cb.build(); err != nil {
		return nil, err
	}
	return cb, nil
}

func (cb *ColorBar) build() error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("coplot: cannot create color bar: %w", err)
	}
	lo, hi := cb.Min, cb.Max
	if cb.Log {
		if lo <= 0 || hi <= 0 {
			return fmt.Errorf("coplot: log color bar needs a positive range, got [%g,%g]", lo, hi)
		}
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	if hi <= lo {
		hi = lo + 1
	}
	hm := plotter.NewHeatMap(gradientGrid{min: lo, max: hi, n: 256}, cb.Palette)
	p.Add(hm)
	p.HideX()
	if ticks := cb.tickList(); ticks != nil {
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}
	p.Y.Label.Text = cb.Label
	cb.plt = p
	return nil
}

func (cb *ColorBar) tickList() []plot.Tick {
	values := cb.Ticks
	if values == nil {
		if !cb.Log {
			return nil // keep gonum's automatic ticks
		}
		values = LogLevels(cb.Min, cb.Max, 10, 9)
	}
	ticks := make([]plot.Tick, 0, len(values))
	for _, v := range values {
		pos := v
		if cb.Log {
			if v <= 0 {
				continue
			}
			pos = math.Log10(v)
		}
		ticks = append(ticks, plot.Tick{
			Value: pos,
			Label: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	return ticks
}

// draw renders the bar into the given strip, vertically shrunk and
// centered.
func (cb *ColorBar) draw(strip draw.Canvas) {
	if cb.plt == nil {
		return
	}
	h := strip.Max.Y - strip.Min.Y
	pad := vg.Length(float64(h) * (1 - cb.Shrink) / 2)
	c := draw.Crop(strip, 0, 0, pad, -pad)
	cb.plt.Draw(c)
}
