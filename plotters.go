package coplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func defaultFont(size vg.Length) vg.Font {
	fnt, err := vg.MakeFont(plotter.DefaultFont, size)
	if err != nil {
		panic(err) // the default font is always available
	}
	return fnt
}

// -------------------------------------------------------------------------
// VertLine

// VertLine draws a vertical rule spanning the full height of the plotting
// area at the data coordinate X. It does not participate in axis range
// training, matching axvline in matplotlib.
type VertLine struct {
	X     float64
	Style draw.LineStyle
}

func NewVertLine(x float64, col color.Color, style string) *VertLine {
	return &VertLine{X: x, Style: lineStyle(col, style)}
}

func (v *VertLine) Plotter() plot.Plotter { return v }

// Plot implements plot.Plotter.
func (v *VertLine) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(v.X)
	if x < c.Min.X || x > c.Max.X {
		return
	}
	c.StrokeLine2(v.Style, x, c.Min.Y, x, c.Max.Y)
}

// -------------------------------------------------------------------------
// PointLabels

// PointLabels draws a text annotation above each data point, horizontally
// centered and offset by Offset from the point.
type PointLabels struct {
	XYs    plotter.XYs
	Texts  []string
	Offset vg.Point
}

func NewPointLabels(x, y []float64, texts []string) *PointLabels {
	return &PointLabels{
		XYs:    zipXYs(x, y),
		Texts:  texts,
		Offset: vg.Point{X: 0, Y: vg.Points(2)},
	}
}

func (pl *PointLabels) Plotter() plot.Plotter { return pl }

// Plot implements plot.Plotter.
func (pl *PointLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := draw.TextStyle{
		Color:  color.Black,
		Font:   defaultFont(plotter.DefaultFontSize),
		XAlign: draw.XCenter,
		YAlign: draw.YBottom,
	}
	for i, xy := range pl.XYs {
		if i >= len(pl.Texts) {
			break
		}
		pt := vg.Point{X: trX(xy.X) + pl.Offset.X, Y: trY(xy.Y) + pl.Offset.Y}
		if !c.Contains(pt) {
			continue
		}
		c.FillText(sty, pt, pl.Texts[i])
	}
}

// -------------------------------------------------------------------------
// AxesText

// AxesText draws a text at a fixed position given as fractions of the
// plotting area, independent of the data coordinate system.
type AxesText struct {
	X, Y float64 // fractions in [0,1]
	Text string
}

func (t *AxesText) Plotter() plot.Plotter { return t }

// Plot implements plot.Plotter.
func (t *AxesText) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := draw.TextStyle{
		Color:  color.Black,
		Font:   defaultFont(plotter.DefaultFontSize),
		XAlign: draw.XLeft,
		YAlign: draw.YBottom,
	}
	pt := vg.Point{
		X: c.Min.X + vg.Length(t.X)*(c.Max.X-c.Min.X),
		Y: c.Min.Y + vg.Length(t.Y)*(c.Max.Y-c.Min.Y),
	}
	c.FillText(sty, pt, t.Text)
}

// -------------------------------------------------------------------------
// fillRect

// fillRect paints a rectangle given in data coordinates. It backs the
// "missing value" color of heatmaps: the color grid skips NaN cells and
// this rectangle shows through.
type fillRect struct {
	xmin, xmax, ymin, ymax float64
	color                  color.Color
}

func (r *fillRect) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	rect := vg.Rectangle{
		Min: vg.Point{X: trX(r.xmin), Y: trY(r.ymin)},
		Max: vg.Point{X: trX(r.xmax), Y: trY(r.ymax)},
	}
	c.SetColor(r.color)
	c.Fill(rect.Path())
}
