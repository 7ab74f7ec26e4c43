package coplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// An Artist is a single drawable element attached to an Axes: a point set,
// a line, a vertical rule, a text annotation, histogram bars or a color
// grid. Plotter returns the gonum plotter that renders the element.
type Artist interface {
	Plotter() plot.Plotter
}

func zipXYs(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}

func copyXYs(xys plotter.XYs) plotter.XYs {
	c := make(plotter.XYs, len(xys))
	copy(c, xys)
	return c
}

// -------------------------------------------------------------------------
// Points

// Points draws a set of data points. Colors and Sizes, when non-nil, hold
// one entry per point; otherwise DefaultColor and the default marker
// radius are used.
type Points struct {
	XYs    plotter.XYs
	Colors []color.Color
	Sizes  []vg.Length
	Glyph  draw.GlyphDrawer
	Label  string

	scatter *plotter.Scatter
}

func NewPoints(x, y []float64) (*Points, error) {
	xys := zipXYs(x, y)
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("coplot: cannot build point set: %w", err)
	}
	p := &Points{XYs: xys, Glyph: draw.CircleGlyph{}, scatter: s}
	s.GlyphStyleFunc = p.glyphStyle
	return p, nil
}

func (p *Points) glyphStyle(i int) draw.GlyphStyle {
	st := draw.GlyphStyle{
		Color:  color.Color(DefaultColor),
		Radius: defaultMarkerRadius,
		Shape:  p.Glyph,
	}
	if p.Colors != nil && i < len(p.Colors) {
		st.Color = p.Colors[i]
	}
	if p.Sizes != nil && i < len(p.Sizes) {
		st.Radius = p.Sizes[i]
	}
	return st
}

func (p *Points) Plotter() plot.Plotter { return p.scatter }

// -------------------------------------------------------------------------
// Line

// Line draws a connected line through its points.
type Line struct {
	XYs   plotter.XYs
	Style draw.LineStyle
	Label string

	line *plotter.Line
}

func NewLine(x, y []float64) (*Line, error) {
	xys := zipXYs(x, y)
	pl, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("coplot: cannot build line: %w", err)
	}
	return &Line{XYs: xys, Style: lineStyle(DefaultColor, "-"), line: pl}, nil
}

func (l *Line) Plotter() plot.Plotter {
	l.line.LineStyle = l.Style
	return l.line
}

// -------------------------------------------------------------------------
// Bars

// Bars draws the bars of a histogram.
type Bars struct {
	Values plotter.Values
	Color  color.Color

	hist *plotter.Histogram
}

func NewBars(values []float64, bins int) (*Bars, error) {
	vs := plotter.Values(values)
	h, err := plotter.NewHist(vs, bins)
	if err != nil {
		return nil, fmt.Errorf("coplot: cannot build histogram bars: %w", err)
	}
	return &Bars{Values: vs, Color: DefaultColor, hist: h}, nil
}

func (b *Bars) Plotter() plot.Plotter {
	b.hist.FillColor = b.Color
	b.hist.LineStyle.Width = 0
	return b.hist
}

// -------------------------------------------------------------------------
// Cloning

// CloneArtist duplicates a drawable element so it can be attached to
// another Axes. As in the layout code this supports point sets (keeping
// the per-point colors but not marker or sizes), lines (keeping only the
// color), vertical rules and text. Other artists cannot be cloned.
func CloneArtist(a Artist) (Artist, error) {
	switch a := a.(type) {
	case *Points:
		var xs, ys []float64
		for _, xy := range a.XYs {
			xs = append(xs, xy.X)
			ys = append(ys, xy.Y)
		}
		c, err := NewPoints(xs, ys)
		if err != nil {
			return nil, err
		}
		if a.Colors != nil {
			c.Colors = append([]color.Color(nil), a.Colors...)
		}
		return c, nil
	case *Line:
		var xs, ys []float64
		for _, xy := range a.XYs {
			xs = append(xs, xy.X)
			ys = append(ys, xy.Y)
		}
		c, err := NewLine(xs, ys)
		if err != nil {
			return nil, err
		}
		c.Style.Color = a.Style.Color
		return c, nil
	case *VertLine:
		return &VertLine{X: a.X, Style: a.Style}, nil
	case *PointLabels:
		return &PointLabels{
			XYs:    copyXYs(a.XYs),
			Texts:  append([]string(nil), a.Texts...),
			Offset: a.Offset,
		}, nil
	case *AxesText:
		return &AxesText{X: a.X, Y: a.Y, Text: a.Text}, nil
	}
	return nil, fmt.Errorf("coplot: an artist of type %T cannot be cloned", a)
}

// skippable reports whether Split silently drops the artist instead of
// cloning it into every panel (text and patch like elements).
func skippable(a Artist) bool {
	switch a.(type) {
	case *PointLabels, *AxesText, *Bars, *fillRectArtist:
		return true
	}
	return false
}
