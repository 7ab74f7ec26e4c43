package coplot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default figure size, the same as matplotlib's.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// An Interval is a closed axis range. A NaN bound is determined
// automatically from the data.
type Interval struct {
	Min, Max float64
}

// Lim is a shorthand for building an axis range.
func Lim(min, max float64) *Interval { return &Interval{Min: min, Max: max} }

// -------------------------------------------------------------------------
// Axes

// Axes couples a gonum plot with the list of artists added to it.
type Axes struct {
	Plot       *plot.Plot
	XLog, YLog bool

	artists []Artist
}

func newAxes() (*Axes, error) {
	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("coplot: cannot create plot: %w", err)
	}
	return &Axes{Plot: p}, nil
}

// Add attaches artists to the axes and registers their plotters.
func (a *Axes) Add(arts ...Artist) {
	for _, art := range arts {
		a.artists = append(a.artists, art)
		a.Plot.Add(art.Plotter())
	}
}

// Artists returns the drawable elements added so far, in drawing order.
func (a *Axes) Artists() []Artist { return a.artists }

// SetLog switches the axis scales between linear and logarithmic.
func (a *Axes) SetLog(xlog, ylog bool) {
	a.XLog, a.YLog = xlog, ylog
	if xlog {
		a.Plot.X.Scale = plot.LogScale{}
		a.Plot.X.Tick.Marker = plot.LogTicks{}
	}
	if ylog {
		a.Plot.Y.Scale = plot.LogScale{}
		a.Plot.Y.Tick.Marker = plot.LogTicks{}
	}
}

// SetXLim overrides the trained x range. Nil or NaN bounds keep the
// automatic value.
func (a *Axes) SetXLim(iv *Interval) {
	if iv == nil {
		return
	}
	if !math.IsNaN(iv.Min) {
		a.Plot.X.Min = iv.Min
	}
	if !math.IsNaN(iv.Max) {
		a.Plot.X.Max = iv.Max
	}
}

// SetYLim overrides the trained y range.
func (a *Axes) SetYLim(iv *Interval) {
	if iv == nil {
		return
	}
	if !math.IsNaN(iv.Min) {
		a.Plot.Y.Min = iv.Min
	}
	if !math.IsNaN(iv.Max) {
		a.Plot.Y.Max = iv.Max
	}
}

// -------------------------------------------------------------------------
// Figure

// A Figure holds one or more Axes and renders them to a canvas or file.
// Figures produced by Split hold a grid of panels with broken-axis
// decorations; all chart builders produce single-axes figures.
type Figure struct {
	Width, Height vg.Length

	// Axes in row-major order; chart builders use exactly one.
	Axes []*Axes

	// Figure level labels, used by split figures.
	SupTitle, SupXLabel, SupYLabel string

	rows, cols         int
	xRatios, yRatios   []float64
	xSpacing, ySpacing float64
	broken             bool

	colorbar *ColorBar
}

// NewFigure creates a figure with a single empty Axes.
func NewFigure() (*Figure, error) {
	ax, err := newAxes()
	if err != nil {
		return nil, err
	}
	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Axes:   []*Axes{ax},
		rows:   1,
		cols:   1,
	}, nil
}

// SetColorBar attaches a color bar drawn in a strip right of the axes.
func (f *Figure) SetColorBar(cb *ColorBar) { f.colorbar = cb }

// Draw renders the figure onto the canvas.
func (f *Figure) Draw(dc draw.Canvas) {
	area := dc
	if f.colorbar != nil {
		stripW := 0.15 * (area.Max.X - area.Min.X)
		strip := draw.Crop(area, area.Max.X-area.Min.X-stripW, 0, 0, 0)
		area = draw.Crop(area, 0, -stripW, 0, 0)
		f.colorbar.draw(strip)
	}
	if !f.broken && len(f.Axes) == 1 {
		f.Axes[0].Plot.Draw(area)
		return
	}
	f.drawGrid(area)
}

// drawGrid lays the panels out on a ratio grid, aligns their data areas
// with the grid cells and adds the broken-axis decorations.
func (f *Figure) drawGrid(area draw.Canvas) {
	labelFont := defaultFont(vg.Points(12))
	titleFont := defaultFont(vg.Points(14))

	// Outer bands for the figure level labels and title.
	var padL, padB, padT vg.Length
	if f.SupYLabel != "" {
		padL = vg.Points(16)
	}
	if f.SupXLabel != "" {
		padB = vg.Points(16)
	}
	if f.SupTitle != "" {
		padT = vg.Points(20)
	}
	inner := draw.Crop(area, padL, 0, padB, -padT)

	// Room for the tick labels of the outer panels.
	grid := draw.Crop(inner, vg.Points(38), vg.Points(-8), vg.Points(26), vg.Points(-8))
	gw := grid.Max.X - grid.Min.X
	gh := grid.Max.Y - grid.Min.Y

	xgap := vg.Length(f.xSpacing) * gw
	ygap := vg.Length(f.ySpacing) * gh
	tw := gw - vg.Length(f.cols-1)*xgap
	th := gh - vg.Length(f.rows-1)*ygap

	// Tile rectangles, row 0 at the top.
	tiles := make([][]vg.Rectangle, f.rows)
	y := grid.Max.Y
	for j := 0; j < f.rows; j++ {
		tiles[j] = make([]vg.Rectangle, f.cols)
		h := vg.Length(f.yRatios[j]) * th
		x := grid.Min.X
		for i := 0; i < f.cols; i++ {
			w := vg.Length(f.xRatios[i]) * tw
			tiles[j][i] = vg.Rectangle{
				Min: vg.Point{X: x, Y: y - h},
				Max: vg.Point{X: x + w, Y: y},
			}
			x += w + xgap
		}
		y -= h + ygap
	}

	for j := 0; j < f.rows; j++ {
		for i := 0; i < f.cols; i++ {
			ax := f.Axes[j*f.cols+i]
			tile := tiles[j][i]
			trial := draw.Canvas{Canvas: area.Canvas, Rectangle: tile}
			// Grow the tile by the panel's own decoration margins so
			// that its data area lands exactly on the tile.
			dataC := ax.Plot.DataCanvas(trial)
			c := draw.Canvas{Canvas: area.Canvas, Rectangle: vg.Rectangle{
				Min: vg.Point{
					X: tile.Min.X - (dataC.Min.X - tile.Min.X),
					Y: tile.Min.Y - (dataC.Min.Y - tile.Min.Y),
				},
				Max: vg.Point{
					X: tile.Max.X + (tile.Max.X - dataC.Max.X),
					Y: tile.Max.Y + (tile.Max.Y - dataC.Max.Y),
				},
			}}
			ax.Plot.Draw(c)
		}
	}

	if f.broken {
		f.drawBreakMarkers(area, tiles)
	}

	center := (grid.Min.X + grid.Max.X) / 2
	middle := (grid.Min.Y + grid.Max.Y) / 2
	if f.SupXLabel != "" {
		sty := draw.TextStyle{Color: color.Black, Font: labelFont, XAlign: draw.XCenter, YAlign: draw.YBottom}
		area.FillText(sty, vg.Point{X: center, Y: area.Min.Y}, f.SupXLabel)
	}
	if f.SupYLabel != "" {
		sty := draw.TextStyle{Color: color.Black, Font: labelFont, XAlign: draw.XCenter, YAlign: draw.YTop, Rotation: math.Pi / 2}
		area.FillText(sty, vg.Point{X: area.Min.X, Y: middle}, f.SupYLabel)
	}
	if f.SupTitle != "" {
		sty := draw.TextStyle{Color: color.Black, Font: titleFont, XAlign: draw.XCenter, YAlign: draw.YTop}
		area.FillText(sty, vg.Point{X: center, Y: area.Max.Y}, f.SupTitle)
	}
}

// drawBreakMarkers strokes the diagonal "broken axis" marks at the panel
// corners facing a seam: a corner gets a marker where exactly one of the
// two tested edges is an outer edge of the grid.
func (f *Figure) drawBreakMarkers(dc draw.Canvas, tiles [][]vg.Rectangle) {
	sty := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	s := vg.Points(6)
	mark := func(t vg.Rectangle, fx, fy float64) {
		x := t.Min.X + vg.Length(fx)*(t.Max.X-t.Min.X)
		y := t.Min.Y + vg.Length(fy)*(t.Max.Y-t.Min.Y)
		dc.StrokeLine2(sty, x-s, y-s, x+s, y+s)
	}
	rows, cols := f.rows, f.cols
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			t := tiles[j][i]
			if (i > 0) != (j < rows-1) {
				mark(t, 0, 0)
			}
			if (i < cols-1) != (j < rows-1) {
				mark(t, 1, 0)
			}
			if (i == 0) != (j == 0) {
				mark(t, 0, 1)
			}
			if (i < cols-1) != (j > 0) {
				mark(t, 1, 1)
			}
		}
	}
}

// Save exports the figure. The format is derived from the file name
// extension, defaulting to png.
func (f *Figure) Save(filename string) error {
	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	if format == "" {
		format = "png"
	}
	return f.SaveAs(filename, format)
}

// SaveAs exports the figure in the given format regardless of the file
// name. Formats are the ones understood by gonum: eps, jpg, pdf, png,
// svg and tif.
func (f *Figure) SaveAs(filename, format string) error {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return fmt.Errorf("coplot: cannot export figure: %w", err)
	}
	f.Draw(draw.New(c))
	w, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("coplot: cannot export figure: %w", err)
	}
	if _, err = c.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("coplot: cannot export figure: %w", err)
	}
	return w.Close()
}

// saveIf is used by the chart builders to honor their FileName field.
func (f *Figure) saveIf(filename, format string) error {
	if filename == "" {
		return nil
	}
	if format == "" {
		format = "png"
	}
	return f.SaveAs(filename, format)
}
