package coplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// HeatMap draws a 2-D grid of colored cells. The outer dimension of Z
// indexes the horizontal direction; NaN marks missing cells, which are
// painted in MissingColor. Without inversion the first element of each
// column sits in the top row, the way matrix displays are usually read;
// the default InvertY flips that so the vertical order follows an
// upward-growing y axis.
type HeatMap struct {
	Z [][]float64

	// XTicks and YTicks label the grid positions; empty entries leave
	// the position unlabeled.
	XTicks, YTicks []string

	FileName   string
	FileFormat string

	InvertX   bool
	InvertY   bool
	Transpose bool

	PaletteName  string
	MissingColor string

	XLabel, YLabel string
	FillLabel      string
	FillLog        bool

	// Tick label angles, in degrees.
	XTickAngle float64
	YTickAngle float64
}

// NewHeatMap returns a heatmap of z with the default settings.
func NewHeatMap(z [][]float64) *HeatMap {
	return &HeatMap{
		Z:            z,
		FileFormat:   "png",
		InvertY:      true,
		PaletteName:  "viridis",
		MissingColor: "white",
		XTickAngle:   45,
	}
}

// matrix resolves Transpose into the displayed matrix m[r][c] and its
// shape.
func (h *HeatMap) matrix() (m func(r, c int) float64, rows, cols int) {
	if h.Transpose {
		rows, cols = len(h.Z), len(h.Z[0])
		return func(r, c int) float64 { return h.Z[r][c] }, rows, cols
	}
	rows, cols = len(h.Z[0]), len(h.Z)
	return func(r, c int) float64 { return h.Z[c][r] }, rows, cols
}

// Draw renders the heatmap. An empty Z yields an empty figure.
func (h *HeatMap) Draw() (*Figure, error) {
	fig, err := NewFigure()
	if err != nil {
		return nil, err
	}
	if len(h.Z) == 0 || len(h.Z[0]) == 0 {
		return fig, nil
	}

	m, rows, cols := h.matrix()

	// Remap the displayed matrix onto the grid orientation of the
	// canvas: row 0 is drawn at the bottom, so the default InvertY
	// puts the first matrix row on top.
	z := make([][]float64, cols)
	for cc := 0; cc < cols; cc++ {
		c := cc
		if h.InvertX {
			c = cols - 1 - cc
		}
		z[cc] = make([]float64, rows)
		for rr := 0; rr < rows; rr++ {
			r := rr
			if !h.InvertY {
				r = rows - 1 - rr
			}
			z[cc][rr] = m(r, c)
		}
	}

	zmin, zmax, ok := gridMinMax(z)
	cbMin, cbMax := zmin, zmax
	if h.FillLog {
		// Color mapping in log10 space; nonpositive cells count as
		// missing.
		for _, col := range z {
			for j, v := range col {
				if v > 0 {
					col[j] = math.Log10(v)
				} else {
					col[j] = math.NaN()
				}
			}
		}
		zmin, zmax, ok = gridMinMax(z)
		cbMin, cbMax = math.Pow(10, zmin), math.Pow(10, zmax)
	}
	if !ok {
		return fig, nil
	}

	pal, err := PaletteByName(h.PaletteName, 256)
	if err != nil {
		return nil, err
	}
	grid := NewColorGrid(indexCenters(cols), indexCenters(rows), z, pal)
	grid.Min, grid.Max = zmin, zmax

	ax := fig.Axes[0]
	xmin, xmax, ymin, ymax := grid.extent()
	ax.Add(&fillRectArtist{fillRect{
		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
		color: String2Color(h.MissingColor),
	}})
	ax.Add(grid)

	if h.XTicks != nil {
		ax.Plot.X.Tick.Marker = plot.ConstantTicks(h.tickList(h.XTicks, cols, h.InvertX, false))
	}
	if h.YTicks != nil {
		ax.Plot.Y.Tick.Marker = plot.ConstantTicks(h.tickList(h.YTicks, rows, false, !h.InvertY))
	}
	if h.XTickAngle != 0 {
		ax.Plot.X.Tick.Label.Rotation = h.XTickAngle * math.Pi / 180
		ax.Plot.X.Tick.Label.XAlign = draw.XRight
	}
	if h.YTickAngle != 0 {
		ax.Plot.Y.Tick.Label.Rotation = h.YTickAngle * math.Pi / 180
	}
	ax.Plot.X.Label.Text = h.XLabel
	ax.Plot.Y.Label.Text = h.YLabel

	cb, err := newColorBar(pal, cbMin, cbMax, h.FillLog, nil, h.FillLabel, 0.75)
	if err != nil {
		return nil, err
	}
	fig.SetColorBar(cb)
	return fig, fig.saveIf(h.FileName, h.FileFormat)
}

// tickList places one tick per labeled grid index, remapped when the
// axis direction is inverted.
func (h *HeatMap) tickList(labels []string, n int, invert, flip bool) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(labels))
	for i, label := range labels {
		if label == "" || i >= n {
			continue
		}
		pos := i
		if invert || flip {
			pos = n - 1 - i
		}
		ticks = append(ticks, plot.Tick{Value: float64(pos), Label: label})
	}
	return ticks
}

// fillRectArtist lets a background rectangle take part in the artist
// list of an Axes.
type fillRectArtist struct{ fillRect }

func (r *fillRectArtist) Plotter() plot.Plotter { return &r.fillRect }
