package coplot

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scatter draws the correlation between two data series. Non-finite
// value pairs are excluded before plotting.
type Scatter struct {
	X, Y []float64

	FileName   string
	FileFormat string

	// Transform is applied to both series before plotting.
	Transform func(float64) float64

	Labels []string
	Colors []string
	Marker string

	// LinearFit adds a least squares fit line; ShowFormula additionally
	// prints its formula near the lower right corner.
	LinearFit   bool
	ShowFormula bool

	XLim, YLim *Interval
	XLog, YLog bool

	XLabel, YLabel string

	// DataLabel names the series in the legend.
	DataLabel   string
	Legend      bool
	LegendTitle string

	// Append adds the series to an existing figure instead of creating
	// a new one. The axis scales of that figure are kept as they are.
	Append *Figure
}

// NewScatter returns a scatter plot of the series (x[i], y[i]) with the
// default settings.
func NewScatter(x, y []float64) *Scatter {
	return &Scatter{X: x, Y: y, Marker: "o", FileFormat: "png"}
}

func (s *Scatter) Draw() (*Figure, error) {
	fig, err := s.draw()
	if err != nil {
		return nil, err
	}
	return fig, fig.saveIf(s.FileName, s.FileFormat)
}

func (s *Scatter) draw() (*Figure, error) {
	x := apply(s.Transform, s.X)
	y := apply(s.Transform, s.Y)
	x, y = dropNonFinite(x, y)

	fig := s.Append
	update := fig != nil && len(fig.Axes) > 0
	if fig == nil {
		var err error
		if fig, err = NewFigure(); err != nil {
			return nil, err
		}
	} else if len(fig.Axes) == 0 {
		// An appended figure without axes gets a fresh one.
		ax, err := newAxes()
		if err != nil {
			return nil, err
		}
		fig.Axes = append(fig.Axes, ax)
	}
	ax := fig.Axes[0]
	if !update {
		ax.SetLog(s.XLog, s.YLog)
	}

	pts, err := NewPoints(x, y)
	if err != nil {
		return nil, err
	}
	pts.Colors = parseColors(s.Colors)
	pts.Glyph = String2Glyph(s.Marker)
	pts.Label = s.DataLabel
	ax.Add(pts)

	if s.Labels != nil {
		ax.Add(NewPointLabels(x, y, s.Labels))
	}

	if s.LinearFit && len(x) > 1 {
		a0, a1 := stat.LinearRegression(x, y, nil, false)
		sx := append([]float64(nil), x...)
		sort.Float64s(sx)
		fy := make([]float64, len(sx))
		for i, v := range sx {
			fy[i] = a1*v + a0
		}
		fit, err := NewLine(sx, fy)
		if err != nil {
			return nil, err
		}
		fit.Style = lineStyle(String2Color("red"), "-")
		ax.Add(fit)
		if s.ShowFormula {
			ax.Add(&AxesText{X: 0.7, Y: 0.05, Text: fitFormula(a1, a0)})
		}
	}

	ax.SetXLim(s.XLim)
	ax.SetYLim(s.YLim)
	ax.Plot.X.Label.Text = s.XLabel
	ax.Plot.Y.Label.Text = s.YLabel

	if s.Legend {
		leg := &ax.Plot.Legend
		leg.Top = true
		if s.LegendTitle != "" {
			leg.Add(s.LegendTitle)
		}
		if s.DataLabel != "" {
			leg.Add(s.DataLabel, pts.scatter)
		}
	}
	return fig, nil
}

func fitFormula(a1, a0 float64) string {
	return "y = " + strconv.FormatFloat(a1, 'g', 2, 64) +
		" x + " + strconv.FormatFloat(a0, 'g', 2, 64)
}

// ScatterCurve is a scatter plot with a smooth curve sampled from a
// callable drawn alongside the data points.
type ScatterCurve struct {
	Scatter

	// Curve maps an x value to the curve's y value.
	Curve func(float64) float64

	CurveColor string
	CurveStyle string
	CurveLabel string

	// SamplingDensity times the number of data points gives the number
	// of curve samples.
	SamplingDensity int
}

// NewScatterCurve returns a scatter plot of (x[i], y[i]) with curve
// sampled across the x range of the data.
func NewScatterCurve(x, y []float64, curve func(float64) float64) *ScatterCurve {
	return &ScatterCurve{
		Scatter:         *NewScatter(x, y),
		Curve:           curve,
		CurveStyle:      "-",
		SamplingDensity: 3,
	}
}

func (s *ScatterCurve) Draw() (*Figure, error) {
	fig, err := s.Scatter.draw()
	if err != nil {
		return nil, err
	}
	ax := fig.Axes[0]

	lo, hi := s.sampleRange()
	n := len(s.X) * s.SamplingDensity
	if n < 2 {
		n = 2
	}
	var xs []float64
	if s.XLog {
		xs = Geomspace(lo, hi, n)
	} else {
		xs = Linspace(lo, hi, n)
	}
	ys := make([]float64, len(xs))
	for i, v := range xs {
		ys[i] = s.Curve(v)
	}
	curve, err := NewLine(xs, ys)
	if err != nil {
		return nil, err
	}
	curve.Style = lineStyle(colorOrDefault(s.CurveColor, DefaultColor), s.CurveStyle)
	curve.Label = s.CurveLabel
	ax.Add(curve)

	if s.Legend && s.CurveLabel != "" {
		ax.Plot.Legend.Add(s.CurveLabel, curve.line)
	}
	return fig, fig.saveIf(s.FileName, s.FileFormat)
}

// sampleRange determines the x range to sample the curve over: the data
// range (its positive part on a log axis), overridden by any explicit
// XLim bounds.
func (s *ScatterCurve) sampleRange() (lo, hi float64) {
	if len(s.X) == 0 {
		return 0, 1
	}
	if s.XLog {
		first := true
		for _, v := range s.X {
			if v > 0 && (first || v < lo) {
				lo = v
				first = false
			}
		}
		if first {
			lo = 1
		}
	} else {
		lo = floats.Min(s.X)
	}
	hi = floats.Max(s.X)
	if s.XLim != nil {
		if !math.IsNaN(s.XLim.Min) {
			lo = s.XLim.Min
		}
		if !math.IsNaN(s.XLim.Max) {
			hi = s.XLim.Max
		}
	}
	return lo, hi
}
