package coplot

// Histogram draws the distribution of a data series in equal width
// bins. Non-finite values are excluded before binning.
type Histogram struct {
	X []float64

	FileName   string
	FileFormat string

	// Transform is applied to the series before binning.
	Transform func(float64) float64

	BinCount int
	Color    string

	XLim, YLim *Interval
}

// NewHistogram returns a histogram of x with the default settings.
func NewHistogram(x []float64) *Histogram {
	return &Histogram{X: x, BinCount: 10, FileFormat: "png"}
}

func (h *Histogram) Draw() (*Figure, error) {
	fig, err := h.draw()
	if err != nil {
		return nil, err
	}
	return fig, fig.saveIf(h.FileName, h.FileFormat)
}

func (h *Histogram) draw() (*Figure, error) {
	fig, err := NewFigure()
	if err != nil {
		return nil, err
	}
	x := dropNonFinite1(apply(h.Transform, h.X))

	bars, err := NewBars(x, h.BinCount)
	if err != nil {
		return nil, err
	}
	bars.Color = colorOrDefault(h.Color, DefaultColor)
	ax := fig.Axes[0]
	ax.Add(bars)
	ax.SetXLim(h.XLim)
	ax.SetYLim(h.YLim)
	return fig, nil
}

// HistogramVLines is a histogram with vertical reference lines at the
// given x positions. A single color or style entry is broadcast over all
// lines; the defaults are black, solid.
type HistogramVLines struct {
	Histogram

	X0         []float64
	LineColors []string
	LineStyles []string
}

// NewHistogramVLines returns a histogram of x with vertical rules at x0.
func NewHistogramVLines(x, x0 []float64) *HistogramVLines {
	return &HistogramVLines{Histogram: *NewHistogram(x), X0: x0}
}

func (h *HistogramVLines) Draw() (*Figure, error) {
	fig, err := h.Histogram.draw()
	if err != nil {
		return nil, err
	}
	ax := fig.Axes[0]
	colors := broadcast(h.LineColors, len(h.X0), "black")
	styles := broadcast(h.LineStyles, len(h.X0), "-")
	for i, x := range h.X0 {
		col := colorOrDefault(colors[i], String2Color("black"))
		ax.Add(NewVertLine(x, col, styles[i]))
	}
	// Range overrides win over anything the rules may have trained.
	ax.SetXLim(h.XLim)
	ax.SetYLim(h.YLim)
	return fig, fig.saveIf(h.FileName, h.FileFormat)
}
