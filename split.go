package coplot

import (
	"fmt"
)

// Split converts a single-axes figure into a grid of linked "broken
// axis" panels. Each column shows one x subrange and each row one y
// subrange of the source plot; diagonal markers at the panel corners
// indicate the breaks. Clonable artists of the source axes are cloned
// into every panel, text and bar artists are dropped, and artists that
// cannot be cloned at all (color grids, contour lines) make Apply fail.
type Split struct {
	// Subranges of the source axes shown per column and per row. An
	// empty list keeps the axis whole.
	XSubranges, YSubranges []Interval

	// Relative panel sizes. The unspecified tail is padded evenly so
	// the ratios sum to 1.
	XRatios, YRatios []float64

	// Spacing between panels as a fraction of the panel area.
	XSpacing, YSpacing float64

	FileName   string
	FileFormat string
}

// NewSplit returns a splitting configuration with the default spacing.
func NewSplit() *Split {
	return &Split{XSpacing: 0.05, YSpacing: 0.05, FileFormat: "png"}
}

// padRatios pads or trims a ratio list to n entries, distributing the
// remainder evenly over the missing tail.
func padRatios(ratios []float64, n int) []float64 {
	if len(ratios) >= n {
		return ratios[:n]
	}
	out := append([]float64(nil), ratios...)
	sum := 0.0
	for _, r := range out {
		sum += r
	}
	fill := (1 - sum) / float64(n-len(out))
	for len(out) < n {
		out = append(out, fill)
	}
	return out
}

func reverseIntervals(iv []Interval) []Interval {
	out := make([]Interval, len(iv))
	for i, v := range iv {
		out[len(iv)-1-i] = v
	}
	return out
}

func reverseFloats(fs []float64) []float64 {
	out := make([]float64, len(fs))
	for i, v := range fs {
		out[len(fs)-1-i] = v
	}
	return out
}

// Apply splits the first axes of src into a new figure. The source
// figure is left untouched.
func (s *Split) Apply(src *Figure) (*Figure, error) {
	if len(src.Axes) == 0 {
		return src, nil
	}
	source := src.Axes[0]

	cols := len(s.XSubranges)
	if cols < 1 {
		cols = 1
	}
	rows := len(s.YSubranges)
	if rows < 1 {
		rows = 1
	}
	xRatios := padRatios(s.XRatios, cols)
	yRatios := padRatios(s.YRatios, rows)

	// The vertical parameters are given bottom-up in axis terms but the
	// first y subrange belongs to the top row.
	ySubranges := reverseIntervals(s.YSubranges)
	yRatios = reverseFloats(yRatios)

	fig := &Figure{
		Width:    src.Width,
		Height:   src.Height,
		rows:     rows,
		cols:     cols,
		xRatios:  xRatios,
		yRatios:  yRatios,
		xSpacing: s.XSpacing,
		ySpacing: s.YSpacing,
		broken:   true,
	}

	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			panel, err := newAxes()
			if err != nil {
				return nil, err
			}
			for _, art := range source.Artists() {
				if skippable(art) {
					continue
				}
				clone, err := CloneArtist(art)
				if err != nil {
					return nil, fmt.Errorf("coplot: cannot split axes: %w", err)
				}
				panel.Add(clone)
			}
			panel.SetLog(source.XLog, source.YLog)

			if i < len(s.XSubranges) {
				sub := s.XSubranges[i]
				panel.SetXLim(&sub)
			} else {
				panel.Plot.X.Min = source.Plot.X.Min
				panel.Plot.X.Max = source.Plot.X.Max
			}
			if j < len(ySubranges) {
				sub := ySubranges[j]
				panel.SetYLim(&sub)
			} else {
				panel.Plot.Y.Min = source.Plot.Y.Min
				panel.Plot.Y.Max = source.Plot.Y.Max
			}

			// Ticks and axis lines only at the outer bottom and left
			// edges; the seams stay open.
			if j < rows-1 {
				panel.Plot.HideX()
			}
			if i > 0 {
				panel.Plot.HideY()
			}
			fig.Axes = append(fig.Axes, panel)
		}
	}

	fig.SupXLabel = source.Plot.X.Label.Text
	fig.SupYLabel = source.Plot.Y.Label.Text
	fig.SupTitle = source.Plot.Title.Text

	return fig, fig.saveIf(s.FileName, s.FileFormat)
}
