package coplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFigure(t *testing.T) {
	fig, err := NewFigure()
	if err != nil {
		t.Fatal(err)
	}
	if fig.Width != DefaultWidth || fig.Height != DefaultHeight {
		t.Errorf("Got size %v x %v", fig.Width, fig.Height)
	}
	if len(fig.Axes) != 1 || fig.Axes[0].Plot == nil {
		t.Errorf("Got %d axes", len(fig.Axes))
	}
}

func TestSetLim(t *testing.T) {
	ax, err := newAxes()
	if err != nil {
		t.Fatal(err)
	}
	ax.Plot.X.Min, ax.Plot.X.Max = 0, 10

	ax.SetXLim(nil)
	if ax.Plot.X.Min != 0 || ax.Plot.X.Max != 10 {
		t.Errorf("nil interval changed the range")
	}

	// A NaN bound keeps the trained value.
	ax.SetXLim(&Interval{Min: 2, Max: math.NaN()})
	if ax.Plot.X.Min != 2 || ax.Plot.X.Max != 10 {
		t.Errorf("Got range [%g,%g]", ax.Plot.X.Min, ax.Plot.X.Max)
	}

	ax.SetYLim(Lim(-1, 1))
	if ax.Plot.Y.Min != -1 || ax.Plot.Y.Max != 1 {
		t.Errorf("Got range [%g,%g]", ax.Plot.Y.Min, ax.Plot.Y.Max)
	}
}

func TestAxesAdd(t *testing.T) {
	ax, err := newAxes()
	if err != nil {
		t.Fatal(err)
	}
	pts, err := NewPoints([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	ax.Add(pts)
	if len(ax.Artists()) != 1 {
		t.Errorf("Got %d artists", len(ax.Artists()))
	}
	// Adding trains the ranges.
	if ax.Plot.X.Min != 1 || ax.Plot.X.Max != 2 {
		t.Errorf("Got x range [%g,%g]", ax.Plot.X.Min, ax.Plot.X.Max)
	}
}

func TestSaveFormats(t *testing.T) {
	fig, err := NewScatter([]float64{1, 2, 3}, []float64{2, 4, 6}).Draw()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, name := range []string{"plot.png", "plot.svg", "plot.pdf"} {
		file := filepath.Join(dir, name)
		if err := fig.Save(file); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		st, err := os.Stat(file)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if err := fig.Save(filepath.Join(dir, "plot.bogus")); err == nil {
		t.Errorf("Unknown format did not fail")
	}
}

func TestSaveIf(t *testing.T) {
	fig, err := NewFigure()
	if err != nil {
		t.Fatal(err)
	}
	if err := fig.saveIf("", "png"); err != nil {
		t.Errorf("Empty file name should be a no-op: %v", err)
	}
	file := filepath.Join(t.TempDir(), "out")
	if err := fig.saveIf(file, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("File not written: %v", err)
	}
}
