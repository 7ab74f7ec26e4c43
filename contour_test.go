package coplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
)

func contourTestData() ([]float64, []float64, [][]float64) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1}
	z := [][]float64{{0, 1}, {2, 3}, {4, 5}}
	return x, y, z
}

func TestContourEmptyInput(t *testing.T) {
	fig, err := NewContour(nil, nil, nil).Draw()
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Axes[0].Artists()) != 0 {
		t.Errorf("Empty input produced artists")
	}

	// Shape mismatch behaves the same way.
	fig, err = NewContour([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}}).Draw()
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Axes[0].Artists()) != 0 {
		t.Errorf("Mismatched input produced artists")
	}
}

func TestContourDraw(t *testing.T) {
	x, y, z := contourTestData()
	c := NewContour(x, y, z)
	fig, err := c.Draw()
	if err != nil {
		t.Fatal(err)
	}

	arts := fig.Axes[0].Artists()
	if len(arts) != 2 {
		t.Fatalf("Got %d artists", len(arts))
	}
	grid, ok := arts[0].(*ColorGrid)
	if !ok {
		t.Fatalf("First artist is %T", arts[0])
	}
	if len(grid.Levels) != 11 || grid.Levels[0] != 0 || grid.Levels[10] != 5 {
		t.Errorf("Got levels %v", grid.Levels)
	}
	if _, ok := arts[1].(*ContourLines); !ok {
		t.Errorf("Second artist is %T", arts[1])
	}

	if fig.colorbar == nil {
		t.Fatal("No color bar")
	}
	if fig.colorbar.Min != 0 || fig.colorbar.Max != 5 || len(fig.colorbar.Ticks) != 11 {
		t.Errorf("Got color bar %+v", fig.colorbar)
	}

	if fig.Axes[0].Plot.X.Label.Text != "x" || fig.Axes[0].Plot.Y.Label.Text != "y" {
		t.Errorf("Default axis labels missing")
	}
}

func TestContourFillRange(t *testing.T) {
	x, y, z := contourTestData()
	c := NewContour(x, y, z)
	c.FillRange = Lim(1, 4)
	fig, err := c.Draw()
	if err != nil {
		t.Fatal(err)
	}
	grid := fig.Axes[0].Artists()[0].(*ColorGrid)
	if grid.Min != 1 || grid.Max != 4 {
		t.Errorf("Got range [%g,%g]", grid.Min, grid.Max)
	}
	if grid.Levels != nil {
		t.Errorf("FillRange should clamp, not band")
	}
	if fig.colorbar.Min != 1 || fig.colorbar.Max != 4 {
		t.Errorf("Got color bar range [%g,%g]", fig.colorbar.Min, fig.colorbar.Max)
	}
	// Levels outside the clamped range carry no ticks.
	ticks := fig.colorbar.Ticks
	if len(ticks) != 7 || ticks[0] != 1 || ticks[6] != 4 {
		t.Errorf("Got ticks %v", ticks)
	}
}

func TestContourFillLog(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1}
	z := [][]float64{{1, 2}, {4, 8}, {16, 32}}
	c := NewContour(x, y, z)
	c.FillLog = true
	fig, err := c.Draw()
	if err != nil {
		t.Fatal(err)
	}
	grid := fig.Axes[0].Artists()[0].(*ColorGrid)
	want := []float64{1, 2, 4, 8, 16, 32}
	if len(grid.Levels) != len(want) {
		t.Fatalf("Got levels %v", grid.Levels)
	}
	for i := range want {
		if grid.Levels[i] != want[i] {
			t.Errorf("levels[%d] = %g, want %g", i, grid.Levels[i], want[i])
		}
	}
	if !fig.colorbar.Log {
		t.Errorf("Color bar not logarithmic")
	}
}

func TestContourScatterOverlay(t *testing.T) {
	x, y, z := contourTestData()
	c := NewContourScatter(x, y, z, []float64{0.5, 1.5}, []float64{0.2, 0.8})
	c.Colors = []string{"red", "blue"}
	c.Sizes = []float64{2, 4}
	c.Labels = []string{"a", "b"}
	fig, err := c.Draw()
	if err != nil {
		t.Fatal(err)
	}
	arts := fig.Axes[0].Artists()
	if len(arts) != 4 {
		t.Fatalf("Got %d artists", len(arts))
	}
	pts, ok := arts[2].(*Points)
	if !ok {
		t.Fatalf("Third artist is %T", arts[2])
	}
	if len(pts.XYs) != 2 || pts.Colors[0] != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("Got points %+v", pts)
	}
	if pts.Sizes[1] != vg.Points(4) {
		t.Errorf("Got sizes %v", pts.Sizes)
	}
	labels, ok := arts[3].(*PointLabels)
	if !ok {
		t.Fatalf("Fourth artist is %T", arts[3])
	}
	if len(labels.Texts) != 2 || labels.Texts[1] != "b" {
		t.Errorf("Got labels %v", labels.Texts)
	}
}

func TestContourVLinesBroadcast(t *testing.T) {
	x, y, z := contourTestData()
	c := NewContourVLines(x, y, z, []float64{0.5, 1.5})
	c.Colors = []string{"red"} // a single color applies to all rules
	fig, err := c.Draw()
	if err != nil {
		t.Fatal(err)
	}
	arts := fig.Axes[0].Artists()
	if len(arts) != 4 {
		t.Fatalf("Got %d artists", len(arts))
	}
	for i, a := range arts[2:] {
		v, ok := a.(*VertLine)
		if !ok {
			t.Fatalf("Artist %d is %T", i, a)
		}
		if v.Style.Color != (color.RGBA{0xff, 0, 0, 0xff}) {
			t.Errorf("Rule %d has color %v", i, v.Style.Color)
		}
		if v.Style.Dashes != nil {
			t.Errorf("Rule %d is not solid", i)
		}
	}
	if arts[2].(*VertLine).X != 0.5 || arts[3].(*VertLine).X != 1.5 {
		t.Errorf("Rule positions wrong")
	}
}
