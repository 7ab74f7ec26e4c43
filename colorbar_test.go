package coplot

import (
	"testing"
)

func TestGradientGrid(t *testing.T) {
	g := gradientGrid{min: 0, max: 10, n: 5}
	if c, r := g.Dims(); c != 1 || r != 5 {
		t.Fatalf("Got dims %dx%d", c, r)
	}
	if g.Y(0) != 1 || g.Y(4) != 9 {
		t.Errorf("Got ys %g and %g", g.Y(0), g.Y(4))
	}
	if g.Z(0, 2) != g.Y(2) {
		t.Errorf("Z and Y disagree")
	}
}

func TestColorBarTicks(t *testing.T) {
	pal, _ := PaletteByName("gray", 8)

	// Linear bars without explicit ticks keep the automatic ones.
	cb, err := newColorBar(pal, 0, 5, false, nil, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if ticks := cb.tickList(); ticks != nil {
		t.Errorf("Got ticks %v", ticks)
	}

	cb, err = newColorBar(pal, 0, 5, false, []float64{0, 2.5, 5}, "value", 1)
	if err != nil {
		t.Fatal(err)
	}
	ticks := cb.tickList()
	if len(ticks) != 3 || ticks[1].Value != 2.5 || ticks[1].Label != "2.5" {
		t.Errorf("Got ticks %v", ticks)
	}
	if cb.plt.Y.Label.Text != "value" {
		t.Errorf("Got label %q", cb.plt.Y.Label.Text)
	}
}

func TestColorBarLogTicks(t *testing.T) {
	pal, _ := PaletteByName("gray", 8)
	cb, err := newColorBar(pal, 1, 100, true, nil, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	ticks := cb.tickList()
	if len(ticks) != 3 {
		t.Fatalf("Got ticks %v", ticks)
	}
	// Positions run in log10 space, labels in data units.
	if ticks[0].Value != 0 || ticks[0].Label != "1" {
		t.Errorf("Got tick %v", ticks[0])
	}
	if ticks[2].Value != 2 || ticks[2].Label != "100" {
		t.Errorf("Got tick %v", ticks[2])
	}
}

func TestColorBarLogNeedsPositiveRange(t *testing.T) {
	pal, _ := PaletteByName("gray", 8)
	if _, err := newColorBar(pal, -1, 100, true, nil, "", 1); err == nil {
		t.Errorf("Nonpositive log range did not fail")
	}
}

func TestColorBarShrinkClamped(t *testing.T) {
	pal, _ := PaletteByName("gray", 8)
	cb, err := newColorBar(pal, 0, 1, false, nil, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if cb.Shrink != 1 {
		t.Errorf("Got shrink %g", cb.Shrink)
	}
	if cb, _ = newColorBar(pal, 0, 1, false, nil, "", 2); cb.Shrink != 1 {
		t.Errorf("Got shrink %g", cb.Shrink)
	}
}
