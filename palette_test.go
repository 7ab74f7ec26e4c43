package coplot

import (
	"testing"
)

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{
		"viridis", "turbo", "gray", "rainbow", "coolwarm", "kindlmann", "blackbody",
	} {
		p, err := PaletteByName(name, 7)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if n := len(p.Colors()); n != 7 {
			t.Errorf("%s: got %d colors", name, n)
		}
	}

	// ColorBrewer names work as a fallback.
	p, err := PaletteByName("RdBu", 5)
	if err != nil {
		t.Fatalf("RdBu: %v", err)
	}
	if n := len(p.Colors()); n != 5 {
		t.Errorf("RdBu: got %d colors", n)
	}

	if _, err := PaletteByName("no-such-palette", 5); err == nil {
		t.Errorf("Unknown palette did not fail")
	}
}

func TestViridisEndpoints(t *testing.T) {
	p, err := PaletteByName("viridis", 9)
	if err != nil {
		t.Fatal(err)
	}
	cs := p.Colors()
	r, g, b, _ := cs[0].RGBA()
	if r>>8 != 0x44 || g>>8 != 0x01 || b>>8 != 0x54 {
		t.Errorf("Got first color #%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = cs[8].RGBA()
	if r>>8 != 0xfd || g>>8 != 0xe7 || b>>8 != 0x25 {
		t.Errorf("Got last color #%02x%02x%02x", r>>8, g>>8, b>>8)
	}
}

func TestTurboEndpoints(t *testing.T) {
	p, err := PaletteByName("turbo", 16)
	if err != nil {
		t.Fatal(err)
	}
	cs := p.Colors()
	// Turbo runs from dark blue to dark red.
	r, _, b, _ := cs[0].RGBA()
	if b <= r {
		t.Errorf("First color not blueish: r=%d b=%d", r, b)
	}
	r, _, b, _ = cs[15].RGBA()
	if r <= b {
		t.Errorf("Last color not reddish: r=%d b=%d", r, b)
	}
}

func TestRainbowEndpoints(t *testing.T) {
	p, err := PaletteByName("rainbow", 6)
	if err != nil {
		t.Fatal(err)
	}
	cs := p.Colors()
	if len(cs) != 6 {
		t.Fatalf("Got %d colors", len(cs))
	}
	// The hues run from red to magenta.
	r, _, b, _ := cs[0].RGBA()
	if r <= b {
		t.Errorf("First color not red: r=%d b=%d", r, b)
	}
	r, g, b, _ := cs[5].RGBA()
	if r <= g || b <= g {
		t.Errorf("Last color not magenta: r=%d g=%d b=%d", r, g, b)
	}
}

func TestGrayPalette(t *testing.T) {
	p, err := PaletteByName("greys", 3)
	if err != nil {
		t.Fatal(err)
	}
	cs := p.Colors()
	if r, g, b, _ := cs[0].RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("First color not black")
	}
	if r, g, b, _ := cs[2].RGBA(); r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Errorf("Last color not white")
	}
}
