package coplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg/draw"
)

func TestString2Color(t *testing.T) {
	if c := String2Color("#ff0000"); c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("Got %v", c)
	}
	if c := String2Color("#00ff0080"); c != (color.RGBA{0, 0xff, 0, 0x80}) {
		t.Errorf("Got %v", c)
	}
	if c := String2Color("k"); c != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("Got %v", c)
	}
	if c := String2Color("Orange"); c != (color.RGBA{0xff, 0xa5, 0, 0xff}) {
		t.Errorf("Got %v", c)
	}
	if c := String2Color("no-such-color"); c != color.Color(DefaultColor) {
		t.Errorf("Got %v", c)
	}
}

func TestColorOrDefault(t *testing.T) {
	if c := colorOrDefault("", nil); c != nil {
		t.Errorf("Got %v", c)
	}
	if c := colorOrDefault("red", nil); c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("Got %v", c)
	}
}

func TestParseColors(t *testing.T) {
	if cs := parseColors(nil); cs != nil {
		t.Errorf("Got %v", cs)
	}
	cs := parseColors([]string{"red", "blue"})
	if len(cs) != 2 || cs[1] != (color.RGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("Got %v", cs)
	}
}

func TestString2Dashes(t *testing.T) {
	if d := String2Dashes("-"); d != nil {
		t.Errorf("Got %v", d)
	}
	if d := String2Dashes("--"); len(d) != 2 {
		t.Errorf("Got %v", d)
	}
	if d := String2Dashes("dotted"); len(d) != 2 {
		t.Errorf("Got %v", d)
	}
	if d := String2Dashes("-."); len(d) != 4 {
		t.Errorf("Got %v", d)
	}
}

func TestString2Glyph(t *testing.T) {
	if _, ok := String2Glyph("o").(draw.CircleGlyph); !ok {
		t.Errorf("o is not a circle")
	}
	if _, ok := String2Glyph("s").(draw.BoxGlyph); !ok {
		t.Errorf("s is not a box")
	}
	if _, ok := String2Glyph("x").(draw.CrossGlyph); !ok {
		t.Errorf("x is not a cross")
	}
	if _, ok := String2Glyph("??").(draw.CircleGlyph); !ok {
		t.Errorf("unknown sign does not fall back to a circle")
	}
}
