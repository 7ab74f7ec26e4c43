package coplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultColor is the color used for data series when none is given.
// It is the first color of matplotlib's default cycle.
var DefaultColor = color.RGBA{0x1f, 0x77, 0xb4, 0xff}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// Single letter codes as used by matplotlib.
var letterColors = map[string]string{
	"b": "blue", "g": "green", "r": "red", "c": "cyan",
	"m": "magenta", "y": "yellow", "k": "black", "w": "white",
}

// String2Color parses a color given as "#rrggbb", "#rrggbbaa", a single
// letter code or a color name. Unparsable input yields DefaultColor.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.RGBA{r, g, b, a}
	}
	s = strings.ToLower(s)
	if full, ok := letterColors[s]; ok {
		s = full
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}
	return DefaultColor
}

// colorOrDefault keeps a nil default for empty strings so callers can
// distinguish "not set" from an explicit color.
func colorOrDefault(s string, def color.Color) color.Color {
	if s == "" {
		return def
	}
	return String2Color(s)
}

// parseColors maps a list of color strings to colors. A nil input stays nil.
func parseColors(ss []string) []color.Color {
	if ss == nil {
		return nil
	}
	cs := make([]color.Color, len(ss))
	for i, s := range ss {
		cs[i] = String2Color(s)
	}
	return cs
}

// -------------------------------------------------------------------------
// Lines

// String2Dashes turns a line style ("-", "--", ":", "-." or the names
// solid, dashed, dotted, dashdot) into a dash pattern. Solid lines have a
// nil pattern.
func String2Dashes(s string) []vg.Length {
	switch s {
	case "", "-", "solid":
		return nil
	case "--", "dashed":
		return []vg.Length{vg.Points(6), vg.Points(6)}
	case ":", "dotted":
		return []vg.Length{vg.Points(1), vg.Points(3)}
	case "-.", "dashdot":
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}
	}
	return nil
}

// lineStyle builds a gonum line style from a color and a style string.
func lineStyle(col color.Color, style string) draw.LineStyle {
	if col == nil {
		col = DefaultColor
	}
	return draw.LineStyle{
		Color:  col,
		Width:  vg.Points(1),
		Dashes: String2Dashes(style),
	}
}

// -------------------------------------------------------------------------
// Markers

// String2Glyph maps a matplotlib style marker sign onto a gonum glyph.
// Unknown signs fall back to a filled circle.
func String2Glyph(s string) draw.GlyphDrawer {
	switch s {
	case "", "o", ".":
		return draw.CircleGlyph{}
	case "s", "D", "d":
		return draw.BoxGlyph{}
	case "^":
		return draw.PyramidGlyph{}
	case "v":
		return draw.TriangleGlyph{}
	case "+":
		return draw.PlusGlyph{}
	case "x":
		return draw.CrossGlyph{}
	case "O":
		return draw.RingGlyph{}
	}
	return draw.CircleGlyph{}
}

// defaultMarkerRadius is roughly matplotlib's default marker size.
var defaultMarkerRadius = vg.Points(3)
