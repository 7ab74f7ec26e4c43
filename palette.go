package coplot

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// slicePalette adapts a fixed color list to palette.Palette.
type slicePalette []color.Color

func (p slicePalette) Colors() []color.Color { return p }

// Anchor stops of the viridis color map; intermediate colors are blended
// in Lab space.
var viridisAnchors = []string{
	"#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c",
	"#28ae80", "#5ec962", "#addc30", "#fde725",
}

// PaletteByName resolves a palette name to n colors. Known names are
// viridis, turbo, gray (grays/greys), rainbow, coolwarm, kindlmann and
// blackbody; anything else is tried as a ColorBrewer palette name.
func PaletteByName(name string, n int) (palette.Palette, error) {
	if n < 1 {
		n = 1
	}
	switch strings.ToLower(name) {
	case "viridis":
		return blendPalette(viridisAnchors, n)
	case "turbo":
		return turboPalette(n), nil
	case "gray", "grays", "greys":
		return grayPalette(n), nil
	case "rainbow":
		return palette.Rainbow(n, palette.Red, palette.Magenta, 1, 1, 1), nil
	case "coolwarm":
		return colorMapPalette(moreland.SmoothBlueRed(), n)
	case "kindlmann":
		return colorMapPalette(moreland.Kindlmann(), n)
	case "blackbody":
		return colorMapPalette(moreland.BlackBody(), n)
	}
	for _, typ := range []brewer.PaletteType{
		brewer.TypeSequential, brewer.TypeDiverging, brewer.TypeQualitative,
	} {
		if p, err := brewer.GetPalette(typ, name, n); err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("coplot: unknown palette %q", name)
}

// blendPalette interpolates between anchor colors in Lab space.
func blendPalette(anchors []string, n int) (palette.Palette, error) {
	stops := make([]colorful.Color, len(anchors))
	for i, hex := range anchors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("coplot: bad palette anchor %q: %w", hex, err)
		}
		stops[i] = c
	}
	out := make(slicePalette, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pos := t * float64(len(stops)-1)
		k := int(pos)
		if k >= len(stops)-1 {
			out[i] = stops[len(stops)-1]
			continue
		}
		out[i] = stops[k].BlendLab(stops[k+1], pos-float64(k)).Clamped()
	}
	return out, nil
}

// turboPalette evaluates Google's polynomial approximation of the turbo
// color map.
func turboPalette(n int) palette.Palette {
	out := make(slicePalette, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := 0.13572138 + t*(4.61539260+t*(-42.66032258+t*(132.13108234+t*(-152.94239396+t*59.28637943))))
		g := 0.09140261 + t*(2.19418839+t*(4.84296658+t*(-14.18503333+t*(4.27729857+t*2.82956604))))
		b := 0.10667330 + t*(12.64194608+t*(-60.58204836+t*(110.36276771+t*(-89.90310912+t*27.34824973))))
		out[i] = colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
	}
	return out
}

func grayPalette(n int) palette.Palette {
	out := make(slicePalette, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		v := uint8(t * 0xff)
		out[i] = color.RGBA{v, v, v, 0xff}
	}
	return out
}

// colorMapPalette samples n colors from a continuous color map.
func colorMapPalette(cm palette.ColorMap, n int) (palette.Palette, error) {
	cm.SetMin(0)
	cm.SetMax(1)
	out := make(slicePalette, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, err := cm.At(t)
		if err != nil {
			return nil, fmt.Errorf("coplot: cannot sample color map: %w", err)
		}
		out[i] = c
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
