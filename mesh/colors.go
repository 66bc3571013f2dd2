package mesh

import (
	"image/color"

	"github.com/hsluv/hsluv-go"

	"islandgen/core"
)

// Palette maps normalized height to an HSLuv hue ramp. Hues are in degrees,
// saturation and lightness in [0, 100].
type Palette struct {
	LowHue     float64
	HighHue    float64
	Saturation float64
	Lightness  float64
}

// DefaultPalette runs from deep green lowlands to sandy peaks.
func DefaultPalette() Palette {
	return Palette{LowHue: 130, HighHue: 60, Saturation: 70, Lightness: 55}
}

// At returns the color for t in [0, 1]; values outside are clamped.
func (p Palette) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := hsluv.HsluvToRGB(p.LowHue+(p.HighHue-p.LowHue)*t, p.Saturation, p.Lightness)
	return color.RGBA{
		R: channel(r),
		G: channel(g),
		B: channel(b),
		A: 0xff,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}

// ColorByHeight replaces m.Colors with a gradient between the lowest and
// highest vertex. A flat mesh gets the low end of the palette everywhere.
func ColorByHeight(m *core.MeshBuffers, p Palette) {
	lo, hi := m.HeightRange()
	span := float64(hi - lo)

	m.Colors = make([]color.RGBA, len(m.Vertices))
	for i, v := range m.Vertices {
		var t float64
		if span > 0 {
			t = float64(v.Z()-lo) / span
		}
		m.Colors[i] = p.At(t)
	}
}
