package opengl

import (
	"image/color"

	"islandgen/mesh"
)

// HUD geometry in window pixels, origin top-left.
const (
	hudMargin     = 10
	hudWidth      = 180
	hudHeight     = 56
	hudBarHeight  = 10
	hudMaxFPSBar  = 150
	legendSteps   = 16
	hudFloatCount = 6 // x, y, r, g, b, a
)

var (
	hudBackground = [4]float32{0.1, 0.1, 0.3, 0.8}
	hudFPSColor   = [4]float32{0, 1, 0, 1}
)

// hudVertices lays out the overlay as colored triangles: a background box,
// an FPS bar as wide as the frame rate (capped) and the height palette from
// low to high.
func hudVertices(fps float64, p mesh.Palette) []float32 {
	out := make([]float32, 0, (2+legendSteps)*6*hudFloatCount)

	x, y := float32(hudMargin), float32(hudMargin)
	out = appendQuad(out, x, y, hudWidth, hudHeight, hudBackground)

	fpsWidth := float32(min(max(fps, 0), hudMaxFPSBar))
	out = appendQuad(out, x+hudMargin, y+hudMargin, fpsWidth, hudBarHeight, hudFPSColor)

	step := float32(hudWidth-2*hudMargin) / legendSteps
	legendY := y + hudHeight - hudMargin - 2*hudBarHeight
	for i := 0; i < legendSteps; i++ {
		c := rgba(p.At(float64(i) / (legendSteps - 1)))
		out = appendQuad(out, x+hudMargin+float32(i)*step, legendY, step, 2*hudBarHeight, c)
	}
	return out
}

func appendQuad(out []float32, x, y, w, h float32, c [4]float32) []float32 {
	corners := [6][2]float32{
		{x, y}, {x + w, y}, {x, y + h},
		{x + w, y}, {x + w, y + h}, {x, y + h},
	}
	for _, p := range corners {
		out = append(out, p[0], p[1], c[0], c[1], c[2], c[3])
	}
	return out
}

func rgba(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 0xff,
		float32(c.G) / 0xff,
		float32(c.B) / 0xff,
		float32(c.A) / 0xff,
	}
}
