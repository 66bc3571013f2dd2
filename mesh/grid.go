package mesh

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"islandgen/core"
)

// Grid builds a Width x Height vertex grid in the XY plane, displaced along
// Z by noise with a soft radial falloff toward the corners.
//
// Vertices are stored column-major (index x*Height + y). Normals, colors and
// tangents are flat defaults; call RecalculateNormals for shading normals.
func (b *Builder) Grid(cfg GridConfig) (*core.MeshBuffers, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := cfg.Width, cfg.Height
	n := w * h
	m := &core.MeshBuffers{
		Vertices:  make([]mgl32.Vec3, 0, n),
		Triangles: make([]int32, 0, 6*(w-1)*(h-1)),
		Normals:   make([]mgl32.Vec3, 0, n),
		UVs:       make([]mgl32.Vec2, 0, n),
		Colors:    make([]color.RGBA, 0, n),
		Tangents:  make([]core.Tangent, 0, n),
	}

	seed := float32(cfg.Noise.Seed)
	for x := 0; x < w; x++ {
		fx := float32(x)
		for y := 0; y < h; y++ {
			fy := float32(y)

			// Unclamped: corners sit at dist ~0.707 and keep a small
			// positive weight.
			nx := fx/float32(w) - 0.5
			ny := fy/float32(h) - 0.5
			dist := math32.Sqrt(nx*nx + ny*ny)

			height := b.sample(fx*cfg.Noise.Scale+seed, fy*cfg.Noise.Scale+seed)
			z := height * cfg.Noise.Amplitude * (1 - dist)

			m.Vertices = append(m.Vertices, mgl32.Vec3{fx * cfg.Spacing, fy * cfg.Spacing, z})
			m.UVs = append(m.UVs, mgl32.Vec2{fx / float32(w-1), fy / float32(h-1)})
			m.Normals = append(m.Normals, core.UpVector)
			m.Colors = append(m.Colors, core.White)
			m.Tangents = append(m.Tangents, core.DefaultTangent)
		}
	}

	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			i := int32(x*h + y)
			hh := int32(h)

			m.Triangles = append(m.Triangles,
				i, i+hh, i+hh+1,
				i, i+hh+1, i+1,
			)
		}
	}

	return m, nil
}
