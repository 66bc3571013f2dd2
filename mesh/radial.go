package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"islandgen/core"
)

// Radial builds a floating island: a noise-displaced disk of concentric
// rings fused to an inverted cone underneath.
//
// Vertex layout is fixed and the triangle indices depend on it:
//
//	0                              top center
//	1 .. R*P                       top rings, ring-major then angle
//	1+R*P .. 2*R*P                 bottom rings, same order
//	2*R*P + 1                      cone apex
//
// Only positions and triangles are populated.
func (b *Builder) Radial(cfg RadialConfig) (*core.MeshBuffers, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rings, points := cfg.RingCount, cfg.PointsPerRing
	m := &core.MeshBuffers{
		Vertices:  make([]mgl32.Vec3, 0, cfg.VertexCount()),
		Triangles: make([]int32, 0, 3*(2*points+4*points*(rings-1))),
	}

	const center = 0
	m.Vertices = append(m.Vertices, mgl32.Vec3{0, 0, 0})

	// Seed is added in world space before scaling, unlike Grid which adds
	// it after scaling. Both orders are kept as-is; changing either moves
	// every generated island.
	seed := float32(cfg.Noise.Seed)
	for r := 1; r <= rings; r++ {
		t := float32(r) / float32(rings)
		radius := t * cfg.OuterRadius
		falloff := 1 - math32.Pow(t, 3)

		for p := 0; p < points; p++ {
			x, y := ringPoint(radius, p, points)
			height := b.sample((x+seed)*cfg.Noise.Scale, (y+seed)*cfg.Noise.Scale)
			m.Vertices = append(m.Vertices, mgl32.Vec3{x, y, height * cfg.Noise.Amplitude * falloff})
		}
	}

	bottomStart := int32(len(m.Vertices))

	for r := 1; r <= rings; r++ {
		t := float32(r) / float32(rings)
		radius := t * cfg.OuterRadius
		z := -cfg.BottomDepth * (1 - t)

		for p := 0; p < points; p++ {
			x, y := ringPoint(radius, p, points)
			m.Vertices = append(m.Vertices, mgl32.Vec3{x, y, z})
		}
	}

	bottomCenter := int32(len(m.Vertices))
	m.Vertices = append(m.Vertices, mgl32.Vec3{0, 0, -cfg.BottomDepth})

	pp := int32(points)

	// Top cap fan.
	for p := int32(0); p < pp; p++ {
		next := (p + 1) % pp
		m.Triangles = append(m.Triangles, center, 1+next, 1+p)
	}

	// Top walls.
	for r := int32(0); r < int32(rings)-1; r++ {
		ring := 1 + r*pp
		nextRing := ring + pp
		for p := int32(0); p < pp; p++ {
			next := (p + 1) % pp
			near, nearNext, far, farNext := ring+p, ring+next, nextRing+p, nextRing+next
			m.Triangles = append(m.Triangles,
				near, farNext, far,
				near, nearNext, farNext,
			)
		}
	}

	// Bottom walls, mirrored winding.
	for r := int32(0); r < int32(rings)-1; r++ {
		ring := bottomStart + r*pp
		nextRing := ring + pp
		for p := int32(0); p < pp; p++ {
			next := (p + 1) % pp
			near, nearNext, far, farNext := ring+p, ring+next, nextRing+p, nextRing+next
			m.Triangles = append(m.Triangles,
				near, far, farNext,
				near, farNext, nearNext,
			)
		}
	}

	// Bottom cap fan onto the apex.
	lastRing := bottomStart + (int32(rings)-1)*pp
	for p := int32(0); p < pp; p++ {
		next := (p + 1) % pp
		m.Triangles = append(m.Triangles, lastRing+p, bottomCenter, lastRing+next)
	}

	return m, nil
}

func ringPoint(radius float32, p, points int) (x, y float32) {
	angle := 2 * math32.Pi * (float32(p) / float32(points))
	return math32.Cos(angle) * radius, math32.Sin(angle) * radius
}
