package core

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default per-vertex attribute values used by builders that do not compute
// real shading data.
var (
	UpVector       = mgl32.Vec3{0, 0, 1}
	White          = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultTangent = Tangent{Dir: mgl32.Vec3{1, 0, 0}}
)

// Tangent is a surface tangent plus the handedness of the bitangent.
type Tangent struct {
	Dir   mgl32.Vec3
	FlipY bool
}

// W returns the handedness as the fourth tangent component (+1 or -1).
func (t Tangent) W() float32 {
	if t.FlipY {
		return -1
	}
	return 1
}

// MeshBuffers holds the output of a single generation call. Triangles index
// into Vertices, three per triangle. Any per-vertex attribute slice is
// either empty (not populated) or exactly len(Vertices) long.
type MeshBuffers struct {
	Vertices  []mgl32.Vec3
	Triangles []int32
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Colors    []color.RGBA
	Tangents  []Tangent
}

// TriangleCount returns the number of triangles.
func (m *MeshBuffers) TriangleCount() int { return len(m.Triangles) / 3 }

// Validate checks the buffer invariants: index count is a multiple of three,
// every index references a vertex, populated attributes match the vertex
// count and no position is NaN or infinite.
func (m *MeshBuffers) Validate() error {
	n := len(m.Vertices)
	if len(m.Triangles)%3 != 0 {
		return fmt.Errorf("triangle index count %d is not a multiple of 3", len(m.Triangles))
	}
	for i, idx := range m.Triangles {
		if idx < 0 || int(idx) >= n {
			return fmt.Errorf("triangle index %d at position %d out of range [0,%d)", idx, i, n)
		}
	}
	attrs := []struct {
		name string
		len  int
	}{
		{"normals", len(m.Normals)},
		{"uvs", len(m.UVs)},
		{"colors", len(m.Colors)},
		{"tangents", len(m.Tangents)},
	}
	for _, a := range attrs {
		if a.len != 0 && a.len != n {
			return fmt.Errorf("%s has %d entries for %d vertices", a.name, a.len, n)
		}
	}
	for i, v := range m.Vertices {
		for _, c := range v {
			if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
				return fmt.Errorf("vertex %d is not finite: %v", i, v)
			}
		}
	}
	return nil
}

// HeightRange returns the minimum and maximum Z over all vertices. An empty
// mesh reports (0, 0).
func (m *MeshBuffers) HeightRange() (lo, hi float32) {
	if len(m.Vertices) == 0 {
		return 0, 0
	}
	lo, hi = m.Vertices[0].Z(), m.Vertices[0].Z()
	for _, v := range m.Vertices[1:] {
		if v.Z() < lo {
			lo = v.Z()
		}
		if v.Z() > hi {
			hi = v.Z()
		}
	}
	return lo, hi
}

// Translate returns a copy of m with every vertex moved by offset. Index and
// attribute slices are copied too so the result shares nothing with m.
func (m *MeshBuffers) Translate(offset mgl32.Vec3) *MeshBuffers {
	out := &MeshBuffers{
		Vertices:  make([]mgl32.Vec3, len(m.Vertices)),
		Triangles: append([]int32(nil), m.Triangles...),
		Normals:   append([]mgl32.Vec3(nil), m.Normals...),
		UVs:       append([]mgl32.Vec2(nil), m.UVs...),
		Colors:    append([]color.RGBA(nil), m.Colors...),
		Tangents:  append([]Tangent(nil), m.Tangents...),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = v.Add(offset)
	}
	return out
}

// Merge concatenates meshes into one, rebasing triangle indices. An
// attribute is kept only when every part populates it.
func Merge(parts ...*MeshBuffers) *MeshBuffers {
	out := &MeshBuffers{}
	if len(parts) == 0 {
		return out
	}

	keepNormals, keepUVs, keepColors, keepTangents := true, true, true, true
	vertexCount, indexCount := 0, 0
	for _, p := range parts {
		n := len(p.Vertices)
		vertexCount += n
		indexCount += len(p.Triangles)
		keepNormals = keepNormals && len(p.Normals) == n
		keepUVs = keepUVs && len(p.UVs) == n
		keepColors = keepColors && len(p.Colors) == n
		keepTangents = keepTangents && len(p.Tangents) == n
	}

	out.Vertices = make([]mgl32.Vec3, 0, vertexCount)
	out.Triangles = make([]int32, 0, indexCount)
	for _, p := range parts {
		base := int32(len(out.Vertices))
		out.Vertices = append(out.Vertices, p.Vertices...)
		for _, idx := range p.Triangles {
			out.Triangles = append(out.Triangles, idx+base)
		}
		if keepNormals {
			out.Normals = append(out.Normals, p.Normals...)
		}
		if keepUVs {
			out.UVs = append(out.UVs, p.UVs...)
		}
		if keepColors {
			out.Colors = append(out.Colors, p.Colors...)
		}
		if keepTangents {
			out.Tangents = append(out.Tangents, p.Tangents...)
		}
	}
	return out
}
