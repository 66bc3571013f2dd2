package rendering

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"islandgen/core"
	"islandgen/mesh"
)

// RegenerateFunc builds a new mesh for seed. Viewers call it when the user
// asks for another seed.
type RegenerateFunc func(seed int32) (*core.MeshBuffers, error)

// Options configures a viewer window.
type Options struct {
	Width     int
	Height    int
	Title     string
	Wireframe bool

	// Seed is the seed of the first mesh; Regenerate is optional.
	Seed       int32
	Regenerate RegenerateFunc
}

// ErrEmptyMesh is returned when asked to upload a mesh without triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Prepare checks m and fills in normals and colors the renderers need. It
// modifies m in place and returns it.
func Prepare(m *core.MeshBuffers) (*core.MeshBuffers, error) {
	if m == nil || len(m.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(m.Normals) != len(m.Vertices) {
		m.Normals = mesh.RecalculateNormals(m.Vertices, m.Triangles)
	}
	if len(m.Colors) != len(m.Vertices) || allWhite(m) {
		mesh.ColorByHeight(m, mesh.DefaultPalette())
	}
	return m, nil
}

func allWhite(m *core.MeshBuffers) bool {
	for _, c := range m.Colors {
		if c != core.White {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of the vertices.
func Bounds(m *core.MeshBuffers) (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v[i])
			hi[i] = max(hi[i], v[i])
		}
	}
	return lo, hi
}
