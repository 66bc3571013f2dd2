package raylib

import (
	"islandgen/core"
)

// arrays holds a mesh in the separate per-attribute layout raylib uploads,
// with 16-bit indices.
type arrays struct {
	vertices  []float32
	normals   []float32
	texcoords []float32
	colors    []uint8
	indices   []uint16
}

// flatten converts m, which must carry normals and colors. UVs default to
// zero when absent.
func flatten(m *core.MeshBuffers) (*arrays, error) {
	indices, err := core.Indices16(m)
	if err != nil {
		return nil, err
	}

	n := len(m.Vertices)
	a := &arrays{
		vertices:  make([]float32, 0, 3*n),
		normals:   make([]float32, 0, 3*n),
		texcoords: make([]float32, 2*n),
		colors:    make([]uint8, 0, 4*n),
		indices:   indices,
	}
	for i, v := range m.Vertices {
		a.vertices = append(a.vertices, v[0], v[1], v[2])
		nrm := m.Normals[i]
		a.normals = append(a.normals, nrm[0], nrm[1], nrm[2])
		c := m.Colors[i]
		a.colors = append(a.colors, c.R, c.G, c.B, c.A)
	}
	if len(m.UVs) == n {
		for i, uv := range m.UVs {
			a.texcoords[2*i], a.texcoords[2*i+1] = uv[0], uv[1]
		}
	}
	return a, nil
}
