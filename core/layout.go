package core

import (
	"fmt"
	"math"
)

// Interleaved vertex layout shared by the GPU uploaders:
// position (3), normal (3), texcoord (2), color (4).
const (
	PositionOffset = 0
	NormalOffset   = 3
	TexcoordOffset = 6
	ColorOffset    = 8
	VertexStride   = 12
)

// Interleave packs the mesh into a single float32 slice using the layout
// above. Missing normals default to UpVector, missing UVs to zero and
// missing colors to White.
func Interleave(m *MeshBuffers) []float32 {
	hasNormals := len(m.Normals) == len(m.Vertices)
	hasUVs := len(m.UVs) == len(m.Vertices)
	hasColors := len(m.Colors) == len(m.Vertices)

	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		n := UpVector
		if hasNormals {
			n = m.Normals[i]
		}
		var u, w float32
		if hasUVs {
			u, w = m.UVs[i][0], m.UVs[i][1]
		}
		c := White
		if hasColors {
			c = m.Colors[i]
		}

		out = append(out, v[0], v[1], v[2])
		out = append(out, n[0], n[1], n[2])
		out = append(out, u, w)
		out = append(out,
			float32(c.R)/0xff,
			float32(c.G)/0xff,
			float32(c.B)/0xff,
			float32(c.A)/0xff,
		)
	}
	return out
}

// Indices32 converts triangle indices for 32-bit element buffers.
func Indices32(m *MeshBuffers) []uint32 {
	out := make([]uint32, len(m.Triangles))
	for i, idx := range m.Triangles {
		out[i] = uint32(idx)
	}
	return out
}

// Indices16 converts triangle indices for renderers limited to 16-bit
// element buffers. It fails when the mesh has more vertices than a uint16
// can address.
func Indices16(m *MeshBuffers) ([]uint16, error) {
	if len(m.Vertices) > math.MaxUint16+1 {
		return nil, fmt.Errorf("mesh has %d vertices, 16-bit indices address at most %d", len(m.Vertices), math.MaxUint16+1)
	}
	out := make([]uint16, len(m.Triangles))
	for i, idx := range m.Triangles {
		out[i] = uint16(idx)
	}
	return out, nil
}
