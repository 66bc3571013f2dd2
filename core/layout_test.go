package core

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaveLayout(t *testing.T) {
	m := quad()
	m.Colors[1] = color.RGBA{R: 0xff, A: 0xff}

	data := Interleave(m)
	require.Len(t, data, 4*VertexStride)

	v := data[1*VertexStride : 2*VertexStride]
	assert.Equal(t, []float32{0, 1, 1}, v[PositionOffset:PositionOffset+3])
	assert.Equal(t, []float32{0, 0, 1}, v[NormalOffset:NormalOffset+3])
	assert.Equal(t, []float32{0, 1}, v[TexcoordOffset:TexcoordOffset+2])
	assert.Equal(t, []float32{1, 0, 0, 1}, v[ColorOffset:ColorOffset+4])
}

func TestInterleaveDefaultsMissingAttributes(t *testing.T) {
	m := &MeshBuffers{
		Vertices:  []mgl32.Vec3{{1, 2, 3}},
		Triangles: nil,
	}
	data := Interleave(m)
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 1, 0, 0, 1, 1, 1, 1}, data)
}

func TestIndices(t *testing.T) {
	m := quad()
	assert.Equal(t, []uint32{0, 2, 3, 0, 3, 1}, Indices32(m))

	idx, err := Indices16(m)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 2, 3, 0, 3, 1}, idx)

	big := &MeshBuffers{Vertices: make([]mgl32.Vec3, 70000)}
	_, err = Indices16(big)
	assert.Error(t, err)
}

func TestNewMeshDataJSON(t *testing.T) {
	m := quad()
	data := NewMeshData("grid", 1337, m)

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "mesh", decoded["type"])
	assert.Equal(t, "grid", decoded["kind"])
	assert.EqualValues(t, 1337, decoded["seed"])
	assert.Len(t, decoded["vertices"], 4)
	assert.Len(t, decoded["indices"], 6)
	assert.EqualValues(t, -2, decoded["minHeight"])
	assert.EqualValues(t, 3, decoded["maxHeight"])

	m.UVs, m.Colors, m.Normals = nil, nil, nil
	raw, err = json.Marshal(NewMeshData("radial", 1, m))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "uvs")
	assert.NotContains(t, string(raw), "normals")
}
