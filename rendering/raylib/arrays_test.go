package raylib

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/core"
	"islandgen/mesh"
	"islandgen/rendering"
)

func TestFlattenGrid(t *testing.T) {
	m, err := mesh.BuildGrid(mesh.GridConfig{Width: 2, Height: 2, Spacing: 3})
	require.NoError(t, err)
	_, err = rendering.Prepare(m)
	require.NoError(t, err)

	a, err := flatten(m)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 0, 0, 0, 3, 0, 3, 0, 0, 3, 3, 0}, a.vertices)
	assert.Len(t, a.normals, 12)
	assert.Equal(t, []float32{0, 0, 0, 1, 1, 0, 1, 1}, a.texcoords)
	assert.Len(t, a.colors, 16)
	assert.Equal(t, []uint16{0, 2, 3, 0, 3, 1}, a.indices)

	c := m.Colors[3]
	assert.Equal(t, []uint8{c.R, c.G, c.B, c.A}, a.colors[12:16])
}

func TestFlattenRadialZeroUVs(t *testing.T) {
	m, err := mesh.BuildRadial(mesh.RadialConfig{RingCount: 1, PointsPerRing: 3, OuterRadius: 1})
	require.NoError(t, err)
	_, err = rendering.Prepare(m)
	require.NoError(t, err)

	a, err := flatten(m)
	require.NoError(t, err)
	assert.Len(t, a.vertices, 3*len(m.Vertices))
	assert.Equal(t, make([]float32, 2*len(m.Vertices)), a.texcoords)
}

func TestFlattenTooManyVertices(t *testing.T) {
	m := &core.MeshBuffers{
		Vertices:  make([]mgl32.Vec3, 1<<16+1),
		Triangles: []int32{0, 1, 2},
	}
	_, err := flatten(m)
	assert.ErrorContains(t, err, "16-bit")
}
