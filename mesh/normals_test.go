package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/core"
)

func TestRecalculateNormalsSingleTriangle(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 3, 0}}
	normals := RecalculateNormals(vertices, []int32{0, 1, 2})

	require.Len(t, normals, 3)
	for _, n := range normals {
		assert.True(t, n.ApproxEqual(mgl32.Vec3{0, 0, 1}), "got %v", n)
	}
}

func TestRecalculateNormalsOverwritesSharedVertices(t *testing.T) {
	// Two triangles share the edge 0-1. The first faces +Z, the second
	// is folded up into the XZ plane and faces +Y.
	vertices := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	triangles := []int32{
		0, 1, 2,
		0, 3, 1,
	}
	normals := RecalculateNormals(vertices, triangles)

	require.Len(t, normals, 4)
	last := mgl32.Vec3{0, 1, 0}
	assert.Equal(t, last, normals[0], "shared vertex takes the last face")
	assert.Equal(t, last, normals[1], "shared vertex takes the last face")
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, normals[2])
	assert.Equal(t, last, normals[3])
}

func TestRecalculateNormalsDegenerate(t *testing.T) {
	vertices := []mgl32.Vec3{{1, 1, 1}, {1, 1, 1}, {2, 2, 2}, {5, 5, 5}}
	normals := RecalculateNormals(vertices, []int32{0, 1, 2})

	require.Len(t, normals, 4)
	for i, n := range normals {
		assert.Equal(t, mgl32.Vec3{}, n, "normal %d", i)
	}
}

func TestRecalculateNormalsFlatGridFacesUp(t *testing.T) {
	m, err := BuildGrid(GridConfig{Width: 6, Height: 5, Spacing: 3})
	require.NoError(t, err)

	normals := RecalculateNormals(m.Vertices, m.Triangles)
	require.Len(t, normals, len(m.Vertices))
	for i, n := range normals {
		assert.InDelta(t, 1, n.Z(), 1e-6, "normal %d", i)
	}
}

func TestRecalculateNormalsRadial(t *testing.T) {
	m, err := BuildRadial(DefaultRadialConfig())
	require.NoError(t, err)

	m.Normals = RecalculateNormals(m.Vertices, m.Triangles)
	require.NoError(t, m.Validate())
	for i, n := range m.Normals {
		assert.InDelta(t, 1, n.Len(), 1e-4, "every radial vertex is used by a proper triangle: %d", i)
	}
}

func TestColorByHeight(t *testing.T) {
	m := &core.MeshBuffers{
		Vertices: []mgl32.Vec3{{0, 0, -10}, {1, 0, 0}, {2, 0, 10}},
	}
	p := DefaultPalette()
	ColorByHeight(m, p)

	require.Len(t, m.Colors, 3)
	assert.Equal(t, p.At(0), m.Colors[0])
	assert.Equal(t, p.At(0.5), m.Colors[1])
	assert.Equal(t, p.At(1), m.Colors[2])
	assert.NotEqual(t, m.Colors[0], m.Colors[2])
	for _, c := range m.Colors {
		assert.Equal(t, uint8(0xff), c.A)
	}
}

func TestColorByHeightFlat(t *testing.T) {
	m, err := BuildGrid(GridConfig{Width: 3, Height: 3, Spacing: 1})
	require.NoError(t, err)

	p := DefaultPalette()
	ColorByHeight(m, p)
	for _, c := range m.Colors {
		assert.Equal(t, p.At(0), c)
	}
}

func TestPaletteClamps(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.At(0), p.At(-3))
	assert.Equal(t, p.At(1), p.At(42))
}
