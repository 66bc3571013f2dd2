package rendering

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/core"
	"islandgen/mesh"
)

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera(800, 400)
	assert.Equal(t, float32(2), c.Aspect)

	c.Target = mgl32.Vec3{1, 2, 3}
	c.Distance, c.Yaw, c.Pitch = 10, 0, 0
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{11, 2, 3}, 1e-5), "got %v", c.Position())

	c.Pitch = maxPitch
	p := c.Position()
	assert.Greater(t, p.Z(), float32(12), "high pitch puts the eye above the target")
	assert.InDelta(t, 10, p.Sub(c.Target).Len(), 1e-4)
}

func TestOrbitCameraViewLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera(640, 480)
	c.Target = mgl32.Vec3{5, -5, 2}
	c.Distance = 50

	eye := c.View().Mul4x1(c.Position().Vec4(1))
	assert.InDelta(t, 0, eye.Vec3().Len(), 1e-3, "the eye maps to the view origin")

	target := c.View().Mul4x1(c.Target.Vec4(1))
	assert.InDelta(t, 0, target.X(), 1e-3)
	assert.InDelta(t, 0, target.Y(), 1e-3)
	assert.InDelta(t, -50, target.Z(), 1e-3, "the target is straight ahead")
}

func TestOrbitCameraRotateClampsPitch(t *testing.T) {
	c := NewOrbitCamera(100, 100)
	c.Rotate(0, 10000)
	assert.Equal(t, float32(maxPitch), c.Pitch)
	c.Rotate(0, -20000)
	assert.Equal(t, float32(-maxPitch), c.Pitch)

	yaw := c.Yaw
	c.Rotate(100, 0)
	assert.InDelta(t, yaw-100*sensitivity, c.Yaw, 1e-6)
}

func TestOrbitCameraZoom(t *testing.T) {
	c := NewOrbitCamera(100, 100)
	c.Distance = 100
	c.Zoom(1)
	assert.InDelta(t, 90, c.Distance, 1e-4)
	c.Zoom(-1)
	assert.InDelta(t, 99, c.Distance, 1e-4)
	c.Zoom(100)
	assert.Equal(t, float32(minDistance), c.Distance)

	near, far := c.Clip()
	assert.Less(t, near, far)
}

func TestOrbitCameraResizeIgnoresZero(t *testing.T) {
	c := NewOrbitCamera(300, 100)
	c.Resize(0, 0)
	assert.Equal(t, float32(3), c.Aspect)
}

func TestOrbitCameraFit(t *testing.T) {
	c := NewOrbitCamera(100, 100)
	c.Fit(mgl32.Vec3{-10, -10, -4}, mgl32.Vec3{10, 10, 0})
	assert.Equal(t, mgl32.Vec3{0, 0, -2}, c.Target)
	assert.Greater(t, c.Distance, float32(14))

	c.Fit(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1})
	assert.GreaterOrEqual(t, c.Distance, float32(minDistance))
}

func TestPrepareFillsAttributes(t *testing.T) {
	m, err := mesh.BuildRadial(mesh.RadialConfig{RingCount: 2, PointsPerRing: 6, OuterRadius: 10, BottomDepth: 4})
	require.NoError(t, err)

	out, err := Prepare(m)
	require.NoError(t, err)
	assert.Same(t, m, out)
	assert.Len(t, m.Normals, len(m.Vertices))
	assert.Len(t, m.Colors, len(m.Vertices))
	assert.NotEqual(t, core.White, m.Colors[0])
}

func TestPrepareKeepsExistingNormals(t *testing.T) {
	m, err := mesh.BuildGrid(mesh.GridConfig{Width: 3, Height: 3, Spacing: 1})
	require.NoError(t, err)
	m.Normals[0] = mgl32.Vec3{1, 0, 0}

	_, err = Prepare(m)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Normals[0])
	assert.NotEqual(t, core.White, m.Colors[0], "all-white placeholder colors are replaced")
}

func TestPrepareRejects(t *testing.T) {
	_, err := Prepare(nil)
	assert.ErrorIs(t, err, ErrEmptyMesh)

	_, err = Prepare(&core.MeshBuffers{Vertices: []mgl32.Vec3{{0, 0, 0}}})
	assert.ErrorIs(t, err, ErrEmptyMesh)

	_, err = Prepare(&core.MeshBuffers{
		Vertices:  []mgl32.Vec3{{0, 0, 0}},
		Triangles: []int32{0, 0, 7},
	})
	assert.Error(t, err)
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(&core.MeshBuffers{})
	assert.Equal(t, mgl32.Vec3{}, lo)
	assert.Equal(t, mgl32.Vec3{}, hi)

	lo, hi = Bounds(&core.MeshBuffers{Vertices: []mgl32.Vec3{{1, -2, 3}, {-4, 5, 0}, {2, 0, -6}}})
	assert.Equal(t, mgl32.Vec3{-4, -2, -6}, lo)
	assert.Equal(t, mgl32.Vec3{2, 5, 3}, hi)
}
