// Package rendering holds the pieces shared by the desktop viewers: an
// orbit camera, viewer options and mesh preparation before upload.
package rendering

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"islandgen/core"
)

const (
	maxPitch    = 1.5
	sensitivity = 0.008
	zoomStep    = 0.1
	minDistance = 1
)

// OrbitCamera circles Target at Distance. Yaw turns around the Z axis and
// Pitch lifts the eye above the XY plane, both in radians.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
	FovY     float32 // degrees
	Aspect   float32
}

// NewOrbitCamera returns a camera looking down at the origin from the
// south-west for a width x height viewport.
func NewOrbitCamera(width, height int) *OrbitCamera {
	c := &OrbitCamera{
		Distance: 100,
		Yaw:      -3 * math32.Pi / 4,
		Pitch:    0.6,
		FovY:     45,
	}
	c.Resize(width, height)
	return c
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	dir := mgl32.Vec3{
		cp * math32.Cos(c.Yaw),
		cp * math32.Sin(c.Yaw),
		math32.Sin(c.Pitch),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

// View returns the Z-up look-at matrix.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, core.UpVector)
}

// Projection returns a perspective matrix whose clip planes follow the
// orbit distance.
func (c *OrbitCamera) Projection() mgl32.Mat4 {
	near, far := c.Clip()
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, near, far)
}

// Clip returns the near and far planes.
func (c *OrbitCamera) Clip() (near, far float32) {
	return c.Distance * 0.01, c.Distance * 10
}

// Rotate turns the camera by a mouse drag of dx, dy pixels.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.Yaw -= dx * sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*sensitivity, -maxPitch, maxPitch)
}

// Zoom moves the camera by scroll steps; positive steps move closer.
func (c *OrbitCamera) Zoom(steps float32) {
	c.Distance = math32.Max(minDistance, c.Distance*(1-steps*zoomStep))
}

// Resize updates the aspect ratio. Zero sizes (minimised windows) are
// ignored.
func (c *OrbitCamera) Resize(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// Fit aims the camera at the centre of the box lo..hi and backs off until
// the whole box is in view.
func (c *OrbitCamera) Fit(lo, hi mgl32.Vec3) {
	c.Target = lo.Add(hi).Mul(0.5)
	radius := hi.Sub(lo).Len() / 2
	if radius <= 0 {
		radius = minDistance
	}
	c.Distance = math32.Max(minDistance, 1.2*radius/math32.Sin(mgl32.DegToRad(c.FovY)/2))
}
