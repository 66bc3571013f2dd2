package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RecalculateNormals derives faceted per-vertex normals from triangle
// geometry. Triangles are visited in index order and each one overwrites
// the normals of its three vertices, so a shared vertex ends up with the
// face normal of the last triangle that uses it. Nothing is averaged.
//
// Degenerate triangles produce a zero normal. Vertices not referenced by any
// triangle keep a zero normal.
func RecalculateNormals(vertices []mgl32.Vec3, triangles []int32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(vertices))
	for i := 0; i+2 < len(triangles); i += 3 {
		ia, ib, ic := triangles[i], triangles[i+1], triangles[i+2]
		a, b, c := vertices[ia], vertices[ib], vertices[ic]

		n := safeNormalize(b.Sub(a).Cross(c.Sub(a)))
		normals[ia] = n
		normals[ib] = n
		normals[ic] = n
	}
	return normals
}

// safeNormalize returns the unit vector along v, or the zero vector when v
// is too short to normalize.
func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
