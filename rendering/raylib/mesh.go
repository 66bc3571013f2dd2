//go:build !headless

package raylib

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"islandgen/core"
)

// gpuMesh is a raylib mesh whose CPU-side arrays are Go slices. The slices
// stay pinned while raylib holds pointers to them.
type gpuMesh struct {
	mesh   rl.Mesh
	data   *arrays
	pinner runtime.Pinner
}

// upload sends m to the GPU. m must carry normals and colors and have at
// most 65536 vertices.
func upload(m *core.MeshBuffers) (*gpuMesh, error) {
	a, err := flatten(m)
	if err != nil {
		return nil, err
	}

	g := &gpuMesh{data: a}
	g.pinner.Pin(&a.vertices[0])
	g.pinner.Pin(&a.normals[0])
	g.pinner.Pin(&a.texcoords[0])
	g.pinner.Pin(&a.colors[0])
	g.pinner.Pin(&a.indices[0])

	g.mesh = rl.Mesh{
		VertexCount:   int32(len(m.Vertices)),
		TriangleCount: int32(m.TriangleCount()),
		Vertices:      &a.vertices[0],
		Normals:       &a.normals[0],
		Texcoords:     &a.texcoords[0],
		Colors:        &a.colors[0],
		Indices:       &a.indices[0],
	}
	rl.UploadMesh(&g.mesh, false)
	return g, nil
}

// unload frees the GPU buffers. The CPU pointers are cleared first so
// raylib does not try to free Go memory.
func (g *gpuMesh) unload() {
	g.mesh.Vertices = nil
	g.mesh.Normals = nil
	g.mesh.Texcoords = nil
	g.mesh.Colors = nil
	g.mesh.Indices = nil
	rl.UnloadMesh(&g.mesh)
	g.pinner.Unpin()
	g.data = nil
}
