//go:build !headless

package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"islandgen/core"
)

const floatSize = 4

// GPUMesh is a mesh uploaded as one interleaved vertex buffer and a 32-bit
// element buffer.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Upload copies m to the GPU. m must already carry normals and colors; see
// rendering.Prepare.
func Upload(m *core.MeshBuffers) *GPUMesh {
	vertices := core.Interleave(m)
	indices := core.Indices32(m)
	g := &GPUMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(core.VertexStride * floatSize)
	attribute(0, 3, stride, core.PositionOffset)
	attribute(1, 3, stride, core.NormalOffset)
	attribute(2, 2, stride, core.TexcoordOffset)
	attribute(3, 4, stride, core.ColorOffset)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

func attribute(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset*floatSize))
	gl.EnableVertexAttribArray(index)
}

// Draw issues the indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers.
func (g *GPUMesh) Delete() {
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
}
