//go:build !headless

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"islandgen/mesh"
)

const hudVertexShader = `
#version 410 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec4 color;

out vec4 fragColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragColor = color;
}
`

const hudFragmentShader = `
#version 410 core

in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
`

// HUD draws the frame rate bar and height legend over the scene.
type HUD struct {
	program uint32
	vao     uint32
	vbo     uint32
	uProj   int32

	width   float32
	height  float32
	palette mesh.Palette
	fps     float64
}

// NewHUD creates the overlay for a window of width x height pixels.
func NewHUD(width, height int, palette mesh.Palette) (*HUD, error) {
	program, err := linkProgram(hudVertexShader, hudFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to compile HUD shaders: %v", err)
	}

	h := &HUD{
		program: program,
		uProj:   gl.GetUniformLocation(program, gl.Str("projection\x00")),
		width:   float32(width),
		height:  float32(height),
		palette: palette,
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	stride := int32(hudFloatCount * floatSize)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*floatSize))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return h, nil
}

// Resize updates the orthographic projection size.
func (h *HUD) Resize(width, height int) {
	h.width, h.height = float32(width), float32(height)
}

// SetFPS sets the frame rate shown by the bar.
func (h *HUD) SetFPS(fps float64) {
	h.fps = fps
}

// Render draws the overlay. Depth testing is suspended while drawing.
func (h *HUD) Render() {
	vertices := hudVertices(h.fps, h.palette)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.UseProgram(h.program)
	projection := mgl32.Ortho2D(0, h.width, h.height, 0)
	gl.UniformMatrix4fv(h.uProj, 1, false, &projection[0])

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/hudFloatCount))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Delete frees the overlay's GPU objects.
func (h *HUD) Delete() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteProgram(h.program)
}
