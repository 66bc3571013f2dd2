//go:build !headless

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShaderSource = `
#version 410 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 texcoord;
layout(location = 3) in vec4 color;

uniform mat4 projection;
uniform mat4 view;

out vec3 fragNormal;
out vec4 fragColor;
out float fragHeight;

void main() {
    fragNormal = normal;
    fragColor = color;
    fragHeight = position.z;
    gl_Position = projection * view * vec4(position, 1.0);
}
`

// Faces are lit from both sides: builders do not share one winding order.
const fragmentShaderSource = `
#version 410 core

in vec3 fragNormal;
in vec4 fragColor;
in float fragHeight;

uniform vec3 lightDir;
uniform bool wireframe;

out vec4 outColor;

void main() {
    if (wireframe) {
        outColor = vec4(0.9, 0.9, 0.9, 1.0);
        return;
    }
    vec3 n = fragNormal;
    float diffuse = length(n) > 0.0 ? abs(dot(normalize(n), normalize(lightDir))) : 1.0;
    float light = 0.3 + 0.7 * diffuse;
    outColor = vec4(fragColor.rgb * light, fragColor.a);
}
`

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", log)
	}

	return shader, nil
}

// newProgram compiles and links the mesh shaders.
func newProgram() (uint32, error) {
	return linkProgram(vertexShaderSource, fragmentShaderSource)
}

// linkProgram compiles a vertex and fragment shader pair into a program.
func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}

	return program, nil
}
