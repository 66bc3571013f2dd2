//go:build !headless

// Package opengl shows generated meshes in a GLFW window.
package opengl

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"islandgen/core"
	"islandgen/mesh"
	"islandgen/rendering"
)

// Viewer is an orbit-camera mesh viewer.
//
// Controls: drag with the left button to orbit, scroll to zoom, W toggles
// wireframe, F1 toggles the overlay, N and P step the seed when a
// regenerate function is set, Esc quits.
type Viewer struct {
	window  *glfw.Window
	program uint32
	mesh    *GPUMesh
	camera  *rendering.OrbitCamera
	hud     *HUD
	opts    rendering.Options

	uProjection, uView, uLightDir, uWireframe int32

	wireframe  bool
	showHUD    bool
	seed       int32
	mouseDown  bool
	lastMouseX float64
	lastMouseY float64
}

// NewViewer opens the window and compiles the shaders. It must be called
// from the main goroutine.
func NewViewer(opts rendering.Options) (*Viewer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}
	log.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to compile mesh shaders: %v", err)
	}

	// Framebuffer size differs from window size on high-DPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()
	v := &Viewer{
		window:      window,
		program:     program,
		camera:      rendering.NewOrbitCamera(fbWidth, fbHeight),
		opts:        opts,
		wireframe:   opts.Wireframe,
		showHUD:     true,
		seed:        opts.Seed,
		uProjection: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		uView:       gl.GetUniformLocation(program, gl.Str("view\x00")),
		uLightDir:   gl.GetUniformLocation(program, gl.Str("lightDir\x00")),
		uWireframe:  gl.GetUniformLocation(program, gl.Str("wireframe\x00")),
	}

	gl.Enable(gl.DEPTH_TEST)
	// Builders emit both windings, so back faces stay visible.
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.05, 0.05, 0.1, 1.0)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	hud, err := NewHUD(fbWidth, fbHeight, mesh.DefaultPalette())
	if err != nil {
		log.Printf("Warning: continuing without overlay: %v", err)
	} else {
		v.hud = hud
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		v.onResize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		v.onKey(key, action)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		v.camera.Zoom(float32(yoff))
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		v.onMouseButton(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		v.onMouseMove(xpos, ypos)
	})

	return v, nil
}

// SetMesh replaces the displayed mesh and frames the camera on it.
func (v *Viewer) SetMesh(m *core.MeshBuffers) error {
	m, err := rendering.Prepare(m)
	if err != nil {
		return err
	}
	if v.mesh != nil {
		v.mesh.Delete()
	}
	v.mesh = Upload(m)
	v.camera.Fit(rendering.Bounds(m))
	v.window.SetTitle(fmt.Sprintf("%s (seed %d, %d vertices)", v.opts.Title, v.seed, len(m.Vertices)))
	return nil
}

// Run draws until the window is closed.
func (v *Viewer) Run() error {
	if v.mesh == nil {
		return rendering.ErrEmptyMesh
	}
	light := mgl32.Vec3{0.4, 0.3, 1}.Normalize()
	frames, lastFPS := 0, glfw.GetTime()
	for !v.window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if v.wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		projection, view := v.camera.Projection(), v.camera.View()
		gl.UseProgram(v.program)
		gl.UniformMatrix4fv(v.uProjection, 1, false, &projection[0])
		gl.UniformMatrix4fv(v.uView, 1, false, &view[0])
		gl.Uniform3fv(v.uLightDir, 1, &light[0])
		gl.Uniform1i(v.uWireframe, boolToInt(v.wireframe))
		v.mesh.Draw()

		frames++
		if now := glfw.GetTime(); now-lastFPS >= 1 {
			if v.hud != nil {
				v.hud.SetFPS(float64(frames) / (now - lastFPS))
			}
			frames, lastFPS = 0, now
		}
		if v.hud != nil && v.showHUD {
			v.hud.Render()
		}

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	if v.mesh != nil {
		v.mesh.Delete()
	}
	if v.hud != nil {
		v.hud.Delete()
	}
	gl.DeleteProgram(v.program)
	v.window.Destroy()
	glfw.Terminate()
}

func (v *Viewer) onResize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	v.camera.Resize(width, height)
	if v.hud != nil {
		v.hud.Resize(width, height)
	}
}

func (v *Viewer) onKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		v.window.SetShouldClose(true)
	case glfw.KeyW:
		v.wireframe = !v.wireframe
		log.Printf("Wireframe: %v", v.wireframe)
	case glfw.KeyF1:
		v.showHUD = !v.showHUD
	case glfw.KeyN:
		v.regenerate(v.seed + 1)
	case glfw.KeyP:
		v.regenerate(v.seed - 1)
	}
}

func (v *Viewer) regenerate(seed int32) {
	if v.opts.Regenerate == nil {
		return
	}
	m, err := v.opts.Regenerate(seed)
	if err != nil {
		log.Printf("Regenerate seed %d: %v", seed, err)
		return
	}
	v.seed = seed
	if err := v.SetMesh(m); err != nil {
		log.Printf("Upload seed %d: %v", seed, err)
	}
}

func (v *Viewer) onMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		v.mouseDown = true
		v.lastMouseX, v.lastMouseY = v.window.GetCursorPos()
	case glfw.Release:
		v.mouseDown = false
	}
}

func (v *Viewer) onMouseMove(xpos, ypos float64) {
	if !v.mouseDown {
		return
	}
	v.camera.Rotate(float32(xpos-v.lastMouseX), float32(ypos-v.lastMouseY))
	v.lastMouseX, v.lastMouseY = xpos, ypos
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
