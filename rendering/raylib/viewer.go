//go:build !headless

// Package raylib shows generated meshes with raylib.
package raylib

import (
	"fmt"
	"log"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"islandgen/core"
	"islandgen/rendering"
)

var background = rl.NewColor(13, 13, 26, 255)

// Viewer is an orbit-camera mesh viewer with the same controls as the
// OpenGL one.
type Viewer struct {
	mesh     *gpuMesh
	material rl.Material
	camera   *rendering.OrbitCamera
	opts     rendering.Options

	wireframe bool
	seed      int32
	vertices  int
}

// NewViewer opens the raylib window. It must be called from the main
// goroutine.
func NewViewer(opts rendering.Options) (*Viewer, error) {
	runtime.LockOSThread()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("failed to open raylib window")
	}
	rl.SetTargetFPS(60)

	return &Viewer{
		material:  rl.LoadMaterialDefault(),
		camera:    rendering.NewOrbitCamera(opts.Width, opts.Height),
		opts:      opts,
		wireframe: opts.Wireframe,
		seed:      opts.Seed,
	}, nil
}

// SetMesh replaces the displayed mesh and frames the camera on it.
func (v *Viewer) SetMesh(m *core.MeshBuffers) error {
	m, err := rendering.Prepare(m)
	if err != nil {
		return err
	}
	g, err := upload(m)
	if err != nil {
		return err
	}
	if v.mesh != nil {
		v.mesh.unload()
	}
	v.mesh = g
	v.vertices = len(m.Vertices)
	v.camera.Fit(rendering.Bounds(m))
	return nil
}

// Run draws until the window is closed (Esc or the close button).
func (v *Viewer) Run() error {
	if v.mesh == nil {
		return rendering.ErrEmptyMesh
	}
	for !rl.WindowShouldClose() {
		v.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		rl.BeginMode3D(v.camera3D())
		if v.wireframe {
			rl.EnableWireMode()
		}
		rl.DrawMesh(v.mesh.mesh, v.material, rl.MatrixIdentity())
		if v.wireframe {
			rl.DisableWireMode()
		}
		rl.EndMode3D()
		rl.DrawText(fmt.Sprintf("seed %d  %d vertices", v.seed, v.vertices), 10, 10, 20, rl.RayWhite)
		rl.DrawFPS(10, 34)
		rl.EndDrawing()
	}
	return nil
}

// Close releases the mesh and the window.
func (v *Viewer) Close() {
	if v.mesh != nil {
		v.mesh.unload()
	}
	rl.CloseWindow()
}

func (v *Viewer) camera3D() rl.Camera3D {
	pos, target := v.camera.Position(), v.camera.Target
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
		Target:     rl.NewVector3(target.X(), target.Y(), target.Z()),
		Up:         rl.NewVector3(core.UpVector.X(), core.UpVector.Y(), core.UpVector.Z()),
		Fovy:       v.camera.FovY,
		Projection: rl.CameraPerspective,
	}
}

func (v *Viewer) handleInput() {
	if rl.IsWindowResized() {
		v.camera.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		v.camera.Rotate(d.X, d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.camera.Zoom(wheel)
	}

	switch {
	case rl.IsKeyPressed(rl.KeyW):
		v.wireframe = !v.wireframe
		log.Printf("Wireframe: %v", v.wireframe)
	case rl.IsKeyPressed(rl.KeyN):
		v.regenerate(v.seed + 1)
	case rl.IsKeyPressed(rl.KeyP):
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
