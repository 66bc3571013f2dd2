// Command islandview opens a desktop window showing a generated mesh.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"islandgen/config"
	"islandgen/core"
	"islandgen/rendering"
	"islandgen/rendering/opengl"
	"islandgen/rendering/raylib"
	"islandgen/scene"
)

type viewer interface {
	SetMesh(m *core.MeshBuffers) error
	Run() error
	Close()
}

func newViewer(renderer string, opts rendering.Options) (viewer, error) {
	switch renderer {
	case config.RendererGL:
		v, err := opengl.NewViewer(opts)
		if err != nil {
			return nil, err
		}
		return v, nil
	case config.RendererRaylib:
		v, err := raylib.NewViewer(opts)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", renderer)
	}
}

// GLFW and raylib must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	kind := flag.String("kind", scene.KindRadial, "scene to show: grid, radial or archipelago")

	settings, err := config.Parse(osfs.New(""), flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	builder, err := settings.Builder()
	if err != nil {
		log.Fatalf("Failed to create builder: %v", err)
	}

	build := func(seed *int32) (*scene.Result, error) {
		return scene.Build(context.Background(), settings, builder, scene.Request{
			Kind:    *kind,
			Seed:    seed,
			Normals: true,
			Colors:  true,
		})
	}
	first, err := build(nil)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	opts := rendering.Options{
		Width:     settings.Viewer.Width,
		Height:    settings.Viewer.Height,
		Title:     fmt.Sprintf("islandview: %s", first.Kind),
		Wireframe: settings.Viewer.Wireframe,
		Seed:      first.Seed,
		Regenerate: func(seed int32) (*core.MeshBuffers, error) {
			res, err := build(&seed)
			if err != nil {
				return nil, err
			}
			return res.Meshes, nil
		},
	}

	v, err := newViewer(settings.Viewer.Renderer, opts)
	if err != nil {
		log.Fatalf("Failed to create %s viewer: %v", settings.Viewer.Renderer, err)
	}
	defer v.Close()

	if err := v.SetMesh(first.Meshes); err != nil {
		log.Fatalf("Failed to upload mesh: %v", err)
	}

	log.Printf("Showing %s seed %d: %d vertices, %d triangles",
		first.Kind, first.Seed, len(first.Meshes.Vertices), first.Meshes.TriangleCount())
	fmt.Println("\nControls:")
	fmt.Println("  Mouse: Click and drag to orbit")
	fmt.Println("  Scroll: Zoom in/out")
	fmt.Println("  W: Toggle wireframe")
	fmt.Println("  N/P: Next/previous seed")
	fmt.Println("  ESC: Exit")

	if err := v.Run(); err != nil {
		log.Printf("Viewer error: %v", err)
	}
	log.Println("Shutting down...")
}
