//go:build headless

// Package opengl shows generated meshes in a GLFW window.
package opengl

import (
	"errors"

	"islandgen/core"
	"islandgen/rendering"
)

var errHeadless = errors.New("OpenGL viewer is not available in headless builds")

// Viewer stub for headless builds
type Viewer struct{}

func NewViewer(opts rendering.Options) (*Viewer, error) {
	return nil, errHeadless
}

func (v *Viewer) SetMesh(m *core.MeshBuffers) error {
	return errHeadless
}

func (v *Viewer) Run() error {
	return errHeadless
}

func (v *Viewer) Close() {}
