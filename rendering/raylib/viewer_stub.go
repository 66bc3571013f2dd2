//go:build headless

// Package raylib shows generated meshes with raylib.
package raylib

import (
	"errors"

	"islandgen/core"
	"islandgen/rendering"
)

var errHeadless = errors.New("raylib viewer is not available in headless builds")

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
