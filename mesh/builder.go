// Package mesh builds terrain and floating-island triangle meshes displaced
// by 2D noise.
//
// Builders are pure: each call validates its configuration, allocates fresh
// buffers and keeps no state between calls, so independent builds may run
// concurrently.
package mesh

import (
	"islandgen/core"
	"islandgen/noise"
)

// Builder generates meshes from a noise sampler.
type Builder struct {
	Sampler noise.Sampler
}

// NewBuilder returns a Builder using s, or the fixed-table Perlin field when
// s is nil.
func NewBuilder(s noise.Sampler) *Builder {
	if s == nil {
		s = noise.Perlin{}
	}
	return &Builder{Sampler: s}
}

var defaultBuilder = NewBuilder(nil)

// BuildGrid builds a grid mesh with the Perlin field.
func BuildGrid(cfg GridConfig) (*core.MeshBuffers, error) {
	return defaultBuilder.Grid(cfg)
}

// BuildRadial builds a floating island with the Perlin field.
func BuildRadial(cfg RadialConfig) (*core.MeshBuffers, error) {
	return defaultBuilder.Radial(cfg)
}

func (b *Builder) sample(x, y float32) float32 {
	if b == nil || b.Sampler == nil {
		return noise.Perlin2D(x, y)
	}
	return b.Sampler.Eval2(x, y)
}
