// Package archipelago lays out several floating islands and builds them
// side by side.
package archipelago

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"

	"islandgen/core"
	"islandgen/mesh"
)

const (
	minRadiusScale = 0.6
	maxRadiusScale = 1.0
	// Fraction of a cell an island centre may drift from the cell centre.
	jitter = 0.2
	// Vertical drift as a fraction of spacing.
	lift = 0.05
)

// Island is one radial mesh placed in world space.
type Island struct {
	Name   string
	Offset mgl32.Vec3
	Config mesh.RadialConfig
}

// Plan places count islands on a square lattice of cells spacing units wide.
// Each island gets its own noise seed (base seed + index), a radius between
// 60% and 100% of base and a jittered position. The same arguments always
// produce the same plan.
func Plan(count int, base mesh.RadialConfig, spacing float32, seed int64) ([]Island, error) {
	var err error
	if count < 1 {
		err = multierr.Append(err, &mesh.ConfigurationError{Field: "count", Value: count, Reason: "must be at least 1"})
	}
	if !(spacing > 0) || math32.IsInf(spacing, 0) {
		err = multierr.Append(err, &mesh.ConfigurationError{Field: "spacing", Value: spacing, Reason: "must be a finite value greater than zero"})
	}
	err = multierr.Append(err, base.Validate())
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	cols := int(math32.Ceil(math32.Sqrt(float32(count))))
	// Centre the lattice on the origin.
	origin := float32(cols-1) * spacing / 2

	islands := make([]Island, count)
	for i := range islands {
		col, row := i%cols, i/cols

		cfg := base
		cfg.Noise.Seed = base.Noise.Seed + int32(i)
		scale := minRadiusScale + rng.Float32()*(maxRadiusScale-minRadiusScale)
		cfg.OuterRadius = base.OuterRadius * scale
		cfg.BottomDepth = base.BottomDepth * scale

		dx := (rng.Float32()*2 - 1) * jitter * spacing
		dy := (rng.Float32()*2 - 1) * jitter * spacing
		dz := (rng.Float32()*2 - 1) * lift * spacing

		islands[i] = Island{
			Name: fmt.Sprintf("island-%02d", i),
			Offset: mgl32.Vec3{
				float32(col)*spacing - origin + dx,
				float32(row)*spacing - origin + dy,
				dz,
			},
			Config: cfg,
		}
	}
	return islands, nil
}

// Build generates every island with b and moves it to its offset. All
// configurations are validated before any mesh is built. Islands are built
// concurrently, so b's sampler must be safe for concurrent use. Cancellation
// is observed between islands.
func Build(ctx context.Context, b *mesh.Builder, islands []Island) ([]*core.MeshBuffers, error) {
	var err error
	for _, is := range islands {
		if verr := is.Config.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", is.Name, verr))
		}
	}
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = mesh.NewBuilder(nil)
	}

	out := make([]*core.MeshBuffers, len(islands))
	errs := make([]error, len(islands))
	parallel.For(len(islands), func(i, _ int) {
		if cerr := ctx.Err(); cerr != nil {
			errs[i] = cerr
			return
		}
		m, berr := b.Radial(islands[i].Config)
		if berr != nil {
			errs[i] = fmt.Errorf("%s: %w", islands[i].Name, berr)
			return
		}
		out[i] = m.Translate(islands[i].Offset)
	})

	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildMerged builds the islands and concatenates them into one mesh.
func BuildMerged(ctx context.Context, b *mesh.Builder, islands []Island) (*core.MeshBuffers, error) {
	parts, err := Build(ctx, b, islands)
	if err != nil {
		return nil, err
	}
	return core.Merge(parts...), nil
}
