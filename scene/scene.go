// Package scene turns a generation request into mesh buffers using the
// loaded settings. It is shared by the websocket server and the commands.
package scene

import (
	"context"
	"fmt"

	"islandgen/archipelago"
	"islandgen/config"
	"islandgen/core"
	"islandgen/mesh"
)

// Scene kinds.
const (
	KindGrid        = "grid"
	KindRadial      = "radial"
	KindArchipelago = "archipelago"
)

// Request selects what to generate. A nil Seed keeps the configured one.
type Request struct {
	Kind    string `json:"kind"`
	Seed    *int32 `json:"seed,omitempty"`
	Normals bool   `json:"normals"`
	Colors  bool   `json:"colors"`
}

// Result is a generated mesh and the seed that produced it.
type Result struct {
	Kind   string
	Seed   int32
	Meshes *core.MeshBuffers
}

// Data converts r into the frame sent to browser clients.
func (r *Result) Data() core.MeshData {
	return core.NewMeshData(r.Kind, r.Seed, r.Meshes)
}

// Build generates the scene described by req. An empty kind builds a single
// radial island.
func Build(ctx context.Context, s *config.Settings, b *mesh.Builder, req Request) (*Result, error) {
	var (
		res = &Result{Kind: req.Kind}
		err error
	)
	switch req.Kind {
	case "", KindRadial:
		res.Kind = KindRadial
		cfg := s.Radial
		if req.Seed != nil {
			cfg.Noise.Seed = *req.Seed
		}
		res.Seed = cfg.Noise.Seed
		res.Meshes, err = b.Radial(cfg)

	case KindGrid:
		cfg := s.Grid
		if req.Seed != nil {
			cfg.Noise.Seed = *req.Seed
		}
		res.Seed = cfg.Noise.Seed
		res.Meshes, err = b.Grid(cfg)

	case KindArchipelago:
		base, layout := s.Radial, s.Archipelago.Seed
		if req.Seed != nil {
			base.Noise.Seed = *req.Seed
			layout = int64(*req.Seed)
		}
		res.Seed = base.Noise.Seed
		var islands []archipelago.Island
		islands, err = archipelago.Plan(s.Archipelago.Count, base, s.Archipelago.Spacing, layout)
		if err == nil {
			res.Meshes, err = archipelago.BuildMerged(ctx, b, islands)
		}

	default:
		return nil, fmt.Errorf("unknown scene kind %q", req.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", res.Kind, err)
	}

	if req.Normals {
		res.Meshes.Normals = mesh.RecalculateNormals(res.Meshes.Vertices, res.Meshes.Triangles)
	}
	if req.Colors {
		mesh.ColorByHeight(res.Meshes, mesh.DefaultPalette())
	}
	return res, nil
}
