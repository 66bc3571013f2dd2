package scene

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/config"
	"islandgen/mesh"
)

func small() *config.Settings {
	s := config.Defaults()
	s.Grid.Width, s.Grid.Height = 5, 4
	s.Radial.RingCount, s.Radial.PointsPerRing = 3, 6
	s.Archipelago.Count = 3
	return s
}

func seed(v int32) *int32 { return &v }

func TestBuildKinds(t *testing.T) {
	s := small()
	b := mesh.NewBuilder(nil)

	tests := []struct {
		req      Request
		kind     string
		vertices int
	}{
		{Request{}, KindRadial, s.Radial.VertexCount()},
		{Request{Kind: KindRadial}, KindRadial, s.Radial.VertexCount()},
		{Request{Kind: KindGrid}, KindGrid, s.Grid.VertexCount()},
		{Request{Kind: KindArchipelago}, KindArchipelago, 3 * s.Radial.VertexCount()},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			res, err := Build(context.Background(), s, b, tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, res.Kind)
			assert.Len(t, res.Meshes.Vertices, tc.vertices)
			require.NoError(t, res.Meshes.Validate())
		})
	}
}

func TestBuildSeedOverride(t *testing.T) {
	s := small()
	b := mesh.NewBuilder(nil)

	res, err := Build(context.Background(), s, b, Request{Kind: KindGrid, Seed: seed(77)})
	require.NoError(t, err)
	assert.Equal(t, int32(77), res.Seed)
	assert.Equal(t, int32(1337), s.Grid.Noise.Seed, "settings are not modified")

	cfg := s.Grid
	cfg.Noise.Seed = 77
	want, err := b.Grid(cfg)
	require.NoError(t, err)
	assert.Equal(t, want.Vertices, res.Meshes.Vertices)
}

func TestBuildAttributes(t *testing.T) {
	res, err := Build(context.Background(), small(), mesh.NewBuilder(nil), Request{Kind: KindRadial, Normals: true, Colors: true})
	require.NoError(t, err)
	assert.Len(t, res.Meshes.Normals, len(res.Meshes.Vertices))
	assert.Len(t, res.Meshes.Colors, len(res.Meshes.Vertices))

	data := res.Data()
	assert.Equal(t, "mesh", data.Type)
	assert.Equal(t, KindRadial, data.Kind)
	assert.Len(t, data.Normals, len(res.Meshes.Vertices))
}

func TestBuildErrors(t *testing.T) {
	s := small()
	_, err := Build(context.Background(), s, mesh.NewBuilder(nil), Request{Kind: "torus"})
	assert.EqualError(t, err, `unknown scene kind "torus"`)

	s.Radial.PointsPerRing = 2
	_, err = Build(context.Background(), s, mesh.NewBuilder(nil), Request{Kind: KindRadial})
	assert.ErrorContains(t, err, "build radial: invalid pointsPerRing 2")
}
