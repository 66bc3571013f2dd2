package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	billy "gopkg.in/src-d/go-billy.v4"
	"go.uber.org/multierr"

	"islandgen/mesh"
	"islandgen/noise"
)

// DefaultPath is the settings file looked up when none is given.
const DefaultPath = "settings.json"

// Renderer backends understood by the viewer.
const (
	RendererGL     = "gl"
	RendererRaylib = "raylib"
)

type Settings struct {
	Grid        mesh.GridConfig     `json:"grid"`
	Radial      mesh.RadialConfig   `json:"radial"`
	Noise       NoiseSettings       `json:"noise"`
	Archipelago ArchipelagoSettings `json:"archipelago"`
	Server      ServerSettings      `json:"server"`
	Viewer      ViewerSettings      `json:"viewer"`
}

// NoiseSettings picks the sampler shared by every builder. Seed only
// matters for seeded samplers; Perlin ignores it.
type NoiseSettings struct {
	Kind string `json:"kind"`
	Seed int64  `json:"seed"`
}

type ArchipelagoSettings struct {
	Count   int     `json:"count"`
	Spacing float32 `json:"spacing"`
	Seed    int64   `json:"seed"`
}

type ServerSettings struct {
	Addr string `json:"addr"`
}

type ViewerSettings struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Renderer  string `json:"renderer"`
	Wireframe bool   `json:"wireframe"`
}

// Defaults returns the settings used when no file is present.
func Defaults() *Settings {
	return &Settings{
		Grid:   mesh.DefaultGridConfig(),
		Radial: mesh.DefaultRadialConfig(),
		Noise:  NoiseSettings{Kind: noise.KindPerlin},
		Archipelago: ArchipelagoSettings{
			Count:   5,
			Spacing: 8000,
			Seed:    1,
		},
		Server: ServerSettings{Addr: ":8080"},
		Viewer: ViewerSettings{
			Width:    1280,
			Height:   720,
			Renderer: RendererGL,
		},
	}
}

// Load reads settings from path on fs over the defaults. A missing file is
// not an error.
func Load(fs billy.Filesystem, path string) (*Settings, error) {
	s := Defaults()

	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No %s found, using defaults", path)
			return s, s.Validate()
		}
		return nil, fmt.Errorf("open settings: %w", err)
	}
	defer file.Close()

	if err := Decode(file, s); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	log.Printf("Loaded settings: grid %dx%d (%d vertices), radial %d rings x %d points (%d vertices)",
		s.Grid.Width, s.Grid.Height, s.Grid.VertexCount(),
		s.Radial.RingCount, s.Radial.PointsPerRing, s.Radial.VertexCount())
	return s, nil
}

// Decode overlays JSON from r onto s. Unknown fields are rejected so typos
// do not silently fall back to defaults.
func Decode(r io.Reader, s *Settings) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(s)
}

// Save writes s to path on fs as indented JSON.
func Save(fs billy.Filesystem, path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	if _, err := file.Write(append(data, '\n')); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Validate checks every section and reports all problems together.
func (s *Settings) Validate() error {
	var err error
	section := func(name string, e error) {
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, e))
		}
	}
	section("grid", s.Grid.Validate())
	section("radial", s.Radial.Validate())
	if _, e := s.Sampler(); e != nil {
		section("noise", e)
	}
	if s.Archipelago.Count < 1 {
		section("archipelago", &mesh.ConfigurationError{Field: "count", Value: s.Archipelago.Count, Reason: "must be at least 1"})
	}
	if !(s.Archipelago.Spacing > 0) {
		section("archipelago", &mesh.ConfigurationError{Field: "spacing", Value: s.Archipelago.Spacing, Reason: "must be greater than zero"})
	}
	if s.Viewer.Width <= 0 || s.Viewer.Height <= 0 {
		section("viewer", &mesh.ConfigurationError{
			Field:  "size",
			Value:  fmt.Sprintf("%dx%d", s.Viewer.Width, s.Viewer.Height),
			Reason: "must be positive",
		})
	}
	switch s.Viewer.Renderer {
	case RendererGL, RendererRaylib:
	default:
		section("viewer", &mesh.ConfigurationError{Field: "renderer", Value: s.Viewer.Renderer, Reason: "must be gl or raylib"})
	}
	return err
}

// Sampler resolves the configured noise sampler.
func (s *Settings) Sampler() (noise.Sampler, error) {
	return noise.New(s.Noise.Kind, s.Noise.Seed)
}

// Builder returns a mesh builder using the configured sampler.
func (s *Settings) Builder() (*mesh.Builder, error) {
	sampler, err := s.Sampler()
	if err != nil {
		return nil, err
	}
	return mesh.NewBuilder(sampler), nil
}
