package config

import (
	"flag"
	"strconv"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"islandgen/mesh"
)

// Bind attaches every setting to fs. Call it after Load so the flag
// defaults show the loaded values.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.IntVar(&s.Grid.Width, "grid.width", s.Grid.Width, "grid vertices along X")
	fs.IntVar(&s.Grid.Height, "grid.height", s.Grid.Height, "grid vertices along Y")
	fs.Var((*float32Value)(&s.Grid.Spacing), "grid.spacing", "distance between grid vertices")
	bindNoise(fs, "grid", &s.Grid.Noise)

	fs.IntVar(&s.Radial.RingCount, "radial.rings", s.Radial.RingCount, "concentric rings on the island top")
	fs.IntVar(&s.Radial.PointsPerRing, "radial.points", s.Radial.PointsPerRing, "vertices per ring")
	fs.Var((*float32Value)(&s.Radial.OuterRadius), "radial.radius", "island radius")
	fs.Var((*float32Value)(&s.Radial.BottomDepth), "radial.depth", "depth of the island underside")
	bindNoise(fs, "radial", &s.Radial.Noise)

	fs.StringVar(&s.Noise.Kind, "noise", s.Noise.Kind, "noise sampler: perlin, opensimplex or octave")
	fs.Int64Var(&s.Noise.Seed, "noise.seed", s.Noise.Seed, "seed for seeded samplers")

	fs.IntVar(&s.Archipelago.Count, "islands", s.Archipelago.Count, "islands in an archipelago")
	fs.Var((*float32Value)(&s.Archipelago.Spacing), "islands.spacing", "archipelago cell size")
	fs.Int64Var(&s.Archipelago.Seed, "islands.seed", s.Archipelago.Seed, "archipelago layout seed")

	fs.StringVar(&s.Server.Addr, "addr", s.Server.Addr, "websocket listen address")

	fs.IntVar(&s.Viewer.Width, "width", s.Viewer.Width, "window width")
	fs.IntVar(&s.Viewer.Height, "height", s.Viewer.Height, "window height")
	fs.StringVar(&s.Viewer.Renderer, "renderer", s.Viewer.Renderer, "viewer backend: gl or raylib")
	fs.BoolVar(&s.Viewer.Wireframe, "wireframe", s.Viewer.Wireframe, "start in wireframe mode")
}

func bindNoise(fs *flag.FlagSet, prefix string, n *mesh.NoiseConfig) {
	fs.Var((*float32Value)(&n.Scale), prefix+".scale", prefix+" noise frequency")
	fs.Var((*float32Value)(&n.Amplitude), prefix+".amplitude", prefix+" height amplitude")
	fs.Var((*int32Value)(&n.Seed), prefix+".seed", prefix+" noise coordinate offset")
}

type float32Value float32

func (f *float32Value) String() string {
	if f == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}

type int32Value int32

func (i *int32Value) String() string {
	if i == nil {
		return "0"
	}
	return strconv.FormatInt(int64(*i), 10)
}

func (i *int32Value) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return err
	}
	*i = int32Value(v)
	return nil
}

// Parse registers the settings flags and -config on flags, parses args,
// loads the named settings file from fs and applies the flags that were set
// explicitly on top of it.
func Parse(fs billy.Filesystem, flags *flag.FlagSet, args []string) (*Settings, error) {
	path := flags.String("config", DefaultPath, "settings file")
	Defaults().Bind(flags)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	s, err := Load(fs, *path)
	if err != nil {
		return nil, err
	}

	overrides := flag.NewFlagSet(flags.Name(), flag.ContinueOnError)
	s.Bind(overrides)
	flags.Visit(func(f *flag.Flag) {
		if overrides.Lookup(f.Name) != nil {
			err = multierr.Append(err, overrides.Set(f.Name, f.Value.String()))
		}
	})
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
