package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler is a 2D scalar noise field. Implementations must be safe for
// concurrent use by independent builds.
type Sampler interface {
	Eval2(x, y float32) float32
}

// Sampler kinds understood by New.
const (
	KindPerlin      = "perlin"
	KindOpenSimplex = "opensimplex"
	KindOctave      = "octave"
)

// Perlin is the default sampler backed by Perlin2D and the fixed
// permutation table.
type Perlin struct{}

// Eval2 implements Sampler.
func (Perlin) Eval2(x, y float32) float32 { return Perlin2D(x, y) }

// OpenSimplex samples OpenSimplex noise. Unlike Perlin its gradients are
// seeded, so two seeds give unrelated fields even before the coordinate
// offset is applied.
type OpenSimplex struct {
	n opensimplex.Noise32
}

// NewOpenSimplex returns an OpenSimplex sampler for seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New32(seed)}
}

// Eval2 implements Sampler.
func (o *OpenSimplex) Eval2(x, y float32) float32 {
	return o.n.Eval2(x, y)
}

// Octave is layered (fractal) Perlin noise with a seeded permutation.
type Octave struct {
	p *perlin.Perlin
}

// NewOctave returns a fractal sampler. alpha is the weight falloff per
// octave, beta the frequency multiplier and octaves the layer count.
func NewOctave(alpha, beta float64, octaves int32, seed int64) *Octave {
	return &Octave{p: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Eval2 implements Sampler.
func (o *Octave) Eval2(x, y float32) float32 {
	return float32(o.p.Noise2D(float64(x), float64(y)))
}

// New resolves a sampler by kind. An empty kind selects Perlin.
func New(kind string, seed int64) (Sampler, error) {
	switch kind {
	case "", KindPerlin:
		return Perlin{}, nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	case KindOctave:
		return NewOctave(2, 2, 3, seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}
