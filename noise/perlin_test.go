package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationTableIsDoubled(t *testing.T) {
	seen := make(map[int]bool, 256)
	for i := 0; i < 256; i++ {
		require.Equal(t, permutation[i], permutation[i+256], "index %d", i)
		seen[permutation[i]] = true
	}
	assert.Len(t, seen, 256, "first half must be a permutation of 0-255")
}

func TestPerlin2DZeroOnLattice(t *testing.T) {
	for x := -20; x <= 300; x += 7 {
		for y := -13; y <= 280; y += 11 {
			got := Perlin2D(float32(x), float32(y))
			if got != 0 {
				t.Fatalf("Perlin2D(%d, %d) = %v, want 0", x, y, got)
			}
		}
	}
}

func TestPerlin2DDeterministic(t *testing.T) {
	points := [][2]float32{{0.5, 0.5}, {13.37, 1.25}, {-4.2, 7.9}, {1337.1, 1337.7}, {255.5, 255.5}}
	for _, p := range points {
		first := Perlin2D(p[0], p[1])
		for i := 0; i < 5; i++ {
			again := Perlin2D(p[0], p[1])
			assert.Equal(t, math.Float32bits(first), math.Float32bits(again), "point %v", p)
		}
	}
}

func TestPerlin2DKnownValues(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		want float32
	}{
		// Cell (0,0) hashes: aa=17, ab=182, ba=119, bb=248.
		{name: "cell center", x: 0.5, y: 0.5, want: -0.5},
		{name: "off center", x: 0.25, y: 0.75, want: -0.4482421875},
		{name: "shifted cell", x: 256.5, y: 256.5, want: -0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Perlin2D(tc.x, tc.y), 1e-6)
		})
	}
}

func TestPerlin2DRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := float32(i)*0.173 - 50
		y := float32(i)*0.311 + 3
		v := Perlin2D(x, y)
		require.False(t, math.IsNaN(float64(v)))
		// Unnormalized gradients can exceed 1 slightly but never 2.
		require.LessOrEqual(t, math.Abs(float64(v)), 2.0)
	}
}

func TestPerlin2DWrapsEvery256(t *testing.T) {
	// Quarter and half fractions survive the +-256 shift exactly in float32.
	v := Perlin2D(3.25, 9.5)
	require.NotZero(t, v)
	assert.Equal(t, v, Perlin2D(3.25+256, 9.5))
	assert.Equal(t, v, Perlin2D(3.25, 9.5-256))
	assert.Equal(t, v, Perlin2D(3.25-512, 9.5+768))
}

func TestGrad(t *testing.T) {
	tests := []struct {
		hash int
		want float32
	}{
		{0, 1 + 2},
		{1, -1 + 2},
		{2, 1 - 2},
		{3, -1 - 2},
		{4, 2 + 1},
		{5, -2 + 1},
		{6, 2 - 1},
		{7, -2 - 1},
		{15, -2 - 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, grad(tc.hash, 1, 2), "hash %d", tc.hash)
	}
}

func TestFade(t *testing.T) {
	assert.Equal(t, float32(0), fade(0))
	assert.Equal(t, float32(1), fade(1))
	assert.InDelta(t, 0.5, fade(0.5), 1e-7)
}
