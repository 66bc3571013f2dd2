package mesh

// NoiseConfig controls height displacement. Seed offsets the noise input
// coordinates; it does not reseed the permutation table.
type NoiseConfig struct {
	Scale     float32 `json:"scale"`
	Amplitude float32 `json:"amplitude"`
	Seed      int32   `json:"seed"`
}

// GridConfig describes a rectangular grid of Width x Height vertices spaced
// Spacing units apart.
type GridConfig struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Spacing float32     `json:"spacing"`
	Noise   NoiseConfig `json:"noise"`
}

// RadialConfig describes a floating island: RingCount concentric rings of
// PointsPerRing vertices on top, mirrored by a cone BottomDepth deep below.
type RadialConfig struct {
	RingCount     int         `json:"ringCount"`
	PointsPerRing int         `json:"pointsPerRing"`
	OuterRadius   float32     `json:"outerRadius"`
	BottomDepth   float32     `json:"bottomDepth"`
	Noise         NoiseConfig `json:"noise"`
}

// DefaultNoiseConfig returns the stock noise parameters.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{Scale: 0.1, Amplitude: 200, Seed: 1337}
}

// DefaultGridConfig returns a 50x50 grid at 100 unit spacing.
func DefaultGridConfig() GridConfig {
	return GridConfig{Width: 50, Height: 50, Spacing: 100, Noise: DefaultNoiseConfig()}
}

// DefaultRadialConfig returns a 3000 unit island with 40 rings of 60 points.
func DefaultRadialConfig() RadialConfig {
	return RadialConfig{
		RingCount:     40,
		PointsPerRing: 60,
		OuterRadius:   3000,
		BottomDepth:   2000,
		Noise:         DefaultNoiseConfig(),
	}
}

// Validate reports every invalid field. The returned error combines one
// *ConfigurationError per violation.
func (c NoiseConfig) Validate() error {
	var r rules
	c.check(&r)
	return r.err
}

func (c NoiseConfig) check(r *rules) {
	r.finite("noise.scale", c.Scale)
	r.finite("noise.amplitude", c.Amplitude)
}

// Validate reports every invalid field. The returned error combines one
// *ConfigurationError per violation.
func (c GridConfig) Validate() error {
	var r rules
	r.atLeast("width", c.Width, 2)
	r.atLeast("height", c.Height, 2)
	r.positive("spacing", c.Spacing)
	c.Noise.check(&r)
	return r.err
}

// VertexCount returns the number of vertices Grid will emit.
func (c GridConfig) VertexCount() int { return c.Width * c.Height }

// Validate reports every invalid field. The returned error combines one
// *ConfigurationError per violation.
func (c RadialConfig) Validate() error {
	var r rules
	r.atLeast("ringCount", c.RingCount, 1)
	r.atLeast("pointsPerRing", c.PointsPerRing, 3)
	r.positive("outerRadius", c.OuterRadius)
	r.nonNegative("bottomDepth", c.BottomDepth)
	c.Noise.check(&r)
	return r.err
}

// VertexCount returns the number of vertices Radial will emit: the top
// center, two copies of every ring point and the cone apex.
func (c RadialConfig) VertexCount() int { return 2 + 2*c.RingCount*c.PointsPerRing }
