package mesh

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func fields(err error) []string {
	var out []string
	for _, e := range multierr.Errors(err) {
		var ce *ConfigurationError
		if errors.As(e, &ce) {
			out = append(out, ce.Field)
		}
	}
	sort.Strings(out)
	return out
}

func TestGridConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GridConfig)
		want   []string
	}{
		{name: "defaults", mutate: func(*GridConfig) {}},
		{name: "minimum size", mutate: func(c *GridConfig) { c.Width, c.Height = 2, 2 }},
		{name: "width one", mutate: func(c *GridConfig) { c.Width = 1 }, want: []string{"width"}},
		{name: "height zero", mutate: func(c *GridConfig) { c.Height = 0 }, want: []string{"height"}},
		{name: "zero spacing", mutate: func(c *GridConfig) { c.Spacing = 0 }, want: []string{"spacing"}},
		{name: "negative spacing", mutate: func(c *GridConfig) { c.Spacing = -1 }, want: []string{"spacing"}},
		{
			name:   "nan amplitude",
			mutate: func(c *GridConfig) { c.Noise.Amplitude = float32(math.NaN()) },
			want:   []string{"noise.amplitude"},
		},
		{
			name: "everything wrong",
			mutate: func(c *GridConfig) {
				c.Width, c.Height, c.Spacing = 1, 1, 0
			},
			want: []string{"height", "spacing", "width"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGridConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.want, fields(err))
		})
	}
}

func TestRadialConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RadialConfig)
		want   []string
	}{
		{name: "defaults", mutate: func(*RadialConfig) {}},
		{name: "single ring", mutate: func(c *RadialConfig) { c.RingCount = 1 }},
		{name: "flat underside", mutate: func(c *RadialConfig) { c.BottomDepth = 0 }},
		{name: "no rings", mutate: func(c *RadialConfig) { c.RingCount = 0 }, want: []string{"ringCount"}},
		{name: "two points", mutate: func(c *RadialConfig) { c.PointsPerRing = 2 }, want: []string{"pointsPerRing"}},
		{name: "zero radius", mutate: func(c *RadialConfig) { c.OuterRadius = 0 }, want: []string{"outerRadius"}},
		{name: "negative depth", mutate: func(c *RadialConfig) { c.BottomDepth = -5 }, want: []string{"bottomDepth"}},
		{
			name:   "infinite radius",
			mutate: func(c *RadialConfig) { c.OuterRadius = float32(math.Inf(1)) },
			want:   []string{"outerRadius"},
		},
		{
			name: "several",
			mutate: func(c *RadialConfig) {
				c.RingCount, c.PointsPerRing, c.OuterRadius = 0, 1, -1
			},
			want: []string{"outerRadius", "pointsPerRing", "ringCount"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRadialConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.want, fields(err))
		})
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := GridConfig{Width: 1, Height: 2, Spacing: 1}.Validate()
	require.Error(t, err)

	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "width", ce.Field)
	assert.Equal(t, "invalid width 1: must be at least 2", ce.Error())
}
