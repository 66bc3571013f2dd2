package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/multierr"
)

// ConfigurationError reports a single configuration field that a builder
// refuses to generate from.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// rules accumulates configuration errors so every violation is reported in
// one pass.
type rules struct {
	err error
}

func (r *rules) add(field string, value any, reason string) {
	r.err = multierr.Append(r.err, &ConfigurationError{Field: field, Value: value, Reason: reason})
}

func (r *rules) atLeast(field string, value, min int) {
	if value < min {
		r.add(field, value, fmt.Sprintf("must be at least %d", min))
	}
}

func (r *rules) positive(field string, value float32) {
	r.finite(field, value)
	if value <= 0 {
		r.add(field, value, "must be greater than zero")
	}
}

func (r *rules) nonNegative(field string, value float32) {
	r.finite(field, value)
	if value < 0 {
		r.add(field, value, "must not be negative")
	}
}

func (r *rules) finite(field string, value float32) {
	if math32.IsNaN(value) || math32.IsInf(value, 0) {
		r.add(field, value, "must be finite")
	}
}
