package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTolerance(t *testing.T) {
	tol := DefaultTolerance()
	assert.Equal(t, 1e-12, tol.Absolute)
	assert.Equal(t, 1e-9, tol.Relative)
}

func TestTolerance_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   Tolerance
		want Tolerance
	}{
		{"zero is kept", Tolerance{}, Tolerance{}},
		{"custom is kept", Tolerance{Absolute: 0.5, Relative: 0.1}, Tolerance{Absolute: 0.5, Relative: 0.1}},
		{"negative absolute", Tolerance{Absolute: -1, Relative: 0.1}, Tolerance{Absolute: 1e-12, Relative: 0.1}},
		{"negative relative", Tolerance{Absolute: 0.5, Relative: -1}, Tolerance{Absolute: 0.5, Relative: 1e-9}},
		{"NaN", Tolerance{Absolute: math.NaN(), Relative: math.NaN()}, DefaultTolerance()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol := tt.in
			tol.validate()
			assert.Equal(t, tt.want, tol)
		})
	}
}
