package dimension_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/dimensional/dimension"
)

func TestBase(t *testing.T) {
	tests := []struct {
		base   dimension.Base
		index  int
		name   string
		symbol string
	}{
		{dimension.Mass, 0, "Mass", "M"},
		{dimension.Length, 1, "Length", "L"},
		{dimension.Time, 2, "Time", "T"},
		{dimension.Current, 3, "Current", "I"},
		{dimension.Temperature, 4, "Temperature", "Θ"},
		{dimension.Intensity, 5, "Intensity", "J"},
		{dimension.Amount, 6, "Amount", "N"},
		{dimension.Angle, 7, "Angle", "R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.index, tt.base.Index())
			assert.Equal(t, tt.name, tt.base.Name())
			assert.Equal(t, tt.symbol, tt.base.Symbol())
			assert.Equal(t, tt.name, tt.base.String())
		})
	}

	assert.Equal(t, 8, dimension.Count)
	assert.Len(t, dimension.Bases(), dimension.Count)
}

func TestEncode(t *testing.T) {
	for _, base := range dimension.Bases() {
		for _, power := range []int8{-3, -1, 1, 2, 3, 4, 127} {
			e := dimension.Encode(base, power)
			assert.Equal(t, power, dimension.Decode(base, e))
			assert.Equal(t, power, e.Power(base))
			for _, other := range dimension.Bases() {
				if other != base {
					assert.Zero(t, e[other], "%v^%d leaks into %v", base, power, other)
				}
			}
		}
	}
}

func TestEncode_MatchesEncodePowers(t *testing.T) {
	for _, power := range []int8{1, 2, 3, 4} {
		assert.Equal(t, dimension.EncodePowers(power, 0, 0, 0, 0, 0, 0, 0), dimension.Encode(dimension.Mass, power))
		assert.Equal(t, dimension.EncodePowers(0, 0, 0, 0, 0, 0, 0, power), dimension.Encode(dimension.Angle, power))
	}
}

func TestEncodePowers_WrongCount(t *testing.T) {
	assert.Panics(t, func() { dimension.EncodePowers(1, 2, 3) })
	assert.Panics(t, func() { dimension.EncodePowers() })
	assert.Panics(t, func() { dimension.EncodePowers(0, 0, 0, 0, 0, 0, 0, 0, 0) })
	assert.NotPanics(t, func() { dimension.EncodePowers(0, 0, 0, 0, 0, 0, 0, 0) })
}

func TestCombine(t *testing.T) {
	speed := dimension.Combine(dimension.Length, 1, dimension.Time, -1)
	assert.Equal(t, dimension.EncodePowers(0, 1, -1, 0, 0, 0, 0, 0), speed)

	// Same base accumulates.
	volume := dimension.Combine(dimension.Length, 2, dimension.Length, 1)
	assert.Equal(t, dimension.Encode(dimension.Length, 3), volume)
}

func TestCompatibleAsProduct(t *testing.T) {
	tests := []struct {
		name       string
		r, p1, p2  dimension.Encoding
		compatible bool
	}{
		{
			name:       "mass per length",
			r:          dimension.EncodePowers(1, -1, 0, 0, 0, 0, 0, 0),
			p1:         dimension.EncodePowers(1, 0, 0, 0, 0, 0, 0, 0),
			p2:         dimension.EncodePowers(0, -1, 0, 0, 0, 0, 0, 0),
			compatible: true,
		},
		{
			name:       "length cancels",
			r:          dimension.EncodePowers(2, 0, 0, 0, 0, 0, 0, 0),
			p1:         dimension.EncodePowers(1, 1, 0, 0, 0, 0, 0, 0),
			p2:         dimension.EncodePowers(1, -1, 0, 0, 0, 0, 0, 0),
			compatible: true,
		},
		{
			name:       "speed times time is length",
			r:          dimension.Encode(dimension.Length, 1),
			p1:         dimension.Combine(dimension.Length, 1, dimension.Time, -1),
			p2:         dimension.Encode(dimension.Time, 1),
			compatible: true,
		},
		{
			name:       "length times length is not volume",
			r:          dimension.Encode(dimension.Length, 3),
			p1:         dimension.Encode(dimension.Length, 1),
			p2:         dimension.Encode(dimension.Length, 1),
			compatible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compatible, dimension.CompatibleAsProduct(tt.r, tt.p1, tt.p2))
			if tt.compatible {
				assert.Equal(t, tt.r, dimension.Mul(tt.p1, tt.p2))
			}
		})
	}
}

func TestCompatibleAsQuotient(t *testing.T) {
	tests := []struct {
		name       string
		r, p1, p2  dimension.Encoding
		compatible bool
	}{
		{
			name:       "mass times length",
			r:          dimension.EncodePowers(1, 1, 0, 0, 0, 0, 0, 0),
			p1:         dimension.EncodePowers(1, 0, 0, 0, 0, 0, 0, 0),
			p2:         dimension.EncodePowers(0, -1, 0, 0, 0, 0, 0, 0),
			compatible: true,
		},
		{
			name:       "mass cancels",
			r:          dimension.EncodePowers(0, 2, 0, 0, 0, 0, 0, 0),
			p1:         dimension.EncodePowers(1, 1, 0, 0, 0, 0, 0, 0),
			p2:         dimension.EncodePowers(1, -1, 0, 0, 0, 0, 0, 0),
			compatible: true,
		},
		{
			name:       "length over time is not length",
			r:          dimension.Encode(dimension.Length, 1),
			p1:         dimension.Encode(dimension.Length, 1),
			p2:         dimension.Encode(dimension.Time, 1),
			compatible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compatible, dimension.CompatibleAsQuotient(tt.r, tt.p1, tt.p2))
			if tt.compatible {
				assert.Equal(t, tt.r, dimension.Div(tt.p1, tt.p2))
			}
		})
	}
}

// Every index participates in the compatibility check, not only the first few.
func TestCompatible_EveryIndex(t *testing.T) {
	for _, base := range dimension.Bases() {
		one := dimension.Encode(base, 1)
		two := dimension.Encode(base, 2)
		require.True(t, dimension.CompatibleAsProduct(two, one, one), base.Name())
		require.False(t, dimension.CompatibleAsProduct(one, one, one), base.Name())
		require.True(t, dimension.CompatibleAsQuotient(dimension.Zero, one, one), base.Name())
		require.False(t, dimension.CompatibleAsQuotient(one, one, one), base.Name())
	}
}

func TestEncoding_String(t *testing.T) {
	tests := []struct {
		e    dimension.Encoding
		want string
	}{
		{dimension.Zero, "1"},
		{dimension.Encode(dimension.Length, 1), "L"},
		{dimension.EncodePowers(1, 1, -2, 0, 0, 0, 0, 0), "M·L·T⁻²"},
		{dimension.EncodePowers(-1, -1, 4, 2, 0, 0, 0, 0), "M⁻¹·L⁻¹·T⁴·I²"},
		{dimension.Encode(dimension.Temperature, 12), "Θ¹²"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.String())
		})
	}
}

type speed struct{}

func (speed) Encoding() dimension.Encoding {
	return dimension.Combine(dimension.Length, 1, dimension.Time, -1)
}

func TestOf(t *testing.T) {
	assert.Equal(t, dimension.EncodePowers(0, 1, -1, 0, 0, 0, 0, 0), dimension.Of[speed]())
	assert.True(t, dimension.Of[dimension.Dimensionless]().IsDimensionless())
	assert.False(t, dimension.Of[speed]().IsDimensionless())
}
