package dimension

import (
	"fmt"
	"math"

	gonum "gonum.org/v1/gonum/unit"
)

var gonumBases = [Count]gonum.Dimension{
	Mass:        gonum.MassDim,
	Length:      gonum.LengthDim,
	Time:        gonum.TimeDim,
	Current:     gonum.CurrentDim,
	Temperature: gonum.TemperatureDim,
	Intensity:   gonum.LuminousIntensityDim,
	Amount:      gonum.MoleDim,
	Angle:       gonum.AngleDim,
}

// Dimensions returns e as a gonum dimension map. Zero powers are omitted.
func (e Encoding) Dimensions() gonum.Dimensions {
	dims := make(gonum.Dimensions)
	for i, p := range e {
		if p != 0 {
			dims[gonumBases[i]] = int(p)
		}
	}
	return dims
}

// FromDimensions converts a gonum dimension map into an Encoding.
func FromDimensions(dims gonum.Dimensions) (Encoding, error) {
	var e Encoding
	for dim, power := range dims {
		if power == 0 {
			continue
		}
		base, ok := baseOf(dim)
		if !ok {
			return Zero, fmt.Errorf("%v: %w", dim, ErrUnknownDimension)
		}
		if power < math.MinInt8 || power > math.MaxInt8 {
			return Zero, fmt.Errorf("%v^%d: %w", dim, power, ErrPowerOutOfRange)
		}
		e[base] = int8(power)
	}
	return e, nil
}

func baseOf(dim gonum.Dimension) (Base, bool) {
	for i, d := range gonumBases {
		if d == dim {
			return Base(i), true
		}
	}
	return 0, false
}
