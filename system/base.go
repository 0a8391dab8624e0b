package system

import (
	"math"

	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/unit"
)

// Base dimensions.
type (
	Mass        struct{}
	Length      struct{}
	Time        struct{}
	Current     struct{}
	Temperature struct{}
	Intensity   struct{}
	Amount      struct{}
	Angle       struct{}
)

func (Mass) Encoding() dimension.Encoding        { return dimension.Encode(dimension.Mass, 1) }
func (Length) Encoding() dimension.Encoding      { return dimension.Encode(dimension.Length, 1) }
func (Time) Encoding() dimension.Encoding        { return dimension.Encode(dimension.Time, 1) }
func (Current) Encoding() dimension.Encoding     { return dimension.Encode(dimension.Current, 1) }
func (Temperature) Encoding() dimension.Encoding { return dimension.Encode(dimension.Temperature, 1) }
func (Intensity) Encoding() dimension.Encoding   { return dimension.Encode(dimension.Intensity, 1) }
func (Amount) Encoding() dimension.Encoding      { return dimension.Encode(dimension.Amount, 1) }
func (Angle) Encoding() dimension.Encoding       { return dimension.Encode(dimension.Angle, 1) }

// Mass units. The pound is the international avoirdupois pound.
var (
	Kilogram  = unit.NewRoot[Mass]("kilogram", "kg")
	Gram      = unit.New(Kilogram, "gram", "g", unit.Factor(1e-3))
	Milligram = unit.New(Kilogram, "milligram", "mg", unit.Factor(1e-6))
	Pound     = unit.New(Kilogram, "pound", "lb", unit.Factor(0.45359237))
	Ounce     = unit.New(Pound, "ounce", "oz", unit.Factor(1.0/16))
)

// Length units. The yard is the international yard; foot, inch and mile hang
// below it.
var (
	Meter      = unit.NewRoot[Length]("meter", "m")
	Millimeter = unit.NewPrefixed(Meter, unit.Milli)
	Centimeter = unit.NewPrefixed(Meter, unit.Centi)
	Kilometer  = unit.NewPrefixed(Meter, unit.Kilo)
	Yard       = unit.New(Meter, "yard", "yd", unit.Factor(0.9144))
	Foot       = unit.New(Yard, "foot", "ft", unit.Factor(1.0/3))
	Inch       = unit.New(Foot, "inch", "in", unit.Factor(1.0/12))
	Mile       = unit.New(Yard, "mile", "mi", unit.Factor(1760))
)

// Time units.
var (
	Second      = unit.NewRoot[Time]("second", "s")
	Millisecond = unit.NewPrefixed(Second, unit.Milli)
	Microsecond = unit.NewPrefixed(Second, unit.Micro)
	Nanosecond  = unit.NewPrefixed(Second, unit.Nano)
	Minute      = unit.New(Second, "minute", "min", unit.Factor(60))
	Hour        = unit.New(Second, "hour", "hr", unit.Factor(3600))
)

// Current units.
var (
	Ampere      = unit.NewRoot[Current]("ampere", "A")
	Milliampere = unit.NewPrefixed(Ampere, unit.Milli)
)

// Temperature units. Celsius and Fahrenheit carry offsets and so cannot take part
// in quantity.Mul or quantity.Div.
var (
	Kelvin     = unit.NewRoot[Temperature]("kelvin", "K")
	Celsius    = unit.NewAffine(Kelvin, "celsius", "C", unit.Factor(1), -273.15)
	Fahrenheit = unit.NewAffine(Kelvin, "fahrenheit", "F", unit.Factor(5.0/9), -255.37222222222222)
)

var Candela = unit.NewRoot[Intensity]("candela", "cd")

var Mole = unit.NewRoot[Amount]("mole", "mol")

// Plane angle units.
var (
	Radian = unit.NewRoot[Angle]("radian", "rad")
	Degree = unit.New(Radian, "degree", "deg", unit.Factor(math.Pi/180))
)
