package system

import (
	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/unit"
)

// Derived dimension encodings, over M L T I Θ J N R.
var (
	acceleration        = dimension.EncodePowers(0, 1, -2, 0, 0, 0, 0, 0)
	angularAcceleration = dimension.EncodePowers(0, 0, -2, 0, 0, 0, 0, 1)
	angularSpeed        = dimension.EncodePowers(0, 0, -1, 0, 0, 0, 0, 1)
	angularMomentum     = dimension.EncodePowers(1, 2, -1, 0, 0, 0, 0, 0)
	area                = dimension.EncodePowers(0, 2, 0, 0, 0, 0, 0, 0)
	charge              = dimension.EncodePowers(0, 0, 1, 1, 0, 0, 0, 0)
	capacitance         = dimension.EncodePowers(-1, -2, 4, 2, 0, 0, 0, 0)
	conductance         = dimension.EncodePowers(-1, -2, 3, 2, 0, 0, 0, 0)
	inductance          = dimension.EncodePowers(1, 2, -2, -2, 0, 0, 0, 0)
	electricPotential   = dimension.EncodePowers(1, 2, -3, -1, 0, 0, 0, 0)
	resistance          = dimension.EncodePowers(1, 2, -3, -2, 0, 0, 0, 0)
	energy              = dimension.EncodePowers(1, 2, -2, 0, 0, 0, 0, 0)
	force               = dimension.EncodePowers(1, 1, -2, 0, 0, 0, 0, 0)
	impulse             = dimension.EncodePowers(1, 1, -1, 0, 0, 0, 0, 0)
	frequency           = dimension.EncodePowers(0, 0, -1, 0, 0, 0, 0, 0)
	illuminance         = dimension.EncodePowers(0, -2, 0, 0, 0, 1, 0, 0)
	luminousFlux        = dimension.EncodePowers(0, 0, 0, 0, 0, 1, 0, 0)
	magneticFlux        = dimension.EncodePowers(1, 2, -2, -1, 0, 0, 0, 0)
	magneticFluxDensity = dimension.EncodePowers(1, 0, -2, -1, 0, 0, 0, 0)
	density             = dimension.EncodePowers(1, -3, 0, 0, 0, 0, 0, 0)
	momentOfInertia     = dimension.EncodePowers(1, 2, 0, 0, 0, 0, 0, 0)
	momentum            = dimension.EncodePowers(1, 1, -1, 0, 0, 0, 0, 0)
	power               = dimension.EncodePowers(1, 2, -3, 0, 0, 0, 0, 0)
	pressure            = dimension.EncodePowers(1, -1, -2, 0, 0, 0, 0, 0)
	speed               = dimension.EncodePowers(0, 1, -1, 0, 0, 0, 0, 0)
	torque              = dimension.EncodePowers(1, 2, -2, 0, 0, 0, 0, 0)
	volume              = dimension.EncodePowers(0, 3, 0, 0, 0, 0, 0, 0)
)

// Derived dimensions. Some share an encoding, such as Energy and Torque, and are
// still distinct types.
type (
	Acceleration        struct{}
	AngularAcceleration struct{}
	AngularSpeed        struct{}
	AngularMomentum     struct{}
	Area                struct{}
	Charge              struct{}
	Capacitance         struct{}
	Conductance         struct{}
	Inductance          struct{}
	ElectricPotential   struct{}
	Resistance          struct{}
	Energy              struct{}
	Force               struct{}
	Impulse             struct{}
	Frequency           struct{}
	Illuminance         struct{}
	LuminousFlux        struct{}
	MagneticFlux        struct{}
	MagneticFluxDensity struct{}
	Density             struct{}
	MomentOfInertia     struct{}
	Momentum            struct{}
	Power               struct{}
	Pressure            struct{}
	Speed               struct{}
	Torque              struct{}
	Volume              struct{}
)

func (Acceleration) Encoding() dimension.Encoding        { return acceleration }
func (AngularAcceleration) Encoding() dimension.Encoding { return angularAcceleration }
func (AngularSpeed) Encoding() dimension.Encoding        { return angularSpeed }
func (AngularMomentum) Encoding() dimension.Encoding     { return angularMomentum }
func (Area) Encoding() dimension.Encoding                { return area }
func (Charge) Encoding() dimension.Encoding              { return charge }
func (Capacitance) Encoding() dimension.Encoding         { return capacitance }
func (Conductance) Encoding() dimension.Encoding         { return conductance }
func (Inductance) Encoding() dimension.Encoding          { return inductance }
func (ElectricPotential) Encoding() dimension.Encoding   { return electricPotential }
func (Resistance) Encoding() dimension.Encoding          { return resistance }
func (Energy) Encoding() dimension.Encoding              { return energy }
func (Force) Encoding() dimension.Encoding               { return force }
func (Impulse) Encoding() dimension.Encoding             { return impulse }
func (Frequency) Encoding() dimension.Encoding           { return frequency }
func (Illuminance) Encoding() dimension.Encoding         { return illuminance }
func (LuminousFlux) Encoding() dimension.Encoding        { return luminousFlux }
func (MagneticFlux) Encoding() dimension.Encoding        { return magneticFlux }
func (MagneticFluxDensity) Encoding() dimension.Encoding { return magneticFluxDensity }
func (Density) Encoding() dimension.Encoding             { return density }
func (MomentOfInertia) Encoding() dimension.Encoding     { return momentOfInertia }
func (Momentum) Encoding() dimension.Encoding            { return momentum }
func (Power) Encoding() dimension.Encoding               { return power }
func (Pressure) Encoding() dimension.Encoding            { return pressure }
func (Speed) Encoding() dimension.Encoding               { return speed }
func (Torque) Encoding() dimension.Encoding              { return torque }
func (Volume) Encoding() dimension.Encoding              { return volume }

var (
	MeterPerSecondSquared = unit.NewRoot[Acceleration]("meter per second squared", "m/s²")
	FootPerSecondSquared  = unit.New(MeterPerSecondSquared, "foot per second squared", "ft/s²", unit.Factor(0.3048))
)

var (
	SquareMeter = unit.NewRoot[Area]("square meter", "m²")
	SquareFoot  = unit.New(SquareMeter, "square foot", "ft²", unit.Factor(0.09290304))
	Acre        = unit.New(SquareMeter, "acre", "ac", unit.Factor(4046.8564224))
)

var Coulomb = unit.NewRoot[Charge]("coulomb", "C")

var (
	Farad     = unit.NewRoot[Capacitance]("farad", "F")
	Picofarad = unit.NewPrefixed(Farad, unit.Pico)
)

var Siemens = unit.NewRoot[Conductance]("siemens", "S")

var Henry = unit.NewRoot[Inductance]("henry", "H")

var (
	Volt      = unit.NewRoot[ElectricPotential]("volt", "V")
	Kilovolt  = unit.NewPrefixed(Volt, unit.Kilo)
	Millivolt = unit.NewPrefixed(Volt, unit.Milli)
)

var (
	Ohm     = unit.NewRoot[Resistance]("ohm", "Ω")
	Kiloohm = unit.NewPrefixed(Ohm, unit.Kilo)
	Megaohm = unit.NewPrefixed(Ohm, unit.Mega)
	Gigaohm = unit.NewPrefixed(Ohm, unit.Giga)
)

// Energy units. Kilocalorie is the thermochemical kilocalorie.
var (
	Joule       = unit.NewRoot[Energy]("joule", "J")
	Millijoule  = unit.NewPrefixed(Joule, unit.Milli)
	Kilojoule   = unit.NewPrefixed(Joule, unit.Kilo)
	Megajoule   = unit.NewPrefixed(Joule, unit.Mega)
	Kilocalorie = unit.New(Joule, "kilocalorie", "kcal", unit.Factor(4184))
)

var (
	Newton     = unit.NewRoot[Force]("newton", "N")
	PoundForce = unit.New(Newton, "pound-force", "lbf", unit.Factor(4.4482216152605))
)

var (
	Hertz     = unit.NewRoot[Frequency]("hertz", "Hz")
	Kilohertz = unit.NewPrefixed(Hertz, unit.Kilo)
	Megahertz = unit.NewPrefixed(Hertz, unit.Mega)
)

var Lux = unit.NewRoot[Illuminance]("lux", "lx")

var Lumen = unit.NewRoot[LuminousFlux]("lumen", "lm")

var Weber = unit.NewRoot[MagneticFlux]("weber", "Wb")

var Tesla = unit.NewRoot[MagneticFluxDensity]("tesla", "T")

// Momentum units. A newton-second is a kilogram meter per second under another
// name.
var (
	KilogramMeterPerSecond = unit.NewRoot[Momentum]("kilogram meter per second", "kg·m/s")
	NewtonSecond           = unit.New(KilogramMeterPerSecond, "newton-second", "N·s", unit.Factor(1))
)

var Watt = unit.NewRoot[Power]("watt", "W")

var Pascal = unit.NewRoot[Pressure]("pascal", "Pa")

var (
	MeterPerSecond   = unit.NewRoot[Speed]("meter per second", "m/s")
	MilePerHour      = unit.New(MeterPerSecond, "mile per hour", "mph", unit.Factor(1609.344/3600))
	KilometerPerHour = unit.New(MeterPerSecond, "kilometer per hour", "km/h", unit.Factor(1000.0/3600))
)

var CubicMeter = unit.NewRoot[Volume]("cubic meter", "m³")
