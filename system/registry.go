package system

import "github.com/jacentio/dimensional/unit"

// Registries of the units above, one per dimension that has units.
var (
	Masses                = unit.NewRegistry[Mass](nil)
	Lengths               = unit.NewRegistry[Length](nil)
	Times                 = unit.NewRegistry[Time](nil)
	Currents              = unit.NewRegistry[Current](nil)
	Temperatures          = unit.NewRegistry[Temperature](nil)
	Intensities           = unit.NewRegistry[Intensity](nil)
	Amounts               = unit.NewRegistry[Amount](nil)
	Angles                = unit.NewRegistry[Angle](nil)
	Accelerations         = unit.NewRegistry[Acceleration](nil)
	Areas                 = unit.NewRegistry[Area](nil)
	Charges               = unit.NewRegistry[Charge](nil)
	Capacitances          = unit.NewRegistry[Capacitance](nil)
	Conductances          = unit.NewRegistry[Conductance](nil)
	Inductances           = unit.NewRegistry[Inductance](nil)
	ElectricPotentials    = unit.NewRegistry[ElectricPotential](nil)
	Resistances           = unit.NewRegistry[Resistance](nil)
	Energies              = unit.NewRegistry[Energy](nil)
	Forces                = unit.NewRegistry[Force](nil)
	Frequencies           = unit.NewRegistry[Frequency](nil)
	Illuminances          = unit.NewRegistry[Illuminance](nil)
	LuminousFluxes        = unit.NewRegistry[LuminousFlux](nil)
	MagneticFluxes        = unit.NewRegistry[MagneticFlux](nil)
	MagneticFluxDensities = unit.NewRegistry[MagneticFluxDensity](nil)
	Momenta               = unit.NewRegistry[Momentum](nil)
	Powers                = unit.NewRegistry[Power](nil)
	Pressures             = unit.NewRegistry[Pressure](nil)
	Speeds                = unit.NewRegistry[Speed](nil)
	Volumes               = unit.NewRegistry[Volume](nil)
)

func init() {
	Masses.MustRegister(Kilogram, Gram, Milligram, Pound, Ounce)
	Lengths.MustRegister(Meter, Millimeter, Centimeter, Kilometer, Yard, Foot, Inch, Mile)
	Times.MustRegister(Second, Millisecond, Microsecond, Nanosecond, Minute, Hour)
	Currents.MustRegister(Ampere, Milliampere)
	Temperatures.MustRegister(Kelvin, Celsius, Fahrenheit)
	Intensities.MustRegister(Candela)
	Amounts.MustRegister(Mole)
	Angles.MustRegister(Radian, Degree)

	Accelerations.MustRegister(MeterPerSecondSquared, FootPerSecondSquared)
	Areas.MustRegister(SquareMeter, SquareFoot, Acre)
	Charges.MustRegister(Coulomb)
	Capacitances.MustRegister(Farad, Picofarad)
	Conductances.MustRegister(Siemens)
	Inductances.MustRegister(Henry)
	ElectricPotentials.MustRegister(Volt, Kilovolt, Millivolt)
	Resistances.MustRegister(Ohm, Kiloohm, Megaohm, Gigaohm)
	Energies.MustRegister(Joule, Millijoule, Kilojoule, Megajoule, Kilocalorie)
	Forces.MustRegister(Newton, PoundForce)
	Frequencies.MustRegister(Hertz, Kilohertz, Megahertz)
	Illuminances.MustRegister(Lux)
	LuminousFluxes.MustRegister(Lumen)
	MagneticFluxes.MustRegister(Weber)
	MagneticFluxDensities.MustRegister(Tesla)
	Momenta.MustRegister(KilogramMeterPerSecond, NewtonSecond)
	Powers.MustRegister(Watt)
	Pressures.MustRegister(Pascal)
	Speeds.MustRegister(MeterPerSecond, MilePerHour, KilometerPerHour)
	Volumes.MustRegister(CubicMeter)
}
