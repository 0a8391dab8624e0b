package unit

// Scale is the multiplicative factor between a unit and its parent. A prefix scale,
// such as kilo, also carries a name and symbol that derived units can borrow.
type Scale struct {
	factor float64
	name   string
	symbol string
	prefix bool
}

// NewPrefix returns a named scale, e.g. NewPrefix(1e3, "kilo", "k").
func NewPrefix(factor float64, name, symbol string) Scale {
	return Scale{factor: factor, name: name, symbol: symbol, prefix: true}
}

// Factor returns an unnamed scale.
func Factor(factor float64) Scale {
	return Scale{factor: factor}
}

// Factor returns the multiplier.
func (s Scale) Factor() float64 {
	return s.factor
}

// Name returns the prefix name, or "" for an unnamed scale.
func (s Scale) Name() string {
	return s.name
}

// Symbol returns the prefix symbol, or "" for an unnamed scale.
func (s Scale) Symbol() string {
	return s.symbol
}

// IsPrefix reports whether s was built with NewPrefix.
func (s Scale) IsPrefix() bool {
	return s.prefix
}

// Identity is the scale of every root unit.
var Identity = Factor(1)

// SI prefixes.
var (
	Yocto = NewPrefix(1e-24, "yocto", "y")
	Zepto = NewPrefix(1e-21, "zepto", "z")
	Atto  = NewPrefix(1e-18, "atto", "a")
	Femto = NewPrefix(1e-15, "femto", "f")
	Pico  = NewPrefix(1e-12, "pico", "p")
	Nano  = NewPrefix(1e-09, "nano", "n")
	Micro = NewPrefix(1e-06, "micro", "µ")
	Milli = NewPrefix(1e-03, "milli", "m")
	Centi = NewPrefix(1e-02, "centi", "c")
	Deci  = NewPrefix(1e-01, "deci", "d")

	Deca  = NewPrefix(1e+01, "deca", "da")
	Hecto = NewPrefix(1e+02, "hecto", "h")
	Kilo  = NewPrefix(1e+03, "kilo", "k")
	Mega  = NewPrefix(1e+06, "mega", "M")
	Giga  = NewPrefix(1e+09, "giga", "G")
	Tera  = NewPrefix(1e+12, "tera", "T")
	Peta  = NewPrefix(1e+15, "peta", "P")
	Exa   = NewPrefix(1e+18, "exa", "E")
	Zetta = NewPrefix(1e+21, "zetta", "Z")
	Yotta = NewPrefix(1e+24, "yotta", "Y")
)

// Prefixes returns the SI prefixes from Yocto to Yotta.
func Prefixes() []Scale {
	return []Scale{
		Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli, Centi, Deci,
		Deca, Hecto, Kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta,
	}
}
