package dimension

// Base is one of the fundamental dimensions. Its value is its index in an [Encoding].
type Base int

// The base dimensions, in encoding order.
const (
	Mass Base = iota
	Length
	Time
	Current
	Temperature
	Intensity
	Amount
	Angle
)

// Count is the number of base dimensions.
const Count = int(Angle) + 1

var baseNames = [Count]string{"Mass", "Length", "Time", "Current", "Temperature", "Intensity", "Amount", "Angle"}

var baseSymbols = [Count]string{"M", "L", "T", "I", "Θ", "J", "N", "R"}

// Bases returns every base dimension in encoding order.
func Bases() []Base {
	bases := make([]Base, Count)
	for i := range bases {
		bases[i] = Base(i)
	}
	return bases
}

// Index returns the position of b in an Encoding.
func (b Base) Index() int {
	return int(b)
}

// Name returns the display name, e.g. "Length".
func (b Base) Name() string {
	return baseNames[b]
}

// Symbol returns the dimensional symbol, e.g. "L".
func (b Base) Symbol() string {
	return baseSymbols[b]
}

func (b Base) String() string {
	return b.Name()
}
