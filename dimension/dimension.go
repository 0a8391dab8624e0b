package dimension

// Dimension is implemented by types that stand for one physical dimension.
// Encoding must return the same value for every instance of the type.
type Dimension interface {
	Encoding() Encoding
}

// Of returns the encoding of dimension type D.
func Of[D Dimension]() Encoding {
	var d D
	return d.Encoding()
}

// Dimensionless is the dimension of pure numbers and ratios.
type Dimensionless struct{}

// Encoding returns Zero.
func (Dimensionless) Encoding() Encoding { return Zero }
