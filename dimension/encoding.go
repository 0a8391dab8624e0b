package dimension

import (
	"fmt"
	"strings"
)

// Encoding holds the exponent of every base dimension. A derived dimension is the
// product of the bases raised to these powers; the zero value is dimensionless.
type Encoding [Count]int8

// Zero is the dimensionless encoding.
var Zero Encoding

// Encode returns an encoding that is zero everywhere except base, which has power.
func Encode(base Base, power int8) Encoding {
	var e Encoding
	e[base] = power
	return e
}

// EncodePowers returns the powers, in base order, as an encoding.
// It panics unless exactly Count powers are given.
func EncodePowers(powers ...int8) Encoding {
	if len(powers) != Count {
		panic(fmt.Sprintf("dimension: EncodePowers needs %d powers, got %d", Count, len(powers)))
	}
	var e Encoding
	copy(e[:], powers)
	return e
}

// Decode returns the power of base in e.
func Decode(base Base, e Encoding) int8 {
	return e[base]
}

// Combine encodes base1^power1 and then adds power2 to base2.
// When base1 == base2 the powers accumulate.
func Combine(base1 Base, power1 int8, base2 Base, power2 int8) Encoding {
	e := Encode(base1, power1)
	e[base2] += power2
	return e
}

// CompatibleAsProduct reports whether r is the dimension of p1 × p2.
func CompatibleAsProduct(r, p1, p2 Encoding) bool {
	for i := range r {
		if r[i] != p1[i]+p2[i] {
			return false
		}
	}
	return true
}

// CompatibleAsQuotient reports whether r is the dimension of p1 ÷ p2.
func CompatibleAsQuotient(r, p1, p2 Encoding) bool {
	for i := range r {
		if r[i] != p1[i]-p2[i] {
			return false
		}
	}
	return true
}

// Mul returns the dimension of a × b.
func Mul(a, b Encoding) Encoding {
	var e Encoding
	for i := range e {
		e[i] = a[i] + b[i]
	}
	return e
}

// Div returns the dimension of a ÷ b.
func Div(a, b Encoding) Encoding {
	var e Encoding
	for i := range e {
		e[i] = a[i] - b[i]
	}
	return e
}

// Power returns the power of base in e.
func (e Encoding) Power(base Base) int8 {
	return Decode(base, e)
}

// IsDimensionless reports whether every power is zero.
func (e Encoding) IsDimensionless() bool {
	return e == Zero
}

// String renders e with base symbols and superscript powers, e.g. "M·L·T⁻²".
// A dimensionless encoding renders as "1".
func (e Encoding) String() string {
	var parts []string
	for _, b := range Bases() {
		p := e[b]
		switch p {
		case 0:
			continue
		case 1:
			parts = append(parts, b.Symbol())
		default:
			parts = append(parts, b.Symbol()+superscript(int(p)))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func superscript(n int) string {
	var sb strings.Builder
	if n < 0 {
		sb.WriteRune('⁻')
		n = -n
	}
	for _, c := range fmt.Sprint(n) {
		sb.WriteRune(superscriptDigits[c-'0'])
	}
	return sb.String()
}
