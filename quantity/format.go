package quantity

import (
	"fmt"
)

// String returns the value followed by the unit symbol, e.g. "1 kg".
func (q Quantity[D]) String() string {
	if q.unit == nil {
		return fmt.Sprintf("%v", q.value)
	}
	return fmt.Sprintf("%v %s", q.value, q.unit.Symbol())
}

// Format implements fmt.Formatter. The floating point verbs and %v format the value
// with the given width and precision and append the unit symbol.
func (q Quantity[D]) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "quantity.Quantity{value: %v, unit: %s}", q.value, q.symbol())
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		w, wOk := fs.Width()
		switch {
		case pOk && wOk:
			fmt.Fprintf(fs, "%*.*"+string(c), w, p, q.value)
		case pOk:
			fmt.Fprintf(fs, "%.*"+string(c), p, q.value)
		case wOk:
			fmt.Fprintf(fs, "%*"+string(c), w, q.value)
		default:
			fmt.Fprintf(fs, "%"+string(c), q.value)
		}
		if s := q.symbol(); s != "" {
			fmt.Fprintf(fs, " %s", s)
		}
	default:
		fmt.Fprintf(fs, "%%!%c(quantity.Quantity=%g %s)", c, q.value, q.symbol())
	}
}

func (q Quantity[D]) symbol() string {
	if q.unit == nil {
		return ""
	}
	return q.unit.Symbol()
}
