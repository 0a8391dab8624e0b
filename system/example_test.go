package system_test

import (
	"errors"
	"fmt"

	"github.com/jacentio/dimensional/quantity"
	"github.com/jacentio/dimensional/system"
	"github.com/jacentio/dimensional/unit"
)

func Example() {
	d := quantity.New(1.5, system.Kilometer)
	d = d.Add(quantity.New(300, system.Meter))
	fmt.Println(d)

	v, err := quantity.Div(d, quantity.New(0.5, system.Hour), system.KilometerPerHour)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f\n", v)
	// Output:
	// 1.8 km
	// 3.6 km/h
}

func Example_nearly() {
	inch := quantity.New(1, system.Inch)
	cm := quantity.New(2.54, system.Centimeter)
	fmt.Println(inch.Nearly(cm, quantity.DefaultTolerance()))
	// Output:
	// true
}

func Example_mul() {
	f, err := quantity.Mul(quantity.New(2, system.Kilogram), quantity.New(9.81, system.MeterPerSecondSquared), system.Newton)
	fmt.Println(f, err)

	_, err = quantity.Mul(quantity.New(20, system.Celsius), quantity.New(2, system.Second), system.Kelvin)
	fmt.Println(errors.Is(err, quantity.ErrDimensionMismatch))
	// Output:
	// 19.62 N <nil>
	// true
}

func Example_converter() {
	c := unit.NewConverter(system.Fahrenheit, system.Celsius)
	for _, f := range []float64{32, 212} {
		fmt.Printf("%.0f F = %.0f C\n", f, c.Convert(f))
	}
	// Output:
	// 32 F = 0 C
	// 212 F = 100 C
}
