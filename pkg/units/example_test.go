package units_test

import (
	"fmt"

	"github.com/synteny-tools/synplot/pkg/units"
)

func ExampleHumanSize() {
	// Pick the unit automatically from the magnitude.
	fmt.Println(units.HumanSize(50000, 0))
	fmt.Println(units.HumanSize(6250000, 2))
	fmt.Println(units.HumanSize(730, 0))
	// Output:
	// 50Kb
	// 6.25Mb
	// 730bp
}

func ExampleRangeLabel() {
	// Both endpoints share the unit of the larger one.
	fmt.Println(units.RangeLabel(6250000, 7500000))
	fmt.Println(units.RangeLabel(0, 48350))
	// Output:
	// 6.25-7.50Mb
	// 0.00-48.35Kb
}

func ExampleFormat() {
	fmt.Println(units.Format(1500000, units.Kb, 0))
	// Output:
	// 1500Kb
}
