package unit_test

import (
	"fmt"

	"github.com/katalvlaran/metron/numeric"
	"github.com/katalvlaran/metron/unit"
)

// ExampleConvert walks the full data flow: a quantity expressed in one
// unit converts through the base representation into another unit.
func ExampleConvert() {
	foot, _ := unit.New("foot", 0.3048, unit.WithSymbols("ft"),
		unit.WithExactScale(numeric.MustPrecise("0.3048")))
	meter, _ := unit.New("meter", 1, unit.WithSymbols("m"))

	// Exact decimals survive the conversion end to end.
	m, _ := unit.Convert(numeric.MustPrecise("10"), foot, meter)
	fmt.Println(m, m.Kind())

	ft, _ := unit.Convert(m, meter, foot)
	fmt.Println(ft)
	// Output:
	// 3.048 precise
	// 10
}

// ExampleDerive builds a volume unit from a length unit at construction
// time.
func ExampleDerive() {
	foot, _ := unit.New("foot", 0.3048,
		unit.WithExactScale(numeric.MustPrecise("0.3048")))
	cubicFoot, _ := unit.Derive("cubic foot", foot, 3, unit.WithSymbols("ft³"))

	base, _ := cubicFoot.ToBase(numeric.MustPrecise("2"))
	fmt.Println(base)
	// Output:
	// 0.056633693184
}
