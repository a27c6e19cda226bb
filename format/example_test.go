package format_test

import (
	"fmt"

	"github.com/katalvlaran/metron/format"
	"github.com/katalvlaran/metron/numeric"
)

// ExampleFormat groups a large reading for display.
func ExampleFormat() {
	opts := format.DefaultOptions()
	opts.Notation = format.Plain

	fmt.Println(format.Format(numeric.Flt(1234567.891), opts))
	// Output: 1,234,567.891
}

// ExampleFormat_auto lets the magnitude pick the notation.
func ExampleFormat_auto() {
	opts := format.DefaultOptions()

	fmt.Println(format.Format(numeric.Flt(0.0004), opts))
	fmt.Println(format.Format(numeric.Flt(999999.5), opts))
	fmt.Println(format.Format(numeric.Flt(12345678), opts))
	// Output:
	// 4e-04
	// 999,999.5
	// 1.2345678e+07
}

// ExampleFormat_engineering renders with the exponent on a power of
// one thousand, the way SI prefixes read.
func ExampleFormat_engineering() {
	opts := format.DefaultOptions()
	opts.Notation = format.Engineering

	fmt.Println(format.Format(numeric.Flt(12345678), opts))
	fmt.Println(format.Format(numeric.Flt(0.012), opts))
	// Output:
	// 12.345678e+06
	// 12e-03
}
