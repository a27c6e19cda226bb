package numeric

import "strconv"

// Float is an IEEE-754 double-precision real value. It carries no
// uncertainty: 4.2 means exactly the binary double nearest to 4.2.
type Float struct {
	f float64
}

// Flt builds a Float from a float64. Infinities are legal; NaN is legal
// but compares unequal to everything, itself included.
func Flt(v float64) Float {
	return Float{f: v}
}

// Kind reports KindFloat.
func (a Float) Kind() Kind { return KindFloat }

// Float64 returns the underlying double.
func (a Float) Float64() float64 { return a.f }

// IsZero reports whether the value is 0 (positive or negative zero).
func (a Float) IsZero() bool { return a.f == 0 }

// String renders the shortest literal that round-trips the double,
// e.g. "3.5", "1e+21".
func (a Float) String() string {
	return strconv.FormatFloat(a.f, 'g', -1, 64)
}

func (a Float) sealed() {}
