package numeric

import "math/big"

// Integer is an exact, arbitrary-range signed integer.
//
// The zero value is a valid Integer equal to 0. Integers are immutable:
// the internal big.Int is never mutated after construction, and accessors
// hand out copies.
type Integer struct {
	i *big.Int
}

// Int builds an Integer from an int64.
func Int(v int64) Integer {
	return Integer{i: big.NewInt(v)}
}

// IntFromBig builds an Integer from a big.Int. The argument is copied, so
// later mutation of v cannot reach the returned value. A nil v yields zero.
func IntFromBig(v *big.Int) Integer {
	if v == nil {
		return Integer{}
	}

	return Integer{i: new(big.Int).Set(v)}
}

// ref returns the internal big.Int, substituting a shared zero for the
// zero value. Callers must treat the result as read-only.
func (a Integer) ref() *big.Int {
	if a.i == nil {
		return intZero
	}

	return a.i
}

// intZero backs the zero-value Integer; it is read-only by convention.
var intZero = new(big.Int)

// Kind reports KindInteger.
func (a Integer) Kind() Kind { return KindInteger }

// Float64 returns the nearest double-precision approximation.
// Magnitudes beyond the float64 range saturate to ±Inf.
func (a Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.ref()).Float64()

	return f
}

// Int64 returns the value as an int64 and true when it fits, or 0 and
// false when it is out of the int64 range.
func (a Integer) Int64() (int64, bool) {
	if !a.ref().IsInt64() {
		return 0, false
	}

	return a.ref().Int64(), true
}

// Big returns a copy of the value as a big.Int.
func (a Integer) Big() *big.Int { return new(big.Int).Set(a.ref()) }

// IsZero reports whether the value is 0.
func (a Integer) IsZero() bool { return a.ref().Sign() == 0 }

// String renders the decimal literal, e.g. "-42".
func (a Integer) String() string { return a.ref().String() }

func (a Integer) sealed() {}
