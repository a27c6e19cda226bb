// Package numeric: value-exact equality and ordering.
// Cross-kind comparison goes through exact binary rationals (big.Rat), so
// two values are equal iff their mathematical values are equal — never
// within a tolerance. Int(42) equals Flt(42.0); it does not equal
// Flt(42.0000001), and Flt(0.1) does not equal MustPrecise("0.1") because
// the binary double 0.1 is not the decimal 1/10.

package numeric

import (
	"math"
	"math/big"
)

// floatClass partitions a float64 into the cases exact comparison has to
// treat separately from its rational value.
type floatClass uint8

const (
	classFinite floatClass = iota
	classNegInf
	classPosInf
	classNaN
)

// component is one axis (real or imaginary) of a value in exact form.
type component struct {
	cls floatClass
	rat *big.Rat // set only for classFinite
}

// ratZero is the shared exact 0 component.
var ratZero = component{cls: classFinite, rat: new(big.Rat)}

// classify splits a float64 into class and exact rational value.
// Every finite double is an exact binary rational, so no rounding occurs.
func classify(f float64) component {
	switch {
	case math.IsNaN(f):
		return component{cls: classNaN}
	case math.IsInf(f, 1):
		return component{cls: classPosInf}
	case math.IsInf(f, -1):
		return component{cls: classNegInf}
	default:
		return component{cls: classFinite, rat: new(big.Rat).SetFloat64(f)}
	}
}

// components decomposes a value into exact (real, imaginary) axes.
func components(v Value) (re, im component) {
	switch x := v.(type) {
	case Integer:
		return component{cls: classFinite, rat: new(big.Rat).SetInt(x.ref())}, ratZero
	case Float:
		return classify(x.f), ratZero
	case Imaginary:
		return ratZero, classify(x.c)
	case Complex:
		return classify(x.re), classify(x.im)
	default:
		p := x.(Precise)

		return component{cls: classFinite, rat: new(big.Rat).SetFrac(p.signed(), pow10(p.scale))}, ratZero
	}
}

// componentEqual compares one axis exactly. NaN equals nothing, itself
// included; infinities match same-signed infinities only.
func componentEqual(a, b component) bool {
	if a.cls == classNaN || b.cls == classNaN {
		return false
	}
	if a.cls != b.cls {
		return false
	}
	if a.cls != classFinite {
		return true
	}

	return a.rat.Cmp(b.rat) == 0
}

// Equal reports whether a and b hold the same mathematical value,
// regardless of representation: Int(42), Flt(42.0), MustPrecise("42") and
// Cmplx(42, 0) are all equal. Equality is exact, never tolerance-based.
func Equal(a, b Value) bool {
	ar, ai := components(a)
	br, bi := components(b)

	return componentEqual(ar, br) && componentEqual(ai, bi)
}

// Compare orders two real values: -1 if a < b, 0 if equal, +1 if a > b.
// Imaginary and Complex kinds have no total order, and NaN is unordered;
// both return ErrUnsupportedOperation.
func Compare(a, b Value) (int, error) {
	if a.Kind() == KindImaginary || a.Kind() == KindComplex ||
		b.Kind() == KindImaginary || b.Kind() == KindComplex {
		return 0, ErrUnsupportedOperation
	}
	ar, _ := components(a)
	br, _ := components(b)
	if ar.cls == classNaN || br.cls == classNaN {
		return 0, ErrUnsupportedOperation
	}

	// Rank infinities below/above every finite value.
	rank := func(c component) int {
		switch c.cls {
		case classNegInf:
			return -1
		case classPosInf:
			return 1
		default:
			return 0
		}
	}
	ra, rb := rank(ar), rank(br)
	switch {
	case ra < rb:
		return -1, nil
	case ra > rb:
		return 1, nil
	case ra != 0:
		// Same-signed infinities compare equal.
		return 0, nil
	default:
		return ar.rat.Cmp(br.rat), nil
	}
}
