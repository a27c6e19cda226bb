// Package numeric: value kinds and the sentinel error set.
// This file defines the sealed Value interface, the Kind enumeration and
// ONLY package-level sentinel errors used across the package. All operations
// MUST return these sentinels and tests MUST check them via errors.Is.

package numeric

import "errors"

// Sentinel errors returned by the numeric tower.
var (
	// ErrDivisionByZero indicates a division whose divisor is an exact zero
	// (Integer zero, Precise zero, or a zero imaginary/complex coefficient).
	// Pure floating division opts into IEEE semantics instead; see Div.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrUnsupportedOperation indicates an operation that is not defined for
	// the given kind combination, e.g. combining Imaginary or Complex with
	// Precise, or ordering complex values.
	ErrUnsupportedOperation = errors.New("numeric: unsupported operation for kind combination")

	// ErrMalformedDecimal indicates that a decimal literal could not be
	// parsed. Malformed input is rejected outright, never truncated.
	ErrMalformedDecimal = errors.New("numeric: malformed decimal literal")
)

// Kind identifies the concrete representation of a Value.
//
//	KindInteger   – exact arbitrary-range signed integer.
//	KindFloat     – IEEE-754 double-precision real.
//	KindImaginary – pure imaginary component (float coefficient).
//	KindComplex   – ordered (real, imaginary) float pair.
//	KindPrecise   – arbitrary-precision decimal (sign, coefficient, scale).
type Kind uint8

const (
	// KindInteger marks an exact integer value.
	KindInteger Kind = iota

	// KindFloat marks a double-precision floating value.
	KindFloat

	// KindImaginary marks a pure imaginary floating value.
	KindImaginary

	// KindComplex marks a (real, imaginary) pair.
	KindComplex

	// KindPrecise marks an arbitrary-precision decimal value.
	KindPrecise
)

// String returns the lower-case kind name, e.g. "integer".
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindImaginary:
		return "imaginary"
	case KindComplex:
		return "complex"
	case KindPrecise:
		return "precise"
	default:
		return "unknown"
	}
}

// Value is the sealed interface over the five numeric kinds.
//
// Implementations are immutable: arithmetic never mutates an operand, it
// returns a fresh Value. The interface is sealed so the operator dispatch
// in this package stays exhaustive — adding a kind is a package change,
// not a client extension point.
type Value interface {
	// Kind reports the concrete representation.
	Kind() Kind

	// Float64 returns the closest double-precision approximation.
	// For Imaginary it is the imaginary coefficient; for Complex, the
	// real component. Precise values round to nearest.
	Float64() float64

	// IsZero reports whether the value is mathematically zero
	// (all components zero for Complex).
	IsZero() bool

	// String renders a plain literal form, e.g. "42", "3.5", "9.6i",
	// "2.1+9.6i", "76.21".
	String() string

	sealed()
}
