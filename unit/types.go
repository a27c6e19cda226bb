// Package unit: the Unit descriptor, functional options and the sentinel
// error set. All constructors MUST return these sentinels and tests MUST
// check them via errors.Is.

package unit

import (
	"errors"

	"github.com/katalvlaran/metron/numeric"
	"github.com/katalvlaran/metron/solver"
)

// Sentinel errors returned by unit construction and conversion.
var (
	// ErrEmptyName indicates a unit constructed without a display name.
	ErrEmptyName = errors.New("unit: name must be non-empty")

	// ErrZeroScale indicates a zero scale factor, which would make the
	// affine conversion non-invertible.
	ErrZeroScale = errors.New("unit: scale factor must be non-zero")

	// ErrNilUnit indicates a nil *Unit was passed to a conversion.
	ErrNilUnit = errors.New("unit: unit is nil")

	// ErrUnsupportedConversion indicates an operation invalid for the
	// unit: affine conversion or derivation of a log-scale unit, or
	// derivation of a unit with an offset or custom converters.
	ErrUnsupportedConversion = errors.New("unit: unsupported conversion")

	// ErrBadPower indicates Derive was given a zero power.
	ErrBadPower = errors.New("unit: power must be non-zero")
)

// DefaultTolerance is the declared round-trip tolerance for affine units:
// |FromBase(ToBase(v)) − v| stays within it across the unit's domain.
// Units with solver-backed inverses declare coarser tolerances.
const DefaultTolerance = 1e-8

// Converter maps a numeric value between a unit and the base
// representation, overriding the affine formula entirely. Converters must
// be pure functions; they run concurrently without coordination.
type Converter func(numeric.Value) (numeric.Value, error)

// Unit is an immutable measurement-unit descriptor. Construct with New or
// Derive; the zero value is not a valid Unit.
type Unit struct {
	name      string
	symbols   []string
	scale     numeric.Value // multiplicative factor to base
	offset    numeric.Value // additive, applied before scaling
	log       bool
	forward   Converter      // overrides affine ToBase when set
	inverse   Converter      // overrides affine FromBase when set
	solve     solver.Options // inverse search policy when inverse is nil
	tolerance float64        // declared round-trip tolerance
}

// Option customizes a Unit under construction.
type Option func(*Unit)

// WithSymbols attaches short display symbols, e.g. "m", "ft³".
func WithSymbols(symbols ...string) Option {
	return func(u *Unit) { u.symbols = append([]string(nil), symbols...) }
}

// WithOffset sets the additive offset applied in value space before
// scaling: base = (value + offset) × scale. Temperature-style units use
// this (1 K = 1 °C shifted by 273.15).
func WithOffset(offset float64) Option {
	return func(u *Unit) { u.offset = numeric.Flt(offset) }
}

// WithExactScale replaces the scale factor with an exact decimal, so
// Precise inputs convert without any binary rounding: the inch is exactly
// 0.0254 m.
func WithExactScale(scale numeric.Precise) Option {
	return func(u *Unit) { u.scale = scale }
}

// WithExactOffset replaces the offset with an exact decimal.
func WithExactOffset(offset numeric.Precise) Option {
	return func(u *Unit) { u.offset = offset }
}

// WithLogScale marks the unit as logarithmic/non-linear (decibel family).
// Such units are excluded from plain affine math: conversion without
// explicit converters, and any derivation, return ErrUnsupportedConversion.
func WithLogScale() Option {
	return func(u *Unit) { u.log = true }
}

// WithConverters overrides the affine formula with an explicit
// forward/inverse pair. The scale and offset then become informational
// only (the solver uses them as a first approximation, never as truth).
// Panics if either function is nil (programmer error); for a one-sided
// relationship use WithForward or WithInverse.
func WithConverters(forward, inverse Converter) Option {
	if forward == nil || inverse == nil {
		panic("unit: WithConverters requires both converters; use WithForward or WithInverse")
	}

	return func(u *Unit) {
		u.forward = forward
		u.inverse = inverse
	}
}

// WithForward sets a forward (value→base) converter whose inverse has no
// closed form; FromBase obtains the inverse from the damped search in
// metron/solver.
func WithForward(forward Converter) Option {
	return func(u *Unit) {
		u.forward = forward
		u.inverse = nil
	}
}

// WithInverse sets an inverse (base→value) converter whose forward has no
// closed form; ToBase obtains the forward from the damped search. This is
// the shape of the astronomical time scales, where the correction term is
// a closed-form function of the base value only.
func WithInverse(inverse Converter) Option {
	return func(u *Unit) {
		u.forward = nil
		u.inverse = inverse
	}
}

// WithSolverOptions sets the search policy used when the inverse is
// solved numerically (defaults to solver.DefaultOptions()).
func WithSolverOptions(opts solver.Options) Option {
	return func(u *Unit) { u.solve = opts }
}

// WithTolerance declares the unit's round-trip tolerance, used by
// property tests; defaults to DefaultTolerance, and solver-backed units
// typically declare the solver's coarser epsilon.
func WithTolerance(tol float64) Option {
	return func(u *Unit) { u.tolerance = tol }
}
