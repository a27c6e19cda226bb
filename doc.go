// Package metron is your toolkit for exact measurement arithmetic — numeric
// values of mixed kinds, units of measure, and the conversions between them.
//
// 🚀 What is metron?
//
//	A modern, thread-safe library that brings together:
//		• Numeric tower: exact integers, floats, imaginary/complex pairs and
//		  arbitrary-precision decimals with closed mixed-kind arithmetic
//		• Units: immutable affine (scale + offset) unit definitions, powered
//		  derivations, and custom forward/inverse converter pairs
//		• Inverse solver: bounded damped search for units whose forward
//		  conversion has no closed-form inverse
//		• Time scales: TT, TAI, TDB, TCB and UT1 built on the solver
//		• Formatting: grouped, scientific and engineering notation output
//
// ✨ Why choose metron?
//
//   - Exactness first – no silent precision loss: combining anything with an
//     arbitrary-precision decimal keeps the result decimal
//   - Total promotion – every operator is defined over every ordered pair of
//     numeric kinds, with documented result kinds
//   - Immutable everywhere – every value and unit is safe to share across
//     goroutines with no locking
//   - Pure functions – conversions and arithmetic have no hidden state
//
// Under the hood, everything is organized under five subpackages:
//
//	numeric/   — the value kinds, promotion rules, equality and comparison
//	unit/      — unit definitions, toBase/fromBase and unit-to-unit conversion
//	solver/    — the damped iterative inverter for non-invertible conversions
//	timescale/ — astronomical time-scale units wired through the solver
//	format/    — human-readable rendering of numeric values
//
// Quick example:
//
//	v := numeric.Int(42)
//	p := numeric.MustPrecise("34.21")
//	sum, _ := numeric.Add(v, p) // Precise "76.21", exactly
//
// Dive into each package's doc.go for the full contract, and into
// example_test.go files for runnable walkthroughs.
//
//	go get github.com/katalvlaran/metron
package metron
