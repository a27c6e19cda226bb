// Package numeric implements a closed tower of numeric value kinds with
// total mixed-kind arithmetic, value-exact equality and ordering.
//
// 🚀 What is the numeric tower?
//
//	Five immutable value kinds behind one sealed Value interface:
//	  • Integer   — exact, arbitrary-range signed integer
//	  • Float     — IEEE-754 double-precision real
//	  • Imaginary — a float tagged as a pure imaginary component
//	  • Complex   — an ordered (real, imaginary) float pair
//	  • Precise   — arbitrary-precision decimal (sign, coefficient, scale)
//
//	Every binary operator (Add, Sub, Mul, Div) is defined over all 25
//	ordered kind pairs; the result kind follows a fixed promotion table.
//
// ✨ Promotion, by increasing width:
//
//  1. Integer op Integer → Integer for + − ×; ÷ always widens to Float,
//     even when the division is exact, so the result kind never depends
//     on operand values.
//  2. Integer op Float (either order) → Float.
//  3. (Integer | Float) op Imaginary → Complex for + −, Imaginary for × ÷
//     (standard complex algebra on a pure imaginary operand).
//  4. anything op Complex → Complex, component-wise.
//  5. anything op Precise → Precise ("precision is contagious"): the other
//     operand is converted to its exact decimal form first. Imaginary and
//     Complex operands have no decimal analogue and are rejected with
//     ErrUnsupportedOperation.
//
// Equality is value-exact, never tolerance-based: Int(42) equals Flt(42.0),
// and does not equal Flt(42.0000001). Cross-kind comparison goes through
// exact binary rationals, so no rounding can leak in.
//
// Division by an exact zero divisor (Integer zero, Precise zero, or a zero
// imaginary/complex coefficient) returns ErrDivisionByZero. Only divisions
// whose result kind is Float (Float÷Float, Integer÷Float) follow IEEE
// semantics for a floating zero divisor and may yield ±Inf or NaN.
//
// ⚙️ Usage:
//
//	a := numeric.Int(42)
//	b := numeric.MustPrecise("34.21")
//	sum, err := numeric.Add(a, b) // Precise "76.21", exactly
//
// All values are immutable; every operation returns a fresh value and the
// package is safe for unsynchronized concurrent use.
package numeric
