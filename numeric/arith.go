// Package numeric: operator dispatch across the promotion table.
// Dispatch order encodes the width hierarchy: Precise first (precision is
// contagious), then Complex, then Imaginary, then the integer/float floor.
// Each tier is total over the kind pairs that can reach it, so the four
// operators are defined for all 25 ordered kind pairs.

package numeric

import (
	"math"
	"math/big"
)

// op identifies a binary operator inside the dispatch tables.
type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opDiv
)

// Add returns a+b under the promotion rules (see the package overview).
func Add(a, b Value) (Value, error) { return dispatch(opAdd, a, b) }

// Sub returns a−b under the promotion rules.
func Sub(a, b Value) (Value, error) { return dispatch(opSub, a, b) }

// Mul returns a×b under the promotion rules.
func Mul(a, b Value) (Value, error) { return dispatch(opMul, a, b) }

// Div returns a÷b under the promotion rules.
//
// Division by an exact zero divisor (Integer zero, Precise zero, zero
// imaginary/complex coefficients) returns ErrDivisionByZero. Divisions
// whose result kind is Float follow IEEE semantics for a floating zero
// divisor and yield ±Inf or NaN instead.
func Div(a, b Value) (Value, error) { return dispatch(opDiv, a, b) }

// dispatch routes one binary operation to its promotion tier.
func dispatch(o op, a, b Value) (Value, error) {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka == KindPrecise || kb == KindPrecise:
		return preciseOp(o, a, b)
	case ka == KindComplex || kb == KindComplex:
		return complexOp(o, a, b)
	case ka == KindImaginary || kb == KindImaginary:
		return imaginaryOp(o, a, b)
	case ka == KindInteger && kb == KindInteger:
		return integerOp(o, a.(Integer), b.(Integer))
	default:
		return floatOp(o, a, b)
	}
}

// preciseOp handles any pair involving a Precise operand. The other
// operand converts to its exact decimal form first; Imaginary and Complex
// have no decimal analogue and are rejected.
func preciseOp(o op, a, b Value) (Value, error) {
	pa, err := Exact(a)
	if err != nil {
		return nil, err
	}
	pb, err := Exact(b)
	if err != nil {
		return nil, err
	}
	switch o {
	case opAdd:
		return addPrecise(pa, pb), nil
	case opSub:
		return subPrecise(pa, pb), nil
	case opMul:
		return mulPrecise(pa, pb), nil
	default:
		return divPrecise(pa, pb)
	}
}

// complexOp handles any pair involving a Complex operand (no Precise here).
// A non-complex operand is treated as a Complex with zero imaginary part.
func complexOp(o op, a, b Value) (Value, error) {
	ca, cb := toComplex128(a), toComplex128(b)
	switch o {
	case opAdd:
		return fromComplex128(ca + cb), nil
	case opSub:
		return fromComplex128(ca - cb), nil
	case opMul:
		return fromComplex128(ca * cb), nil
	default:
		if cb == 0 {
			return nil, ErrDivisionByZero
		}

		return fromComplex128(ca / cb), nil
	}
}

// imaginaryOp handles pairs involving an Imaginary operand but no Complex
// or Precise one. Pure-imaginary algebra keeps results narrow where it
// can: a real times an imaginary stays Imaginary, an imaginary times an
// imaginary collapses to a real Float.
func imaginaryOp(o op, a, b Value) (Value, error) {
	ai, aImag := a.(Imaginary)
	bi, bImag := b.(Imaginary)

	if aImag && bImag {
		switch o {
		case opAdd:
			return Imag(ai.c + bi.c), nil
		case opSub:
			return Imag(ai.c - bi.c), nil
		case opMul:
			// (ai)(bi) = -ab.
			return Flt(-(ai.c * bi.c)), nil
		default:
			if bi.c == 0 {
				return nil, ErrDivisionByZero
			}

			// (ai)/(bi) = a/b.
			return Flt(ai.c / bi.c), nil
		}
	}

	if aImag {
		// a = ci, b real.
		r := b.Float64()
		switch o {
		case opAdd:
			return Cmplx(r, ai.c), nil
		case opSub:
			return Cmplx(-r, ai.c), nil
		case opMul:
			return Imag(ai.c * r), nil
		default:
			if r == 0 {
				return nil, ErrDivisionByZero
			}

			return Imag(ai.c / r), nil
		}
	}

	// a real, b = ci.
	r := a.Float64()
	switch o {
	case opAdd:
		return Cmplx(r, bi.c), nil
	case opSub:
		return Cmplx(r, -bi.c), nil
	case opMul:
		return Imag(r * bi.c), nil
	default:
		if bi.c == 0 {
			return nil, ErrDivisionByZero
		}

		// r/(ci) = (-r/c)i.
		return Imag(-r / bi.c), nil
	}
}

// integerOp handles the exact-integer floor: + − × stay closed over
// Integer; ÷ always widens to Float so the result kind never depends on
// whether the division happens to be exact.
func integerOp(o op, a, b Integer) (Value, error) {
	switch o {
	case opAdd:
		return Integer{i: new(big.Int).Add(a.ref(), b.ref())}, nil
	case opSub:
		return Integer{i: new(big.Int).Sub(a.ref(), b.ref())}, nil
	case opMul:
		return Integer{i: new(big.Int).Mul(a.ref(), b.ref())}, nil
	default:
		if b.IsZero() {
			return nil, ErrDivisionByZero
		}
		// Quotient through an exact rational, then one rounding to float.
		f, _ := new(big.Rat).SetFrac(a.ref(), b.ref()).Float64()

		return Flt(f), nil
	}
}

// floatOp handles Integer/Float mixes with at least one Float operand.
// The only IEEE opt-in lives here: a floating zero divisor yields ±Inf or
// NaN, while an exact Integer zero divisor still errors.
func floatOp(o op, a, b Value) (Value, error) {
	fa, fb := a.Float64(), b.Float64()
	switch o {
	case opAdd:
		return Flt(fa + fb), nil
	case opSub:
		return Flt(fa - fb), nil
	case opMul:
		return Flt(fa * fb), nil
	default:
		if b.Kind() == KindInteger && b.IsZero() {
			return nil, ErrDivisionByZero
		}

		return Flt(fa / fb), nil
	}
}

// Neg returns the additive inverse of v, preserving its kind.
func Neg(v Value) Value {
	switch x := v.(type) {
	case Integer:
		return Integer{i: new(big.Int).Neg(x.ref())}
	case Float:
		return Flt(-x.f)
	case Imaginary:
		return Imag(-x.c)
	case Complex:
		return Cmplx(-x.re, -x.im)
	default:
		return v.(Precise).Neg()
	}
}

// Abs returns the absolute value. Real kinds keep their kind; Imaginary
// and Complex collapse to their modulus as a Float.
func Abs(v Value) Value {
	switch x := v.(type) {
	case Integer:
		return Integer{i: new(big.Int).Abs(x.ref())}
	case Float:
		return Flt(math.Abs(x.f))
	case Imaginary:
		return Flt(math.Abs(x.c))
	case Complex:
		return Flt(math.Hypot(x.re, x.im))
	default:
		return v.(Precise).Abs()
	}
}

// Sign returns -1, 0 or +1 for a real value. Imaginary and Complex values
// (and NaN) are unordered and return ErrUnsupportedOperation.
func Sign(v Value) (int, error) {
	switch x := v.(type) {
	case Integer:
		return x.ref().Sign(), nil
	case Float:
		if math.IsNaN(x.f) {
			return 0, ErrUnsupportedOperation
		}
		switch {
		case x.f > 0:
			return 1, nil
		case x.f < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case Precise:
		return x.Sign(), nil
	default:
		return 0, ErrUnsupportedOperation
	}
}

// toComplex128 widens any non-Precise value to a complex128.
func toComplex128(v Value) complex128 {
	switch x := v.(type) {
	case Imaginary:
		return complex(0, x.c)
	case Complex:
		return complex(x.re, x.im)
	default:
		return complex(v.Float64(), 0)
	}
}

// fromComplex128 wraps a complex128 back into a Complex value.
func fromComplex128(c complex128) Complex {
	return Cmplx(real(c), imag(c))
}
