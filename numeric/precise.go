package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// divGuardDigits is the number of extra fractional digits carried by
// Precise division beyond the operands' own scale. Quotients like 1/3
// have no finite decimal form; 34 digits mirrors IEEE decimal128
// precision and is trimmed away whenever the division is exact.
const divGuardDigits = 34

// Precise is an arbitrary-precision decimal value, stored as a sign, a
// non-negative arbitrary-precision coefficient and a base-10 scale:
// the mathematical value is ±coef · 10^(−scale).
//
// Representation is canonical: the coefficient carries no trailing zeros
// while scale > 0, and zero is (+, 0, 0). The zero value is a valid
// Precise equal to 0. Values are immutable.
type Precise struct {
	neg   bool
	coef  *big.Int // non-negative; nil means 0
	scale int32    // fractional digits; always >= 0
}

// ParsePrecise parses a decimal literal into a Precise value.
//
// Accepted forms: optional sign, decimal digits with an optional single
// point, and an optional e/E exponent ("-12.345", "7", ".5", "1.2e-3").
// Anything else — NaN, Inf, hex, empty input — returns ErrMalformedDecimal;
// malformed input is never silently truncated.
func ParsePrecise(s string) (Precise, error) {
	var (
		i    int   // scan position
		neg  bool  // leading sign
		seen bool  // at least one mantissa digit seen
		frac int32 // digits after the point
		dot  bool  // point already consumed
	)
	digits := make([]byte, 0, len(s))

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits = append(digits, s[i])
			seen = true
			if dot {
				frac++
			}
		case s[i] == '.' && !dot:
			dot = true
		default:
			goto exponent
		}
	}
exponent:
	if !seen {
		return Precise{}, ErrMalformedDecimal
	}
	exp := int64(0)
	if i < len(s) {
		if s[i] != 'e' && s[i] != 'E' {
			return Precise{}, ErrMalformedDecimal
		}
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return Precise{}, ErrMalformedDecimal
		}
		exp = e
	}

	coef, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		return Precise{}, ErrMalformedDecimal
	}
	scale := int64(frac) - exp
	if scale < 0 {
		// 1.2e3 → coefficient 1200, scale 0.
		coef.Mul(coef, pow10(int32(-scale)))
		scale = 0
	}
	if scale > math.MaxInt32 {
		return Precise{}, ErrMalformedDecimal
	}
	if neg {
		coef.Neg(coef)
	}

	return normPrecise(coef, int32(scale)), nil
}

// MustPrecise is ParsePrecise for compile-time-known literals; it panics
// on malformed input (programmer error).
func MustPrecise(s string) Precise {
	p, err := ParsePrecise(s)
	if err != nil {
		panic("numeric: MustPrecise(" + strconv.Quote(s) + "): " + err.Error())
	}

	return p
}

// Exact converts a real value to its exact decimal form — the conversion
// behind precision contagion.
//
//   - Precise passes through unchanged.
//   - Integer converts exactly.
//   - Float converts via its shortest round-trip decimal literal; NaN and
//     ±Inf have no decimal form and return ErrUnsupportedOperation.
//   - Imaginary and Complex have no decimal analogue and return
//     ErrUnsupportedOperation.
func Exact(v Value) (Precise, error) {
	switch x := v.(type) {
	case Precise:
		return x, nil
	case Integer:
		return normPrecise(x.Big(), 0), nil
	case Float:
		f := x.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Precise{}, ErrUnsupportedOperation
		}

		return ParsePrecise(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		return Precise{}, ErrUnsupportedOperation
	}
}

// Kind reports KindPrecise.
func (a Precise) Kind() Kind { return KindPrecise }

// Float64 returns the nearest double-precision approximation.
func (a Precise) Float64() float64 {
	f, _ := strconv.ParseFloat(a.String(), 64)

	return f
}

// IsZero reports whether the value is 0.
func (a Precise) IsZero() bool { return a.coef == nil || a.coef.Sign() == 0 }

// Sign returns -1, 0 or +1.
func (a Precise) Sign() int {
	if a.IsZero() {
		return 0
	}
	if a.neg {
		return -1
	}

	return 1
}

// Scale returns the number of fractional digits in canonical form.
func (a Precise) Scale() int32 { return a.scale }

// Neg returns the negation.
func (a Precise) Neg() Precise {
	if a.IsZero() {
		return Precise{}
	}

	return Precise{neg: !a.neg, coef: a.coef, scale: a.scale}
}

// Abs returns the absolute value.
func (a Precise) Abs() Precise {
	if a.IsZero() {
		return Precise{}
	}

	return Precise{neg: false, coef: a.coef, scale: a.scale}
}

// Quantize rounds the value to the given number of fractional digits
// using round-half-even, then re-canonicalizes. Widening the scale is a
// no-op since the canonical form never carries trailing zeros.
func (a Precise) Quantize(scale int32) Precise {
	if scale < 0 {
		scale = 0
	}
	if a.IsZero() || scale >= a.scale {
		return a
	}

	drop := pow10(a.scale - scale)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a.coef, drop, r)

	// Half-even on the dropped remainder.
	r.Lsh(r, 1)
	switch r.CmpAbs(drop) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	if a.neg {
		q.Neg(q)
	}

	return normPrecise(q, scale)
}

// String renders the plain decimal literal, e.g. "-76.21". No exponent
// form is used; the formatter in metron/format handles presentation.
func (a Precise) String() string {
	if a.IsZero() {
		return "0"
	}
	ds := a.coef.String()
	var sb strings.Builder
	if a.neg {
		sb.WriteByte('-')
	}
	if a.scale == 0 {
		sb.WriteString(ds)

		return sb.String()
	}
	if int32(len(ds)) <= a.scale {
		// Pure fraction: pad with leading zeros, "0.0021".
		sb.WriteString("0.")
		for i := int32(len(ds)); i < a.scale; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(ds)

		return sb.String()
	}
	split := int32(len(ds)) - a.scale
	sb.WriteString(ds[:split])
	sb.WriteByte('.')
	sb.WriteString(ds[split:])

	return sb.String()
}

func (a Precise) sealed() {}

// signed returns a fresh signed big.Int copy of the coefficient.
func (a Precise) signed() *big.Int {
	if a.coef == nil {
		return new(big.Int)
	}
	s := new(big.Int).Set(a.coef)
	if a.neg {
		s.Neg(s)
	}

	return s
}

// pow10 returns 10^n as a fresh big.Int, n >= 0.
func pow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// normPrecise builds a canonical Precise from a signed coefficient and a
// scale: trailing zeros are trimmed off the coefficient while scale > 0,
// and zero collapses to the canonical (+, 0, 0). The argument is consumed.
func normPrecise(signed *big.Int, scale int32) Precise {
	if signed.Sign() == 0 {
		return Precise{}
	}
	neg := signed.Sign() < 0
	coef := signed.Abs(signed)

	ten := big.NewInt(10)
	q, r := new(big.Int), new(big.Int)
	for scale > 0 {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		scale--
	}

	return Precise{neg: neg, coef: coef, scale: scale}
}

// addPrecise returns a+b exactly, aligning scales first.
func addPrecise(a, b Precise) Precise {
	scale := a.scale
	if b.scale > scale {
		scale = b.scale
	}
	as, bs := a.signed(), b.signed()
	if d := scale - a.scale; d > 0 {
		as.Mul(as, pow10(d))
	}
	if d := scale - b.scale; d > 0 {
		bs.Mul(bs, pow10(d))
	}

	return normPrecise(as.Add(as, bs), scale)
}

// subPrecise returns a-b exactly.
func subPrecise(a, b Precise) Precise {
	return addPrecise(a, b.Neg())
}

// mulPrecise returns a·b exactly: coefficients multiply, scales add.
func mulPrecise(a, b Precise) Precise {
	s := a.signed()
	s.Mul(s, b.signed())

	return normPrecise(s, a.scale+b.scale)
}

// divPrecise returns a/b carried to max(scale)+divGuardDigits fractional
// digits, truncated toward zero, then trimmed. Exact quotients come out
// exact; a zero divisor returns ErrDivisionByZero.
func divPrecise(a, b Precise) (Precise, error) {
	if b.IsZero() {
		return Precise{}, ErrDivisionByZero
	}
	target := a.scale
	if b.scale > target {
		target = b.scale
	}
	target += divGuardDigits

	// a/b = (ac·10^shift / bc) · 10^(−target), shift = target − a.scale + b.scale.
	num := a.signed()
	num.Mul(num, pow10(target-a.scale+b.scale))
	num.Quo(num, b.signed())

	return normPrecise(num, target), nil
}
