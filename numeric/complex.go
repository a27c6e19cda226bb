package numeric

import (
	"strconv"
	"strings"
)

// Imaginary is a floating value tagged as the imaginary component of a
// complex number: Imag(9.6) is the mathematical value 9.6i, with no real
// part. Keeping the tag separate from Complex lets arithmetic preserve
// pure-imaginary results (a real times an imaginary stays imaginary).
type Imaginary struct {
	c float64
}

// Imag builds an Imaginary with the given coefficient: Imag(c) is c·i.
func Imag(c float64) Imaginary {
	return Imaginary{c: c}
}

// Kind reports KindImaginary.
func (a Imaginary) Kind() Kind { return KindImaginary }

// Float64 returns the imaginary coefficient.
func (a Imaginary) Float64() float64 { return a.c }

// Coefficient returns the imaginary coefficient c of the value c·i.
func (a Imaginary) Coefficient() float64 { return a.c }

// IsZero reports whether the coefficient is 0.
func (a Imaginary) IsZero() bool { return a.c == 0 }

// String renders the literal coefficient followed by "i", e.g. "9.6i".
func (a Imaginary) String() string {
	return strconv.FormatFloat(a.c, 'g', -1, 64) + "i"
}

func (a Imaginary) sealed() {}

// Complex is an ordered (real, imaginary) pair of double-precision
// components. Both components are independently valid floating values.
type Complex struct {
	re, im float64
}

// Cmplx builds a Complex from real and imaginary components.
func Cmplx(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Kind reports KindComplex.
func (a Complex) Kind() Kind { return KindComplex }

// Float64 returns the real component.
func (a Complex) Float64() float64 { return a.re }

// Real returns the real component.
func (a Complex) Real() float64 { return a.re }

// Imag returns the imaginary component.
func (a Complex) Imag() float64 { return a.im }

// IsZero reports whether both components are 0.
func (a Complex) IsZero() bool { return a.re == 0 && a.im == 0 }

// String renders "a+bi" (or "a-bi"), e.g. "2.1+9.6i".
func (a Complex) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(a.re, 'g', -1, 64))
	if a.im >= 0 || a.im != a.im { // NaN gets an explicit '+'
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.FormatFloat(a.im, 'g', -1, 64))
	sb.WriteByte('i')

	return sb.String()
}

func (a Complex) sealed() {}
