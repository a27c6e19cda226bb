package format

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metron/numeric"
)

// Format renders a numeric value under the given options. Complex values
// render component-wise; NaN and infinities pass through untouched.
func Format(v numeric.Value, opts Options) string {
	switch x := v.(type) {
	case numeric.Imaginary:
		return formatReal(numeric.Flt(x.Coefficient()).String(), opts) + "i"
	case numeric.Complex:
		re := formatReal(numeric.Flt(x.Real()).String(), opts)
		im := formatReal(numeric.Flt(x.Imag()).String(), opts)
		if !strings.HasPrefix(im, "-") {
			re += "+"
		}

		return re + im + "i"
	default:
		return formatReal(v.String(), opts)
	}
}

// formatReal renders one real axis from its plain or exponent literal.
func formatReal(lit string, opts Options) string {
	neg, digits, exp, ok := decompose(lit)
	if !ok {
		return lit // NaN, ±Inf
	}

	switch opts.Notation {
	case Plain:
		return renderPlain(neg, digits, exp, opts)
	case Scientific:
		return renderSci(neg, digits, exp, 1)
	case Engineering:
		return renderSci(neg, digits, exp, engIntLen(exp))
	default:
		// Auto: positional inside [1e-3, 1e6), scientific outside.
		if digits != "0" && (exp < -3 || exp >= 6) {
			return renderSci(neg, digits, exp, 1)
		}

		return renderPlain(neg, digits, exp, opts)
	}
}

// decompose splits a decimal literal into sign, significant digits and a
// scientific exponent: value = d.igits × 10^exp. Returns ok=false for
// non-numeric literals (NaN, ±Inf). Zero decomposes to ("0", 0).
func decompose(lit string) (neg bool, digits string, exp int, ok bool) {
	s := lit
	if s == "" {
		return false, "", 0, false
	}
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	mant := s
	e := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant = s[:i]
		if _, err := fmt.Sscanf(s[i+1:], "%d", &e); err != nil {
			return false, "", 0, false
		}
	}

	intPart, fracPart := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, fracPart = mant[:i], mant[i+1:]
	}
	all := intPart + fracPart
	for i := 0; i < len(all); i++ {
		if all[i] < '0' || all[i] > '9' {
			return false, "", 0, false
		}
	}
	if all == "" {
		return false, "", 0, false
	}

	// Strip leading zeros, then trailing ones; the exponent keeps the
	// magnitude so neither changes the value.
	lead := 0
	for lead < len(all) && all[lead] == '0' {
		lead++
	}
	if lead == len(all) {
		return neg, "0", 0, true
	}
	tail := len(all)
	for all[tail-1] == '0' {
		tail--
	}

	exp = len(intPart) - lead - 1 + e

	return neg, all[lead:tail], exp, true
}

// renderPlain writes positional notation with triad grouping on both
// sides of the decimal separator.
func renderPlain(neg bool, digits string, exp int, opts Options) string {
	var intDigits, fracDigits string
	switch {
	case digits == "0":
		intDigits = "0"
	case exp >= 0:
		if len(digits) <= exp+1 {
			intDigits = digits + strings.Repeat("0", exp+1-len(digits))
		} else {
			intDigits, fracDigits = digits[:exp+1], digits[exp+1:]
		}
	default:
		intDigits = "0"
		fracDigits = strings.Repeat("0", -exp-1) + digits
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	writeGroupedInt(&sb, intDigits, opts.GroupSeparator)
	if fracDigits != "" {
		sb.WriteRune(opts.DecimalSeparator)
		writeGroupedFrac(&sb, fracDigits, opts.GroupSeparator)
	}

	return sb.String()
}

// renderSci writes scientific notation with intLen digits before the
// point; intLen 1 is normalized scientific, engineering passes 1..3.
func renderSci(neg bool, digits string, exp int, intLen int) string {
	if digits == "0" {
		return "0e+00"
	}
	if len(digits) < intLen {
		digits += strings.Repeat("0", intLen-len(digits))
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(digits[:intLen])
	if frac := digits[intLen:]; frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	fmt.Fprintf(&sb, "e%+03d", exp-intLen+1)

	return sb.String()
}

// engIntLen picks the engineering mantissa width so the displayed
// exponent lands on a multiple of three.
func engIntLen(exp int) int {
	m := exp % 3
	if m < 0 {
		m += 3
	}

	return m + 1
}

// writeGroupedInt groups the integer digits in triads from the right.
func writeGroupedInt(sb *strings.Builder, digits string, sep rune) {
	n := len(digits)
	for i := 0; i < n; i++ {
		if sep != 0 && i > 0 && (n-i)%3 == 0 {
			sb.WriteRune(sep)
		}
		sb.WriteByte(digits[i])
	}
}

// writeGroupedFrac groups the fraction digits in triads from the left.
func writeGroupedFrac(sb *strings.Builder, digits string, sep rune) {
	for i := 0; i < len(digits); i++ {
		if sep != 0 && i > 0 && i%3 == 0 {
			sb.WriteRune(sep)
		}
		sb.WriteByte(digits[i])
	}
}
