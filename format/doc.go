// Package format renders numeric values as grouped, human-readable
// strings — the presentation boundary over metron/numeric.
//
// 🚀 What it does
//
//	  • Triad grouping on both sides of the decimal separator:
//	    1,234,567.890 123 — with a plain or thin-space separator.
//	  • Automatic scientific notation outside [1e-3, 1e6):
//	    0.0004 → 4e-04, 12345678 → 1.2345678e+07.
//	  • Engineering notation: the exponent is constrained to a multiple
//	    of three by shifting the decimal point within the mantissa:
//	    12345678 → 12.345678e+06.
//	  • Trailing zeros beyond the first fractional digit are trimmed
//	    unless significant — Precise values carry their own
//	    significance, floats render in shortest round-trip form.
//
// Complex values render component-wise ("2.1+9.6i"); imaginary values
// render as a formatted coefficient with an "i" suffix.
//
// ⚙️ Usage:
//
//	opts := format.DefaultOptions()
//	opts.Notation = format.Plain
//	format.Format(numeric.Flt(1234567.891), opts) // "1,234,567.891"
//
//	opts.Notation = format.Engineering
//	format.Format(numeric.Flt(12345678), opts)    // "12.345678e+06"
//
// The dependency points one way: this package reads numeric values,
// numeric knows nothing about presentation.
package format
