// Package format: notation modes and rendering options.

package format

// Notation selects how magnitudes are presented.
//
//	Auto        – plain positional inside [1e-3, 1e6), scientific outside.
//	Plain       – always positional, however long.
//	Scientific  – always d.ddd…e±EE.
//	Engineering – scientific with the exponent a multiple of three.
type Notation uint8

const (
	// Auto switches to scientific notation outside [1e-3, 1e6).
	Auto Notation = iota

	// Plain forces positional rendering.
	Plain

	// Scientific forces normalized scientific rendering.
	Scientific

	// Engineering forces scientific rendering with exponent ≡ 0 (mod 3).
	Engineering
)

// ThinSpace is the Unicode thin space, the typographic alternative to a
// plain comma for triad grouping.
const ThinSpace = ' '

// Options configures rendering.
//
// Notation         – presentation mode (default Auto).
// GroupSeparator   – rune between digit triads; 0 disables grouping.
// DecimalSeparator – rune between integer and fraction (default '.').
type Options struct {
	Notation         Notation
	GroupSeparator   rune
	DecimalSeparator rune
}

// DefaultOptions returns Auto notation with comma grouping and a point
// decimal separator.
func DefaultOptions() Options {
	return Options{
		Notation:         Auto,
		GroupSeparator:   ',',
		DecimalSeparator: '.',
	}
}
