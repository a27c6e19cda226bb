package unit

import (
	"errors"
	"math"

	"github.com/katalvlaran/metron/numeric"
	"github.com/katalvlaran/metron/solver"
)

// New builds an immutable Unit from a display name, a scale factor and
// options.
//
// Validation (in order):
//  1. name must be non-empty (ErrEmptyName).
//  2. the effective scale must be non-zero (ErrZeroScale) — unless custom
//     converters make the affine pair informational only.
func New(name string, scale float64, opts ...Option) (*Unit, error) {
	u := &Unit{
		name:      name,
		scale:     numeric.Flt(scale),
		offset:    numeric.Int(0),
		solve:     solver.DefaultOptions(),
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(u)
	}

	if u.name == "" {
		return nil, ErrEmptyName
	}
	if u.forward == nil && u.inverse == nil && u.scale.IsZero() {
		return nil, ErrZeroScale
	}

	return u, nil
}

// Derive builds a powered unit from an affine base at construction time:
// Derive("cubic foot", foot, 3) has scale = foot.scale³. There is no
// runtime relationship to the base afterwards.
//
// Offsets, custom converters and log scales do not survive powering and
// return ErrUnsupportedConversion; a zero power returns ErrBadPower.
func Derive(name string, base *Unit, power int, opts ...Option) (*Unit, error) {
	if base == nil {
		return nil, ErrNilUnit
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if power == 0 {
		return nil, ErrBadPower
	}
	if base.log || base.forward != nil || base.inverse != nil || !base.offset.IsZero() {
		return nil, ErrUnsupportedConversion
	}

	// scale^|power| through the numeric tower, so an exact decimal scale
	// stays exact ("cubic inch" is exactly 0.0254³ m³).
	pow := numeric.Value(numeric.Int(1))
	var err error
	for i := 0; i < abs(power); i++ {
		if pow, err = numeric.Mul(pow, base.scale); err != nil {
			return nil, err
		}
	}
	if power < 0 {
		if pow, err = numeric.Div(numeric.Int(1), pow); err != nil {
			return nil, err
		}
	}

	u := &Unit{
		name:      name,
		scale:     pow,
		offset:    numeric.Int(0),
		solve:     solver.DefaultOptions(),
		tolerance: base.tolerance,
	}
	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

// Name returns the display name.
func (u *Unit) Name() string { return u.name }

// Symbols returns a copy of the short display symbols.
func (u *Unit) Symbols() []string { return append([]string(nil), u.symbols...) }

// IsLog reports whether the unit is marked logarithmic/non-linear.
func (u *Unit) IsLog() bool { return u.log }

// Tolerance returns the declared round-trip tolerance.
func (u *Unit) Tolerance() float64 { return u.tolerance }

// ToBase converts a value expressed in this unit to the base
// representation: the forward converter when present, otherwise
// base = (value + offset) × scale through the kind-polymorphic
// arithmetic — a Precise input yields a Precise output.
//
// Log-scale units without converters return ErrUnsupportedConversion.
func (u *Unit) ToBase(v numeric.Value) (numeric.Value, error) {
	if u == nil {
		return nil, ErrNilUnit
	}
	if u.forward != nil {
		return u.forward(v)
	}
	if u.inverse != nil {
		// Only the base→value direction has a closed form; search for
		// the base value the inverse maps onto v.
		return u.invert(u.inverse, v)
	}
	if u.log {
		return nil, ErrUnsupportedConversion
	}

	res := v
	var err error
	if !u.offset.IsZero() {
		if res, err = numeric.Add(res, u.offset); err != nil {
			return nil, err
		}
	}
	if !isOne(u.scale) {
		if res, err = numeric.Mul(res, u.scale); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// FromBase converts a base-representation value back into this unit: the
// inverse converter when present; the damped search over the forward
// converter when only the forward exists; otherwise the affine inverse
// value = base/scale − offset.
//
// When the search exhausts its iteration ceiling the best root found is
// still returned — the residual is bounded by the search's damping and
// callers accept it (see metron/solver).
func (u *Unit) FromBase(v numeric.Value) (numeric.Value, error) {
	if u == nil {
		return nil, ErrNilUnit
	}
	if u.inverse != nil {
		return u.inverse(v)
	}
	if u.forward != nil {
		return u.invert(u.forward, v)
	}
	if u.log {
		return nil, ErrUnsupportedConversion
	}

	res := v
	var err error
	if !isOne(u.scale) {
		if res, err = numeric.Div(res, u.scale); err != nil {
			return nil, err
		}
	}
	if !u.offset.IsZero() {
		if res, err = numeric.Sub(res, u.offset); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// invert searches a converter numerically on the float64 axis for x with
// conv(x) ≈ v. Converter failures inside the search surface as NaN,
// which the damped search treats as residual growth and backs away from.
func (u *Unit) invert(conv Converter, v numeric.Value) (numeric.Value, error) {
	fwd := func(x float64) float64 {
		r, err := conv(numeric.Flt(x))
		if err != nil {
			return math.NaN()
		}

		return r.Float64()
	}

	res, err := solver.Invert(fwd, v.Float64(), u.solve)
	if err != nil && !errors.Is(err, solver.ErrConvergenceExhausted) {
		return nil, err
	}

	return numeric.Flt(res.Root), nil
}

// Convert re-expresses v from one unit into another sharing the same base
// representation: ToBase through from, FromBase through to.
func Convert(v numeric.Value, from, to *Unit) (numeric.Value, error) {
	if from == nil || to == nil {
		return nil, ErrNilUnit
	}
	base, err := from.ToBase(v)
	if err != nil {
		return nil, err
	}

	return to.FromBase(base)
}

// isOne reports whether the scale is exactly 1, letting identity units
// skip the multiplication and keep the input's kind untouched.
func isOne(v numeric.Value) bool {
	return numeric.Equal(v, numeric.Int(1))
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
