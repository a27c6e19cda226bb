// Package unit defines immutable measurement units and the conversion
// engine between unit values and their canonical base representation.
//
// 🚀 What is a Unit?
//
//	An immutable descriptor built once at initialization:
//	  • display name and optional short symbols
//	  • a scale factor and an offset relative to the base representation:
//	    base = (value + offset) × scale
//	  • a log-scale flag for families like decibels, which are excluded
//	    from plain affine math
//	  • optionally a custom forward/inverse converter pair that overrides
//	    the affine formula entirely
//
// ✨ Conversion contract:
//
//   - ToBase/FromBase run through the kind-polymorphic arithmetic of
//     metron/numeric, so a Precise input yields a Precise output and no
//     precision is lost in conversion. Exact decimal scale and offset
//     forms are available via WithExactScale / WithExactOffset.
//   - A unit with a forward converter but no inverse gets its inverse
//     from metron/solver: a bounded damped search seeded by the target,
//     configurable per unit with WithSolverOptions. On ceiling exhaustion
//     FromBase still returns the best root found — the solver's residual
//     is bounded and far below a meaningful amount of the domain.
//   - The defining correctness property, checked per unit by the tests:
//     FromBase(ToBase(v), ·) == v within the unit's declared tolerance.
//   - Log-scale units reject affine conversion and derivation with
//     ErrUnsupportedConversion; they require explicit converters.
//
// Derived units are a construction-time computation: Derive("cubic foot",
// foot, 3) bakes scale³ into a fresh Unit, with no runtime pointer back
// to its base.
//
// ⚙️ Usage:
//
//	foot, _ := unit.New("foot", 0.3048, unit.WithSymbols("ft"))
//	base, _ := foot.ToBase(numeric.Flt(10)) // 3.048 (meters)
//	back, _ := foot.FromBase(base)          // 10
//
// Units are immutable after construction and safe to share across
// goroutines without synchronization.
package unit
