// Package timescale defines the astronomical time-scale units whose
// conversions exercise the damped inverse search — the relationships
// where the correction term itself depends on the unknown.
//
// 🚀 The scales
//
//	The base representation is seconds since the J2000 epoch on the
//	Terrestrial Time scale (TT). Against that base:
//	  • TT  — the base itself (identity).
//	  • TAI — International Atomic Time: TT = TAI + 32.184 s, exact.
//	  • TDB — Barycentric Dynamical Time: TT plus a small periodic
//	    relativistic term, ~±1.657 ms.
//	  • TCB — Barycentric Coordinate Time: TDB plus a linear drift
//	    (L_B ≈ 1.55e-8) accumulated since the epoch. Its converter calls
//	    TDB's, so TDB is constructed first.
//	  • UT1 — Universal Time: TT − ΔT, with ΔT linearly interpolated
//	    from a tabulated, slowly varying record of Earth-rotation drift.
//
// For TDB, TCB and UT1 only the base→value direction has a closed form;
// the opposite direction is obtained by the bounded damped search in
// metron/solver (ε=1e-8 for the relativistic scales, ε=1e-3 with a 100
// iteration ceiling for the tabulated UT1 relationship). The search may
// exhaust its ceiling at large epochs and return a best-effort value —
// the residual is always orders of magnitude below the scales' declared
// 1e-3 s round-trip tolerance.
//
// ⚙️ Usage:
//
//	tt, _ := timescale.TAI.ToBase(numeric.Flt(0))   // 32.184
//	tdb, _ := timescale.TDB.FromBase(tt)            // TDB reading at that instant
//
// All units are immutable package-level singletons built once at
// initialization, leaf scales first, and safe for concurrent use.
package timescale
