package timescale

import (
	"math"

	"github.com/katalvlaran/metron/numeric"
	"github.com/katalvlaran/metron/solver"
	"github.com/katalvlaran/metron/unit"
)

// Physical constants of the scale relationships. The periodic TDB term
// and the TCB drift follow the standard IAU approximations; they are
// closed-form in the base (TT) value only.
const (
	// taiOffset is TT − TAI in seconds, exact by definition.
	taiOffset = "32.184"

	// tdbAmplitude, tdbPhase and tdbRate parameterize the periodic
	// relativistic term: TDB = TT + A·sin(phase + rate·t).
	tdbAmplitude = 0.001657
	tdbPhase     = 6.239996
	tdbRate      = 1.99096871e-7

	// lB is the TCB→TDB linear drift rate; tdb0 the offset at the 1977
	// TAI epoch; tcbEpochShift the seconds from that epoch to J2000.
	lB            = 1.550519768e-8
	tdb0          = -6.55e-5
	tcbEpochShift = 725803200.0

	// julianYear converts base seconds to fractional years for the ΔT table.
	julianYear = 31_557_600.0

	// timeTolerance is the declared round-trip tolerance of the
	// solver-backed scales, in seconds. The solver residual is far
	// smaller; 1 ms is already below any meaningful clock reading here.
	timeTolerance = 1e-3
)

// deltaTTable records Earth-rotation drift ΔT = TT − UT1 in seconds at
// year boundaries; intermediate epochs interpolate linearly and the ends
// clamp. The values vary slowly (tens of seconds over decades), which is
// what lets the search converge in under 100 iterations.
var deltaTTable = []struct {
	year   float64
	deltaT float64
}{
	{1970, 40.18},
	{1975, 45.48},
	{1980, 50.54},
	{1985, 54.34},
	{1990, 56.86},
	{1995, 60.79},
	{2000, 63.83},
	{2005, 64.69},
	{2010, 66.07},
	{2015, 67.64},
	{2020, 69.36},
	{2025, 69.18},
}

// deltaT interpolates the table at a base instant (seconds since J2000).
func deltaT(t float64) float64 {
	year := 2000 + t/julianYear
	if year <= deltaTTable[0].year {
		return deltaTTable[0].deltaT
	}
	last := len(deltaTTable) - 1
	if year >= deltaTTable[last].year {
		return deltaTTable[last].deltaT
	}
	for i := 1; i <= last; i++ {
		if year > deltaTTable[i].year {
			continue
		}
		lo, hi := deltaTTable[i-1], deltaTTable[i]
		frac := (year - lo.year) / (hi.year - lo.year)

		return lo.deltaT + frac*(hi.deltaT-lo.deltaT)
	}

	return deltaTTable[last].deltaT
}

// tdbOf is the closed-form base→TDB relationship.
func tdbOf(t float64) float64 {
	return t + tdbAmplitude*math.Sin(tdbPhase+tdbRate*t)
}

// The time-scale singletons, built once at initialization. Construction
// is leaf-first: TCB's converter captures TDB, so TDB must exist before
// TCB is assembled.
var (
	// TT is Terrestrial Time, the base scale (seconds since J2000).
	TT *unit.Unit

	// TAI is International Atomic Time: TT = TAI + 32.184 s, exact.
	TAI *unit.Unit

	// TDB is Barycentric Dynamical Time.
	TDB *unit.Unit

	// TCB is Barycentric Coordinate Time.
	TCB *unit.Unit

	// UT1 is Universal Time corrected by the tabulated ΔT term.
	UT1 *unit.Unit
)

func init() {
	TT = must(unit.New("Terrestrial Time", 1, unit.WithSymbols("TT")))

	TAI = must(unit.New("International Atomic Time", 1,
		unit.WithSymbols("TAI"),
		unit.WithExactOffset(numeric.MustPrecise(taiOffset))))

	TDB = must(unit.New("Barycentric Dynamical Time", 1,
		unit.WithSymbols("TDB"),
		unit.WithInverse(func(v numeric.Value) (numeric.Value, error) {
			return numeric.Flt(tdbOf(v.Float64())), nil
		}),
		unit.WithSolverOptions(solver.DefaultOptions()),
		unit.WithTolerance(timeTolerance)))

	TCB = must(unit.New("Barycentric Coordinate Time", 1,
		unit.WithSymbols("TCB"),
		unit.WithInverse(func(v numeric.Value) (numeric.Value, error) {
			// TCB rides on TDB's converter plus the linear drift.
			d, err := TDB.FromBase(v)
			if err != nil {
				return nil, err
			}
			t := v.Float64()

			return numeric.Flt(d.Float64() + lB*(t+tcbEpochShift) - tdb0), nil
		}),
		unit.WithSolverOptions(solver.DefaultOptions()),
		unit.WithTolerance(timeTolerance)))

	UT1 = must(unit.New("Universal Time", 1,
		unit.WithSymbols("UT1"),
		unit.WithInverse(func(v numeric.Value) (numeric.Value, error) {
			t := v.Float64()

			return numeric.Flt(t - deltaT(t)), nil
		}),
		unit.WithSolverOptions(solver.CoarseOptions()),
		unit.WithTolerance(timeTolerance)))
}

// Units returns the registered time-scale units, for catalog layers and
// the per-unit round-trip property tests.
func Units() []*unit.Unit {
	return []*unit.Unit{TT, TAI, TDB, TCB, UT1}
}

// must unwraps construction; the definitions above are compile-time
// constants, so failure is a programmer error.
func must(u *unit.Unit, err error) *unit.Unit {
	if err != nil {
		panic("timescale: " + err.Error())
	}

	return u
}
