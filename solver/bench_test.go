package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metron/solver"
)

// benchmarkInvert runs Invert against a fixed forward/target pair.
func benchmarkInvert(b *testing.B, fwd func(float64) float64, target float64, opts solver.Options) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := solver.Invert(fwd, target, opts); err != nil {
			b.Fatalf("Invert failed: %v", err)
		}
	}
}

// BenchmarkInvert_Identity measures the immediate-convergence fast path.
func BenchmarkInvert_Identity(b *testing.B) {
	benchmarkInvert(b, func(x float64) float64 { return x }, 42, solver.DefaultOptions())
}

// BenchmarkInvert_PeriodicCorrection measures a realistic time-scale
// inversion at seconds scale.
func BenchmarkInvert_PeriodicCorrection(b *testing.B) {
	fwd := func(x float64) float64 {
		return x + 0.001657*math.Sin(6.239996+1.99096871e-7*x)
	}
	benchmarkInvert(b, fwd, 1e6, solver.DefaultOptions())
}

// BenchmarkInvert_Coarse measures the low-precision policy used by
// tabulated time corrections.
func BenchmarkInvert_Coarse(b *testing.B) {
	fwd := func(x float64) float64 { return x - 68.5 }
	benchmarkInvert(b, fwd, 1e6, solver.CoarseOptions())
}
