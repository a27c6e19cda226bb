package numeric_test

import (
	"testing"

	"github.com/katalvlaran/metron/numeric"
)

// benchmarkOp runs one binary operation in a loop and fails on
// unexpected errors.
func benchmarkOp(b *testing.B, apply func(x, y numeric.Value) (numeric.Value, error), x, y numeric.Value) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := apply(x, y); err != nil {
			b.Fatalf("op failed: %v", err)
		}
	}
}

// BenchmarkAdd_IntegerInteger measures the exact-integer fast path.
func BenchmarkAdd_IntegerInteger(b *testing.B) {
	benchmarkOp(b, numeric.Add, numeric.Int(1234567), numeric.Int(7654321))
}

// BenchmarkAdd_FloatFloat measures the floating floor of the tower.
func BenchmarkAdd_FloatFloat(b *testing.B) {
	benchmarkOp(b, numeric.Add, numeric.Flt(1.5), numeric.Flt(2.25))
}

// BenchmarkAdd_PreciseContagion measures the contagion path, including
// the integer→decimal conversion.
func BenchmarkAdd_PreciseContagion(b *testing.B) {
	benchmarkOp(b, numeric.Add, numeric.Int(42), numeric.MustPrecise("34.21"))
}

// BenchmarkMul_PrecisePrecise measures exact decimal multiplication.
func BenchmarkMul_PrecisePrecise(b *testing.B) {
	benchmarkOp(b, numeric.Mul, numeric.MustPrecise("3.14159"), numeric.MustPrecise("2.71828"))
}

// BenchmarkDiv_PrecisePrecise measures guarded decimal division.
func BenchmarkDiv_PrecisePrecise(b *testing.B) {
	benchmarkOp(b, numeric.Div, numeric.MustPrecise("1"), numeric.MustPrecise("3"))
}

// BenchmarkEqual_CrossKind measures rational-based cross-kind equality.
func BenchmarkEqual_CrossKind(b *testing.B) {
	x, y := numeric.Int(42), numeric.MustPrecise("42")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !numeric.Equal(x, y) {
			b.Fatal("expected equal")
		}
	}
}
