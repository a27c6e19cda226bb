package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/metron/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// TestInvert_BadInputs verifies each validation sentinel fires.
func TestInvert_BadInputs(t *testing.T) {
	fwd := func(x float64) float64 { return x }

	_, err := solver.Invert(nil, 1, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilForward)

	opts := solver.DefaultOptions()
	opts.Epsilon = 0
	_, err = solver.Invert(fwd, 1, opts)
	assert.ErrorIs(t, err, solver.ErrBadEpsilon)

	opts = solver.DefaultOptions()
	opts.InitialStep = 0
	_, err = solver.Invert(fwd, 1, opts)
	assert.ErrorIs(t, err, solver.ErrBadStep)

	opts = solver.DefaultOptions()
	opts.MaxIterations = 0
	_, err = solver.Invert(fwd, 1, opts)
	assert.ErrorIs(t, err, solver.ErrBadIterations)
}

// TestInvert_Identity converges immediately when forward is the identity:
// the seed already is the root.
func TestInvert_Identity(t *testing.T) {
	res, err := solver.Invert(func(x float64) float64 { return x }, 123.456, solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations, "seed is already within tolerance")
	assert.Equal(t, 123.456, res.Root)
}

// TestInvert_AffineAnalytic checks the search against the closed-form
// inverse of a near-identity affine forward over a random target sample:
// at least 99% must land within tolerance, and the search must never
// diverge (final residual ≤ seed residual).
func TestInvert_AffineAnalytic(t *testing.T) {
	const slope, shift = 1.000001, 3.0
	fwd := func(x float64) float64 { return slope*x + shift }
	inv := func(t float64) float64 { return (t - shift) / slope }

	rng := rand.New(rand.NewSource(42))
	const n = 1000
	hits := 0
	for i := 0; i < n; i++ {
		target := (rng.Float64() - 0.5) * 2e6
		seedResidual := math.Abs(fwd(target) - target)

		res, err := solver.Invert(fwd, target, solver.DefaultOptions())
		if err != nil {
			require.ErrorIs(t, err, solver.ErrConvergenceExhausted)
		}
		assert.LessOrEqual(t, math.Abs(res.Residual), seedResidual, "never diverges")
		if scalar.EqualWithinAbs(res.Root, inv(target), 1e-6) {
			hits++
		}
	}
	assert.GreaterOrEqual(t, hits, n*99/100, "analytic-inverse agreement below 99%%")
}

// TestInvert_PeriodicCorrection inverts a time-scale-like forward whose
// correction term depends on the unknown itself, by round-tripping known
// roots: target = forward(x), then Invert must recover x.
func TestInvert_PeriodicCorrection(t *testing.T) {
	fwd := func(x float64) float64 {
		return x + 0.001657*math.Sin(6.239996+1.99096871e-7*x)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		// Seconds-scale inputs. Kept within ±10⁷ so the float64 grid is
		// finer than Epsilon; beyond that the search degrades gracefully
		// to ErrConvergenceExhausted with a ulp-sized residual.
		x := (rng.Float64() - 0.5) * 2e7
		target := fwd(x)

		res, err := solver.Invert(fwd, target, solver.DefaultOptions())
		require.NoError(t, err, "correction is tiny against the input; must converge")
		assert.True(t, res.Converged)
		assert.InDelta(t, x, res.Root, 1e-6, "recovered root")
	}
}

// TestInvert_Exhaustion verifies the best-effort contract: a ceiling too
// low to converge still returns the best root found, tagged with the
// informational sentinel, without residual growth.
func TestInvert_Exhaustion(t *testing.T) {
	fwd := func(x float64) float64 { return x + 40 } // root is 40 below any target
	opts := solver.DefaultOptions()
	opts.MaxIterations = 3

	res, err := solver.Invert(fwd, 100, opts)
	assert.ErrorIs(t, err, solver.ErrConvergenceExhausted)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.LessOrEqual(t, math.Abs(res.Residual), 40.0, "no worse than the seed")
}

// TestInvert_DampingOscillation drives the canonical oscillation case —
// root exactly between two step landings — and expects bisection-like
// convergence from the halve-and-reverse rule.
func TestInvert_DampingOscillation(t *testing.T) {
	// Root at 5 with target 0: the seed lands at 0, the first +10 step
	// overshoots to 10, and the halve-and-reverse rule bisects back.
	fwd := func(x float64) float64 { return x - 5 }
	opts := solver.DefaultOptions()

	res, err := solver.Invert(fwd, 0, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 5, res.Root, opts.Epsilon)
}
