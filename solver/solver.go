package solver

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Invert finds x such that forward(x) ≈ target by bounded damped search.
//
// The seed is the target itself, so the search assumes forward is close
// to the identity plus a bounded correction (see the package overview for
// the requirements on forward). The step is halved and reversed whenever
// the residual grows, which also guarantees the returned residual never
// exceeds the seed's residual.
//
// Returns:
//
//   - Result with the best root found, its signed residual, the iteration
//     count and a convergence flag.
//   - ErrNilForward / ErrBadEpsilon / ErrBadStep / ErrBadIterations on
//     invalid inputs (Result is zero).
//   - ErrConvergenceExhausted when the ceiling is reached first; the
//     Result is still the best-effort answer and remains usable.
func Invert(forward func(float64) float64, target float64, opts Options) (Result, error) {
	if forward == nil {
		return Result{}, ErrNilForward
	}
	if opts.Epsilon <= 0 || math.IsNaN(opts.Epsilon) {
		return Result{}, ErrBadEpsilon
	}
	if opts.InitialStep == 0 || math.IsNaN(opts.InitialStep) {
		return Result{}, ErrBadStep
	}
	if opts.MaxIterations <= 0 {
		return Result{}, ErrBadIterations
	}

	var (
		x     = target                // first-order seed
		fx    = forward(x) - target   // current residual
		step  = opts.InitialStep      // current step, sign included
		bestX = x                     // best root seen so far
		bestF = fx                    // residual at bestX
		iters int                     // iterations performed
	)

	for iters = 0; iters < opts.MaxIterations; iters++ {
		if scalar.EqualWithinAbs(fx, 0, opts.Epsilon) {
			return Result{Root: bestX, Residual: bestF, Iterations: iters, Converged: true}, nil
		}

		x += step
		next := forward(x) - target

		// Damp on any growth; a NaN residual counts as growth so the
		// search backs away from pathological regions.
		if math.IsNaN(next) || math.Abs(next) >= math.Abs(fx) {
			step = -step / 2
		}
		fx = next

		if !math.IsNaN(next) && (math.IsNaN(bestF) || math.Abs(next) < math.Abs(bestF)) {
			bestX, bestF = x, next
		}
	}

	if scalar.EqualWithinAbs(bestF, 0, opts.Epsilon) {
		return Result{Root: bestX, Residual: bestF, Iterations: iters, Converged: true}, nil
	}

	return Result{Root: bestX, Residual: bestF, Iterations: iters, Converged: false},
		ErrConvergenceExhausted
}
