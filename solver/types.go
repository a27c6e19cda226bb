// Package solver: configuration, result shape and the sentinel error set.

package solver

import "errors"

// Sentinel errors returned by Invert.
var (
	// ErrNilForward indicates that no forward function was supplied.
	ErrNilForward = errors.New("solver: forward function is nil")

	// ErrBadEpsilon indicates a non-positive convergence tolerance.
	ErrBadEpsilon = errors.New("solver: Epsilon must be positive")

	// ErrBadStep indicates a zero initial step, which could never move the
	// search off its seed.
	ErrBadStep = errors.New("solver: InitialStep must be non-zero")

	// ErrBadIterations indicates a non-positive iteration ceiling.
	ErrBadIterations = errors.New("solver: MaxIterations must be positive")

	// ErrConvergenceExhausted reports that the iteration ceiling was
	// reached before the residual fell under Epsilon. It is informational:
	// the accompanying Result still carries the best root found, and
	// callers that accept a bounded residual ignore it via errors.Is.
	ErrConvergenceExhausted = errors.New("solver: iteration ceiling reached before convergence")
)

// Defaults - single source of truth for the search policy.
const (
	// DefaultEpsilon is the convergence tolerance for high-precision
	// relationships.
	DefaultEpsilon = 1e-8

	// DefaultMaxIterations is the iteration ceiling for high-precision
	// relationships.
	DefaultMaxIterations = 10_000

	// DefaultInitialStep is the first step taken away from the seed, in
	// the unit's base granularity.
	DefaultInitialStep = 10.0

	// CoarseEpsilon is the tolerance for lower-precision relationships
	// (e.g. time scales corrected by a tabulated, slowly varying term).
	CoarseEpsilon = 1e-3

	// CoarseMaxIterations is the ceiling for faster-converging
	// relationships paired with CoarseEpsilon.
	CoarseMaxIterations = 100
)

// Options configures the damped search.
//
// Epsilon       – stop once |forward(x) − target| < Epsilon. Must be > 0.
// MaxIterations – hard ceiling on iterations; reaching it returns the best
//
//	root found together with ErrConvergenceExhausted.
//
// InitialStep   – magnitude and direction of the first step. Must be non-zero.
type Options struct {
	Epsilon       float64
	MaxIterations int
	InitialStep   float64
}

// DefaultOptions returns the high-precision policy: Epsilon 1e-8, ceiling
// 10 000 iterations, initial step 10.0.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		InitialStep:   DefaultInitialStep,
	}
}

// CoarseOptions returns the lower-precision policy: Epsilon 1e-3, ceiling
// 100 iterations, initial step 10.0.
func CoarseOptions() Options {
	return Options{
		Epsilon:       CoarseEpsilon,
		MaxIterations: CoarseMaxIterations,
		InitialStep:   DefaultInitialStep,
	}
}

// Result is the outcome of one inversion.
//
// Root       – best x found: forward(Root) is the closest approach to the
//
//	target the search achieved.
//
// Residual   – forward(Root) − target, signed.
// Iterations – iterations actually performed.
// Converged  – whether |Residual| < Epsilon was reached.
type Result struct {
	Root       float64
	Residual   float64
	Iterations int
	Converged  bool
}
