// Package solver inverts well-behaved forward functions numerically, for
// the cases where a conversion's mathematical inverse has no closed form.
//
// 🚀 What is the damped search?
//
//	Given forward(x) and a target value, Invert finds x such that
//	forward(x) ≈ target by bounded damped fixed-point iteration:
//
//	 1. Seed x with the target itself — a first-order guess, good when
//	    the correction forward applies is small against its input.
//	 2. Evaluate the residual f(x) = forward(x) − target.
//	 3. Step x by a fixed increment (InitialStep, default 10.0).
//	 4. Whenever |f(x)| grows against the previous iteration, halve the
//	    step and reverse its sign — damping against divergence and
//	    oscillation.
//	 5. Stop when |f(x)| < Epsilon, or at the iteration ceiling.
//
// On ceiling exhaustion the best x seen is still returned, tagged with
// ErrConvergenceExhausted — an informational sentinel, not a failure. The
// callers this serves (astronomical time-scale corrections) have bounded
// correction terms, so the residual of a best-effort answer is always far
// below a meaningful unit of the domain.
//
// Requirements on forward: continuous, a single root in the search
// neighborhood, bounded derivative. Nothing here is specific to time
// scales; any unit with a non-invertible forward converter can use it.
//
// ⚙️ Usage:
//
//	res, err := solver.Invert(forward, target, solver.DefaultOptions())
//	if err != nil && !errors.Is(err, solver.ErrConvergenceExhausted) {
//	  // invalid inputs; res.Root is meaningless
//	}
//	x := res.Root // best-effort even on exhaustion
//
// Each call's iteration state is local: no shared state, no suspension
// points, safe to run concurrently across independent conversions. The
// iteration ceiling doubles as a deterministic timeout.
package solver
