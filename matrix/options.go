// SPDX-License-Identifier: MIT
// Package matrix: functional options for numeric policy.
//
// Purpose:
//   - Centralize the numeric knobs of the kernels (today: the zero-pivot
//     tolerance used by Invert/Inverse) behind validated functional setters.
//   - Keep defaults in one place so comments and code never diverge.

package matrix

import "math"

// DefaultPivotTolerance is the magnitude at or below which a selected pivot is
// treated as zero. Zero means exact equality: a matrix is reported singular
// only when the largest remaining candidate in a column is exactly 0.
const DefaultPivotTolerance = 0.0

// panicPivotToleranceInvalid is the stable panic message for bad tolerances.
const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tolerance must be finite and >= 0"

// Option configures a kernel call.
type Option func(*Options)

// Options is the resolved numeric policy for a kernel call.
type Options struct {
	pivotTol float64 // |pivot| <= pivotTol => singular
}

// PivotTolerance returns the effective zero-pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// WithPivotTolerance sets the zero-pivot tolerance for inversion.
// Implementation:
//   - Stage 1: reject NaN, ±Inf and negative values (panic: programmer error).
//   - Stage 2: return the setter.
//
// Behavior highlights:
//   - eps == 0 keeps exact-equality detection.
//   - eps > 0 makes near-singular matrices fail with ErrSingular instead of
//     producing huge, inaccurate inverse entries.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// NewOptions resolves opts on top of the defaults (last writer wins).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
