// Package dh models a serial robot arm with Denavit-Hartenberg parameters and
// computes its forward kinematics.
//
// A Link holds one row of a D-H table (θ, d, a, α) and produces the
// homogeneous transform from its frame to the next. A Chain owns an ordered
// set of links plus a tool transform, and keeps a cached end-effector pose:
//
//	TmCurrent = T_0(q_0) · T_1(q_1) · … · T_{n-1}(q_{n-1}) · TmTool
//
// Every joint or tool mutator recomputes TmCurrent, and every tool mutator
// recomputes the tool inverse, so both are always consistent with the state
// that produced them. The two pose escape hatches (SetCurrentPosition and
// SetCurrentOrientation) overwrite TmCurrent directly; the next joint or tool
// mutation or an explicit Refresh resynchronises it.
//
// Angles are radians and lengths are in whatever unit the D-H table uses.
//
// Concurrency: a Chain is safe for concurrent use. Each chain has one
// sync.RWMutex; mutators hold the write lock across their whole
// read-modify-write and accessors take the read lock. Accessors return copies.
//
// Errors:
//
//	ErrNoLinks      - empty D-H table.
//	ErrTooManyLinks - more links than the chain capacity.
//	ErrJointIndex   - joint index outside [0, LinkCount); also matches matrix.ErrOutOfRange.
//	ErrJointCount   - joint vector length differs from LinkCount.
//
// Tool inversion failures surface as matrix.ErrSingular and unknown Euler
// orders as rotation.ErrUnknownOrder, wrapped with the failing operation.
package dh
