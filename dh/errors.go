package dh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dhkin/matrix"
)

// Sentinel errors for chain construction and joint access.
var (
	// ErrNoLinks indicates a chain was built from an empty D-H table.
	ErrNoLinks = errors.New("dh: chain has no links")

	// ErrTooManyLinks indicates the D-H table exceeds the chain capacity.
	ErrTooManyLinks = errors.New("dh: too many links for chain capacity")

	// ErrJointIndex indicates a joint index outside [0, LinkCount).
	// It wraps matrix.ErrOutOfRange so either sentinel matches.
	ErrJointIndex = fmt.Errorf("dh: joint index: %w", matrix.ErrOutOfRange)

	// ErrJointCount indicates a joint vector whose length is not LinkCount.
	ErrJointCount = errors.New("dh: joint vector length mismatch")
)

// Operation names used as error prefixes.
const (
	opNewChain           = "NewChain"
	opSetJointVector     = "SetJointVector"
	opSetJointValue      = "SetJointValue"
	opJointValue         = "JointValue"
	opForwardKinematics  = "ForwardKinematics"
	opSetOrientation     = "SetCurrentOrientation"
	opUpdateToolInverse  = "UpdateToolInverse"
	opSetToolOffset      = "SetToolOffset"
	opSetToolTransform   = "SetToolTransform"
	opResetToolTransform = "ResetToolTransform"
)

// chainErrorf prefixes err with the failing operation, keeping it matchable
// with errors.Is.
func chainErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
