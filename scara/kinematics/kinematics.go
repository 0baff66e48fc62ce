// Package kinematics implements the closed-form forward and inverse
// kinematics of a two-link SCARA arm.
//
// Both transforms are pure functions of the arm geometry, the joint
// limits and their input; all presentation lives with the caller.
package kinematics

import "errors"

// Errors returned by the solvers. Joint range errors can come from
// either transform; the reach errors only from the inverse one.
var (
	ErrJoint1OutOfRange = errors.New("joint 1 angle out of range")
	ErrJoint2OutOfRange = errors.New("joint 2 angle out of range")
	ErrTargetTooFar     = errors.New("target exceeds maximum reach")
	ErrTargetTooClose   = errors.New("target inside minimum reach")
)

// IsReachError reports whether err is one of the reachability errors
// (as opposed to a joint limit violation)
func IsReachError(err error) bool {
	return errors.Is(err, ErrTargetTooFar) || errors.Is(err, ErrTargetTooClose)
}
