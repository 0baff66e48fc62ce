package kinematics

import (
	"math"

	"scarahost/scara"
)

const degPerRad = 180.0 / math.Pi

// SolveFK converts joint angles to the Cartesian tool position.
// Joint 1 is checked against its limit before joint 2 so the caller
// can report which joint is invalid.
func SolveFK(g scara.Geometry, lim scara.JointLimits, j scara.JointAngles) (scara.ToolPosition, error) {
	if math.Abs(j.Theta1Deg) > lim.MaxAbsTheta1Deg {
		return scara.ToolPosition{}, ErrJoint1OutOfRange
	}
	if math.Abs(j.Theta2Deg) > lim.MaxAbsTheta2Deg {
		return scara.ToolPosition{}, ErrJoint2OutOfRange
	}

	t1 := j.Theta1Deg / degPerRad
	t2 := j.Theta2Deg / degPerRad

	return scara.ToolPosition{
		X: g.L1*math.Cos(t1) + g.L2*math.Cos(t1+t2),
		Y: g.L1*math.Sin(t1) + g.L2*math.Sin(t1+t2),
	}, nil
}

// SolveIK converts a tool position to joint angles for the requested
// arm configuration.
//
// The elbow fork: theta1 = beta + alpha for ArmRight, beta - alpha for
// ArmLeft. Angles that come out of atan2/acos exactly one revolution
// outside a joint limit are wrapped back by 360 degrees before the
// final bounds check; the wrap never replaces the check.
func SolveIK(g scara.Geometry, lim scara.JointLimits, pos scara.ToolPosition, arm scara.ArmConfig) (scara.JointAngles, error) {
	reach := math.Hypot(pos.X, pos.Y)

	if reach > g.MaxReach() {
		return scara.JointAngles{}, ErrTargetTooFar
	}
	if reach < g.MinReach() {
		return scara.JointAngles{}, ErrTargetTooClose
	}

	beta := math.Atan2(pos.Y, pos.X)
	alpha := math.Acos((g.L2*g.L2 - reach*reach - g.L1*g.L1) / (-2 * reach * g.L1))

	t1 := beta - alpha
	if arm == scara.ArmRight {
		t1 = beta + alpha
	}
	t2 := math.Atan2(pos.Y-g.L1*math.Sin(t1), pos.X-g.L1*math.Cos(t1)) - t1

	j1 := t1 * degPerRad
	j2 := t2 * degPerRad

	if j2 < -lim.MaxAbsTheta2Deg {
		j2 += 360
	}
	if j2 > lim.MaxAbsTheta2Deg {
		j2 -= 360
	}
	if j1 < -lim.MaxAbsTheta1Deg {
		j1 += 360
	}
	if j1 > lim.MaxAbsTheta1Deg {
		j1 -= 360
	}

	if math.Abs(j1) > lim.MaxAbsTheta1Deg {
		return scara.JointAngles{}, ErrJoint1OutOfRange
	}
	if math.Abs(j2) > lim.MaxAbsTheta2Deg {
		return scara.JointAngles{}, ErrJoint2OutOfRange
	}

	return scara.JointAngles{Theta1Deg: j1, Theta2Deg: j2}, nil
}

// Outcome classifies the result of resolving both elbow solutions for
// one target position
type Outcome int

const (
	// OutcomeAmbiguous means both arm configurations reach the target
	// and the operator has to choose
	OutcomeAmbiguous Outcome = iota
	// OutcomeForced means exactly one arm configuration is valid
	OutcomeForced
	// OutcomeUnreachable means neither configuration is valid
	OutcomeUnreachable
)

// Resolution holds the outcome of attempting both arm configurations
// for a target position.
type Resolution struct {
	Outcome Outcome

	Left    scara.JointAngles
	Right   scara.JointAngles
	LeftOK  bool
	RightOK bool

	// ForcedArm is the single valid configuration when Outcome is
	// OutcomeForced.
	ForcedArm scara.ArmConfig

	// Err is the more informative of the two failures when Outcome is
	// OutcomeUnreachable. Reachability errors win over joint limit
	// errors, matching the solver's check order.
	Err error
}

// Angles returns the joint angles for the given arm configuration.
// Only meaningful for configurations the resolution marked valid.
func (r Resolution) Angles(arm scara.ArmConfig) scara.JointAngles {
	if arm == scara.ArmRight {
		return r.Right
	}
	return r.Left
}

// SolveBoth attempts both arm configurations independently and
// classifies the outcome. There is no silent fallback to the other
// arm: when both solutions are valid the decision is left to the
// caller.
func SolveBoth(g scara.Geometry, lim scara.JointLimits, pos scara.ToolPosition) Resolution {
	res := Resolution{}

	var errLeft, errRight error
	res.Left, errLeft = SolveIK(g, lim, pos, scara.ArmLeft)
	res.Right, errRight = SolveIK(g, lim, pos, scara.ArmRight)
	res.LeftOK = errLeft == nil
	res.RightOK = errRight == nil

	switch {
	case res.LeftOK && res.RightOK:
		res.Outcome = OutcomeAmbiguous
	case res.LeftOK:
		res.Outcome = OutcomeForced
		res.ForcedArm = scara.ArmLeft
	case res.RightOK:
		res.Outcome = OutcomeForced
		res.ForcedArm = scara.ArmRight
	default:
		res.Outcome = OutcomeUnreachable
		res.Err = moreInformative(errLeft, errRight)
	}

	return res
}

func moreInformative(a, b error) error {
	if IsReachError(a) {
		return a
	}
	if IsReachError(b) {
		return b
	}
	return a
}
