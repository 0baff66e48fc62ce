package scara

import "math"

// ToolPosition represents the Cartesian end-effector position in machine
// coordinates (mm)
type ToolPosition struct {
	X float64
	Y float64
}

// JointAngles represents a robot pose in joint space (degrees)
type JointAngles struct {
	Theta1Deg float64 // Shoulder joint
	Theta2Deg float64 // Elbow joint
}

// ArmConfig selects which of the two possible elbow solutions a target
// position resolves to.
//
// Sign convention: ArmRight takes theta1 = beta + alpha, ArmLeft takes
// theta1 = beta - alpha.
type ArmConfig int

const (
	ArmLeft ArmConfig = iota
	ArmRight
)

// String returns the operator-facing name of the arm configuration
func (a ArmConfig) String() string {
	if a == ArmRight {
		return "right"
	}
	return "left"
}

// Geometry represents the fixed link geometry of the arm (mm)
type Geometry struct {
	L1 float64 // Inner link length
	L2 float64 // Outer link length
}

// MaxReach returns the maximum tool distance from the base (fully
// stretched arm)
func (g Geometry) MaxReach() float64 {
	return g.L1 + g.L2
}

// foldLimitRad is the smallest angle the two links may close to. The
// geometric minimum |L1-L2| would require folding the outer link flat
// onto the inner one; 10 degrees is kept as a practical floor.
const foldLimitRad = 0.174532925

// MinReach returns the minimum usable tool distance from the base
func (g Geometry) MinReach() float64 {
	return math.Sqrt(g.L1*g.L1 + g.L2*g.L2 - 2*g.L1*g.L2*math.Cos(foldLimitRad))
}

// JointLimits represents symmetric bounds on the joint deflections (degrees)
type JointLimits struct {
	MaxAbsTheta1Deg float64
	MaxAbsTheta2Deg float64
}

// HostConfig represents the complete host configuration
type HostConfig struct {
	Transport string // "tcp" or "serial"
	Address   string // Simulator TCP address (transport "tcp")
	Device    string // Serial device path (transport "serial")
	Baud      int    // Serial baud rate
	Geometry  Geometry
	Limits    JointLimits
}
