package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scarahost/scara"
)

var (
	testGeom   = scara.Geometry{L1: 350, L2: 250}
	testLimits = scara.JointLimits{MaxAbsTheta1Deg: 150, MaxAbsTheta2Deg: 170}
)

const angleTol = 1e-6 // degrees

func TestSolveFKStretchedArm(t *testing.T) {
	pos, err := SolveFK(testGeom, testLimits, scara.JointAngles{})
	require.NoError(t, err)

	assert.InDelta(t, 600.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)
}

func TestSolveFKJointLimits(t *testing.T) {
	tests := []struct {
		name    string
		angles  scara.JointAngles
		wantErr error
	}{
		{"both joints at zero", scara.JointAngles{}, nil},
		{"joint 1 exactly at limit", scara.JointAngles{Theta1Deg: 150}, nil},
		{"joint 1 at negative limit", scara.JointAngles{Theta1Deg: -150}, nil},
		{"joint 2 exactly at limit", scara.JointAngles{Theta2Deg: 170}, nil},
		{"joint 1 just beyond limit", scara.JointAngles{Theta1Deg: 150.0001}, ErrJoint1OutOfRange},
		{"joint 2 just beyond limit", scara.JointAngles{Theta2Deg: -170.0001}, ErrJoint2OutOfRange},
		{"both beyond, joint 1 reported first", scara.JointAngles{Theta1Deg: 200, Theta2Deg: 200}, ErrJoint1OutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveFK(testGeom, testLimits, tt.angles)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSolveIKReachability(t *testing.T) {
	_, err := SolveIK(testGeom, testLimits, scara.ToolPosition{X: 601, Y: 0}, scara.ArmLeft)
	assert.ErrorIs(t, err, ErrTargetTooFar)

	// Minimum reach for L1=350, L2=250 is about 112.5mm.
	_, err = SolveIK(testGeom, testLimits, scara.ToolPosition{X: 50, Y: 0}, scara.ArmLeft)
	assert.ErrorIs(t, err, ErrTargetTooClose)

	_, err = SolveIK(testGeom, testLimits, scara.ToolPosition{X: 0, Y: 600}, scara.ArmLeft)
	assert.NoError(t, err, "full stretch is still reachable")
}

func TestSolveIKRoundTrip(t *testing.T) {
	poses := []scara.JointAngles{
		{Theta1Deg: 0, Theta2Deg: 45},
		{Theta1Deg: 30, Theta2Deg: -60},
		{Theta1Deg: -45, Theta2Deg: 90},
		{Theta1Deg: 120, Theta2Deg: 30},
		{Theta1Deg: -120, Theta2Deg: -30},
		{Theta1Deg: 149, Theta2Deg: 169},
		{Theta1Deg: 15.5, Theta2Deg: 20.25},
	}

	for _, want := range poses {
		pos, err := SolveFK(testGeom, testLimits, want)
		require.NoError(t, err)

		// The elbow sign picks the matching configuration: a positive
		// theta2 is the left arm solution, a negative one the right.
		arm := scara.ArmLeft
		if want.Theta2Deg < 0 {
			arm = scara.ArmRight
		}

		got, err := SolveIK(testGeom, testLimits, pos, arm)
		require.NoError(t, err)

		assert.InDelta(t, want.Theta1Deg, got.Theta1Deg, angleTol)
		assert.InDelta(t, want.Theta2Deg, got.Theta2Deg, angleTol)
	}
}

func TestSolveIKDualSolutions(t *testing.T) {
	target := scara.ToolPosition{X: 300, Y: 200}

	left, err := SolveIK(testGeom, testLimits, target, scara.ArmLeft)
	require.NoError(t, err)
	right, err := SolveIK(testGeom, testLimits, target, scara.ArmRight)
	require.NoError(t, err)

	assert.NotEqual(t, left.Theta1Deg, right.Theta1Deg)
	assert.NotEqual(t, left.Theta2Deg, right.Theta2Deg)

	for _, j := range []scara.JointAngles{left, right} {
		pos, err := SolveFK(testGeom, testLimits, j)
		require.NoError(t, err)
		assert.InDelta(t, target.X, pos.X, 1e-6)
		assert.InDelta(t, target.Y, pos.Y, 1e-6)
	}
}

func TestSolveBothAmbiguous(t *testing.T) {
	// reach = sqrt(400^2 + 100^2) ~ 412.3mm, well inside [min, 600].
	res := SolveBoth(testGeom, testLimits, scara.ToolPosition{X: 400, Y: 100})

	assert.Equal(t, OutcomeAmbiguous, res.Outcome)
	assert.True(t, res.LeftOK)
	assert.True(t, res.RightOK)
	assert.NoError(t, res.Err)

	assert.InDelta(t, 412.3, math.Hypot(400, 100), 0.1)
}

func TestSolveBothForced(t *testing.T) {
	// In the third quadrant the left solution wraps past the joint 1
	// limit while the right one stays inside it.
	res := SolveBoth(testGeom, testLimits, scara.ToolPosition{X: -300, Y: -200})

	require.Equal(t, OutcomeForced, res.Outcome)
	assert.False(t, res.LeftOK)
	assert.True(t, res.RightOK)
	assert.Equal(t, scara.ArmRight, res.ForcedArm)

	pos, err := SolveFK(testGeom, testLimits, res.Angles(scara.ArmRight))
	require.NoError(t, err)
	assert.InDelta(t, -300, pos.X, 1e-6)
	assert.InDelta(t, -200, pos.Y, 1e-6)
}

func TestSolveBothUnreachable(t *testing.T) {
	res := SolveBoth(testGeom, testLimits, scara.ToolPosition{X: 601, Y: 0})

	assert.Equal(t, OutcomeUnreachable, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrTargetTooFar)

	res = SolveBoth(testGeom, testLimits, scara.ToolPosition{X: 10, Y: 10})
	assert.Equal(t, OutcomeUnreachable, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrTargetTooClose)
}

func TestMinReach(t *testing.T) {
	want := math.Sqrt(350*350 + 250*250 - 2*350*250*math.Cos(0.174532925))
	assert.InDelta(t, want, testGeom.MinReach(), 1e-12)
	assert.InDelta(t, 112.5, testGeom.MinReach(), 0.1)
}
