// Package protocol implements the SCARA simulator command protocol.
//
// Every command is a newline-terminated ASCII line. Builders validate
// their arguments and return the complete line ready for the wire.
package protocol

import (
	"fmt"
	"strings"
)

// Fixed command lines without arguments
const (
	PenUp   = "PEN_UP\n"
	PenDown = "PEN_DOWN\n"

	ClearTrace            = "CLEAR_TRACE\n"
	ClearRemoteCommandLog = "CLEAR_REMOTE_COMMAND_LOG\n"
	ClearPositionLog      = "CLEAR_POSITION_LOG\n"

	Home               = "HOME\n"
	End                = "END\n"
	ShutdownSimulation = "SHUTDOWN_SIMULATION\n"
)

// RotateJoint builds the joint rotation command. Angles are in degrees
// and formatted with two decimals, matching the simulator's parser.
func RotateJoint(ang1Deg, ang2Deg float64) string {
	return fmt.Sprintf("ROTATE_JOINT ANG1 %.2f ANG2 %.2f\n", ang1Deg, ang2Deg)
}

// Pen returns the pen command for the requested state
func Pen(down bool) string {
	if down {
		return PenDown
	}
	return PenUp
}

// PenColor builds the pen color command. Components are 8-bit RGB.
func PenColor(r, g, b int) (string, error) {
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return "", fmt.Errorf("pen color component %d out of range 0-255", c)
		}
	}
	return fmt.Sprintf("PEN_COLOR %d %d %d\n", r, g, b), nil
}

// CyclePenColors builds the pen color cycling toggle command
func CyclePenColors(on bool) string {
	if on {
		return "CYCLE_PEN_COLORS ON\n"
	}
	return "CYCLE_PEN_COLORS OFF\n"
}

// Speed represents a simulator motor speed setting
type Speed string

const (
	SpeedHigh   Speed = "HIGH"
	SpeedMedium Speed = "MEDIUM"
	SpeedLow    Speed = "LOW"
)

// ParseSpeed maps operator input to a motor speed. Single letters and
// full names are accepted, case-insensitively.
func ParseSpeed(s string) (Speed, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HIGH":
		return SpeedHigh, nil
	case "M", "MEDIUM":
		return SpeedMedium, nil
	case "L", "LOW":
		return SpeedLow, nil
	}
	return "", fmt.Errorf("unknown motor speed %q", s)
}

// MotorSpeed builds the motor speed command
func MotorSpeed(s Speed) (string, error) {
	switch s {
	case SpeedHigh, SpeedMedium, SpeedLow:
		return fmt.Sprintf("MOTOR_SPEED %s\n", s), nil
	}
	return "", fmt.Errorf("invalid motor speed %q", string(s))
}

// Message builds the simulator message command. The text is quoted;
// embedded quotes and line breaks are stripped since the protocol has
// no escaping.
func Message(text string) string {
	text = strings.NewReplacer("\"", "", "\n", " ", "\r", " ").Replace(text)
	return fmt.Sprintf("MESSAGE \"%s\"\n", text)
}
