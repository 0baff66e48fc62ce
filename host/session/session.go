// Package session implements the interactive operator loop: mode
// selection, numeric prompts, dual-solution resolution and dispatch of
// the resulting protocol commands.
//
// The kinematics stay pure; everything the operator sees happens here.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"scarahost/protocol"
	"scarahost/scara"
	"scarahost/scara/kinematics"
)

// Console color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Sender delivers one command line to the simulator
type Sender interface {
	Send(line string) error
}

// Session drives the operator interaction loop. The arm configuration
// preference is owned here and passed into every IK call; it starts as
// the left arm and follows the operator's explicit choices.
type Session struct {
	geom   scara.Geometry
	limits scara.JointLimits
	arm    scara.ArmConfig

	sender Sender
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a session reading operator input from in and writing
// prompts to out
func New(cfg *scara.HostConfig, sender Sender, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		geom:   cfg.Geometry,
		limits: cfg.Limits,
		arm:    scara.ArmLeft,
		sender: sender,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Arm returns the current arm configuration preference
func (s *Session) Arm() scara.ArmConfig {
	return s.arm
}

// Run executes the interaction loop until the operator exits or input
// ends
func (s *Session) Run() error {
	for {
		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			return s.quit()
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "f", "forward":
			s.forwardFlow()
		case "i", "inverse":
			s.inverseFlow()
		case "h", "home":
			s.send(protocol.Home)
		case "c", "clear":
			s.send(protocol.ClearTrace)
		case "p", "pen":
			s.penColorFlow()
		case "s", "speed":
			s.speedFlow()
		case "m", "message":
			s.messageFlow()
		case "q", "quit", "exit":
			return s.quit()
		default:
			s.errorf("Unknown choice %q (type one of f, i, h, c, p, s, m, q)", strings.TrimSpace(line))
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintf(s.out, "\n%s--- SCARA Simulator Host ---%s\n", colorCyan, colorReset)
	fmt.Fprintln(s.out, "  f - forward kinematics (joint angles -> tool position)")
	fmt.Fprintln(s.out, "  i - inverse kinematics (tool position -> joint angles)")
	fmt.Fprintln(s.out, "  h - home the arm")
	fmt.Fprintln(s.out, "  c - clear the pen trace")
	fmt.Fprintln(s.out, "  p - set pen color")
	fmt.Fprintln(s.out, "  s - set motor speed")
	fmt.Fprintln(s.out, "  m - display a message in the simulator")
	fmt.Fprintln(s.out, "  q - exit")
	fmt.Fprint(s.out, "> ")
}

// forwardFlow prompts for joint angles, validates them through FK and
// dispatches the rotation. Re-prompts on any failure, naming the joint
// that violated its range.
func (s *Session) forwardFlow() {
	for {
		fmt.Fprint(s.out, "\nInput 2 angles in degrees (J1, J2): ")
		line, ok := s.readLine()
		if !ok {
			return
		}

		j1, j2, err := ParseNumberPair(line)
		if err != nil {
			s.errorf("%v", err)
			continue
		}

		angles := scara.JointAngles{Theta1Deg: j1, Theta2Deg: j2}
		pos, err := kinematics.SolveFK(s.geom, s.limits, angles)
		switch {
		case errors.Is(err, kinematics.ErrJoint1OutOfRange):
			s.errorf("J1 is out of bounds! Range for J1: ±%.2f°", s.limits.MaxAbsTheta1Deg)
			continue
		case errors.Is(err, kinematics.ErrJoint2OutOfRange):
			s.errorf("J2 is out of bounds! Range for J2: ±%.2f°", s.limits.MaxAbsTheta2Deg)
			continue
		}

		s.penPrompt()
		fmt.Fprintf(s.out, "Calculated coordinates: %.2f, %.2f\n", pos.X, pos.Y)
		s.send(protocol.RotateJoint(angles.Theta1Deg, angles.Theta2Deg))
		return
	}
}

// inverseFlow prompts for a tool position, resolves both elbow
// solutions and dispatches the chosen one. When both are valid the
// operator picks a side; a single valid solution is selected
// automatically. Either way the choice becomes the new preference.
func (s *Session) inverseFlow() {
	for {
		fmt.Fprint(s.out, "\nInput a set of coordinates (X, Y): ")
		line, ok := s.readLine()
		if !ok {
			return
		}

		x, y, err := ParseNumberPair(line)
		if err != nil {
			s.errorf("%v", err)
			continue
		}

		res := kinematics.SolveBoth(s.geom, s.limits, scara.ToolPosition{X: x, Y: y})

		switch res.Outcome {
		case kinematics.OutcomeUnreachable:
			switch {
			case errors.Is(res.Err, kinematics.ErrTargetTooFar):
				s.errorf("Coordinates exceed maximum range!")
			case errors.Is(res.Err, kinematics.ErrTargetTooClose):
				s.errorf("Coordinates exceed minimum range!")
			default:
				s.errorf("No arm pose within the joint limits reaches (%.2f, %.2f)", x, y)
			}
			fmt.Fprintf(s.out, "Max range: %.2f mm\nMin range: %.2f mm\n",
				s.geom.MaxReach(), s.geom.MinReach())
			continue

		case kinematics.OutcomeForced:
			s.arm = res.ForcedArm
			fmt.Fprintf(s.out, "%sOnly the %s arm pose can reach this point, selecting it.%s\n",
				colorYellow, s.arm, colorReset)

		case kinematics.OutcomeAmbiguous:
			if !s.chooseArm() {
				return
			}
		}

		angles := res.Angles(s.arm)
		s.penPrompt()
		fmt.Fprintf(s.out, "Calculated angles: %.2f, %.2f\n", angles.Theta1Deg, angles.Theta2Deg)
		s.send(protocol.RotateJoint(angles.Theta1Deg, angles.Theta2Deg))
		return
	}
}

// chooseArm asks the operator for an arm pose until a valid choice is
// made. Returns false when input ends first.
func (s *Session) chooseArm() bool {
	for {
		fmt.Fprint(s.out, "Select arm pose (L/R): ")
		line, ok := s.readLine()
		if !ok {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "l", "left":
			s.arm = scara.ArmLeft
			return true
		case "r", "right":
			s.arm = scara.ArmRight
			return true
		}
		s.errorf("Please answer L or R")
	}
}

// penPrompt asks whether the move should draw and dispatches the pen
// command before the rotation
func (s *Session) penPrompt() {
	fmt.Fprint(s.out, "Draw line? (Y/N): ")
	line, ok := s.readLine()
	if !ok {
		s.send(protocol.PenUp)
		return
	}
	down := strings.EqualFold(strings.TrimSpace(line), "y")
	s.send(protocol.Pen(down))
}

func (s *Session) penColorFlow() {
	for {
		fmt.Fprint(s.out, "\nPen color (R G B, 0-255): ")
		line, ok := s.readLine()
		if !ok {
			return
		}

		r, g, b, err := ParseRGB(line)
		if err != nil {
			s.errorf("%v", err)
			continue
		}
		cmd, err := protocol.PenColor(r, g, b)
		if err != nil {
			s.errorf("%v", err)
			continue
		}
		s.send(cmd)
		return
	}
}

func (s *Session) speedFlow() {
	for {
		fmt.Fprint(s.out, "\nMotor speed (H/M/L): ")
		line, ok := s.readLine()
		if !ok {
			return
		}

		speed, err := protocol.ParseSpeed(line)
		if err != nil {
			s.errorf("%v", err)
			continue
		}
		cmd, err := protocol.MotorSpeed(speed)
		if err != nil {
			s.errorf("%v", err)
			continue
		}
		s.send(cmd)
		return
	}
}

func (s *Session) messageFlow() {
	fmt.Fprint(s.out, "\nMessage text: ")
	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}
	s.send(protocol.Message(strings.TrimSpace(line)))
}

// quit ends the simulator session
func (s *Session) quit() error {
	s.send(protocol.End)
	fmt.Fprintln(s.out, "\nGoodbye!")
	return nil
}

// send hands a command line to the sender. The protocol has no
// acknowledgements, so a transport error is reported and the loop
// keeps going.
func (s *Session) send(line string) {
	if err := s.sender.Send(line); err != nil {
		s.logger.Warn("send failed", "error", err)
		s.errorf("Failed to send command: %v", err)
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) errorf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, colorRed+format+colorReset+"\n", args...)
}
