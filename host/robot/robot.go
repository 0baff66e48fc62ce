// Package robot manages the connection to the SCARA simulator and the
// fire-and-forget delivery of protocol command lines.
package robot

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"scarahost/host/transport"
)

// Robot represents a connection to the SCARA simulator
type Robot struct {
	port      transport.Port
	logger    *slog.Logger
	connected bool
}

// New creates a new Robot instance (not yet connected)
func New(logger *slog.Logger) *Robot {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Robot{logger: logger}
}

// Initialize opens the transport described by cfg. Failure here is
// unrecoverable for the host program.
func (r *Robot) Initialize(cfg *transport.Config) error {
	if r.connected {
		return errors.New("already connected")
	}

	port, err := transport.Open(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize robot connection")
	}

	r.port = port
	r.connected = true
	r.logger.Info("connected to simulator", "kind", cfg.Kind, "address", cfg.Address)
	return nil
}

// InitializeWithPort attaches an already open port. Used by tests and
// by callers that manage the transport themselves.
func (r *Robot) InitializeWithPort(port transport.Port) {
	r.port = port
	r.connected = true
}

// Connected reports whether the connection is open
func (r *Robot) Connected() bool {
	return r.connected
}

// Send transmits one command line to the simulator. A trailing newline
// is added if the caller left it off. The simulator never acknowledges
// commands, so a nil return only means the line was handed to the
// transport.
func (r *Robot) Send(line string) error {
	if !r.connected {
		return errors.New("not connected to simulator")
	}

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	if _, err := io.WriteString(r.port, line); err != nil {
		return errors.Wrap(err, "failed to send command")
	}

	r.logger.Debug("sent command", "line", strings.TrimRight(line, "\n"))
	return r.port.Flush()
}

// Close closes the connection. Safe to call more than once.
func (r *Robot) Close() error {
	if !r.connected {
		return nil
	}
	r.connected = false

	if err := r.port.Close(); err != nil {
		return errors.Wrap(err, "failed to close connection")
	}
	r.logger.Info("connection closed")
	return nil
}
