package transport

import (
	"fmt"
	"io"
)

// Port represents a byte transport to the simulator or a real arm.
// This abstraction allows for different implementations:
// - TCP (the SCARA simulator's remote command socket)
// - Native serial (using github.com/tarm/serial)
// - Mock (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds transport configuration
type Config struct {
	// Kind selects the transport: "tcp" or "serial"
	Kind string

	// Address is the simulator endpoint for TCP (e.g. "127.0.0.1:1270")
	Address string

	// Device is the serial device path (e.g. "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate for serial transports
	Baud int

	// DialTimeoutMS bounds TCP connection establishment (0 = default)
	DialTimeoutMS int
}

// DefaultConfig returns a configuration for a locally running simulator
func DefaultConfig() *Config {
	return &Config{
		Kind:          "tcp",
		Address:       "127.0.0.1:1270", // Simulator's fixed port
		Baud:          19200,
		DialTimeoutMS: 5000,
	}
}

// Open opens the transport described by cfg
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch cfg.Kind {
	case "", "tcp":
		return DialTCP(cfg)
	case "serial":
		return OpenSerial(cfg)
	}
	return nil, fmt.Errorf("unknown transport kind %q", cfg.Kind)
}
