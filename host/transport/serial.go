package transport

import (
	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// SerialPort drives a protocol-compatible arm attached to a tty
type SerialPort struct {
	port *serial.Port
	cfg  *Config
}

// OpenSerial opens a native serial port
func OpenSerial(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, errors.New("serial transport requires a device path")
	}

	baud := cfg.Baud
	if baud == 0 {
		baud = DefaultConfig().Baud
	}

	port, err := serial.OpenPort(&serial.Config{
		Name: cfg.Device,
		Baud: baud,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open serial port %s", cfg.Device)
	}

	return &SerialPort{port: port, cfg: cfg}, nil
}

// Read reads data from the serial port
func (p *SerialPort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes data to the serial port
func (p *SerialPort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port
func (p *SerialPort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush flushes the serial port buffers
func (p *SerialPort) Flush() error {
	return p.port.Flush()
}
