package transport

import (
	"net"
	"time"

	"github.com/pkg/errors"
)

// TCPPort connects to the simulator's remote command socket
type TCPPort struct {
	conn net.Conn
	cfg  *Config
}

// DialTCP opens a TCP connection to the simulator
func DialTCP(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	addr := cfg.Address
	if addr == "" {
		addr = DefaultConfig().Address
	}

	timeout := time.Duration(cfg.DialTimeoutMS) * time.Millisecond
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to simulator at %s", addr)
	}

	return &TCPPort{conn: conn, cfg: cfg}, nil
}

// Read reads data from the connection
func (p *TCPPort) Read(b []byte) (int, error) {
	return p.conn.Read(b)
}

// Write writes data to the connection
func (p *TCPPort) Write(b []byte) (int, error) {
	return p.conn.Write(b)
}

// Close closes the connection
func (p *TCPPort) Close() error {
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Flush is a no-op: TCP writes are not buffered on our side
func (p *TCPPort) Flush() error {
	return nil
}
