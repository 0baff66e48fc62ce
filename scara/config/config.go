// Package config loads the host configuration from JSON with optional
// environment overrides.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"scarahost/scara"
)

// LoadConfig parses a JSON configuration string and returns a HostConfig
func LoadConfig(jsonData []byte) (*scara.HostConfig, error) {
	var config scara.HostConfig

	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile reads and parses a JSON configuration file
func LoadFile(path string) (*scara.HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return LoadConfig(data)
}

// applyDefaults fills in missing configuration values
func applyDefaults(config *scara.HostConfig) {
	if config.Transport == "" {
		config.Transport = "tcp"
	}
	if config.Address == "" {
		config.Address = "127.0.0.1:1270"
	}
	if config.Baud == 0 {
		config.Baud = 19200
	}
	if config.Geometry.L1 == 0 {
		config.Geometry.L1 = 350.0
	}
	if config.Geometry.L2 == 0 {
		config.Geometry.L2 = 250.0
	}
	if config.Limits.MaxAbsTheta1Deg == 0 {
		config.Limits.MaxAbsTheta1Deg = 150.0
	}
	if config.Limits.MaxAbsTheta2Deg == 0 {
		config.Limits.MaxAbsTheta2Deg = 170.0
	}
}

// Validate checks the configuration for values the host cannot run with
func Validate(config *scara.HostConfig) error {
	if config.Transport != "tcp" && config.Transport != "serial" {
		return errors.Errorf("transport must be tcp or serial, got %q", config.Transport)
	}
	if config.Transport == "serial" && config.Device == "" {
		return errors.New("serial transport requires a device path")
	}
	if config.Geometry.L1 <= 0 || config.Geometry.L2 <= 0 {
		return errors.Errorf("link lengths must be positive, got L1=%v L2=%v",
			config.Geometry.L1, config.Geometry.L2)
	}
	if config.Limits.MaxAbsTheta1Deg <= 0 || config.Limits.MaxAbsTheta2Deg <= 0 {
		return errors.Errorf("joint limits must be positive, got %v and %v",
			config.Limits.MaxAbsTheta1Deg, config.Limits.MaxAbsTheta2Deg)
	}
	return nil
}

// Default returns the configuration for a locally running simulator
// with the standard classroom arm geometry
func Default() *scara.HostConfig {
	return &scara.HostConfig{
		Transport: "tcp",
		Address:   "127.0.0.1:1270",
		Baud:      19200,
		Geometry: scara.Geometry{
			L1: 350.0,
			L2: 250.0,
		},
		Limits: scara.JointLimits{
			MaxAbsTheta1Deg: 150.0,
			MaxAbsTheta2Deg: 170.0,
		},
	}
}

// ApplyEnv overlays environment variables onto the configuration.
// A .env file in the working directory is honored when present.
func ApplyEnv(config *scara.HostConfig) {
	// Missing .env is fine; real environment still applies.
	_ = godotenv.Load()

	if v := os.Getenv("SCARA_TRANSPORT"); v != "" {
		config.Transport = v
	}
	if v := os.Getenv("SCARA_SIM_ADDR"); v != "" {
		config.Address = v
	}
	if v := os.Getenv("SCARA_SERIAL_DEVICE"); v != "" {
		config.Device = v
	}
	if v := os.Getenv("SCARA_SERIAL_BAUD"); v != "" {
		if baud, err := strconv.Atoi(v); err == nil && baud > 0 {
			config.Baud = baud
		}
	}
}
