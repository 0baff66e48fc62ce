package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"scarahost/host/robot"
	"scarahost/host/session"
	"scarahost/host/transport"
	"scarahost/scara"
	"scarahost/scara/config"
)

var (
	configPath = flag.String("config", "", "Path to JSON config file (optional)")
	addr       = flag.String("addr", "", "Simulator TCP address (overrides config)")
	kind       = flag.String("transport", "", "Transport kind: tcp or serial (overrides config)")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Serial baud rate (overrides config)")
	verbose    = flag.Bool("verbose", false, "Log every command line sent")
)

func main() {
	flag.Parse()

	logger := newLogger(*verbose)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	fmt.Println("SCARA Simulator Host")
	fmt.Println("====================")
	fmt.Println()

	bot := robot.New(logger)
	if err := bot.Initialize(&transport.Config{
		Kind:    cfg.Transport,
		Address: cfg.Address,
		Device:  cfg.Device,
		Baud:    cfg.Baud,
	}); err != nil {
		logger.Error("failed to connect to simulator", "error", err)
		fmt.Fprintln(os.Stderr, "Could not reach the simulator. Is it running?")
		os.Exit(1)
	}
	defer bot.Close()

	s := session.New(cfg, bot, os.Stdin, os.Stdout, logger)
	if err := s.Run(); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: file (or defaults),
// then environment, then command line flags.
func loadConfig() (*scara.HostConfig, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	config.ApplyEnv(cfg)

	if *kind != "" {
		cfg.Transport = *kind
	}
	if *addr != "" {
		cfg.Address = *addr
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(handler)
}
