package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
	flagScalar  = flag.Float64("scalar", 0, "Scalar used for multiplication and division")
	flagA       = flag.String("a", "", "First vector as \"x,y\"")
	flagB       = flag.String("b", "", "Second vector as \"x,y\"")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags(args []string) error {
	return flag.CommandLine.Parse(args)
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagScalar != 0 {
		cfg.Vectors.Scalar = *flagScalar
	}
	if *flagA != "" {
		v, err := parseVector(*flagA)
		if err != nil {
			return fmt.Errorf("flag -a: %w", err)
		}
		cfg.Vectors.A = v
	}
	if *flagB != "" {
		v, err := parseVector(*flagB)
		if err != nil {
			return fmt.Errorf("flag -b: %w", err)
		}
		cfg.Vectors.B = v
	}
	return nil
}

// parseVector parses "x,y".
func parseVector(s string) (VectorConfig, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return VectorConfig{}, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return VectorConfig{}, fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return VectorConfig{}, fmt.Errorf("parsing y: %w", err)
	}
	return VectorConfig{X: x, Y: y}, nil
}
