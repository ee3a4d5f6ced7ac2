// Package config handles vecdemo configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/vecmath/internal/logger"
	vmath "github.com/Faultbox/vecmath/pkg/math"
)

// Config holds all demo settings.
type Config struct {
	Vectors VectorsConfig `yaml:"vectors"`
	Logging LoggingConfig `yaml:"logging"`
}

// VectorConfig is a vector as written in the config file.
type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts to the math type.
func (v VectorConfig) Vec() vmath.Vec2 {
	return vmath.New(v.X, v.Y)
}

// VectorsConfig holds the operands of the demo routine.
type VectorsConfig struct {
	A      VectorConfig `yaml:"a"`
	B      VectorConfig `yaml:"b"`
	Scalar float64      `yaml:"scalar"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// FileConfig returns the logger file settings.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	return logger.FileConfig{
		Path:       l.LogFile,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	file := logger.DefaultFileConfig("")
	return &Config{
		Vectors: VectorsConfig{
			A:      VectorConfig{X: 3, Y: 4},
			B:      VectorConfig{X: 1, Y: 2},
			Scalar: 2,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	}
}

// Validate checks settings that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}
