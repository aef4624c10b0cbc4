// Package config loads the msgevents command configuration from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the command settings
type Config struct {
	LogLevel  string `env:"MSGEVENTS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MSGEVENTS_LOG_FORMAT" envDefault:"text"`
	Sender    string `env:"MSGEVENTS_SENDER" envDefault:"msgevents"`
}

// Load parses the configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Logger builds a logger writing to w in the configured format
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.LogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
}
