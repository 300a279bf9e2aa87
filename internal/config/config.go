package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sanonone/friendgraph/pkg/friends"
)

// Config holds the settings of the friendwalk command.
type Config struct {
	// Directory file (YAML or JSON)
	File string `yaml:"file"`

	// Traversal
	Filter   string `yaml:"filter"`    // "all" | "male" | "female"
	MaxDepth int    `yaml:"max_depth"` // negative = unbounded

	// Output
	Format   string `yaml:"format"`    // "text" | "json"
	LogLevel string `yaml:"log_level"` // "debug" | "info" | "warn" | "error"
	Metrics  bool   `yaml:"metrics"`   // dump Prometheus metrics after the run
}

// DefaultConfig returns an unbounded, unfiltered text walk.
func DefaultConfig() Config {
	return Config{
		Filter:   "all",
		MaxDepth: friends.Unbounded,
		Format:   "text",
		LogLevel: "warn",
	}
}

// LoadConfig reads the YAML configuration file using strict parsing.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that every enumerated field holds a known value.
func (c Config) Validate() error {
	var errs []error
	if _, err := friends.ParseFilter(c.Filter); err != nil {
		errs = append(errs, err)
	}
	switch c.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
