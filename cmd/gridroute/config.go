package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
)

// Config validation errors
var (
	ErrInvalidInput     = errors.New("input cannot be empty")
	ErrInvalidStart     = errors.New("start must be a single character")
	ErrInvalidTarget    = errors.New("target must be a single character")
	ErrMarkerIsWall     = errors.New("start and target markers cannot be walls")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds the command configuration. Every field can be set from the
// environment with the GRIDROUTE_ prefix and overridden by a flag.
type Config struct {
	Input     string `envconfig:"INPUT" default:"-"` // path to the grid, "-" reads stdin
	Start     string `envconfig:"START" default:"S"`
	Target    string `envconfig:"TARGET" default:"E"`
	Walls     string `envconfig:"WALLS" default:"#"` // every rune in Walls is impassable
	Diagonal  bool   `envconfig:"DIAGONAL" default:"false"`
	Reduce    bool   `envconfig:"REDUCE" default:"true"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Input:     "-",
		Start:     "S",
		Target:    "E",
		Walls:     "#",
		Diagonal:  false,
		Reduce:    true,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.Input == "" {
		return ErrInvalidInput
	}
	if utf8.RuneCountInString(cfg.Start) != 1 {
		return ErrInvalidStart
	}
	if utf8.RuneCountInString(cfg.Target) != 1 {
		return ErrInvalidTarget
	}
	if strings.Contains(cfg.Walls, cfg.Start) || strings.Contains(cfg.Walls, cfg.Target) {
		return ErrMarkerIsWall
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}

// StartRune returns the start marker.
func (c Config) StartRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Start)
	return r
}

// TargetRune returns the target marker.
func (c Config) TargetRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Target)
	return r
}

// LoadConfig reads the environment, then applies flags from args. A single
// positional argument is taken as the input path.
func LoadConfig(args []string) (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("GRIDROUTE", &cfg); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	fs := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	fs.StringVar(&cfg.Input, "input", cfg.Input, "grid file, - for stdin")
	fs.StringVar(&cfg.Start, "start", cfg.Start, "start marker")
	fs.StringVar(&cfg.Target, "target", cfg.Target, "target marker")
	fs.StringVar(&cfg.Walls, "walls", cfg.Walls, "impassable characters")
	fs.BoolVar(&cfg.Diagonal, "diagonal", cfg.Diagonal, "allow diagonal moves")
	fs.BoolVar(&cfg.Reduce, "reduce", cfg.Reduce, "collapse corridors before searching")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "json or console")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parsing flags: %w", err)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("parsing flags: expected at most one input path, got %d", fs.NArg())
	}

	if err := ValidateConfig(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
