package main

import (
	"errors"
	"testing"
)

func TestValidateConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("ValidateConfig() error = %v, want nil", err)
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"EmptyInput", func(c *Config) { c.Input = "" }, ErrInvalidInput},
		{"EmptyStart", func(c *Config) { c.Start = "" }, ErrInvalidStart},
		{"LongStart", func(c *Config) { c.Start = "SS" }, ErrInvalidStart},
		{"LongTarget", func(c *Config) { c.Target = "END" }, ErrInvalidTarget},
		{"StartIsWall", func(c *Config) { c.Walls = "#S" }, ErrMarkerIsWall},
		{"TargetIsWall", func(c *Config) { c.Walls = "E" }, ErrMarkerIsWall},
		{"LogFormat", func(c *Config) { c.LogFormat = "xml" }, ErrInvalidLogFormat},
		{"LogLevel", func(c *Config) { c.LogLevel = "trace" }, ErrInvalidLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := ValidateConfig(&cfg); err != tt.want {
				t.Errorf("ValidateConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateConfig_MultibyteMarkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start, cfg.Target, cfg.Walls = "★", "◆", "█"
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("ValidateConfig() error = %v, want nil", err)
	}
	if cfg.StartRune() != '★' || cfg.TargetRune() != '◆' {
		t.Errorf("markers = %q %q", cfg.StartRune(), cfg.TargetRune())
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig_EnvVars(t *testing.T) {
	t.Setenv("GRIDROUTE_INPUT", "maze.txt")
	t.Setenv("GRIDROUTE_START", "@")
	t.Setenv("GRIDROUTE_WALLS", "#~")
	t.Setenv("GRIDROUTE_DIAGONAL", "true")
	t.Setenv("GRIDROUTE_REDUCE", "false")
	t.Setenv("GRIDROUTE_LOG_LEVEL", "debug")
	t.Setenv("GRIDROUTE_LOG_FORMAT", "json")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Input != "maze.txt" || cfg.Start != "@" || cfg.Walls != "#~" {
		t.Errorf("string fields not read from environment: %+v", cfg)
	}
	if !cfg.Diagonal || cfg.Reduce {
		t.Errorf("bool fields not read from environment: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log fields not read from environment: %+v", cfg)
	}
	if cfg.Target != "E" {
		t.Errorf("Target = %q, want default E", cfg.Target)
	}
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GRIDROUTE_INPUT", "env.txt")
	t.Setenv("GRIDROUTE_DIAGONAL", "false")

	cfg, err := LoadConfig([]string{"-diagonal", "-target", "Z", "flag.txt"})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Input != "flag.txt" {
		t.Errorf("Input = %q, want flag.txt", cfg.Input)
	}
	if !cfg.Diagonal || cfg.Target != "Z" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig([]string{"-start", "AB"}); !errors.Is(err, ErrInvalidStart) {
		t.Errorf("LoadConfig() error = %v, want %v", err, ErrInvalidStart)
	}
	if _, err := LoadConfig([]string{"a.txt", "b.txt"}); err == nil {
		t.Error("expected error for two positional arguments")
	}

	t.Setenv("GRIDROUTE_REDUCE", "sometimes")
	if _, err := LoadConfig(nil); err == nil {
		t.Error("expected error for unparsable GRIDROUTE_REDUCE")
	}
}
