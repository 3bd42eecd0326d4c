// Command gridroute finds the shortest route between two markers on a text
// grid.
//
// Usage:
//
//	gridroute [flags] [input]
//
// Flags default to GRIDROUTE_* environment variables (GRIDROUTE_INPUT,
// GRIDROUTE_START, GRIDROUTE_TARGET, GRIDROUTE_WALLS, GRIDROUTE_DIAGONAL,
// GRIDROUTE_REDUCE, GRIDROUTE_LOG_LEVEL, GRIDROUTE_LOG_FORMAT).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoctools/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("gridroute failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	res, err := Solve(in, cfg, logger)
	if err != nil {
		return fmt.Errorf("solving %s: %w", cfg.Input, err)
	}

	return writeResult(stdout, res)
}
