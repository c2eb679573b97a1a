// Package config provides configuration for the pgn-replay tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Default timing values, matching the original viewer's pacing.
const (
	DefaultMoveDelay = 5 * time.Second
	DefaultEndPause  = 10 * time.Second
)

// Config holds all program configuration.
type Config struct {
	// GamesDir is the directory scanned for .pgn files.
	GamesDir string

	// MoveDelay is the pause between automatically played moves.
	MoveDelay time.Duration

	// EndPause is how long a finished game stays on screen before the
	// next one starts.
	EndPause time.Duration

	// Seed seeds game selection and board orientation; 0 means
	// time-based.
	Seed int64

	// Shuffle plays the loaded games in random order rather than
	// picking one at random per cycle.
	Shuffle bool

	// RandomView randomises which side the board is viewed from.
	RandomView bool

	// Workers is the number of parallel PGN loader workers.
	Workers int

	// Addr is the listen address of the replay server.
	Addr string

	// Verbosity: 0=errors only, 1=progress, 2=running commentary.
	Verbosity int

	// LogFile receives diagnostics.
	LogFile io.Writer
}

// NewConfig creates a config with default values.
func NewConfig() *Config {
	return &Config{
		GamesDir:   "games",
		MoveDelay:  DefaultMoveDelay,
		EndPause:   DefaultEndPause,
		RandomView: true,
		Workers:    runtime.NumCPU(),
		Addr:       ":3000",
		Verbosity:  1,
		LogFile:    os.Stderr,
	}
}

// Validate reports invalid configuration values.
func (c *Config) Validate() error {
	if c.GamesDir == "" {
		return perrors.Wrap(perrors.ErrInvalidConfig, "games directory must not be empty")
	}
	if c.MoveDelay < 0 {
		return perrors.Wrap(perrors.ErrInvalidConfig, "move delay must not be negative")
	}
	if c.Workers < 1 {
		return perrors.Wrap(perrors.ErrInvalidConfig, "worker count must be at least 1")
	}
	return nil
}

// Logf writes a diagnostic line when the verbosity level is at least
// the given level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format+"\n", args...)
	}
}
