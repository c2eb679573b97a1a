// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/pgn-replay-go/internal/config"
)

var (
	// Input options
	gamesDir = flag.String("dir", "games", "Directory scanned for .pgn files")
	workers  = flag.Int("workers", 0, "Parallel PGN loader workers (0 = number of CPUs)")

	// Playback options
	moveDelay = flag.Duration("delay", config.DefaultMoveDelay, "Pause between automatically played moves")
	endPause  = flag.Duration("endpause", config.DefaultEndPause, "How long a finished game stays on screen")
	shuffle   = flag.Bool("shuffle", false, "Play the games in shuffled order instead of picking at random")
	fixedView = flag.Bool("whiteview", false, "Always view the board from White's side")
	seed      = flag.Int64("seed", 0, "Random seed for game selection (0 = time-based)")

	// Diagnostics
	logFile   = flag.String("log", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors, 1=progress, 2=commentary")

	help    = flag.Bool("help", false, "Show usage information")
	version = flag.Bool("version", false, "Show version information")
)

// applyFlags copies the parsed flag values into the config.
func applyFlags(cfg *config.Config) {
	cfg.GamesDir = *gamesDir
	cfg.MoveDelay = *moveDelay
	cfg.EndPause = *endPause
	cfg.Seed = *seed
	cfg.Shuffle = *shuffle
	cfg.RandomView = !*fixedView
	cfg.Verbosity = *verbosity
	if *workers > 0 {
		cfg.Workers = *workers
	}
}
