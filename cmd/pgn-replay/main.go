// pgn-replay plays recorded chess games on the terminal, one move at a
// time, the way a wall-mounted demonstration board would.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/library"
	"github.com/lgbarn/pgn-replay-go/internal/playback"
	"github.com/lgbarn/pgn-replay-go/internal/ui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pgn-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	lib, err := library.Load(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading games: %v\n", err)
		os.Exit(1)
	}

	viewer, err := ui.NewViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising terminal: %v\n", err)
		os.Exit(1)
	}
	defer viewer.Close()

	runLoop(cfg, lib, viewer)
}

// runLoop plays games until the user quits. In shuffle mode every game
// is played once per pass; otherwise each cycle picks at random.
func runLoop(cfg *config.Config, lib *library.Library, viewer *ui.Viewer) {
	if cfg.Shuffle {
		for {
			lib.Shuffle()
			for _, game := range lib.Games() {
				if playOne(cfg, lib, viewer, playback.NewSession(game)) {
					return
				}
			}
		}
	}

	for {
		if playOne(cfg, lib, viewer, playback.NewSession(lib.Pick())) {
			return
		}
	}
}

// playOne runs a single session, returning true when the user quit.
func playOne(cfg *config.Config, lib *library.Library, viewer *ui.Viewer, session *playback.Session) bool {
	if cfg.RandomView {
		session.SetViewFromWhite(lib.CoinFlip())
	}
	cfg.Logf(2, "playing %s vs %s (%d plies)",
		session.Record().White(), session.Record().Black(), session.Len())
	return viewer.Play(session)
}

// setupLogFile redirects diagnostics when a log file is given.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn-replay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays PGN chess games on the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nKeys:\n")
	fmt.Fprintf(os.Stderr, "  space        pause / resume\n")
	fmt.Fprintf(os.Stderr, "  left/right   step through moves while paused\n")
	fmt.Fprintf(os.Stderr, "  f            flip the board\n")
	fmt.Fprintf(os.Stderr, "  q, ESC       quit\n")
}
