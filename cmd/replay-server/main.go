// replay-server loads a PGN game library and streams timed replays to
// websocket clients.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/library"
	"github.com/lgbarn/pgn-replay-go/internal/server"
)

const programVersion = "0.1.0"

var (
	gamesDir  = flag.String("dir", "games", "Directory scanned for .pgn files")
	addr      = flag.String("addr", ":3000", "Listen address")
	workers   = flag.Int("workers", 0, "Parallel PGN loader workers (0 = number of CPUs)")
	moveDelay = flag.Duration("delay", config.DefaultMoveDelay, "Pause between streamed moves")
	endPause  = flag.Duration("endpause", config.DefaultEndPause, "How long a finished game holds before the stream ends")
	logFile   = flag.String("log", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors, 1=progress, 2=commentary")
	version   = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("replay-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	cfg.GamesDir = *gamesDir
	cfg.Addr = *addr
	cfg.MoveDelay = *moveDelay
	cfg.EndPause = *endPause
	cfg.Verbosity = *verbosity
	if *workers > 0 {
		cfg.Workers = *workers
	}
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

	srv := server.New(lib, cfg)
	cfg.Logf(1, "serving %d games on %s", lib.Len(), cfg.Addr)
	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
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
	fmt.Fprintf(os.Stderr, "Usage: replay-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Streams timed PGN replays over websockets.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEndpoints:\n")
	fmt.Fprintf(os.Stderr, "  GET /api/games          game catalogue\n")
	fmt.Fprintf(os.Stderr, "  GET /ws/game/:gameId    websocket replay stream\n")
}
