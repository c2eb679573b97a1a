// Package library scans a games directory and loads its PGN files
// into a selectable collection of game records.
package library

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
	"github.com/lgbarn/pgn-replay-go/internal/worker"
)

// Library is a loaded collection of game records.
type Library struct {
	games []*chess.GameRecord
	rng   *rand.Rand
}

// ScanDir returns the paths of the PGN files directly inside dir,
// sorted by name. The extension match is case-insensitive; dot files
// and subdirectories are skipped.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, perrors.Wrapf(err, "reading games directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".pgn") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// Load scans cfg.GamesDir and loads every PGN file through a worker
// pool. Files that fail to load are logged and skipped; the load only
// fails as a whole when no file yields any game.
func Load(cfg *config.Config) (*Library, error) {
	paths, err := ScanDir(cfg.GamesDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, perrors.Wrapf(perrors.ErrNoFiles, "in %s", cfg.GamesDir)
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.LoadResult {
		games, err := loadFile(item.Path, cfg)
		return worker.LoadResult{Path: item.Path, Index: item.Index, Games: games, Error: err}
	}, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(len(paths)))

	pool.Start()
	go func() {
		for i, path := range paths {
			pool.Submit(worker.WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	// Collect per-file results, then restore scan order so selection
	// is reproducible for a fixed seed.
	byIndex := make([][]*chess.GameRecord, len(paths))
	for result := range pool.Results() {
		if result.Error != nil {
			cfg.Logf(0, "skipping %s: %v", result.Path, result.Error)
			continue
		}
		byIndex[result.Index] = result.Games
	}

	lib := &Library{rng: newRNG(cfg.Seed)}
	for _, games := range byIndex {
		lib.games = append(lib.games, games...)
	}
	if len(lib.games) == 0 {
		return nil, perrors.Wrapf(perrors.ErrNoGames, "in %s", cfg.GamesDir)
	}

	cfg.Logf(1, "loaded %d games from %d files", len(lib.games), len(paths))
	return lib, nil
}

// loadFile parses a single PGN file.
func loadFile(path string, cfg *config.Config) ([]*chess.GameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := parser.NewParser(f, cfg)
	p.SetSourceFile(filepath.Base(path))
	return p.ParseAllGames()
}

// newRNG builds the selection RNG; seed 0 means time-based.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Len returns the number of loaded games.
func (l *Library) Len() int {
	return len(l.games)
}

// Games returns the loaded games in scan order.
func (l *Library) Games() []*chess.GameRecord {
	return l.games
}

// Game returns the game at the given index, or nil if out of range.
func (l *Library) Game(index int) *chess.GameRecord {
	if index < 0 || index >= len(l.games) {
		return nil
	}
	return l.games[index]
}

// Pick returns a random game.
func (l *Library) Pick() *chess.GameRecord {
	return l.games[l.rng.Intn(len(l.games))]
}

// Shuffle randomises the in-memory game order.
func (l *Library) Shuffle() {
	l.rng.Shuffle(len(l.games), func(i, j int) {
		l.games[i], l.games[j] = l.games[j], l.games[i]
	})
}

// CoinFlip returns a random boolean, used for board orientation.
func (l *Library) CoinFlip() bool {
	return l.rng.Intn(2) == 0
}
