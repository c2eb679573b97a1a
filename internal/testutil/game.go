// Package testutil provides shared test utilities for the pgn-replay-go project.
// These utilities reduce duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// ParseTestRecord parses a PGN string and returns the first game record,
// or nil if parsing fails or no games are found. Use this for tests
// where parse failure is an acceptable outcome.
func ParseTestRecord(pgn string) *chess.GameRecord {
	if games := ParseTestRecords(pgn); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestRecords parses a PGN string and returns all game records found.
// Returns nil if parsing fails or no games are found.
func ParseTestRecords(pgn string) []*chess.GameRecord {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	p := parser.NewParser(strings.NewReader(pgn), cfg)
	games, err := p.ParseAllGames()
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustParseRecord parses a PGN string and returns the first game record.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseRecord(t *testing.T, pgn string) *chess.GameRecord {
	t.Helper()
	game := ParseTestRecord(pgn)
	if game == nil {
		t.Fatalf("failed to parse test game:\n%s", pgn)
	}
	return game
}

// MustParseRecords parses a PGN string and returns all game records found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseRecords(t *testing.T, pgn string) []*chess.GameRecord {
	t.Helper()
	games := ParseTestRecords(pgn)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgn)
	}
	return games
}

// BoardFromLines builds a board from eight 8-character rows, rank 8
// first. Uppercase letters are white pieces, lowercase black, '.' is an
// empty square. It calls t.Fatal on a malformed diagram.
func BoardFromLines(t *testing.T, lines []string) *chess.Board {
	t.Helper()
	if len(lines) != chess.BoardSize {
		t.Fatalf("board diagram has %d rows, want %d", len(lines), chess.BoardSize)
	}

	board := chess.NewBoard()
	for row, line := range lines {
		if len(line) != chess.BoardSize {
			t.Fatalf("board diagram row %d has %d columns, want %d", row, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			colour := chess.White
			letter := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				letter = c - ('a' - 'A')
			}
			piece := chess.PieceFromLetter(letter)
			if piece == chess.Empty {
				t.Fatalf("board diagram row %d col %d: unknown piece %q", row, col, string(c))
			}
			board.Put(chess.Sq(row, col), chess.MakeColouredPiece(colour, piece))
		}
	}
	return board
}
