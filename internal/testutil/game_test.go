package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

func TestParseTestRecord(t *testing.T) {
	record := ParseTestRecord("[White \"A\"]\n\n1. e4 e5 *\n")
	if record == nil {
		t.Fatal("ParseTestRecord returned nil for valid PGN")
	}
	if record.PlyCount() != 2 {
		t.Errorf("PlyCount = %d; want 2", record.PlyCount())
	}

	if got := ParseTestRecord(""); got != nil {
		t.Errorf("ParseTestRecord(\"\") = %v; want nil", got)
	}
}

func TestMustParseRecords(t *testing.T) {
	records := MustParseRecords(t, "1. e4 *\n\n[White \"B\"]\n\n1. d4 *\n")
	if len(records) != 2 {
		t.Errorf("got %d records; want 2", len(records))
	}
}

func TestBoardFromLines(t *testing.T) {
	board := BoardFromLines(t, []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	})

	want := chess.NewInitialBoard()
	if *board != *want {
		t.Error("diagram of the initial position does not match NewInitialBoard")
	}
}
