package engine

import (
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/testutil"
)

func TestIsInCheckInitialPosition(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertFalse(t, IsInCheck(board, chess.White))
	testutil.AssertFalse(t, IsInCheck(board, chess.Black))
}

func TestIsInCheckRookOnFile(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....R...",
	})

	testutil.AssertTrue(t, IsInCheck(board, chess.Black), "rook on an open file")
	testutil.AssertFalse(t, IsInCheck(board, chess.White))

	// A blocker on the file lifts the check.
	board.Put(chess.Sq(4, 4), chess.B(chess.Pawn))
	testutil.AssertFalse(t, IsInCheck(board, chess.Black), "rook behind a blocker")
}

func TestIsInCheckPawnDiagonal(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		"........",
		"........",
		"........",
		"........",
		"....k...",
		"...P....",
		"........",
		"........",
	})

	testutil.AssertTrue(t, IsInCheck(board, chess.Black), "pawn attacks diagonally")

	// A pawn directly in front of the king gives no check.
	board.Clear(chess.Sq(5, 3))
	board.Put(chess.Sq(5, 4), chess.W(chess.Pawn))
	testutil.AssertFalse(t, IsInCheck(board, chess.Black), "pawn advance square is not an attack")
}

func TestIsInCheckKnight(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		"........",
		"........",
		"........",
		"........",
		"....K...",
		"......n.",
		"........",
		"........",
	})

	testutil.AssertTrue(t, IsInCheck(board, chess.White), "knight on a fork square")
}

func TestIsInCheckBishopDiagonal(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		"b.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......K",
	})

	testutil.AssertTrue(t, IsInCheck(board, chess.White), "bishop on the long diagonal")

	board.Put(chess.Sq(4, 4), chess.W(chess.Pawn))
	testutil.AssertFalse(t, IsInCheck(board, chess.White), "bishop behind a blocker")
}

func TestIsInCheckMissingKing(t *testing.T) {
	board := chess.NewBoard()
	board.Put(chess.Sq(0, 0), chess.B(chess.Queen))

	testutil.AssertFalse(t, IsInCheck(board, chess.White), "a board without the king is not in check")
}

func TestCheckStatus(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....R...",
	})

	white, black := CheckStatus(board)
	testutil.AssertFalse(t, white)
	testutil.AssertTrue(t, black)
}
