package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/testutil"
)

func TestResolvePawnAdvance(t *testing.T) {
	board := chess.NewInitialBoard()

	move, err := Resolve(board, chess.White, "e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move, chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4)})
}

func TestResolveKnightMove(t *testing.T) {
	board := chess.NewInitialBoard()

	move, err := Resolve(board, chess.White, "Nf3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move, chess.Move{From: chess.Sq(7, 6), To: chess.Sq(5, 5)})
}

func TestResolveCastling(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		colour chess.Colour
		want   chess.Move
	}{
		{"white kingside", "O-O", chess.White, chess.Move{From: chess.Sq(7, 4), To: chess.Sq(7, 6)}},
		{"white queenside", "O-O-O", chess.White, chess.Move{From: chess.Sq(7, 4), To: chess.Sq(7, 2)}},
		{"black kingside", "O-O", chess.Black, chess.Move{From: chess.Sq(0, 4), To: chess.Sq(0, 6)}},
		{"black queenside", "O-O-O", chess.Black, chess.Move{From: chess.Sq(0, 4), To: chess.Sq(0, 2)}},
		{"zero digits accepted", "0-0", chess.White, chess.Move{From: chess.Sq(7, 4), To: chess.Sq(7, 6)}},
		{"with check marker", "O-O+", chess.White, chess.Move{From: chess.Sq(7, 4), To: chess.Sq(7, 6)}},
	}

	board := chess.NewInitialBoard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, err := Resolve(board, tt.colour, tt.token)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move, tt.want)
		})
	}
}

func TestResolveFileHint(t *testing.T) {
	// Knights on b1 and f1 both reach d2.
	board := testutil.BoardFromLines(t, []string{
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".N..KN..",
	})

	move, err := Resolve(board, chess.White, "Nbd2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(7, 1))
	testutil.AssertEqual(t, move.To, chess.Sq(6, 3))

	move, err = Resolve(board, chess.White, "Nfd2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(7, 5))
}

func TestResolveRankHint(t *testing.T) {
	// Rooks on a1 and a5 both reach a3.
	board := testutil.BoardFromLines(t, []string{
		"....k...",
		"........",
		"........",
		"R.......",
		"........",
		"........",
		"........",
		"R...K...",
	})

	move, err := Resolve(board, chess.White, "R1a3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(7, 0))

	move, err = Resolve(board, chess.White, "R5a3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(3, 0))
}

func TestResolveFullSquareHint(t *testing.T) {
	// Queens on a8, d1 and h5 all reach d5; only the full origin
	// square settles it.
	board := testutil.BoardFromLines(t, []string{
		"Q.......",
		"........",
		"........",
		".......Q",
		"........",
		"........",
		"........",
		"...QK..k",
	})

	move, err := Resolve(board, chess.White, "Qa8d5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(0, 0))
}

func TestResolveSelfCheckDisambiguation(t *testing.T) {
	// Knights on e6 and e2 both reach d4, but the e6 knight is pinned
	// against the king by the rook on e8.
	board := testutil.BoardFromLines(t, []string{
		"k...r...",
		"........",
		"....N...",
		"........",
		"....K...",
		"........",
		"....N...",
		"........",
	})

	move, err := Resolve(board, chess.White, "Nd4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(6, 4), "the pinned knight must be rejected")

	// The trial application must leave the board untouched.
	testutil.AssertEqual(t, board.At(chess.Sq(2, 4)), chess.W(chess.Knight))
	testutil.AssertEqual(t, board.At(chess.Sq(4, 3)), chess.Empty)
}

func TestResolveEnPassant(t *testing.T) {
	// After 1. e4 ... 2. e5 d5, white captures en passant with exd6.
	board := testutil.BoardFromLines(t, []string{
		"....k...",
		"........",
		"........",
		"...pP...",
		"........",
		"........",
		"........",
		"....K...",
	})

	move, err := Resolve(board, chess.White, "exd6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move, chess.Move{From: chess.Sq(3, 4), To: chess.Sq(2, 3)})

	Apply(board, chess.White, move)
	testutil.AssertEqual(t, board.At(chess.Sq(2, 3)), chess.W(chess.Pawn), "capturing pawn lands on d6")
	testutil.AssertEqual(t, board.At(chess.Sq(3, 3)), chess.Empty, "captured pawn leaves d5")
	testutil.AssertEqual(t, board.At(chess.Sq(3, 4)), chess.Empty, "origin square is cleared")
}

func TestResolvePromotion(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		".......k",
		"....P...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	})

	move, err := Resolve(board, chess.White, "e8=Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move, chess.Move{From: chess.Sq(1, 4), To: chess.Sq(0, 4), Promotion: chess.Queen})

	Apply(board, chess.White, move)
	testutil.AssertEqual(t, board.At(chess.Sq(0, 4)), chess.W(chess.Queen))
}

func TestResolveCaptureRequiresMarker(t *testing.T) {
	board := testutil.BoardFromLines(t, []string{
		"....k...",
		"........",
		"........",
		"........",
		"....n...",
		"........",
		"....R...",
		"....K...",
	})

	// The rook on e2 can only reach e4 by capturing.
	_, err := Resolve(board, chess.White, "Re4")
	testutil.AssertError(t, err, "capture written as a plain move")

	move, err := Resolve(board, chess.White, "Rxe4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.From, chess.Sq(6, 4))
}

func TestResolveCheckMarkersIgnored(t *testing.T) {
	board := chess.NewInitialBoard()

	for _, token := range []string{"e4", "e4+", "e4#"} {
		move, err := Resolve(board, chess.White, token)
		testutil.AssertNoError(t, err, "token %q", token)
		testutil.AssertEqual(t, move.To, chess.Sq(4, 4), "token %q", token)
	}
}

func TestResolveFailures(t *testing.T) {
	board := chess.NewInitialBoard()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"only check marker", "+"},
		{"garbage", "xyzzy"},
		{"unknown destination", "e9"},
		{"no piece can reach", "Nf6"},
		{"pawn cannot reach", "e6"},
		{"bad promotion piece", "e8=K"},
		{"promotion not at end", "e8=Qx"},
		{"capture marker misplaced", "Nxf3x"},
		{"single letter", "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(board, chess.White, tt.token)
			testutil.AssertError(t, err)
			testutil.AssertTrue(t, errors.Is(err, perrors.ErrDecodeFailure),
				"error should wrap the decode failure sentinel")
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	board := chess.NewInitialBoard()

	first, err1 := Resolve(board, chess.White, "Nf3")
	second, err2 := Resolve(board, chess.White, "Nf3")
	testutil.AssertNoError(t, err1)
	testutil.AssertNoError(t, err2)
	testutil.AssertEqual(t, first, second)

	_, err1 = Resolve(board, chess.White, "Nf6")
	_, err2 = Resolve(board, chess.White, "Nf6")
	testutil.AssertError(t, err1)
	testutil.AssertError(t, err2)

	// The board is untouched either way.
	testutil.AssertEqual(t, *board, *chess.NewInitialBoard())
}

func TestResolveErrorMentionsToken(t *testing.T) {
	board := chess.NewInitialBoard()

	_, err := Resolve(board, chess.White, "Qh5xx")
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), `"Qh5xx"`)
}
