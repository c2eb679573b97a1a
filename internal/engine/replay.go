package engine

import (
	"github.com/lgbarn/pgn-replay-go/internal/chess"
	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

// ReplayToIndex rebuilds the position reached after the first index
// tokens of a game, starting from the standard initial position with
// White to move. It returns the board, the number of tokens actually
// applied, and the decode error that stopped the replay early, if any.
// The failing token is never applied; the board is left at the last
// good position.
//
// Seeking rebuilds from scratch every time. The decode is cheap
// relative to any human-visible time step, and rebuilding avoids
// maintaining a reversible move history.
func ReplayToIndex(tokens []string, index int) (*chess.Board, int, error) {
	board := chess.NewInitialBoard()

	limit := index
	if limit > len(tokens) {
		limit = len(tokens)
	}

	colour := chess.White
	for i := 0; i < limit; i++ {
		move, err := Resolve(board, colour, tokens[i])
		if err != nil {
			return board, i, &perrors.GameError{Err: err, PlyNum: i + 1, MoveText: tokens[i]}
		}
		Apply(board, colour, move)
		colour = colour.Opposite()
	}
	return board, limit, nil
}

// Replay replays the whole token sequence.
func Replay(tokens []string) (*chess.Board, int, error) {
	return ReplayToIndex(tokens, len(tokens))
}

// SideToMove returns the colour to move after ply tokens have been
// applied from the initial position.
func SideToMove(ply int) chess.Colour {
	if ply%2 == 0 {
		return chess.White
	}
	return chess.Black
}
