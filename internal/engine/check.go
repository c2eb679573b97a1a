package engine

import "github.com/lgbarn/pgn-replay-go/internal/chess"

// IsInCheck returns true if the given colour's king is currently
// attacked. A board without that king reads as not in check: noisy
// game archives must degrade gracefully rather than crash the replay.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.Find(chess.MakeColouredPiece(colour, chess.King))
	if !ok {
		return false
	}

	enemy := colour.Opposite()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty || chess.ExtractColour(piece) != enemy {
				continue
			}
			// Capture intent onto the king's square reuses the move
			// geometry; for pawns this tests diagonal reach, which is
			// how pawns threaten rather than how they advance.
			if IsValidMove(board, piece, chess.Sq(row, col), kingSq, true) {
				return true
			}
		}
	}
	return false
}

// CheckStatus reports the check state of both kings, for highlighting
// at the display boundary.
func CheckStatus(board *chess.Board) (whiteInCheck, blackInCheck bool) {
	return IsInCheck(board, chess.White), IsInCheck(board, chess.Black)
}
