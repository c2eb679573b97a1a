package engine

import "github.com/lgbarn/pgn-replay-go/internal/chess"

// Apply commits an already-resolved move to the board in place,
// handling the three special cases: en-passant pawn removal, promotion
// substitution and the castling rook transfer. No validation happens
// here; by contract only resolver-produced moves are passed in, which
// keeps these mechanical steps directly testable with arbitrary moves.
func Apply(board *chess.Board, colour chess.Colour, move chess.Move) {
	piece := board.At(move.From)
	pieceType := chess.ExtractPiece(piece)

	// A pawn moving diagonally onto an empty square is an en-passant
	// capture: the captured pawn sits one rank behind the destination,
	// from the mover's perspective.
	if pieceType == chess.Pawn && move.From.Col != move.To.Col && !board.Occupied(move.To) {
		board.Clear(chess.Sq(move.To.Row-chess.RowDirection(colour), move.To.Col))
	}

	if move.IsPromotion() {
		board.Put(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		board.Put(move.To, piece)
	}
	board.Clear(move.From)

	// A king moving two files is a castle: relocate the rook from its
	// home corner to the square the king crossed.
	if pieceType == chess.King && abs(move.To.Col-move.From.Col) == 2 {
		rookFromCol, rookToCol := 0, 3
		if move.To.Col > move.From.Col {
			rookFromCol, rookToCol = chess.BoardSize-1, 5
		}
		board.Put(chess.Sq(move.From.Row, rookToCol), chess.MakeColouredPiece(colour, chess.Rook))
		board.Clear(chess.Sq(move.From.Row, rookFromCol))
	}
}
