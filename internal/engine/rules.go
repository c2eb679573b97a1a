// Package engine provides SAN move decoding, validation and board
// manipulation for replaying recorded games.
package engine

import (
	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// IsValidMove reports whether the given coloured piece can move from
// one square to another under the stated capture intent. It reads the
// board but never mutates it, and it does not consider whether the
// move would leave the mover's own king in check; that is a separate,
// composed concern (see IsInCheck and Resolve).
//
// The capture-intent rule: a declared capture requires an enemy piece
// on the destination, or the en-passant special case for pawns; a
// declared non-capture requires an empty destination.
func IsValidMove(board *chess.Board, piece chess.Piece, from, to chess.Square, capture bool) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}

	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	dest := board.At(to)
	destEmpty := dest == chess.Empty
	destEnemy := !destEmpty && chess.ExtractColour(dest) != colour

	movementValid := false

	switch pieceType {
	case chess.Pawn:
		dir := chess.RowDirection(colour)
		if colDiff == 0 {
			// Pawn advance: never a capture, destination must be empty.
			if capture || !destEmpty {
				return false
			}
			if rowDiff == 1 && to.Row-from.Row == dir {
				movementValid = true
			} else if rowDiff == 2 && from.Row == pawnHomeRow(colour) && to.Row-from.Row == 2*dir {
				movementValid = pathClear(board, from, to)
			}
		} else if colDiff == 1 && rowDiff == 1 && to.Row-from.Row == dir {
			if capture && destEnemy {
				movementValid = true
			} else if capture && destEmpty {
				// En passant: the enemy pawn stands beside the origin,
				// on the destination file.
				if from.Row == enPassantRow(colour) {
					beside := board.At(chess.Sq(from.Row, to.Col))
					if beside == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
						movementValid = true
					}
				}
			}
		}

	case chess.Knight:
		movementValid = (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)

	case chess.Bishop:
		movementValid = rowDiff == colDiff && rowDiff > 0 && pathClear(board, from, to)

	case chess.Rook:
		movementValid = (rowDiff == 0 || colDiff == 0) && pathClear(board, from, to)

	case chess.Queen:
		movementValid = (rowDiff == colDiff || rowDiff == 0 || colDiff == 0) && pathClear(board, from, to)

	case chess.King:
		movementValid = rowDiff <= 1 && colDiff <= 1
	}

	if !movementValid {
		return false
	}

	if capture {
		// The en-passant case reaches here with an empty destination.
		return destEnemy || (pieceType == chess.Pawn && destEmpty)
	}
	return destEmpty
}

// pawnHomeRow returns the row a pawn double-steps from.
func pawnHomeRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.WhitePawnRow
	}
	return chess.BlackPawnRow
}

// enPassantRow returns the row a pawn must occupy to capture en passant.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.WhiteEnPassantRow
	}
	return chess.BlackEnPassantRow
}

// pathClear reports whether every square strictly between from and to
// is empty. Both endpoints are excluded. The squares must share a
// rank, file or diagonal.
func pathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	steps := abs(to.Row - from.Row)
	if rowDir == 0 {
		steps = abs(to.Col - from.Col)
	}

	for i := 1; i < steps; i++ {
		if board.Occupied(chess.Sq(from.Row+i*rowDir, from.Col+i*colDir)) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
