package engine

import (
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

// sanParts is a SAN token split into its grammatical pieces:
// <piece-letter>?<hint>?x?<file><rank><promotion>? after the trailing
// check markers have been stripped.
type sanParts struct {
	pieceType chess.Piece
	to        chess.Square
	capture   bool
	promotion chess.Piece

	// Disambiguation hint; -1 means unconstrained.
	hintRow int
	hintCol int
}

// Resolve decodes one SAN token into a concrete Move for the side to
// move. It is a pure function of (token, colour, board): the board is
// read, and trial-applied during disambiguation, but always restored
// before returning, on success and failure alike.
//
// Castling tokens resolve to the fixed king move without re-validating
// castling legality (rook present, path clear, not crossing check);
// the notation of an already-played game is trusted on this point.
func Resolve(board *chess.Board, colour chess.Colour, token string) (chess.Move, error) {
	clean := strings.TrimRight(token, "+#")
	if clean == "" {
		return chess.Move{}, decodeError(token)
	}

	if move, ok := castlingMove(clean, colour); ok {
		return move, nil
	}

	parts, ok := splitSAN(clean)
	if !ok {
		return chess.Move{}, decodeError(token)
	}

	candidates := findCandidates(board, colour, parts)

	switch {
	case len(candidates) == 0:
		return chess.Move{}, decodeError(token)
	case len(candidates) == 1:
		return chess.Move{From: candidates[0], To: parts.to, Promotion: parts.promotion}, nil
	}

	// Ambiguous notation: several pseudo-legal origins remain. Accept
	// the first candidate that does not leave its own king in check.
	// This is a one-ply legality filter, not a legal-move generator.
	for _, from := range candidates {
		move := chess.Move{From: from, To: parts.to, Promotion: parts.promotion}
		snapshot := board.Save()
		Apply(board, colour, move)
		selfCheck := IsInCheck(board, colour)
		board.Restore(snapshot)
		if !selfCheck {
			return move, nil
		}
	}

	return chess.Move{}, decodeError(token)
}

// castlingMove returns the fixed king move for a castling literal.
func castlingMove(clean string, colour chess.Colour) (chess.Move, bool) {
	homeRow := chess.WhiteBackRow
	if colour == chess.Black {
		homeRow = chess.BlackBackRow
	}

	switch clean {
	case "O-O", "0-0":
		return chess.Move{From: chess.Sq(homeRow, 4), To: chess.Sq(homeRow, 6)}, true
	case "O-O-O", "0-0-0":
		return chess.Move{From: chess.Sq(homeRow, 4), To: chess.Sq(homeRow, 2)}, true
	}
	return chess.Move{}, false
}

// splitSAN breaks a cleaned token into its parts. It returns false for
// anything outside the supported grammar.
func splitSAN(clean string) (sanParts, bool) {
	parts := sanParts{hintRow: -1, hintCol: -1}

	// Promotion suffix: "=X" with X one of QRBN.
	if i := strings.IndexByte(clean, '='); i >= 0 {
		if i != len(clean)-2 {
			return parts, false
		}
		switch promo := chess.PieceFromLetter(clean[i+1]); promo {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
			parts.promotion = promo
		default:
			return parts, false
		}
		clean = clean[:i]
	}

	if len(clean) < 2 {
		return parts, false
	}

	// The last two characters are the destination file and rank.
	to, ok := chess.SquareFromAlgebraic(clean[len(clean)-2], clean[len(clean)-1])
	if !ok {
		return parts, false
	}
	parts.to = to

	body := clean[:len(clean)-2]

	// Optional leading piece letter; absence means pawn.
	parts.pieceType = chess.Pawn
	if len(body) > 0 {
		switch piece := chess.PieceFromLetter(body[0]); piece {
		case chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King:
			parts.pieceType = piece
			body = body[1:]
		}
	}

	// Optional capture marker splits the hint from the destination.
	if i := strings.IndexByte(body, 'x'); i >= 0 {
		if i != len(body)-1 {
			return parts, false
		}
		parts.capture = true
		body = body[:i]
	}

	return parts, parseHint(body, &parts)
}

// parseHint interprets the disambiguation hint: empty, a lone file
// letter, a lone rank digit, or file then rank.
func parseHint(hint string, parts *sanParts) bool {
	switch len(hint) {
	case 0:
		return true
	case 1:
		if hint[0] >= 'a' && hint[0] <= 'h' {
			parts.hintCol = int(hint[0] - 'a')
			return true
		}
		if hint[0] >= '1' && hint[0] <= '8' {
			parts.hintRow = int('8' - hint[0])
			return true
		}
		return false
	case 2:
		if hint[0] < 'a' || hint[0] > 'h' || hint[1] < '1' || hint[1] > '8' {
			return false
		}
		parts.hintCol = int(hint[0] - 'a')
		parts.hintRow = int('8' - hint[1])
		return true
	}
	return false
}

// findCandidates enumerates every origin square holding a piece of the
// resolved type and colour that satisfies the hint and has a valid
// move to the destination under the detected capture intent.
func findCandidates(board *chess.Board, colour chess.Colour, parts sanParts) []chess.Square {
	target := chess.MakeColouredPiece(colour, parts.pieceType)

	var candidates []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] != target {
				continue
			}
			if parts.hintRow >= 0 && row != parts.hintRow {
				continue
			}
			if parts.hintCol >= 0 && col != parts.hintCol {
				continue
			}
			from := chess.Sq(row, col)
			if IsValidMove(board, target, from, parts.to, parts.capture) {
				candidates = append(candidates, from)
			}
		}
	}
	return candidates
}

func decodeError(token string) error {
	return perrors.Wrapf(perrors.ErrDecodeFailure, "%q", token)
}
