// Package chess provides the core chess types and board operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a piece type, or a coloured piece once combined
// with a Colour via MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter returns the piece type for an uppercase SAN letter,
// or Empty if the letter names no piece.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	}
	return Empty
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Square identifies a board square as a (row, column) pair.
// Row 0 is the eighth rank and row 7 is the first rank; column 0 is
// the a-file. The inversion matches how PGN diagrams read top-down.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for constructing a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// SquareFromAlgebraic converts a file letter and rank digit to a Square.
// The second return value is false if either character is out of range.
func SquareFromAlgebraic(file, rank byte) (Square, bool) {
	s := Square{Row: int('8' - rank), Col: int(file - 'a')}
	return s, s.InBounds()
}

// RowDirection returns the row delta of a single pawn step for the
// given colour: -1 for White (towards row 0), +1 for Black.
func RowDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Rows with fixed chess meaning under the row-0-is-rank-8 convention.
const (
	BlackBackRow      = 0 // rank 8
	BlackPawnRow      = 1 // rank 7
	WhiteEnPassantRow = 3 // rank 5, where a white pawn stands to capture en passant
	BlackEnPassantRow = 4 // rank 4
	WhitePawnRow      = 6 // rank 2
	WhiteBackRow      = 7 // rank 1
)

// Game result strings as they appear in PGN movetext.
const (
	ResultWhiteWin = "1-0"
	ResultBlackWin = "0-1"
	ResultDraw     = "1/2-1/2"
	ResultUnknown  = "*"
)

// IsResultToken reports whether the token terminates a movetext section.
func IsResultToken(token string) bool {
	switch token {
	case ResultWhiteWin, ResultBlackWin, ResultDraw, ResultUnknown:
		return true
	}
	return false
}
