package chess

// Board is the 8x8 grid of piece codes. Row 0 is the eighth rank.
// A Board is owned by exactly one replay at a time and is mutated
// only through the engine's move applier.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition resets the board to the standard chess starting
// arrangement.
func (b *Board) SetupInitialPosition() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Empty
		}
	}

	backRow := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackBackRow][col] = B(backRow[col])
		b.Squares[BlackPawnRow][col] = B(Pawn)
		b.Squares[WhitePawnRow][col] = W(Pawn)
		b.Squares[WhiteBackRow][col] = W(backRow[col])
	}
}

// At returns the piece on the given square. Off-board squares read as Empty.
func (b *Board) At(s Square) Piece {
	if !s.InBounds() {
		return Empty
	}
	return b.Squares[s.Row][s.Col]
}

// Put places a piece on the given square. Off-board squares are ignored.
func (b *Board) Put(s Square, piece Piece) {
	if s.InBounds() {
		b.Squares[s.Row][s.Col] = piece
	}
}

// Clear empties the given square.
func (b *Board) Clear(s Square) {
	b.Put(s, Empty)
}

// Occupied reports whether the square holds a piece.
func (b *Board) Occupied(s Square) bool {
	return b.At(s) != Empty
}

// Find returns the square of the first piece equal to the given coloured
// piece, scanning from row 0. The second return value is false if the
// piece is not on the board.
func (b *Board) Find(colouredPiece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == colouredPiece {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Snapshot captures the full board state. The fixed-size value copy is
// cheap enough that trial moves snapshot the whole board rather than
// maintaining an undo log.
type Snapshot struct {
	Squares [BoardSize][BoardSize]Piece
}

// Save captures the current board state for later restoration.
func (b *Board) Save() Snapshot {
	return Snapshot{Squares: b.Squares}
}

// Restore returns the board to a previously saved state.
func (b *Board) Restore(s Snapshot) {
	b.Squares = s.Squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	return nb
}
