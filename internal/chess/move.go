package chess

// Move is a resolved move: an origin/destination square pair plus an
// optional promotion piece type. It is produced only by the SAN
// resolver and is immutable once produced. Whether the move is a
// capture, castle or en passant is re-derived from the board at apply
// time so the same fact is never stored twice.
type Move struct {
	From      Square
	To        Square
	Promotion Piece // Empty when the move is not a promotion
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8Q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter())
	}
	return s
}
