package chess

import "testing"

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		// White back rank
		{"white rook a1", Sq(7, 0), W(Rook)},
		{"white knight b1", Sq(7, 1), W(Knight)},
		{"white bishop c1", Sq(7, 2), W(Bishop)},
		{"white queen d1", Sq(7, 3), W(Queen)},
		{"white king e1", Sq(7, 4), W(King)},
		{"white bishop f1", Sq(7, 5), W(Bishop)},
		{"white knight g1", Sq(7, 6), W(Knight)},
		{"white rook h1", Sq(7, 7), W(Rook)},
		// White pawns
		{"white pawn a2", Sq(6, 0), W(Pawn)},
		{"white pawn e2", Sq(6, 4), W(Pawn)},
		{"white pawn h2", Sq(6, 7), W(Pawn)},
		// Black pawns
		{"black pawn a7", Sq(1, 0), B(Pawn)},
		{"black pawn e7", Sq(1, 4), B(Pawn)},
		{"black pawn h7", Sq(1, 7), B(Pawn)},
		// Black back rank
		{"black rook a8", Sq(0, 0), B(Rook)},
		{"black knight b8", Sq(0, 1), B(Knight)},
		{"black queen d8", Sq(0, 3), B(Queen)},
		{"black king e8", Sq(0, 4), B(King)},
		{"black rook h8", Sq(0, 7), B(Rook)},
		// Empty middle
		{"empty e3", Sq(5, 4), Empty},
		{"empty d4", Sq(4, 3), Empty},
		{"empty f5", Sq(3, 5), Empty},
		{"empty c6", Sq(2, 2), Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(tt.sq); got != tt.piece {
				t.Errorf("At(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}
}

func TestBoardAtOffBoard(t *testing.T) {
	b := NewInitialBoard()

	for _, sq := range []Square{Sq(-1, 0), Sq(8, 0), Sq(0, -1), Sq(0, 8)} {
		if got := b.At(sq); got != Empty {
			t.Errorf("At(%v) = %v; want Empty", sq, got)
		}
	}
}

func TestBoardPutAndClear(t *testing.T) {
	b := NewBoard()
	sq := Sq(4, 4)

	b.Put(sq, W(Queen))
	if got := b.At(sq); got != W(Queen) {
		t.Errorf("At(%v) after Put = %v; want white queen", sq, got)
	}
	if !b.Occupied(sq) {
		t.Error("Occupied = false after Put")
	}

	b.Clear(sq)
	if b.Occupied(sq) {
		t.Error("Occupied = true after Clear")
	}

	// Off-board writes are ignored rather than panicking.
	b.Put(Sq(-1, 9), W(Rook))
}

func TestBoardFind(t *testing.T) {
	b := NewInitialBoard()

	sq, ok := b.Find(W(King))
	if !ok || sq != Sq(7, 4) {
		t.Errorf("Find(white king) = %v, %v; want e1, true", sq, ok)
	}

	sq, ok = b.Find(B(King))
	if !ok || sq != Sq(0, 4) {
		t.Errorf("Find(black king) = %v, %v; want e8, true", sq, ok)
	}

	empty := NewBoard()
	if _, ok := empty.Find(W(King)); ok {
		t.Error("Find on empty board = true; want false")
	}
}

func TestBoardSaveRestore(t *testing.T) {
	b := NewInitialBoard()
	snapshot := b.Save()

	b.Clear(Sq(6, 4))
	b.Put(Sq(4, 4), W(Pawn))
	if b.At(Sq(6, 4)) != Empty {
		t.Fatal("mutation did not take")
	}

	b.Restore(snapshot)
	if got := b.At(Sq(6, 4)); got != W(Pawn) {
		t.Errorf("At(e2) after Restore = %v; want white pawn", got)
	}
	if got := b.At(Sq(4, 4)); got != Empty {
		t.Errorf("At(e4) after Restore = %v; want Empty", got)
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Clear(Sq(6, 4))
	if b.At(Sq(6, 4)) != W(Pawn) {
		t.Error("mutating the copy changed the original")
	}
}
