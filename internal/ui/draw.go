package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/playback"
)

// Each board square is drawn squareWidth cells wide and one cell high,
// which is roughly square in most terminal fonts.
const (
	squareWidth = 4
	boardLeft   = 4
	boardTop    = 2
)

// pieceRunes maps piece types to figurine runes, indexed by colour.
var pieceRunes = map[chess.Colour]map[chess.Piece]rune{
	chess.White: {
		chess.King: '♔', chess.Queen: '♕', chess.Rook: '♖',
		chess.Bishop: '♗', chess.Knight: '♘', chess.Pawn: '♙',
	},
	chess.Black: {
		chess.King: '♚', chess.Queen: '♛', chess.Rook: '♜',
		chess.Bishop: '♝', chess.Knight: '♞', chess.Pawn: '♟',
	},
}

var (
	lightSquare = tcell.StyleDefault.Background(tcell.NewRGBColor(210, 210, 210)).Foreground(tcell.ColorBlack)
	darkSquare  = tcell.StyleDefault.Background(tcell.NewRGBColor(150, 150, 150)).Foreground(tcell.ColorBlack)
	checkSquare = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 20, 20)).Foreground(tcell.ColorBlack)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// draw renders the whole frame: board, coordinates, player labels and
// status line.
func (v *Viewer) draw(session *playback.Session) {
	v.screen.Clear()

	board := session.Board()
	whiteCheck, blackCheck := session.CheckStatus()

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			style := squareStyle(board, sq, whiteCheck, blackCheck)

			x, y := v.squareOrigin(session, sq)
			for i := 0; i < squareWidth; i++ {
				v.screen.SetContent(x+i, y, ' ', nil, style)
			}
			if piece := board.At(sq); piece != chess.Empty {
				r := pieceRunes[chess.ExtractColour(piece)][chess.ExtractPiece(piece)]
				v.screen.SetContent(x+squareWidth/2-1, y, r, nil, style)
			}
		}
	}

	v.drawCoordinates(session)
	v.drawLabels(session)
	v.drawStatus(session)
	v.screen.Show()
}

// squareStyle picks the square colour, highlighting a king in check.
func squareStyle(board *chess.Board, sq chess.Square, whiteCheck, blackCheck bool) tcell.Style {
	piece := board.At(sq)
	if whiteCheck && piece == chess.W(chess.King) {
		return checkSquare
	}
	if blackCheck && piece == chess.B(chess.King) {
		return checkSquare
	}
	if (sq.Row+sq.Col)%2 == 0 {
		return lightSquare
	}
	return darkSquare
}

// squareOrigin maps a board square to its top-left screen cell,
// honouring the session's orientation.
func (v *Viewer) squareOrigin(session *playback.Session, sq chess.Square) (int, int) {
	drawRow, drawCol := sq.Row, sq.Col
	if !session.ViewFromWhite() {
		drawRow = chess.BoardSize - 1 - sq.Row
		drawCol = chess.BoardSize - 1 - sq.Col
	}
	return boardLeft + drawCol*squareWidth, boardTop + drawRow
}

// drawCoordinates writes the file letters and rank digits around the
// board edge.
func (v *Viewer) drawCoordinates(session *playback.Session) {
	for i := 0; i < chess.BoardSize; i++ {
		file := byte('a' + i)
		rank := byte('8' - i)
		if !session.ViewFromWhite() {
			file = byte('h' - i)
			rank = byte('1' + i)
		}
		v.setText(boardLeft+i*squareWidth+squareWidth/2-1, boardTop+chess.BoardSize, string(file), dimStyle)
		v.setText(boardLeft-2, boardTop+i, string(rank), dimStyle)
	}
}

// drawLabels writes the player names beside the board, top name being
// the side furthest from the viewer.
func (v *Viewer) drawLabels(session *playback.Session) {
	x := boardLeft + chess.BoardSize*squareWidth + 3

	top, bottom := session.BlackLabel(), session.WhiteLabel()
	if !session.ViewFromWhite() {
		top, bottom = bottom, top
	}

	v.setText(x, boardTop, top, labelStyle)
	v.setText(x, boardTop+chess.BoardSize-1, bottom, labelStyle)

	if year := session.Year(); year != "" {
		v.setText(x, boardTop+chess.BoardSize/2, year, dimStyle)
	}
}

// drawStatus writes the progress and pause indicator under the board.
func (v *Viewer) drawStatus(session *playback.Session) {
	status := fmt.Sprintf("move %d/%d", session.Index(), session.Len())
	if session.Paused() {
		status += "  [paused]"
	}
	if session.Done() {
		if result := session.Record().Result(); result != "" {
			status += "  " + result
		}
	}
	v.setText(boardLeft, boardTop+chess.BoardSize+2, status, labelStyle)
}

// setText writes a string starting at the given cell.
func (v *Viewer) setText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
