// Package ws defines the websocket message envelope and payloads
// exchanged with replay viewers.
package ws

import (
	"encoding/json"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// MessageType represents the different kinds of messages the replay
// stream can carry.
type MessageType string

const (
	// Server to client.
	MessageTypeGameInfo MessageType = "gameInfo"
	MessageTypeFrame    MessageType = "frame"
	MessageTypeError    MessageType = "error"

	// Client to server.
	MessageTypePause  MessageType = "pause"
	MessageTypeResume MessageType = "resume"
	MessageTypeSeek   MessageType = "seek"
)

// Message is the envelope for every websocket message.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// GameInfo announces the game a stream will replay.
type GameInfo struct {
	ID     string `json:"id"`
	White  string `json:"white"`
	Black  string `json:"black"`
	Year   string `json:"year,omitempty"`
	Result string `json:"result,omitempty"`
	Plies  int    `json:"plies"`
}

// Frame is one replay position. Board rows run from rank 8 down to
// rank 1; each square holds a piece letter (uppercase white,
// lowercase black) or "" when empty.
type Frame struct {
	Ply        int        `json:"ply"`
	Plies      int        `json:"plies"`
	Board      [][]string `json:"board"`
	WhiteCheck bool       `json:"whiteCheck"`
	BlackCheck bool       `json:"blackCheck"`
	Done       bool       `json:"done"`
	Result     string     `json:"result,omitempty"`
}

// Seek asks the stream to jump to a ply index.
type Seek struct {
	Index int `json:"index"`
}

// BoardGrid converts a board to the wire representation.
func BoardGrid(board *chess.Board) [][]string {
	grid := make([][]string, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		grid[row] = make([]string, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			letter := chess.ExtractPiece(piece).Letter()
			if chess.ExtractColour(piece) == chess.Black {
				letter += 'a' - 'A'
			}
			grid[row][col] = string(letter)
		}
	}
	return grid
}

// NewMessage builds an envelope around a marshalled payload.
func NewMessage(msgType MessageType, payload interface{}) (Message, error) {
	if payload == nil {
		return Message{Type: msgType}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Payload: raw}, nil
}
