package server

import (
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/pgn-replay-go/internal/playback"
	"github.com/lgbarn/pgn-replay-go/internal/ws"
)

// streamGame replays one game to one websocket viewer. Every
// connection owns its own session and board, so concurrent viewers
// never share replay state.
func (s *Server) streamGame(c *websocket.Conn) {
	defer c.Close()

	game := s.lookup(c.Params("gameId"))
	if game == nil {
		s.sendError(c, "unknown game id")
		return
	}

	session := playback.NewSession(game)

	info := ws.GameInfo{
		ID:     c.Params("gameId"),
		White:  game.White(),
		Black:  game.Black(),
		Result: game.Result(),
		Plies:  game.PlyCount(),
	}
	if err := s.send(c, ws.MessageTypeGameInfo, info); err != nil {
		return
	}
	if err := s.sendFrame(c, session); err != nil {
		return
	}

	// A single goroutine reads viewer commands so that all writes stay
	// on this goroutine.
	commands := make(chan ws.Message)
	go readCommands(c, commands)

	ticker := time.NewTicker(s.cfg.MoveDelay)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-commands:
			if !ok {
				return
			}
			s.handleCommand(session, msg)
			if err := s.sendFrame(c, session); err != nil {
				return
			}

		case <-ticker.C:
			if session.Paused() {
				continue
			}
			applied, err := session.Advance()
			if err != nil {
				s.cfg.Logf(0, "replay stopped: %v", err)
				s.sendError(c, err.Error())
			}
			if err := s.sendFrame(c, session); err != nil {
				return
			}
			if !applied && session.Done() {
				// Hold the final position, then end the stream.
				time.Sleep(s.cfg.EndPause)
				return
			}
		}
	}
}

// readCommands forwards viewer messages until the connection drops.
func readCommands(c *websocket.Conn, out chan<- ws.Message) {
	defer close(out)
	for {
		msgType, data, err := c.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		var msg ws.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		out <- msg
	}
}

// handleCommand applies one viewer command to the session.
func (s *Server) handleCommand(session *playback.Session, msg ws.Message) {
	switch msg.Type {
	case ws.MessageTypePause:
		if !session.Paused() {
			session.TogglePause()
		}
	case ws.MessageTypeResume:
		if session.Paused() {
			session.TogglePause()
		}
	case ws.MessageTypeSeek:
		var seek ws.Seek
		if err := json.Unmarshal(msg.Payload, &seek); err != nil {
			return
		}
		session.SeekTo(seek.Index)
	}
}

// sendFrame writes the current position to the viewer.
func (s *Server) sendFrame(c *websocket.Conn, session *playback.Session) error {
	whiteCheck, blackCheck := session.CheckStatus()
	frame := ws.Frame{
		Ply:        session.Index(),
		Plies:      session.Len(),
		Board:      ws.BoardGrid(session.Board()),
		WhiteCheck: whiteCheck,
		BlackCheck: blackCheck,
		Done:       session.Done(),
	}
	if session.Done() {
		frame.Result = session.Record().Result()
	}
	return s.send(c, ws.MessageTypeFrame, frame)
}

// send marshals and writes one message.
func (s *Server) send(c *websocket.Conn, msgType ws.MessageType, payload interface{}) error {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	return c.WriteJSON(msg)
}

// sendError reports a problem to the viewer; the connection stays up.
func (s *Server) sendError(c *websocket.Conn, text string) {
	msg, err := ws.NewMessage(ws.MessageTypeError, text)
	if err != nil {
		return
	}
	c.WriteJSON(msg)
}
