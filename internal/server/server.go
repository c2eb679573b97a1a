// Package server exposes a loaded game library over HTTP and streams
// replays to websocket viewers.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/library"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
	"github.com/lgbarn/pgn-replay-go/internal/ws"
)

// Server serves the game library and replay streams.
type Server struct {
	cfg   *config.Config
	app   *fiber.App
	games map[string]*chess.GameRecord // by id
	order []string                     // ids in library order
	infos []ws.GameInfo
}

// New builds a server over the given library. Every game gets a stable
// id for the lifetime of the process.
func New(lib *library.Library, cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		games: make(map[string]*chess.GameRecord),
	}

	for _, game := range lib.Games() {
		id := uuid.NewString()
		s.games[id] = game
		s.order = append(s.order, id)
		s.infos = append(s.infos, ws.GameInfo{
			ID:     id,
			White:  game.White(),
			Black:  game.Black(),
			Year:   parser.YearFromDate(game.Date()),
			Result: game.Result(),
			Plies:  game.PlyCount(),
		})
	}

	s.app = fiber.New(fiber.Config{DisableStartupMessage: cfg.Verbosity == 0})
	s.routes()
	return s
}

// App returns the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) routes() {
	s.app.Get("/api/games", s.listGames)

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws/game/:gameId", websocket.New(s.streamGame))
}

// listGames returns the catalogue of loaded games.
func (s *Server) listGames(c *fiber.Ctx) error {
	return c.JSON(s.infos)
}

// lookup returns the record for a game id.
func (s *Server) lookup(id string) *chess.GameRecord {
	return s.games[id]
}
