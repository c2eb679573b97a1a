// Package playback drives the replay of one game record for a
// presentation layer: stepwise advance, pause, seeking and the final
// verdict. All state transitions are synchronous; timing is owned by
// the caller.
package playback

import (
	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// Verdict is the game outcome as recorded in the source notation.
type Verdict int

const (
	NoVerdict Verdict = iota
	WhiteWins
	BlackWins
	Draw
)

// VerdictFromResult maps a PGN result string to a Verdict.
func VerdictFromResult(result string) Verdict {
	switch result {
	case chess.ResultWhiteWin:
		return WhiteWins
	case chess.ResultBlackWin:
		return BlackWins
	case chess.ResultDraw:
		return Draw
	}
	return NoVerdict
}

// Session replays a single game record. Exactly one board is live per
// session and it is never shared; a new session starts from the
// standard position.
type Session struct {
	record *chess.GameRecord
	board  *chess.Board
	index  int // plies applied so far

	// Set once a token fails to decode; the replay never advances
	// past the failure, only seeks back before it.
	stopped   bool
	failedPly int

	paused  bool
	flipped bool
}

// NewSession starts a replay of the given record from the initial
// position.
func NewSession(record *chess.GameRecord) *Session {
	return &Session{
		record: record,
		board:  chess.NewInitialBoard(),
	}
}

// Record returns the game record being replayed.
func (s *Session) Record() *chess.GameRecord {
	return s.record
}

// Board returns the current position. Callers must treat it as
// read-only.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Index returns the number of plies applied so far.
func (s *Session) Index() int {
	return s.index
}

// Len returns the total number of move tokens in the record.
func (s *Session) Len() int {
	return s.record.PlyCount()
}

// Done reports whether the replay can advance no further, either
// because the record is exhausted or a token failed to decode.
func (s *Session) Done() bool {
	return s.index >= s.Len() || (s.stopped && s.index >= s.failedPly)
}

// Advance decodes and applies the next move token in place. It returns
// whether a move was applied, and a non-nil error exactly once when a
// token fails to decode. The board is left at the last good position.
func (s *Session) Advance() (bool, error) {
	if s.Done() {
		return false, nil
	}

	token := s.record.MoveTokens[s.index]
	colour := engine.SideToMove(s.index)

	move, err := engine.Resolve(s.board, colour, token)
	if err != nil {
		s.stopped = true
		s.failedPly = s.index
		return false, &perrors.GameError{
			Err:      err,
			PlyNum:   s.index + 1,
			MoveText: token,
			File:     s.record.SourceFile,
		}
	}

	engine.Apply(s.board, colour, move)
	s.index++
	return true, nil
}

// SeekTo rebuilds the position after the first index tokens, clamping
// to the valid range. Seeking before a previously failed token makes
// the session playable again up to that failure.
func (s *Session) SeekTo(index int) {
	if index < 0 {
		index = 0
	}
	if index > s.Len() {
		index = s.Len()
	}

	board, applied, _ := engine.ReplayToIndex(s.record.MoveTokens, index)
	s.board = board
	s.index = applied
}

// StepBack seeks one ply backwards.
func (s *Session) StepBack() {
	s.SeekTo(s.index - 1)
}

// StepForward seeks one ply forwards.
func (s *Session) StepForward() {
	s.SeekTo(s.index + 1)
}

// SideToMove returns the colour to move at the current position.
func (s *Session) SideToMove() chess.Colour {
	return engine.SideToMove(s.index)
}

// CheckStatus reports which kings are currently in check, for
// highlighting.
func (s *Session) CheckStatus() (whiteInCheck, blackInCheck bool) {
	return engine.CheckStatus(s.board)
}

// Verdict returns the recorded outcome of the game.
func (s *Session) Verdict() Verdict {
	return VerdictFromResult(s.record.Result())
}

// Paused reports whether playback is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// TogglePause flips the paused state and returns the new value.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// ViewFromWhite reports the board orientation.
func (s *Session) ViewFromWhite() bool {
	return !s.flipped
}

// Flip toggles the board orientation.
func (s *Session) Flip() {
	s.flipped = !s.flipped
}

// SetViewFromWhite sets the board orientation.
func (s *Session) SetViewFromWhite(fromWhite bool) {
	s.flipped = !fromWhite
}

// WhiteLabel returns the display name for the white player, preferring
// the surname.
func (s *Session) WhiteLabel() string {
	return displayName(s.record.White())
}

// BlackLabel returns the display name for the black player.
func (s *Session) BlackLabel() string {
	return displayName(s.record.Black())
}

// Year returns the four-digit year of the game, or "".
func (s *Session) Year() string {
	return parser.YearFromDate(s.record.Date())
}

func displayName(full string) string {
	if surname := parser.Surname(full); surname != "" {
		return surname
	}
	return full
}
