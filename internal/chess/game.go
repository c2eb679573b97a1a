package chess

import (
	"sort"

	"golang.org/x/exp/maps"
)

// GameRecord is one recorded game as assembled by the PGN loader:
// an ordered sequence of clean SAN move tokens plus the tag metadata.
// A record is built once per loaded game and read-only thereafter.
type GameRecord struct {
	// Tags for this game (e.g. Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// MoveTokens holds the SAN tokens in play order, free of move
	// numbers, comments, variations and annotation glyphs.
	MoveTokens []string

	// TerminatingResult is the result token that ended the movetext
	// ("1-0", "0-1", "1/2-1/2" or "*"), or "" if none was seen.
	TerminatingResult string

	// Source location, for error reporting.
	SourceFile string
	StartLine  uint
}

// NewGameRecord creates an empty game record.
func NewGameRecord() *GameRecord {
	return &GameRecord{Tags: make(map[string]string)}
}

// GetTag returns a tag value, or empty string if not present.
func (g *GameRecord) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *GameRecord) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// TagNames returns the tag names in sorted order.
func (g *GameRecord) TagNames() []string {
	names := maps.Keys(g.Tags)
	sort.Strings(names)
	return names
}

// White returns the White player name, defaulting to "White".
func (g *GameRecord) White() string {
	if v := g.GetTag("White"); v != "" {
		return v
	}
	return "White"
}

// Black returns the Black player name, defaulting to "Black".
func (g *GameRecord) Black() string {
	if v := g.GetTag("Black"); v != "" {
		return v
	}
	return "Black"
}

// Date returns the Date tag value.
func (g *GameRecord) Date() string {
	return g.GetTag("Date")
}

// Result returns the game result. The movetext terminator wins over
// the Result tag when both are present.
func (g *GameRecord) Result() string {
	if g.TerminatingResult != "" {
		return g.TerminatingResult
	}
	return g.GetTag("Result")
}

// PlyCount returns the number of recorded move tokens.
func (g *GameRecord) PlyCount() int {
	return len(g.MoveTokens)
}
