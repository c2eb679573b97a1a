package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	perrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Parser parses PGN input into GameRecord structures. It strips
// comments, variations and annotations so the engine only ever sees
// clean move tokens.
type Parser struct {
	scanner    *bufio.Scanner
	cfg        *config.Config
	sourceFile string
	lineNum    uint

	// Comment braces and variation parentheses may span lines.
	commentDepth   int
	variationDepth int
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Parser{scanner: scanner, cfg: cfg}
}

// SetSourceFile records the input file name for error reporting and
// game provenance.
func (p *Parser) SetSourceFile(name string) {
	p.sourceFile = name
}

// ParseAllGames reads the whole input and returns every game found.
func (p *Parser) ParseAllGames() ([]*chess.GameRecord, error) {
	var games []*chess.GameRecord
	var game *chess.GameRecord
	movesDone := false

	finish := func() {
		if game != nil && (len(game.Tags) > 0 || len(game.MoveTokens) > 0) {
			games = append(games, game)
		}
		game = nil
		movesDone = false
	}

	for p.scanner.Scan() {
		p.lineNum++
		line := p.scanner.Text()

		// PGN escape mechanism: lines starting with % are ignored.
		if p.commentDepth == 0 && strings.HasPrefix(line, "%") {
			continue
		}

		line = strings.TrimSpace(p.stripLine(line))
		if line == "" {
			continue
		}

		if p.commentDepth == 0 && line[0] == '[' {
			name, value, ok := ParseTagLine(line)
			if !ok {
				p.cfg.Logf(2, "malformed tag pair at line %d: %s", p.lineNum, line)
				continue
			}
			// A tag pair after movetext starts the next game.
			if game != nil && (len(game.MoveTokens) > 0 || movesDone) {
				finish()
			}
			if game == nil {
				game = p.newRecord()
			}
			game.SetTag(name, value)
			continue
		}

		for _, field := range strings.Fields(line) {
			if isNAG(field) {
				continue
			}
			token := CleanToken(field)
			if token == "" {
				continue
			}
			if game == nil {
				game = p.newRecord()
			}
			if chess.IsResultToken(token) {
				game.TerminatingResult = token
				movesDone = true
				continue
			}
			if !movesDone {
				game.MoveTokens = append(game.MoveTokens, token)
			}
		}
	}
	finish()

	if err := p.scanner.Err(); err != nil {
		return games, perrors.Wrap(perrors.ErrParseFailure, err.Error())
	}
	return games, nil
}

// newRecord starts a game record at the current input position.
func (p *Parser) newRecord() *chess.GameRecord {
	game := chess.NewGameRecord()
	game.SourceFile = p.sourceFile
	game.StartLine = p.lineNum
	return game
}

// stripLine removes brace comments, parenthesised variations and
// rest-of-line comments, tracking nesting across line boundaries.
func (p *Parser) stripLine(line string) string {
	var out strings.Builder
	out.Grow(len(line))

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '{':
			p.commentDepth++
		case c == '}':
			if p.commentDepth > 0 {
				p.commentDepth--
			}
			// Keep the neighbouring tokens apart.
			out.WriteByte(' ')
		case p.commentDepth > 0:
			// Inside a brace comment.
		case c == '(':
			p.variationDepth++
		case c == ')':
			if p.variationDepth > 0 {
				p.variationDepth--
			}
			out.WriteByte(' ')
		case p.variationDepth > 0:
			// Inside a variation.
		case c == ';':
			return out.String()
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}
