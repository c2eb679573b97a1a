// Package parser reads PGN input and assembles game records: tag
// metadata plus clean SAN move tokens ready for the replay engine.
package parser

import "strings"

// CleanToken reduces one whitespace-delimited movetext field to a bare
// SAN token. Move-number prefixes ("1.", "12...", attached or alone)
// and trailing "!"/"?" annotation suffixes are removed. The empty
// string means the field carried no move at all.
func CleanToken(field string) string {
	s := field

	// Leading move number: digits followed by one or more dots.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && s[i] == '.' {
		s = s[i:]
	}
	for len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}

	// Trailing annotation glyphs.
	if i := strings.IndexAny(s, "!?"); i >= 0 {
		s = s[:i]
	}

	return s
}

// isNAG reports whether the field is a Numeric Annotation Glyph ($n).
func isNAG(field string) bool {
	return len(field) > 0 && field[0] == '$'
}
