package parser

import "strings"

// ParseTagLine parses a PGN tag pair line of the form [Name "Value"].
// It returns false if the line is not a well-formed tag pair.
func ParseTagLine(line string) (name, value string, ok bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '[' {
		return "", "", false
	}

	open := strings.IndexByte(line, '"')
	if open < 0 {
		return "", "", false
	}
	close := strings.IndexByte(line[open+1:], '"')
	if close < 0 {
		return "", "", false
	}

	name = strings.TrimSpace(line[1:open])
	if name == "" {
		return "", "", false
	}
	return name, line[open+1 : open+1+close], true
}

// Surname extracts a display surname from a PGN player name. Names in
// "Surname, Forename" form yield the part before the comma; otherwise
// the last whitespace-separated word is used. An empty or blank input
// yields "".
func Surname(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}

	if comma := strings.IndexByte(full, ','); comma >= 0 {
		return strings.TrimSpace(full[:comma])
	}

	words := strings.Fields(full)
	return words[len(words)-1]
}

// YearFromDate extracts the four-digit year from a PGN date string
// ("1985.11.09" or "????.??.??"). It returns "" when the year is
// absent or unknown.
func YearFromDate(date string) string {
	if len(date) < 4 {
		return ""
	}
	for i := 0; i < 4; i++ {
		if date[i] < '0' || date[i] > '9' {
			return ""
		}
	}
	return date[:4]
}
