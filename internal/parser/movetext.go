package parser

import "strings"

// Game-result tokens that terminate a movetext section. They are not
// moves and are skipped by callers.
var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// IsResultToken reports whether the token is a game-result marker.
func IsResultToken(tok string) bool {
	return resultTokens[tok]
}

// StripMoveNumber removes a leading move-number prefix of the form
// "<digits>." from a movetext token, e.g. "1.e4" becomes "e4" and
// "3...Nf6" becomes "Nf6". Anything preceding the first '.' is
// discarded. A token with no '.' is returned unchanged; the result may
// be empty (a bare "12." token), which callers skip rather than treat
// as a move.
func StripMoveNumber(tok string) string {
	i := strings.IndexByte(tok, '.')
	if i < 0 {
		return tok
	}
	tok = tok[i+1:]
	for len(tok) > 0 && tok[0] == '.' {
		tok = tok[1:]
	}
	return tok
}
