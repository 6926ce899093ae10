package parser

import (
	"github.com/lwhite/sanboard-go/internal/chess"
	"github.com/lwhite/sanboard-go/internal/errors"
)

// isFile returns true if c is a file letter 'a'-'h'.
func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a rank digit '1'-'8'.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isCastlingChar returns true if c starts a castling token.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isCheck returns true if c is a check or mate indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// Parse converts a SAN token into a move descriptor. It fails with
// ErrMalformedNotation when no destination square can be located, when
// promotion syntax is attached to a non-pawn move or a non-back-rank
// destination, or when unrecognized characters remain.
func Parse(text string) (Descriptor, error) {
	desc := Descriptor{
		Piece:    chess.Pawn,
		FromFile: -1,
		FromRank: -1,
	}

	if text == "" {
		return desc, errors.Wrap(errors.ErrMalformedNotation, "empty move text")
	}

	pos := 0
	currentChar := func() byte {
		if pos >= len(text) {
			return 0
		}
		return text[pos]
	}
	advance := func() {
		if pos < len(text) {
			pos++
		}
	}

	// Castling tokens short-circuit the rest of the grammar.
	if isCastlingChar(currentChar()) {
		return parseCastle(text)
	}

	// Optional leading piece letter; absence implies a pawn.
	if kind := chess.KindFromLetter(currentChar()); kind != chess.NoKind && kind != chess.Pawn {
		desc.Piece = kind
		advance()
	}

	// Up to one file and one rank before the destination. If no second
	// square follows, these are the destination itself; otherwise they
	// are disambiguation hints.
	file, rank := -1, -1
	if isFile(currentChar()) {
		file = int(currentChar() - 'a')
		advance()
	}
	if isRank(currentChar()) {
		rank = int(currentChar() - '1')
		advance()
	}
	if currentChar() == 'x' {
		desc.Capture = true
		advance()
	}

	if isFile(currentChar()) {
		desc.FromFile = file
		desc.FromRank = rank
		destFile := int(currentChar() - 'a')
		advance()
		if !isRank(currentChar()) {
			return desc, errors.Wrapf(errors.ErrMalformedNotation, "no destination square in %q", text)
		}
		desc.Dest = chess.Square{File: destFile, Rank: int(currentChar() - '1')}
		advance()
	} else if file >= 0 && rank >= 0 && !desc.Capture {
		desc.Dest = chess.Square{File: file, Rank: rank}
	} else {
		return desc, errors.Wrapf(errors.ErrMalformedNotation, "no destination square in %q", text)
	}

	// Optional promotion suffix.
	if currentChar() == '=' {
		advance()
		kind := chess.KindFromLetter(currentChar())
		if kind == chess.NoKind || kind == chess.Pawn || kind == chess.King {
			return desc, errors.Wrapf(errors.ErrMalformedNotation, "invalid promotion piece in %q", text)
		}
		if desc.Piece != chess.Pawn {
			return desc, errors.Wrapf(errors.ErrMalformedNotation, "promotion on non-pawn move %q", text)
		}
		if desc.Dest.Rank != 0 && desc.Dest.Rank != chess.BoardSize-1 {
			return desc, errors.Wrapf(errors.ErrMalformedNotation, "promotion on non-final rank in %q", text)
		}
		desc.Promotion = kind
		advance()
	}

	// Trailing check/mate markers are recorded, never required.
	for isCheck(currentChar()) {
		if currentChar() == '#' {
			desc.Suffix = MateSuffix
		} else if desc.Suffix == NoSuffix {
			desc.Suffix = CheckSuffix
		}
		advance()
	}

	if pos != len(text) {
		return desc, errors.Wrapf(errors.ErrMalformedNotation, "trailing %q in %q", text[pos:], text)
	}
	return desc, nil
}

// parseCastle parses "O-O" and "O-O-O" tokens, accepting zeros in
// place of the letter O and an optional check/mate marker.
func parseCastle(text string) (Descriptor, error) {
	desc := Descriptor{
		Piece:    chess.King,
		FromFile: -1,
		FromRank: -1,
	}

	rest := text
	consume := func() bool {
		if len(rest) >= 2 && rest[1] == '-' && isCastlingChar(rest[0]) {
			rest = rest[2:]
			return true
		}
		return false
	}

	if !consume() || len(rest) == 0 || !isCastlingChar(rest[0]) {
		return desc, errors.Wrapf(errors.ErrMalformedNotation, "bad castling token %q", text)
	}
	if consume() {
		if len(rest) == 0 || !isCastlingChar(rest[0]) {
			return desc, errors.Wrapf(errors.ErrMalformedNotation, "bad castling token %q", text)
		}
		desc.Castle = chess.Queenside
	} else {
		desc.Castle = chess.Kingside
	}
	rest = rest[1:]

	for len(rest) > 0 && isCheck(rest[0]) {
		if rest[0] == '#' {
			desc.Suffix = MateSuffix
		} else if desc.Suffix == NoSuffix {
			desc.Suffix = CheckSuffix
		}
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return desc, errors.Wrapf(errors.ErrMalformedNotation, "trailing %q in %q", rest, text)
	}
	return desc, nil
}
