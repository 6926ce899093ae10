// Package parser converts SAN move text into structured move
// descriptors. Parsing is a pure function of the string: no board
// state is consulted, so a descriptor is a partial specification of
// intent that the resolver later binds to a unique legal move.
package parser

import (
	"strings"

	"github.com/lwhite/sanboard-go/internal/chess"
)

// Suffix is the trailing check or mate marker of a SAN token. It is
// advisory: recorded for optional verification, never required for a
// move to be accepted.
type Suffix int

const (
	NoSuffix Suffix = iota
	CheckSuffix
	MateSuffix
)

// String returns the SAN spelling of the suffix.
func (s Suffix) String() string {
	switch s {
	case CheckSuffix:
		return "+"
	case MateSuffix:
		return "#"
	default:
		return ""
	}
}

// Descriptor is a parsed SAN move before resolution against a board.
// Source hints are file/rank indices in [0, 7], or -1 when the
// notation omits them.
type Descriptor struct {
	// The kind of piece to move. Pawn when the notation has no piece
	// letter. King for castling.
	Piece chess.PieceKind

	// Disambiguation hints, -1 if absent.
	FromFile int
	FromRank int

	// Destination square. Unset for castling, where the destination is
	// implied by the castle side.
	Dest chess.Square

	// Whether the notation marked a capture. Informational: legality
	// is decided by the resolver, not by this flag.
	Capture bool

	// The piece kind promoted to, NoKind if none.
	Promotion chess.PieceKind

	// Which side this move castles to, if any.
	Castle chess.CastleSide

	// Trailing check/mate marker.
	Suffix Suffix
}

// String reconstructs a canonical SAN spelling of the descriptor.
func (d Descriptor) String() string {
	if d.Castle != chess.NoCastle {
		return d.Castle.String() + d.Suffix.String()
	}
	var sb strings.Builder
	if d.Piece != chess.Pawn {
		sb.WriteByte(d.Piece.Letter())
	}
	if d.FromFile >= 0 {
		sb.WriteByte(byte('a' + d.FromFile))
	}
	if d.FromRank >= 0 {
		sb.WriteByte(byte('1' + d.FromRank))
	}
	if d.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(d.Dest.String())
	if d.Promotion != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(d.Promotion.Letter())
	}
	sb.WriteString(d.Suffix.String())
	return sb.String()
}
