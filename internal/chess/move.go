package chess

import "strings"

// Move is a fully-resolved board transition. Moves are produced by the
// move generator and resolver and are immutable once created; applying
// one to a Board needs no further validation.
type Move struct {
	// Source and destination squares. For castling these are the
	// king's squares; the rook transfer is implied by Castle.
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this
	// is the pawn on the square passed over, not on To.
	Captured Piece

	// The piece kind promoted to (NoKind if not a promotion).
	Promotion PieceKind

	// Which side this move castles to, if any.
	Castle CastleSide

	// Whether this is an en passant capture.
	EnPassant bool
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String returns the move in long algebraic form, e.g. "e2e4",
// "e7e8=Q", or "O-O".
func (m Move) String() string {
	if m.Castle != NoCastle {
		return m.Castle.String()
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}
