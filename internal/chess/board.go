package chess

import (
	"fmt"
	"strings"

	"github.com/lwhite/sanboard-go/internal/errors"
)

// Board is the authoritative game state: piece placement, side to
// move, castling rights, en passant target, and move counters.
//
// Board performs no legality checking of its own. Apply executes any
// Move unconditionally; legality is the move generator's and
// resolver's responsibility.
type Board struct {
	// Flat placement array addressed by Square.Index().
	squares [BoardSize * BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights. Revoked permanently once the king or the
	// corresponding rook leaves its home square, or the rook is
	// captured; never restored.
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool

	// Is an en passant capture possible? If so, EPSquare is the square
	// passed over by the last double pawn advance.
	EnPassant bool
	EPSquare  Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black's move.
	FullmoveNumber uint

	// King positions, kept current for check detection.
	whiteKing Square
	blackKing Square
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:         White,
		FullmoveNumber: 1,
	}
}

// NewInitialBoard creates a board with the standard starting position:
// White to move, all four castling rights, no en passant target,
// halfmove clock 0, fullmove number 1.
func NewInitialBoard() *Board {
	b := NewBoard()
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.SetPiece(Square{File: file, Rank: 0}, W(backRank[file]))
		b.SetPiece(Square{File: file, Rank: 1}, W(Pawn))
		b.SetPiece(Square{File: file, Rank: 6}, B(Pawn))
		b.SetPiece(Square{File: file, Rank: 7}, B(backRank[file]))
	}
	b.WhiteKingside = true
	b.WhiteQueenside = true
	b.BlackKingside = true
	b.BlackQueenside = true
	return b
}

// PieceAt returns the piece at the given square, or NoPiece. Off-board
// squares read as NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.Index()]
}

// SetPiece places a piece on a square, tracking king positions.
// Off-board squares are ignored.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq.Index()] = p
	if p.Kind == King {
		if p.Colour == White {
			b.whiteKing = sq
		} else {
			b.blackKing = sq
		}
	}
}

// King returns the square of the given colour's king.
func (b *Board) King(c Colour) Square {
	if c == White {
		return b.whiteKing
	}
	return b.blackKing
}

// Move relocates the piece on from to to without any legality
// checking; callers are expected to have validated the move
// themselves. The captured piece, if any, is returned. The side to
// move, rights, and counters are untouched. The only errors are an
// off-board coordinate or an empty source square.
func (b *Board) Move(from, to Square) (Piece, error) {
	if !from.Valid() {
		return NoPiece, fmt.Errorf("source %d,%d: %w", from.File, from.Rank, errors.ErrInvalidSquare)
	}
	if !to.Valid() {
		return NoPiece, fmt.Errorf("destination %d,%d: %w", to.File, to.Rank, errors.ErrInvalidSquare)
	}
	piece := b.PieceAt(from)
	if piece.IsEmpty() {
		return NoPiece, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", from)
	}
	captured := b.PieceAt(to)
	b.SetPiece(from, NoPiece)
	b.SetPiece(to, piece)
	return captured, nil
}

// Apply executes a concrete move unconditionally, updating placement,
// castling rights, the en passant target, both counters, and the side
// to move.
func (b *Board) Apply(m Move) {
	mover := m.Piece.Colour

	// Remove the captured piece first. En passant captures a pawn that
	// is not on the destination square but on the square passed over.
	if m.EnPassant {
		b.SetPiece(Square{File: m.To.File, Rank: m.From.Rank}, NoPiece)
	}

	b.SetPiece(m.From, NoPiece)
	if m.IsPromotion() {
		b.SetPiece(m.To, Piece{Kind: m.Promotion, Colour: mover})
	} else {
		b.SetPiece(m.To, m.Piece)
	}

	// Transfer the rook on castling.
	if m.Castle != NoCastle {
		rank := m.From.Rank
		if m.Castle == Kingside {
			b.SetPiece(Square{File: 7, Rank: rank}, NoPiece)
			b.SetPiece(Square{File: 5, Rank: rank}, Piece{Kind: Rook, Colour: mover})
		} else {
			b.SetPiece(Square{File: 0, Rank: rank}, NoPiece)
			b.SetPiece(Square{File: 3, Rank: rank}, Piece{Kind: Rook, Colour: mover})
		}
	}

	// Rights are revoked when the king or a rook leaves its home
	// square, and when a rook is captured on its home square.
	if m.Piece.Kind == King {
		if mover == White {
			b.WhiteKingside = false
			b.WhiteQueenside = false
		} else {
			b.BlackKingside = false
			b.BlackQueenside = false
		}
	}
	if m.Piece.Kind == Rook {
		b.revokeRookRight(mover, m.From)
	}
	if m.Captured.Kind == Rook {
		b.revokeRookRight(m.Captured.Colour, m.To)
	}

	// The en passant target exists only for the half-move immediately
	// following a double pawn advance.
	b.EnPassant = false
	if m.Piece.Kind == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		b.EnPassant = true
		b.EPSquare = Square{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	if m.Piece.Kind == Pawn || m.IsCapture() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if mover == Black {
		b.FullmoveNumber++
	}
	b.ToMove = mover.Opposite()
}

// revokeRookRight clears the castling right tied to a rook home square.
func (b *Board) revokeRookRight(colour Colour, sq Square) {
	switch {
	case colour == White && sq.Rank == 0 && sq.File == 7:
		b.WhiteKingside = false
	case colour == White && sq.Rank == 0 && sq.File == 0:
		b.WhiteQueenside = false
	case colour == Black && sq.Rank == 7 && sq.File == 7:
		b.BlackKingside = false
	case colour == Black && sq.Rank == 7 && sq.File == 0:
		b.BlackQueenside = false
	}
}

// CanCastle reports whether the given colour still has the right to
// castle on the given side. It says nothing about the path being clear
// or safe.
func (b *Board) CanCastle(c Colour, side CastleSide) bool {
	switch {
	case c == White && side == Kingside:
		return b.WhiteKingside
	case c == White && side == Queenside:
		return b.WhiteQueenside
	case c == Black && side == Kingside:
		return b.BlackKingside
	case c == Black && side == Queenside:
		return b.BlackQueenside
	default:
		return false
	}
}

// Copy creates a deep copy of the board. Used by the move generator's
// king-safety filter as a scratch state that is discarded after each
// check.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	return nb
}

// String returns the board as a printable diagram, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString(strings.Repeat("+---", BoardSize))
		sb.WriteString("+\n")
		for file := 0; file < BoardSize; file++ {
			p := b.PieceAt(Square{File: file, Rank: rank})
			if p.IsEmpty() {
				sb.WriteString("|   ")
			} else {
				fmt.Fprintf(&sb, "| %c ", p.FENLetter())
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("+---", BoardSize))
	sb.WriteString("+")
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
