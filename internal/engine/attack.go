package engine

import "github.com/lwhite/sanboard-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(b, b.King(colour), colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by any piece
// of the given colour. The scan mirrors pseudo-legal movement per
// piece kind but runs in reverse from the target square, excludes
// castling, and applies no king-safety filter, so it terminates even
// when both kings are involved.
func IsSquareAttacked(b *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks come from the rank behind the target, relative to
	// the attacker's direction of travel.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	pawnRank := sq.Rank - byColour.PawnDirection()
	for _, df := range []int{-1, 1} {
		from := chess.Square{File: sq.File + df, Rank: pawnRank}
		if from.Valid() && b.PieceAt(from) == pawn {
			return true
		}
	}

	knight := chess.Piece{Kind: chess.Knight, Colour: byColour}
	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if from.Valid() && b.PieceAt(from) == knight {
			return true
		}
	}

	king := chess.Piece{Kind: chess.King, Colour: byColour}
	for _, off := range kingOffsets {
		from := sq.Offset(off[0], off[1])
		if from.Valid() && b.PieceAt(from) == king {
			return true
		}
	}

	bishop := chess.Piece{Kind: chess.Bishop, Colour: byColour}
	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}
	for _, dir := range diagonalDirs {
		from := sq.Offset(dir[0], dir[1])
		for from.Valid() {
			piece := b.PieceAt(from)
			if !piece.IsEmpty() {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
			from = from.Offset(dir[0], dir[1])
		}
	}

	rook := chess.Piece{Kind: chess.Rook, Colour: byColour}
	for _, dir := range straightDirs {
		from := sq.Offset(dir[0], dir[1])
		for from.Valid() {
			piece := b.PieceAt(from)
			if !piece.IsEmpty() {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
			from = from.Offset(dir[0], dir[1])
		}
	}

	return false
}
