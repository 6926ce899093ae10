// Package engine generates legal moves, resolves SAN descriptors
// against them, and executes the resulting board transitions.
package engine

import (
	"github.com/lwhite/sanboard-go/internal/chess"
)

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
)

// LegalMoves returns every legal move for the side to move, in
// deterministic (file, rank) source-square order. Generation is
// two-phase: pseudo-legal moves per piece, then a king-safety filter
// that applies each candidate to a scratch copy and discards any that
// leave the mover's own king attacked. The filter is what rejects
// moves by pinned pieces.
func LegalMoves(b *chess.Board) []chess.Move {
	colour := b.ToMove
	var moves []chess.Move
	for _, from := range chess.Squares() {
		piece := b.PieceAt(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, m := range pseudoMoves(b, from, piece) {
			if !leavesKingExposed(b, m) {
				moves = append(moves, m)
			}
		}
	}
	for _, m := range castleMoves(b, colour) {
		if !leavesKingExposed(b, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves reports whether the side to move has at least one
// legal move, short-circuiting on the first one found.
func HasLegalMoves(b *chess.Board) bool {
	colour := b.ToMove
	for _, from := range chess.Squares() {
		piece := b.PieceAt(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, m := range pseudoMoves(b, from, piece) {
			if !leavesKingExposed(b, m) {
				return true
			}
		}
	}
	for _, m := range castleMoves(b, colour) {
		if !leavesKingExposed(b, m) {
			return true
		}
	}
	return false
}

// leavesKingExposed applies the move to a scratch copy of the board
// and reports whether the mover's own king is attacked afterward. The
// copy is discarded; the real board is never touched.
func leavesKingExposed(b *chess.Board, m chess.Move) bool {
	scratch := b.Copy()
	scratch.Apply(m)
	return IsInCheck(scratch, m.Piece.Colour)
}

// pseudoMoves enumerates destinations for a single piece, ignoring
// whether the mover's own king is left in check. Castling is generated
// separately by castleMoves.
func pseudoMoves(b *chess.Board, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(b, from, piece)
	case chess.Knight:
		return offsetMoves(b, from, piece, knightOffsets)
	case chess.King:
		return offsetMoves(b, from, piece, kingOffsets)
	case chess.Bishop:
		return slidingMoves(b, from, piece, diagonalDirs)
	case chess.Rook:
		return slidingMoves(b, from, piece, straightDirs)
	case chess.Queen:
		moves := slidingMoves(b, from, piece, diagonalDirs)
		return append(moves, slidingMoves(b, from, piece, straightDirs)...)
	default:
		return nil
	}
}

// pawnMoves generates advances, diagonal captures, en passant, and
// promotions for one pawn.
func pawnMoves(b *chess.Board, from chess.Square, piece chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := piece.Colour.PawnDirection()
	startRank := 1
	if piece.Colour == chess.Black {
		startRank = chess.BoardSize - 2
	}

	// Single and double advance.
	one := from.Offset(0, dir)
	if one.Valid() && b.PieceAt(one).IsEmpty() {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one, Piece: piece})
		if from.Rank == startRank {
			two := from.Offset(0, 2*dir)
			if b.PieceAt(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two, Piece: piece})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		target := b.PieceAt(to)
		switch {
		case !target.IsEmpty() && target.Colour != piece.Colour:
			moves = appendPawnMove(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		case b.EnPassant && to == b.EPSquare:
			captured := b.PieceAt(chess.Square{File: to.File, Rank: from.Rank})
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: captured, EnPassant: true})
		}
	}
	return moves
}

// appendPawnMove appends m, expanding it into one candidate per
// promotion piece kind when the destination is the back rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	promoRank := chess.BoardSize - 1
	if m.Piece.Colour == chess.Black {
		promoRank = 0
	}
	if m.To.Rank != promoRank {
		return append(moves, m)
	}
	for _, kind := range promotionKinds {
		promoted := m
		promoted.Promotion = kind
		moves = append(moves, promoted)
	}
	return moves
}

// offsetMoves generates fixed-offset moves for knights and kings.
func offsetMoves(b *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := b.PieceAt(to)
		if target.IsEmpty() || target.Colour != piece.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// slidingMoves generates ray moves for bishops, rooks, and queens,
// stopping at the first occupied square and including it only when it
// holds an enemy piece.
func slidingMoves(b *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := b.PieceAt(to)
			if !target.IsEmpty() {
				if target.Colour != piece.Colour {
					moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// castleMoves generates castling candidates for the given colour.
// Castling requires the right to still exist, the king and rook on
// their home squares, an empty path, and that the king is neither in
// check nor passes through an attacked square. The destination square
// is covered by the king-safety filter like any other move.
func castleMoves(b *chess.Board, colour chess.Colour) []chess.Move {
	rank := 0
	if colour == chess.Black {
		rank = chess.BoardSize - 1
	}
	kingHome := chess.Square{File: 4, Rank: rank}
	if b.King(colour) != kingHome || b.PieceAt(kingHome) != (chess.Piece{Kind: chess.King, Colour: colour}) {
		return nil
	}
	if IsSquareAttacked(b, kingHome, colour.Opposite()) {
		return nil
	}

	var moves []chess.Move
	rook := chess.Piece{Kind: chess.Rook, Colour: colour}

	if b.CanCastle(colour, chess.Kingside) &&
		b.PieceAt(chess.Square{File: 7, Rank: rank}) == rook &&
		b.PieceAt(chess.Square{File: 5, Rank: rank}).IsEmpty() &&
		b.PieceAt(chess.Square{File: 6, Rank: rank}).IsEmpty() &&
		!IsSquareAttacked(b, chess.Square{File: 5, Rank: rank}, colour.Opposite()) {
		moves = append(moves, chess.Move{
			From:   kingHome,
			To:     chess.Square{File: 6, Rank: rank},
			Piece:  chess.Piece{Kind: chess.King, Colour: colour},
			Castle: chess.Kingside,
		})
	}

	if b.CanCastle(colour, chess.Queenside) &&
		b.PieceAt(chess.Square{File: 0, Rank: rank}) == rook &&
		b.PieceAt(chess.Square{File: 1, Rank: rank}).IsEmpty() &&
		b.PieceAt(chess.Square{File: 2, Rank: rank}).IsEmpty() &&
		b.PieceAt(chess.Square{File: 3, Rank: rank}).IsEmpty() &&
		!IsSquareAttacked(b, chess.Square{File: 3, Rank: rank}, colour.Opposite()) {
		moves = append(moves, chess.Move{
			From:   kingHome,
			To:     chess.Square{File: 2, Rank: rank},
			Piece:  chess.Piece{Kind: chess.King, Colour: colour},
			Castle: chess.Queenside,
		})
	}
	return moves
}
