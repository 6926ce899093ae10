package engine

import (
	"github.com/lwhite/sanboard-go/internal/chess"
	"github.com/lwhite/sanboard-go/internal/errors"
	"github.com/lwhite/sanboard-go/internal/parser"
)

// MoveStatus describes the position after an executed move, from the
// perspective of the new side to move. It is advisory output, not an
// error.
type MoveStatus int

const (
	StatusNormal MoveStatus = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// String returns the string representation of a move status.
func (s MoveStatus) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// Execute applies a concrete move to the board and reports the status
// of the resulting position for the new side to move. The move must
// come from LegalMoves or Resolve; Execute itself performs no
// legality checking.
func Execute(b *chess.Board, m chess.Move) MoveStatus {
	b.Apply(m)
	return Status(b)
}

// Status classifies the current position for the side to move.
func Status(b *chess.Board) MoveStatus {
	inCheck := IsInCheck(b, b.ToMove)
	hasMoves := HasLegalMoves(b)
	switch {
	case inCheck && !hasMoves:
		return StatusCheckmate
	case inCheck:
		return StatusCheck
	case !hasMoves:
		return StatusStalemate
	default:
		return StatusNormal
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(b *chess.Board) bool {
	return Status(b) == StatusCheckmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(b *chess.Board) bool {
	return Status(b) == StatusStalemate
}

// MoveSAN is the primary entry point: parse the SAN text, resolve it
// against the current position, and execute the resulting move.
// Resolution completes before any mutation, so on error the board is
// left exactly as it was.
func MoveSAN(b *chess.Board, text string) (MoveStatus, error) {
	desc, err := parser.Parse(text)
	if err != nil {
		return StatusNormal, &errors.MoveError{Err: err, MoveText: text}
	}
	m, err := Resolve(desc, b)
	if err != nil {
		return StatusNormal, &errors.MoveError{Err: err, MoveText: text}
	}
	return Execute(b, m), nil
}

// SuffixMatches reports whether a SAN check/mate suffix agrees with
// the computed status. Suffixes are advisory: callers wanting strict
// verification can report a mismatch, but moves are never rejected
// over one.
func SuffixMatches(suffix parser.Suffix, status MoveStatus) bool {
	switch suffix {
	case parser.CheckSuffix:
		return status == StatusCheck
	case parser.MateSuffix:
		return status == StatusCheckmate
	default:
		return status == StatusNormal || status == StatusStalemate
	}
}
