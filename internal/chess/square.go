package chess

import (
	"fmt"

	"github.com/lwhite/sanboard-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is
// White's back rank. Both components are in [0, 7] for a valid square.
type Square struct {
	File int
	Rank int
}

// NewSquare builds a square from file and rank indices, rejecting
// coordinates outside the board.
func NewSquare(file, rank int) (Square, error) {
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// ParseSquare converts coordinate text such as "e4" to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// Valid reports whether both components are in [0, 7].
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index maps the square to a linear board index in [0, 63].
func (s Square) Index() int {
	return s.File*BoardSize + s.Rank
}

// Less orders squares by (file, rank) for deterministic iteration.
func (s Square) Less(other Square) bool {
	if s.File != other.File {
		return s.File < other.File
	}
	return s.Rank < other.Rank
}

// Offset returns the square displaced by the given file and rank
// deltas. The result may be off the board; check Valid.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the coordinate text, e.g. "e4", or "-" for an
// off-board square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// Squares returns all 64 squares in (file, rank) order.
func Squares() []Square {
	all := make([]Square, 0, BoardSize*BoardSize)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			all = append(all, Square{File: file, Rank: rank})
		}
	}
	return all
}
