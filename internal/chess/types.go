// Package chess provides the core board representation: squares, pieces,
// and the authoritative game state mutated by accepted moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the rank delta a pawn of this colour advances by.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind is a closed set of the six piece kinds.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the SAN letter for a piece kind (uppercase).
// Pawns have no SAN letter and yield a space.
func (k PieceKind) Letter() byte {
	letters := []byte{'?', ' ', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase SAN piece letter to a kind.
// Returns NoKind for anything that is not a piece letter.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	default:
		return NoKind
	}
}

// Piece is an immutable piece value: a kind plus a colour.
// The zero value is NoPiece, representing an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

// W creates a white piece of the given kind.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece of the given kind.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// FENLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func (p Piece) FENLetter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p.Kind == NoKind || int(p.Kind) >= len(letters) {
		return '?'
	}
	c := letters[p.Kind]
	if p.Colour == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns a readable representation such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// CastleSide identifies a castling move, if any.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return "none"
	}
}
