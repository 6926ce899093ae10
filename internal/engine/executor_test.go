package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lwhite/sanboard-go/internal/chess"
	"github.com/lwhite/sanboard-go/internal/errors"
	"github.com/lwhite/sanboard-go/internal/parser"
)

func playMoves(t *testing.T, b *chess.Board, moves ...string) MoveStatus {
	t.Helper()
	status := Status(b)
	for _, text := range moves {
		var err error
		status, err = MoveSAN(b, text)
		if err != nil {
			t.Fatalf("MoveSAN(%q) failed: %v", text, err)
		}
	}
	return status
}

func TestMoveSANOpeningSequence(t *testing.T) {
	b := chess.NewInitialBoard()

	status := playMoves(t, b, "e4")
	if status != StatusNormal {
		t.Errorf("status after e4 = %s, want normal", status)
	}
	if got, want := BoardToFEN(b), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; got != want {
		t.Errorf("FEN after e4 = %q, want %q", got, want)
	}

	playMoves(t, b, "e5", "Nf3")
	if got, want := BoardToFEN(b), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"; got != want {
		t.Errorf("FEN after 1.e4 e5 2.Nf3 = %q, want %q", got, want)
	}
}

func TestMoveSANCastling(t *testing.T) {
	b := mustBoard(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	playMoves(t, b, "O-O")

	if b.PieceAt(mustSquare(t, "g1")) != chess.W(chess.King) {
		t.Error("king did not land on g1")
	}
	if b.PieceAt(mustSquare(t, "f1")) != chess.W(chess.Rook) {
		t.Error("rook did not land on f1")
	}
	if b.CanCastle(chess.White, chess.Kingside) || b.CanCastle(chess.White, chess.Queenside) {
		t.Error("castling rights survived castling")
	}
	if !b.CanCastle(chess.Black, chess.Kingside) {
		t.Error("Black's rights were disturbed")
	}
}

func TestMoveSANCastlingThroughAttackFails(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/5r2/8/4K2R w K - 0 1")
	_, err := MoveSAN(b, "O-O")
	if !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("castling through an attacked square: got %v, want ErrIllegalMove", err)
	}
}

// Castling rights never come back: once the rook has moved, returning
// it home does not restore the right.
func TestCastlingRightsAreMonotonic(t *testing.T) {
	b := mustBoard(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	playMoves(t, b, "Rg1", "a6", "Rh1", "b6")

	_, err := MoveSAN(b, "O-O")
	if !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("castling after the rook returned home: got %v, want ErrIllegalMove", err)
	}
}

func TestMoveSANPromotion(t *testing.T) {
	b := mustBoard(t, "7k/4P3/8/8/8/8/8/7K w - - 0 1")
	status := playMoves(t, b, "e8=Q")

	if b.PieceAt(mustSquare(t, "e8")) != chess.W(chess.Queen) {
		t.Error("promoted piece is not a white queen")
	}
	if status != StatusCheck {
		t.Errorf("status after e8=Q = %s, want check", status)
	}
}

func TestMoveSANScholarsMate(t *testing.T) {
	b := chess.NewInitialBoard()
	status := playMoves(t, b, "e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#")

	if status != StatusCheckmate {
		t.Fatalf("status after Qxf7 = %s, want checkmate", status)
	}
	if !IsCheckmate(b) {
		t.Error("IsCheckmate disagrees with the move status")
	}
}

func TestStatusStalemate(t *testing.T) {
	b := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if got := Status(b); got != StatusStalemate {
		t.Fatalf("Status = %s, want stalemate", got)
	}
	if !IsStalemate(b) {
		t.Error("IsStalemate disagrees with Status")
	}
}

func TestMoveSANEnPassantWindow(t *testing.T) {
	t.Run("capture within the window", func(t *testing.T) {
		b := chess.NewInitialBoard()
		playMoves(t, b, "e4", "a6", "e5", "d5", "exd6")

		if b.PieceAt(mustSquare(t, "d6")) != chess.W(chess.Pawn) {
			t.Error("capturing pawn did not land on d6")
		}
		if b.PieceAt(mustSquare(t, "d5")) != chess.NoPiece {
			t.Error("passed pawn was not removed from d5")
		}
	})

	t.Run("window closes after one move", func(t *testing.T) {
		b := chess.NewInitialBoard()
		playMoves(t, b, "e4", "a6", "e5", "d5", "h3", "h6")

		_, err := MoveSAN(b, "exd6")
		if !stderrors.Is(err, errors.ErrIllegalMove) {
			t.Fatalf("en passant after the window closed: got %v, want ErrIllegalMove", err)
		}
	})
}

// A rejected move must leave the board byte-for-byte unchanged.
func TestMoveSANFailureIsAtomic(t *testing.T) {
	b := chess.NewInitialBoard()
	before := BoardToFEN(b)

	for _, text := range []string{"e5", "Nd4", "O-O", "Qxf7", "garbage"} {
		if _, err := MoveSAN(b, text); err == nil {
			t.Fatalf("MoveSAN(%q) unexpectedly succeeded", text)
		}
		if after := BoardToFEN(b); after != before {
			t.Fatalf("board changed after failed %q: %q -> %q", text, before, after)
		}
	}
}

func TestMoveSANErrorCarriesMoveText(t *testing.T) {
	b := chess.NewInitialBoard()
	_, err := MoveSAN(b, "Qh5")

	var me *errors.MoveError
	if !stderrors.As(err, &me) {
		t.Fatalf("error %v is not a MoveError", err)
	}
	if me.MoveText != "Qh5" {
		t.Errorf("MoveText = %q, want %q", me.MoveText, "Qh5")
	}
	if !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("error %v does not unwrap to ErrIllegalMove", err)
	}
}

func TestSuffixMatches(t *testing.T) {
	tests := []struct {
		suffix parser.Suffix
		status MoveStatus
		want   bool
	}{
		{suffix: parser.NoSuffix, status: StatusNormal, want: true},
		{suffix: parser.NoSuffix, status: StatusStalemate, want: true},
		{suffix: parser.NoSuffix, status: StatusCheck, want: false},
		{suffix: parser.CheckSuffix, status: StatusCheck, want: true},
		{suffix: parser.CheckSuffix, status: StatusCheckmate, want: false},
		{suffix: parser.MateSuffix, status: StatusCheckmate, want: true},
		{suffix: parser.MateSuffix, status: StatusCheck, want: false},
	}
	for _, tt := range tests {
		if got := SuffixMatches(tt.suffix, tt.status); got != tt.want {
			t.Errorf("SuffixMatches(%q, %s) = %v, want %v", tt.suffix, tt.status, got, tt.want)
		}
	}
}
