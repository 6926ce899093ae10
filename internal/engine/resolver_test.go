package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lwhite/sanboard-go/internal/chess"
	"github.com/lwhite/sanboard-go/internal/errors"
	"github.com/lwhite/sanboard-go/internal/parser"
)

func mustParse(t *testing.T, text string) parser.Descriptor {
	t.Helper()
	desc, err := parser.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return desc
}

func TestResolveSimpleMoves(t *testing.T) {
	tests := []struct {
		text string
		from string
		to   string
	}{
		{text: "e4", from: "e2", to: "e4"},
		{text: "Nf3", from: "g1", to: "f3"},
		{text: "a3", from: "a2", to: "a3"},
	}

	b := chess.NewInitialBoard()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := Resolve(mustParse(t, tt.text), b)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.text, err)
			}
			if m.From != mustSquare(t, tt.from) || m.To != mustSquare(t, tt.to) {
				t.Errorf("Resolve(%q) = %s, want %s-%s", tt.text, m, tt.from, tt.to)
			}
		})
	}
}

func TestResolvePinBreaksAmbiguity(t *testing.T) {
	// Both knights reach d5, but the e3 knight is pinned by the e8
	// rook. Legality itself disambiguates: bare "Nd5" resolves to the
	// c3 knight.
	b := mustBoard(t, "k3r3/8/8/8/8/2N1N3/8/4K3 w - - 0 1")
	m, err := Resolve(mustParse(t, "Nd5"), b)
	if err != nil {
		t.Fatalf("Resolve(Nd5) failed: %v", err)
	}
	if m.From != mustSquare(t, "c3") {
		t.Errorf("Resolve(Nd5) chose the knight on %s, want c3", m.From)
	}

	// Without the pin the same notation is genuinely ambiguous.
	b = mustBoard(t, "k7/8/8/8/8/2N1N3/8/4K3 w - - 0 1")
	_, err = Resolve(mustParse(t, "Nd5"), b)
	if !stderrors.Is(err, errors.ErrAmbiguousMove) {
		t.Errorf("Resolve(Nd5) without the pin: got %v, want ErrAmbiguousMove", err)
	}
}

func TestResolveDisambiguationHints(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/K7/R6R w - - 0 1")

	if _, err := Resolve(mustParse(t, "Rd1"), b); !stderrors.Is(err, errors.ErrAmbiguousMove) {
		t.Errorf("Rd1 with two rooks: got %v, want ErrAmbiguousMove", err)
	}

	m, err := Resolve(mustParse(t, "Rad1"), b)
	if err != nil {
		t.Fatalf("Resolve(Rad1) failed: %v", err)
	}
	if m.From != mustSquare(t, "a1") {
		t.Errorf("Rad1 resolved to the rook on %s, want a1", m.From)
	}

	m, err = Resolve(mustParse(t, "Rhd1"), b)
	if err != nil {
		t.Fatalf("Resolve(Rhd1) failed: %v", err)
	}
	if m.From != mustSquare(t, "h1") {
		t.Errorf("Rhd1 resolved to the rook on %s, want h1", m.From)
	}
}

func TestResolveIllegalMove(t *testing.T) {
	b := chess.NewInitialBoard()
	tests := []string{
		"e5",  // pawn cannot reach e5 in one move
		"Nf4", // no knight reaches f4
		"Qh5", // queen is boxed in
		"Ke2", // own pawn occupies e2
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := Resolve(mustParse(t, text), b)
			if !stderrors.Is(err, errors.ErrIllegalMove) {
				t.Errorf("Resolve(%q) = %v, want ErrIllegalMove", text, err)
			}
		})
	}
}

func TestResolveCastle(t *testing.T) {
	b := mustBoard(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	m, err := Resolve(mustParse(t, "O-O"), b)
	if err != nil {
		t.Fatalf("Resolve(O-O) failed: %v", err)
	}
	if m.Castle != chess.Kingside || m.To != mustSquare(t, "g1") {
		t.Errorf("Resolve(O-O) = %s, want king to g1", m)
	}

	m, err = Resolve(mustParse(t, "O-O-O"), b)
	if err != nil {
		t.Fatalf("Resolve(O-O-O) failed: %v", err)
	}
	if m.Castle != chess.Queenside || m.To != mustSquare(t, "c1") {
		t.Errorf("Resolve(O-O-O) = %s, want king to c1", m)
	}

	noRights := mustBoard(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1")
	if _, err := Resolve(mustParse(t, "O-O"), noRights); !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("Resolve(O-O) without rights: got %v, want ErrIllegalMove", err)
	}
}

func TestResolveRequiresPromotionPiece(t *testing.T) {
	b := mustBoard(t, "7k/4P3/8/8/8/8/8/7K w - - 0 1")

	if _, err := Resolve(mustParse(t, "e8"), b); !stderrors.Is(err, errors.ErrMalformedNotation) {
		t.Errorf("bare e8 onto the back rank: got %v, want ErrMalformedNotation", err)
	}

	m, err := Resolve(mustParse(t, "e8=N"), b)
	if err != nil {
		t.Fatalf("Resolve(e8=N) failed: %v", err)
	}
	if m.Promotion != chess.Knight {
		t.Errorf("Resolve(e8=N) promotion = %s, want knight", m.Promotion)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	b := mustBoard(t, "k3r3/8/8/8/8/2N1N3/8/4K3 w - - 0 1")
	first, err := Resolve(mustParse(t, "Nd5"), b)
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	second, err := Resolve(mustParse(t, "Nd5"), b)
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("Resolve is not deterministic: %s vs %s", first, second)
	}
}
