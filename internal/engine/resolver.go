package engine

import (
	"github.com/lwhite/sanboard-go/internal/chess"
	"github.com/lwhite/sanboard-go/internal/errors"
	"github.com/lwhite/sanboard-go/internal/parser"
)

// Resolve binds a parsed SAN descriptor to exactly one legal move in
// the current position.
//
// Candidates are drawn from the already-filtered legal-move set, so a
// piece excluded by the king-safety filter (a pinned piece, say) never
// competes for the notation: SAN may omit disambiguation hints in such
// positions and still resolve uniquely, with no pin-aware logic here.
//
// Zero candidates yield ErrIllegalMove. More than one candidate after
// applying the descriptor's file/rank hints yields ErrAmbiguousMove:
// the notation is underspecified for this position and is reported
// rather than resolved by an arbitrary pick.
func Resolve(desc parser.Descriptor, b *chess.Board) (chess.Move, error) {
	legal := LegalMoves(b)

	if desc.Castle != chess.NoCastle {
		for _, m := range legal {
			if m.Castle == desc.Castle {
				return m, nil
			}
		}
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s is not available", desc.Castle)
	}

	var candidates []chess.Move
	for _, m := range legal {
		if m.Castle != chess.NoCastle {
			continue
		}
		if m.Piece.Kind != desc.Piece || m.To != desc.Dest {
			continue
		}
		if desc.FromFile >= 0 && m.From.File != desc.FromFile {
			continue
		}
		if desc.FromRank >= 0 && m.From.Rank != desc.FromRank {
			continue
		}
		if desc.Promotion != chess.NoKind && m.Promotion != desc.Promotion {
			continue
		}
		candidates = append(candidates, m)
	}

	if len(candidates) == 0 {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "no legal move matches %s", desc)
	}

	// A pawn reaching the back rank must name its promotion piece;
	// defaults are never inferred.
	if desc.Promotion == chess.NoKind && candidates[0].IsPromotion() {
		return chess.Move{}, errors.Wrapf(errors.ErrMalformedNotation, "promotion piece required for %s", desc)
	}

	if len(candidates) > 1 {
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%d legal moves match %s", len(candidates), desc)
	}
	return candidates[0], nil
}
