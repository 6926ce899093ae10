package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwhite/sanboard-go/internal/chess"
	sberrors "github.com/lwhite/sanboard-go/internal/errors"
)

func TestReplayMovetext(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	err := replayMovetext(strings.NewReader("1.e4 e5 2.Nf3 1/2-1/2"), "game", board, options{out: &out})
	require.NoError(t, err)

	assert.Contains(t, out.String(),
		"game: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2 (normal)")
}

func TestReplayMovetextCheckmate(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	err := replayMovetext(strings.NewReader("e4 e5 Bc4 Nc6 Qh5 Nf6 Qxf7# 1-0"), "game", board, options{out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(checkmate)")
}

func TestReplayMovetextReportsPly(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	// 2.e5 runs into Black's own pawn.
	err := replayMovetext(strings.NewReader("1.e4 e5 2.e5"), "game", board, options{out: &out})
	require.Error(t, err)

	var me *sberrors.MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 3, me.Ply)
	assert.Equal(t, "e5", me.MoveText)
	assert.ErrorIs(t, err, sberrors.ErrIllegalMove)
	assert.Contains(t, err.Error(), "game:")
}

func TestReplayMovetextSkipsNoise(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	// Bare move-number tokens and result markers are not moves.
	err := replayMovetext(strings.NewReader("1. e4 e5 2. Nf3 *"), "game", board, options{out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "5N2")
}

func TestReplayMovetextStrictSuffixWarning(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	// The claimed check never happens; strict mode flags it but the
	// move still plays.
	err := replayMovetext(strings.NewReader("e4+"), "game", board, options{strict: true, out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "suffix disagrees")
	assert.Contains(t, out.String(), "4P3", "move must still be applied")
}

func TestReplayMovetextVerbose(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	err := replayMovetext(strings.NewReader("e4"), "game", board, options{verbose: true, out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. e4 (normal)")
}

func TestReplayMovetextEmptyInput(t *testing.T) {
	var out bytes.Buffer
	board := chess.NewInitialBoard()

	err := replayMovetext(strings.NewReader(""), "game", board, options{out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(),
		"game: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 (normal)")
}
