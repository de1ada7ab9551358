package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/gambit/pkg/chess"
)

func TestNewIsOngoing(t *testing.T) {
	b := New()
	assert.Equal(t, Ongoing, b.GetOutcome())
	assert.False(t, b.IsTerminal())
}

func TestFoolsMateIsLoss(t *testing.T) {
	b := New()
	for _, m := range []chess.Move{
		{From: chess.NewSquare(chess.FileF, chess.Rank2), To: chess.NewSquare(chess.FileF, chess.Rank3)},
		{From: chess.NewSquare(chess.FileE, chess.Rank7), To: chess.NewSquare(chess.FileE, chess.Rank5)},
		{From: chess.NewSquare(chess.FileG, chess.Rank2), To: chess.NewSquare(chess.FileG, chess.Rank4)},
		{From: chess.NewSquare(chess.FileD, chess.Rank8), To: chess.NewSquare(chess.FileH, chess.Rank4)},
	} {
		b.Push(m)
	}

	assert.Equal(t, Loss, b.GetOutcome())
	assert.True(t, b.IsTerminal())
}

func TestNewFromFENRoundTrip(t *testing.T) {
	b, err := NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", b.FEN())
}

func TestCopyIsIndependent(t *testing.T) {
	b := New()
	clone := b.Copy()
	clone.Push(chess.Move{From: chess.NewSquare(chess.FileE, chess.Rank2), To: chess.NewSquare(chess.FileE, chess.Rank4)})

	assert.Equal(t, chess.White, b.Turn())
	assert.Equal(t, chess.Black, clone.Turn())
}
