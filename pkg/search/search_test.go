package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic"
)

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	b, err := board.NewFromFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)

	ab := NewAlphaBeta(heuristic.NewPositional(heuristic.DefaultParams()))
	m, score := ab.GetBestMove(b, 3)

	require.False(t, m.IsZero())
	b.Push(m)
	assert.True(t, b.IsCheckmate())
	assert.Equal(t, float64(CheckmateScore+2), score)
}

func TestAlphaBetaAvoidsHangingQueen(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/3q4/8/3Q4/8/4K3 b - - 0 1")
	require.NoError(t, err)

	ab := NewAlphaBeta(heuristic.NewSimpleMaterial(heuristic.DefaultParams()))
	m, _ := ab.GetBestMove(b, 2)

	require.False(t, m.IsZero())
	assert.Equal(t, chess.NewSquare(chess.FileD, chess.Rank5), m.From)
	assert.Equal(t, chess.NewSquare(chess.FileD, chess.Rank3), m.To)
}

func TestAlphaBetaReturnsZeroMoveWithNoLegalMoves(t *testing.T) {
	b, err := board.NewFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	ab := NewAlphaBeta(heuristic.NewSimpleMaterial(heuristic.DefaultParams()))
	m, score := ab.GetBestMove(b, 2)

	assert.True(t, m.IsZero())
	assert.Equal(t, float64(0), score)
}

func TestMCTSPrefersCheckmatingMove(t *testing.T) {
	b, err := board.NewFromFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)

	s := NewMCTS(heuristic.NewTanhMaterial(heuristic.DefaultParams()))
	m, _ := s.GetBestMove(b, 200)

	require.False(t, m.IsZero())
	b.Push(m)
	assert.True(t, b.IsCheckmate())
}

func TestMCTSReturnsZeroMoveWithNoLegalMoves(t *testing.T) {
	b, err := board.NewFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	s := NewMCTS(heuristic.NewTanhMaterial(heuristic.DefaultParams()))
	m, score := s.GetBestMove(b, 50)

	assert.True(t, m.IsZero())
	assert.Equal(t, float64(0), score)
}

func TestMoveListOrdersHighestFirst(t *testing.T) {
	moves := []chess.Move{
		{From: chess.NewSquare(chess.FileA, chess.Rank1), To: chess.NewSquare(chess.FileA, chess.Rank2)},
		{From: chess.NewSquare(chess.FileB, chess.Rank1), To: chess.NewSquare(chess.FileB, chess.Rank2)},
	}
	priorities := map[chess.Move]Priority{moves[0]: 1, moves[1]: 5}

	ml := NewMoveList(moves, func(m chess.Move) Priority { return priorities[m] })
	first, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, moves[1], first)
}
