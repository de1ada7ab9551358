package gambit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/gambit/pkg/board"
)

func TestChooseMoveAlphaBeta(t *testing.T) {
	e := NewEngine(WithConfig(Config{Strategy: AlphaBeta, Evaluator: Positional, Depth: 2}))
	m, err := e.ChooseMove(board.New())

	require.NoError(t, err)
	assert.False(t, m.IsZero())
}

func TestChooseMoveMCTS(t *testing.T) {
	e := NewEngine(WithConfig(Config{Strategy: MCTS, Evaluator: TanhMaterial, Iterations: 100}))
	m, err := e.ChooseMove(board.New())

	require.NoError(t, err)
	assert.False(t, m.IsZero())
}

func TestChooseMoveNoLegalMoves(t *testing.T) {
	b, err := board.NewFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	e := NewEngine(WithConfig(Config{Strategy: AlphaBeta, Evaluator: SimpleMaterial, Depth: 2}))
	_, err = e.ChooseMove(b)

	assert.True(t, errors.Is(err, ErrNoMoveAvailable))
}
