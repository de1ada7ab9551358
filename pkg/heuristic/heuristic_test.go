package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
)

func TestPositionalSymmetricAtStart(t *testing.T) {
	b := board.New()
	e := NewPositional(DefaultParams())

	assert.Equal(t, float64(0), e.EvaluateBoard(b, chess.White))
	assert.Equal(t, float64(0), e.EvaluateBoard(b, chess.Black))
}

func TestSimpleMaterialNegativeWhenDownMaterial(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/3q4/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewSimpleMaterial(DefaultParams())

	assert.Less(t, e.EvaluateBoard(b, chess.White), float64(0))
}

func TestTanhMaterialStaysBounded(t *testing.T) {
	b, err := board.NewFromFEN("q3k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	e := NewTanhMaterial(DefaultParams())

	score := e.EvaluateBoard(b, chess.White)
	assert.Greater(t, score, float64(-1))
	assert.Less(t, score, float64(1))
}

func TestCaptureOrderingPrefersHighValueVictim(t *testing.T) {
	b, err := board.NewFromFEN("4k3/3qp3/8/8/8/8/3N4/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewPositional(DefaultParams())

	captureQueen := chess.Move{From: chess.NewSquare(chess.FileD, chess.Rank2), To: chess.NewSquare(chess.FileD, chess.Rank7)}
	capturePawn := chess.Move{From: chess.NewSquare(chess.FileD, chess.Rank2), To: chess.NewSquare(chess.FileE, chess.Rank7)}

	qScore := e.EvaluateCapture(b, captureQueen)
	pScore := e.EvaluateCapture(b, capturePawn)
	assert.Greater(t, qScore, pScore)
}

func TestEvaluateMovePromotionBonus(t *testing.T) {
	b, err := board.NewFromFEN("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewPositional(DefaultParams())

	promo := chess.Move{From: chess.NewSquare(chess.FileE, chess.Rank7), To: chess.NewSquare(chess.FileE, chess.Rank8), Promotion: chess.Queen}
	assert.Greater(t, e.EvaluateMove(b, promo), float64(0))
}
