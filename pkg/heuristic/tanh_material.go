package heuristic

import (
	"math"

	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/feature"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// tanhScale controls how quickly the tanh compression saturates; a one-pawn
// material edge should still read as a small, non-saturated signal.
const tanhScale = 400.0

// TanhMaterial scores a position by material difference squashed through
// tanh into (-1, 1), matching the scale MCTS wants for its backpropagated
// value estimates: a landslide material advantage approaches but never
// reaches a guaranteed win, avoiding overconfident exploitation terms deep
// in the tree.
type TanhMaterial struct {
	material feature.Material
}

func NewTanhMaterial(p Params) *TanhMaterial {
	return &TanhMaterial{material: feature.NewMaterial(p.Get)}
}

func (e *TanhMaterial) EvaluateBoard(b *board.Board, c chess.Color) float64 {
	ph := phase.Of(b)
	diff := e.material.Evaluate(b, c, ph) - e.material.Evaluate(b, c.Opponent(), ph)
	return math.Tanh(diff / tanhScale)
}

func (e *TanhMaterial) EvaluateMove(b *board.Board, m chess.Move) float64 {
	if b.IsCapture(m) {
		return e.EvaluateCapture(b, m)
	}
	return 0
}

func (e *TanhMaterial) EvaluateCapture(b *board.Board, m chess.Move) float64 {
	victimSquare := m.To
	if m.IsEnPassant {
		victimSquare = m.EnPassantCapture()
	}
	victim, ok := b.PieceAt(victimSquare)
	if !ok {
		return 0
	}
	return e.material.Value(victim.Type)
}
