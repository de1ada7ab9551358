package heuristic

import (
	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/feature"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// SimpleMaterial scores a position by material alone, own minus enemy. It
// exists as the cheapest possible evaluator, useful as a baseline to
// benchmark the full Positional evaluator against.
type SimpleMaterial struct {
	captureOrdering
	material feature.Material
}

func NewSimpleMaterial(p Params) *SimpleMaterial {
	return &SimpleMaterial{
		captureOrdering: newCaptureOrdering(p),
		material:        feature.NewMaterial(p.Get),
	}
}

func (e *SimpleMaterial) EvaluateBoard(b *board.Board, c chess.Color) float64 {
	ph := phase.Of(b)
	return e.material.Evaluate(b, c, ph) - e.material.Evaluate(b, c.Opponent(), ph)
}
