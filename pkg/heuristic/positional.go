package heuristic

import (
	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/feature"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// Positional is the composite evaluator: it sums every feature evaluator
// for a color and subtracts the same sum for the opponent, mirroring the
// "own minus enemy" structure of the original positional evaluator.
type Positional struct {
	captureOrdering
	features []feature.Evaluator
}

// NewPositional builds the full positional evaluator from params.
func NewPositional(p Params) *Positional {
	return &Positional{
		captureOrdering: newCaptureOrdering(p),
		features:        allFeatures(p),
	}
}

func (e *Positional) EvaluateBoard(b *board.Board, c chess.Color) float64 {
	ph := phaseOf(b)
	return e.sum(b, c, ph) - e.sum(b, c.Opponent(), ph)
}

func (e *Positional) sum(b *board.Board, c chess.Color, ph phase.Phase) float64 {
	var total float64
	for _, f := range e.features {
		total += f.Evaluate(b, c, ph)
	}
	return total
}
