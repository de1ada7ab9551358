package heuristic

import (
	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/feature"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// Evaluator scores a board from a single color's perspective and orders
// moves for search, the same three responsibilities the original Python
// evaluator hierarchy splits across evaluate_board, evaluate_move, and
// evaluate_capture.
type Evaluator interface {
	// EvaluateBoard scores the position from c's perspective: positive
	// favors c, negative favors the opponent.
	EvaluateBoard(b *board.Board, c chess.Color) float64

	// EvaluateMove scores a candidate move for ordering purposes, without
	// requiring the move to have been made yet.
	EvaluateMove(b *board.Board, m chess.Move) float64

	// EvaluateCapture scores a capturing move for ordering. Positional and
	// SimpleMaterial use MVV-LVA: the victim's value weighs far more than
	// the attacker's, so profitable trades and even losing trades against
	// high-value victims sort ahead of quiet moves. TanhMaterial scores a
	// capture by the victim's value alone.
	EvaluateCapture(b *board.Board, m chess.Move) float64
}

// captureOrdering is shared by the Positional and SimpleMaterial evaluators,
// since MVV-LVA move ordering is independent of how the board itself is
// scored. TanhMaterial does not embed it.
type captureOrdering struct {
	material     feature.Material
	victimWeight float64
}

func newCaptureOrdering(p Params) captureOrdering {
	return captureOrdering{
		material:     feature.NewMaterial(p.Get),
		victimWeight: p.Get("capture.victim_weight"),
	}
}

func (co captureOrdering) EvaluateMove(b *board.Board, m chess.Move) float64 {
	if b.IsCapture(m) {
		return co.EvaluateCapture(b, m)
	}
	if m.Promotion.IsValid() {
		return co.material.Value(chess.Queen)
	}
	return 0
}

func (co captureOrdering) EvaluateCapture(b *board.Board, m chess.Move) float64 {
	attacker, _ := b.PieceAt(m.From)

	victimSquare := m.To
	if m.IsEnPassant {
		victimSquare = m.EnPassantCapture()
	}
	victim, ok := b.PieceAt(victimSquare)
	if !ok {
		victim = chess.Piece{Type: chess.Pawn}
	}

	score := co.victimWeight*co.material.Value(victim.Type) - co.material.Value(attacker.Type)
	if m.Promotion.IsValid() {
		score += co.material.Value(chess.Queen)
	}
	return score
}

var allFeatures = func(p Params) []feature.Evaluator {
	return []feature.Evaluator{
		feature.NewMaterial(p.Get),
		feature.NewMobility(p.Get),
		feature.NewPawnStructure(p.Get),
		feature.NewKingSafety(p.Get),
		feature.NewStrategic(p.Get),
		feature.NewPieceSquare(),
	}
}

func phaseOf(b *board.Board) phase.Phase {
	return phase.Of(b)
}
