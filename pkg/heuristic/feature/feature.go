// Package feature implements the individual positional features the
// composite evaluator in pkg/heuristic sums over both colors: material,
// mobility, pawn structure, king safety, strategic bonuses, and
// piece-square placement.
package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// Board is the subset of chess.Board the feature evaluators depend on. Kept
// narrow so features can be unit tested against hand-built positions without
// pulling in move generation.
type Board interface {
	Pieces(pt chess.PieceType, c chess.Color) chess.Bitboard
	PieceAt(sq chess.Square) (chess.Piece, bool)
	King(c chess.Color) chess.Square
	Attacks(sq chess.Square) chess.Bitboard
}

// Evaluator scores a single positional feature for color c. Evaluate always
// reports the feature from c's own perspective; the composite evaluator is
// responsible for the own-minus-enemy subtraction.
type Evaluator interface {
	Evaluate(b Board, c chess.Color, ph phase.Phase) float64
}
