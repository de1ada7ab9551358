// Package phase computes the middlegame/endgame phase scalar used to blend
// phase-dependent feature scores.
package phase

import "github.com/herohde/gambit/pkg/chess"

// Phase is a scalar in [0, 1]: 1 means full middlegame material is still on
// the board, 0 means the game has reduced to bare endgame material.
type Phase float64

// Blend linearly interpolates between a middlegame and endgame value
// according to the phase: mg when Phase is 1, eg when Phase is 0.
func (ph Phase) Blend(mg, eg float64) float64 {
	return float64(ph)*mg + (1-float64(ph))*eg
}

const (
	knightWeight = 1
	bishopWeight = 1
	rookWeight   = 2
	queenWeight  = 4
	maxWeight    = 24
)

// Board is the subset of chess.Board needed to compute the phase.
type Board interface {
	Pieces(pt chess.PieceType, c chess.Color) chess.Bitboard
}

// Of computes the phase of the given position, counting non-pawn, non-king
// material for both colors against the maximum possible weight.
func Of(b Board) Phase {
	var total int
	for _, c := range [chess.NumColors]chess.Color{chess.White, chess.Black} {
		total += b.Pieces(chess.Knight, c).PopCount() * knightWeight
		total += b.Pieces(chess.Bishop, c).PopCount() * bishopWeight
		total += b.Pieces(chess.Rook, c).PopCount() * rookWeight
		total += b.Pieces(chess.Queen, c).PopCount() * queenWeight
	}
	if total > maxWeight {
		total = maxWeight
	}
	return Phase(float64(total) / maxWeight)
}
