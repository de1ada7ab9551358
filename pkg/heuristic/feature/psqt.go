package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// PieceSquare scores where pieces stand rather than what they are: knights
// rewarded for centralization, pawns for advancing, kings for staying
// tucked away in the middlegame and for marching to the center in the
// endgame. Tables are laid out rank-8-to-rank-1 as White would read a
// board, indexed from the a1 corner here so NewSquare addresses them
// directly.
type PieceSquare struct {
	mg, eg [chess.NumPieceTypes][chess.NumSquares]float64
}

func NewPieceSquare() PieceSquare {
	var ps PieceSquare
	ps.mg[chess.Pawn] = flip(pawnMG)
	ps.eg[chess.Pawn] = flip(pawnEG)
	ps.mg[chess.Knight] = flip(knightTable)
	ps.eg[chess.Knight] = flip(knightTable)
	ps.mg[chess.Bishop] = flip(bishopTable)
	ps.eg[chess.Bishop] = flip(bishopTable)
	ps.mg[chess.Rook] = flip(rookTable)
	ps.eg[chess.Rook] = flip(rookTable)
	ps.mg[chess.Queen] = flip(queenTable)
	ps.eg[chess.Queen] = flip(queenTable)
	ps.mg[chess.King] = flip(kingMG)
	ps.eg[chess.King] = flip(kingEG)
	return ps
}

func (ps PieceSquare) Evaluate(b Board, c chess.Color, ph phase.Phase) float64 {
	var score float64
	for pt := chess.Pawn; pt <= chess.King; pt++ {
		for _, sq := range chess.ScanForward(b.Pieces(pt, c)) {
			idx := tableIndex(sq, c)
			score += ph.Blend(ps.mg[pt][idx], ps.eg[pt][idx])
		}
	}
	return score
}

// tableIndex mirrors a1-indexed squares vertically for Black, so both
// colors read the same table as "my back rank first."
func tableIndex(sq chess.Square, c chess.Color) chess.Square {
	if c == chess.White {
		return sq
	}
	return chess.NewSquare(sq.File(), chess.Rank(7-int(sq.Rank())))
}

// flip converts a rank-8-to-rank-1 literal table (the usual way these
// tables are written out) into a1-indexed order.
func flip(table [64]float64) [chess.NumSquares]float64 {
	var out [chess.NumSquares]float64
	for r := 0; r < chess.NumRanks; r++ {
		for f := 0; f < chess.NumFiles; f++ {
			literalIdx := (7-r)*8 + f
			out[chess.NewSquare(chess.File(f), chess.Rank(r))] = table[literalIdx]
		}
	}
	return out
}

var pawnMG = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEG = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0,
	80, 80, 80, 80, 80, 80, 80, 80,
	50, 50, 50, 50, 50, 50, 50, 50,
	30, 30, 30, 30, 30, 30, 30, 30,
	20, 20, 20, 20, 20, 20, 20, 20,
	10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]float64{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]float64{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]float64{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]float64{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMG = [64]float64{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEG = [64]float64{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}
