package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// Mobility rewards pieces with more available squares, weighted per piece
// type since a mobile rook matters less than a mobile knight in the same
// position.
type Mobility struct {
	Knight, Bishop, Rook, Queen float64
}

func NewMobility(get func(key string) float64) Mobility {
	return Mobility{
		Knight: get("mobility.knight"),
		Bishop: get("mobility.bishop"),
		Rook:   get("mobility.rook"),
		Queen:  get("mobility.queen"),
	}
}

func (m Mobility) Evaluate(b Board, c chess.Color, _ phase.Phase) float64 {
	var score float64
	score += m.countMoves(b, chess.Knight, c) * m.Knight
	score += m.countMoves(b, chess.Bishop, c) * m.Bishop
	score += m.countMoves(b, chess.Rook, c) * m.Rook
	score += m.countMoves(b, chess.Queen, c) * m.Queen
	return score
}

func (m Mobility) countMoves(b Board, pt chess.PieceType, c chess.Color) float64 {
	ownOccupied := ownOccupancy(b, c)

	var count int
	for _, sq := range chess.ScanForward(b.Pieces(pt, c)) {
		count += (b.Attacks(sq) &^ ownOccupied).PopCount()
	}
	return float64(count)
}

func ownOccupancy(b Board, c chess.Color) chess.Bitboard {
	var occ chess.Bitboard
	for pt := chess.Pawn; pt <= chess.King; pt++ {
		occ |= b.Pieces(pt, c)
	}
	return occ
}
