package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// Material scores the raw piece count of a color, weighted by piece value.
type Material struct {
	Pawn, Knight, Bishop, Rook, Queen float64
}

// NewMaterial builds a Material evaluator from a params lookup function.
func NewMaterial(get func(key string) float64) Material {
	return Material{
		Pawn:   get("material.pawn"),
		Knight: get("material.knight"),
		Bishop: get("material.bishop"),
		Rook:   get("material.rook"),
		Queen:  get("material.queen"),
	}
}

func (m Material) Evaluate(b Board, c chess.Color, _ phase.Phase) float64 {
	return float64(b.Pieces(chess.Pawn, c).PopCount())*m.Pawn +
		float64(b.Pieces(chess.Knight, c).PopCount())*m.Knight +
		float64(b.Pieces(chess.Bishop, c).PopCount())*m.Bishop +
		float64(b.Pieces(chess.Rook, c).PopCount())*m.Rook +
		float64(b.Pieces(chess.Queen, c).PopCount())*m.Queen
}

// Value returns the nominal value of a piece type, used by move/capture
// ordering (MVV-LVA) independent of any particular board.
func (m Material) Value(pt chess.PieceType) float64 {
	switch pt {
	case chess.Pawn:
		return m.Pawn
	case chess.Knight:
		return m.Knight
	case chess.Bishop:
		return m.Bishop
	case chess.Rook:
		return m.Rook
	case chess.Queen:
		return m.Queen
	default:
		return 0
	}
}
