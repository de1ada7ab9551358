package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// KingSafety rewards an intact pawn shield and penalizes enemy pieces
// bearing down on the king's zone. It is disabled below PhaseMinimum since
// king safety stops mattering once most material, and the attacking pieces
// that make it matter, are off the board.
type KingSafety struct {
	Shield        float64
	Open          float64
	Attacked      float64
	AttackerValue map[chess.PieceType]float64
	PhaseMinimum  float64
}

func NewKingSafety(get func(key string) float64) KingSafety {
	return KingSafety{
		Shield:   get("king.shield"),
		Open:     get("king.open"),
		Attacked: get("king.attacked"),
		AttackerValue: map[chess.PieceType]float64{
			chess.Knight: get("king.attacker.n"),
			chess.Bishop: get("king.attacker.b"),
			chess.Rook:   get("king.attacker.r"),
			chess.Queen:  get("king.attacker.q"),
		},
		PhaseMinimum: get("king.phase_minimum"),
	}
}

func (ks KingSafety) Evaluate(b Board, c chess.Color, ph phase.Phase) float64 {
	if float64(ph) < ks.PhaseMinimum {
		return 0
	}

	king := b.King(c)
	score := ks.attackerPenalty(b, king, c.Opponent()) + ks.shieldScore(b, king, c)
	return float64(ph) * score
}

// attackerPenalty counts enemy N/B/R/Q pieces bearing on the king's zone and
// penalizes only once two or more are attacking at once; a lone attacker is
// not yet a safety concern.
func (ks KingSafety) attackerPenalty(b Board, king chess.Square, enemy chess.Color) float64 {
	zone := chess.KingAttacks(king)

	numAttackers := 0
	totalWeight := 0.0
	for pt, weight := range ks.AttackerValue {
		for _, sq := range chess.ScanForward(b.Pieces(pt, enemy)) {
			if b.Attacks(sq)&zone != 0 {
				numAttackers++
				totalWeight += weight
			}
		}
	}

	if numAttackers <= 1 {
		return 0
	}
	return -ks.Attacked * (float64(numAttackers) * totalWeight)
}

// shieldScore looks at the three squares directly in front of the king,
// rewarding a friendly pawn on each and penalizing its absence. It is
// skipped entirely for a king still on a central file or one that has
// already marched forward, since neither position has a shield worth
// scoring.
func (ks KingSafety) shieldScore(b Board, king chess.Square, c chess.Color) float64 {
	if isCentralFile(king.File()) || isKingTooAdvanced(king, c) {
		return 0
	}

	forward := 1
	if c == chess.Black {
		forward = -1
	}
	r := int(king.Rank()) + forward
	if r < 0 || r >= chess.NumRanks {
		return 0
	}

	var score float64
	kf := int(king.File())
	for f := kf - 1; f <= kf+1; f++ {
		if f < 0 || f >= chess.NumFiles {
			continue
		}
		sq := chess.NewSquare(chess.File(f), chess.Rank(r))
		if isFriendlyPawn(b, sq, c) {
			score += ks.Shield
		} else {
			score -= ks.Open
		}
	}
	return score
}
