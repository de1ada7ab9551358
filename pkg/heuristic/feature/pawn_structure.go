package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// PawnStructure scores passed, isolated, doubled, connected, and phalanx
// pawns. Each constant has separate middlegame and endgame values blended by
// the phase, since passed pawns in particular matter far more once pieces
// come off the board. Doubled pawns are penalized once per pawn on the file
// rather than once per extra pawn, matching the behavior inherited from the
// original evaluator.
type PawnStructure struct {
	PassedMG, PassedEG       float64
	IsolatedMG, IsolatedEG   float64
	DoubledMG, DoubledEG     float64
	ConnectedMG, ConnectedEG float64
	PhalanxMG, PhalanxEG     float64
}

func NewPawnStructure(get func(key string) float64) PawnStructure {
	return PawnStructure{
		PassedMG:    get("pawn.passed.mg"),
		PassedEG:    get("pawn.passed.eg"),
		IsolatedMG:  get("pawn.isolated.mg"),
		IsolatedEG:  get("pawn.isolated.eg"),
		DoubledMG:   get("pawn.doubled.mg"),
		DoubledEG:   get("pawn.doubled.eg"),
		ConnectedMG: get("pawn.connected.mg"),
		ConnectedEG: get("pawn.connected.eg"),
		PhalanxMG:   get("pawn.phalanx.mg"),
		PhalanxEG:   get("pawn.phalanx.eg"),
	}
}

func (ps PawnStructure) Evaluate(b Board, c chess.Color, ph phase.Phase) float64 {
	var score float64
	pawns := chess.ScanForward(b.Pieces(chess.Pawn, c))
	own := b.Pieces(chess.Pawn, c)
	enemy := b.Pieces(chess.Pawn, c.Opponent())

	for _, sq := range pawns {
		rel := relativeRank(sq, c)

		if ps.isPassed(sq, c, enemy) {
			bonus := float64(rel*rel)
			score += ph.Blend(bonus*ps.PassedMG, bonus*ps.PassedEG)
		}
		if ps.isIsolated(sq, own) {
			score += ph.Blend(-ps.IsolatedMG, -ps.IsolatedEG)
		}
		if ps.isDoubled(sq, own) {
			score += ph.Blend(-ps.DoubledMG, -ps.DoubledEG)
		}
		if ps.isConnected(sq, c, own) {
			factor := 1 + float64(rel)/7
			score += ph.Blend(ps.ConnectedMG*factor, ps.ConnectedEG*factor)
		}
	}
	score += ps.phalanxScore(ph, own)

	return score
}

func (ps PawnStructure) isPassed(sq chess.Square, c chess.Color, enemy chess.Bitboard) bool {
	for _, esq := range chess.ScanForward(enemy) {
		if fileDistance(esq.File(), sq.File()) > 1 {
			continue
		}
		if isAhead(esq, sq, c.Opponent()) {
			return false
		}
	}
	return true
}

func (ps PawnStructure) isIsolated(sq chess.Square, own chess.Bitboard) bool {
	for _, f := range adjacentFiles(sq.File()) {
		if own&chess.BBFiles[f] != 0 {
			return false
		}
	}
	return true
}

func (ps PawnStructure) isDoubled(sq chess.Square, own chess.Bitboard) bool {
	return (own & chess.BBFiles[sq.File()]).PopCount() > 1
}

// isConnected reports whether a friendly pawn sits on an adjacent file on
// the rank directly behind sq.
func (ps PawnStructure) isConnected(sq chess.Square, c chess.Color, own chess.Bitboard) bool {
	behind := int(sq.Rank()) - 1
	if c == chess.Black {
		behind = int(sq.Rank()) + 1
	}
	if behind < 0 || behind >= chess.NumRanks {
		return false
	}
	for _, f := range adjacentFiles(sq.File()) {
		if own.IsSet(chess.NewSquare(f, chess.Rank(behind))) {
			return true
		}
	}
	return false
}

// phalanxScore counts each file-adjacent same-rank pawn pair once, scanning
// the right-hand neighbor only so a pair is never double-counted.
func (ps PawnStructure) phalanxScore(ph phase.Phase, own chess.Bitboard) float64 {
	var pairs int
	for _, sq := range chess.ScanForward(own) {
		if sq.File() == chess.FileH {
			continue
		}
		neighbor := chess.NewSquare(sq.File()+1, sq.Rank())
		if own.IsSet(neighbor) {
			pairs++
		}
	}
	return float64(pairs) * ph.Blend(ps.PhalanxMG, ps.PhalanxEG)
}

// relativeRank returns a pawn's distance from its own back rank: 1 on the
// pawn starting rank, 7 on the promotion rank, mirrored for Black.
func relativeRank(sq chess.Square, c chess.Color) int {
	if c == chess.White {
		return int(sq.Rank())
	}
	return 7 - int(sq.Rank())
}

func fileDistance(a, b chess.File) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
