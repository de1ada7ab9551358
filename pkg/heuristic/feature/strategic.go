package feature

import (
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

// Strategic scores positional motifs that don't fit material, mobility, pawn
// structure, or king safety: the bishop pair, rooks on open and semi-open
// files and the seventh rank, knight outposts, bad bishops boxed in by their
// own pawns, a knight trapped in a corner, a rook trapped behind its own
// king, and rook batteries doubled on a file.
type Strategic struct {
	BishopPair    float64
	RookOpen      float64
	RookSemiOpen  float64
	Rook7thRank   float64
	KnightOutpost float64
	BadBishop     float64
	TrappedPiece  float64
	RookBattery   float64
}

func NewStrategic(get func(key string) float64) Strategic {
	return Strategic{
		BishopPair:    get("strategic.bishop_pair"),
		RookOpen:      get("strategic.rook_open"),
		RookSemiOpen:  get("strategic.rook_semi_open"),
		Rook7thRank:   get("strategic.rook_7th_rank"),
		KnightOutpost: get("strategic.knight_outpost"),
		BadBishop:     get("strategic.bad_bishop"),
		TrappedPiece:  get("strategic.trapped_piece"),
		RookBattery:   get("strategic.rook_battery"),
	}
}

func (s Strategic) Evaluate(b Board, c chess.Color, _ phase.Phase) float64 {
	var score float64

	if b.Pieces(chess.Bishop, c).PopCount() >= 2 {
		score += s.BishopPair
	}

	score += s.evaluateBishops(b, c)
	score += s.evaluateKnights(b, c)
	score += s.evaluateRooks(b, c)
	score += s.evaluateTrappedKnights(b, c)
	score += s.evaluateTrappedRook(b, c)

	return score
}

// evaluateBishops penalizes each color complex, light or dark, on which the
// side still has a bishop and more than two of its own pawns boxing it in.
func (s Strategic) evaluateBishops(b Board, c chess.Color) float64 {
	var score float64
	pawns := b.Pieces(chess.Pawn, c)
	bishops := b.Pieces(chess.Bishop, c)

	if bishops&chess.BBLightSquares != 0 {
		if n := (pawns & chess.BBLightSquares).PopCount(); n > 2 {
			score -= float64(n-2) * s.BadBishop
		}
	}
	if bishops&chess.BBDarkSquares != 0 {
		if n := (pawns & chess.BBDarkSquares).PopCount(); n > 2 {
			score -= float64(n-2) * s.BadBishop
		}
	}
	return score
}

func (s Strategic) evaluateKnights(b Board, c chess.Color) float64 {
	var score float64
	for _, sq := range chess.ScanForward(b.Pieces(chess.Knight, c)) {
		if isOutpost(b, sq, c) {
			score += s.KnightOutpost
		}
	}
	return score
}

func (s Strategic) evaluateRooks(b Board, c chess.Color) float64 {
	var score float64
	own := b.Pieces(chess.Pawn, c)
	enemy := b.Pieces(chess.Pawn, c.Opponent())
	rooks := b.Pieces(chess.Rook, c)

	for _, sq := range chess.ScanForward(rooks) {
		file := chess.BBFiles[sq.File()]
		switch {
		case own&file != 0:
			// Not open: a friendly pawn still sits on the file.
		case enemy&file == 0:
			score += s.RookOpen
		default:
			score += s.RookSemiOpen
		}

		if isSeventhRank(sq, c) {
			score += s.Rook7thRank
		}
		if b.Attacks(sq)&rooks&file != 0 {
			score += s.RookBattery / 2
		}
	}
	return score
}

// evaluateTrappedKnights penalizes a knight sitting in a board corner with
// fewer than three attacked squares, the classic sign it has nowhere useful
// to go.
func (s Strategic) evaluateTrappedKnights(b Board, c chess.Color) float64 {
	var score float64
	for _, sq := range chess.ScanForward(b.Pieces(chess.Knight, c)) {
		if chess.BBCorners.IsSet(sq) && b.Attacks(sq).PopCount() < 3 {
			score -= s.TrappedPiece
		}
	}
	return score
}

// evaluateTrappedRook penalizes the specific pattern of a castled king on g1
// (g8 for Black) boxing its own rook in on h1 (h8) behind a piece on f1 (f8).
func (s Strategic) evaluateTrappedRook(b Board, c chess.Color) float64 {
	homeRank := chess.Rank1
	if c == chess.Black {
		homeRank = chess.Rank8
	}

	kingSq := chess.NewSquare(chess.FileG, homeRank)
	rookSq := chess.NewSquare(chess.FileH, homeRank)
	blockSq := chess.NewSquare(chess.FileF, homeRank)

	if b.King(c) != kingSq {
		return 0
	}
	if !b.Pieces(chess.Rook, c).IsSet(rookSq) {
		return 0
	}
	if p, ok := b.PieceAt(blockSq); !ok || p.Type == chess.King {
		return 0
	}
	return -s.TrappedPiece
}
