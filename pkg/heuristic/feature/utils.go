package feature

import "github.com/herohde/gambit/pkg/chess"

// isFriendlyPawn reports whether sq holds a pawn of color c.
func isFriendlyPawn(b Board, sq chess.Square, c chess.Color) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Type == chess.Pawn && p.Color == c
}

// isCentralFile reports whether f is one of the two central files.
func isCentralFile(f chess.File) bool {
	return f == chess.FileD || f == chess.FileE
}

// isSeventhRank reports whether sq sits on c's seventh rank (the rank just
// short of promotion), mirrored for Black.
func isSeventhRank(sq chess.Square, c chess.Color) bool {
	if c == chess.White {
		return sq.Rank() == chess.Rank7
	}
	return sq.Rank() == chess.Rank2
}

// isKingTooAdvanced reports whether c's king has left its first two ranks,
// a rough proxy for king safety independent of pawn shield integrity.
func isKingTooAdvanced(sq chess.Square, c chess.Color) bool {
	if c == chess.White {
		return sq.Rank() > chess.Rank2
	}
	return sq.Rank() < chess.Rank7
}

// isOutpost reports whether sq, if occupied by a c-colored minor piece,
// could never be attacked by an enemy pawn (no enemy pawn on an adjacent
// file can be ahead of sq) and is defended by a friendly pawn.
func isOutpost(b Board, sq chess.Square, c chess.Color) bool {
	if !isDefendedByPawn(b, sq, c) {
		return false
	}

	f := sq.File()
	enemy := c.Opponent()
	for _, nf := range adjacentFiles(f) {
		for _, esq := range chess.ScanForward(b.Pieces(chess.Pawn, enemy)) {
			if esq.File() != nf {
				continue
			}
			if isAhead(esq, sq, enemy) {
				return false
			}
		}
	}
	return true
}

func isDefendedByPawn(b Board, sq chess.Square, c chess.Color) bool {
	return chess.PawnAttacks(c.Opponent(), sq)&b.Pieces(chess.Pawn, c) != 0
}

// isAhead reports whether target lies strictly ahead of sq along color c's
// direction of travel, so that a c pawn on sq could still advance toward it
// (used to decide whether an enemy pawn can still challenge a square as it
// advances).
func isAhead(sq, target chess.Square, c chess.Color) bool {
	if c == chess.White {
		return sq.Rank() < target.Rank()
	}
	return sq.Rank() > target.Rank()
}

func adjacentFiles(f chess.File) []chess.File {
	var ret []chess.File
	if f > chess.FileA {
		ret = append(ret, f-1)
	}
	if f < chess.FileH {
		ret = append(ret, f+1)
	}
	return ret
}
