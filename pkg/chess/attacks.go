package chess

// Sliding attack generation by classical ray-tracing. herohde-morlock precomputes
// rotated-bitboard attack tables for the same purpose; this module favors the
// simpler occupancy-ray approach since correctness, not raw search throughput,
// is what the feature evaluators and tests depend on.

var (
	rookDirs   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func rayAttacks(sq Square, occupied Bitboard, dirs [][2]int) Bitboard {
	var ret Bitboard
	f, r := int(sq.File()), int(sq.Rank())

	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			target := NewSquare(File(nf), Rank(nr))
			ret |= BitMask(target)
			if occupied.IsSet(target) {
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return ret
}

// RookAttacks returns the attack set of a rook on sq given the board's occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, rookDirs)
}

// BishopAttacks returns the attack set of a bishop on sq given the board's occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, bishopDirs)
}

// QueenAttacks returns the attack set of a queen on sq given the board's occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// PieceAttacks returns the attack set of the given piece type on sq given occupancy.
// The color c is used only for pawns, whose attack direction depends on it.
func PieceAttacks(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return KingAttacks(sq)
	case Pawn:
		return PawnAttacks(c, sq)
	default:
		return EmptyBitboard
	}
}
