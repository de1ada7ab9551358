package chess

// PseudoLegalMoves generates all moves for the side to move without checking
// whether the mover's own king ends up in check.
func (b *Board) PseudoLegalMoves() []Move {
	var moves []Move
	us := b.turn
	them := us.Opponent()

	moves = append(moves, b.pawnMoves(us, them)...)

	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen, King} {
		for _, from := range ScanForward(b.pieces[us][pt]) {
			targets := PieceAttacks(pt, us, from, b.all()) &^ b.occupied[us]
			for _, to := range ScanForward(targets) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}

	moves = append(moves, b.castlingMoves(us)...)
	return moves
}

func (b *Board) pawnMoves(us, them Color) []Move {
	var moves []Move
	forward := 1
	startRank := Rank2
	promoRank := Rank8
	if us == Black {
		forward = -1
		startRank = Rank7
		promoRank = Rank1
	}

	for _, from := range ScanForward(b.pieces[us][Pawn]) {
		f, r := int(from.File()), int(from.Rank())

		one := r + forward
		if onBoard(f, one) {
			to := NewSquare(File(f), Rank(one))
			if !b.all().IsSet(to) {
				moves = append(moves, promoOrPlain(from, to, Rank(one), promoRank)...)

				if from.Rank() == startRank {
					two := r + 2*forward
					to2 := NewSquare(File(f), Rank(two))
					if !b.all().IsSet(to2) {
						moves = append(moves, Move{From: from, To: to2})
					}
				}
			}
		}

		for _, df := range []int{-1, 1} {
			nf := f + df
			nr := r + forward
			if !onBoard(nf, nr) {
				continue
			}
			to := NewSquare(File(nf), Rank(nr))
			if b.occupied[them].IsSet(to) {
				moves = append(moves, promoOrPlain(from, to, Rank(nr), promoRank)...)
			} else if to == b.epSquare {
				moves = append(moves, Move{From: from, To: to, IsEnPassant: true})
			}
		}
	}
	return moves
}

func promoOrPlain(from, to Square, landingRank, promoRank Rank) []Move {
	if landingRank == promoRank {
		return []Move{
			{From: from, To: to, Promotion: Queen},
			{From: from, To: to, Promotion: Rook},
			{From: from, To: to, Promotion: Bishop},
			{From: from, To: to, Promotion: Knight},
		}
	}
	return []Move{{From: from, To: to}}
}

func (b *Board) castlingMoves(us Color) []Move {
	var moves []Move
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	them := us.Opponent()

	if b.castling.Has(kingsideRight(us)) &&
		!b.all().IsSet(NewSquare(FileF, rank)) && !b.all().IsSet(NewSquare(FileG, rank)) &&
		!b.IsAttacked(NewSquare(FileE, rank), them) &&
		!b.IsAttacked(NewSquare(FileF, rank), them) &&
		!b.IsAttacked(NewSquare(FileG, rank), them) {
		moves = append(moves, Move{From: NewSquare(FileE, rank), To: NewSquare(FileG, rank), IsCastle: true})
	}

	if b.castling.Has(queensideRight(us)) &&
		!b.all().IsSet(NewSquare(FileD, rank)) && !b.all().IsSet(NewSquare(FileC, rank)) && !b.all().IsSet(NewSquare(FileB, rank)) &&
		!b.IsAttacked(NewSquare(FileE, rank), them) &&
		!b.IsAttacked(NewSquare(FileD, rank), them) &&
		!b.IsAttacked(NewSquare(FileC, rank), them) {
		moves = append(moves, Move{From: NewSquare(FileE, rank), To: NewSquare(FileC, rank), IsCastle: true})
	}

	return moves
}

// LegalMoves generates all moves for the side to move that do not leave its
// own king in check.
func (b *Board) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.turn

	for _, m := range pseudo {
		b.Push(m)
		if !b.IsAttacked(b.King(mover), b.turn) {
			legal = append(legal, m)
		}
		b.Pop()
	}
	return legal
}

// LegalCaptures returns the subset of LegalMoves that capture an opposing piece.
func (b *Board) LegalCaptures() []Move {
	var captures []Move
	for _, m := range b.LegalMoves() {
		if b.IsCapture(m) {
			captures = append(captures, m)
		}
	}
	return captures
}

// IsCapture reports whether m captures a piece, including en passant.
func (b *Board) IsCapture(m Move) bool {
	if m.IsEnPassant {
		return true
	}
	return b.occupied[b.turn.Opponent()].IsSet(m.To)
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	occ := b.all()

	if KnightAttacks(sq)&b.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&b.pieces[by][King] != 0 {
		return true
	}
	if PawnAttacks(by.Opponent(), sq)&b.pieces[by][Pawn] != 0 {
		return true
	}
	if RookAttacks(sq, occ)&(b.pieces[by][Rook]|b.pieces[by][Queen]) != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&(b.pieces[by][Bishop]|b.pieces[by][Queen]) != 0 {
		return true
	}
	return false
}

// Attacks returns the squares attacked by the piece standing on sq, or an
// empty bitboard if sq is empty.
func (b *Board) Attacks(sq Square) Bitboard {
	p, ok := b.PieceAt(sq)
	if !ok {
		return EmptyBitboard
	}
	return PieceAttacks(p.Type, p.Color, sq, b.all())
}
