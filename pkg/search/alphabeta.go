package search

import (
	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic"
)

// CheckmateScore is the score assigned to a forced mate, inflated by the
// remaining search depth at the moment it is detected so that a mate found
// with more depth left (i.e. nearer the root, and so sooner) scores higher
// than one found deeper in the tree.
const CheckmateScore = 10000

// DrawScore is the score assigned to any drawn position.
const DrawScore = 0

// infinity bounds the initial alpha-beta window comfortably outside any
// reachable checkmate score.
const infinity float64 = CheckmateScore + 1000

// AlphaBeta selects moves by fail-hard negamax search with a quiescence
// extension on captures, using eval both to score leaves and to order
// moves so that the cutoffs that make alpha-beta fast actually happen.
type AlphaBeta struct {
	Eval heuristic.Evaluator
}

// NewAlphaBeta builds an AlphaBeta searcher over the given evaluator.
func NewAlphaBeta(eval heuristic.Evaluator) AlphaBeta {
	return AlphaBeta{Eval: eval}
}

// GetBestMove searches to the given depth and returns the best move found
// along with its score from the side-to-move's perspective. Returns the
// zero Move if the position has no legal moves.
func (ab AlphaBeta) GetBestMove(b *board.Board, depth int) (chess.Move, float64) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, 0
	}

	ordered := ab.order(b, moves)

	var best chess.Move
	bestScore := -infinity
	alpha, beta := -infinity, infinity

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		b.Push(m)
		score := -ab.negamax(b, depth-1, -beta, -alpha)
		b.Pop()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore
}

// negamax scores the position at depth remaining plies, from the
// perspective of the side to move.
func (ab AlphaBeta) negamax(b *board.Board, depth int, alpha, beta float64) float64 {
	if b.IsCheckmate() {
		return -(CheckmateScore + float64(depth))
	}
	if b.IsDraw() {
		return DrawScore
	}
	if depth <= 0 {
		return ab.quiescence(b, alpha, beta)
	}

	moves := b.LegalMoves()
	ordered := ab.order(b, moves)

	best := -infinity
	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		b.Push(m)
		score := -ab.negamax(b, depth-1, -beta, -alpha)
		b.Pop()

		if score >= beta {
			return beta
		}
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
	}
	return best
}

// quiescence extends search through capture sequences only, so the static
// evaluator is never asked to score a position where a profitable capture
// is still hanging.
func (ab AlphaBeta) quiescence(b *board.Board, alpha, beta float64) float64 {
	turn := b.Turn()
	standPat := ab.Eval.EvaluateBoard(b, turn)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := b.LegalCaptures()
	ordered := ab.orderCaptures(b, captures)

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		b.Push(m)
		score := -ab.quiescence(b, -beta, -alpha)
		b.Pop()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (ab AlphaBeta) order(b *board.Board, moves []chess.Move) *MoveList {
	return NewMoveList(moves, func(m chess.Move) Priority {
		return Priority(ab.Eval.EvaluateMove(b, m))
	})
}

func (ab AlphaBeta) orderCaptures(b *board.Board, moves []chess.Move) *MoveList {
	return NewMoveList(moves, func(m chess.Move) Priority {
		return Priority(ab.Eval.EvaluateCapture(b, m))
	})
}
