// Package search implements move selection over a board and an evaluator:
// fail-hard alpha-beta negamax with quiescence, which orders moves through
// the MoveList priority queue, and an evaluation-guided Monte Carlo tree
// search, which expands untried moves in reverse legal-move order.
package search

import (
	"container/heap"
	"fmt"

	"github.com/herohde/gambit/pkg/chess"
)

// Priority is a move ordering score; higher sorts first.
type Priority float64

// MoveList is a move priority queue used to order candidates before search
// visits them, grounded on the same container/heap approach used for move
// ordering elsewhere in this kind of engine.
type MoveList struct {
	h moveHeap
}

// NewMoveList builds a move list ordering moves by fn, highest first.
func NewMoveList(moves []chess.Move, fn func(m chess.Move) Priority) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops the highest-priority remaining move.
func (ml *MoveList) Next() (chess.Move, bool) {
	if ml.Size() == 0 {
		return chess.Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   chess.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[:n-1]
	return ret
}
