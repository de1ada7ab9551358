// Package board adapts the pkg/chess rules engine to the narrower surface
// the evaluator and search packages actually need: legal move enumeration
// and a three-way game outcome, mirroring the thin Board subclass the
// original Python engine layers over its own rules library.
package board

import (
	"fmt"

	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/chess/fen"
)

// Outcome is the result of a finished game from the perspective of the side
// to move: Loss if that side has been checkmated, Draw if the position is
// drawn, or Ongoing if the game has not ended.
type Outcome int

const (
	Ongoing Outcome = iota
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Board wraps a chess.Board with game-outcome convenience methods.
type Board struct {
	*chess.Board
}

// New returns a board in the standard starting position.
func New() *Board {
	return &Board{Board: chess.NewBoard()}
}

// NewFromFEN parses a board from a FEN record.
func NewFromFEN(record string) (*Board, error) {
	b, err := fen.Decode(record)
	if err != nil {
		return nil, fmt.Errorf("parse FEN: %w", err)
	}
	return &Board{Board: b}, nil
}

// FEN renders the current position as a FEN record.
func (b *Board) FEN() string {
	return fen.Encode(b.Board)
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	return &Board{Board: b.Board.Copy()}
}

// IsDrawByRule reports whether the position is drawn by stalemate,
// insufficient material, the fifty-move rule, or threefold repetition.
func (b *Board) IsDrawByRule() bool {
	return b.Board.IsDraw()
}

// GetOutcome reports the game's outcome from the perspective of the side to
// move, or Ongoing if the game is still in progress.
func (b *Board) GetOutcome() Outcome {
	switch {
	case b.IsCheckmate():
		return Loss
	case b.IsDrawByRule():
		return Draw
	default:
		return Ongoing
	}
}

// IsTerminal reports whether the game has ended.
func (b *Board) IsTerminal() bool {
	return b.GetOutcome() != Ongoing
}
