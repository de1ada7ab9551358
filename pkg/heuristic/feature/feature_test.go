package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/chess/fen"
	"github.com/herohde/gambit/pkg/heuristic/phase"
)

func mustDecode(t *testing.T, record string) *chess.Board {
	t.Helper()
	b, err := fen.Decode(record)
	require.NoError(t, err)
	return b
}

func TestMaterialEvaluatesStartingPositionEqual(t *testing.T) {
	b := mustDecode(t, fen.Initial)
	m := NewMaterial(DefaultGet)

	white := m.Evaluate(b, chess.White, phase.Phase(1))
	black := m.Evaluate(b, chess.Black, phase.Phase(1))
	assert.Equal(t, white, black)
	assert.Equal(t, 8*m.Pawn+2*m.Knight+2*m.Bishop+2*m.Rook+m.Queen, white)
}

func TestPawnStructureIsolatedAndDoubled(t *testing.T) {
	b := mustDecode(t, "4k3/8/8/8/8/P7/P7/4K3 w - - 0 1")
	ps := NewPawnStructure(DefaultGet)
	ph := phase.Phase(1)

	score := ps.Evaluate(b, chess.White, ph)
	// Both pawns are isolated (no pawns on file B), doubled (two on file A),
	// and trivially passed (no enemy pawns anywhere); their relative ranks
	// are 1 (a2) and 2 (a3), neither connected nor phalanxed.
	want := float64(1*1+2*2)*ph.Blend(ps.PassedMG, ps.PassedEG) +
		2*ph.Blend(-ps.IsolatedMG, -ps.IsolatedEG) +
		2*ph.Blend(-ps.DoubledMG, -ps.DoubledEG)
	assert.Equal(t, want, score)
}

func TestKnightOutpostBonus(t *testing.T) {
	b := mustDecode(t, "4k3/8/8/3N4/2P5/8/8/4K3 w - - 0 1")
	s := NewStrategic(DefaultGet)
	score := s.evaluateKnights(b, chess.White)
	assert.Equal(t, s.KnightOutpost, score)
}

// DefaultGet is a params lookup matching heuristic.DefaultParams, duplicated
// here to avoid an import cycle between heuristic and heuristic/feature.
func DefaultGet(key string) float64 {
	values := map[string]float64{
		"material.pawn": 100, "material.knight": 320, "material.bishop": 330,
		"material.rook": 500, "material.queen": 900,
		"mobility.knight": 4, "mobility.bishop": 3, "mobility.rook": 2, "mobility.queen": 1,
		"pawn.passed.mg": 5, "pawn.passed.eg": 10,
		"pawn.isolated.mg": 15, "pawn.isolated.eg": 20,
		"pawn.doubled.mg": 10, "pawn.doubled.eg": 15,
		"pawn.connected.mg": 5, "pawn.connected.eg": 8,
		"pawn.phalanx.mg": 3, "pawn.phalanx.eg": 5,
		"king.shield": 15, "king.open": 20, "king.attacked": 5,
		"king.attacker.n": 2, "king.attacker.b": 2, "king.attacker.r": 3, "king.attacker.q": 5,
		"king.phase_minimum": 0.1,
		"strategic.bishop_pair": 40, "strategic.rook_open": 20, "strategic.rook_semi_open": 10, "strategic.rook_7th_rank": 40,
		"strategic.knight_outpost": 35, "strategic.bad_bishop": 15, "strategic.trapped_piece": 50,
		"strategic.rook_battery": 25,
	}
	return values[key]
}
