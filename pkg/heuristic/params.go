// Package heuristic implements the positional evaluator: a composite of
// independent feature evaluators (material, mobility, pawn structure, king
// safety, strategic bonuses, piece-square tables) blended across a
// middlegame/endgame phase scalar, plus the move/capture ordering scores
// the search package uses for MVV-LVA.
package heuristic

// Params holds every tunable constant used by the feature evaluators, keyed
// by name so a caller can override a subset without rebuilding the whole
// set. Grounded on the constants scattered across the original Python
// evaluator modules (material/mobility/pawn-structure/king-safety/strategic),
// collected here instead of as scattered package-level constants so they can
// be tuned or overridden from configuration.
type Params map[string]float64

// DefaultParams returns the constant values taken from the original
// evaluator implementation.
func DefaultParams() Params {
	return Params{
		"material.pawn":   100,
		"material.knight": 320,
		"material.bishop": 330,
		"material.rook":   500,
		"material.queen":  900,

		// The phase.* entries mirror the constants in pkg/heuristic/phase,
		// which does not read them: overriding them has no effect.
		"phase.knight": 1,
		"phase.bishop": 1,
		"phase.rook":   2,
		"phase.queen":  4,
		"phase.max":    24,

		"mobility.knight": 4,
		"mobility.bishop": 3,
		"mobility.rook":   2,
		"mobility.queen":  1,

		"pawn.passed.mg":    5,
		"pawn.passed.eg":    10,
		"pawn.isolated.mg":  15,
		"pawn.isolated.eg":  20,
		"pawn.doubled.mg":   10,
		"pawn.doubled.eg":   15,
		"pawn.connected.mg": 5,
		"pawn.connected.eg": 8,
		"pawn.phalanx.mg":   3,
		"pawn.phalanx.eg":   5,

		"king.shield":        15,
		"king.open":          20,
		"king.attacked":      5,
		"king.attacker.n":    2,
		"king.attacker.b":    2,
		"king.attacker.r":    3,
		"king.attacker.q":    5,
		"king.phase_minimum": 0.1,

		"strategic.bishop_pair":    40,
		"strategic.rook_open":      20,
		"strategic.rook_semi_open": 10,
		"strategic.rook_7th_rank":  40,
		"strategic.knight_outpost": 35,
		"strategic.bad_bishop":     15,
		"strategic.trapped_piece":  50,
		"strategic.rook_battery":   25,

		"capture.victim_weight": 10,
	}
}

// Merge returns a copy of p with every key in overrides applied on top.
func (p Params) Merge(overrides Params) Params {
	merged := make(Params, len(p)+len(overrides))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Get returns the value for key, or 0 if unset.
func (p Params) Get(key string) float64 {
	return p[key]
}
