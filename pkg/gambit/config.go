// Package gambit is the library surface over the search and evaluation
// packages: a single Engine type that turns a position into a move,
// choosing between the alpha-beta and Monte Carlo strategies.
package gambit

import "fmt"

// Strategy selects which search algorithm Engine.ChooseMove uses.
type Strategy string

const (
	AlphaBeta Strategy = "alphabeta"
	MCTS      Strategy = "mcts"
)

// EvaluatorKind selects which evaluator backs the chosen strategy.
type EvaluatorKind string

const (
	Positional     EvaluatorKind = "positional"
	SimpleMaterial EvaluatorKind = "simple_material"
	TanhMaterial   EvaluatorKind = "tanh_material"
)

// Config configures an Engine.
type Config struct {
	Strategy  Strategy
	Evaluator EvaluatorKind

	// Depth is the alpha-beta search depth in plies. Ignored by MCTS.
	Depth int
	// Iterations is the number of MCTS iterations. Ignored by alpha-beta.
	Iterations int

	// ParamOverrides, if non-nil, is merged on top of the evaluator's
	// default parameters.
	ParamOverrides map[string]float64
}

func (c Config) String() string {
	return fmt.Sprintf("{strategy=%v, evaluator=%v, depth=%v, iterations=%v}",
		c.Strategy, c.Evaluator, c.Depth, c.Iterations)
}

// DefaultConfig returns a reasonable default: alpha-beta to depth 4 over
// the full positional evaluator.
func DefaultConfig() Config {
	return Config{
		Strategy:  AlphaBeta,
		Evaluator: Positional,
		Depth:     4,
		Iterations: 1000,
	}
}
