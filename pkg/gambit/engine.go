package gambit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/seekerror/logw"

	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess"
	"github.com/herohde/gambit/pkg/heuristic"
	"github.com/herohde/gambit/pkg/search"
)

// ErrNoMoveAvailable is returned by ChooseMove when the position has no
// legal moves, mirroring the sentinel-error convention used for similar
// terminal conditions elsewhere in this kind of engine.
var ErrNoMoveAvailable = errors.New("gambit: no legal move available")

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig overrides the engine's full configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// Engine chooses moves for a position by running the configured search
// strategy over the configured evaluator. It holds no board state of its
// own; callers drive a *board.Board and pass it to ChooseMove each time.
type Engine struct {
	cfg  Config
	eval heuristic.Evaluator
	mu   sync.Mutex
}

// NewEngine builds an Engine starting from DefaultConfig and applying opts
// in order. WithConfig replaces the whole configuration, zero-valued fields
// included.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	e.eval = newEvaluator(e.cfg.Evaluator, e.cfg.ParamOverrides)

	logw.Infof(context.Background(), "Initialized gambit engine: %v", e.cfg)
	return e
}

func newEvaluator(kind EvaluatorKind, overrides map[string]float64) heuristic.Evaluator {
	params := heuristic.DefaultParams()
	if overrides != nil {
		params = params.Merge(heuristic.Params(overrides))
	}

	switch kind {
	case SimpleMaterial:
		return heuristic.NewSimpleMaterial(params)
	case TanhMaterial:
		return heuristic.NewTanhMaterial(params)
	default:
		return heuristic.NewPositional(params)
	}
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// ChooseMove runs the configured search strategy over b and returns the
// chosen move. It returns ErrNoMoveAvailable if the position has no legal
// moves.
func (e *Engine) ChooseMove(b *board.Board) (chess.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var m chess.Move
	switch e.cfg.Strategy {
	case MCTS:
		m, _ = search.NewMCTS(e.eval).GetBestMove(b, e.cfg.Iterations)
	default:
		m, _ = search.NewAlphaBeta(e.eval).GetBestMove(b, e.cfg.Depth)
	}

	if m.IsZero() {
		return chess.Move{}, fmt.Errorf("%w: %v to move with no legal moves", ErrNoMoveAvailable, b.Turn())
	}
	return m, nil
}
