// Command gambit chooses a single move for a position and prints it. It is
// a demonstration driver for the gambit library, not a UCI engine: it reads
// one FEN, searches once, and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"

	"github.com/herohde/gambit/pkg/board"
	"github.com/herohde/gambit/pkg/chess/fen"
	"github.com/herohde/gambit/pkg/gambit"
)

var (
	fenFlag        = flag.String("fen", fen.Initial, "Position to search, in FEN notation")
	strategyFlag   = flag.String("strategy", string(gambit.AlphaBeta), "Search strategy: alphabeta or mcts")
	evaluatorFlag  = flag.String("evaluator", string(gambit.Positional), "Evaluator: positional, simple_material, or tanh_material")
	depthFlag      = flag.Int("depth", 4, "Alpha-beta search depth in plies")
	iterationsFlag = flag.Int("iterations", 1000, "MCTS iteration count")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gambit [options]

gambit chooses one move for a position and prints it.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	b, err := board.NewFromFEN(*fenFlag)
	if err != nil {
		logw.Exitf(ctx, "Invalid FEN %q: %v", *fenFlag, err)
	}

	cfg := gambit.Config{
		Strategy:   gambit.Strategy(*strategyFlag),
		Evaluator:  gambit.EvaluatorKind(*evaluatorFlag),
		Depth:      *depthFlag,
		Iterations: *iterationsFlag,
	}
	e := gambit.NewEngine(gambit.WithConfig(cfg))

	logw.Infof(ctx, "Searching %v with %v", b.FEN(), cfg)

	m, err := e.ChooseMove(b)
	if err != nil {
		logw.Exitf(ctx, "No move chosen: %v", err)
	}

	b.Push(m)
	fmt.Printf("bestmove %v\n", m)
	fmt.Printf("fen %v\n", b.FEN())
}
