// Command goban is a GTP-speaking Go-playing engine, the direct
// successor of the original gongo command-line tool: same [iterations]
// argument convention, same stdin/stdout GTP loop, now backed by a real
// MCTS search instead of flat per-point sampling.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/skybrian/goban/gtp"
)

func main() {
	boardSize := flag.Int("size", 9, "board size")
	iterations := flag.Int("iterations", 1000, "MCTS probes per move")
	komi := flag.Float64("komi", 6.5, "komi added to White's score")
	debug := flag.Bool("debug", false, "enable verbose logging to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		built, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "goban: could not build logger: %v\n", err)
			os.Exit(1)
		}
		logger = built
	}
	defer logger.Sync()

	engine := gtp.NewEngine(gtp.EngineConfig{
		BoardSize:  *boardSize,
		Iterations: *iterations,
		Komi:       *komi,
		Seed:       time.Now().UnixNano(),
		Logger:     logger,
	})

	if err := gtp.Run(engine, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stderr, "got EOF")
			return
		}
		fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
		os.Exit(1)
	}
}
