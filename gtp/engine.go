package gtp

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/skybrian/goban/board"
	"github.com/skybrian/goban/concurrent"
	"github.com/skybrian/goban/mcts"
)

// defaultIterations mirrors the original's default SampleCount of 1000
// playouts per move.
const defaultIterations = 1000

// EngineConfig configures an Engine the way the original Config
// configured a robot: board size, iteration budget and an optional
// logger, all with sensible defaults when left zero.
type EngineConfig struct {
	BoardSize  int
	Iterations int
	Komi       float64
	Seed       int64
	Logger     *zap.Logger
	Metrics    *mcts.Metrics
}

// Engine implements Robot on top of board.Board and a concurrent MCTS
// search, replacing the original robot's flat per-point sampling with a
// real tree search fanned out across CPUs.
type Engine struct {
	b          *board.Board
	komi       float64
	iterations int
	seed       int64
	log        *zap.Logger
	metrics    *mcts.Metrics
}

// NewEngine builds an Engine from config, filling in the same defaults
// the original newRobot applied (9x9 board, 1000 samples) plus a no-op
// logger and a random seed when the caller leaves a field zero.
func NewEngine(config EngineConfig) *Engine {
	size := config.BoardSize
	if size <= 0 {
		size = 9
	}
	iterations := config.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := config.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	return &Engine{
		b:          board.New(size, size),
		komi:       config.Komi,
		iterations: iterations,
		seed:       seed,
		log:        logger,
		metrics:    config.Metrics,
	}
}

func (e *Engine) GetBoardSize() int { return e.b.Width() }

func (e *Engine) GetCell(x, y int) board.Color {
	if x < 1 || x > e.b.Width() || y < 1 || y > e.b.Height() {
		return board.None
	}
	return e.b.At(board.NewPoint(x-1, y-1))
}

func (e *Engine) SetBoardSize(size int) bool {
	if size <= 0 || size > MaxBoardSize {
		return false
	}
	e.b = board.New(size, size)
	return true
}

func (e *Engine) ClearBoard() { e.b = board.New(e.b.Width(), e.b.Height()) }

func (e *Engine) SetKomi(komi float64) { e.komi = komi }

// Play adds a move for c at (x, y), or passes if (x, y) is (0, 0). The
// GTP convention that a same-colour double-move implies the other side
// passed doesn't apply here — Board.Play takes an explicit colour on
// every call, so there's no "whose turn" state to get out of sync.
func (e *Engine) Play(c board.Color, x, y int) (ok bool, message string) {
	if x == 0 && y == 0 {
		return true, ""
	}
	p := board.NewPoint(x-1, y-1)
	if !e.b.IsLegal(p, c) {
		return false, "illegal move"
	}
	e.b.Play(p, c)
	return true, ""
}

// GenMove runs a concurrent MCTS search and plays its chosen move.
func (e *Engine) GenMove(color board.Color) (x, y int, result MoveResult) {
	runner := concurrent.NewRunner(e.b, color, e.komi, e.seed, e.metrics)

	start := time.Now()
	res := runner.Search(context.Background(), e.iterations)
	e.log.Debug("genmove search complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("visits", res.Visits),
		zap.Float64("win_rate", res.WinRate))

	if res.IsPass {
		return 0, 0, Passed
	}
	e.b.Play(res.Move, color)
	return res.Move.X, res.Move.Y, Played
}

// randomSeed returns a process-lifetime-unique seed the way the original
// multirobot seeded each slave from time.Now(), used by NewEngine when
// EngineConfig.Seed is left zero.
func randomSeed() int64 {
	return rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
}
