// Package concurrent fans a single move decision out across several
// independent searches, one per CPU, and merges their root-level votes —
// the same shape as the original multirobot's one-slave-per-CPU design,
// rewritten around golang.org/x/sync/errgroup and mcts.Searcher instead
// of hand-rolled slave robots and a shared win/hit table.
package concurrent

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/skybrian/goban/board"
	"github.com/skybrian/goban/mcts"
)

// Runner owns one independent Searcher per worker, each cloned from the
// same root position with its own random source so probes never race on
// shared state.
type Runner struct {
	workers []*mcts.Searcher
}

// NewRunner builds a Runner with one worker per GOMAXPROCS, mirroring the
// original's one-slave-per-CPU binding. seed fans out deterministically
// (seed, seed+1, seed+2, ...) so a fixed seed still gives reproducible
// runs across process restarts.
func NewRunner(root *board.Board, toPlay board.Color, komi float64, seed int64, metrics *mcts.Metrics) *Runner {
	workerCount := runtime.GOMAXPROCS(0)
	r := &Runner{workers: make([]*mcts.Searcher, workerCount)}
	for i := 0; i < workerCount; i++ {
		rnd := rand.New(rand.NewSource(seed + int64(i)))
		r.workers[i] = mcts.New(root.Clone(), toPlay, komi, rnd, metrics)
	}
	return r
}

// Search splits iterations evenly across workers, runs them concurrently,
// and merges every worker's root-child votes by summing visits and wins
// per distinct move — the concurrent analogue of findWinsMulti summing
// wins/hits across slaves.
func (r *Runner) Search(ctx context.Context, iterations int) mcts.Result {
	perWorker := iterations / len(r.workers)
	if perWorker == 0 {
		perWorker = 1
	}

	results := make([][]mcts.ChildStat, len(r.workers))
	g, gctx := errgroup.WithContext(ctx)
	for i, worker := range r.workers {
		i, worker := i, worker
		g.Go(func() error {
			results[i] = worker.RootStats(gctx, perWorker)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; only ctx cancellation shortens them

	return mergeVotes(results)
}

type tally struct {
	move   board.Point
	isPass bool
	visits int
	wins   float64
}

func mergeVotes(perWorker [][]mcts.ChildStat) mcts.Result {
	totals := make(map[board.Point]*tally)
	for _, stats := range perWorker {
		for _, stat := range stats {
			t, ok := totals[stat.Move]
			if !ok {
				t = &tally{move: stat.Move, isPass: stat.IsPass}
				totals[stat.Move] = t
			}
			t.visits += stat.Visits
			t.wins += stat.Wins
		}
	}

	var best *tally
	for _, t := range totals {
		if best == nil || t.visits > best.visits {
			best = t
		}
	}
	if best == nil {
		return mcts.Result{IsPass: true}
	}
	winRate := 0.0
	if best.visits > 0 {
		winRate = best.wins / float64(best.visits)
	}
	return mcts.Result{
		Move:    best.move,
		IsPass:  best.isPass,
		WinRate: winRate,
		Visits:  best.visits,
	}
}
