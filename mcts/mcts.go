// Package mcts implements Monte Carlo tree search for move selection and
// final-score estimation, replacing the flat per-point win/loss sampling
// the original robot used with a real UCB1 tree: lazy node expansion, an
// eye-avoiding rollout policy, and two-consecutive-passes termination
// scored by simple single-neighbour territory agreement against komi.
package mcts

import (
	"context"
	"math"
	"math/rand"

	"github.com/skybrian/goban/board"
	"github.com/skybrian/goban/eye"
)

// Pass is the sentinel move a node or rollout uses to represent passing.
var Pass = board.Point{X: -1, Y: -1}

func isPass(p board.Point) bool { return p == Pass }

// expandThreshold is the visit count a leaf must reach before its children
// are materialised (the lazy expansion rule) — below it, a leaf is
// only ever rolled out, never branched.
const expandThreshold = 8

// explorationConstant is UCB1's c in wins/visits + c*sqrt(ln(N)/n).
const explorationConstant = 1.4

// node is one position in the search tree. Children are created lazily;
// untried holds the legal moves (plus always Pass) not yet given a child.
type node struct {
	parent   *node
	move     board.Point
	toPlay   board.Color // colour to move AT this node
	children []*node
	visits   int
	wins     float64 // wins for the player who moved INTO this node
	untried  []board.Point
	expanded bool
}

// Searcher runs MCTS probes from a fixed root position and reports the
// move with the most visits — the standard robust-child choice, steadier
// than picking the highest win rate from a lightly-visited node.
type Searcher struct {
	root    *board.Board
	toPlay  board.Color
	komi    float64
	rnd     *rand.Rand
	metrics *Metrics

	scratch *board.Board // reused across rollouts, never allocated per-probe
}

// New creates a Searcher for the given position. rnd may be nil, in which
// case a default source is used; callers that run several Searchers
// concurrently should give each its own *rand.Rand (rand.Rand is not
// goroutine-safe).
func New(root *board.Board, toPlay board.Color, komi float64, rnd *rand.Rand, metrics *Metrics) *Searcher {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	return &Searcher{
		root:    root,
		toPlay:  toPlay,
		komi:    komi,
		rnd:     rnd,
		metrics: metrics,
		scratch: root.Clone(),
	}
}

// Result reports the chosen move and the estimated win rate for the player
// to move at the root.
type Result struct {
	Move    board.Point
	IsPass  bool
	WinRate float64
	Visits  int
}

// Search runs up to iterations probes, or stops early if ctx is cancelled,
// and returns the most-visited root child.
func (s *Searcher) Search(ctx context.Context, iterations int) Result {
	root := s.run(ctx, iterations)

	best := bestChild(root)
	if best == nil {
		return Result{IsPass: true}
	}
	return Result{
		Move:    best.move,
		IsPass:  isPass(best.move),
		WinRate: best.wins / math.Max(float64(best.visits), 1),
		Visits:  best.visits,
	}
}

// ChildStat reports one root move's accumulated search statistics, for
// callers that run several independent Searchers and want to merge their
// root-level votes (see package concurrent) rather than take one
// Searcher's single best move.
type ChildStat struct {
	Move   board.Point
	IsPass bool
	Visits int
	Wins   float64
}

// RootStats runs up to iterations probes and returns every root child's
// raw visit/win counts, unreduced.
func (s *Searcher) RootStats(ctx context.Context, iterations int) []ChildStat {
	root := s.run(ctx, iterations)
	stats := make([]ChildStat, 0, len(root.children))
	for _, c := range root.children {
		stats = append(stats, ChildStat{Move: c.move, IsPass: isPass(c.move), Visits: c.visits, Wins: c.wins})
	}
	return stats
}

func (s *Searcher) run(ctx context.Context, iterations int) *node {
	root := s.newNode(nil, Pass, s.toPlay)

	ran := 0
	for i := 0; i < iterations; i++ {
		if i%64 == 0 {
			select {
			case <-ctx.Done():
				i = iterations
				continue
			default:
			}
		}
		s.probe(root)
		ran++
	}

	if s.metrics != nil {
		s.metrics.observeIterations(ran)
	}
	return root
}

func bestChild(n *node) *node {
	var best *node
	for _, c := range n.children {
		if best == nil || c.visits > best.visits {
			best = c
		}
	}
	return best
}

// newNode only allocates the node; probe fills in its legal-move list
// (plus Pass) the first time it visits the node, not at creation.
func (s *Searcher) newNode(parent *node, move board.Point, toPlay board.Color) *node {
	return &node{parent: parent, move: move, toPlay: toPlay}
}

func (s *Searcher) legalMoves(b *board.Board, c board.Color) []board.Point {
	moves := make([]board.Point, 0, b.Width()*b.Height())
	for p := range b.Iter() {
		if b.IsLegal(p, c) {
			moves = append(moves, p)
		}
	}
	moves = append(moves, Pass)
	return moves
}

// probe runs one full selection/expansion/rollout/backpropagation cycle
// starting at root, replaying every selected move onto s.scratch so the
// rollout never has to touch the real root board.
func (s *Searcher) probe(root *node) {
	s.scratch.CopyFrom(s.root)

	n := root
	passes := 0
	for {
		if !n.expanded {
			n.untried = s.legalMoves(s.scratch, n.toPlay)
			n.expanded = true
		}

		if len(n.untried) > 0 && n.visits >= expandThreshold {
			move := n.untried[len(n.untried)-1]
			n.untried = n.untried[:len(n.untried)-1]
			if !isPass(move) {
				s.scratch.Play(move, n.toPlay)
				passes = 0
			} else {
				passes++
			}
			child := s.newNode(n, move, n.toPlay.Opponent())
			n.children = append(n.children, child)
			s.metrics.observeExpansion()
			winner := s.rollout(passes, child.toPlay)
			s.backpropagate(child, winner)
			return
		}

		if len(n.children) == 0 {
			// Leaf below the expansion threshold: roll out directly from
			// here without adding a child.
			winner := s.rollout(passes, n.toPlay)
			s.backpropagate(n, winner)
			return
		}

		n = s.select_(n)
		if isPass(n.move) {
			passes++
		} else {
			s.scratch.Play(n.move, n.toPlay.Opponent())
			passes = 0
		}
		if passes >= 2 {
			winner := s.score()
			s.backpropagate(n, winner)
			return
		}
	}
}

// select_ applies UCB1 over n's children. Named with a trailing underscore
// to avoid shadowing the builtin-adjacent "select" keyword's visual shape.
func (s *Searcher) select_(n *node) *node {
	var best *node
	bestScore := math.Inf(-1)
	logN := math.Log(float64(n.visits + 1))
	for _, c := range n.children {
		if c.visits == 0 {
			return c
		}
		exploit := c.wins / float64(c.visits)
		explore := explorationConstant * math.Sqrt(logN/float64(c.visits))
		score := exploit + explore
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// rollout plays uniformly random eye-avoiding moves from s.scratch's
// current position, starting with toPlay to move, until two consecutive
// passes (counting any already accumulated on the path into this
// rollout), then scores the resulting position.
func (s *Searcher) rollout(passes int, toPlay board.Color) board.Color {
	for passes < 2 {
		move, ok := s.pickRolloutMove(toPlay)
		if !ok {
			passes++
		} else {
			s.scratch.Play(move, toPlay)
			passes = 0
			s.metrics.observeRolloutPly()
		}
		toPlay = toPlay.Opponent()
	}
	return s.score()
}

func (s *Searcher) pickRolloutMove(c board.Color) (board.Point, bool) {
	var candidates []board.Point
	for p := range s.scratch.Iter() {
		if !s.scratch.IsLegal(p, c) {
			continue
		}
		if eye.IsEye(s.eyeAccessor(), p.X, p.Y, eyeColor(c)) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return board.Point{}, false
	}
	return candidates[s.rnd.Intn(len(candidates))], true
}

func eyeColor(c board.Color) eye.Color {
	if c == board.White {
		return eye.White
	}
	return eye.Black
}

func (s *Searcher) eyeAccessor() eye.Accessor {
	return func(x, y int) eye.Color {
		p := board.Point{X: x, Y: y}
		if x < 1 || x > s.scratch.Width() || y < 1 || y > s.scratch.Height() {
			return eye.OffBoard
		}
		switch s.scratch.At(p) {
		case board.Black:
			return eye.Black
		case board.White:
			return eye.White
		default:
			return eye.Empty
		}
	}
}

// score performs single-neighbour territory scoring (as opposed to a
// flood-fill "all neighbours of the whole region agree" alternative): a
// stone counts for its own colour; an empty cell counts for a colour only
// if every one of its own valid orthogonal neighbours that holds a stone
// is that colour (empty neighbours don't participate, and a cell with no
// stone neighbours at all is undecided). Black's area minus White's area
// minus komi must be strictly positive for Black to win; anything else,
// including an exact tie, goes to White.
func (s *Searcher) score() board.Color {
	blackArea, whiteArea := 0.0, 0.0

	for p := range s.scratch.Iter() {
		switch s.scratch.At(p) {
		case board.Black:
			blackArea++
			continue
		case board.White:
			whiteArea++
			continue
		}

		owner := board.None
		disputed := false
		for _, nb := range p.Neighbours() {
			if nb.X < 1 || nb.X > s.scratch.Width() || nb.Y < 1 || nb.Y > s.scratch.Height() {
				continue
			}
			c := s.scratch.At(nb)
			if c == board.None {
				continue
			}
			if owner == board.None {
				owner = c
			} else if owner != c {
				disputed = true
			}
		}
		if disputed {
			continue
		}
		switch owner {
		case board.Black:
			blackArea++
		case board.White:
			whiteArea++
		}
	}

	diff := blackArea - whiteArea - s.komi
	if diff > 0 {
		return board.Black
	}
	return board.White
}

func (s *Searcher) backpropagate(leaf *node, winner board.Color) {
	gain := func(perspective board.Color) float64 {
		switch winner {
		case perspective:
			return 1
		case board.None:
			return 0.5
		default:
			return 0
		}
	}

	for n := leaf; n != nil; n = n.parent {
		n.visits++
		// n.wins is tracked from the perspective of whoever moved INTO n,
		// i.e. the opponent of n.toPlay.
		n.wins += gain(n.toPlay.Opponent())
	}
}
