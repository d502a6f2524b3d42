package mcts

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes optional Prometheus instrumentation for search depth and
// throughput. A nil *Metrics is always safe to pass to New — every method
// below guards against it, so callers who don't care about metrics never
// pay for a registry.
type Metrics struct {
	iterations prometheus.Counter
	expansions prometheus.Counter
	rolloutPly prometheus.Counter
}

// NewMetrics registers counters on reg and returns a *Metrics wired to
// them. Pass a nil *Metrics to New (not the result of calling this with a
// nil registry) to disable metrics entirely.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "goban",
			Subsystem: "mcts",
			Name:      "probes_total",
			Help:      "Number of MCTS probes run across all searches.",
		}),
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "goban",
			Subsystem: "mcts",
			Name:      "tree_expansions_total",
			Help:      "Number of lazily-expanded tree nodes across all searches.",
		}),
		rolloutPly: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "goban",
			Subsystem: "mcts",
			Name:      "rollout_plies_total",
			Help:      "Number of moves played during rollouts, across all searches.",
		}),
	}
	reg.MustRegister(m.iterations, m.expansions, m.rolloutPly)
	return m
}

func (m *Metrics) observeIterations(n int) {
	if m == nil {
		return
	}
	m.iterations.Add(float64(n))
}

func (m *Metrics) observeExpansion() {
	if m == nil {
		return
	}
	m.expansions.Inc()
}

func (m *Metrics) observeRolloutPly() {
	if m == nil {
		return
	}
	m.rolloutPly.Inc()
}
