package dijkstra

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/core"
)

// ComputeShortestDistances computes the shortest distance from the source
// node (Options.Source, 0 by default) to every node of g.
//
// Returns a Distances table with one entry per node. Nodes with no path from
// the source hold Unreachable. The graph itself is never modified, so calling
// this again on the same graph yields an identical table.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. An empty graph with the default source returns an empty table.
//  3. Source must be a node of g (ErrSourceOutOfRange).
//
// A relaxation sum exceeding math.MaxInt64 is never stored. It only aborts
// the run with ErrDistanceOverflow when the node it targeted is finalized with
// no representable path at all, i.e. its true distance does not fit in int64.
//
// Complexity:
//
//   - NaiveScan:  O(V² + E) time.
//   - BinaryHeap: O((V + E) log V) time.
//   - Space:      O(V) for the table, plus O(V + E) heap entries for BinaryHeap.
func ComputeShortestDistances(g *core.Graph, opts ...Option) (*Distances, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Empty graph: nothing to compute
	if g.NodeCount() == 0 && cfg.Source == 0 {
		return &Distances{}, nil
	}

	// 4) Validate source
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d (nodes=%d)", ErrSourceOutOfRange, cfg.Source, g.NodeCount())
	}

	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g          *core.Graph
	options    Options
	log        logrus.FieldLogger
	debug      bool       // log accepts Debug entries
	dist       []Distance // dist[v] is the best known distance of v
	visited    []bool     // visited[v] means dist[v] is final
	overflowed []bool     // overflowed[v] means a path to v exceeded int64
	order      []int      // nodes in finalization order
	frontier   frontier
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:          g,
		options:    cfg,
		log:        cfg.Logger,
		debug:      debugEnabled(cfg.Logger),
		dist:       make([]Distance, n),
		visited:    make([]bool, n),
		overflowed: make([]bool, n),
		order:      make([]int, 0, n),
	}
	r.frontier = newFrontier(cfg.Strategy, r)

	return r
}

// init leaves every node Unreachable except the source, which is set to 0.
func (r *runner) init() {
	r.dist[r.options.Source] = Finite(0)
	r.frontier.lower(r.options.Source, 0)
}

// process finalizes exactly one node per iteration, NodeCount times.
// The first node is the source; every following one comes from the frontier.
func (r *runner) process() error {
	current := r.options.Source
	for step := 0; step < len(r.dist); step++ {
		// 0) Reached only through sums past int64: the distance is not representable.
		if r.overflowed[current] && !r.dist[current].Reachable() {
			return fmt.Errorf("%w: node %d", ErrDistanceOverflow, current)
		}

		// 1) Relax every arc leaving current.
		if err := r.relax(current); err != nil {
			return err
		}

		// 2) current is final.
		r.visited[current] = true
		r.order = append(r.order, current)
		if r.debug {
			r.log.WithFields(logrus.Fields{
				"step":     step,
				"node":     current,
				"distance": r.dist[current].String(),
			}).Debug("dijkstra: node finalized")
		}
		if r.options.OnVisit != nil {
			r.options.OnVisit(current, r.dist[current])
		}

		// 3) Select the next node; none left means this was the last step.
		next, ok := r.frontier.next()
		if !ok {
			break
		}
		current = next
	}

	if r.debug {
		r.log.WithFields(logrus.Fields{
			"nodes":    r.g.NodeCount(),
			"edges":    r.g.EdgeCount(),
			"source":   r.options.Source,
			"strategy": r.options.Strategy.String(),
		}).Debug("dijkstra: distances computed")
	}

	return nil
}

// relax lowers the tentative distance of every unvisited neighbor of u
// reachable more cheaply through u. Equal distances are left untouched.
func (r *runner) relax(u int) error {
	du, ok := r.dist[u].Value()
	if !ok {
		// Nothing is reachable through an unreachable node.
		return nil
	}

	arcs, err := r.g.Arcs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get arcs of %d: %w", u, err)
	}

	for _, a := range arcs {
		v := a.To
		if r.visited[v] {
			continue
		}

		if a.Length > math.MaxInt64-du {
			// Cannot beat a finite distance; only remember it for an unreachable one.
			if !r.dist[v].Reachable() {
				r.overflowed[v] = true
			}
			continue
		}
		tentative := Finite(du + a.Length)
		if !tentative.Less(r.dist[v]) {
			continue
		}

		old := r.dist[v]
		r.dist[v] = tentative
		if r.options.OnRelax != nil {
			r.options.OnRelax(v, old, tentative)
		}
		r.frontier.lower(v, du+a.Length)
	}

	return nil
}

func (r *runner) table() *Distances {
	return &Distances{
		source:  r.options.Source,
		dist:    r.dist,
		visited: r.visited,
		order:   r.order,
	}
}

// debugEnabled reports whether l would emit a Debug entry. Loggers of an
// unknown type are assumed to accept everything.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
