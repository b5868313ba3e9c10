package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is not a node of
	// the graph. The default source 0 on an empty graph is not an error.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrDistanceOverflow indicates that a node is reachable only through
	// paths whose length does not fit in int64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")

	// ErrNodeOutOfRange indicates a lookup of a node outside the result table.
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")
)

// Distance is the shortest distance to one node, or the explicit marker
// that no path from the source exists. The zero value is Unreachable.
type Distance struct {
	value int64
	ok    bool
}

// Finite returns a reachable Distance of d.
func Finite(d int64) Distance { return Distance{value: d, ok: true} }

// Unreachable returns the Distance of a node with no path from the source.
func Unreachable() Distance { return Distance{} }

// Value returns the distance and true, or 0 and false when unreachable.
func (d Distance) Value() (int64, bool) { return d.value, d.ok }

// Reachable reports whether a path from the source exists.
func (d Distance) Reachable() bool { return d.ok }

// Less orders distances with Unreachable above every finite value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.ok:
		return false
	case !o.ok:
		return true
	default:
		return d.value < o.value
	}
}

// String returns the decimal distance or "unreachable".
func (d Distance) String() string {
	if !d.ok {
		return "unreachable"
	}

	return strconv.FormatInt(d.value, 10)
}

// Strategy selects how the next node to finalize is found.
//
// Both strategies pick the unvisited node with the smallest distance and
// break ties by the lowest node index, so they visit nodes in the same order.
type Strategy int

const (
	// NaiveScan scans every node on each step. O(V²) overall.
	NaiveScan Strategy = iota

	// BinaryHeap keeps a min-heap keyed by (distance, index) with lazy
	// decrease-key. O((V + E) log V) overall.
	BinaryHeap
)

// String returns the strategy name used in configuration files and flags.
func (s Strategy) String() string {
	switch s {
	case NaiveScan:
		return "naive"
	case BinaryHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "naive" or "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "naive", "":
		return NaiveScan, nil
	case "heap":
		return BinaryHeap, nil
	default:
		return 0, fmt.Errorf("dijkstra: unknown strategy %q (want naive|heap)", name)
	}
}

// Options configures a run of ComputeShortestDistances.
//
// Source: index of the start node, 0 by default.
// Strategy: minimum-selection strategy, NaiveScan by default.
// Logger: receives Debug entries per finalized node; discarded by default.
// OnVisit: called once per node when it is finalized, in visit order.
// OnRelax: called whenever a tentative distance strictly decreases.
type Options struct {
	Source   int
	Strategy Strategy
	Logger   logrus.FieldLogger
	OnVisit  func(node int, d Distance)
	OnRelax  func(node int, from, to Distance)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithSource sets the source node. Panics on a negative index.
func WithSource(node int) Option {
	if node < 0 {
		panic(fmt.Sprintf("dijkstra: WithSource(%d): source must be non-negative", node))
	}

	return func(o *Options) { o.Source = node }
}

// WithStrategy selects the minimum-selection strategy.
// Panics on a value other than NaiveScan or BinaryHeap.
func WithStrategy(s Strategy) Option {
	if s != NaiveScan && s != BinaryHeap {
		panic(fmt.Sprintf("dijkstra: WithStrategy: unknown %s", s))
	}

	return func(o *Options) { o.Strategy = s }
}

// WithLogger routes per-node Debug entries to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a hook called when a node is finalized.
func WithOnVisit(fn func(node int, d Distance)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnRelax registers a hook called whenever a tentative distance improves.
func WithOnRelax(fn func(node int, from, to Distance)) Option {
	return func(o *Options) { o.OnRelax = fn }
}

// DefaultOptions returns source 0, NaiveScan, a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Source:   0,
		Strategy: NaiveScan,
		Logger:   discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}
