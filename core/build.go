package core

import "fmt"

// BuildGraph assembles a Graph from an ordered edge list.
//
// Steps:
//  1. Validate every edge (non-negative endpoints, Length > 0).
//  2. Node count = 1 + largest endpoint index (raised by WithNodeCount).
//  3. Append each edge to the adjacency of both endpoints, in input order.
//     A self-loop lands twice on the same node.
//
// An empty edge list yields a graph with zero nodes.
// The input slice is copied; later changes by the caller are not observed.
//
// Complexity: O(V + E) time and space.
func BuildGraph(edges []Edge, opts ...BuildOption) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	maxIndex := -1
	for i, e := range edges {
		if err := validateEdge(i, e); err != nil {
			return nil, err
		}
		if e.From > maxIndex {
			maxIndex = e.From
		}
		if e.To > maxIndex {
			maxIndex = e.To
		}
	}

	n := maxIndex + 1
	if cfg.minNodes > n {
		n = cfg.minNodes
	}

	g := &Graph{
		edges: make([]Edge, len(edges)),
		adj:   make([][]Arc, n),
	}
	copy(g.edges, edges)

	for id, e := range g.edges {
		g.adj[e.From] = append(g.adj[e.From], Arc{Edge: id, To: e.To, Length: e.Length})
		g.adj[e.To] = append(g.adj[e.To], Arc{Edge: id, To: e.From, Length: e.Length})
	}

	return g, nil
}

// validateEdge rejects negative endpoints and non-positive lengths.
func validateEdge(pos int, e Edge) error {
	if e.From < 0 || e.To < 0 {
		return fmt.Errorf("%w: edge #%d %s has a negative endpoint", ErrInvalidEdge, pos, e)
	}
	if e.Length <= 0 {
		return fmt.Errorf("%w: edge #%d %s length must be > 0", ErrInvalidEdge, pos, e)
	}

	return nil
}
