package core

import "fmt"

// HasNode reports whether node is a valid index of g.
func (g *Graph) HasNode(node int) bool {
	return node >= 0 && node < len(g.adj)
}

// Edges returns a copy of the edge table in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge with the given id (its position in the input list).
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d (edges=%d)", ErrEdgeOutOfRange, id, len(g.edges))
	}

	return g.edges[id], nil
}

// Arcs returns the adjacency list of node in edge-list order.
//
// The returned slice is a view into the graph and must not be modified.
func (g *Graph) Arcs(node int) ([]Arc, error) {
	if !g.HasNode(node) {
		return nil, fmt.Errorf("%w: %d (nodes=%d)", ErrNodeOutOfRange, node, len(g.adj))
	}

	return g.adj[node], nil
}

// Degree returns the number of arcs incident to node.
// A self-loop counts twice.
func (g *Graph) Degree(node int) (int, error) {
	arcs, err := g.Arcs(node)
	if err != nil {
		return 0, err
	}

	return len(arcs), nil
}
