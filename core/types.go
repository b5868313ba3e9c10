// Package core defines the Edge, Arc and Graph types of lvpath and the
// BuildGraph constructor that assembles a Graph from a flat edge list.
//
// A Graph owns a single immutable edge table. Every node keeps a slice of
// Arcs, each Arc being an index into that table plus the resolved neighbor,
// so an edge is stored once and referenced by both of its endpoints.
//
// Graphs are immutable after BuildGraph returns and may be shared freely
// between goroutines.
//
// Errors:
//
//	ErrInvalidEdge     - an edge has a negative endpoint or a non-positive length.
//	ErrNodeOutOfRange  - a node index is outside [0, NodeCount()).
//	ErrEdgeOutOfRange  - an edge id is outside [0, EdgeCount()).
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates a malformed edge: a negative endpoint index
	// or a length that is not strictly positive.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, EdgeCount()).
	ErrEdgeOutOfRange = errors.New("core: edge id out of range")
)

// Edge is an undirected connection between two nodes.
//
// From and To are node indices, Length is the traversal cost.
// An Edge is a plain value; the Graph keeps its own copy.
type Edge struct {
	// From is one endpoint index.
	From int

	// To is the other endpoint index.
	To int

	// Length is the cost of traversing the edge in either direction.
	Length int64
}

// Neighbor returns the endpoint opposite to node.
// If node equals From the result is To, otherwise From.
// For a self-loop both endpoints coincide and node itself is returned.
func (e Edge) Neighbor(node int) int {
	if e.From == node {
		return e.To
	}

	return e.From
}

// String renders the edge as "from-to(length)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Length)
}

// Arc is one entry of a node's adjacency list.
//
// Edge is the id of the underlying edge in the Graph's edge table,
// To is the neighbor reached through it and Length is copied from the edge
// so relaxation never has to go back to the table.
type Arc struct {
	Edge   int
	To     int
	Length int64
}

// Graph is the immutable result of BuildGraph.
type Graph struct {
	edges []Edge  // edge table, caller order; edge id = position
	adj   [][]Arc // adj[v] lists arcs incident to v in edge order
}

// BuildOption configures BuildGraph.
type BuildOption func(*buildConfig)

type buildConfig struct {
	minNodes int
}

// WithNodeCount ensures the built graph has at least n nodes, even when
// the edge list never mentions the trailing indices. Such nodes are isolated.
// Panics if n is negative.
func WithNodeCount(n int) BuildOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithNodeCount(%d): node count must be non-negative", n))
	}

	return func(c *buildConfig) { c.minNodes = n }
}

// NodeCount returns the number of nodes (1 + the largest endpoint index).
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of edges supplied to BuildGraph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
