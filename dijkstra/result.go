package dijkstra

import "fmt"

// Distances is the per-node result of ComputeShortestDistances.
// Index i of every accessor refers to node i of the graph.
type Distances struct {
	source  int
	dist    []Distance
	visited []bool
	order   []int
}

// Len returns the number of nodes covered by the table.
func (d *Distances) Len() int { return len(d.dist) }

// Source returns the node the distances are measured from.
func (d *Distances) Source() int { return d.source }

// Distance returns the final distance of node.
func (d *Distances) Distance(node int) (Distance, error) {
	if node < 0 || node >= len(d.dist) {
		return Distance{}, fmt.Errorf("%w: %d (nodes=%d)", ErrNodeOutOfRange, node, len(d.dist))
	}

	return d.dist[node], nil
}

// All returns a copy of every distance, indexed by node.
func (d *Distances) All() []Distance {
	out := make([]Distance, len(d.dist))
	copy(out, d.dist)

	return out
}

// Visited reports whether node was finalized. After a completed run this is
// true for every node, reachable or not.
func (d *Distances) Visited(node int) bool {
	return node >= 0 && node < len(d.visited) && d.visited[node]
}

// Order returns the nodes in the order they were finalized.
func (d *Distances) Order() []int {
	out := make([]int, len(d.order))
	copy(out, d.order)

	return out
}

// Reachable returns the number of nodes with a finite distance.
func (d *Distances) Reachable() int {
	n := 0
	for _, x := range d.dist {
		if x.Reachable() {
			n++
		}
	}

	return n
}
