package dijkstra

import (
	"container/heap"
	"math"
)

// frontier yields the next node to finalize.
//
// Implementations read the runner's dist and visited slices and must return
// the unvisited node with the smallest distance, lowest index on ties.
type frontier interface {
	// lower is called after dist[node] strictly decreased to d.
	lower(node int, d int64)

	// next returns the selected node, or false when every node is visited.
	next() (int, bool)
}

// newFrontier returns the frontier implementing s over the runner's state.
func newFrontier(s Strategy, r *runner) frontier {
	if s == BinaryHeap {
		return newHeapFrontier(r)
	}

	return &scanFrontier{r: r}
}

// scanFrontier is the naive unsorted-array selection: a full pass over all
// nodes, replacing the candidate only on a strictly smaller distance.
type scanFrontier struct {
	r *runner
}

func (f *scanFrontier) lower(int, int64) {}

func (f *scanFrontier) next() (int, bool) {
	best := -1
	for i, d := range f.r.dist {
		if f.r.visited[i] {
			continue
		}
		if best < 0 || d.Less(f.r.dist[best]) {
			best = i
		}
	}

	return best, best >= 0
}

// heapFrontier keeps every unvisited node in a min-heap keyed by
// (distance, index). Stale entries are skipped when popped.
type heapFrontier struct {
	r  *runner
	pq nodePQ
}

func newHeapFrontier(r *runner) *heapFrontier {
	// Seed one unreachable entry per node so nodes never reached through an
	// edge still come out, in index order, after all reachable ones.
	pq := make(nodePQ, len(r.dist))
	for i := range pq {
		pq[i] = nodeItem{id: i, dist: math.MaxInt64, inf: true}
	}
	heap.Init(&pq)

	return &heapFrontier{r: r, pq: pq}
}

func (f *heapFrontier) lower(node int, d int64) {
	heap.Push(&f.pq, nodeItem{id: node, dist: d})
}

func (f *heapFrontier) next() (int, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(nodeItem)
		if f.r.visited[item.id] {
			continue
		}
		// An unreachable seed for a node that has since been reached.
		if item.inf && f.r.dist[item.id].Reachable() {
			continue
		}

		return item.id, true
	}

	return -1, false
}

// nodeItem is one heap entry. inf marks the seed entry of a node that has
// not been reached yet; it sorts after every finite distance.
type nodeItem struct {
	id   int
	dist int64
	inf  bool
}

// nodePQ is a min-heap of nodeItem ordered by (inf, dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.inf != b.inf {
		return !a.inf
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.id < b.id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
