// Package dijkstra computes single-source shortest distances over a
// core.Graph whose edges are undirected and have positive lengths.
//
// Overview:
//
//   - ComputeShortestDistances finalizes exactly one node per step, NodeCount
//     steps in total. The source (node 0 unless WithSource says otherwise) is
//     finalized first; each later step picks the unvisited node with the
//     smallest tentative distance, lowest index on ties.
//   - Relaxation only overwrites a tentative distance on a strictly smaller
//     value, so the first minimum found wins.
//   - Nodes without a path from the source are still finalized, in index
//     order after all reachable ones, and report Unreachable.
//
// Selection strategies:
//
//   - NaiveScan (default): a full pass over every node per step. O(V²).
//   - BinaryHeap: container/heap with lazy decrease-key, keyed by
//     (distance, index). O((V + E) log V). Visits nodes in the same order
//     as NaiveScan.
//
// Results:
//
//	d, err := dijkstra.ComputeShortestDistances(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < d.Len(); i++ {
//	    x, _ := d.Distance(i)
//	    fmt.Println(i, x) // a number or "unreachable"
//	}
//
// Distance is a tagged value. There is no "infinity" sentinel in the public
// API. Relaxation sums that would overflow int64 are discarded; if a node
// is reachable only through such sums its distance cannot be represented and
// the run fails with ErrDistanceOverflow instead of wrapping.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         the graph pointer is nil.
//   - ErrSourceOutOfRange: the source is not a node of the graph.
//   - ErrDistanceOverflow: a shortest distance does not fit in int64.
//   - ErrNodeOutOfRange:   Distances.Distance was asked for a missing node.
//
// Thread safety:
//
//   - Graphs are immutable, so concurrent runs on one graph are safe.
//   - A single run is sequential; hooks are called on the calling goroutine.
package dijkstra
