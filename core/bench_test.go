// Package core_test provides benchmarks for BuildGraph.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpath/core"
)

// randomEdges returns m edges over n nodes with lengths in [1,100],
// generated from a fixed seed so runs are comparable.
func randomEdges(n, m int) []core.Edge {
	r := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, m)
	for i := range edges {
		edges[i] = core.Edge{From: r.Intn(n), To: r.Intn(n), Length: int64(1 + r.Intn(100))}
	}

	return edges
}

// BenchmarkBuildGraph_Sparse measures construction of a 10k-node, 40k-edge graph.
func BenchmarkBuildGraph_Sparse(b *testing.B) {
	edges := randomEdges(10_000, 40_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.BuildGraph(edges)
	}
}

// BenchmarkBuildGraph_Dense measures construction of a 500-node, 100k-edge graph.
func BenchmarkBuildGraph_Dense(b *testing.B) {
	edges := randomEdges(500, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.BuildGraph(edges)
	}
}
