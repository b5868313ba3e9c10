package edgelist

import "github.com/katalvlaran/lvpath/core"

// Sample returns the eight-node, fourteen-edge demonstration graph.
// Shortest distances from node 0 are [0 3 1 4 2 4 8 4].
func Sample() []core.Edge {
	return []core.Edge{
		{From: 0, To: 2, Length: 1},
		{From: 0, To: 3, Length: 4},
		{From: 0, To: 4, Length: 2},
		{From: 0, To: 1, Length: 3},
		{From: 1, To: 3, Length: 2},
		{From: 1, To: 4, Length: 3},
		{From: 1, To: 5, Length: 1},
		{From: 2, To: 4, Length: 1},
		{From: 3, To: 5, Length: 4},
		{From: 4, To: 5, Length: 2},
		{From: 4, To: 6, Length: 7},
		{From: 4, To: 7, Length: 2},
		{From: 5, To: 6, Length: 4},
		{From: 6, To: 7, Length: 5},
	}
}
