// Package lvpath computes single-source shortest distances over static,
// undirected graphs with positive integer edge lengths.
//
// Under the hood, everything is organized under a few subpackages:
//
//	core/        Edge, Arc and Graph types; BuildGraph from a flat edge list
//	dijkstra/    ComputeShortestDistances with naive-scan or binary-heap selection
//	edgelist/    text, YAML and TOML edge list decoding; the sample graph
//	report/      plain and lipgloss-styled distance tables
//	config/      TOML configuration for the lvpath command
//	cmd/lvpath   the command-line front end
//
// Quick example:
//
//	g, _ := core.BuildGraph([]core.Edge{{From: 0, To: 1, Length: 3}})
//	d, _ := dijkstra.ComputeShortestDistances(g)
//	fmt.Println(d.All()) // [0 3]
package lvpath
