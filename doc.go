// Package mpm computes maximum priority matchings: matchings of an
// undirected simple graph that cover as many priority-1 vertices as
// possible, then as many priority-2 vertices as possible, and so on.
//
// The repository is organized in small packages:
//
//	core/        thread-safe Graph with vertex and edge attribute stores
//	builder/     deterministic graph constructors and priority assignment
//	matching/    Edmonds-style blossom search ranked by priority (MaximumPriorityMatching, PriorityScore)
//	graphio/     YAML/JSON instances and solutions
//	converterts/ gonum/graph import and export
//	cmd/mpm/     command line front end (solve, score, random)
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = builder.Apply(g, nil,
//		builder.EdgeList([][2]string{{"a", "b"}, {"b", "c"}}),
//		builder.PriorityMap(map[string]int{"a": 2, "b": 3, "c": 1}))
//	res, _ := matching.MaximumPriorityMatching(g)
//	fmt.Println(res.Pairs, res.Score) // [{b c}] 101
//
// A run takes O(|V|·(|V|+|E|)·α(|V|)) time and O(|V|+|E|) extra memory.
package mpm
