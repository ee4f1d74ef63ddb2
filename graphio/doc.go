// Package graphio reads and writes priority matching instances and their
// solutions as YAML or JSON.
//
// An instance lists vertices with their priority, optional named integer
// attrs that matching.WithPriorityKey can rank by instead, and an undirected
// edge list; Instance.Graph turns it into a core.Graph ready for
// matching.MaximumPriorityMatching, FromGraph goes the other way.
// A Solution carries the matched pairs and the rendered score.
//
//	inst, err := graphio.LoadInstance("example.yaml")
//	g, err := inst.Graph()
//	res, err := matching.MaximumPriorityMatching(g)
//	err = graphio.EncodeSolution(os.Stdout, graphio.FormatYAML, graphio.NewSolution(res))
package graphio
