// Package builder provides reusable “functional‐options”‐style building blocks
// for test and benchmark graphs of the matching package. It centralizes ID
// schemes, priority policies and topology constructors, keeping fixtures
// deterministic, testable and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, priority policy, prefixes.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – OneBasedIDFn:      decimal strings from "1".
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – PaddedIDFn:        zero‐padded decimals ("007").
//   - Priority policies (PriorityFn implementations):
//     – ConstantPriorityFn, UniformPriorityFn, CyclicPriorityFn, DistinctPriorityFn.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, EdgeList.
//   - Priority assignment:
//     – Priorities (policy driven), PriorityMap (explicit values).
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping a sentinel so callers can use errors.Is.
//   - Same options, seed and constructor order ⇒ identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithPriorityFn(builder.UniformPriorityFn(3))},
//	    builder.RandomSparse(20, 0.2),
//	    builder.Priorities(),
//	)
package builder
