// Package converters provides two-way adapters between core.Graph and
// gonum/graph:
//
//   - FromGonum imports any undirected gonum graph, storing a priority per
//     vertex so the result can go straight into matching.
//   - ToGonum exports a simple undirected core.Graph as a
//     simple.UndirectedGraph plus the vertex ID mapping.
//
// gonum identifies nodes by int64; on import the decimal form of the node
// ID becomes the core vertex ID, on export vertices are numbered in sorted
// ID order starting from 0.
package converters
