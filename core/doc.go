// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface and per-vertex / per-edge attribute stores.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Attributes:
//
//	SetVertexAttr(id, key, val) / VertexAttr(id, key)
//	SetEdgeAttr(eid, key, val)  / EdgeAttr(eid, key)
//
// The matching engine reads the "priority" vertex attribute and writes the
// "matched" attribute on vertices and edges; core itself attaches no meaning
// to keys.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1) + cleanup
//	HasEdge(from, to string) bool      // O(1)
//	EdgeBetween(from, to string) (*Edge, error)
//
//	// Queries
//	Vertices() []string                // sorted
//	Edges() []*Edge                    // sorted by creation sequence
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Degree(id string) (in, out, undirected int, err error)
//	Stats() *GraphStats
//
// Concurrency:
//
// Lock order is always muVert -> muEdgeAdj. Stats takes the two locks one
// after the other and never holds both.
package core
