// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID sequence.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges (mirrored adjacency); self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), d = incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	var edgeSet map[string]struct{}
	for _, edgeSet = range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. For directed edges only outgoing neighbors count.
//
// Errors: propagated from Neighbors(id).
//
// Complexity: O(d + k log k), k = unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var e *Edge
	var nbr string
	for _, e = range edges {
		nbr = e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency lazily allocates adjacencyList[from] and, when to != "",
// adjacencyList[from][to]. Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, from, to string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	if to == "" {
		return
	}
	if _, ok = inner[to]; !ok {
		inner[to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from adjacencyList[from][to] and its mirror.
// Caller must hold muEdgeAdj for writing.
func removeAdjacency(g *Graph, e *Edge) {
	if bucket, ok := g.adjacencyList[e.From][e.To]; ok {
		delete(bucket, e.ID)
	}
	if !e.Directed {
		if bucket, ok := g.adjacencyList[e.To][e.From]; ok {
			delete(bucket, e.ID)
		}
	}
}

// cleanupAdjacency drops empty inner buckets so HasEdge stays an O(1) length probe.
// Outer per-vertex maps are kept for vertices that still exist.
// Caller must hold muEdgeAdj for writing.
func cleanupAdjacency(g *Graph) {
	var to string
	var inner map[string]map[string]struct{}
	for _, inner = range g.adjacencyList {
		for to = range inner {
			if len(inner[to]) == 0 {
				delete(inner, to)
			}
		}
	}
}
