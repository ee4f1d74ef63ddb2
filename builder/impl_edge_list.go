// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_edge_list.go - EdgeList, Priorities and PriorityMap constructors.
//
// Contract:
//   - EdgeList adds the listed undirected edges in input order; endpoints
//     are created on demand. A pair with an empty endpoint or u == v is
//     rejected with ErrConstructFailed.
//   - Priorities walks g.Vertices() (sorted) and writes cfg.priorityFn(idx, n, rng)
//     under cfg.priorityKey; values outside [1, n] yield ErrBadPriority.
//   - PriorityMap writes explicit values; unknown IDs yield ErrUnknownVertex.
//     It validates the whole map before writing anything.
//
// Complexity:
//   - EdgeList: O(len(pairs)). Priorities/PriorityMap: O(V log V).

package builder

import (
	"sort"

	"github.com/katalvlaran/mpm/core"
)

// EdgeList returns a Constructor that adds each pair as an undirected edge.
func EdgeList(pairs [][2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, pr := range pairs {
			if pr[0] == "" || pr[1] == "" || pr[0] == pr[1] {
				return builderErrorf(ErrConstructFailed, MethodEdgeList, "pair %d (%q,%q) is not an edge", i, pr[0], pr[1])
			}
			if err := addEdge(g, pr[0], pr[1], MethodEdgeList); err != nil {
				return err
			}
		}

		return nil
	}
}

// Priorities returns a Constructor that assigns a priority to every vertex
// already in g using the configured PriorityFn.
func Priorities() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids := g.Vertices()
		n := len(ids)
		for i, id := range ids {
			p := cfg.priorityFn(i, n, cfg.rng)
			if err := validatePriority(MethodPriorities, id, p, n); err != nil {
				return err
			}
			if err := g.SetVertexAttr(id, cfg.priorityKey, p); err != nil {
				return builderErrorf(ErrConstructFailed, MethodPriorities, "SetVertexAttr(%s): %v", id, err)
			}
		}

		return nil
	}
}

// PriorityMap returns a Constructor that writes explicit priorities.
// Vertices absent from m keep whatever value they had.
func PriorityMap(m map[string]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		keys := make([]string, 0, len(m))
		for id := range m {
			keys = append(keys, id)
		}
		sort.Strings(keys)

		n := g.VertexCount()
		for _, id := range keys {
			if !g.HasVertex(id) {
				return builderErrorf(ErrUnknownVertex, MethodPriorityMap, "vertex %q", id)
			}
			if err := validatePriority(MethodPriorityMap, id, m[id], n); err != nil {
				return err
			}
		}
		for _, id := range keys {
			if err := g.SetVertexAttr(id, cfg.priorityKey, m[id]); err != nil {
				return builderErrorf(ErrConstructFailed, MethodPriorityMap, "SetVertexAttr(%s): %v", id, err)
			}
		}

		return nil
	}
}
