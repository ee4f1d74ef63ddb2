// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with builderErrorf for uniform reporting.
package builder

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mpm/core"
)

// builderErrorf wraps cause with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <cause>"
// that still satisfies errors.Is(err, cause).
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(cause error, method, format string, args ...interface{}) error {
	return errors.Wrapf(cause, "%s: %s", method, fmt.Sprintf(format, args...))
}

// addVerticesWithIDFn adds vertices idFn(0..n-1) and returns their IDs
// in index order.
// Complexity: O(n).
func addVerticesWithIDFn(g *core.Graph, n int, idFn func(int) string, method string) ([]string, error) {
	ids := make([]string, n)
	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		ids[i] = idFn(i)
		if err = g.AddVertex(ids[i]); err != nil {
			return nil, builderErrorf(ErrConstructFailed, method, "AddVertex(%s): %v", ids[i], err)
		}
	}

	return ids, nil
}

// addEdge adds the undirected edge u-v, wrapping any core failure.
func addEdge(g *core.Graph, u, v, method string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return builderErrorf(ErrConstructFailed, method, "AddEdge(%s-%s): %v", u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids.
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *core.Graph, ids []string, method string) error {
	var (
		i, j int
		err  error
	)
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			if err = addEdge(g, ids[i], ids[j], method); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		ids[i] = vertexID(prefix, i)
	}

	return ids
}

// vertexID returns a vertex identifier by concatenating prefix and index.
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
