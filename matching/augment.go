package matching

import "github.com/cockroachdb/errors"

// malformed builds an assertion failure that still matches ErrMalformedPath.
func malformed(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrMalformedPath)
}

// reversePath flips every edge of an alternating path that starts at an
// exposed vertex, then flips the matched flag of both endpoints.
//
// The path must alternate unmatched/matched starting with an unmatched
// edge. With an odd edge count both endpoints end up matched (augmentation);
// with an even edge count the first vertex is covered and the last one is
// released (swap).
//
// Nothing is mutated when the path is rejected.
func (a *arena) reversePath(path []int) error {
	if len(path) < 2 {
		return malformed("path of %d vertices cannot be flipped", len(path))
	}
	if a.verts[path[0]].mate != -1 {
		return malformed("path starts at matched vertex %d", path[0])
	}
	if last := path[len(path)-1]; len(path)%2 == 0 && a.verts[last].mate != -1 {
		return malformed("augmenting path ends at matched vertex %d", last)
	}

	idx := make([]int, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		e, ok := a.edgeIndex(path[i], path[i+1])
		if !ok {
			return malformed("vertices %d and %d are not adjacent", path[i], path[i+1])
		}
		if a.edges[e].matched != (i%2 == 1) {
			return malformed("edge %d-%d breaks alternation at position %d", path[i], path[i+1], i)
		}
		idx[i] = e
	}

	for _, e := range idx {
		a.edges[e].matched = !a.edges[e].matched
	}
	for i := 0; i+1 < len(path); i += 2 {
		a.verts[path[i]].mate = path[i+1]
		a.verts[path[i+1]].mate = path[i]
	}
	first, last := path[0], path[len(path)-1]
	if len(path)%2 == 1 {
		a.verts[last].mate = -1
	}
	a.verts[first].matched = !a.verts[first].matched
	a.verts[last].matched = !a.verts[last].matched

	return nil
}

// verify checks that matched edges form a matching and that the vertex
// flags and mate cache agree with them.
func (a *arena) verify() error {
	deg := make([]int, len(a.verts))
	for _, e := range a.edges {
		if !e.matched {
			continue
		}
		deg[e.u]++
		deg[e.v]++
		if a.verts[e.u].mate != e.v || a.verts[e.v].mate != e.u {
			return errors.AssertionFailedf("mate cache disagrees with edge %s", e.id)
		}
	}
	for i, d := range deg {
		if d > 1 {
			return errors.AssertionFailedf("vertex %s covered by %d matched edges", a.ids[i], d)
		}
		if a.verts[i].matched != (d == 1) {
			return errors.AssertionFailedf("matched flag of %s is stale", a.ids[i])
		}
	}

	return nil
}
