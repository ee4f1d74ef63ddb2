package matching

// pathToRoot returns the alternating path from a positive vertex to the
// root of its tree: start, mate(start), parent(mate(start)), ...
//
// Inside contracted blossoms the walk follows the parent pointers that
// shrink rewrote along each cycle, so the result always alternates
// matched/unmatched starting with a matched edge and ends at an exposed root.
func (s *search) pathToRoot(start int) ([]int, error) {
	verts := s.a.verts
	path := []int{start}
	x := start
	for verts[x].mate != -1 {
		y := verts[x].mate
		x = verts[y].parent
		if x == -1 {
			return nil, malformed("vertex %d has no tree parent on the way up from %d", y, start)
		}
		path = append(path, y, x)
		if len(path) > len(verts) {
			return nil, malformed("walk from %d does not reach a root", start)
		}
	}

	return path, nil
}

// pathsToBase returns the two traversals of a blossom cycle from `from`
// to `base`: forward follows increasing cycle positions, backward
// decreasing ones, both wrapping around. Both start with from and end with base.
func pathsToBase(cycle []int, from, base int) (forward, backward []int, err error) {
	fi, bi := -1, -1
	for i, x := range cycle {
		if x == from {
			fi = i
		}
		if x == base {
			bi = i
		}
	}
	if fi == -1 || bi == -1 {
		return nil, nil, malformed("vertices %d/%d are not both on the cycle", from, base)
	}

	n := len(cycle)
	for i := fi; ; i = (i + 1) % n {
		forward = append(forward, cycle[i])
		if i == bi {
			break
		}
	}
	for i := fi; ; i = (i - 1 + n) % n {
		backward = append(backward, cycle[i])
		if i == bi {
			break
		}
	}

	return forward, backward, nil
}

// mergePaths splices two root-ward paths through the edge (endA, endB):
// a must start at endA and b at endB. The result runs
// rootA ... endA endB ... rootB.
func mergePaths(a, b []int, endA, endB int) ([]int, error) {
	if len(a) == 0 || a[0] != endA {
		return nil, malformed("path does not start at endpoint %d", endA)
	}
	if len(b) == 0 || b[0] != endB {
		return nil, malformed("path does not start at endpoint %d", endB)
	}

	out := make([]int, 0, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		out = append(out, a[i])
	}

	return append(out, b...), nil
}

func reversed(p []int) []int {
	out := make([]int, len(p))
	for i, x := range p {
		out[len(p)-1-i] = x
	}

	return out
}
