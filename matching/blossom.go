package matching

// noBlossom marks an outermost blossom.
const noBlossom blossomID = -1

// blossom is one record of the blossom store.
//
// nodes lists the cycle starting at the base, then the u-side walk reversed,
// then the v-side walk. vertices holds the vertices folded in directly,
// children the blossoms folded in whole; size counts every vertex inside.
// outer links a nested blossom to the one that swallowed it.
type blossom struct {
	id       blossomID
	nodes    []int
	vertices []int
	children []blossomID
	size     int
	outer    blossomID
	root     int
	base     int
	positive bool

	bridge [2]int   // the edge (u, v) that closed the cycle
	walks  [2][]int // alternating walks from u and v up to the base, exclusive
	fresh  []int    // members that were negative before contraction
}

// outermost returns the outermost blossom holding the internal vertex x,
// compressing the outer links it follows.
func (s *search) outermost(x int) *blossom {
	top := s.a.verts[x].blossom
	for s.blossoms[top].outer != noBlossom {
		top = s.blossoms[top].outer
	}
	for id := s.a.verts[x].blossom; id != top; {
		next := s.blossoms[id].outer
		s.blossoms[id].outer = top
		id = next
	}
	s.a.verts[x].blossom = top

	return s.blossoms[top]
}

// base returns the effective base of x: x itself when external, otherwise
// the base of its outermost blossom.
func (s *search) base(x int) int {
	if s.a.verts[x].external {
		return x
	}

	return s.outermost(x).base
}

// positive reports the effective parity of x.
func (s *search) positive(x int) bool {
	if !s.a.verts[x].external {
		return s.outermost(x).positive
	}

	return s.a.verts[x].parity == parityPositive
}

// reached reports whether x belongs to some tree.
func (s *search) reached(x int) bool {
	return !s.a.verts[x].external || s.a.verts[x].reachable()
}

// rootOf returns the effective tree root of x, -1 when unreached.
func (s *search) rootOf(x int) int {
	if !s.a.verts[x].external {
		return s.outermost(x).root
	}

	return s.a.verts[x].root
}

// commonBase finds the nearest common ancestor of u and v, measured in
// blossom bases. Both must be positive in the same tree. The two sides
// climb in turns, so the work is bounded by the cycle, not the tree depth.
func (s *search) commonBase(u, v int) (int, error) {
	verts := s.a.verts
	s.stamp += 2
	tag := [2]int{s.stamp - 1, s.stamp}

	cur := [2]int{s.base(u), s.base(v)}
	live := [2]bool{true, true}
	for side := 0; live[0] || live[1]; side ^= 1 {
		if !live[side] {
			continue
		}
		x := cur[side]
		if s.mark[x] == tag[side^1] {
			return x, nil
		}
		s.mark[x] = tag[side]
		if verts[x].mate == -1 {
			live[side] = false
			continue
		}
		cur[side] = s.base(verts[verts[x].mate].parent)
	}

	return -1, malformed("vertices %d and %d do not share a tree", u, v)
}

// walkToBase collects x, mate(x), parent(mate(x)), ... until reaching a
// vertex whose base is b. The walk always has even length.
func (s *search) walkToBase(x, b int) []int {
	var walk []int
	for s.base(x) != b {
		m := s.a.verts[x].mate
		walk = append(walk, x, m)
		x = s.a.verts[m].parent
	}

	return walk
}

// findBlossom assembles the blossom closed by the edge (u, v) between two
// positive vertices of the same tree.
//
// If a member that turns positive has a priority below the current round
// (a larger number), the even alternating path from the root to it is
// returned as escape and the blossom must not be contracted.
func (s *search) findBlossom(u, v int) ([]int, *blossom, error) {
	b, err := s.commonBase(u, v)
	if err != nil {
		return nil, nil, err
	}

	wu, wv := s.walkToBase(u, b), s.walkToBase(v, b)

	nodes := []int{b}
	if len(wu) == 0 && u != b {
		nodes = append(nodes, u)
	}
	nodes = append(nodes, reversed(wu)...)
	nodes = append(nodes, wv...)
	if len(wv) == 0 && v != b {
		nodes = append(nodes, v)
	}

	seen := map[int]struct{}{b: {}}
	comps := []int{b}
	var fresh []int
	for _, w := range [2][]int{wu, wv} {
		for i, x := range w {
			c := s.base(x)
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				comps = append(comps, c)
			}
			if i%2 == 1 && s.a.verts[x].external && s.a.verts[x].parity == parityNegative {
				fresh = append(fresh, x)
			}
		}
	}

	var (
		vertices []int
		children []blossomID
		size     int
	)
	for _, c := range comps {
		if s.a.verts[c].external {
			vertices = append(vertices, c)
			size++
			continue
		}
		inner := s.outermost(c)
		children = append(children, inner.id)
		size += inner.size
	}

	bl := &blossom{
		id:       blossomID(len(s.blossoms)),
		nodes:    nodes,
		vertices: vertices,
		children: children,
		size:     size,
		outer:    noBlossom,
		root:     s.rootOf(b),
		base:     b,
		positive: s.positive(b),
		bridge:   [2]int{u, v},
		walks:    [2][]int{wu, wv},
		fresh:    fresh,
	}

	for _, m := range fresh {
		if s.a.verts[m].priority > s.p {
			escape, err := s.escapePath(bl, m)
			return escape, bl, err
		}
	}

	return nil, bl, nil
}

// escapePath builds root ... mate(m) m for a fresh member m: around the
// cycle from m in the direction of its matched edge down to the base,
// then up the tree from where the cycle was left.
func (s *search) escapePath(bl *blossom, m int) ([]int, error) {
	fwd, bwd, err := pathsToBase(bl.nodes, m, bl.base)
	if err != nil {
		return nil, err
	}

	mm := s.a.verts[m].mate
	var around []int
	switch {
	case len(fwd) > 1 && fwd[1] == mm:
		around = fwd
	case len(bwd) > 1 && bwd[1] == mm:
		around = bwd
	default:
		return nil, malformed("mate of %d is not next to it on the cycle", m)
	}
	around = append([]int(nil), around...)

	u, v := bl.bridge[0], bl.bridge[1]
	from, skip := bl.base, 1
	if bl.base != u && bl.base != v {
		// the base was only a placeholder: leave the cycle where the walk left it
		around = around[:len(around)-1]
		from = around[len(around)-1]
		if from != u && from != v {
			from, skip = s.a.verts[from].parent, 0
		}
	}
	up, err := s.pathToRoot(from)
	if err != nil {
		return nil, err
	}

	return reversed(append(around, up[skip:]...)), nil
}

// shrink stores bl, rewrites the parent pointers along both walks so that
// pathToRoot can cross the cycle, and folds its vertices and child
// blossoms into bl. It returns the members that just turned positive.
func (s *search) shrink(bl *blossom) []int {
	s.rewrite(bl.walks[0], bl.bridge[1])
	s.rewrite(bl.walks[1], bl.bridge[0])

	bl.id = blossomID(len(s.blossoms))
	s.blossoms = append(s.blossoms, bl)
	for _, x := range bl.vertices {
		s.a.verts[x].external = false
		s.a.verts[x].blossom = bl.id
	}
	for _, c := range bl.children {
		s.blossoms[c].outer = bl.id
	}
	for _, x := range bl.fresh {
		s.a.verts[x].parity = parityPositive
	}

	return bl.fresh
}

// rewrite points every even position of walk at the vertex preceding it
// on the cycle, starting with child across the bridge.
func (s *search) rewrite(walk []int, child int) {
	for i := 0; i+1 < len(walk); i += 2 {
		s.a.verts[walk[i]].parent = child
		child = walk[i+1]
	}
}
