package matching

import (
	"sort"

	"github.com/katalvlaran/mpm/core"
)

// parity is the tree label of a vertex within one search.
type parity uint8

const (
	parityUnset    parity = iota // not reached by any tree
	parityPositive               // even distance from its root
	parityNegative               // odd distance from its root
)

func (p parity) String() string {
	switch p {
	case parityPositive:
		return "positive"
	case parityNegative:
		return "negative"
	default:
		return "unset"
	}
}

// blossomID indexes the blossom store of the running search.
type blossomID int

// vertexState is the per-vertex record. priority, matched and mate persist
// across rounds; every other field is reset by prepare.
type vertexState struct {
	priority int
	matched  bool
	mate     int // -1 when exposed

	parity   parity
	parent   int // -1 at a root or when unreached
	root     int // -1 when unreached
	external bool
	blossom  blossomID // valid only when external == false
}

func (v *vertexState) reachable() bool { return v.parity != parityUnset }

// edgeState is the per-edge record; matched persists across rounds.
type edgeState struct {
	id      string // core edge ID
	u, v    int
	matched bool
}

// arena maps core IDs to dense indices once and holds all mutable state.
type arena struct {
	ids    []string
	index  map[string]int
	verts  []vertexState
	edges  []edgeState
	adj    [][]int
	edgeOf map[[2]int]int
}

// newArena indexes the vertices of g in lexicographic order and attaches
// the validated priorities. Neighbor lists are sorted by index.
func newArena(g *core.Graph, priorities map[string]int) *arena {
	ids := g.Vertices()
	a := &arena{
		ids:    ids,
		index:  make(map[string]int, len(ids)),
		verts:  make([]vertexState, len(ids)),
		adj:    make([][]int, len(ids)),
		edgeOf: make(map[[2]int]int),
	}
	for i, id := range ids {
		a.index[id] = i
		a.verts[i] = vertexState{
			priority: priorities[id],
			mate:     -1,
			parent:   -1,
			root:     -1,
			external: true,
		}
	}

	edges := g.Edges()
	a.edges = make([]edgeState, 0, len(edges))
	for _, e := range edges {
		u, v := a.index[e.From], a.index[e.To]
		a.edgeOf[edgeKey(u, v)] = len(a.edges)
		a.edges = append(a.edges, edgeState{id: e.ID, u: u, v: v})
		a.adj[u] = append(a.adj[u], v)
		a.adj[v] = append(a.adj[v], u)
	}
	for _, nbrs := range a.adj {
		sort.Ints(nbrs)
	}

	return a
}

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// edgeIndex returns the arena index of edge {u, v}.
func (a *arena) edgeIndex(u, v int) (int, bool) {
	i, ok := a.edgeOf[edgeKey(u, v)]

	return i, ok
}

// match pairs two exposed adjacent vertices; used only by the greedy seed.
func (a *arena) match(u, v int) {
	i, _ := a.edgeIndex(u, v)
	a.edges[i].matched = true
	a.verts[u].mate, a.verts[v].mate = v, u
	a.verts[u].matched, a.verts[v].matched = true, true
}

// seedGreedy builds a maximal matching: vertices in index order, each
// paired with its first exposed neighbor.
func (a *arena) seedGreedy() int {
	n := 0
	for u := range a.verts {
		if a.verts[u].mate != -1 {
			continue
		}
		for _, v := range a.adj[u] {
			if a.verts[v].mate == -1 {
				a.match(u, v)
				n++
				break
			}
		}
	}

	return n
}

// pairs lists the matched edges as sorted ID pairs.
func (a *arena) pairs() []Pair {
	out := make([]Pair, 0, len(a.verts)/2)
	for _, e := range a.edges {
		if !e.matched {
			continue
		}
		u, v := a.ids[e.u], a.ids[e.v]
		if v < u {
			u, v = v, u
		}
		out = append(out, Pair{U: u, V: v})
	}
	sortPairs(out)

	return out
}

// score counts matched vertices per priority class over n levels.
func (a *arena) score() Score {
	s := make(Score, len(a.verts))
	for _, v := range a.verts {
		if v.matched {
			s[v.priority-1]++
		}
	}

	return s
}

func sortPairs(ps []Pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].U != ps[j].U {
			return ps[i].U < ps[j].U
		}
		return ps[i].V < ps[j].V
	})
}
