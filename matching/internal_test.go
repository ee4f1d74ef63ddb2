package matching

import (
	"fmt"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpm/core"
)

// arenaOf builds an arena over the given edges with every priority from prio.
func arenaOf(t *testing.T, edges [][2]string, prio map[string]int) *arena {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return newArena(g, prio)
}

func quietSearch(a *arena) *search {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return newSearch(a, l, &Stats{})
}

// idx maps IDs to arena indices.
func idx(a *arena, ids ...string) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = a.index[id]
	}

	return out
}

func TestReversePath(t *testing.T) {
	// a - b = c - d, with b=c matched
	a := arenaOf(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}},
		map[string]int{"a": 1, "b": 1, "c": 1, "d": 1})
	b, c := a.index["b"], a.index["c"]
	a.match(b, c)

	require.NoError(t, a.reversePath(idx(a, "a", "b", "c", "d")))
	require.NoError(t, a.verify())
	assert.Equal(t, []Pair{{U: "a", V: "b"}, {U: "c", V: "d"}}, a.pairs())
	assert.Equal(t, Score{4, 0, 0, 0}, a.score())
}

func TestReversePath_Swap(t *testing.T) {
	a := arenaOf(t, [][2]string{{"r", "x"}, {"x", "y"}},
		map[string]int{"r": 1, "x": 1, "y": 2})
	a.match(a.index["x"], a.index["y"])

	require.NoError(t, a.reversePath(idx(a, "r", "x", "y")))
	require.NoError(t, a.verify())
	assert.Equal(t, []Pair{{U: "r", V: "x"}}, a.pairs())
	assert.False(t, a.verts[a.index["y"]].matched)
	assert.Equal(t, -1, a.verts[a.index["y"]].mate)
}

func TestReversePath_Rejects(t *testing.T) {
	prio := map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}
	tests := []struct {
		name string
		path []string
	}{
		{"too short", []string{"a"}},
		{"starts matched", []string{"b", "c"}},
		{"ends matched", []string{"a", "b"}},
		{"not adjacent", []string{"a", "d"}},
		{"no alternation", []string{"a", "b", "a"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := arenaOf(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}, prio)
			a.match(a.index["b"], a.index["c"])
			before := append([]edgeState(nil), a.edges...)

			err := a.reversePath(idx(a, tc.path...))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedPath), "got %v", err)
			assert.Equal(t, before, a.edges, "rejected path must not mutate")
		})
	}
}

func TestMergePaths(t *testing.T) {
	got, err := mergePaths([]int{3, 2, 1}, []int{4, 5}, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	_, err = mergePaths([]int{3, 2}, []int{4}, 2, 4)
	assert.True(t, errors.Is(err, ErrMalformedPath))
	_, err = mergePaths([]int{3}, nil, 3, 4)
	assert.True(t, errors.Is(err, ErrMalformedPath))
}

func TestPathsToBase(t *testing.T) {
	fwd, bwd, err := pathsToBase([]int{10, 11, 12, 13, 14}, 12, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 13, 14, 10}, fwd)
	assert.Equal(t, []int{12, 11, 10}, bwd)

	fwd, bwd, err = pathsToBase([]int{10, 11, 12}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, fwd)
	assert.Equal(t, []int{10}, bwd)

	_, _, err = pathsToBase([]int{10, 11, 12}, 9, 10)
	assert.True(t, errors.Is(err, ErrMalformedPath))
}

// TestFindBlossom_EscapeMatchesContraction builds r - a = b, b - c = d,
// b - e = f, d - f by hand. With c below the round, the edge d-f must yield
// the escape path r a b e f d c, which is also what pathToRoot finds once
// the cycle b c d f e is contracted.
func TestFindBlossom_EscapeMatchesContraction(t *testing.T) {
	a := arenaOf(t,
		[][2]string{{"r", "a"}, {"a", "b"}, {"b", "c"}, {"c", "d"}, {"b", "e"}, {"e", "f"}, {"d", "f"}},
		map[string]int{"r": 1, "a": 1, "b": 1, "c": 5, "d": 1, "e": 1, "f": 1})
	v := func(id string) int { return a.index[id] }
	a.match(v("a"), v("b"))
	a.match(v("c"), v("d"))
	a.match(v("e"), v("f"))

	s := quietSearch(a)
	require.Equal(t, 1, s.prepare(1))
	for _, arc := range [][2]string{{"r", "a"}, {"b", "c"}, {"b", "e"}} {
		done, err := s.examine(v(arc[0]), v(arc[1]))
		require.NoError(t, err)
		require.False(t, done)
	}
	assert.Equal(t, parityNegative, a.verts[v("c")].parity)
	assert.Equal(t, parityPositive, a.verts[v("f")].parity)

	escape, bl, err := s.findBlossom(v("d"), v("f"))
	require.NoError(t, err)
	assert.Equal(t, idx(a, "r", "a", "b", "e", "f", "d", "c"), escape)
	assert.Equal(t, v("b"), bl.base)
	assert.Equal(t, idx(a, "b", "c", "d", "f", "e"), bl.nodes)
	assert.Equal(t, idx(a, "c", "e"), bl.fresh)

	fresh := s.shrink(bl)
	assert.Equal(t, idx(a, "c", "e"), fresh)
	up, err := s.pathToRoot(v("c"))
	require.NoError(t, err)
	assert.Equal(t, escape, reversed(up))
	for _, x := range idx(a, "b", "c", "d", "e", "f") {
		assert.False(t, a.verts[x].external)
		assert.True(t, s.positive(x))
		assert.Equal(t, v("b"), s.base(x))
	}
	assert.True(t, a.verts[v("a")].external)
}

func TestFindBlossom_Triangle(t *testing.T) {
	a := arenaOf(t, [][2]string{{"a", "b"}, {"a", "r"}, {"b", "r"}},
		map[string]int{"a": 3, "b": 1, "r": 1})
	require.Equal(t, 1, a.seedGreedy())

	s := quietSearch(a)
	require.Equal(t, 1, s.prepare(1))
	r, b := a.index["r"], a.index["b"]
	done, err := s.examine(r, a.index["a"])
	require.NoError(t, err)
	require.False(t, done)

	escape, bl, err := s.findBlossom(r, b)
	require.NoError(t, err)
	assert.Equal(t, idx(a, "r", "b", "a"), escape)
	assert.Equal(t, idx(a, "r", "b", "a"), bl.nodes)

	s.shrink(bl)
	up, err := s.pathToRoot(a.index["a"])
	require.NoError(t, err)
	assert.Equal(t, escape, reversed(up))
}

func TestPathToRoot_Broken(t *testing.T) {
	a := arenaOf(t, [][2]string{{"a", "b"}}, map[string]int{"a": 1, "b": 1})
	a.match(0, 1)
	s := quietSearch(a)
	s.prepare(1)

	_, err := s.pathToRoot(0)
	assert.True(t, errors.Is(err, ErrMalformedPath))
}

func TestSeedGreedy(t *testing.T) {
	a := arenaOf(t, [][2]string{{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}},
		map[string]int{"1": 1, "2": 1, "3": 1, "4": 1, "5": 1})
	assert.Equal(t, 2, a.seedGreedy())
	assert.Equal(t, []Pair{{U: "1", V: "2"}, {U: "3", V: "4"}}, a.pairs())
	require.NoError(t, a.verify())
}

func TestAsInt(t *testing.T) {
	for _, val := range []interface{}{3, int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3), float32(3), 3.0} {
		got, ok := asInt(val)
		assert.True(t, ok, "%T", val)
		assert.Equal(t, 3, got, "%T", val)
	}
	for _, val := range []interface{}{"3", 3.5, nil, true} {
		_, ok := asInt(val)
		assert.False(t, ok, "%T", val)
	}
}

func TestParityString(t *testing.T) {
	assert.Equal(t, "positive", parityPositive.String())
	assert.Equal(t, "negative", parityNegative.String())
	assert.Equal(t, "unset", parityUnset.String())
}

// chainWithBlossom builds r - a01 = b01 - a02 = b02 ... - aNN = bNN hanging
// two matched pendants bNN - c = d and bNN - e = f, closed by d - f, plus
// the chord d - b(NN-1). Only r is exposed. extra edges are added unmatched,
// every priority is 1 unless prio says otherwise.
func chainWithBlossom(t *testing.T, k int, extra [][2]string, prio map[string]int) (*arena, func(string) int) {
	t.Helper()
	edges := [][2]string{{"r", name("a", 1)}}
	for i := 1; i <= k; i++ {
		edges = append(edges, [2]string{name("a", i), name("b", i)})
		if i < k {
			edges = append(edges, [2]string{name("b", i), name("a", i+1)})
		}
	}
	last := name("b", k)
	edges = append(edges,
		[2]string{last, "c"}, [2]string{"c", "d"}, [2]string{last, "e"}, [2]string{"e", "f"},
		[2]string{"d", "f"}, [2]string{"d", name("b", k-1)})
	edges = append(edges, extra...)
	all := map[string]int{}
	for _, e := range edges {
		all[e[0]], all[e[1]] = 1, 1
	}
	for id, p := range prio {
		all[id] = p
	}

	a := arenaOf(t, edges, all)
	v := func(id string) int { return a.index[id] }
	for i := 1; i <= k; i++ {
		a.match(v(name("a", i)), v(name("b", i)))
	}
	a.match(v("c"), v("d"))
	a.match(v("e"), v("f"))

	return a, v
}

func name(p string, i int) string { return fmt.Sprintf("%s%02d", p, i) }

// growChain labels the whole tree of chainWithBlossom without closing a cycle.
func growChain(t *testing.T, s *search, v func(string) int, k int, more ...[2]int) {
	t.Helper()
	require.Equal(t, 1, s.prepare(1))
	arcs := [][2]int{{v("r"), v(name("a", 1))}}
	for i := 1; i < k; i++ {
		arcs = append(arcs, [2]int{v(name("b", i)), v(name("a", i+1))})
	}
	arcs = append(arcs, [2]int{v(name("b", k)), v("c")}, [2]int{v(name("b", k)), v("e")})
	arcs = append(arcs, more...)
	for _, arc := range arcs {
		done, err := s.examine(arc[0], arc[1])
		require.NoError(t, err)
		require.False(t, done)
	}
}

func TestCommonBase_ClimbsInTurns(t *testing.T) {
	const k = 12
	a, v := chainWithBlossom(t, k, nil, nil)
	s := quietSearch(a)
	growChain(t, s, v, k)

	b, err := s.commonBase(v("d"), v("f"))
	require.NoError(t, err)
	assert.Equal(t, v(name("b", k)), b)

	touched := 0
	for _, m := range s.mark {
		if m >= s.stamp-1 {
			touched++
		}
	}
	assert.Equal(t, 3, touched, "only d, f and their common base are visited")
}

func TestShrink_NestsBlossoms(t *testing.T) {
	const k = 6
	a, v := chainWithBlossom(t, k, nil, nil)
	s := quietSearch(a)
	growChain(t, s, v, k)

	done, err := s.examine(v("d"), v("f"))
	require.NoError(t, err)
	require.False(t, done)
	require.Len(t, s.blossoms, 1)
	inner := s.blossoms[0]
	assert.Equal(t, v(name("b", k)), inner.base)
	assert.Equal(t, 5, inner.size)
	assert.Empty(t, inner.children)

	done, err = s.examine(v("d"), v(name("b", k-1)))
	require.NoError(t, err)
	require.False(t, done)
	require.Len(t, s.blossoms, 2)
	outer := s.blossoms[1]
	assert.Equal(t, v(name("b", k-1)), outer.base)
	assert.Equal(t, idx(a, name("b", k-1), name("a", k)), outer.vertices)
	assert.Equal(t, []blossomID{inner.id}, outer.children)
	assert.Equal(t, 7, outer.size)
	assert.Equal(t, idx(a, name("a", k)), outer.fresh)
	assert.Equal(t, outer.id, inner.outer)

	for _, id := range []string{"c", "d", "e", "f", name("b", k), name("a", k), name("b", k-1)} {
		assert.Equal(t, v(name("b", k-1)), s.base(v(id)), id)
		assert.True(t, s.positive(v(id)), id)
	}
	assert.True(t, a.verts[v(name("a", k-1))].external)

	// from a_k the walk crosses the inner cycle, then takes the chord d - b(k-1)
	up, err := s.pathToRoot(v(name("a", k)))
	require.NoError(t, err)
	assert.Equal(t, v("r"), up[len(up)-1])
	assert.Equal(t, idx(a, name("a", k), name("b", k), "c", "d", name("b", k-1), name("a", k-1)), up[:6])
}

// TestFindBlossom_NestedEscape closes a cycle through the contracted blossom
// {b06 c d e f} with h - d, where h hangs off b05 via g. The base b05 is on
// neither side of the closing edge, and a06 sits below the round.
func TestFindBlossom_NestedEscape(t *testing.T) {
	const k = 6
	a, v := chainWithBlossom(t, k,
		[][2]string{{name("b", k-1), "g"}, {"g", "h"}, {"h", "d"}},
		map[string]int{name("a", k): 2})
	a.match(v("g"), v("h"))
	s := quietSearch(a)
	growChain(t, s, v, k, [2]int{v(name("b", k-1)), v("g")})

	done, err := s.examine(v("d"), v("f"))
	require.NoError(t, err)
	require.False(t, done)

	escape, bl, err := s.findBlossom(v("d"), v("h"))
	require.NoError(t, err)
	assert.Equal(t, v(name("b", k-1)), bl.base)
	assert.Equal(t, idx(a, name("a", k), "g"), bl.fresh)

	want := []string{"r"}
	for i := 1; i < k; i++ {
		want = append(want, name("a", i), name("b", i))
	}
	want = append(want, "g", "h", "d", "c", name("b", k), name("a", k))
	require.Equal(t, idx(a, want...), escape)

	require.NoError(t, a.reversePath(escape))
	require.NoError(t, a.verify())
	assert.Equal(t, -1, a.verts[v(name("a", k))].mate)
	assert.Equal(t, v(name("a", 1)), a.verts[v("r")].mate)
	assert.Equal(t, v(name("b", k-1)), a.verts[v("g")].mate)
	assert.Equal(t, v("d"), a.verts[v("h")].mate)
	assert.Equal(t, v(name("b", k)), a.verts[v("c")].mate)
}
