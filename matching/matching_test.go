package matching_test

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpm/builder"
	"github.com/katalvlaran/mpm/core"
	"github.com/katalvlaran/mpm/matching"
)

// fixture builds an undirected graph from isolated vertices, an edge list
// and explicit priorities.
func fixture(t *testing.T, isolated []string, edges [][2]string, prio map[string]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range isolated {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, builder.Apply(g, nil, builder.EdgeList(edges), builder.PriorityMap(prio)))

	return g
}

func example1(t *testing.T, withEdges bool) *core.Graph {
	t.Helper()
	var edges [][2]string
	if withEdges {
		edges = [][2]string{{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"5", "6"}, {"6", "7"}, {"7", "8"}, {"7", "9"}, {"7", "3"}}
	}
	prio := map[string]int{"1": 1, "2": 8, "3": 6, "4": 5, "5": 2, "6": 4, "7": 3, "8": 1, "9": 7}
	ids := make([]string, 0, 9)
	for i := 1; i <= 9; i++ {
		ids = append(ids, strconv.Itoa(i))
	}

	return fixture(t, ids, edges, prio)
}

func example3(t *testing.T) *core.Graph {
	t.Helper()
	edges := [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"3", "6"}, {"4", "5"}, {"5", "7"}, {"6", "7"},
		{"7", "11"}, {"8", "9"}, {"9", "10"}, {"10", "11"}, {"10", "12"}, {"11", "12"},
	}
	prio := make(map[string]int, 12)
	for i := 1; i <= 12; i++ {
		prio[strconv.Itoa(i)] = 1
	}
	prio["2"], prio["9"] = 2, 2

	return fixture(t, nil, edges, prio)
}

func diffPairs(t *testing.T, want, got []matching.Pair) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestMaximumPriorityMatching_Example1(t *testing.T) {
	g := example1(t, true)
	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	diffPairs(t, []matching.Pair{{U: "1", V: "2"}, {U: "3", V: "4"}, {U: "5", V: "6"}, {U: "7", V: "8"}}, res.Pairs)
	assert.Equal(t, "211111010", res.Score.String())
	assert.Equal(t, 8, res.Stats.Rounds)
	assert.Equal(t, 0, res.Stats.Augmentations)
}

func TestMaximumPriorityMatching_Example2(t *testing.T) {
	g := example1(t, false)
	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	assert.Empty(t, res.Pairs)
	assert.Equal(t, "000000000", res.Score.String())
}

func TestMaximumPriorityMatching_Example3(t *testing.T) {
	g := example3(t)
	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	// (7,11) and (10,12) sort as strings
	diffPairs(t, []matching.Pair{
		{U: "1", V: "2"}, {U: "10", V: "12"}, {U: "11", V: "7"},
		{U: "3", V: "6"}, {U: "4", V: "5"}, {U: "8", V: "9"},
	}, res.Pairs)
	assert.Equal(t, 12, res.Score.Total())
	assert.Equal(t, 2, res.Score.Covered(2))
	assert.GreaterOrEqual(t, res.Stats.Blossoms, 2)
}

// TestMaximumPriorityMatching_BlossomEscape: the greedy seed matches a-b,
// leaving r exposed. The odd cycle r-a-b must not be contracted: a has a
// lower priority than the round and is released.
func TestMaximumPriorityMatching_BlossomEscape(t *testing.T) {
	g := fixture(t, nil,
		[][2]string{{"a", "b"}, {"a", "r"}, {"b", "r"}},
		map[string]int{"a": 3, "b": 1, "r": 1})

	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	diffPairs(t, []matching.Pair{{U: "b", V: "r"}}, res.Pairs)
	assert.Equal(t, "200", res.Score.String())
	assert.Equal(t, matching.Stats{Rounds: 2, Augmentations: 1, Blossoms: 1}, res.Stats)
}

// TestMaximumPriorityMatching_GrowSwap: seed a-b, root r; growing r-a-b
// reaches b whose priority is lower than the round, so r takes a.
func TestMaximumPriorityMatching_GrowSwap(t *testing.T) {
	g := fixture(t, nil,
		[][2]string{{"a", "b"}, {"a", "r"}},
		map[string]int{"a": 1, "b": 3, "r": 1})

	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	diffPairs(t, []matching.Pair{{U: "a", V: "r"}}, res.Pairs)
	assert.Equal(t, "200", res.Score.String())
	assert.Equal(t, 1, res.Stats.Augmentations)
}

// TestMaximumPriorityMatching_EscapeThroughCycle needs the escape path to
// run around a five-cycle before climbing to the root.
func TestMaximumPriorityMatching_EscapeThroughCycle(t *testing.T) {
	g := fixture(t, nil,
		[][2]string{{"r", "a"}, {"a", "b"}, {"b", "c"}, {"c", "d"}, {"b", "e"}, {"e", "f"}, {"d", "f"}},
		map[string]int{"r": 1, "a": 1, "b": 1, "c": 5, "d": 1, "e": 1, "f": 1})

	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	diffPairs(t, []matching.Pair{{U: "a", V: "r"}, {U: "b", V: "e"}, {U: "d", V: "f"}}, res.Pairs)
	assert.Equal(t, "6000000", res.Score.String())
}

func TestMaximumPriorityMatching_WriteBack(t *testing.T) {
	g := example3(t)
	res, err := matching.MaximumPriorityMatching(g)
	require.NoError(t, err)

	mates := res.Mates()
	for _, id := range g.Vertices() {
		val, ok := g.VertexAttr(id, matching.AttrMatched)
		require.True(t, ok, "vertex %s", id)
		_, covered := mates[id]
		assert.Equal(t, covered, val, "vertex %s", id)
	}
	matched := 0
	for _, e := range g.Edges() {
		val, ok := g.EdgeAttr(e.ID, matching.AttrMatched)
		require.True(t, ok, "edge %s", e.ID)
		want := mates[e.From] == e.To
		assert.Equal(t, want, val, "edge %s", e.ID)
		if want {
			matched++
		}
	}
	assert.Equal(t, len(res.Pairs), matched)
}

func TestMaximumPriorityMatching_Options(t *testing.T) {
	t.Run("priority key", func(t *testing.T) {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithPriorityKey("rank"), builder.WithPriorityFn(builder.DistinctPriorityFn)},
			builder.Path(4), builder.Priorities())
		require.NoError(t, err)

		_, err = matching.MaximumPriorityMatching(g)
		assert.True(t, errors.Is(err, matching.ErrMissingPriority))

		res, err := matching.MaximumPriorityMatching(g, matching.WithPriorityKey("rank"))
		require.NoError(t, err)
		diffPairs(t, []matching.Pair{{U: "0", V: "1"}, {U: "2", V: "3"}}, res.Pairs)
	})

	t.Run("explicit priorities", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, nil, builder.Path(3))
		require.NoError(t, err)

		// the middle vertex goes to "0", the best class
		res, err := matching.MaximumPriorityMatching(g,
			matching.WithPriorities(map[string]int{"0": 1, "1": 2, "2": 3}))
		require.NoError(t, err)
		diffPairs(t, []matching.Pair{{U: "0", V: "1"}}, res.Pairs)

		res, err = matching.MaximumPriorityMatching(g,
			matching.WithPriorities(map[string]int{"0": 3, "1": 2, "2": 1}))
		require.NoError(t, err)
		diffPairs(t, []matching.Pair{{U: "1", V: "2"}}, res.Pairs)
	})

	t.Run("float priorities", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge("x", "y")
		require.NoError(t, err)
		require.NoError(t, g.SetVertexAttr("x", matching.DefaultPriorityKey, 1.0))
		require.NoError(t, g.SetVertexAttr("y", matching.DefaultPriorityKey, int64(2)))

		res, err := matching.MaximumPriorityMatching(g)
		require.NoError(t, err)
		assert.Equal(t, "11", res.Score.String())
	})

	t.Run("logger nil ignored", func(t *testing.T) {
		g := example3(t)
		_, err := matching.MaximumPriorityMatching(g, matching.WithLogger(nil))
		require.NoError(t, err)
	})

	t.Run("invalid options", func(t *testing.T) {
		g := example3(t)
		_, err := matching.MaximumPriorityMatching(g, matching.WithPriorityKey(""))
		assert.True(t, errors.Is(err, matching.ErrOptionViolation))
		_, err = matching.MaximumPriorityMatching(g, matching.WithPriorities(nil))
		assert.True(t, errors.Is(err, matching.ErrOptionViolation))
	})
}

func TestMaximumPriorityMatching_Errors(t *testing.T) {
	_, err := matching.MaximumPriorityMatching(nil)
	assert.True(t, errors.Is(err, matching.ErrGraphNil))

	t.Run("missing priority leaves graph untouched", func(t *testing.T) {
		g := fixture(t, []string{"z"}, [][2]string{{"a", "b"}}, map[string]int{"a": 1, "b": 1})
		_, err := matching.MaximumPriorityMatching(g)
		require.Error(t, err)
		assert.True(t, errors.Is(err, matching.ErrMissingPriority))
		for _, id := range g.Vertices() {
			_, ok := g.VertexAttr(id, matching.AttrMatched)
			assert.False(t, ok, "vertex %s", id)
		}
	})

	t.Run("non-integer priority", func(t *testing.T) {
		g := fixture(t, nil, [][2]string{{"a", "b"}}, map[string]int{"a": 1, "b": 1})
		require.NoError(t, g.SetVertexAttr("a", matching.DefaultPriorityKey, "1"))
		_, err := matching.MaximumPriorityMatching(g)
		assert.True(t, errors.Is(err, matching.ErrMissingPriority))

		require.NoError(t, g.SetVertexAttr("a", matching.DefaultPriorityKey, 1.5))
		_, err = matching.MaximumPriorityMatching(g)
		assert.True(t, errors.Is(err, matching.ErrMissingPriority))
	})

	t.Run("out of range", func(t *testing.T) {
		g := fixture(t, nil, [][2]string{{"a", "b"}}, map[string]int{"a": 1, "b": 1})
		require.NoError(t, g.SetVertexAttr("b", matching.DefaultPriorityKey, 3))
		_, err := matching.MaximumPriorityMatching(g)
		assert.True(t, errors.Is(err, matching.ErrPriorityOutOfRange))

		require.NoError(t, g.SetVertexAttr("b", matching.DefaultPriorityKey, 0))
		_, err = matching.MaximumPriorityMatching(g)
		assert.True(t, errors.Is(err, matching.ErrPriorityOutOfRange))
	})

	kinds := []struct {
		name  string
		build func(t *testing.T) *core.Graph
	}{
		{"directed", func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithDirected(true))
			_, err := g.AddEdge("a", "b")
			require.NoError(t, err)
			return g
		}},
		{"directed edge in mixed graph", func(t *testing.T) *core.Graph {
			g := core.NewMixedGraph()
			_, err := g.AddEdge("a", "b", core.WithEdgeDirected(true))
			require.NoError(t, err)
			return g
		}},
		{"multigraph", func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithMultiEdges())
			_, err := g.AddEdge("a", "b")
			require.NoError(t, err)
			return g
		}},
		{"self-loop", func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithLoops())
			_, err := g.AddEdge("a", "a")
			require.NoError(t, err)
			return g
		}},
	}
	for _, tc := range kinds {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(t)
			for _, id := range g.Vertices() {
				require.NoError(t, g.SetVertexAttr(id, matching.DefaultPriorityKey, 1))
			}
			_, err := matching.MaximumPriorityMatching(g)
			assert.True(t, errors.Is(err, matching.ErrUnsupportedGraphKind), "got %v", err)
		})
	}
}

// bestScore enumerates every matching of g vertex by vertex (each vertex
// stays exposed or takes a later free neighbor) and returns the largest score.
func bestScore(t *testing.T, g *core.Graph) matching.Score {
	t.Helper()
	prio, err := matching.Priorities(g)
	require.NoError(t, err)
	ids := g.Vertices()
	used := make(map[string]bool, len(ids))
	cur := make(matching.Score, len(ids))
	var best matching.Score

	var rec func(i int)
	rec = func(i int) {
		for i < len(ids) && used[ids[i]] {
			i++
		}
		if i == len(ids) {
			if best == nil || cur.Compare(best) > 0 {
				best = append(matching.Score(nil), cur...)
			}
			return
		}
		u := ids[i]
		used[u] = true
		rec(i + 1)
		nbrs, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			if used[v] {
				continue
			}
			used[v] = true
			cur[prio[u]-1]++
			cur[prio[v]-1]++
			rec(i + 1)
			cur[prio[u]-1]--
			cur[prio[v]-1]--
			used[v] = false
		}
		used[u] = false
	}
	rec(0)

	return best
}

// TestMaximumPriorityMatching_BruteForce compares the result with an
// exhaustive search on random graphs of up to 14 vertices.
func TestMaximumPriorityMatching_BruteForce(t *testing.T) {
	for seed := int64(1); seed <= 160; seed++ {
		n := 2 + int(seed%13)
		k := 1 + int(seed%int64(n))
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithPriorityFn(builder.UniformPriorityFn(k))},
			builder.RandomSparse(n, 0.45), builder.Priorities())
		require.NoError(t, err)

		want := bestScore(t, g)
		res, err := matching.MaximumPriorityMatching(g)
		require.NoError(t, err, "seed %d", seed)

		got, err := matching.PriorityScore(g, res.Pairs)
		require.NoError(t, err, "seed %d: result is not a matching", seed)
		assert.Equal(t, res.Score, got, "seed %d", seed)
		assert.Equal(t, 0, want.Compare(res.Score), "seed %d: want %s, got %s", seed, want, res.Score)
	}
}

// TestMaximumPriorityMatching_MonotonicRounds checks through the debug log
// that no round lowers the coverage of a class already finished.
func TestMaximumPriorityMatching_MonotonicRounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		logger, hook := logtest.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithPriorityFn(builder.UniformPriorityFn(4))},
			builder.RandomSparse(9, 0.35), builder.Priorities())
		require.NoError(t, err)

		_, err = matching.MaximumPriorityMatching(g, matching.WithLogger(logger))
		require.NoError(t, err)

		type round struct {
			p     int
			score string
		}
		var rounds []round
		for _, e := range hook.AllEntries() {
			if e.Message != "round finished" {
				continue
			}
			rounds = append(rounds, round{p: e.Data["priority"].(int), score: e.Data["score"].(string)})
		}
		require.NotEmpty(t, rounds)

		for i, r := range rounds {
			for _, later := range rounds[i+1:] {
				for c := 0; c < r.p; c++ {
					assert.GreaterOrEqual(t, later.score[c], r.score[c],
						"seed %d: class %d dropped after round %d", seed, c+1, r.p)
				}
			}
		}
	}
}

func TestMaximumPriorityMatching_Deterministic(t *testing.T) {
	first, err := matching.MaximumPriorityMatching(example3(t))
	require.NoError(t, err)
	second, err := matching.MaximumPriorityMatching(example3(t))
	require.NoError(t, err)
	diffPairs(t, first.Pairs, second.Pairs)
	assert.Equal(t, first.Stats, second.Stats)
}
