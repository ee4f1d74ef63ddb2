package matching

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mpm/core"
)

// MaximumPriorityMatching computes a maximum priority matching of g.
//
// Every vertex needs an integer priority in [1, |V|], read from the vertex
// attribute named by WithPriorityKey (default "priority") or taken from
// WithPriorities. The run starts from a greedy maximal matching, then for
// each priority class p in increasing order repeats the augmenting-path
// search until it fails. On success the "matched" attribute of every vertex
// and edge of g is set to the final state.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrUnsupportedGraphKind,
// ErrMissingPriority or ErrPriorityOutOfRange before touching g, and an
// error marked ErrMalformedPath if the internal bookkeeping breaks.
func MaximumPriorityMatching(g *core.Graph, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	priorities, err := validate(g, o)
	if err != nil {
		return nil, err
	}

	a := newArena(g, priorities)
	res := &Result{}
	log := o.Logger

	seeded := a.seedGreedy()
	log.WithFields(logrus.Fields{
		"vertices": len(a.verts),
		"edges":    len(a.edges),
		"seeded":   seeded,
	}).Debug("greedy matching seeded")

	s := newSearch(a, log, &res.Stats)
	for _, p := range levels(a) {
		for {
			found, err := s.run(p)
			if err != nil {
				return nil, errors.Wrapf(err, "priority %d", p)
			}
			if !found {
				break
			}
		}
		res.Stats.Rounds++
		log.WithFields(logrus.Fields{"priority": p, "score": a.score().String()}).Debug("round finished")
	}

	if err = a.verify(); err != nil {
		return nil, err
	}
	if err = writeBack(g, a); err != nil {
		return nil, err
	}
	res.Pairs = a.pairs()
	res.Score = a.score()

	return res, nil
}

// Priorities validates g the way MaximumPriorityMatching does and returns
// the priority of every vertex. The graph is not mutated.
func Priorities(g *core.Graph, opts ...Option) (map[string]int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return validate(g, o)
}

// levels returns the distinct priorities present, ascending. Classes with
// no vertex have no roots, so skipping them changes nothing.
func levels(a *arena) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, v := range a.verts {
		if _, ok := seen[v.priority]; !ok {
			seen[v.priority] = struct{}{}
			out = append(out, v.priority)
		}
	}
	sort.Ints(out)

	return out
}

// validate rejects unsupported graphs and collects one priority per vertex.
func validate(g *core.Graph, o Options) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	switch {
	case g.Directed() || g.HasDirectedEdges():
		return nil, errors.Wrap(ErrUnsupportedGraphKind, "directed graph")
	case g.Multigraph():
		return nil, errors.Wrap(ErrUnsupportedGraphKind, "multigraph")
	case g.HasSelfLoops():
		return nil, errors.Wrap(ErrUnsupportedGraphKind, "self-loop present")
	}

	ids := g.Vertices()
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		p, ok := lookupPriority(g, o, id)
		if !ok {
			return nil, errors.Wrapf(ErrMissingPriority, "vertex %q", id)
		}
		if p < 1 || p > len(ids) {
			return nil, errors.Wrapf(ErrPriorityOutOfRange, "vertex %q has priority %d, want [1, %d]", id, p, len(ids))
		}
		out[id] = p
	}

	return out, nil
}

func lookupPriority(g *core.Graph, o Options, id string) (int, bool) {
	if o.Priorities != nil {
		p, ok := o.Priorities[id]
		return p, ok
	}
	val, ok := g.VertexAttr(id, o.PriorityKey)
	if !ok {
		return 0, false
	}

	return asInt(val)
}

// asInt accepts any integer kind, and floats holding an integral value
// (JSON decoders produce float64).
func asInt(val interface{}) (int, bool) {
	switch x := val.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	case float32:
		return asInt(float64(x))
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int(x), true
	default:
		return 0, false
	}
}

// writeBack stores the final matched flags in the graph attribute stores.
func writeBack(g *core.Graph, a *arena) error {
	for i, v := range a.verts {
		if err := g.SetVertexAttr(a.ids[i], AttrMatched, v.matched); err != nil {
			return errors.Wrapf(err, "write back vertex %q", a.ids[i])
		}
	}
	for _, e := range a.edges {
		if err := g.SetEdgeAttr(e.id, AttrMatched, e.matched); err != nil {
			return errors.Wrapf(err, "write back edge %s", e.id)
		}
	}

	return nil
}
