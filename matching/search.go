package matching

import "github.com/sirupsen/logrus"

// augmentation kinds, as logged.
const (
	kindSwap    = "grow-swap"
	kindExposed = "exposed"
	kindCross   = "cross-tree"
	kindEscape  = "blossom-escape"
)

// search encapsulates the mutable state of one augmenting-path search.
// It is reused across rounds; prepare resets everything but the matching.
type search struct {
	a   *arena
	p   int
	log logrus.FieldLogger

	blossoms []*blossom
	queue    [][2]int // arcs (u, v) queued when u turned positive
	head     int

	mark  []int // commonBase stamps, indexed by vertex
	stamp int

	stats *Stats
}

func newSearch(a *arena, log logrus.FieldLogger, stats *Stats) *search {
	return &search{
		a:     a,
		log:   log,
		mark:  make([]int, len(a.verts)),
		stats: stats,
	}
}

// prepare resets the tree labels for round p, turns every exposed
// vertex of priority p into a root and queues its arcs.
// It returns the number of roots.
func (s *search) prepare(p int) int {
	s.p = p
	s.blossoms = s.blossoms[:0]
	s.queue = s.queue[:0]
	s.head = 0

	verts := s.a.verts
	var roots []int
	for i := range verts {
		v := &verts[i]
		v.parity, v.parent, v.root = parityUnset, -1, -1
		v.external, v.blossom = true, 0
		if v.priority == p && v.mate == -1 {
			v.parity, v.root = parityPositive, i
			roots = append(roots, i)
		}
	}
	for _, r := range roots {
		s.enqueueArcs(r, -1)
	}

	return len(roots)
}

// enqueueArcs queues every arc leaving x except the one towards skip.
func (s *search) enqueueArcs(x, skip int) {
	for _, y := range s.a.adj[x] {
		if y != skip {
			s.queue = append(s.queue, [2]int{x, y})
		}
	}
}

// run performs one search for priority p. It reports true after flipping
// one path, false when no augmenting path is left for p.
func (s *search) run(p int) (bool, error) {
	roots := s.prepare(p)
	if roots == 0 {
		return false, nil
	}
	s.log.WithFields(logrus.Fields{"priority": p, "roots": roots}).Debug("search started")

	for s.head < len(s.queue) {
		arc := s.queue[s.head]
		s.head++
		done, err := s.examine(arc[0], arc[1])
		if err != nil || done {
			return done, err
		}
	}

	return false, nil
}

// examine classifies the arc (u, v), u positive, and acts on it.
func (s *search) examine(u, v int) (bool, error) {
	if !s.positive(u) || s.base(u) == s.base(v) {
		return false, nil
	}
	verts := s.a.verts

	switch {
	case !s.reached(v) && verts[v].mate != -1:
		// grow: v negative child of u, its mate positive child of v
		w := verts[v].mate
		root := s.rootOf(u)
		verts[v].parity, verts[v].parent, verts[v].root = parityNegative, u, root
		if verts[w].priority > s.p {
			up, err := s.pathToRoot(u)
			if err != nil {
				return false, err
			}
			path, err := mergePaths(up, []int{v, w}, u, v)
			if err != nil {
				return false, err
			}
			return true, s.augment(path, kindSwap)
		}
		verts[w].parity, verts[w].parent, verts[w].root = parityPositive, v, root
		s.enqueueArcs(w, v)

	case !s.reached(v):
		up, err := s.pathToRoot(u)
		if err != nil {
			return false, err
		}
		path, err := mergePaths(up, []int{v}, u, v)
		if err != nil {
			return false, err
		}
		return true, s.augment(path, kindExposed)

	case s.positive(v) && s.rootOf(u) != s.rootOf(v):
		up, err := s.pathToRoot(u)
		if err != nil {
			return false, err
		}
		vp, err := s.pathToRoot(v)
		if err != nil {
			return false, err
		}
		path, err := mergePaths(up, vp, u, v)
		if err != nil {
			return false, err
		}
		return true, s.augment(path, kindCross)

	case s.positive(v):
		escape, bl, err := s.findBlossom(u, v)
		if err != nil {
			return false, err
		}
		if escape != nil {
			return true, s.augment(escape, kindEscape)
		}
		fresh := s.shrink(bl)
		s.stats.Blossoms++
		s.log.WithFields(logrus.Fields{
			"blossom": bl.id,
			"base":    s.a.ids[bl.base],
			"size":    bl.size,
		}).Debug("blossom contracted")
		for _, x := range fresh {
			s.enqueueArcs(x, -1)
		}
	}

	return false, nil
}

// augment flips path and records it.
func (s *search) augment(path []int, kind string) error {
	if err := s.a.reversePath(path); err != nil {
		return err
	}
	s.stats.Augmentations++
	s.log.WithFields(logrus.Fields{
		"priority": s.p,
		"kind":     kind,
		"length":   len(path) - 1,
		"from":     s.a.ids[path[0]],
		"to":       s.a.ids[path[len(path)-1]],
	}).Debug("path flipped")

	return nil
}
