package matching

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mpm/core"
)

// Score counts matched vertices per priority class: Score[i] is the number
// of covered vertices of priority i+1. Its length is |V|.
type Score []int

// String renders one decimal digit per class, e.g. "211111010". When some
// count exceeds 9 every class is printed as a zero-padded group of the
// width of the largest count, groups separated by single spaces.
func (s Score) String() string {
	top := 0
	for _, c := range s {
		if c > top {
			top = c
		}
	}

	var sb strings.Builder
	if top <= 9 {
		for _, c := range s {
			sb.WriteByte(byte('0' + c))
		}
		return sb.String()
	}

	width := len(strconv.Itoa(top))
	for i, c := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		digits := strconv.Itoa(c)
		sb.WriteString(strings.Repeat("0", width-len(digits)))
		sb.WriteString(digits)
	}

	return sb.String()
}

// Compare orders scores lexicographically from priority 1; a missing
// trailing class counts as zero. It returns -1, 0 or +1.
func (s Score) Compare(other Score) int {
	n := len(s)
	if len(other) > n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		a, b := s.Covered(i+1), other.Covered(i+1)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	return 0
}

// Covered returns the number of matched vertices of the given priority,
// 0 outside the recorded range.
func (s Score) Covered(priority int) int {
	if priority < 1 || priority > len(s) {
		return 0
	}

	return s[priority-1]
}

// Total returns the number of matched vertices over all classes.
func (s Score) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}

	return n
}

// PriorityScore scores an arbitrary set of pairs against g without running
// the matching. The graph is validated exactly like MaximumPriorityMatching
// does; pairs that are not edges of g or that share a vertex fail with
// ErrInvalidMatching. The graph is never mutated.
func PriorityScore(g *core.Graph, pairs []Pair, opts ...Option) (Score, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	priorities, err := validate(g, o)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, 2*len(pairs))
	score := make(Score, len(priorities))
	for _, p := range pairs {
		if !g.HasVertex(p.U) || !g.HasVertex(p.V) || !g.HasEdge(p.U, p.V) {
			return nil, errors.Wrapf(ErrInvalidMatching, "%s-%s is not an edge", p.U, p.V)
		}
		for _, id := range [2]string{p.U, p.V} {
			if _, dup := seen[id]; dup {
				return nil, errors.Wrapf(ErrInvalidMatching, "vertex %s is matched twice", id)
			}
			seen[id] = struct{}{}
			score[priorities[id]-1]++
		}
	}

	return score, nil
}
