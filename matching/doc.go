// Package matching computes a maximum priority matching of an undirected
// simple core.Graph whose vertices carry integer priorities in [1, |V|].
//
// What
//
//   - A matching is scored by the vector of covered vertices per priority
//     class; scores are compared lexicographically with priority 1 first.
//   - MaximumPriorityMatching returns a matching with the largest score,
//     which is also a maximum cardinality matching.
//   - PriorityScore scores any set of pairs against the same graph.
//
// How
//
//	The run seeds a greedy maximal matching, then handles one priority
//	class p at a time. A search grows alternating trees from every exposed
//	vertex of class p and examines queued arcs (u, v) with u positive:
//
//	  1. v unreached, matched: v becomes negative, its mate w positive. If
//	     w has a lower priority than p (a larger number) the even path
//	     root ... u v w is flipped: the root gets covered, w is released.
//	  2. v unreached, exposed: augmenting path root ... u v.
//	  3. v positive in another tree: augmenting path through both roots.
//	  4. v positive in the same tree: the cycle through the nearest common
//	     base forms a blossom. If a member turning positive has a lower
//	     priority than p, the even path ending at it is flipped; otherwise
//	     the blossom is contracted and the search continues.
//	  5. anything else is discarded.
//
//	The search for p is repeated until it fails. Flips never uncover a
//	vertex of class p or better, so the coverage of finished classes never
//	decreases.
//
// Determinism
//
//	Vertices are indexed in lexicographic ID order and every neighbor list
//	is sorted, so the same graph always yields the same matching.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Each search is O((V + E)·α(V)): every arc is examined at most once,
//     a contraction costs O(length of its cycle) and removes that many
//     top-level tree nodes, and nested blossoms are resolved through
//     path-compressed outer links.
//   - Every successful search matches a root for good and each level ends
//     with one failing search, so there are at most 2V searches:
//     O(V·(V + E)·α(V)) overall.
//   - Memory: O(V + E).
//
// Usage
//
//	res, err := matching.MaximumPriorityMatching(g,
//	    matching.WithPriorityKey("rank"),
//	    matching.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, ErrUnsupportedGraphKind,
//	    // ErrMissingPriority, ErrPriorityOutOfRange
//	}
//	fmt.Println(res.Pairs, res.Score)
package matching
