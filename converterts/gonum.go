package converters

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mpm/core"
	"github.com/katalvlaran/mpm/matching"
)

// Sentinel errors of the converters package.
var (
	// ErrNilGraph is returned when the source graph is nil.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrDirectedGraph is returned for a directed source graph.
	ErrDirectedGraph = errors.New("converters: directed graphs are not supported")

	// ErrSelfLoop is returned when the source graph has an edge u-u.
	ErrSelfLoop = errors.New("converters: self-loop")

	// ErrNilPriorityFn is returned when FromGonum gets no priority function.
	ErrNilPriorityFn = errors.New("converters: priority function is nil")
)

// NodeID returns the core vertex ID FromGonum uses for a gonum node.
func NodeID(n graph.Node) string {
	return strconv.FormatInt(n.ID(), 10)
}

// FromGonum copies an undirected gonum graph into a new core.Graph.
// Each vertex gets priority(n) under matching.DefaultPriorityKey; the
// value is not range-checked here. Edges are added once, lower node ID
// first, in ascending order.
func FromGonum(src graph.Graph, priority func(graph.Node) int) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	if priority == nil {
		return nil, ErrNilPriorityFn
	}
	if _, ok := src.(graph.Directed); ok {
		return nil, ErrDirectedGraph
	}

	nodes := sortedNodes(src.Nodes())
	g := core.NewGraph()
	for _, n := range nodes {
		id := NodeID(n)
		if err := g.AddVertex(id); err != nil {
			return nil, errors.Wrapf(err, "add vertex %s", id)
		}
		if err := g.SetVertexAttr(id, matching.DefaultPriorityKey, priority(n)); err != nil {
			return nil, errors.Wrapf(err, "set priority of %s", id)
		}
	}
	for _, u := range nodes {
		for _, v := range sortedNodes(src.From(u.ID())) {
			switch {
			case v.ID() == u.ID():
				return nil, errors.Wrapf(ErrSelfLoop, "node %d", u.ID())
			case v.ID() < u.ID():
				continue
			}
			if _, err := g.AddEdge(NodeID(u), NodeID(v)); err != nil {
				return nil, errors.Wrapf(err, "add edge %d-%d", u.ID(), v.ID())
			}
		}
	}

	return g, nil
}

// ToGonum copies g into a simple.UndirectedGraph. Vertices are numbered
// 0..n-1 in sorted ID order; the returned map goes from core ID to node ID.
// Directed graphs and self-loops are rejected, parallel edges collapse.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, nil, ErrDirectedGraph
	}

	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	dst := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		dst.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, nil, errors.Wrapf(ErrSelfLoop, "vertex %q", e.From)
		}
		dst.SetEdge(simple.Edge{F: simple.Node(index[e.From]), T: simple.Node(index[e.To])})
	}

	return dst, index, nil
}

// sortedNodes drains it into a slice ordered by node ID.
func sortedNodes(it graph.Nodes) []graph.Node {
	var out []graph.Node
	for it.Next() {
		out = append(out, it.Node())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}
