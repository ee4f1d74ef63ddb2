// File: methods_attrs.go
// Role: Per-vertex and per-edge attribute stores (Vertex.Metadata / Edge.Metadata).
// Concurrency:
//   - Vertex attributes under muVert, edge attributes under muEdgeAdj.
//   - Values are stored as given; callers own the concurrency of mutable values.

package core

// SetVertexAttr stores val under key in the vertex attribute store.
//
// Errors:
//   - ErrEmptyVertexID, ErrEmptyAttrKey, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, val interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if key == "" {
		return ErrEmptyAttrKey
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = val

	return nil
}

// VertexAttr returns the attribute stored under key for vertex id.
// The boolean is false when either the vertex or the key is absent.
// Complexity: O(1).
func (g *Graph) VertexAttr(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// SetEdgeAttr stores val under key in the attribute store of edge eid.
//
// Errors:
//   - ErrEmptyAttrKey, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) SetEdgeAttr(eid, key string, val interface{}) error {
	if key == "" {
		return ErrEmptyAttrKey
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Metadata[key] = val

	return nil
}

// EdgeAttr returns the attribute stored under key for edge eid.
// The boolean is false when either the edge or the key is absent.
// Complexity: O(1).
func (g *Graph) EdgeAttr(eid, key string) (interface{}, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, false
	}
	val, ok := e.Metadata[key]

	return val, ok
}
