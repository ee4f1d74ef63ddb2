package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mpm/core"
	"github.com/katalvlaran/mpm/matching"
)

// Vertex is one vertex of an instance file. Attrs holds further integer
// rankings that a caller may select with matching.WithPriorityKey.
type Vertex struct {
	ID       string         `yaml:"id" json:"id"`
	Priority int            `yaml:"priority,omitempty" json:"priority,omitempty"`
	Attrs    map[string]int `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Instance is the file form of a priority matching problem:
//
//	vertices:
//	  - {id: "1", priority: 1}
//	  - {id: "2", priority: 8, attrs: {rank: 2}}
//	edges:
//	  - ["1", "2"]
type Instance struct {
	Vertices []Vertex   `yaml:"vertices" json:"vertices"`
	Edges    [][]string `yaml:"edges" json:"edges"`
}

// DecodeInstance reads one instance from r.
func DecodeInstance(r io.Reader, f Format) (*Instance, error) {
	var inst Instance
	if err := decode(r, f, &inst); err != nil {
		return nil, errors.Wrap(err, "decode instance")
	}

	return &inst, nil
}

// EncodeInstance writes inst to w.
func EncodeInstance(w io.Writer, f Format, inst *Instance) error {
	return errors.Wrap(encode(w, f, inst), "encode instance")
}

// LoadInstance opens path and decodes it with the format of its extension.
func LoadInstance(path string) (*Instance, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return DecodeInstance(file, f)
}

// Graph builds the undirected core.Graph described by inst. A non-zero
// Priority is stored under matching.DefaultPriorityKey and every Attrs entry
// under its own name. Values are not range-checked here, matching does that
// for whichever key it is asked to read.
func (inst *Instance) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i, v := range inst.Vertices {
		if v.ID == "" {
			return nil, errors.Wrapf(ErrBadInstance, "vertex %d has an empty id", i)
		}
		if g.HasVertex(v.ID) {
			return nil, errors.Wrapf(ErrBadInstance, "vertex %q declared twice", v.ID)
		}
		if err := g.AddVertex(v.ID); err != nil {
			return nil, errors.Wrapf(ErrBadInstance, "vertex %q: %v", v.ID, err)
		}
		if v.Priority != 0 {
			if err := g.SetVertexAttr(v.ID, matching.DefaultPriorityKey, v.Priority); err != nil {
				return nil, errors.Wrapf(ErrBadInstance, "vertex %q: %v", v.ID, err)
			}
		}
		for name, val := range v.Attrs {
			if name == "" || name == matching.DefaultPriorityKey {
				return nil, errors.Wrapf(ErrBadInstance, "vertex %q: attribute name %q is reserved", v.ID, name)
			}
			if err := g.SetVertexAttr(v.ID, name, val); err != nil {
				return nil, errors.Wrapf(ErrBadInstance, "vertex %q: %v", v.ID, err)
			}
		}
	}
	for i, e := range inst.Edges {
		if len(e) != 2 {
			return nil, errors.Wrapf(ErrBadInstance, "edge %d has %d endpoints", i, len(e))
		}
		for _, id := range e {
			if !g.HasVertex(id) {
				return nil, errors.Wrapf(ErrBadInstance, "edge %d uses undeclared vertex %q", i, id)
			}
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, errors.Wrapf(ErrBadInstance, "edge %d (%s-%s): %v", i, e[0], e[1], err)
		}
	}

	return g, nil
}

// FromGraph captures g as an instance. Priorities are read and validated
// with matching.Priorities, so opts select the attribute key or an explicit map.
// Vertices come out sorted by ID, edges in core's edge order.
func FromGraph(g *core.Graph, opts ...matching.Option) (*Instance, error) {
	prio, err := matching.Priorities(g, opts...)
	if err != nil {
		return nil, err
	}

	ids := g.Vertices()
	inst := &Instance{
		Vertices: make([]Vertex, 0, len(ids)),
		Edges:    make([][]string, 0, g.EdgeCount()),
	}
	for _, id := range ids {
		inst.Vertices = append(inst.Vertices, Vertex{ID: id, Priority: prio[id]})
	}
	for _, e := range g.Edges() {
		inst.Edges = append(inst.Edges, []string{e.From, e.To})
	}

	return inst, nil
}

func decode(r io.Reader, f Format, v interface{}) error {
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}

func encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}
