// Package matching provides tunable options, error definitions and result
// types for maximum priority matching over a core.Graph.
package matching

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Attribute keys read and written on the core.Graph attribute stores.
const (
	// DefaultPriorityKey is the vertex attribute holding the priority class.
	DefaultPriorityKey = "priority"

	// AttrMatched is the vertex/edge attribute written back after a run.
	AttrMatched = "matched"
)

// Sentinel errors for matching execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrMissingPriority is returned when a vertex carries no priority or a
	// priority that is not an integer.
	ErrMissingPriority = errors.New("matching: missing priority")

	// ErrPriorityOutOfRange is returned when a priority is < 1 or > |V|.
	ErrPriorityOutOfRange = errors.New("matching: priority out of range")

	// ErrUnsupportedGraphKind is returned for directed graphs, multigraphs
	// and graphs containing self-loops.
	ErrUnsupportedGraphKind = errors.New("matching: unsupported graph kind")

	// ErrMalformedPath marks internal assertion failures raised while
	// reconstructing or flipping alternating paths.
	ErrMalformedPath = errors.New("matching: malformed path")

	// ErrInvalidMatching is returned by PriorityScore when the supplied pairs
	// are not a matching of the graph.
	ErrInvalidMatching = errors.New("matching: invalid matching")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Option configures a matching run via functional arguments.
// If an Option is invalid (e.g. empty priority key), it is recorded
// internally and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the parameters of a matching run.
type Options struct {
	// Logger receives debug entries for rounds, augmentations and blossoms.
	Logger logrus.FieldLogger

	// PriorityKey names the vertex attribute read as priority.
	PriorityKey string

	// Priorities, when non-nil, replaces the attribute lookup entirely.
	Priorities map[string]int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a logger discarding all output
//   - PriorityKey == DefaultPriorityKey
//   - no explicit priority map.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Logger:      l,
		PriorityKey: DefaultPriorityKey,
	}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPriorityKey reads priorities from the vertex attribute key.
// An empty key is invalid.
func WithPriorityKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			o.err = errors.Wrap(ErrOptionViolation, "priority key is empty")
			return
		}
		o.PriorityKey = key
	}
}

// WithPriorities supplies the priority of every vertex explicitly.
// A nil map is invalid; vertices absent from the map fail with ErrMissingPriority.
func WithPriorities(m map[string]int) Option {
	return func(o *Options) {
		if m == nil {
			o.err = errors.Wrap(ErrOptionViolation, "priority map is nil")
			return
		}
		o.Priorities = m
	}
}

// buildOptions applies opts over the defaults and returns the first recorded error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Pair is one matched edge, with U < V in lexicographic order.
type Pair struct {
	U string `json:"u" yaml:"u"`
	V string `json:"v" yaml:"v"`
}

// Stats counts the work done by a run.
type Stats struct {
	// Rounds is the number of priority classes searched.
	Rounds int
	// Augmentations counts every flipped path, including swaps that trade a
	// lower-priority vertex for a root.
	Augmentations int
	// Blossoms counts contractions across all searches.
	Blossoms int
}

// Result holds the outcome of MaximumPriorityMatching:
//   - Pairs: matched edges, sorted by U then V.
//   - Score: matched vertex count per priority class.
//   - Stats: work counters.
type Result struct {
	Pairs []Pair
	Score Score
	Stats Stats
}

// Mates returns the matching as a symmetric vertex → partner map.
func (r *Result) Mates() map[string]string {
	out := make(map[string]string, 2*len(r.Pairs))
	for _, p := range r.Pairs {
		out[p.U] = p.V
		out[p.V] = p.U
	}

	return out
}
