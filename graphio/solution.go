package graphio

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mpm/matching"
)

// Solution is the file form of a matching: the pairs and the rendered score.
type Solution struct {
	Pairs [][]string `yaml:"pairs" json:"pairs"`
	Score string     `yaml:"score,omitempty" json:"score,omitempty"`
}

// NewSolution converts a matching result.
func NewSolution(res *matching.Result) *Solution {
	sol := &Solution{
		Pairs: make([][]string, 0, len(res.Pairs)),
		Score: res.Score.String(),
	}
	for _, p := range res.Pairs {
		sol.Pairs = append(sol.Pairs, []string{p.U, p.V})
	}

	return sol
}

// MatchingPairs returns the pairs as matching.Pair values.
func (s *Solution) MatchingPairs() ([]matching.Pair, error) {
	out := make([]matching.Pair, 0, len(s.Pairs))
	for i, p := range s.Pairs {
		if len(p) != 2 {
			return nil, errors.Wrapf(ErrBadSolution, "pair %d has %d elements", i, len(p))
		}
		out = append(out, matching.Pair{U: p[0], V: p[1]})
	}

	return out, nil
}

// DecodeSolution reads one solution from r.
func DecodeSolution(r io.Reader, f Format) (*Solution, error) {
	var sol Solution
	if err := decode(r, f, &sol); err != nil {
		return nil, errors.Wrap(err, "decode solution")
	}

	return &sol, nil
}

// EncodeSolution writes sol to w.
func EncodeSolution(w io.Writer, f Format, sol *Solution) error {
	return errors.Wrap(encode(w, f, sol), "encode solution")
}

// LoadSolution opens path and decodes it with the format of its extension.
func LoadSolution(path string) (*Solution, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return DecodeSolution(file, f)
}
