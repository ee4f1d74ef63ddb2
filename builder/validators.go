// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns ErrTooFewVertices with "<Method>: n=<got> < min=<min>" otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(ErrTooFewVertices, method, "n=%d < min=%d", got, min)
	}

	return nil
}

// validatePair checks that both dimensions a and b are ≥ min.
// Used by CompleteBipartite (partition sizes) and Grid (rows, cols).
func validatePair(method string, a, b, min int) error {
	if a < min || b < min {
		return builderErrorf(ErrTooFewVertices, method, "sizes must be ≥ %d, got %d and %d", min, a, b)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(ErrInvalidProbability, method,
			"probability must be in [%.1f,%.1f], got %g", MinProbability, MaxProbability, p)
	}

	return nil
}

// validatePriority enforces p ∈ [1, n] for the vertex id.
func validatePriority(method, id string, p, n int) error {
	if p < 1 || p > n {
		return builderErrorf(ErrBadPriority, method, "vertex %q got %d, want [1,%d]", id, p, n)
	}

	return nil
}
