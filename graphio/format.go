package graphio

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format selects the wire encoding of instances and solutions.
type Format string

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = "yaml"
	// FormatJSON encodes with encoding/json, two-space indented.
	FormatJSON Format = "json"
)

// Sentinel errors of the graphio package.
var (
	// ErrUnknownFormat is returned for a format name or file extension
	// that is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrBadInstance is returned when a decoded instance cannot be turned
	// into a graph: empty or duplicate IDs, malformed edges, unknown endpoints.
	ErrBadInstance = errors.New("graphio: malformed instance")

	// ErrBadSolution is returned for a solution whose pairs are not pairs.
	ErrBadSolution = errors.New("graphio: malformed solution")
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(ErrUnknownFormat, "%s has no extension", path)
	}

	return ParseFormat(ext)
}
