// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "1", newBuilderConfig(WithOneBasedIDs()).idFn(0))
	assert.Equal(t, "04", newBuilderConfig(WithPaddedIDs(2)).idFn(4))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3))
}

// TestRNGOptions verifies that RNG options configure the rng field correctly.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(11))
	b := newBuilderConfig(WithSeed(11))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(5))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

// TestPriorityOptions verifies the priority policy and key defaults.
func TestPriorityOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, DefaultPriorityKey, cfg.priorityKey)
	assert.Equal(t, 1, cfg.priorityFn(3, 10, nil))

	cfg = newBuilderConfig(WithPriorityKey("rank"), WithPriorityFn(DistinctPriorityFn))
	assert.Equal(t, "rank", cfg.priorityKey)
	assert.Equal(t, 4, cfg.priorityFn(3, 10, nil))
}

// TestPartitionPrefix verifies overrides and the empty-string fallback.
func TestPartitionPrefix(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("A", "B"))
	assert.Equal(t, "A", cfg.leftPrefix)
	assert.Equal(t, "B", cfg.rightPrefix)

	cfg = newBuilderConfig(WithPartitionPrefix("", ""))
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

// TestOptionPanics verifies option constructors reject meaningless inputs.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithPriorityFn(nil) })
	assert.Panics(t, func() { WithPriorityKey("") })
}
