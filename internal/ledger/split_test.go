package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualSplitFairness(t *testing.T) {
	deltas, err := EqualSplit(dec("100"), []string{"a", "b", "c", "d"}, "a")
	require.NoError(t, err)

	assert.Equal(t, "75.00", deltas["a"].StringFixed(2))
	for _, id := range []string{"b", "c", "d"} {
		assert.Equal(t, "-25.00", deltas[id].StringFixed(2))
	}

	sum := decimal.Zero
	for _, d := range deltas {
		sum = sum.Add(d)
	}
	assert.True(t, sum.IsZero())
}

func TestEqualSplitUnevenAmount(t *testing.T) {
	deltas, err := EqualSplit(dec("100"), []string{"a", "b", "c"}, "a")
	require.NoError(t, err)

	// Deltas are rounded individually; the division itself is not.
	assert.Equal(t, "66.67", deltas["a"].StringFixed(2))
	assert.Equal(t, "-33.33", deltas["b"].StringFixed(2))
	assert.Equal(t, "-33.33", deltas["c"].StringFixed(2))
}

func TestEqualSplitPayerOutsideParticipants(t *testing.T) {
	// No entry credits the payer when they are not listed; the ledger's
	// payer pass handles the credit independently.
	deltas, err := EqualSplit(dec("90"), []string{"b", "c"}, "a")
	require.NoError(t, err)

	assert.NotContains(t, deltas, "a")
	assert.Equal(t, "-45.00", deltas["b"].StringFixed(2))
	assert.Equal(t, "-45.00", deltas["c"].StringFixed(2))
}

func TestEqualSplitRejectsEmptyParticipants(t *testing.T) {
	_, err := EqualSplit(dec("10"), nil, "a")
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestEqualShare(t *testing.T) {
	assert.Equal(t, "33.33", EqualShare(dec("100"), 3).StringFixed(2))
	assert.Equal(t, "50.00", EqualShare(dec("100"), 2).StringFixed(2))
	assert.True(t, EqualShare(dec("100"), 0).IsZero())
}
