package bloom_test

import (
	"fmt"
	"testing"

	"github.com/Jimmyh-world/Cardano-MCP-sub001/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenFilter_AddAndSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewSeenFilter(1000, 0.01)

	// Location not yet added should return false
	assert.False(t, f.Seen("https://docs.cardano.org/learn"))

	// Add location
	f.Add("https://docs.cardano.org/learn")

	// Now it should return true
	assert.True(t, f.Seen("https://docs.cardano.org/learn"))

	// Different location should still return false
	assert.False(t, f.Seen("https://docs.cardano.org/build"))
}

func TestSeenFilter_ApproxCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewSeenFilter(1000, 0.01)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.ApproxCount())

	f.Add("https://docs.cardano.org/learn")
	f.Add("https://docs.cardano.org/build")
	f.Add("https://docs.cardano.org/operate")

	// Approximate count should be near 3
	count := f.ApproxCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestSeenFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewSeenFilter(1000, 0.01)

	location := "https://docs.cardano.org/learn"

	f.Add(location)
	countAfterFirst := f.ApproxCount()

	// Adding the same location multiple times should not change the filter
	f.Add(location)
	f.Add(location)
	f.Add(location)

	assert.Equal(t, countAfterFirst, f.ApproxCount())
	assert.True(t, f.Seen(location))
}

func TestSeenFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewSeenFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("https://docs.cardano.org/added/%d", i))
	}

	// Probe with locations that were NOT added
	falsePositives := 0
	for i := range testProbes {
		location := fmt.Sprintf("https://docs.cardano.org/notadded/%d", i)
		if f.Seen(location) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
