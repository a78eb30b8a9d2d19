// Package bloom provides source location deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter tracks documentation source locations that have already
// been ingested.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected locations with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a location as seen.
func (f *SeenFilter) Add(location string) {
	f.f.AddString(location)
}

// Seen returns true if the location might have been added before.
// False positives are possible; false negatives are not.
func (f *SeenFilter) Seen(location string) bool {
	return f.f.TestString(location)
}

// ApproxCount returns the approximate number of recorded locations.
func (f *SeenFilter) ApproxCount() uint {
	return uint(f.f.ApproximatedSize())
}
