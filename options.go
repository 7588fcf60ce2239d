package balloonkit

import (
	"github.com/nayaruvi/balloonkit/classify"
	"github.com/nayaruvi/balloonkit/group"
	"github.com/nayaruvi/balloonkit/place"
	"github.com/nayaruvi/balloonkit/revision"
	"github.com/nayaruvi/balloonkit/zones"
)

// Options aggregates the configurations of every pipeline stage. Thresholds
// are fixed configuration, never derived from document content, so two runs
// over the same document always produce the same output.
type Options struct {
	// Zones configures the geometric zone policy.
	Zones zones.Config

	// Classify configures span classification.
	Classify classify.Config

	// Group configures candidate merging and deduplication.
	Group group.Config

	// Ring configures balloon placement geometry and styling.
	Ring place.RingConfig

	// HistoryCapacity bounds the revision history. Default: 50.
	HistoryCapacity int
}

// DefaultOptions returns the standard configuration for all stages.
func DefaultOptions() Options {
	return Options{
		Zones:           zones.DefaultConfig(),
		Classify:        classify.DefaultConfig(),
		Group:           group.DefaultConfig(),
		Ring:            place.DefaultRing(),
		HistoryCapacity: revision.DefaultCapacity,
	}
}
