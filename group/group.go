package group

import (
	"sort"
	"strings"

	"github.com/nayaruvi/balloonkit/model"
)

// Config holds the merge and deduplication thresholds, in page points.
type Config struct {
	// HorizontalYTolerance is the maximum baseline difference for two
	// fragments to merge side by side. Default: 3.
	HorizontalYTolerance float64

	// HorizontalXGapMax is the maximum left-edge gap for a horizontal merge.
	// Default: 20.
	HorizontalXGapMax float64

	// VerticalXTolerance is the maximum left-edge difference for fragments
	// to stack vertically. Default: 6.
	VerticalXTolerance float64

	// VerticalYGapMax is the maximum vertical step between consecutive
	// fragments of a stack. Default: 20.
	VerticalYGapMax float64

	// DuplicateYTolerance and DuplicateXTolerance bound how close two
	// callouts must be for the later one to be dropped as a duplicate.
	// Defaults: 6 and 10.
	DuplicateYTolerance float64
	DuplicateXTolerance float64
}

// DefaultConfig returns the standard grouping thresholds.
func DefaultConfig() Config {
	return Config{
		HorizontalYTolerance: 3,
		HorizontalXGapMax:    20,
		VerticalXTolerance:   6,
		VerticalYGapMax:      20,
		DuplicateYTolerance:  6,
		DuplicateXTolerance:  10,
	}
}

// Grouper merges related candidates and suppresses near-duplicates.
type Grouper struct {
	config Config
}

// NewGrouper creates a Grouper with default thresholds.
func NewGrouper() *Grouper {
	return NewGrouperWithConfig(DefaultConfig())
}

// NewGrouperWithConfig creates a Grouper with custom thresholds.
func NewGrouperWithConfig(cfg Config) *Grouper {
	return &Grouper{config: cfg}
}

// Group runs the three passes in order and returns the final callout list.
// The output order is the ballooning order.
func (g *Grouper) Group(candidates []model.Candidate) []model.Candidate {
	merged := g.mergeHorizontal(candidates)
	stacked := g.mergeVertical(merged)
	return g.dropDuplicates(stacked)
}

// mergeHorizontal joins each candidate with its nearest qualifying neighbor
// to the right: same page, baselines within HorizontalYTolerance, left-edge
// gap in (0, HorizontalXGapMax], neither a table member. Each candidate
// merges at most once; the pair with the smallest gap wins.
func (g *Grouper) mergeHorizontal(candidates []model.Candidate) []model.Candidate {
	items := sortedBy(candidates, func(a, b model.Candidate) bool {
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	grouped := make([]model.Candidate, 0, len(items))
	used := make([]bool, len(items))

	for i, a := range items {
		if used[i] {
			continue
		}

		bestJ := -1
		bestGap := g.config.HorizontalXGapMax + 1

		for j := i + 1; j < len(items); j++ {
			b := items[j]
			if used[j] {
				continue
			}
			if a.Page != b.Page {
				break
			}
			if abs(a.Y-b.Y) > g.config.HorizontalYTolerance {
				continue
			}
			if a.Table || b.Table {
				continue
			}
			gap := b.X - a.X
			if gap > 0 && gap <= g.config.HorizontalXGapMax && gap < bestGap {
				bestGap = gap
				bestJ = j
			}
		}

		if bestJ >= 0 {
			b := items[bestJ]
			grouped = append(grouped, model.Candidate{
				Page:  a.Page,
				Value: a.Value + "\n" + b.Value,
				X:     (a.X + b.X) / 2,
				Y:     a.Y,
			})
			used[i] = true
			used[bestJ] = true
		} else {
			grouped = append(grouped, a)
			used[i] = true
		}
	}

	return grouped
}

// mergeVertical builds maximal runs of candidates sharing one left edge
// (within VerticalXTolerance), each next item within VerticalYGapMax of the
// run's current last item. Values concatenate top-to-bottom; the run anchors
// at its top.
func (g *Grouper) mergeVertical(candidates []model.Candidate) []model.Candidate {
	items := sortedBy(candidates, func(a, b model.Candidate) bool {
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	grouped := make([]model.Candidate, 0, len(items))
	used := make([]bool, len(items))

	for i, a := range items {
		if used[i] {
			continue
		}

		stack := []model.Candidate{a}
		used[i] = true

		for j := i + 1; j < len(items); j++ {
			b := items[j]
			if used[j] {
				continue
			}
			if a.Page != b.Page {
				break
			}
			if abs(a.X-b.X) > g.config.VerticalXTolerance {
				continue
			}
			if abs(b.Y-stack[len(stack)-1].Y) > g.config.VerticalYGapMax {
				continue
			}
			if a.Table || b.Table {
				continue
			}
			stack = append(stack, b)
			used[j] = true
		}

		if len(stack) > 1 {
			values := make([]string, len(stack))
			for k, s := range stack {
				values[k] = s.Value
			}
			grouped = append(grouped, model.Candidate{
				Page:  a.Page,
				Value: strings.Join(values, "\n"),
				X:     a.X,
				Y:     stack[0].Y,
			})
		} else {
			grouped = append(grouped, a)
		}
	}

	return grouped
}

// dropDuplicates removes accidental double callouts: dimension lines often
// repeat the text at both ends. For each candidate, every later candidate on
// the same page within DuplicateYTolerance vertically and
// DuplicateXTolerance horizontally is consumed; only the topmost survives.
func (g *Grouper) dropDuplicates(candidates []model.Candidate) []model.Candidate {
	items := sortedBy(candidates, func(a, b model.Candidate) bool {
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Y < b.Y
	})

	result := make([]model.Candidate, 0, len(items))
	consumed := make([]bool, len(items))

	for i, a := range items {
		if consumed[i] {
			continue
		}

		for j := i + 1; j < len(items); j++ {
			b := items[j]
			if b.Page != a.Page {
				break
			}
			if abs(b.Y-a.Y) > g.config.DuplicateYTolerance {
				continue
			}
			if abs(b.X-a.X) <= g.config.DuplicateXTolerance {
				consumed[j] = true
			}
		}

		result = append(result, a)
	}

	return result
}

func sortedBy(candidates []model.Candidate, less func(a, b model.Candidate) bool) []model.Candidate {
	items := make([]model.Candidate, len(candidates))
	copy(items, candidates)
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return items
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
