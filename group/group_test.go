package group

import (
	"testing"

	"github.com/nayaruvi/balloonkit/model"
)

func cand(page int, value string, x, y float64) model.Candidate {
	return model.Candidate{Page: page, Value: value, X: x, Y: y}
}

func tableCand(page int, value string, x, y float64) model.Candidate {
	c := cand(page, value, x, y)
	c.Table = true
	return c
}

func TestHorizontalMerge(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "1.250", 100, 50),
		cand(0, "±.005", 115, 51),
	})

	if len(got) != 1 {
		t.Fatalf("expected 1 merged callout, got %d", len(got))
	}
	if got[0].Value != "1.250\n±.005" {
		t.Errorf("expected newline-joined value, got %q", got[0].Value)
	}
	if got[0].X != 107.5 {
		t.Errorf("expected anchor x at mean 107.5, got %f", got[0].X)
	}
	if got[0].Y != 50 {
		t.Errorf("expected anchor y 50 from the left item, got %f", got[0].Y)
	}
}

func TestHorizontalMerge_PicksSmallestGap(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "1.250", 100, 50),
		cand(0, "far", 118, 50),
		cand(0, "near", 110, 50),
	})

	// 1.250 merges with "near" (gap 10) over "far" (gap 18); "far" then
	// stands alone.
	if len(got) != 2 {
		t.Fatalf("expected 2 callouts, got %d", len(got))
	}
	if got[0].Value != "1.250\nnear" {
		t.Errorf("expected smallest-gap merge, got %q", got[0].Value)
	}
}

func TestHorizontalMerge_RespectsThresholds(t *testing.T) {
	g := NewGrouper()

	tests := []struct {
		name string
		b    model.Candidate
	}{
		{"gap too wide", cand(0, "b", 125, 50)},
		{"baselines apart", cand(0, "b", 110, 60)},
		{"other page", cand(1, "b", 110, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Group([]model.Candidate{cand(0, "a", 100, 50), tt.b})
			if len(got) != 2 {
				t.Errorf("expected no merge, got %d callouts", len(got))
			}
		})
	}
}

func TestHorizontalMerge_SkipsTableCandidates(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		tableCand(0, "a", 100, 50),
		cand(0, "b", 110, 50),
	})

	if len(got) != 2 {
		t.Errorf("expected table candidate to never merge, got %d callouts", len(got))
	}
}

func TestHorizontalMerge_Idempotent(t *testing.T) {
	g := NewGrouper()

	once := g.Group([]model.Candidate{
		cand(0, "1.250", 100, 50),
		cand(0, "±.005", 115, 51),
	})
	twice := g.Group(once)

	if len(twice) != len(once) {
		t.Fatalf("expected re-grouping to be a no-op, got %d -> %d", len(once), len(twice))
	}
	if twice[0].Value != once[0].Value {
		t.Errorf("expected value unchanged, got %q", twice[0].Value)
	}
}

func TestVerticalStackMerge(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "top", 100, 10),
		cand(0, "mid", 100, 20),
		cand(0, "bot", 100, 30),
	})

	if len(got) != 1 {
		t.Fatalf("expected 1 stacked callout, got %d", len(got))
	}
	if got[0].Value != "top\nmid\nbot" {
		t.Errorf("expected top-to-bottom join, got %q", got[0].Value)
	}
	if got[0].X != 100 {
		t.Errorf("expected anchor x 100, got %f", got[0].X)
	}
	if got[0].Y != 10 {
		t.Errorf("expected anchor at top of run y=10, got %f", got[0].Y)
	}
}

func TestVerticalStackMerge_GapBreaksRun(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "top", 100, 10),
		cand(0, "far", 100, 40), // 30 > max step of 20
	})

	if len(got) != 2 {
		t.Errorf("expected run to break on large gap, got %d callouts", len(got))
	}
}

func TestVerticalStackMerge_SingletonPassesThrough(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{cand(0, "1.250", 100, 10)})
	if len(got) != 1 || got[0].Value != "1.250" {
		t.Errorf("expected singleton unchanged, got %+v", got)
	}
}

func TestDuplicateSuppression(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "2.750", 100, 50),
		cand(0, "2.750", 105, 52),
	})

	if len(got) != 1 {
		t.Fatalf("expected duplicates to collapse to one, got %d", len(got))
	}
	// The earlier (topmost after sort) survives.
	if got[0].Y != 50 {
		t.Errorf("expected topmost survivor at y=50, got y=%f", got[0].Y)
	}
}

func TestDuplicateSuppression_AtMostOneSurvivor(t *testing.T) {
	g := NewGrouper()

	// A cluster of three near-coincident callouts must leave exactly one,
	// regardless of pairwise bookkeeping.
	got := g.Group([]model.Candidate{
		cand(0, "2.750", 100, 50),
		cand(0, "2.750", 104, 53),
		cand(0, "2.750", 108, 55),
	})

	if len(got) != 1 {
		t.Errorf("expected exactly one survivor from the cluster, got %d", len(got))
	}
}

func TestDropDuplicates_Pass(t *testing.T) {
	g := NewGrouper()

	// Offsets chosen outside both merge windows so only the duplicate pass
	// can act: y apart by 5 (> horizontal tolerance 3), x apart by 8
	// (> vertical tolerance 6, <= duplicate tolerance 10).
	got := g.dropDuplicates([]model.Candidate{
		cand(0, "2.750", 100, 50),
		cand(0, "2.750", 108, 55),
	})

	if len(got) != 1 {
		t.Fatalf("expected later duplicate consumed, got %d", len(got))
	}
	if got[0].Y != 50 {
		t.Errorf("expected topmost survivor at y=50, got y=%f", got[0].Y)
	}
}

func TestDuplicateSuppression_FarApartSurvive(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "2.750", 100, 50),
		cand(0, "2.750", 300, 52), // same y band, far in x
		cand(0, "2.750", 100, 90), // same x, far in y
	})

	if len(got) != 3 {
		t.Errorf("expected distant callouts to all survive, got %d", len(got))
	}
}

func TestGroup_NeverMergesAcrossPages(t *testing.T) {
	g := NewGrouper()

	got := g.Group([]model.Candidate{
		cand(0, "a", 100, 10),
		cand(1, "b", 100, 20),
	})

	if len(got) != 2 {
		t.Errorf("expected no cross-page merge, got %d callouts", len(got))
	}
}

func TestGroup_Deterministic(t *testing.T) {
	g := NewGrouper()

	input := []model.Candidate{
		cand(0, "a", 100, 10),
		cand(0, "b", 100, 20),
		cand(0, "c", 300, 50),
		cand(0, "d", 310, 50),
	}

	first := g.Group(input)
	second := g.Group(input)

	if len(first) != len(second) {
		t.Fatalf("expected identical output lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("output %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
