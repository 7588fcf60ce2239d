package model

import "math"

// Candidate is a text span the classifier accepted as a dimension callout.
// The grouper consumes and produces the same shape: after grouping, Value may
// be a newline-joined concatenation of several merged callouts.
//
// X and Y form the anchor point (left edge x, rounded vertical mid y). Anchor
// coordinates are fixed at creation and never recomputed.
type Candidate struct {
	Page  int     `json:"page"`
	Value string  `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Table bool    `json:"is_table"`
}

// Anchor returns the candidate's anchor point.
func (c Candidate) Anchor() Point {
	return Point{X: c.X, Y: c.Y}
}

// BalloonMark records one placed balloon: its 1-based sequence number, the
// anchor its leader line points to, and the accepted label center. Index
// values are unique and strictly increasing within one document lifetime.
type BalloonMark struct {
	Index  int   `json:"index"`
	Page   int   `json:"page"`
	Anchor Point `json:"anchor"`
	Center Point `json:"center"`
}

// ValidAnchor reports whether p has finite coordinates inside a page of the
// given size. Placement is attempted only for valid anchors.
func ValidAnchor(p Point, pageWidth, pageHeight float64) bool {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return false
	}
	return p.X >= 0 && p.X <= pageWidth && p.Y >= 0 && p.Y <= pageHeight
}
