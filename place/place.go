package place

import (
	"math"
	"strconv"

	"github.com/nayaruvi/balloonkit/document"
	"github.com/nayaruvi/balloonkit/model"
)

// RingConfig holds the placement geometry and balloon styling.
type RingConfig struct {
	// Angles is the ordered ring of candidate directions, in degrees.
	// Negative angles point up the page. Default:
	// 0, 30, -30, 45, -45, 60, -60, 90, -90.
	Angles []float64

	// Offset is the radial distance from anchor to label center. Default: 26.
	Offset float64

	// MinSeparation is the minimum center-to-center distance to every
	// previously accepted label on the page. Default: 22.
	MinSeparation float64

	// EdgeMargin keeps accepted centers inside the page interior. Default: 15.
	EdgeMargin float64

	// Radius is the balloon circle radius. Default: 8.
	Radius float64

	// LabelFontSize is the balloon number font size. Default: 7.
	LabelFontSize float64

	// LeaderWidth and CircleWidth are stroke widths. Defaults: 0.8 and 1.
	LeaderWidth float64
	CircleWidth float64

	// Color is the annotation color. Default: red.
	Color model.Color
}

// DefaultRing returns the standard ring geometry and styling.
func DefaultRing() RingConfig {
	return RingConfig{
		Angles:        []float64{0, 30, -30, 45, -45, 60, -60, 90, -90},
		Offset:        26,
		MinSeparation: 22,
		EdgeMargin:    15,
		Radius:        8,
		LabelFontSize: 7,
		LeaderWidth:   0.8,
		CircleWidth:   1,
		Color:         model.Red,
	}
}

// State is the per-document placement bookkeeping: for each page, the
// ordered centers of every mark currently rendered on it. It grows
// monotonically during a placement pass and resets only on a full rebuild.
type State struct {
	centers map[int][]model.Point
}

// NewState creates empty placement bookkeeping.
func NewState() *State {
	return &State{centers: make(map[int][]model.Point)}
}

// Centers returns the accepted label centers on a page, in placement order.
func (s *State) Centers(page int) []model.Point {
	return s.centers[page]
}

// Add records an accepted label center on a page.
func (s *State) Add(page int, p model.Point) {
	s.centers[page] = append(s.centers[page], p)
}

// Reset clears all pages' bookkeeping ahead of a full rebuild.
func (s *State) Reset() {
	s.centers = make(map[int][]model.Point)
}

// Export returns a deep copy of every page's centers, suitable for
// snapshotting alongside the rendered document.
func (s *State) Export() map[int][]model.Point {
	out := make(map[int][]model.Point, len(s.centers))
	for page, centers := range s.centers {
		out[page] = append([]model.Point(nil), centers...)
	}
	return out
}

// Restore replaces the bookkeeping with a previously exported copy.
func (s *State) Restore(centers map[int][]model.Point) {
	s.centers = make(map[int][]model.Point, len(centers))
	for page, pts := range centers {
		s.centers[page] = append([]model.Point(nil), pts...)
	}
}

// Place computes the label center for balloon number index anchored at
// anchor, on a page sized pw x ph, given the centers already used on that
// page. It returns the accepted center and whether the ring was exhausted
// and the fallback position used.
//
// Place is pure: it neither reads nor writes any state beyond its arguments.
func Place(anchor model.Point, index int, pw, ph float64, used []model.Point, ring RingConfig) (model.Point, bool) {
	n := len(ring.Angles)
	start := index % n

	// Ring-exhausted fallback: the un-rotated first candidate.
	center := offsetAt(anchor, ring.Angles[0], ring.Offset)
	fallback := true

	for k := 0; k < n; k++ {
		ang := ring.Angles[(start+k)%n]
		candidate := offsetAt(anchor, ang, ring.Offset)
		if clearOf(candidate, used, ring.MinSeparation) {
			center = candidate
			fallback = false
			break
		}
	}

	center.X = model.Clamp(center.X, ring.EdgeMargin, pw-ring.EdgeMargin)
	center.Y = model.Clamp(center.Y, ring.EdgeMargin, ph-ring.EdgeMargin)
	return center, fallback
}

func offsetAt(anchor model.Point, angleDeg, offset float64) model.Point {
	rad := angleDeg * math.Pi / 180
	return model.Point{
		X: anchor.X + offset*math.Cos(rad),
		Y: anchor.Y + offset*math.Sin(rad),
	}
}

func clearOf(p model.Point, used []model.Point, minSep float64) bool {
	for _, u := range used {
		if p.Distance(u) < minSep {
			return false
		}
	}
	return true
}

// Placer renders balloons onto document pages, threading a State through
// successive placements.
type Placer struct {
	ring  RingConfig
	state *State
}

// NewPlacer creates a Placer with the default ring over fresh state.
func NewPlacer() *Placer {
	return NewPlacerWithConfig(DefaultRing(), NewState())
}

// NewPlacerWithConfig creates a Placer with a custom ring and explicit state.
func NewPlacerWithConfig(ring RingConfig, state *State) *Placer {
	return &Placer{ring: ring, state: state}
}

// State returns the placer's live placement state.
func (p *Placer) State() *State {
	return p.state
}

// PlaceMark places balloon number index at anchor on the given page, draws
// the leader line, circle, and centered number, and records the center. It
// reports the placed mark and whether the fallback position was used.
func (p *Placer) PlaceMark(page document.Page, pageIndex, index int, anchor model.Point) (model.BalloonMark, bool) {
	pw, ph := page.Size()
	center, fellBack := Place(anchor, index, pw, ph, p.state.Centers(pageIndex), p.ring)
	p.state.Add(pageIndex, center)

	page.DrawLine(center, anchor, p.ring.Color, p.ring.LeaderWidth)
	page.DrawCircle(center, p.ring.Radius, p.ring.Color, p.ring.CircleWidth)
	page.DrawLabel(
		model.NewBBox(center.X-p.ring.Radius, center.Y-p.ring.Radius,
			center.X+p.ring.Radius, center.Y+p.ring.Radius),
		strconv.Itoa(index), p.ring.LabelFontSize, p.ring.Color,
	)

	return model.BalloonMark{
		Index:  index,
		Page:   pageIndex,
		Anchor: anchor,
		Center: center,
	}, fellBack
}
