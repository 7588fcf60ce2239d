package model

// TextSpan represents one positioned run of text sharing a single font and
// bounding box, as produced by the document model for a page. Spans are
// read-only inputs; nothing in balloonkit mutates them.
type TextSpan struct {
	Page     int     // 0-indexed page number
	Text     string  // raw text content
	BBox     BBox    // position on the page
	FontSize float64 // font size in points
}

// Anchor returns the span's anchor point: left edge x, vertical mid y.
// This is the point a balloon's leader line will target.
func (s TextSpan) Anchor() Point {
	return Point{X: s.BBox.X0, Y: s.BBox.MidY()}
}
