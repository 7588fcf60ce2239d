package zones

import (
	"sort"
	"strings"

	"github.com/nayaruvi/balloonkit/model"
)

// Config holds the geometric thresholds for zone detection.
type Config struct {
	// TableZoneXRatio and TableZoneYRatio define the right-lower quadrant
	// considered likely BOM/parts-table area, as fractions of page size.
	// Default: 0.65 and 0.40.
	TableZoneXRatio float64
	TableZoneYRatio float64

	// HardIgnoreXRatio and HardIgnoreYRatio define the extreme bottom-right
	// title-block corner whose spans are never considered.
	// Default: 0.55 and 0.85.
	HardIgnoreXRatio float64
	HardIgnoreYRatio float64

	// SurfaceFinishPhrase is the marker phrase locating a surface-finish
	// legend. Default: "SURFACE FINISH".
	SurfaceFinishPhrase string

	// SurfaceFinishRise is how far above the marker line the exclusion band
	// starts, in points. Default: 10.
	SurfaceFinishRise float64

	// SurfaceFinishDepthRatio is the band height as a fraction of page
	// height. Default: 0.16.
	SurfaceFinishDepthRatio float64

	// BOMKeywords are the header words that identify a parts-table column.
	// Default: ITEM, QTY, PART, NO, DESCRIPTION, MATERIAL.
	BOMKeywords []string

	// BOMColumnMargin widens each detected column rectangle on both sides,
	// in points. Default: 15.
	BOMColumnMargin float64

	// LineYTolerance is the maximum top-edge difference for spans to be
	// treated as one line of text when scanning for marker phrases.
	// Default: 2.
	LineYTolerance float64
}

// DefaultConfig returns the standard zone thresholds.
func DefaultConfig() Config {
	return Config{
		TableZoneXRatio:         0.65,
		TableZoneYRatio:         0.40,
		HardIgnoreXRatio:        0.55,
		HardIgnoreYRatio:        0.85,
		SurfaceFinishPhrase:     "SURFACE FINISH",
		SurfaceFinishRise:       10,
		SurfaceFinishDepthRatio: 0.16,
		BOMKeywords:             []string{"ITEM", "QTY", "PART", "NO", "DESCRIPTION", "MATERIAL"},
		BOMColumnMargin:         15,
		LineYTolerance:          2,
	}
}

// Band is a horizontal slab of a page: all y in [Top, Bottom].
type Band struct {
	Top    float64
	Bottom float64
}

// Contains reports whether y falls inside the band.
func (b Band) Contains(y float64) bool {
	return y >= b.Top && y <= b.Bottom
}

// Column is a BOM column rectangle extending downward from a header line.
type Column struct {
	XMin float64
	XMax float64
	Top  float64 // baseline of the header; only spans strictly below count
}

// Contains reports whether a span anchored at (x, y) falls inside the column,
// below its header.
func (c Column) Contains(x, y float64) bool {
	return x >= c.XMin && x <= c.XMax && y > c.Top
}

// Policy decides whether points and spans belong to excluded page regions.
type Policy interface {
	// InTableZone reports whether (x, y) lies in the likely parts-table
	// quadrant of a page sized pw x ph.
	InTableZone(x, y, pw, ph float64) bool

	// InHardIgnoreZone reports whether (x, y) lies in the title-block corner.
	InHardIgnoreZone(x, y, pw, ph float64) bool

	// SurfaceFinishZones locates the exclusion bands below every
	// surface-finish marker line on a page. A page may have several.
	SurfaceFinishZones(spans []model.TextSpan, ph float64) []Band

	// BOMColumns locates the column rectangles hanging below parts-table
	// header keywords.
	BOMColumns(spans []model.TextSpan) []Column
}

// StandardPolicy implements Policy with the standard drawing-sheet rules.
type StandardPolicy struct {
	config Config
}

// NewPolicy creates a StandardPolicy with default thresholds.
func NewPolicy() *StandardPolicy {
	return NewPolicyWithConfig(DefaultConfig())
}

// NewPolicyWithConfig creates a StandardPolicy with custom thresholds.
func NewPolicyWithConfig(cfg Config) *StandardPolicy {
	return &StandardPolicy{config: cfg}
}

// InTableZone reports whether (x, y) lies in the right-lower quadrant.
func (p *StandardPolicy) InTableZone(x, y, pw, ph float64) bool {
	return x > pw*p.config.TableZoneXRatio && y > ph*p.config.TableZoneYRatio
}

// InHardIgnoreZone reports whether (x, y) lies in the title-block corner.
func (p *StandardPolicy) InHardIgnoreZone(x, y, pw, ph float64) bool {
	return x > pw*p.config.HardIgnoreXRatio && y > ph*p.config.HardIgnoreYRatio
}

// SurfaceFinishZones scans the page's text lines for the marker phrase and
// returns one exclusion band per match.
func (p *StandardPolicy) SurfaceFinishZones(spans []model.TextSpan, ph float64) []Band {
	var bands []Band
	for _, ln := range p.textLines(spans) {
		if !strings.Contains(ln.text, p.config.SurfaceFinishPhrase) {
			continue
		}
		top := ln.minY0 - p.config.SurfaceFinishRise
		bands = append(bands, Band{
			Top:    top,
			Bottom: top + ph*p.config.SurfaceFinishDepthRatio,
		})
	}
	return bands
}

// BOMColumns scans the page's text lines for header keywords and returns one
// column rectangle per span of each matching line.
func (p *StandardPolicy) BOMColumns(spans []model.TextSpan) []Column {
	var cols []Column
	for _, ln := range p.textLines(spans) {
		if !containsAny(ln.text, p.config.BOMKeywords) {
			continue
		}
		for _, s := range ln.spans {
			cols = append(cols, Column{
				XMin: s.BBox.X0 - p.config.BOMColumnMargin,
				XMax: s.BBox.X1 + p.config.BOMColumnMargin,
				Top:  s.BBox.Y1,
			})
		}
	}
	return cols
}

// textLine is a group of spans sharing one baseline, with their uppercased
// joined text.
type textLine struct {
	spans []model.TextSpan
	text  string
	minY0 float64
}

// textLines buckets spans into lines by top edge, within LineYTolerance.
func (p *StandardPolicy) textLines(spans []model.TextSpan) []textLine {
	sorted := make([]model.TextSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Y0 != sorted[j].BBox.Y0 {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var lines []textLine
	for _, s := range sorted {
		if n := len(lines); n > 0 {
			last := &lines[n-1]
			if s.BBox.Y0-last.spans[0].BBox.Y0 <= p.config.LineYTolerance {
				last.spans = append(last.spans, s)
				continue
			}
		}
		lines = append(lines, textLine{spans: []model.TextSpan{s}})
	}

	for i := range lines {
		parts := make([]string, len(lines[i].spans))
		minY0 := lines[i].spans[0].BBox.Y0
		for j, s := range lines[i].spans {
			parts[j] = s.Text
			if s.BBox.Y0 < minY0 {
				minY0 = s.BBox.Y0
			}
		}
		lines[i].text = strings.ToUpper(strings.Join(parts, " "))
		lines[i].minY0 = minY0
	}
	return lines
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
