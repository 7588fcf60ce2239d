package classify

import (
	"math"

	"github.com/nayaruvi/balloonkit/model"
	"github.com/nayaruvi/balloonkit/zones"
)

// Config holds classification thresholds.
type Config struct {
	// MinFontSize is the font-size floor; smaller spans are annotations or
	// fine print, never dimensions. Default: 7.
	MinFontSize float64

	// TopMarginRatio defines the band at the top of the page (as a fraction
	// of page height) whose spans are skipped. Default: 0.05.
	TopMarginRatio float64

	// LeftMarginRatio defines the strip at the left of the page (as a
	// fraction of page width) in which bare integers are treated as sheet or
	// page numbers. Default: 0.15.
	LeftMarginRatio float64

	// RowDensityThreshold is the minimum count of table-zone candidates
	// sharing one rounded y-center for that row to be suppressed as a
	// parts-table row. Default: 4.
	RowDensityThreshold int

	// Allowlist is the set of engineering abbreviations permitted alongside
	// a dimension. Defaults to DefaultAllowlist().
	Allowlist []string
}

// DefaultConfig returns the standard classification thresholds.
func DefaultConfig() Config {
	return Config{
		MinFontSize:         7,
		TopMarginRatio:      0.05,
		LeftMarginRatio:     0.15,
		RowDensityThreshold: 4,
		Allowlist:           DefaultAllowlist(),
	}
}

// Classifier filters raw text spans into dimension candidates using a zone
// policy, the dimension token grammar, and the abbreviation allow-list.
type Classifier struct {
	config Config
	policy zones.Policy
}

// NewClassifier creates a Classifier with default thresholds and the
// standard zone policy.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig(), zones.NewPolicy())
}

// NewClassifierWithConfig creates a Classifier with custom thresholds and
// zone policy.
func NewClassifierWithConfig(cfg Config, policy zones.Policy) *Classifier {
	if cfg.Allowlist == nil {
		cfg.Allowlist = DefaultAllowlist()
	}
	return &Classifier{config: cfg, policy: policy}
}

// Classify filters one page's spans into dimension candidates. page is the
// 0-indexed page number recorded on each candidate; pw and ph are the page
// dimensions. Candidate order follows span order.
func (c *Classifier) Classify(page int, spans []model.TextSpan, pw, ph float64) []model.Candidate {
	sfZones := c.policy.SurfaceFinishZones(spans, ph)
	bomCols := c.policy.BOMColumns(spans)

	var accepted []model.Candidate
	rowHits := make(map[float64]int)

	for _, s := range spans {
		clean, ok := c.accept(s, pw, ph, sfZones, bomCols)
		if !ok {
			continue
		}

		yc := math.Round(s.BBox.MidY())
		table := c.policy.InTableZone(s.BBox.X0, s.BBox.Y0, pw, ph)

		accepted = append(accepted, model.Candidate{
			Page:  page,
			Value: clean,
			X:     s.BBox.X0,
			Y:     yc,
			Table: table,
		})
		if table {
			rowHits[yc]++
		}
	}

	return c.suppressDenseRows(accepted, rowHits)
}

// accept runs the ordered rejection rules for one span. It returns the
// cleaned text and whether the span survives.
func (c *Classifier) accept(s model.TextSpan, pw, ph float64, sfZones []zones.Band, bomCols []zones.Column) (string, bool) {
	if s.FontSize < c.config.MinFontSize {
		return "", false
	}
	if s.BBox.Y1 < ph*c.config.TopMarginRatio {
		return "", false
	}
	if c.policy.InHardIgnoreZone(s.BBox.X0, s.BBox.Y0, pw, ph) {
		return "", false
	}
	for _, band := range sfZones {
		if band.Contains(s.BBox.Y0) {
			return "", false
		}
	}

	text := normalizeText(s.Text)
	if !MatchesGrammar(text) {
		return "", false
	}
	if hasInvalidLetters(text, c.config.Allowlist) {
		return "", false
	}

	clean := collapseSpaces(text)

	// Bare 1-3 digit integers are already-placed balloon numbers or
	// revision marks, not dimensions.
	if bareShortInteger.MatchString(clean) {
		return "", false
	}
	// Bare integers hugging the left edge are sheet numbers.
	if s.BBox.X0 < pw*c.config.LeftMarginRatio && bareInteger.MatchString(clean) {
		return "", false
	}
	for _, col := range bomCols {
		if col.Contains(s.BBox.X0, s.BBox.Y0) {
			return "", false
		}
	}

	return clean, true
}

// suppressDenseRows drops every table-zone candidate whose rounded y-center
// is shared by RowDensityThreshold or more table-zone candidates. Such rows
// are genuine multi-column BOM rows; non-table candidates at the same y are
// incidental aligned dimensions and survive.
func (c *Classifier) suppressDenseRows(candidates []model.Candidate, rowHits map[float64]int) []model.Candidate {
	var out []model.Candidate
	for _, cand := range candidates {
		if cand.Table && rowHits[cand.Y] >= c.config.RowDensityThreshold {
			continue
		}
		out = append(out, cand)
	}
	return out
}
