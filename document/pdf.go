package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nayaruvi/balloonkit/model"
)

// Default page size when a PDF page carries no usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Glyph coalescing thresholds, as multiples of the font size.
const (
	wordGapFactor = 0.3 // larger gaps get an explicit space
	spanGapFactor = 1.2 // larger gaps start a new span
)

// OpenPDF imports a PDF's positioned text layer into a Memory document. The
// PDF itself is read-only source material; annotations drawn afterwards live
// in the Memory overlay.
//
// PDF text coordinates use a bottom-left origin; they are converted to the
// top-left origin convention of the model package during import.
func OpenPDF(path string) (*Memory, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	doc := NewMemory()
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		width, height := pageSize(p)
		page := doc.AddPage(width, height)
		page.TextSpans = coalesceGlyphs(p.Content().Text, i-1, height)

		text, err := p.GetPlainText(nil)
		if err == nil {
			page.Text = text
		} else {
			page.Text = joinSpanText(page.TextSpans)
		}
	}

	if doc.PageCount() == 0 {
		return nil, fmt.Errorf("PDF %q has no readable pages", path)
	}
	return doc, nil
}

// pageSize reads the page MediaBox, falling back to US Letter.
func pageSize(p pdf.Page) (float64, float64) {
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageWidth, defaultPageHeight
	}
	w := box.Index(2).Float64() - box.Index(0).Float64()
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if w <= 0 || h <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return w, h
}

// coalesceGlyphs groups the page's raw glyph runs into text spans. Runs on
// one baseline merge while their horizontal gap stays below spanGapFactor
// times the font size; moderate gaps become spaces. pageHeight flips the
// y axis to the top-left origin.
func coalesceGlyphs(glyphs []pdf.Text, pageIndex int, pageHeight float64) []model.TextSpan {
	if len(glyphs) == 0 {
		return nil
	}

	ordered := make([]pdf.Text, len(glyphs))
	copy(ordered, glyphs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y > ordered[j].Y // top of page first
		}
		return ordered[i].X < ordered[j].X
	})

	var spans []model.TextSpan
	var (
		text               strings.Builder
		startX, endX       float64
		baselineY, curSize float64
		curFont            string
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}
		top := pageHeight - baselineY - curSize
		spans = append(spans, model.TextSpan{
			Page:     pageIndex,
			Text:     text.String(),
			BBox:     model.NewBBox(startX, top, endX, pageHeight-baselineY),
			FontSize: curSize,
		})
		text.Reset()
	}

	for _, g := range ordered {
		size := g.FontSize
		if size <= 0 {
			size = 1
		}
		sameLine := text.Len() > 0 &&
			abs(g.Y-baselineY) <= 1 &&
			g.Font == curFont &&
			g.X-endX <= size*spanGapFactor

		if !sameLine {
			flush()
			startX = g.X
			baselineY = g.Y
			curSize = g.FontSize
			curFont = g.Font
		} else if g.X-endX > size*wordGapFactor {
			text.WriteByte(' ')
		}

		text.WriteString(g.S)
		endX = g.X + g.W
	}
	flush()

	return spans
}

func joinSpanText(spans []model.TextSpan) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.Text
	}
	return strings.Join(parts, "\n")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
