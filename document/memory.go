package document

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nayaruvi/balloonkit/model"
)

// Drawing kinds recorded on a memory page.
const (
	KindLine   = "line"
	KindCircle = "circle"
	KindLabel  = "label"
)

// Drawing is one recorded annotation operation.
type Drawing struct {
	Kind     string      `json:"kind"`
	From     model.Point `json:"from,omitempty"`
	To       model.Point `json:"to,omitempty"`
	Center   model.Point `json:"center,omitempty"`
	Radius   float64     `json:"radius,omitempty"`
	Box      model.BBox  `json:"box,omitempty"`
	Text     string      `json:"text,omitempty"`
	FontSize float64     `json:"font_size,omitempty"`
	Color    model.Color `json:"color"`
	Width    float64     `json:"width,omitempty"`
}

// MemoryPage is one page of a Memory document.
type MemoryPage struct {
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	TextSpans []model.TextSpan `json:"spans"`
	Text      string           `json:"text"`
	Drawings  []Drawing        `json:"drawings,omitempty"`
}

// Size returns the page dimensions.
func (p *MemoryPage) Size() (float64, float64) {
	return p.Width, p.Height
}

// Spans returns the page's text spans.
func (p *MemoryPage) Spans() []model.TextSpan {
	return p.TextSpans
}

// PlainText returns the page's full text.
func (p *MemoryPage) PlainText() string {
	return p.Text
}

// DrawLine records a line annotation.
func (p *MemoryPage) DrawLine(from, to model.Point, color model.Color, width float64) {
	p.Drawings = append(p.Drawings, Drawing{
		Kind: KindLine, From: from, To: to, Color: color, Width: width,
	})
}

// DrawCircle records a circle annotation.
func (p *MemoryPage) DrawCircle(center model.Point, radius float64, color model.Color, width float64) {
	p.Drawings = append(p.Drawings, Drawing{
		Kind: KindCircle, Center: center, Radius: radius, Color: color, Width: width,
	})
}

// DrawLabel records a centered text label.
func (p *MemoryPage) DrawLabel(box model.BBox, text string, fontSize float64, color model.Color) {
	p.Drawings = append(p.Drawings, Drawing{
		Kind: KindLabel, Box: box, Text: text, FontSize: fontSize, Color: color,
	})
}

// Memory is a fully in-process document. Annotations accumulate as an
// overlay on each page; Bytes and Restore serialize the whole state, which
// makes Memory the reference implementation for snapshot/undo behavior.
type Memory struct {
	Pages []*MemoryPage `json:"pages"`
}

// NewMemory creates an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{}
}

// AddPage appends a page and returns it for population.
func (d *Memory) AddPage(width, height float64) *MemoryPage {
	p := &MemoryPage{Width: width, Height: height}
	d.Pages = append(d.Pages, p)
	return p
}

// PageCount returns the number of pages.
func (d *Memory) PageCount() int {
	return len(d.Pages)
}

// Page returns the page at the given 0-based index.
func (d *Memory) Page(index int) (Page, error) {
	if index < 0 || index >= len(d.Pages) {
		return nil, fmt.Errorf("page %d out of range [0, %d)", index, len(d.Pages))
	}
	return d.Pages[index], nil
}

// Bytes serializes the document state.
func (d *Memory) Bytes() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Restore replaces the document state with a previously captured blob.
func (d *Memory) Restore(data []byte) error {
	var restored Memory
	if err := json.Unmarshal(data, &restored); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	d.Pages = restored.Pages
	return nil
}

// Save writes the serialized document to a path.
func (d *Memory) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// OpenMemory loads a serialized Memory document from a path.
func OpenMemory(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	d := NewMemory()
	if err := d.Restore(data); err != nil {
		return nil, err
	}
	return d, nil
}
