package balloonkit

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/nayaruvi/balloonkit/document"
	"github.com/nayaruvi/balloonkit/model"
)

const (
	pageWidth  = 1000.0
	pageHeight = 800.0
)

func span(text string, x0, y0 float64) model.TextSpan {
	return model.TextSpan{
		Text:     text,
		BBox:     model.NewBBox(x0, y0, x0+40, y0+10),
		FontSize: 9,
	}
}

// drawingDoc builds a small synthetic drawing sheet: three dimensions in the
// open field, a title block row, and a tolerance note.
func drawingDoc() *document.Memory {
	doc := document.NewMemory()
	page := doc.AddPage(pageWidth, pageHeight)
	page.TextSpans = []model.TextSpan{
		span("1.250", 200, 200),
		span("3.500", 200, 300),
		span("Ø.750 THRU", 400, 450),
		span("PART NAME", 600, 700), // title block, hard-ignore zone
	}
	page.Text = "TOLERANCES:\nFRACTIONAL: 1/64\nTWO PLACE DECIMAL: .010"
	return doc
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(drawingDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestAnnotate_FullPass(t *testing.T) {
	s := newSession(t)

	result, err := s.Annotate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Dimensions) != 3 {
		t.Fatalf("expected 3 dimensions, got %d: %+v", len(result.Dimensions), result.Dimensions)
	}
	if len(result.Marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(result.Marks))
	}

	// Indices are 1-based and strictly increasing.
	for i, m := range result.Marks {
		if m.Index != i+1 {
			t.Errorf("mark %d: expected index %d, got %d", i, i+1, m.Index)
		}
	}

	if got := result.Tolerances["FRACTIONAL"]; got != 0.015625 {
		t.Errorf("expected FRACTIONAL 0.015625, got %f", got)
	}
	if _, ok := result.Tolerances["THREE_DECIMAL"]; ok {
		t.Error("expected THREE_DECIMAL absent")
	}

	if s.HistoryLen() != 1 {
		t.Errorf("expected 1 snapshot after the initial pass, got %d", s.HistoryLen())
	}
}

func TestAnnotate_DrawsThreeInstructionsPerBalloon(t *testing.T) {
	doc := drawingDoc()
	s, _ := New(doc)

	result, err := s.Annotate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(doc.Pages[0].Drawings); got != 3*len(result.Marks) {
		t.Errorf("expected %d drawing instructions, got %d", 3*len(result.Marks), got)
	}
}

func TestAnnotate_Rerun_StartsOver(t *testing.T) {
	doc := drawingDoc()
	s, _ := New(doc)

	first, _ := s.Annotate()
	second, err := s.Annotate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(second.Marks) != len(first.Marks) {
		t.Fatalf("expected identical pass results, got %d and %d marks", len(first.Marks), len(second.Marks))
	}
	// No double-drawing: the overlay holds exactly one pass worth of marks.
	if got := len(doc.Pages[0].Drawings); got != 3*len(second.Marks) {
		t.Errorf("expected %d drawing instructions after re-run, got %d", 3*len(second.Marks), got)
	}
	if second.Marks[0].Index != 1 {
		t.Errorf("expected numbering to restart at 1, got %d", second.Marks[0].Index)
	}
}

func TestAddBalloon_ContinuesIndexing(t *testing.T) {
	s := newSession(t)
	result, _ := s.Annotate()

	mark, err := s.AddBalloon(0, 500, 250)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := len(result.Marks) + 1; mark.Index != want {
		t.Errorf("expected manual balloon index %d, got %d", want, mark.Index)
	}
	if s.HistoryLen() != 2 {
		t.Errorf("expected 2 snapshots, got %d", s.HistoryLen())
	}
}

func TestAddBalloon_RequiresAnnotatedDocument(t *testing.T) {
	s := newSession(t)

	if _, err := s.AddBalloon(0, 500, 250); !errors.Is(err, ErrNoAnnotatedDocument) {
		t.Errorf("expected ErrNoAnnotatedDocument, got %v", err)
	}
}

func TestAddBalloon_InvalidAnchors(t *testing.T) {
	s := newSession(t)
	s.Annotate()

	tests := []struct {
		name string
		page int
		x, y float64
	}{
		{"NaN", 0, math.NaN(), 100},
		{"infinite", 0, 100, math.Inf(1)},
		{"negative", 0, -5, 100},
		{"beyond page", 0, pageWidth + 1, 100},
		{"bad page", 9, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddBalloon(tt.page, tt.x, tt.y); !errors.Is(err, ErrInvalidAnchor) {
				t.Errorf("expected ErrInvalidAnchor, got %v", err)
			}
		})
	}

	// Failed additions never snapshot.
	if s.HistoryLen() != 1 {
		t.Errorf("expected history untouched at 1, got %d", s.HistoryLen())
	}
}

func TestAddBalloonFraction_ConvertsToPageCoordinates(t *testing.T) {
	s := newSession(t)
	s.Annotate()

	mark, err := s.AddBalloonFraction(0, 0.5, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mark.Anchor.X != 500 || mark.Anchor.Y != 200 {
		t.Errorf("expected anchor (500, 200), got %v", mark.Anchor)
	}
}

func TestRebuild_ReplaysSuppliedOrder(t *testing.T) {
	doc := drawingDoc()
	s, _ := New(doc)
	s.Annotate()
	s.AddBalloon(0, 500, 250)

	anchors := []model.Candidate{
		{Page: 0, Value: "3.500", X: 200, Y: 305},
		{Page: 0, Value: "1.250", X: 200, Y: 205},
	}

	result, err := s.Rebuild(anchors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Marks) != 2 {
		t.Fatalf("expected 2 marks, got %d", len(result.Marks))
	}
	if result.Marks[0].Index != 1 || result.Marks[0].Anchor.Y != 305 {
		t.Errorf("expected fresh index order following supplied order, got %+v", result.Marks[0])
	}
	// The overlay holds only the rebuilt marks.
	if got := len(doc.Pages[0].Drawings); got != 6 {
		t.Errorf("expected 6 drawing instructions after rebuild, got %d", got)
	}
}

func TestRebuild_RejectsInvalidAnchorBeforeMutating(t *testing.T) {
	doc := drawingDoc()
	s, _ := New(doc)
	s.Annotate()
	drawingsBefore := len(doc.Pages[0].Drawings)

	_, err := s.Rebuild([]model.Candidate{
		{Page: 0, X: 100, Y: 100},
		{Page: 0, X: math.NaN(), Y: 100},
	})
	if !errors.Is(err, ErrInvalidAnchor) {
		t.Fatalf("expected ErrInvalidAnchor, got %v", err)
	}

	if got := len(doc.Pages[0].Drawings); got != drawingsBefore {
		t.Errorf("expected document untouched, drawings %d -> %d", drawingsBefore, got)
	}
	if s.HistoryLen() != 1 {
		t.Errorf("expected history untouched, got %d snapshots", s.HistoryLen())
	}
}

func TestUndo_RestoresPriorState(t *testing.T) {
	s := newSession(t)

	s.Annotate()              // S1
	s.AddBalloon(0, 500, 250) // S2
	afterSecond, err := s.DocumentBytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddBalloon(0, 700, 150) // S3

	if err := s.Undo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, _ := s.DocumentBytes()
	if !bytes.Equal(restored, afterSecond) {
		t.Error("expected document bytes equal to the S2 capture")
	}
	if s.HistoryLen() != 2 {
		t.Errorf("expected exactly 2 snapshots after undo, got %d", s.HistoryLen())
	}
}

func TestUndo_RollsBackBalloonCounterAndPlacement(t *testing.T) {
	s := newSession(t)
	result, _ := s.Annotate()

	first, _ := s.AddBalloon(0, 500, 250)
	s.Undo()

	// The next manual balloon reuses the undone index and the undone
	// label's position no longer blocks placement.
	second, err := s.AddBalloon(0, 500, 250)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Index != first.Index {
		t.Errorf("expected index %d reused after undo, got %d", first.Index, second.Index)
	}
	if second.Center != first.Center {
		t.Errorf("expected identical placement after undo, got %v and %v", first.Center, second.Center)
	}
	if got := len(s.Marks()); got != len(result.Marks)+1 {
		t.Errorf("expected %d marks, got %d", len(result.Marks)+1, got)
	}
}

func TestUndo_SingleSnapshotFails(t *testing.T) {
	s := newSession(t)
	s.Annotate()

	if err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if s.HistoryLen() != 1 {
		t.Errorf("expected history unchanged, got %d", s.HistoryLen())
	}
}

func TestDocumentBytes_RequiresAnnotation(t *testing.T) {
	s := newSession(t)

	if _, err := s.DocumentBytes(); !errors.Is(err, ErrNoAnnotatedDocument) {
		t.Errorf("expected ErrNoAnnotatedDocument, got %v", err)
	}
}

func TestPageSize(t *testing.T) {
	s := newSession(t)

	w, h, err := s.PageSize(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != pageWidth || h != pageHeight {
		t.Errorf("expected %fx%f, got %fx%f", pageWidth, pageHeight, w, h)
	}

	if _, _, err := s.PageSize(3); err == nil {
		t.Error("expected error for out-of-range page")
	}
}

func TestOpen_MissingDocument(t *testing.T) {
	if _, err := Open("no-such-drawing.pdf"); !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("expected ErrUnreadableDocument, got %v", err)
	}
}
