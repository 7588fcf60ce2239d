package balloonkit

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nayaruvi/balloonkit/classify"
	"github.com/nayaruvi/balloonkit/document"
	"github.com/nayaruvi/balloonkit/group"
	"github.com/nayaruvi/balloonkit/model"
	"github.com/nayaruvi/balloonkit/place"
	"github.com/nayaruvi/balloonkit/revision"
	"github.com/nayaruvi/balloonkit/tolerance"
	"github.com/nayaruvi/balloonkit/zones"
)

// Result is the outcome of a full annotation pass or rebuild.
type Result struct {
	// Dimensions is the final ordered callout list; its order is the
	// ballooning order.
	Dimensions []model.Candidate

	// Marks are the placed balloons, one per dimension, in index order.
	Marks []model.BalloonMark

	// Tolerances is the general-tolerance table found on the drawing.
	// Classes absent from the drawing are absent from the table.
	Tolerances tolerance.Table

	// Warnings report non-fatal degradations such as ring-exhausted
	// placements.
	Warnings []Warning
}

// Session owns all mutable annotation state for one document: the placement
// bookkeeping, the balloon counter, and the revision history. Every
// operation runs inside the session's critical section, so a single session
// is safe to share across goroutines; state is never shared between
// documents.
type Session struct {
	mu sync.Mutex

	doc      document.Document
	baseline []byte // pristine document state, the starting point of every full pass

	classifier *classify.Classifier
	grouper    *group.Grouper
	placer     *place.Placer
	state      *place.State
	history    *revision.Store
	options    Options

	nextIndex  int
	annotated  bool
	dimensions []model.Candidate
	marks      []model.BalloonMark
	tolerances tolerance.Table
}

// Open opens a document by path and wraps it in a fresh session.
func Open(path string) (*Session, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	return New(doc)
}

// New creates a session over an already-open document with default options.
func New(doc document.Document) (*Session, error) {
	return NewWithOptions(doc, DefaultOptions())
}

// NewWithOptions creates a session over an already-open document.
func NewWithOptions(doc document.Document, opts Options) (*Session, error) {
	baseline, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	state := place.NewState()
	return &Session{
		doc:        doc,
		baseline:   baseline,
		classifier: classify.NewClassifierWithConfig(opts.Classify, zones.NewPolicyWithConfig(opts.Zones)),
		grouper:    group.NewGrouperWithConfig(opts.Group),
		placer:     place.NewPlacerWithConfig(opts.Ring, state),
		state:      state,
		history:    revision.NewStoreWithCapacity(opts.HistoryCapacity),
		options:    opts,
		nextIndex:  1,
	}, nil
}

// Annotate runs the full pass: classify every page's spans, merge related
// candidates, place one numbered balloon per surviving callout from index 1,
// parse the general-tolerance table, and snapshot the annotated document.
// Running it again starts over from the pristine document.
func (s *Session) Annotate() (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.doc.Restore(s.baseline); err != nil {
		return nil, fmt.Errorf("restoring pristine document: %w", err)
	}

	var (
		dims      []model.Candidate
		pageTexts []string
	)
	for i := 0; i < s.doc.PageCount(); i++ {
		page, err := s.doc.Page(i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pw, ph := page.Size()
		candidates := s.classifier.Classify(i, page.Spans(), pw, ph)
		dims = append(dims, s.grouper.Group(candidates)...)
		pageTexts = append(pageTexts, page.PlainText())
	}

	s.state.Reset()
	marks, warnings, err := s.placeAll(dims, 1)
	if err != nil {
		return nil, err
	}

	s.dimensions = dims
	s.marks = marks
	s.tolerances = tolerance.Parse(pageTexts)
	s.nextIndex = len(dims) + 1
	s.annotated = true

	if err := s.snapshot(); err != nil {
		return nil, err
	}

	return &Result{
		Dimensions: append([]model.Candidate(nil), dims...),
		Marks:      append([]model.BalloonMark(nil), marks...),
		Tolerances: s.tolerances,
		Warnings:   warnings,
	}, nil
}

// AddBalloon places one balloon at an explicit anchor on a page, numbered
// with the next index after the session's current maximum. Existing marks
// are untouched; the live placement state keeps the new label clear of them.
func (s *Session) AddBalloon(page int, x, y float64) (model.BalloonMark, error) {
	return s.addBalloon(page, func(pw, ph float64) model.Point {
		return model.Point{X: x, Y: y}
	})
}

// AddBalloonFraction is AddBalloon with the anchor supplied as fractions of
// the page size, as interactive clients send it.
func (s *Session) AddBalloonFraction(page int, xFrac, yFrac float64) (model.BalloonMark, error) {
	return s.addBalloon(page, func(pw, ph float64) model.Point {
		return model.Point{X: xFrac * pw, Y: yFrac * ph}
	})
}

func (s *Session) addBalloon(page int, anchorAt func(pw, ph float64) model.Point) (model.BalloonMark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.annotated {
		return model.BalloonMark{}, ErrNoAnnotatedDocument
	}

	p, err := s.doc.Page(page)
	if err != nil {
		return model.BalloonMark{}, fmt.Errorf("%w: %v", ErrInvalidAnchor, err)
	}
	pw, ph := p.Size()

	anchor := anchorAt(pw, ph)
	if !model.ValidAnchor(anchor, pw, ph) {
		return model.BalloonMark{}, fmt.Errorf("%w: (%v, %v) on page %d", ErrInvalidAnchor, anchor.X, anchor.Y, page)
	}

	mark, _ := s.placer.PlaceMark(p, page, s.nextIndex, anchor)
	s.nextIndex++
	s.marks = append(s.marks, mark)

	if err := s.snapshot(); err != nil {
		return model.BalloonMark{}, err
	}
	return mark, nil
}

// Rebuild starts over from the pristine document and replays placement over
// a caller-supplied ordered anchor list. Balloon numbering restarts at 1 and
// follows the supplied order exactly. The tolerance table is unaffected.
func (s *Session) Rebuild(anchors []model.Candidate) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate every anchor before mutating anything.
	for i, a := range anchors {
		p, err := s.doc.Page(a.Page)
		if err != nil {
			return nil, fmt.Errorf("%w: anchor %d: %v", ErrInvalidAnchor, i, err)
		}
		pw, ph := p.Size()
		if !model.ValidAnchor(a.Anchor(), pw, ph) {
			return nil, fmt.Errorf("%w: anchor %d at (%v, %v)", ErrInvalidAnchor, i, a.X, a.Y)
		}
	}

	if err := s.doc.Restore(s.baseline); err != nil {
		return nil, fmt.Errorf("restoring pristine document: %w", err)
	}

	s.state.Reset()
	marks, warnings, err := s.placeAll(anchors, 1)
	if err != nil {
		return nil, err
	}

	s.dimensions = append([]model.Candidate(nil), anchors...)
	s.marks = marks
	s.nextIndex = len(anchors) + 1
	s.annotated = true

	if err := s.snapshot(); err != nil {
		return nil, err
	}

	return &Result{
		Dimensions: append([]model.Candidate(nil), s.dimensions...),
		Marks:      append([]model.BalloonMark(nil), marks...),
		Tolerances: s.tolerances,
		Warnings:   warnings,
	}, nil
}

// Undo discards the newest snapshot and restores the document, placement
// state, and balloon counter to the snapshot now at the end of history. With
// fewer than two snapshots it returns ErrNothingToUndo and changes nothing.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.history.Undo()
	if err != nil {
		return err
	}

	var snap sessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	if err := s.doc.Restore(snap.Doc); err != nil {
		return fmt.Errorf("restoring document: %w", err)
	}

	s.state.Restore(snap.Centers)
	s.nextIndex = snap.NextIndex
	s.dimensions = snap.Dimensions
	s.marks = snap.Marks
	return nil
}

// DocumentBytes returns the annotated document's current bytes.
func (s *Session) DocumentBytes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.annotated {
		return nil, ErrNoAnnotatedDocument
	}
	return s.doc.Bytes()
}

// SaveTo writes the annotated document to a path.
func (s *Session) SaveTo(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.annotated {
		return ErrNoAnnotatedDocument
	}
	return s.doc.Save(path)
}

// Dimensions returns the final callout list from the last full pass, in
// ballooning order.
func (s *Session) Dimensions() []model.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Candidate(nil), s.dimensions...)
}

// Marks returns every placed balloon in index order.
func (s *Session) Marks() []model.BalloonMark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.BalloonMark(nil), s.marks...)
}

// Tolerances returns the general-tolerance table from the last full pass.
func (s *Session) Tolerances() tolerance.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(tolerance.Table, len(s.tolerances))
	for k, v := range s.tolerances {
		out[k] = v
	}
	return out
}

// PageSize returns a page's width and height for client-side coordinate
// mapping.
func (s *Session) PageSize(page int) (width, height float64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.doc.Page(page)
	if err != nil {
		return 0, 0, fmt.Errorf("page %d: %w", page, err)
	}
	width, height = p.Size()
	return width, height, nil
}

// HistoryLen returns the number of snapshots currently held.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// placeAll places one balloon per anchor, numbering from startIndex in list
// order across all pages.
func (s *Session) placeAll(anchors []model.Candidate, startIndex int) ([]model.BalloonMark, []Warning, error) {
	var (
		marks    []model.BalloonMark
		warnings []Warning
	)
	for k, a := range anchors {
		page, err := s.doc.Page(a.Page)
		if err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", a.Page, err)
		}

		index := startIndex + k
		mark, fellBack := s.placer.PlaceMark(page, a.Page, index, a.Anchor())
		if fellBack {
			warnings = append(warnings, Warning{
				Page: a.Page,
				Message: fmt.Sprintf("balloon %d: candidate ring exhausted at anchor (%.1f, %.1f); label may overlap a neighbor",
					index, a.X, a.Y),
			})
		}
		marks = append(marks, mark)
	}
	return marks, warnings, nil
}

// sessionSnapshot is one revision: the rendered document plus the placement
// bookkeeping that must stay consistent with it across undo.
type sessionSnapshot struct {
	Doc        []byte                `json:"doc"`
	Centers    map[int][]model.Point `json:"centers"`
	NextIndex  int                   `json:"next_index"`
	Dimensions []model.Candidate     `json:"dimensions,omitempty"`
	Marks      []model.BalloonMark   `json:"marks,omitempty"`
}

// snapshot captures the current state into the revision history.
func (s *Session) snapshot() error {
	doc, err := s.doc.Bytes()
	if err != nil {
		return fmt.Errorf("capturing document: %w", err)
	}

	data, err := json.Marshal(sessionSnapshot{
		Doc:        doc,
		Centers:    s.state.Export(),
		NextIndex:  s.nextIndex,
		Dimensions: s.dimensions,
		Marks:      s.marks,
	})
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	s.history.Push(data)
	return nil
}
