package document

import (
	"fmt"
	"os"

	"github.com/nayaruvi/balloonkit/format"
	"github.com/nayaruvi/balloonkit/model"
)

// Document is the consumed document-model contract. Implementations are not
// required to be safe for concurrent use; callers serialize access.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// Page returns the page at the given 0-based index.
	Page(index int) (Page, error)

	// Bytes captures the document's full current state as an opaque blob
	// suitable for snapshotting.
	Bytes() ([]byte, error)

	// Restore replaces the document's state with a blob previously produced
	// by Bytes.
	Restore(data []byte) error

	// Save writes the document to a path.
	Save(path string) error
}

// Page is one page of a document: its geometry, its text layer, and a
// drawing surface for annotations.
type Page interface {
	// Size returns the page width and height in points.
	Size() (width, height float64)

	// Spans returns the page's positioned text spans in document order.
	// The returned slice and its contents must not be mutated.
	Spans() []model.TextSpan

	// PlainText returns the page's full text.
	PlainText() string

	// DrawLine draws a straight line between two points.
	DrawLine(from, to model.Point, color model.Color, width float64)

	// DrawCircle draws an unfilled circle.
	DrawCircle(center model.Point, radius float64, color model.Color, width float64)

	// DrawLabel draws text centered inside a rectangle.
	DrawLabel(box model.BBox, text string, fontSize float64, color model.Color)
}

// Open opens a document by path. The format is detected from the extension,
// falling back to magic bytes for extensionless or misnamed files. PDF files
// are imported via the PDF adapter; serialized snapshots load as Memory
// documents. Raster scans are not openable directly; they go through the OCR
// pipeline first.
func Open(path string) (Document, error) {
	f := format.Detect(path)
	if f == format.Unknown {
		f = sniff(path)
	}

	switch f {
	case format.PDF:
		return OpenPDF(path)
	case format.Snapshot:
		return OpenMemory(path)
	case format.Image:
		return nil, fmt.Errorf("%s: raster scans require OCR import", path)
	default:
		return nil, fmt.Errorf("%s: unrecognized document format", path)
	}
}

func sniff(path string) format.Format {
	file, err := os.Open(path)
	if err != nil {
		return format.Unknown
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := file.Read(head)
	return format.DetectFromMagic(head[:n])
}
