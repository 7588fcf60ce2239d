package balloonkit

import (
	"errors"

	"github.com/nayaruvi/balloonkit/revision"
)

// Error kinds reported by session operations. All are structured failures
// matched with errors.Is; none terminate the process. Malformed span text is
// never an error - a non-matching span is simply excluded during
// classification.
var (
	// ErrUnreadableDocument reports a document that is missing or cannot be
	// opened.
	ErrUnreadableDocument = errors.New("document missing or unreadable")

	// ErrNoAnnotatedDocument reports a preview, download, or manual-balloon
	// request before any annotation pass has run.
	ErrNoAnnotatedDocument = errors.New("no annotated document exists")

	// ErrNothingToUndo reports an undo with fewer than two snapshots in
	// history.
	ErrNothingToUndo = revision.ErrNothingToUndo

	// ErrInvalidAnchor reports a supplied anchor coordinate that is
	// non-finite or outside the page bounds. It is checked before placement
	// is attempted; placement itself always succeeds.
	ErrInvalidAnchor = errors.New("anchor is non-finite or outside the page")
)
