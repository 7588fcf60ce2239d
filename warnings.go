package balloonkit

import (
	"fmt"
	"strings"
)

// Warning reports a non-fatal issue encountered during an annotation pass,
// such as a balloon placed at its fallback position because the ring around
// a crowded anchor was exhausted.
type Warning struct {
	// Page is the 0-indexed page the warning concerns.
	Page int

	// Message describes the issue.
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s", w.Page+1, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
