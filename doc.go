// Package balloonkit annotates engineering drawings: it classifies the text
// spans of each page into dimension callouts, merges related fragments,
// numbers every callout with a circular balloon connected by a leader line,
// and extracts the drawing's general-tolerance table.
//
// Basic usage:
//
//	session, err := balloonkit.Open("bracket.pdf")
//	if err != nil {
//	    // handle error
//	}
//	result, err := session.Annotate()
//	if err != nil {
//	    // handle error
//	}
//	for i, dim := range result.Dimensions {
//	    fmt.Printf("balloon %d: %s\n", i+1, dim.Value)
//	}
//
// After the initial pass, balloons can be added manually, the whole set can
// be rebuilt in a caller-supplied order, and any mutation can be undone one
// step at a time:
//
//	mark, err := session.AddBalloon(0, 182.5, 240.0)
//	err = session.Undo()
//
// A session serializes all operations against its document internally, so
// one session may be shared across goroutines; distinct documents get
// distinct sessions and never contend.
//
// The lower-level packages (classify, group, place, zones, tolerance,
// revision, document) are also available for advanced use.
package balloonkit
