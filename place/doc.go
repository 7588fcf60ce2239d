// Package place positions numbered balloon labels around dimension callouts
// and emits the drawing instructions for each mark.
//
// # Placement Algorithm
//
// Placement is a greedy, online, non-backtracking packing heuristic. For the
// i-th balloon the candidate angles of a fixed ring are tried at a fixed
// radial offset from the anchor, starting i mod ringLength positions into
// the ring so successive balloons scan from different angles. The first
// candidate far enough from every previously accepted center on the page
// wins. If the whole ring is exhausted the un-rotated first candidate is
// used anyway - an accepted degradation under local crowding, not an error.
// Accepted centers are clamped inside the page edges and are never revisited,
// even if a later, denser neighborhood would have benefited from repacking.
//
// [Place] is a pure function of the anchor, the used-center list, and the
// [RingConfig]; per-page bookkeeping lives in an explicit [State] value.
package place
