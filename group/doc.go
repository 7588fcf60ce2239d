// Package group merges related dimension candidates into logical callouts
// and removes near-duplicates.
//
// Grouping runs as three ordered passes over one page's candidates, never
// across pages:
//
//  1. Horizontal merge - joins the closest pair of side-by-side fragments on
//     one baseline (a value and its trailing tolerance, for example)
//  2. Vertical stack merge - joins maximal runs of vertically stacked
//     fragments sharing one left edge (multi-line callouts)
//  3. Duplicate suppression - drops near-coincident callouts, keeping the
//     topmost
//
// Given identical input ordering and thresholds the output is fully
// reproducible; thresholds come from [Config] and are never derived from
// content. Merged values are newline-joined top-to-bottom and candidates
// flagged as table members never participate in merges.
package group
