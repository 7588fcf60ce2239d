// Package zones implements the geometric zone policy for engineering-drawing
// pages: predicates deciding whether a point falls in a parts-table region, a
// title block, a surface-finish legend, or a bill-of-materials column.
//
// Zone rules are pure functions of page geometry and the page's text spans;
// the policy holds no per-page state and every zone is recomputed per page.
//
// # Zones
//
//   - Table zone - fixed right-lower quadrant where BOM/parts tables live
//   - Hard-ignore zone - the extreme bottom-right title block corner
//   - Surface-finish zones - vertical bands below any "SURFACE FINISH" line
//   - BOM columns - column rectangles hanging below table header keywords
//
// The [Policy] interface keeps zone rules swappable and independently
// testable from extraction logic; [StandardPolicy] implements the standard
// rules with thresholds from [Config].
package zones
