// Package classify filters raw page text spans into dimension callout
// candidates.
//
// A span survives classification only if it clears an ordered sequence of
// rejection rules: font-size floor, top-margin band, title-block corner,
// surface-finish legends, the dimension token grammar, the engineering
// abbreviation allow-list, bare-integer filters for balloon numbers and sheet
// numbers, and bill-of-materials columns. Malformed text is never an error;
// a span that fails any rule is simply excluded.
//
// # Usage
//
//	classifier := classify.NewClassifier()
//	candidates := classifier.Classify(pageIndex, spans, pageWidth, pageHeight)
//
// Rejection thresholds and the abbreviation allow-list are configurable via
// [Config]; zone geometry is delegated to a [zones.Policy].
//
// # Row-Density Suppression
//
// After per-span filtering, candidates inside the table zone that share a
// rounded y-center with at least [Config.RowDensityThreshold] other table
// candidates are dropped as parts-table rows. Candidates outside the table
// zone at the same y always survive.
package classify
