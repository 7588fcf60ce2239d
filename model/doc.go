// Package model defines the shared data types used throughout balloonkit:
// page geometry, positioned text spans, dimension candidates, and balloon
// marks.
//
// # Coordinate System
//
// All coordinates use a top-left origin: x grows rightward, y grows downward,
// matching the raster orientation of a rendered drawing sheet. A [BBox] is
// stored as its two corners, (X0,Y0) upper-left and (X1,Y1) lower-right.
//
// # Core Types
//
//   - [TextSpan] - one positioned run of text as produced by the document model
//   - [Candidate] - a text span promoted to a dimension callout candidate
//   - [BalloonMark] - a placed, numbered balloon with its anchor and center
//   - [Point], [BBox], [Color] - geometry and styling primitives
package model
