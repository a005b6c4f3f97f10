// Package pipeline composes the full specimen processing run.
//
// A Runner ties the stages together for one photograph: load, fingerprint,
// binarize, detect landmarks, measure, and optionally read the tag text,
// render diagnostic plots, and paint an overlay. Results are memoized in a
// SQLite cache keyed by the image fingerprint, so reprocessing an unchanged
// photograph is a single database lookup.
package pipeline
