// Package cache memoizes pipeline results on disk.
//
// Landmark detection on a large photograph is expensive and deterministic,
// so results are keyed by a fingerprint of the inputs (pixel content plus
// the parameters that influence the outcome) and stored in a SQLite
// database. A cache hit returns the stored payload without re-running the
// pipeline; any change to the image, the parameters, or the pipeline
// version produces a new fingerprint and a clean miss.
package cache
