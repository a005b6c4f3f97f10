// Package mask provides the boolean pixel grid used throughout the
// segmentation pipeline, along with connected-component labeling and the
// binary morphology operations the detectors are built on.
//
// # Coordinate System
//
// All coordinates are (row, col) pairs, 0-based, with row 0 at the top of the
// image and col 0 at the left. This matches the orientation of the source
// photographs: rows grow downward, columns grow rightward.
//
// # Connectivity
//
// Every operation in this package uses 4-connectivity: two cells are
// neighbors only if they share an edge, never just a corner. Labeling,
// erosion, dilation, and hole filling all follow this convention so that the
// detectors composed on top of them agree on what "connected" means.
//
// # Mutability
//
// A Mask is a plain mutable grid, but the pipeline treats masks as immutable
// once handed to a detector. Operations that need to modify a mask (erosion,
// dilation, clearing) return a fresh copy and never write through to their
// input. Callers that share a mask across goroutines must not mutate it.
//
// # Regions
//
// Regions returns the maximal 4-connected foreground components of a mask in
// row-major discovery order, each carrying its label, area, bounding box, and
// full coordinate set. Regions are transient values recomputed per query;
// nothing in this package caches them.
package mask
