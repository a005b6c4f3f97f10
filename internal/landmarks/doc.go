// Package landmarks locates the five standardized morphometric landmarks on
// a specimen silhouette mask: the two wingtips (outer pixels), the two
// wing-body junctions (inner pixels), and the body center.
//
// Detect is the orchestrator. It splits the silhouette at the body midline,
// removes antenna artifacts from each half, and runs the outer- and
// inner-pixel detectors per half, translating half-local coordinates back
// into the whole-silhouette frame. Downstream measurement code consumes the
// resulting coordinates, so every translation offset is fixed and
// documented on the detector that produces the local value.
//
// # Coordinate Frames
//
// Three frames are in play: the whole silhouette, each half-mask (column
// offset 0 for the left half, midline for the right), and the inner-pixel
// search window (column offset equal to the wingtip column on the left
// side). Detectors return coordinates in their own frame; Detect performs
// all translation.
//
// # Determinism and Purity
//
// Every function here is a pure function of its inputs. The antenna remover
// is the only component that writes to a mask, and it writes only to a
// private copy. Results are reproducible across runs and safe to memoize by
// input fingerprint.
//
// # Failure Policy
//
// Detectors fail loudly (mask.ErrNoRegionsFound) rather than return a
// plausible-looking landmark when their geometric assumptions do not hold.
// The one sanctioned silent fallback is the antenna remover: a specimen
// without an antenna bridge simply has nothing to remove.
package landmarks
