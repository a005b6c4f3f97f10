// Package binarize produces the refined specimen silhouette mask from a
// mounted-specimen photograph.
//
// Binarization runs in two passes. The first pass thresholds the red channel
// of the whole frame with a 60-bin Otsu cutoff; that coarse mask is only used
// to locate the vertical edge separating the printed tags (top-right
// quadrant) from the specimen. The frame is then cropped to rows above the
// ruler and columns left of the tag edge, and a second Otsu cutoff over the
// rescaled HSV saturation channel of the crop yields the silhouette.
//
// # Purity
//
// Binarize is a pure function of its image and top-ruler inputs. Memoization
// is the caller's concern: the cache collaborator wraps calls from outside
// so results stay valid whether caching is enabled or bypassed.
//
// # Errors
//
// ErrThresholdingFailed reports a degenerate Otsu histogram (fewer than two
// occupied bins, e.g. a constant-intensity region). The tag-edge search
// reports mask.ErrNoRegionsFound when the tag window is entirely empty.
// Both indicate an unsuitable photograph and should route to manual review;
// the pipeline is deterministic, so retrying cannot help.
package binarize
