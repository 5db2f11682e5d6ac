// Package detection locates the printable region of a shirt template image.
//
// Templates are assumed to show a shirt silhouette that is darker than a
// near-white studio background. The detector binarizes the image with an
// inverted brightness threshold, extracts connected foreground components
// (contours), and reports the axis-aligned bounding rectangle of the largest
// one.
//
// # Pipeline
//
//  1. Grayscale conversion (ITU-R BT.601 luminance)
//  2. Gaussian blur to suppress sensor noise and JPEG artifacts
//  3. Inverted binary threshold: pixels at or below the brightness
//     threshold become foreground
//  4. Connected-component extraction (8-connected flood fill)
//  5. Selection of the component with the largest pixel area
//  6. Box refinement against the unblurred threshold mask, which removes
//     the blur halo from the reported edges
//
// # Coordinate System
//
// All coordinates are 0-based with origin at the template's top-left corner,
// X increasing rightward and Y increasing downward. Region width and height
// are inclusive pixel extents (a single foreground pixel has width 1).
//
// # Determinism
//
// Detection is a pure function of the input image and options. When two
// components tie on area, the one encountered first in row-major scan order
// wins, so repeated calls always return the same region.
//
// # Failure Semantics
//
// An all-white or near-white template produces no foreground components.
// This is not an error: DetectRegion reports absence and the caller falls
// back to canvas-centered placement.
package detection
