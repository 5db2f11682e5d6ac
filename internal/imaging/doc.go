// Package imaging provides the raster operations behind mockup generation:
// decoding uploaded bytes, resizing designs, alpha-compositing them onto
// templates, encoding results as PNG, and sampling shirt colors.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Purity
//
// Every operation in this package is a pure function: inputs are never
// mutated and identical inputs produce identical outputs. Composite in
// particular returns a byte-identical result on repeated calls, which the
// batch generator relies on.
//
// # Clipping
//
// Composite places the design at an arbitrary offset, including offsets
// partially or entirely outside the template canvas. Out-of-canvas regions
// clip silently; the output always has the template's dimensions. This is
// documented behavior, not an oversight: large or negative vertical offsets
// are a deliberate creative-control knob.
package imaging
