// Package contour traces a single-pixel-wide boundary out of a raster grid
// and reduces it to a closed polygon.
//
// # Pipeline
//
//  1. Trace: walk 8-connected contour pixels from the first contour pixel in
//     row-major order, never revisiting a pixel.
//  2. Normalize: remap grid (row, col) to Cartesian (x, y) with the origin at
//     the bottom-left of the image.
//  3. Approximate: keep every step-th point and join them into a closed
//     sequence of Vectors.
//
// The geometry helpers DirectionwiseAngle and VectorLen are shared by the
// encoders in package encoding.
//
// # Coordinate System
//
// Points produced by Trace are in grid space: X is the row (0 = top) and Y is
// the column (0 = left). Normalize converts them to Cartesian space where X
// grows rightward and Y grows upward. All angles are in degrees,
// counter-clockwise from +X.
//
// # Limitations
//
// The tracer assumes one simply-connected contour, one pixel thick. When a
// walk reaches a pixel with several unvisited contour neighbours it takes the
// first in a fixed order: edge neighbours clockwise from south, then corner
// neighbours (see EdgeFirst; TraceWith accepts the plain clockwise Compass
// order as well). That tie-break is deterministic but not guaranteed to
// follow the true boundary, and thick or branching contours can end the walk
// early.
package contour
