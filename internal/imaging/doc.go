// Package imaging turns decoded images into the pixel grids the contour
// tracer reads, and provides the helpers used to choose a threshold for them.
//
// A Grid is a read-only, row-major raster of 8-bit RGB Pixels. A Threshold
// classifies each pixel as contour or background: a pixel is contour when
// every channel is at or above the threshold's channel.
//
// # Coordinate System
//
// Grids are addressed by (row, col), row 0 at the top. The helpers that take
// an image.Image (SampleColor, CropRegion) use the image convention instead:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Grids never change after
// construction and may be shared freely.
//
// # Color Representation
//
// SampleColor reports a pixel in several forms:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// Alpha is always dropped: a transparent pixel classifies by its color alone.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid regions (x1 >= x2 or y1 >= y2)
//   - Empty or ragged pixel rows
//   - File I/O and decoding errors during image loading
package imaging
