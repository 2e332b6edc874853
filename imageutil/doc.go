// Package imageutil applies the colormodel library to whole images.
//
// It covers pixel color sampling, dominant palette extraction, and
// image-wide color adjustments (hue rotation, warming, cooling,
// inversion). All operations work with standard Go image.Image types and
// use a coordinate system where (0,0) is at the top-left corner, X
// increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, the rectangle's Min corner is inclusive and its Max
//     corner is exclusive, following the image package convention.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image
// operations are stateless and can be called concurrently on different
// images.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Empty or out-of-bounds regions
//   - Adjustment amounts outside their documented ranges
//   - File I/O errors during image loading
//
// Bound and amount defects wrap the colormodel sentinel errors, so
// callers can test them with errors.Is.
package imageutil
