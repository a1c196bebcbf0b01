// Package color evaluates PDF color-space descriptors (ISO 32000-1 §8.6)
// against raw sample values, producing sRGB bytes suitable for
// compositing into a raster image.
//
// It implements DeviceGray, DeviceRGB, DeviceCMYK, CalGray, CalRGB, Lab,
// Indexed, and the family covering Separation/DeviceN (grouped here as
// "Alternate"). Pattern is represented but never evaluated as pixels.
// ICC-based spaces degrade to their /Alternate entry or to a device
// space chosen by component count; full ICC profile interpretation is
// out of scope.
//
// Every Space is immutable after construction and safe to share for
// read-only use across goroutines, provided destination buffers passed
// to the conversion methods are not shared concurrently. The one
// exception is Alternate: its GetRGB and GetRGBItem write a per-instance
// scratch buffer, so those calls on one instance must be serialized.
package color
