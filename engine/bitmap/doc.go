/*
Package bitmap implements packed monochrome bitmaps.

The buffer layout is the one of common monochrome display controllers
(e.g., SSD1306 pages): each byte is a column of 8 vertically stacked
pixels, least significant bit at the top. Bytes run left to right, then
continue with the next band of 8 rows. Therefore a buffer's length must be
a multiple of the bitmap's width.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package bitmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.bitmap'.
func tracer() tracing.Trace {
	return tracing.Select("decal.bitmap")
}
