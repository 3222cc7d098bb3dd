/*
Package draw paints laid out box trees onto a drawing surface.

Surfaces are expected to be simple pixel devices, e.g. the frame buffer of a
small display. They have to support three primitives: filling rectangles,
setting single pixels and blitting text. Draw calls resolving to color
style.Transparent are never issued.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package draw

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.draw'.
func tracer() tracing.Trace {
	return tracing.Select("decal.draw")
}
