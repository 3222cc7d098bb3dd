/*
Package imagesurface implements a drawing surface on top of an in-memory
RGBA image. It is useful for tests, for taking screenshots and for
displays driven from an off-screen buffer.

Device colors of boxes are mapped to image colors by a Palette.
Text is drawn with a type case of package core/font.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package imagesurface

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.draw'.
func tracer() tracing.Trace {
	return tracing.Select("decal.draw")
}
