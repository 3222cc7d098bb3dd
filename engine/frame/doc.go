/*
Package frame deals with boxes and their layout.

Layout may be understood as the process of placing boxes within larger
boxes. Boxes follow the CSS box model: a content box, surrounded by padding,
border and margin. Geometry is kept in device pixels.

There is a fixed set of box variants:

▪︎ Viewport: the root container, at a fixed position on the display
▪︎ BlockBox: stacks its children vertically and spans the full parent width
▪︎ InlineBox: flows its children horizontally and may align itself
▪︎ TextBox: a leaf sized by font metrics
▪︎ BitMapBox: a leaf sized by a monochrome bitmap

Every variant implements interface Node. The interfaces contain unexported
methods, so clients cannot add variants; code switching over Kind may
therefore be exhaustive.

Layout is synchronous and writes the computed geometry (Position and
Dimensions) of every box exactly once per call. Parents are passed to their
children as arguments during layout and are never retained.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.frame'.
func tracer() tracing.Trace {
	return tracing.Select("decal.frame")
}
