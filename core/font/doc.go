/*
Package font is for typeface and font handling.

Layout needs exactly two things from a font: the width and the height of a
piece of text, in pixels. This is captured by interface Metrics. Anything
able to answer these queries may serve as a font for text boxes, e.g. a
monospace cell grid of a character display or a scaled OpenType font.

We stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Go Sans regular".

* A "typecase" is a scaled font, i.e. a font in a certain pixel size.
The name is reminiscend on the wooden boxes of typesetters in the aera
of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.font'.
func tracer() tracing.Trace {
	return tracing.Select("decal.font")
}
