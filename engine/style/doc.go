/*
Package style holds computed styles for boxes.

Styles arrive fully computed: there is no cascade, no selector matching and
no inheritance resolution. A ComputedStyle is a flat, comparable value type.
Two styles are equal if and only if all of their properties are equal, which
is what the reconciler relies on to detect visual changes.

Four-way properties (margins, padding, border widths, styles and colors)
always start at the top and travel clockwise, as in CSS.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.style'.
func tracer() tracing.Trace {
	return tracing.Select("decal.style")
}
