/*
Package monospace provides font metrics for character-cell displays.

Text width is measured in grapheme clusters, where each cluster occupies one
or two cells, depending on its East Asian width (UAX #11).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.font'.
func tracer() tracing.Trace {
	return tracing.Select("decal.font")
}
