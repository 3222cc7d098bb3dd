/*
Package option implements optional values with in-band null markers.

Styles carry optional properties (e.g., explicit box coordinates) which
are either set to a concrete value or unset. Option types make the
distinction explicit and offer a simple pattern matching facility.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.core'.
func tracer() tracing.Trace {
	return tracing.Select("decal.core")
}
