/*
Package reconcile compares two laid out box trees and computes the list of
boxes which need to be redrawn.

Trees are compared by position: child i of a box in the new tree corresponds
to child i of the box at the same place in the old tree. There are no keys.
Whenever the shapes of the trees differ, i.e. kinds of boxes or numbers of
children do not match, no partial result is computed and the caller is
expected to redraw everything.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package reconcile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.reconcile'.
func tracer() tracing.Trace {
	return tracing.Select("decal.reconcile")
}
