/*
Package decal drives update cycles of a retained box tree.

A Decal owns a viewport. Each call to Update receives the complete new
content of the viewport, builds a box tree from it, lays it out and compares
it with the tree of the previous cycle. The result is the list of boxes a
renderer has to redraw.

    d := decal.New(frame.NewViewport(dimen.Origin, dimen.Dimensions{W: 128, H: 64}))
    updates, err := d.Update(boxtree.Block(st, "Hello"))
    ...
    draw.Apply(surface, updates.Pairs, style.Black)

A Decal is not safe for concurrent use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package decal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.update'.
func tracer() tracing.Trace {
	return tracing.Select("decal.update")
}
