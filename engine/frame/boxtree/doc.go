/*
Package boxtree builds box trees from declarative content.

Clients describe a tree by nesting calls:

    tree := boxtree.Block(st,
        "Temperature",
        boxtree.Inline(st.With(style.WithAlign(style.AlignEnd)), "21°C", icon),
    )

Content may be text (a string), a bitmap (bitmap.Image), an already
constructed box, or a slice of these. Primitives are wrapped into leaf boxes
carrying the style of the enclosing container. Nil entries are dropped.

Text is normalized to Unicode NFC, thus canonically equivalent strings
produce identical leaves.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("decal.boxtree")
}
