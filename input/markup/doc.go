/*
Package markup reads box trees from HTML fragments.

Markup is a convenient way to describe the screens of a device in a file
instead of in code:

    <div class="card">
      <span class="title" align="center">Living room</span>
      <p>21°C <img src="thermometer"></p>
    </div>

There is no CSS. Styles are taken from a table of named styles, selected
with the class attribute of an element. Elements without a class inherit
font, color and text decoration from their parent. Images reference bitmaps
of a resource table by name.

Elements are mapped to boxes as follows:

▪︎ div, p, section, article, header, footer, h1–h6: block boxes
▪︎ span, b, i, em, strong, a: inline boxes
▪︎ img: bitmap boxes
▪︎ text: text boxes, with white space collapsed

Unknown elements are treated as blocks.

The attributes width, height, x, y and align override the respective
properties of an element's style.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'decal.markup'.
func tracer() tracing.Trace {
	return tracing.Select("decal.markup")
}
