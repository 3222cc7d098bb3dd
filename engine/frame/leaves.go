package frame

import (
	"fmt"

	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/style"
)

// Leaves take their size from their content. Style properties for sizing
// and spacing are ignored for leaves, they report zero offsets and an outer
// size equal to their content size.

// TextBox is a leaf box holding a string of text. The dimensions are taken
// from the font metrics of its style.
type TextBox struct {
	Box
	text string
}

// NewTextBox creates a text leaf.
func NewTextBox(st style.ComputedStyle, text string) *TextBox {
	return &TextBox{
		Box:  Box{Style: st.Fixed()},
		text: text,
	}
}

// Kind is part of interface Node.
func (t *TextBox) Kind() Kind { return TextKind }

// Children is part of interface Node. Always nil.
func (t *TextBox) Children() []Boxed { return nil }

// Text returns the text of the box.
func (t *TextBox) Text() string { return t.text }

func (t *TextBox) LeftOffset() int { return 0 }
func (t *TextBox) TopOffset() int { return 0 }
func (t *TextBox) OuterWidth() int { return t.Dimensions.W }
func (t *TextBox) OuterHeight() int { return t.Dimensions.H }

func (t *TextBox) layout(Container) error {
	if t.Style.Font == nil {
		return core.Error(core.EMISSING, "text box %q has no font", t.text)
	}
	t.Dimensions = dimen.Dimensions{
		W: t.Style.Font.Width(t.text),
		H: t.Style.Font.Height(t.text),
	}
	return nil
}

func (t *TextBox) String() string {
	return fmt.Sprintf("TextBox[%v %v, %q]", t.Position, t.Dimensions, t.text)
}

// BitMapBox is a leaf box displaying a monochrome image.
type BitMapBox struct {
	Box
	image bitmap.Image
}

// NewBitMapBox creates a bitmap leaf.
func NewBitMapBox(st style.ComputedStyle, img bitmap.Image) *BitMapBox {
	return &BitMapBox{
		Box:   Box{Style: st.Fixed()},
		image: img,
	}
}

// Kind is part of interface Node.
func (b *BitMapBox) Kind() Kind { return BitMapKind }

// Children is part of interface Node. Always nil.
func (b *BitMapBox) Children() []Boxed { return nil }

// Image returns the bitmap of the box.
func (b *BitMapBox) Image() bitmap.Image { return b.image }

func (b *BitMapBox) LeftOffset() int { return 0 }
func (b *BitMapBox) TopOffset() int { return 0 }
func (b *BitMapBox) OuterWidth() int { return b.Dimensions.W }
func (b *BitMapBox) OuterHeight() int { return b.Dimensions.H }

func (b *BitMapBox) layout(Container) error {
	if b.image == nil {
		return core.Error(core.EMISSING, "bitmap box has no image")
	}
	b.Dimensions = dimen.Dimensions{W: b.image.Width(), H: b.image.Height()}
	return nil
}

func (b *BitMapBox) String() string {
	return fmt.Sprintf("BitMapBox[%v %v]", b.Position, b.Dimensions)
}

// Interface guards.
var (
	_ Boxed     = (*BlockBox)(nil)
	_ Boxed     = (*InlineBox)(nil)
	_ Boxed     = (*TextBox)(nil)
	_ Boxed     = (*BitMapBox)(nil)
	_ Container = (*Viewport)(nil)
	_ Container = (*BlockBox)(nil)
	_ Container = (*InlineBox)(nil)
)
