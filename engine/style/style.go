package style

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/decal/core/font"
	"github.com/npillmayer/decal/core/option"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Color is a device color. Monochrome displays use Black and White only,
// other devices may interpret further values through their palette.
type Color int32

// Transparent is a reserved color: draws resolving to it are skipped.
const (
	Transparent Color = -1
	Black       Color = 0
	White       Color = 1
)

func (c Color) String() string {
	switch c {
	case Transparent:
		return "transparent"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("color(%d)", int32(c))
}

// BorderStyle is a type for border line styles.
type BorderStyle int8

// We support these line styles only
const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDashed
)

func (bs BorderStyle) String() string {
	switch bs {
	case BorderSolid:
		return "solid"
	case BorderDashed:
		return "dashed"
	}
	return "none"
}

// Align is the horizontal alignment of inline boxes within their parent.
type Align int8

// Alignment values
const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "start"
}

// BoxSizing governs the base for resolving percentage sizes.
type BoxSizing int8

// Box sizing modes
const (
	ContentBox BoxSizing = iota
	BorderBox
)

func (b BoxSizing) String() string {
	if b == BorderBox {
		return "border-box"
	}
	return "content-box"
}

// DecorationLine is a type for text decoration lines.
type DecorationLine int8

// Text decorations
const (
	DecorationNone DecorationLine = iota
	Underline
	Overline
	LineThrough
)

func (d DecorationLine) String() string {
	switch d {
	case Underline:
		return "underline"
	case Overline:
		return "overline"
	case LineThrough:
		return "line-through"
	}
	return "none"
}

// ComputedStyle is the flattened set of style properties of a box.
//
// ComputedStyle is a value type. Styles are compared with ==, therefore the
// font must be of a comparable type (see font.Metrics).
type ComputedStyle struct {
	Margins     [4]int         // outside of border
	Padding     [4]int         // inside of border
	BorderWidth [4]int         // thickness of border
	BorderStyle [4]BorderStyle // none, solid or dashed
	BorderColor [4]Color       // may be Transparent
	X, Y        option.IntT    // explicit absolute position, bypassing flow
	Width       Size           // absolute, percentage or auto
	Height      Size           // absolute, percentage or auto
	Background  Color
	Foreground  Color
	Font        font.Metrics // may be nil for boxes without text
	Align       Align        // used by inline boxes only
	BoxSizing   BoxSizing
	// text decoration is used for drawing text boxes only
	DecorationLine      DecorationLine
	DecorationColor     Color
	DecorationThickness int
	DecorationOffset    int
}

// Default returns the style used for boxes without explicit styling.
//
// Every call returns a fresh value; there is no shared default instance.
func Default() ComputedStyle {
	return ComputedStyle{
		BorderColor:     [4]Color{Transparent, Transparent, Transparent, Transparent},
		X:               option.Int(),
		Y:               option.Int(),
		Background:      Transparent,
		Foreground:      White,
		DecorationColor: Transparent,
	}
}

// Fixed returns a copy of s where every border side with style `none` has
// border width 0. Boxes store fixed styles only.
func (s ComputedStyle) Fixed() ComputedStyle {
	for dir := Top; dir <= Left; dir++ {
		if s.BorderStyle[dir] == BorderNone {
			s.BorderWidth[dir] = 0
		}
	}
	return s
}

// Equal compares two styles property by property. It panics if one of
// the styles is not Comparable.
func (s ComputedStyle) Equal(other ComputedStyle) bool {
	return s == other
}

// Comparable is false if the font of s is of a type which cannot be compared
// with ==, e.g. a struct holding a slice.
func (s ComputedStyle) Comparable() bool {
	return comparableFont(s.Font)
}

func comparableFont(f font.Metrics) bool {
	return f == nil || reflect.TypeOf(f).Comparable()
}

// Positioned is true if s carries an explicit x or y coordinate.
func (s ComputedStyle) Positioned() bool {
	return !s.X.IsNone() || !s.Y.IsNone()
}

// HorizontalDecoration returns the sum of left and right border width and padding.
func (s ComputedStyle) HorizontalDecoration() int {
	return s.BorderWidth[Left] + s.Padding[Left] + s.Padding[Right] + s.BorderWidth[Right]
}

// VerticalDecoration returns the sum of top and bottom border width and padding.
func (s ComputedStyle) VerticalDecoration() int {
	return s.BorderWidth[Top] + s.Padding[Top] + s.Padding[Bottom] + s.BorderWidth[Bottom]
}

// DebugString returns a textual representation of a style's box properties.
// Intended for debugging.
func (s ComputedStyle) DebugString() string {
	var b strings.Builder
	b.WriteString("style{\n")
	fmt.Fprintf(&b, "   w=%v, h=%v  (%v)\n", s.Width, s.Height, s.BoxSizing)
	fmt.Fprintf(&b, "   m=%v, b=%v, p=%v\n", s.Margins, s.BorderWidth, s.Padding)
	fmt.Fprintf(&b, "   x=%v, y=%v, align=%v\n", s.X, s.Y, s.Align)
	fmt.Fprintf(&b, "   bg=%v, fg=%v\n", s.Background, s.Foreground)
	b.WriteString("}")
	return b.String()
}
