package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/engine/style"
)

// Node is the common interface of all nodes of a box tree, including the
// viewport.
type Node interface {
	Kind() Kind
	Children() []Boxed
	translate(dx, dy int)
}

// Boxed is the interface of nodes which follow the CSS box model.
// All variants except the viewport are boxed.
type Boxed interface {
	Node
	CSSBox() *Box
	LeftOffset() int  // distance of the content box from the left outer edge
	TopOffset() int   // distance of the content box from the top outer edge
	OuterWidth() int  // content width plus horizontal decoration and margins
	OuterHeight() int // content height plus vertical decoration and margins
	layout(parent Container) error
}

// Container is the view of a parent box its children get during layout.
type Container interface {
	Node
	// ContentOrigin is the top-left corner of the content box.
	ContentOrigin() dimen.Point
	// ContentSize is the size of the content box. Width and height are
	// meaningful only if Resolved reports them as known.
	ContentSize() dimen.Dimensions
	Resolved() (w bool, h bool)
	// Decoration returns the sum of border and padding, horizontally and vertically.
	Decoration() (h int, v int)
}

// Box type, following the CSS box model.
//
// Position is the top-left corner of the content box, in absolute display
// coordinates. Dimensions is the size of the content box. Both are zero
// until layout has run.
type Box struct {
	Style      style.ComputedStyle
	Position   dimen.Point
	Dimensions dimen.Dimensions
}

// For margins, padding, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top    = style.Top
	Right  = style.Right
	Bottom = style.Bottom
	Left   = style.Left
)

// CSSBox returns the box itself. Box variants embed a Box, thus exposing
// their geometry.
func (box *Box) CSSBox() *Box {
	return box
}

// LeftOffset returns margin, border and padding on the left side.
func (box *Box) LeftOffset() int {
	s := &box.Style
	return s.Margins[Left] + s.BorderWidth[Left] + s.Padding[Left]
}

// TopOffset returns margin, border and padding on the top side.
func (box *Box) TopOffset() int {
	s := &box.Style
	return s.Margins[Top] + s.BorderWidth[Top] + s.Padding[Top]
}

// OuterWidth returns the width of the margin box.
func (box *Box) OuterWidth() int {
	s := &box.Style
	return box.Dimensions.W + s.Margins[Left] + s.Margins[Right] + s.HorizontalDecoration()
}

// OuterHeight returns the height of the margin box.
func (box *Box) OuterHeight() int {
	s := &box.Style
	return box.Dimensions.H + s.Margins[Top] + s.Margins[Bottom] + s.VerticalDecoration()
}

// X returns the left edge of the margin box.
func (box *Box) X() int {
	return box.Position.X - box.LeftOffset()
}

// Y returns the top edge of the margin box.
func (box *Box) Y() int {
	return box.Position.Y - box.TopOffset()
}

// BorderBox returns the rectangle enclosed by the outer edges of the border,
// i.e. the area painted with the background color.
func (box *Box) BorderBox() dimen.Rect {
	s := &box.Style
	return dimen.Rect{
		TopL: dimen.Point{
			X: box.Position.X - s.Padding[Left] - s.BorderWidth[Left],
			Y: box.Position.Y - s.Padding[Top] - s.BorderWidth[Top],
		},
		Dimensions: dimen.Dimensions{
			W: box.Dimensions.W + s.HorizontalDecoration(),
			H: box.Dimensions.H + s.VerticalDecoration(),
		},
	}
}

// SameGeometry is true if box and other have identical position and dimensions.
func (box *Box) SameGeometry(other *Box) bool {
	return box.Position == other.Position && box.Dimensions == other.Dimensions
}

func (box *Box) translate(dx, dy int) {
	box.Position.Shift(dimen.Point{X: dx, Y: dy})
}

// DebugString returns a textual representation of a box's geometry.
// Intended for debugging.
func (box *Box) DebugString() string {
	return fmt.Sprintf("box{ pos=%v, dim=%v, outer=%dx%d }", box.Position, box.Dimensions,
		box.OuterWidth(), box.OuterHeight())
}
