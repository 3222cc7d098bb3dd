package frame

import (
	"fmt"

	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/engine/style"
)

// --- Viewport --------------------------------------------------------------

// Viewport is the root of a box tree. It sits at a fixed position of the
// display and is not a box itself: it has neither style nor margins.
//
// A viewport either has a fixed height or grows with its content
// (AutoHeight). Its width is always fixed.
type Viewport struct {
	Position   dimen.Point
	Dimensions dimen.Dimensions
	AutoHeight bool
	children   []Boxed
	pending    bool // height not yet known during layout
}

// NewViewport creates a viewport of fixed size.
func NewViewport(origin dimen.Point, dims dimen.Dimensions, children ...Boxed) *Viewport {
	return &Viewport{
		Position:   origin,
		Dimensions: dims,
		children:   compact(children),
	}
}

// NewAutoHeightViewport creates a viewport which takes the height of its
// content after layout.
func NewAutoHeightViewport(origin dimen.Point, width int, children ...Boxed) *Viewport {
	return &Viewport{
		Position:   origin,
		Dimensions: dimen.Dimensions{W: width},
		AutoHeight: true,
		children:   compact(children),
	}
}

// Kind is part of interface Node.
func (vp *Viewport) Kind() Kind {
	return ViewportKind
}

// Children is part of interface Node.
func (vp *Viewport) Children() []Boxed {
	return vp.children
}

// SetChildren replaces the top-level boxes of a viewport. Geometry will be
// valid after the next call to Layout.
func (vp *Viewport) SetChildren(children ...Boxed) {
	vp.children = compact(children)
}

// ContentOrigin is part of interface Container.
func (vp *Viewport) ContentOrigin() dimen.Point {
	return vp.Position
}

// ContentSize is part of interface Container.
func (vp *Viewport) ContentSize() dimen.Dimensions {
	return vp.Dimensions
}

// Resolved is part of interface Container.
func (vp *Viewport) Resolved() (bool, bool) {
	return true, !vp.pending
}

// Decoration is part of interface Container. A viewport has neither borders
// nor padding.
func (vp *Viewport) Decoration() (int, int) {
	return 0, 0
}

func (vp *Viewport) translate(dx, dy int) {
	vp.Position.Shift(dimen.Point{X: dx, Y: dy})
	for _, c := range vp.children {
		c.translate(dx, dy)
	}
}

// Layout computes position and dimensions of every box of the tree.
// Layout stops at the first box failing to lay out, leaving the geometry of
// the tree in an unspecified state.
//
// Layout is idempotent: calling it twice on an unchanged tree yields
// identical geometry.
func (vp *Viewport) Layout() error {
	vp.pending = vp.AutoHeight
	running, _, err := stackVertically(vp, vp.children)
	if err != nil {
		vp.pending = false
		tracer().Errorf("layout failed: %v", err)
		return err
	}
	if vp.AutoHeight {
		vp.Dimensions.H = running
		vp.pending = false
	}
	tracer().Debugf("viewport laid out at %v with %v", vp.Position, vp.Dimensions)
	return nil
}

func (vp *Viewport) String() string {
	return fmt.Sprintf("Viewport[%v %v, %d children]", vp.Position, vp.Dimensions, len(vp.children))
}

// --- Block boxes -----------------------------------------------------------

// BlockBox is a container stacking its children vertically. Without an
// explicit width it spans the full width of its parent. If the width of the
// parent is not yet known, i.e. inside an inline box of auto width, a block
// of auto width shrinks to the widest of its children.
type BlockBox struct {
	Box
	children []Boxed
	wpending bool // width not yet known during layout
	pending  bool // height not yet known during layout
}

// NewBlockBox creates a block container. Nil children are dropped.
func NewBlockBox(st style.ComputedStyle, children ...Boxed) *BlockBox {
	return &BlockBox{
		Box:      Box{Style: st.Fixed()},
		children: compact(children),
	}
}

// Kind is part of interface Node.
func (b *BlockBox) Kind() Kind {
	return BlockKind
}

// Children is part of interface Node.
func (b *BlockBox) Children() []Boxed {
	return b.children
}

// ContentOrigin is part of interface Container.
func (b *BlockBox) ContentOrigin() dimen.Point {
	return b.Position
}

// ContentSize is part of interface Container.
func (b *BlockBox) ContentSize() dimen.Dimensions {
	return b.Dimensions
}

// Resolved is part of interface Container.
func (b *BlockBox) Resolved() (bool, bool) {
	return !b.wpending, !b.pending
}

// Decoration is part of interface Container.
func (b *BlockBox) Decoration() (int, int) {
	return b.Style.HorizontalDecoration(), b.Style.VerticalDecoration()
}

func (b *BlockBox) translate(dx, dy int) {
	b.Box.translate(dx, dy)
	for _, c := range b.children {
		c.translate(dx, dy)
	}
}

func (b *BlockBox) layout(parent Container) error {
	st := &b.Style
	w, ok := ResolveWidth(*st, parent)
	b.wpending = false
	if !ok {
		if pw, _ := parent.Resolved(); pw { // auto width: fill the parent
			w = parent.ContentSize().W - st.Margins[Left] - st.Margins[Right] - st.HorizontalDecoration()
		} else {
			w, b.wpending = 0, true
		}
	}
	b.Dimensions.W = w
	h, ok := ResolveHeight(*st, parent)
	b.Dimensions.H = h
	b.pending = !ok
	running, widest, err := stackVertically(b, b.children)
	if err != nil {
		b.wpending, b.pending = false, false
		return err
	}
	if b.wpending {
		b.Dimensions.W = widest
		b.wpending = false
	}
	if b.pending {
		b.Dimensions.H = running
		b.pending = false
	}
	return nil
}

func (b *BlockBox) String() string {
	return fmt.Sprintf("BlockBox[%v %v, %d children]", b.Position, b.Dimensions, len(b.children))
}

// --- Inline boxes ----------------------------------------------------------

// InlineBox is a container flowing its children horizontally. It shrinks to
// fit its content unless sizes are set explicitly, and it may be aligned
// within the width of its parent.
type InlineBox struct {
	Box
	children []Boxed
	wpending bool
	hpending bool
}

// NewInlineBox creates an inline container. Nil children are dropped.
func NewInlineBox(st style.ComputedStyle, children ...Boxed) *InlineBox {
	return &InlineBox{
		Box:      Box{Style: st.Fixed()},
		children: compact(children),
	}
}

// Kind is part of interface Node.
func (b *InlineBox) Kind() Kind {
	return InlineKind
}

// Children is part of interface Node.
func (b *InlineBox) Children() []Boxed {
	return b.children
}

// ContentOrigin is part of interface Container.
func (b *InlineBox) ContentOrigin() dimen.Point {
	return b.Position
}

// ContentSize is part of interface Container.
func (b *InlineBox) ContentSize() dimen.Dimensions {
	return b.Dimensions
}

// Resolved is part of interface Container.
func (b *InlineBox) Resolved() (bool, bool) {
	return !b.wpending, !b.hpending
}

// Decoration is part of interface Container.
func (b *InlineBox) Decoration() (int, int) {
	return b.Style.HorizontalDecoration(), b.Style.VerticalDecoration()
}

func (b *InlineBox) translate(dx, dy int) {
	b.Box.translate(dx, dy)
	for _, c := range b.children {
		c.translate(dx, dy)
	}
}

func (b *InlineBox) layout(parent Container) error {
	st := &b.Style
	var ok bool
	b.Dimensions.W, ok = ResolveWidth(*st, parent)
	b.wpending = !ok
	b.Dimensions.H, ok = ResolveHeight(*st, parent)
	b.hpending = !ok
	runningWidth, runningHeight := 0, 0
	for _, child := range b.children {
		cbox := child.CSSBox()
		cbox.Position = dimen.Point{
			X: b.Position.X + runningWidth + child.LeftOffset(),
			Y: b.Position.Y + child.TopOffset(),
		}
		if err := child.layout(b); err != nil {
			return err
		}
		runningWidth += child.OuterWidth()
		runningHeight = dimen.Max(runningHeight, child.OuterHeight())
	}
	if b.hpending {
		b.Dimensions.H = runningHeight
		b.hpending = false
	}
	if b.wpending {
		b.Dimensions.W = runningWidth
		b.wpending = false
	}
	b.align(parent)
	return nil
}

// align moves the box horizontally within the extra space of its parent.
func (b *InlineBox) align(parent Container) {
	if b.Style.Align == style.AlignStart {
		return
	}
	if w, _ := parent.Resolved(); !w {
		return
	}
	underflow := parent.ContentSize().W - b.OuterWidth()
	if underflow <= 0 {
		return
	}
	dx := underflow
	if b.Style.Align == style.AlignCenter {
		dx = underflow / 2
	}
	target := parent.ContentOrigin().X + dx + b.LeftOffset()
	tracer().Debugf("aligning inline box %v by %d", b.Style.Align, target-b.Position.X)
	b.translate(target-b.Position.X, 0)
}

func (b *InlineBox) String() string {
	return fmt.Sprintf("InlineBox[%v %v, %d children]", b.Position, b.Dimensions, len(b.children))
}

// --- Helpers ---------------------------------------------------------------

// stackVertically positions children of c top to bottom and lays them out.
// Children with an explicit x or y are placed verbatim and do not take part
// in the flow. It returns the sum of outer heights and the maximum outer
// width of the flowed children.
func stackVertically(c Container, children []Boxed) (running int, widest int, err error) {
	origin := c.ContentOrigin()
	for _, child := range children {
		cbox := child.CSSBox()
		st := &cbox.Style
		cbox.Position = dimen.Point{
			X: st.X.OrElse(origin.X + child.LeftOffset()),
			Y: st.Y.OrElse(origin.Y + running + child.TopOffset()),
		}
		if err = child.layout(c); err != nil {
			return running, widest, err
		}
		if !st.Positioned() {
			running += child.OuterHeight()
			widest = dimen.Max(widest, child.OuterWidth())
		}
	}
	return running, widest, nil
}

// IsNil is true if b is nil or a nil pointer to one of the box variants.
func IsNil(b Boxed) bool {
	switch x := b.(type) {
	case nil:
		return true
	case *BlockBox:
		return x == nil
	case *InlineBox:
		return x == nil
	case *TextBox:
		return x == nil
	case *BitMapBox:
		return x == nil
	}
	return false
}

func compact(children []Boxed) []Boxed {
	r := make([]Boxed, 0, len(children))
	for _, c := range children {
		if !IsNil(c) {
			r = append(r, c)
		}
	}
	return r
}

// Walk traverses the tree rooted at n in pre-order, calling f for every
// node. If f returns false, the children of a node are skipped.
func Walk(n Node, f func(n Node, depth int) bool) {
	walk(n, 0, f)
}

func walk(n Node, depth int, f func(Node, int) bool) {
	if !f(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, f)
	}
}
