package draw

import (
	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/frame/reconcile"
	"github.com/npillmayer/decal/engine/style"
)

// Surface is a pixel device to draw on.
type Surface interface {
	FillRect(x, y, w, h int, c style.Color)
	SetPixel(x, y int, c style.Color)
	// DrawText draws text with its top-left corner at (x,y).
	DrawText(text string, x, y int, c style.Color)
}

// Clipper is implemented by surfaces of finite extent. Fills are clipped to
// its bounds and Apply does not paint boxes lying completely outside.
type Clipper interface {
	Bounds() dimen.Rect
}

// Draw paints a box and all of its descendants. Boxes are painted in tree
// order, i.e. containers before their children.
func Draw(s Surface, n frame.Node) {
	frame.Walk(n, func(n frame.Node, _ int) bool {
		switch b := n.(type) {
		case *frame.Viewport:
			// nothing to paint
		case *frame.BlockBox:
			background(s, &b.Box)
			border(s, &b.Box)
		case *frame.InlineBox:
			background(s, &b.Box)
			border(s, &b.Box)
		case *frame.TextBox:
			text(s, b)
		case *frame.BitMapBox:
			pixels(s, b)
		}
		return true
	})
}

// Apply paints the result of an update cycle. The area formerly occupied by
// a changed box is cleared with color clear before the new box is painted.
// A pair without an old box, i.e. a full redraw of a viewport, clears the
// whole viewport. If clear is style.Transparent, nothing is cleared.
func Apply(s Surface, pairs []reconcile.Pair, clear style.Color) {
	for _, p := range pairs {
		tracer().Debugf("apply %v", p)
		if clear != style.Transparent {
			if p.Old != nil {
				erase(s, p.Old, clear)
			} else {
				erase(s, p.New, clear)
			}
		}
		if cl, ok := s.(Clipper); ok && !extent(p.New).Intersects(cl.Bounds()) {
			tracer().Debugf("%v is off the surface", p.New)
			continue
		}
		Draw(s, p.New)
	}
}

func erase(s Surface, n frame.Node, c style.Color) {
	r := extent(n)
	fill(s, r.TopL.X, r.TopL.Y, r.W, r.H, c)
}

// extent is the area a node paints on.
func extent(n frame.Node) dimen.Rect {
	switch b := n.(type) {
	case *frame.Viewport:
		return dimen.Rect{TopL: b.Position, Dimensions: b.Dimensions}
	case frame.Boxed:
		if b.Kind() == frame.TextKind || b.Kind() == frame.BitMapKind {
			return dimen.Rect{TopL: b.CSSBox().Position, Dimensions: b.CSSBox().Dimensions}
		}
		return b.CSSBox().BorderBox()
	}
	return dimen.Rect{}
}

// background fills content and padding area.
func background(s Surface, b *frame.Box) {
	st := &b.Style
	x := b.Position.X - st.Padding[style.Left]
	y := b.Position.Y - st.Padding[style.Top]
	w := b.Dimensions.W + st.Padding[style.Left] + st.Padding[style.Right]
	h := b.Dimensions.H + st.Padding[style.Top] + st.Padding[style.Bottom]
	fill(s, x, y, w, h, st.Background)
}

// border paints the four sides of a border. Horizontal sides span the
// corners.
func border(s Surface, b *frame.Box) {
	st := &b.Style
	r := b.BorderBox()
	left, top := r.TopL.X, r.TopL.Y
	right := b.Position.X + b.Dimensions.W + st.Padding[style.Right]
	bottom := b.Position.Y + b.Dimensions.H + st.Padding[style.Bottom]
	fill(s, left, top, r.W, st.BorderWidth[style.Top], st.BorderColor[style.Top])
	fill(s, right, top, st.BorderWidth[style.Right], r.H, st.BorderColor[style.Right])
	fill(s, left, bottom, r.W, st.BorderWidth[style.Bottom], st.BorderColor[style.Bottom])
	fill(s, left, top, st.BorderWidth[style.Left], r.H, st.BorderColor[style.Left])
}

func text(s Surface, t *frame.TextBox) {
	st := &t.Style
	if st.Foreground != style.Transparent {
		s.DrawText(t.Text(), t.Position.X, t.Position.Y, st.Foreground)
	}
	if st.DecorationLine == style.DecorationNone || st.DecorationThickness == 0 {
		return
	}
	var y int
	switch st.DecorationLine {
	case style.Underline:
		y = t.Position.Y + t.Dimensions.H + st.DecorationOffset
	case style.Overline:
		y = t.Position.Y - st.DecorationThickness - st.DecorationOffset
	case style.LineThrough:
		y = t.Position.Y + st.DecorationOffset + (t.Dimensions.H-st.DecorationThickness)/2
	}
	fill(s, t.Position.X, y, t.Dimensions.W, st.DecorationThickness, st.DecorationColor)
}

// pixels draws set bits in the foreground color and unset bits in the
// background color.
func pixels(s Surface, b *frame.BitMapBox) {
	if b.Image() == nil {
		return
	}
	st := &b.Style
	bitmap.Each(b.Image(), func(x, y int, on bool) {
		c := st.Background
		if on {
			c = st.Foreground
		}
		if c != style.Transparent {
			s.SetPixel(b.Position.X+x, b.Position.Y+y, c)
		}
	})
}

func fill(s Surface, x, y, w, h int, c style.Color) {
	r := dimen.Rect{TopL: dimen.Point{X: x, Y: y}, Dimensions: dimen.Dimensions{W: w, H: h}}
	if r.Empty() || c == style.Transparent {
		return
	}
	if cl, ok := s.(Clipper); ok {
		bounds := cl.Bounds()
		if !r.Intersects(bounds) {
			return
		}
		r = clip(r, bounds)
	}
	s.FillRect(r.TopL.X, r.TopL.Y, r.W, r.H, c)
}

// clip returns the part of r inside bounds. r and bounds must intersect.
func clip(r, bounds dimen.Rect) dimen.Rect {
	rb, bb := r.BotR(), bounds.BotR()
	topl := dimen.Point{X: dimen.Max(r.TopL.X, bounds.TopL.X), Y: dimen.Max(r.TopL.Y, bounds.TopL.Y)}
	return dimen.Rect{
		TopL:       topl,
		Dimensions: dimen.Dimensions{W: dimen.Min(rb.X, bb.X) - topl.X, H: dimen.Min(rb.Y, bb.Y) - topl.Y},
	}
}
