package style

import (
	"github.com/npillmayer/decal/core/font"
	"github.com/npillmayer/decal/core/option"
)

// Option sets one or more properties of a style under construction.
type Option func(*ComputedStyle)

// New creates a style from Default(), applying options in order. Later options
// override earlier ones, so side-specific options should follow all-sides ones.
//
//     st := style.New(
//         style.WithBorder(1, style.BorderSolid, style.White),
//         style.WithBorderSide(style.Bottom, 2, style.BorderDashed, style.White),
//         style.WithPadding(2),
//     )
//
func New(opts ...Option) ComputedStyle {
	s := Default()
	return s.With(opts...)
}

// With returns a copy of s with options applied.
func (s ComputedStyle) With(opts ...Option) ComputedStyle {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s.Fixed()
}

// WithMargin sets all four margins to n.
func WithMargin(n int) Option {
	return WithMargins(n, n, n, n)
}

// WithMargins sets margins, starting at the top and travelling clockwise.
func WithMargins(top, right, bottom, left int) Option {
	return func(s *ComputedStyle) {
		s.Margins = [4]int{nonneg(top), nonneg(right), nonneg(bottom), nonneg(left)}
	}
}

// WithPadding sets all four paddings to n.
func WithPadding(n int) Option {
	return WithPaddings(n, n, n, n)
}

// WithPaddings sets paddings, starting at the top and travelling clockwise.
func WithPaddings(top, right, bottom, left int) Option {
	return func(s *ComputedStyle) {
		s.Padding = [4]int{nonneg(top), nonneg(right), nonneg(bottom), nonneg(left)}
	}
}

// WithBorder sets width, line style and color for all four borders.
func WithBorder(width int, bs BorderStyle, c Color) Option {
	return func(s *ComputedStyle) {
		for dir := Top; dir <= Left; dir++ {
			setBorder(s, dir, width, bs, c)
		}
	}
}

// WithBorderSide sets width, line style and color for a single border.
// side is one of Top, Right, Bottom, Left.
func WithBorderSide(side int, width int, bs BorderStyle, c Color) Option {
	return func(s *ComputedStyle) {
		if side < Top || side > Left {
			tracer().Errorf("illegal border side %d ignored", side)
			return
		}
		setBorder(s, side, width, bs, c)
	}
}

func setBorder(s *ComputedStyle, dir int, width int, bs BorderStyle, c Color) {
	s.BorderWidth[dir] = nonneg(width)
	s.BorderStyle[dir] = bs
	s.BorderColor[dir] = c
}

// WithWidth sets the width property.
func WithWidth(w Size) Option {
	return func(s *ComputedStyle) { s.Width = w }
}

// WithHeight sets the height property.
func WithHeight(h Size) Option {
	return func(s *ComputedStyle) { s.Height = h }
}

// At positions a box at absolute coordinates, bypassing flow layout.
func At(x, y int) Option {
	return func(s *ComputedStyle) {
		s.X = option.SomeInt(x)
		s.Y = option.SomeInt(y)
	}
}

// WithX sets an explicit x coordinate only.
func WithX(x int) Option {
	return func(s *ComputedStyle) { s.X = option.SomeInt(x) }
}

// WithY sets an explicit y coordinate only.
func WithY(y int) Option {
	return func(s *ComputedStyle) { s.Y = option.SomeInt(y) }
}

// WithBackground sets the background color.
func WithBackground(c Color) Option {
	return func(s *ComputedStyle) { s.Background = c }
}

// WithForeground sets the foreground color, used for text and set bitmap pixels.
func WithForeground(c Color) Option {
	return func(s *ComputedStyle) { s.Foreground = c }
}

// WithFont sets the font of text boxes. f should be of a comparable type,
// otherwise the resulting style cannot be diffed.
func WithFont(f font.Metrics) Option {
	if !comparableFont(f) {
		tracer().Errorf("font of type %T is not comparable, boxes using it cannot be diffed", f)
	}
	return func(s *ComputedStyle) { s.Font = f }
}

// WithAlign sets the horizontal alignment of inline boxes.
func WithAlign(a Align) Option {
	return func(s *ComputedStyle) { s.Align = a }
}

// WithBoxSizing sets the box sizing mode.
func WithBoxSizing(b BoxSizing) Option {
	return func(s *ComputedStyle) { s.BoxSizing = b }
}

// WithDecoration sets a text decoration line.
func WithDecoration(line DecorationLine, c Color, thickness, offset int) Option {
	return func(s *ComputedStyle) {
		s.DecorationLine = line
		s.DecorationColor = c
		s.DecorationThickness = nonneg(thickness)
		s.DecorationOffset = offset
	}
}

func nonneg(n int) int {
	if n < 0 {
		tracer().Debugf("negative box-model value %d clamped to 0", n)
		return 0
	}
	return n
}
