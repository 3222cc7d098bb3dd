package imagesurface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/core/font"
	"github.com/npillmayer/decal/engine/style"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Palette maps device colors to image colors.
type Palette map[style.Color]color.Color

// Monochrome maps Black and White to their RGB counterparts.
func Monochrome() Palette {
	return Palette{
		style.Black: color.Black,
		style.White: color.White,
	}
}

// Surface draws on an RGBA image.
type Surface struct {
	Image    *image.RGBA
	palette  Palette
	typecase *font.TypeCase
}

// Option configures a Surface.
type Option func(*Surface)

// WithPalette sets the color mapping. Colors missing in the palette are
// drawn in magenta.
func WithPalette(p Palette) Option {
	return func(s *Surface) {
		s.palette = p
	}
}

// WithTypeCase sets the font for drawing text.
func WithTypeCase(tc *font.TypeCase) Option {
	return func(s *Surface) {
		s.typecase = tc
	}
}

// New creates a surface of w×h pixels. By default it has a monochrome
// palette and draws text in a 7×13 bitmap font.
func New(w, h int, opts ...Option) *Surface {
	s := &Surface{
		Image:    image.NewRGBA(image.Rect(0, 0, w, h)),
		palette:  Monochrome(),
		typecase: DefaultTypeCase(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultTypeCase = font.NewTypeCase(basicfont.Face7x13, 13)

// DefaultTypeCase returns the type case used by surfaces without an
// explicit font. Clients should use it for the metrics of text boxes drawn
// on such surfaces. Every call returns the same instance.
func DefaultTypeCase() *font.TypeCase {
	return defaultTypeCase
}

var unknown = color.RGBA{R: 0xff, B: 0xff, A: 0xff}

func (s *Surface) color(c style.Color) color.Color {
	if col, ok := s.palette[c]; ok {
		return col
	}
	tracer().Infof("color %v not in palette", c)
	return unknown
}

// Bounds returns the extent of the image. Drawing is clipped to it.
func (s *Surface) Bounds() dimen.Rect {
	b := s.Image.Bounds()
	return dimen.Rect{
		TopL:       dimen.Point{X: b.Min.X, Y: b.Min.Y},
		Dimensions: dimen.Dimensions{W: b.Dx(), H: b.Dy()},
	}
}

// FillRect is part of interface draw.Surface.
func (s *Surface) FillRect(x, y, w, h int, c style.Color) {
	if c == style.Transparent {
		return
	}
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(s.Image, r, image.NewUniform(s.color(c)), image.Point{}, draw.Src)
}

// SetPixel is part of interface draw.Surface.
func (s *Surface) SetPixel(x, y int, c style.Color) {
	if c == style.Transparent {
		return
	}
	s.Image.Set(x, y, s.color(c))
}

// DrawText is part of interface draw.Surface. (x,y) is the top-left corner
// of the text, not its baseline.
func (s *Surface) DrawText(text string, x, y int, c style.Color) {
	if c == style.Transparent {
		return
	}
	d := xfont.Drawer{
		Dst:  s.Image,
		Src:  image.NewUniform(s.color(c)),
		Face: s.typecase.Face(),
		Dot:  fixed.P(x, y+s.typecase.Ascent()),
	}
	d.DrawString(text)
}
