package font

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Metrics is the interface layout needs from a font. Implementations must be
// comparable with ==, as styles holding fonts are compared by value.
type Metrics interface {
	Width(text string) int  // advance width of text, in pixels
	Height(text string) int // line height of text, in pixels
}

// ScalableFont is an unscaled OpenType font.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font at a given pixel size. It implements Metrics.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

var _ Metrics = &TypeCase{}

// NewTypeCase wraps a Go font face, e.g. one from package basicfont.
func NewTypeCase(face xfont.Face, size float64) *TypeCase {
	return &TypeCase{face: face, size: size}
}

// ParseOpenTypeFont creates a scalable font from the binary content of a font file.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase scales a font to a pixel size.
// Sizes are clamped to 4px < size < 500px, with 10px as a replacement.
func (sf *ScalableFont) PrepareCase(pxsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if pxsize < 4.0 || pxsize > 500.0 {
		tracer().Errorf("font size must be 4px < size < 500px, is %g (set to 10px)", pxsize)
		pxsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size:    pxsize,
		DPI:     72, // 1pt = 1px
		Hinting: xfont.HintingFull,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.face = f
		typecase.size = pxsize
	}
	return typecase, err
}

// ScalableFontParent returns the unscaled font of tc, if any.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the Go font face of tc, suitable for drawing with font.Drawer.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PxSize returns the size of tc.
func (tc *TypeCase) PxSize() float64 {
	return tc.size
}

// Width is part of interface Metrics.
func (tc *TypeCase) Width(text string) int {
	if tc == nil || tc.face == nil {
		return 0
	}
	return xfont.MeasureString(tc.face, text).Ceil()
}

// Height is part of interface Metrics. All lines of a typecase have the same height,
// independent of text.
func (tc *TypeCase) Height(text string) int {
	if tc == nil || tc.face == nil {
		return 0
	}
	m := tc.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func (tc *TypeCase) Ascent() int {
	if tc == nil || tc.face == nil {
		return 0
	}
	return tc.face.Metrics().Ascent.Ceil()
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches scalable fonts and their typecases. It is safe for concurrent use.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
	shaped    map[string]*ShapedCase
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
		shaped:    make(map[string]*ShapedCase),
	}
	return fr
}

// StoreFont puts a scalable font into the registry.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// TypeCase returns a font of a given name, scaled to a given pixel size.
// If the registry does not know the font, the fallback font is returned together
// with an error.
func (fr *Registry) TypeCase(name string, size float64) (*TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", name, size)
	fname := NormalizeFontname(name)
	tname := NormalizeTypeCaseName(name, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found font %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[fname]; ok {
		t, err := f.PrepareCase(size)
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches at %.2f", fname, size)
		fr.typecases[tname] = t
		return t, nil
	}
	tracer().Infof("registry does not contain font %s", name)
	err := errors.New("font " + name + " not found in registry")
	tname = NormalizeTypeCaseName("fallback", size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	t, ferr := FallbackFont().PrepareCase(size)
	if ferr != nil {
		return nil, ferr
	}
	tracer().Infof("font registry caches fallback font at %.2f", size)
	fr.typecases[tname] = t
	return t, err
}

// ShapedCase is like TypeCase, but returns a font which measures text by
// shaping it. Shaped cases are cached separately from plain typecases.
func (fr *Registry) ShapedCase(name string, size float64) (*ShapedCase, error) {
	fname := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[fname]
	var err error
	if !ok {
		tracer().Infof("registry does not contain font %s, using fallback", name)
		err = errors.New("font " + name + " not found in registry")
		f, fname = FallbackFont(), "fallback"
	}
	tname := NormalizeTypeCaseName(fname, size)
	if sc, ok := fr.shaped[tname]; ok {
		return sc, err
	}
	sc, serr := f.PrepareShapedCase(size)
	if serr != nil {
		return nil, serr
	}
	tracer().Infof("font registry caches shaped font %s", tname)
	fr.shaped[tname] = sc
	return sc, err
}

// NormalizeFontname returns a canonical key for a font name or font file name.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}

// NormalizeTypeCaseName returns a canonical key for a font at a given size.
func NormalizeTypeCaseName(fname string, size float64) string {
	fname = NormalizeFontname(fname)
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
