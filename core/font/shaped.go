package font

import (
	"bytes"
	"sync"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
)

// ShapedCase is a typecase which measures text widths by shaping it with
// HarfBuzz. Kerning and ligatures of the font therefore count for the width
// of a text, in contrast to TypeCase, which adds up glyph advances.
//
// Heights and the face used for drawing are those of the embedded TypeCase.
type ShapedCase struct {
	*TypeCase
	mx     sync.Mutex // a HarfBuzz font is not safe for concurrent shaping
	hbfont *hb.Font
	upem   int
}

var _ Metrics = &ShapedCase{}

// PrepareShapedCase scales a font to a pixel size and prepares it for shaping.
func (sf *ScalableFont) PrepareShapedCase(pxsize float64) (*ShapedCase, error) {
	tc, err := sf.PrepareCase(pxsize)
	if err != nil {
		return nil, err
	}
	face, err := hbtt.Parse(bytes.NewReader(sf.Binary), true)
	if err != nil {
		tracer().Errorf("HarfBuzz cannot parse font %s: %v", sf.Fontname, err)
		return nil, err
	}
	sc := &ShapedCase{
		TypeCase: tc,
		hbfont:   hb.NewFont(face),
		upem:     int(sf.SFNT.UnitsPerEm()),
	}
	sc.hbfont.Ptem = float32(tc.size)
	return sc, nil
}

// Width is part of interface Metrics. It returns the sum of the advances of the
// shaped glyphs of text, rounded up to full pixels.
func (sc *ShapedCase) Width(text string) int {
	if sc == nil || sc.hbfont == nil || text == "" || sc.upem == 0 {
		return 0
	}
	runes := []rune(text)
	sc.mx.Lock()
	defer sc.mx.Unlock()
	buf := hb.NewBuffer()
	buf.Props.Direction = hb.LeftToRight
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(sc.hbfont, nil)
	var advance int
	for i := range buf.Pos {
		advance += int(buf.Pos[i].XAdvance)
	}
	// advances are in font units
	w := float64(advance) * sc.size / float64(sc.upem)
	px := int(w)
	if float64(px) < w {
		px++
	}
	tracer().Debugf("shaped %d glyphs of %q to %dpx", len(buf.Info), text, px)
	return px
}
