package bitmap

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/decal/core"
)

// Image is a monochrome image with intrinsic size.
type Image interface {
	Width() int
	Height() int
	Bit(x, y int) bool      // is pixel (x,y) set?
	Equal(other Image) bool // same dimensions and pixel content
}

// BitMap is a view over a packed byte buffer. The buffer is not copied;
// clients must not modify it while the bitmap is in use.
type BitMap struct {
	buffer []byte
	offset int
	length int
	width  int
	height int
}

var _ Image = &BitMap{}

// New creates a bitmap over buffer[offset:offset+length], with a given width.
// length must be a multiple of width, otherwise the bitmap could not be indexed
// safely and an error with code core.EINVALID is returned.
func New(buffer []byte, offset, length, width int) (*BitMap, error) {
	if width <= 0 {
		return nil, core.Error(core.EINVALID, "bitmap width must be positive, is %d", width)
	}
	if offset < 0 || length < 0 || offset+length > len(buffer) {
		return nil, core.Error(core.EINVALID,
			"bitmap window [%d:%d] exceeds buffer of length %d", offset, offset+length, len(buffer))
	}
	if length%width != 0 {
		return nil, core.Error(core.EINVALID,
			"bitmap length %d is not a multiple of width %d", length, width)
	}
	bm := &BitMap{
		buffer: buffer,
		offset: offset,
		length: length,
		width:  width,
		height: (length / width) * 8,
	}
	tracer().Debugf("new bitmap %s", bm)
	return bm, nil
}

// FromBytes creates a bitmap over a complete buffer.
func FromBytes(buffer []byte, width int) (*BitMap, error) {
	return New(buffer, 0, len(buffer), width)
}

// Width returns the width of the bitmap in pixels.
func (bm *BitMap) Width() int {
	return bm.width
}

// Height returns the height of the bitmap in pixels, always a multiple of 8.
func (bm *BitMap) Height() int {
	return bm.height
}

// Len returns the number of pixels.
func (bm *BitMap) Len() int {
	return bm.width * bm.height
}

// Bit returns true if pixel (x,y) is set. Coordinates outside of the bitmap
// report unset pixels.
func (bm *BitMap) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return false
	}
	b := bm.buffer[bm.offset+(y/8)*bm.width+x]
	return (b>>(y%8))&1 == 1
}

// Bytes returns the bitmap's window of the underlying buffer.
func (bm *BitMap) Bytes() []byte {
	return bm.buffer[bm.offset : bm.offset+bm.length]
}

// Equal compares two bitmaps by dimensions and content. Bitmaps are never
// equal to scaled bitmaps.
func (bm *BitMap) Equal(other Image) bool {
	o, ok := other.(*BitMap)
	if !ok || o == nil || bm == nil {
		return ok && o == bm
	}
	if bm == o {
		return true
	}
	if bm.length != o.length || bm.width != o.width {
		return false
	}
	return bytes.Equal(bm.Bytes(), o.Bytes())
}

// Scale wraps bm into a nearest-neighbour scaled bitmap.
func (bm *BitMap) Scale(ratio int) *Scaled {
	return newScaled(bm, ratio)
}

func (bm *BitMap) String() string {
	return fmt.Sprintf("BitMap(bytes(%d), offset=%d, length=%d, width=%d)",
		len(bm.buffer), bm.offset, bm.length, bm.width)
}

// --- Scaled bitmaps --------------------------------------------------------

// Scaled is a bitmap, scaled by an integer ratio using nearest neighbour sampling.
type Scaled struct {
	bitmap *BitMap
	ratio  int
}

var _ Image = &Scaled{}

func newScaled(bm *BitMap, ratio int) *Scaled {
	if ratio < 1 {
		tracer().Errorf("bitmap scale ratio must be ≥ 1, is %d (set to 1)", ratio)
		ratio = 1
	}
	return &Scaled{bitmap: bm, ratio: ratio}
}

// Width returns the scaled width in pixels.
func (s *Scaled) Width() int {
	return s.bitmap.Width() * s.ratio
}

// Height returns the scaled height in pixels.
func (s *Scaled) Height() int {
	return s.bitmap.Height() * s.ratio
}

// Ratio returns the scale factor.
func (s *Scaled) Ratio() int {
	return s.ratio
}

// Bit returns the pixel of the source bitmap nearest to (x,y).
func (s *Scaled) Bit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	return s.bitmap.Bit(x/s.ratio, y/s.ratio)
}

// Equal is true if other is a scaled bitmap with an equal source and the same ratio.
func (s *Scaled) Equal(other Image) bool {
	o, ok := other.(*Scaled)
	if !ok || o == nil || s == nil {
		return ok && o == s
	}
	return s.ratio == o.ratio && s.bitmap.Equal(o.bitmap)
}

// Scale scales s further, multiplying ratios.
func (s *Scaled) Scale(ratio int) *Scaled {
	if ratio < 1 {
		ratio = 1
	}
	return newScaled(s.bitmap, s.ratio*ratio)
}

func (s *Scaled) String() string {
	return fmt.Sprintf("ScaledBitMap(%s, %d)", s.bitmap, s.ratio)
}

// --- Iteration -------------------------------------------------------------

// Each calls f for every pixel of img, column by column, i.e. x runs in the
// outer loop and y in the inner loop.
func Each(img Image, f func(x, y int, on bool)) {
	w, h := img.Width(), img.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f(x, y, img.Bit(x, y))
		}
	}
}
