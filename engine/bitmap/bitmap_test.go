package bitmap

import (
	"testing"

	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 4×16 pixels: two bands of 4 columns each
var arrow = []byte{
	0x01, 0x03, 0x07, 0x0f, // band 0
	0x80, 0xc0, 0xe0, 0xf0, // band 1
}

func TestBitMapDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	bm, err := FromBytes(arrow, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, bm.Width())
	assert.Equal(t, 16, bm.Height())
	assert.Equal(t, 64, bm.Len())
}

func TestBitMapPixels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	bm, err := FromBytes(arrow, 4)
	require.NoError(t, err)
	assert.True(t, bm.Bit(0, 0)) // LSB at top
	assert.False(t, bm.Bit(0, 1))
	assert.True(t, bm.Bit(3, 3))
	assert.False(t, bm.Bit(3, 4))
	assert.True(t, bm.Bit(0, 15)) // 0x80 in band 1
	assert.False(t, bm.Bit(0, 14))
	assert.True(t, bm.Bit(3, 12))
	assert.False(t, bm.Bit(4, 0), "out of range")
	assert.False(t, bm.Bit(-1, 0), "out of range")
}

func TestBitMapWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	buf := append([]byte{0xff, 0xff}, arrow...)
	bm, err := New(buf, 2, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, bm.Height())
	assert.True(t, bm.Bit(0, 0))
	assert.False(t, bm.Bit(0, 1))
	other, _ := New(arrow, 0, 4, 4)
	assert.True(t, bm.Equal(other), "same content at different offsets")
}

func TestMalformedBitMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	_, err := New(arrow, 0, 7, 4)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = New(arrow, 4, 8, 4)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = FromBytes(arrow, 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestBitMapEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	a, _ := FromBytes(arrow, 4)
	b, _ := FromBytes(append([]byte(nil), arrow...), 4)
	c, _ := FromBytes(arrow, 8)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different width")
	b.Bytes()[0] = 0
	assert.False(t, a.Equal(b), "different content")
	assert.False(t, a.Equal(a.Scale(1)), "bitmap vs. scaled bitmap")
}

func TestScaledBitMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	bm, _ := FromBytes(arrow, 4)
	s := bm.Scale(2)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 32, s.Height())
	assert.True(t, s.Bit(0, 0))
	assert.True(t, s.Bit(1, 1)) // nearest neighbour of (0,0)
	assert.False(t, s.Bit(0, 2))
	assert.Equal(t, bm.Bit(3, 3), s.Bit(7, 7))
	//
	s4 := s.Scale(2)
	assert.Equal(t, 4, s4.Ratio())
	assert.True(t, s4.Equal(bm.Scale(4)))
	assert.False(t, s4.Equal(s))
	assert.Equal(t, 1, bm.Scale(0).Ratio())
}

func TestEachIsColumnMajor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.bitmap")
	defer teardown()
	//
	bm, _ := New(arrow, 0, 4, 4)
	var coords [][2]int
	set := 0
	Each(bm, func(x, y int, on bool) {
		coords = append(coords, [2]int{x, y})
		if on {
			set++
		}
	})
	require.Len(t, coords, 32)
	assert.Equal(t, [2]int{0, 1}, coords[1])
	assert.Equal(t, [2]int{1, 0}, coords[8])
	assert.Equal(t, 1+2+3+4, set)
}
