package markup

import (
	"testing"

	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/core/font"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/style"
	"github.com/npillmayer/decal/engine/text/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resources(t *testing.T) Resources {
	icon, err := bitmap.FromBytes(make([]byte, 8), 8)
	require.NoError(t, err)
	font8 := style.New(style.WithFont(monospace.New(8, 8)))
	return Resources{
		Styles: map[string]style.ComputedStyle{
			"card":  font8.With(style.WithPadding(2), style.WithBorder(1, style.BorderSolid, style.White)),
			"title": font8.With(style.WithForeground(style.Black)),
		},
		Bitmaps: map[string]bitmap.Image{"icon": icon},
		Root:    font8,
	}
}

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.markup")
	defer teardown()
	//
	boxes, err := ParseString(`
	<div class="card">
	  <span class="title" align="center">Living   room</span>
	  <p>21 <img src="icon"></p>
	</div>
	plain`, resources(t))
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	card := boxes[0]
	assert.Equal(t, frame.BlockKind, card.Kind())
	assert.Equal(t, 2, card.CSSBox().Style.Padding[style.Top])
	require.Len(t, card.Children(), 2)
	title := card.Children()[0]
	assert.Equal(t, frame.InlineKind, title.Kind())
	assert.Equal(t, style.AlignCenter, title.CSSBox().Style.Align)
	require.Len(t, title.Children(), 1)
	assert.Equal(t, "Living room", title.Children()[0].(*frame.TextBox).Text())
	assert.Equal(t, style.Black, title.Children()[0].CSSBox().Style.Foreground)
	para := card.Children()[1]
	require.Len(t, para.Children(), 2)
	assert.Equal(t, frame.BitMapKind, para.Children()[1].Kind())
	// unclassed paragraph inherits the font, but not the border
	assert.NotNil(t, para.CSSBox().Style.Font)
	assert.Equal(t, 0, para.CSSBox().Style.BorderWidth[style.Top])
	assert.Equal(t, "plain", boxes[1].(*frame.TextBox).Text())
	//
	vp := frame.NewAutoHeightViewport(dimen.Origin, 128, boxes...)
	require.NoError(t, vp.Layout())
	assert.Equal(t, (3+8+16+3)+8, vp.Dimensions.H)
}

func TestSizeAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.markup")
	defer teardown()
	//
	boxes, err := ParseString(`<div width="50%" height="10" x="3" y="4px"></div>`, resources(t))
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	st := boxes[0].CSSBox().Style
	assert.True(t, st.Width.IsPercent())
	assert.Equal(t, style.Px(10), st.Height)
	assert.True(t, st.X.Equals(3))
	assert.True(t, st.Y.Equals(4))
}

func TestMarkupErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.markup")
	defer teardown()
	//
	res := resources(t)
	_, err := ParseString(`<div class="nope"></div>`, res)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ParseString(`<img src="missing">`, res)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ParseString(`<span width="wide">x</span>`, res)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParseString(`<span align="justify">x</span>`, res)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestFontAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.markup")
	defer teardown()
	//
	res := resources(t)
	_, err := ParseString(`<span font="Go Sans 12px">x</span>`, res)
	assert.Equal(t, core.EMISSING, core.Code(err), "no registry")
	res.Fonts = font.NewRegistry()
	res.Fonts.StoreFont(font.FallbackFont())
	boxes, err := ParseString(`<span font="Go Sans 12px">Hello</span><span font="Nonexistent 12">x</span>`, res)
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	f := boxes[0].CSSBox().Style.Font
	require.IsType(t, &font.ShapedCase{}, f)
	text := boxes[0].Children()[0]
	assert.Equal(t, f, text.CSSBox().Style.Font, "text inherits the font")
	assert.Greater(t, f.Width("Hello"), 0)
	assert.NotNil(t, boxes[1].CSSBox().Style.Font, "unknown fonts fall back")
	_, err = ParseString(`<span font="12px">x</span>`, res)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParseString(`<span font="Go Sans big">x</span>`, res)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
