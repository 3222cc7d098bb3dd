package framedebug

import (
	"strings"
	"testing"

	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/frame/boxtree"
	"github.com/npillmayer/decal/engine/style"
	"github.com/npillmayer/decal/engine/text/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.frame")
	defer teardown()
	//
	st := style.New(style.WithFont(monospace.New(8, 8)))
	vp := frame.NewViewport(dimen.Origin, dimen.Dimensions{W: 100, H: 40},
		boxtree.Block(st, "a \"quoted\" text which is long", boxtree.Inline(st, "b")))
	require.NoError(t, vp.Layout())
	var out strings.Builder
	require.NoError(t, ToGraphViz(vp, &out))
	dot := out.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 5, strings.Count(dot, "shape=box"))
	assert.Equal(t, 4, strings.Count(dot, "->"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "node00004 -> node00005")
	assert.Contains(t, dot, `\"a \"quoted\"…\"`)
}
