package reconcile

import (
	"testing"

	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/frame/boxtree"
	"github.com/npillmayer/decal/engine/style"
	"github.com/npillmayer/decal/engine/text/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var st = style.New(style.WithFont(monospace.New(8, 8)))

func laidOut(t *testing.T, roots ...frame.Boxed) []frame.Boxed {
	vp := frame.NewViewport(dimen.Origin, dimen.Dimensions{W: 128, H: 64}, roots...)
	require.NoError(t, vp.Layout())
	return vp.Children()
}

func TestDiffIsReflexive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	build := func() []frame.Boxed {
		return laidOut(t, boxtree.Block(st, "hello", boxtree.Inline(st, "a", "b")), boxtree.Text(st, "c"))
	}
	tree := build()
	pairs, err := Diff(tree, tree)
	require.NoError(t, err)
	assert.Empty(t, pairs)
	pairs, err = Diff(build(), build())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestDiffChildCountMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	two := laidOut(t, boxtree.Block(st, "a", "b"))
	three := laidOut(t, boxtree.Block(st, "a", "b", "c"))
	pairs, err := Diff(three, two)
	assert.ErrorIs(t, err, ErrStructureChanged)
	assert.Nil(t, pairs)
	// deeper in the tree, below a changed container
	two = laidOut(t, boxtree.Block(st, boxtree.Inline(st, "a", "b")))
	three = laidOut(t, boxtree.Block(st.With(style.WithPadding(1)), boxtree.Inline(st, "a", "b", "c")))
	_, err = Diff(three, two)
	assert.ErrorIs(t, err, ErrStructureChanged)
}

func TestDiffRootsAndKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	_, err := Diff(laidOut(t, boxtree.Text(st, "a")), laidOut(t, boxtree.Text(st, "a"), boxtree.Text(st, "b")))
	assert.ErrorIs(t, err, ErrStructureChanged)
	_, err = Diff(laidOut(t, boxtree.Block(st, "a")), laidOut(t, boxtree.Inline(st, "a")))
	assert.ErrorIs(t, err, ErrStructureChanged)
}

func TestDiffReportsChangedLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	old := laidOut(t, boxtree.Block(st, "one", "two", "three"))
	nu := laidOut(t, boxtree.Block(st, "One", "two", "Three"))
	pairs, err := Diff(nu, old)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "One", pairs[0].New.(*frame.TextBox).Text())
	assert.Equal(t, "one", pairs[0].Old.(*frame.TextBox).Text())
	assert.Equal(t, "Three", pairs[1].New.(*frame.TextBox).Text())
}

func TestDiffSuppressesDescendantsOfChangedContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	old := laidOut(t, boxtree.Block(st, "one", "two"))
	nu := laidOut(t, boxtree.Block(st.With(style.WithBackground(style.Black)), "one", "TWO"))
	pairs, err := Diff(nu, old)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, frame.BlockKind, pairs[0].New.Kind())
	// geometry change of a container
	old = laidOut(t, boxtree.Inline(st, "ab"))
	nu = laidOut(t, boxtree.Inline(st, "abc"))
	pairs, err = Diff(nu, old)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, frame.InlineKind, pairs[0].New.Kind())
}

func TestDiffBitmaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	bm1, _ := bitmap.FromBytes([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	bm2, _ := bitmap.FromBytes([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	bm3, _ := bitmap.FromBytes([]byte{7, 6, 5, 4, 3, 2, 1, 0}, 8)
	pairs, err := Diff(laidOut(t, boxtree.Bitmap(st, bm2)), laidOut(t, boxtree.Bitmap(st, bm1)))
	require.NoError(t, err)
	assert.Empty(t, pairs)
	pairs, err = Diff(laidOut(t, boxtree.Bitmap(st, bm3)), laidOut(t, boxtree.Bitmap(st, bm1)))
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestDiffReportsMovedContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	old := laidOut(t, boxtree.Block(st, "a"), boxtree.Block(st, "b"))
	nu := laidOut(t, boxtree.Block(st.With(style.WithPadding(2)), "a"), boxtree.Block(st, "b"))
	moved, was := nu[1].CSSBox(), old[1].CSSBox()
	require.Equal(t, was.Dimensions, moved.Dimensions)
	require.Equal(t, was.Style, moved.Style)
	require.Equal(t, was.Position.Y+4, moved.Position.Y)
	pairs, err := Diff(nu, old)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Same(t, nu[0], pairs[0].New)
	assert.Same(t, nu[1], pairs[1].New)
	assert.Same(t, old[1], pairs[1].Old)
}

// kernedFont holds a slice and is therefore not comparable.
type kernedFont struct {
	kerning []int
}

func (kernedFont) Width(text string) int  { return 8 * len(text) }
func (kernedFont) Height(text string) int { return 8 }

func TestDiffIncomparableFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.reconcile")
	defer teardown()
	//
	kerned := style.New(style.WithFont(kernedFont{kerning: []int{1}}))
	build := func() []frame.Boxed {
		return laidOut(t, boxtree.Block(kerned, "a"))
	}
	var err error
	assert.NotPanics(t, func() {
		_, err = Diff(build(), build())
	})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
