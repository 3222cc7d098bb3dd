package monospace

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLatinWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.font")
	defer teardown()
	//
	m := New(8, 8)
	assert.Equal(t, 40, m.Width("hello"))
	assert.Equal(t, 40, m.Width("world"))
	assert.Equal(t, 0, m.Width(""))
	assert.Equal(t, 8, m.Height("hello"))
	assert.Equal(t, 8, m.Height(""))
}

func TestGraphemeClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.font")
	defer teardown()
	//
	m := New(6, 8)
	// 'e' + combining acute accent is a single cluster
	assert.Equal(t, 1, m.Cells("e\u0301"))
	assert.Equal(t, 3, m.Cells("abc"))
}

func TestWideCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.font")
	defer teardown()
	//
	m := New(6, 12)
	assert.Equal(t, 4, m.Cells("世界"))
	assert.Equal(t, 24, m.Width("世界"))
}

func TestMetricsAreComparable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.font")
	defer teardown()
	//
	assert.True(t, New(8, 8) == New(8, 8))
	assert.False(t, New(8, 8) == New(6, 8))
}
