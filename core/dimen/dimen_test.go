package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12 {
		t.Errorf("(1) expected d to be 12px, is %d", d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true || d != 20 {
		t.Errorf("(3) expected percentage 20, is %d (marker=%v)", d, ispcnt)
	}
	//
	if _, _, err = ParseDimen("12pt"); err == nil {
		t.Errorf("(4) expected unit pt to be rejected")
	}
}

func TestRectIntersection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.core")
	defer teardown()
	//
	r := Rect{TopL: Point{0, 0}, Dimensions: Dimensions{10, 10}}
	s := Rect{TopL: Point{9, 9}, Dimensions: Dimensions{5, 5}}
	if !r.Intersects(s) {
		t.Errorf("expected rects to intersect")
	}
	s.TopL = Point{10, 0}
	if r.Intersects(s) {
		t.Errorf("expected adjacent rects not to intersect")
	}
	p := Point{1, 2}
	p.Shift(Point{3, 4})
	if p != (Point{4, 6}) {
		t.Errorf("expected shifted point to be (4,6), is %v", p)
	}
}
