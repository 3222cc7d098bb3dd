package reconcile

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/frame"
)

// ErrStructureChanged is returned by Diff if two trees cannot be compared
// box by box.
var ErrStructureChanged = errors.New("box tree structure changed")

// Pair is a visual change: New is to be drawn in place of Old.
// Old is nil if there is nothing to compare with, i.e. the area of New has
// to be redrawn from scratch.
type Pair struct {
	New frame.Node
	Old frame.Node
}

func (p Pair) String() string {
	if p.Old == nil {
		return fmt.Sprintf("(%v, nil)", p.New)
	}
	return fmt.Sprintf("(%v, %v)", p.New, p.Old)
}

type work struct {
	a, b   frame.Boxed
	report bool
}

// Diff compares the boxes of a new tree with the boxes of the previous
// tree, given as the lists of top-level boxes of both. Both trees must have
// been laid out.
//
// Containers are reported if their geometry or style changed. Once a
// container is reported, its descendants will not be reported, as redrawing
// the container covers them. They are still compared, to detect structural
// changes. Text and bitmap leaves are reported if their content or style
// changed.
//
// Pairs are returned in tree order (pre-order, children left to right).
// If the shapes of the trees differ, ErrStructureChanged is returned.
// Styles holding fonts which are not comparable result in an error with
// code core.EINVALID.
func Diff(newRoots, oldRoots []frame.Boxed) ([]Pair, error) {
	if len(newRoots) != len(oldRoots) {
		tracer().Debugf("number of top-level boxes differs: %d vs %d", len(newRoots), len(oldRoots))
		return nil, ErrStructureChanged
	}
	stack := arraystack.New()
	pushAll(stack, newRoots, oldRoots, true)
	var pairs []Pair
	for !stack.Empty() {
		top, _ := stack.Pop()
		w := top.(work)
		a, b := w.a, w.b
		if a.Kind() != b.Kind() {
			tracer().Debugf("kinds differ: %v vs %v", a.Kind(), b.Kind())
			return nil, ErrStructureChanged
		}
		switch a.Kind() {
		case frame.BlockKind, frame.InlineKind:
			ac, bc := a.Children(), b.Children()
			if len(ac) != len(bc) {
				tracer().Debugf("number of children differs for %v", a)
				return nil, ErrStructureChanged
			}
			report := w.report
			if report {
				same, err := unchanged(a, b, a.CSSBox().SameGeometry(b.CSSBox()))
				if err != nil {
					return nil, err
				}
				if !same {
					pairs = append(pairs, Pair{New: a, Old: b})
					report = false
				}
			}
			pushAll(stack, ac, bc, report)
		case frame.TextKind:
			if !w.report {
				break
			}
			at, bt := a.(*frame.TextBox), b.(*frame.TextBox)
			same, err := unchanged(a, b, at.Text() == bt.Text())
			if err != nil {
				return nil, err
			}
			if !same {
				pairs = append(pairs, Pair{New: a, Old: b})
			}
		case frame.BitMapKind:
			if !w.report {
				break
			}
			ab, bb := a.(*frame.BitMapBox), b.(*frame.BitMapBox)
			same, err := unchanged(a, b, sameImage(ab.Image(), bb.Image()))
			if err != nil {
				return nil, err
			}
			if !same {
				pairs = append(pairs, Pair{New: a, Old: b})
			}
		default:
			panic(fmt.Sprintf("unexpected box kind in tree: %v", a.Kind()))
		}
	}
	tracer().Debugf("diff found %d changes", len(pairs))
	return pairs, nil
}

// pushAll pushes pairs of children in reverse order, so they will be popped
// left to right.
func pushAll(stack *arraystack.Stack, as, bs []frame.Boxed, report bool) {
	for i := len(as) - 1; i >= 0; i-- {
		stack.Push(work{a: as[i], b: bs[i], report: report})
	}
}

// unchanged is true if a and b look the same, given that their content is
// the same. Styles are compared only for boxes with same content.
func unchanged(a, b frame.Boxed, sameContent bool) (bool, error) {
	if !sameContent {
		return false, nil
	}
	sa, sb := &a.CSSBox().Style, &b.CSSBox().Style
	if !sa.Comparable() || !sb.Comparable() {
		return false, core.Error(core.EINVALID, "cannot compare styles of %v: font %T or %T is not comparable",
			a, sa.Font, sb.Font)
	}
	return sa.Equal(*sb), nil
}

func sameImage(a, b bitmap.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
