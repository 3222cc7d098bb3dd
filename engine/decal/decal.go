package decal

import (
	"errors"

	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/frame/boxtree"
	"github.com/npillmayer/decal/engine/frame/reconcile"
	"github.com/npillmayer/decal/engine/style"
)

// Decal holds the box tree of a viewport between update cycles.
type Decal struct {
	viewport *frame.Viewport
	style    style.ComputedStyle // for top-level text and bitmaps
	diff     bool
}

// Option configures a Decal.
type Option func(*Decal)

// WithStyle sets the style for text and bitmaps given as top-level content.
func WithStyle(st style.ComputedStyle) Option {
	return func(d *Decal) {
		d.style = st
	}
}

// WithoutDiff makes every update a full redraw.
func WithoutDiff() Option {
	return func(d *Decal) {
		d.diff = false
	}
}

// New creates a Decal for a viewport. The current children of the viewport
// are the base for the first comparison and are expected to be laid out.
func New(vp *frame.Viewport, opts ...Option) *Decal {
	d := &Decal{
		viewport: vp,
		style:    style.Default(),
		diff:     true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Viewport returns the viewport of d.
func (d *Decal) Viewport() *frame.Viewport {
	return d.viewport
}

// Updates is the result of an update cycle.
type Updates struct {
	Pairs []reconcile.Pair
	// Full is set if the tree could not be compared with its predecessor.
	// Pairs then holds the single pair (viewport, nil).
	Full bool
}

// Update replaces the content of the viewport, lays it out and returns the
// changes against the previous content. See package boxtree for the types
// of content accepted.
//
// If the new content cannot be laid out, the error is returned and the
// previous tree stays in place.
func (d *Decal) Update(content ...interface{}) (Updates, error) {
	return d.update(d.diff, content)
}

// UpdateNoDiff is like Update, but skips the comparison and always reports
// a full redraw.
func (d *Decal) UpdateNoDiff(content ...interface{}) (Updates, error) {
	return d.update(false, content)
}

func (d *Decal) update(diff bool, content []interface{}) (Updates, error) {
	boxes, err := boxtree.Normalize(d.style, content...)
	if err != nil {
		return Updates{}, err
	}
	vp := d.viewport
	old, dims := vp.Children(), vp.Dimensions
	vp.SetChildren(boxes...)
	if err = vp.Layout(); err != nil {
		vp.SetChildren(old...)
		vp.Dimensions = dims
		return Updates{}, err
	}
	if !diff {
		return d.full(), nil
	}
	pairs, err := reconcile.Diff(vp.Children(), old)
	if errors.Is(err, reconcile.ErrStructureChanged) {
		return d.full(), nil
	} else if err != nil {
		return Updates{}, err
	}
	tracer().Debugf("update with %d changes", len(pairs))
	return Updates{Pairs: pairs}, nil
}

func (d *Decal) full() Updates {
	tracer().Debugf("update needs full redraw")
	return Updates{
		Pairs: []reconcile.Pair{{New: d.viewport}},
		Full:  true,
	}
}
