package monospace

import (
	"sync"

	"github.com/npillmayer/decal/core/font"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Metrics measures text on a grid of fixed-size cells. Metrics values are
// comparable and may therefore be used as a style's font.
type Metrics struct {
	CellWidth  int            // width of a narrow cell in pixels
	CellHeight int            // height of a line in pixels
	context    *uax11.Context // context for ambiguous widths
}

var _ font.Metrics = Metrics{}

var setupGraphemes sync.Once

// New creates monospace metrics for cells of w×h pixels, using a Latin context
// for characters of ambiguous width.
func New(w, h int) Metrics {
	return WithContext(w, h, uax11.LatinContext)
}

// WithContext creates monospace metrics for cells of w×h pixels. Characters of
// ambiguous East Asian width will be measured according to context.
func WithContext(w, h int, context *uax11.Context) Metrics {
	setupGraphemes.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	if context == nil {
		context = uax11.LatinContext
	}
	if w <= 0 || h <= 0 {
		tracer().Errorf("monospace cells must have positive size, are %d×%d", w, h)
	}
	return Metrics{CellWidth: w, CellHeight: h, context: context}
}

// Cells returns the number of cells needed to display text.
func (m Metrics) Cells(text string) int {
	if text == "" {
		return 0
	}
	ctx := m.context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(text)
	cells := 0
	for i := 0; i < gstr.Len(); i++ {
		cells += uax11.Width([]byte(gstr.Nth(i)), ctx)
	}
	return cells
}

// Width is part of interface font.Metrics.
func (m Metrics) Width(text string) int {
	return m.Cells(text) * m.CellWidth
}

// Height is part of interface font.Metrics. Text is always set on a single line.
func (m Metrics) Height(text string) int {
	return m.CellHeight
}
