package frame

import (
	"errors"

	"github.com/npillmayer/decal/core/option"
	"github.com/npillmayer/decal/engine/style"
)

var errAuto = errors.New("size is auto")

// ResolveWidth resolves the width property of a style against a parent
// container. If the width is unset, or is a percentage of a parent width not
// yet known, ok will be false and the caller decides on the auto policy.
//
// Percentages relate to the content width of the parent. For boxes with
// box-sizing `border-box` the base is reduced by the parent's horizontal
// border and padding.
func ResolveWidth(st style.ComputedStyle, parent Container) (w int, ok bool) {
	wknown, _ := parent.Resolved()
	deco, _ := parent.Decoration()
	return resolve(st.Width, st.BoxSizing, parent.ContentSize().W, deco, wknown)
}

// ResolveHeight resolves the height property of a style against a parent
// container, see ResolveWidth. Percentage heights in a parent of auto height
// resolve to auto.
func ResolveHeight(st style.ComputedStyle, parent Container) (h int, ok bool) {
	_, hknown := parent.Resolved()
	_, deco := parent.Decoration()
	return resolve(st.Height, st.BoxSizing, parent.ContentSize().H, deco, hknown)
}

func resolve(sz style.Size, sizing style.BoxSizing, base, deco int, baseKnown bool) (int, bool) {
	v, err := sz.Match(option.Maybe{
		option.None: option.Fail(errAuto),
		option.Some: func(interface{}) (interface{}, error) {
			if sz.IsAbsolute() {
				return sz.Unwrap(), nil
			}
			if !baseKnown {
				return nil, errAuto
			}
			if sizing == style.BorderBox {
				base -= deco
			}
			return sz.Percent().Of(base), nil
		},
	})
	if err != nil {
		return 0, false
	}
	return v.(int), true
}
