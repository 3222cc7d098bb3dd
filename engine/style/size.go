package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/core/dimen"
	"github.com/npillmayer/decal/core/option"
	"github.com/npillmayer/decal/core/percent"
)

const (
	sizeAuto     uint8 = 0 // zero value: unset
	sizeAbsolute uint8 = 1
	sizePercent  uint8 = 2
)

// Size is an option type for box widths and heights. It holds either an
// absolute pixel value, a percentage of the parent's dimension, or is unset
// (`auto`). The zero value is `auto`.
type Size struct {
	v     int
	flags uint8
}

// Auto returns an unset size.
func Auto() Size {
	return Size{}
}

// Px returns an absolute size of n pixels.
func Px(n int) Size {
	return Size{v: n, flags: sizeAbsolute}
}

// Pct returns a size relative to the parent box.
func Pct(p percent.Percent) Size {
	return Size{v: int(p), flags: sizePercent}
}

// IsNone returns true if s is `auto`. It is part of interface option.Type.
func (s Size) IsNone() bool {
	return s.flags == sizeAuto
}

// IsAbsolute returns true if s is a fixed pixel size.
func (s Size) IsAbsolute() bool {
	return s.flags == sizeAbsolute
}

// IsPercent returns true if s is relative to the parent box.
func (s Size) IsPercent() bool {
	return s.flags == sizePercent
}

// Unwrap returns the pixel value of an absolute size.
func (s Size) Unwrap() int {
	return s.v
}

// Percent returns the percentage of a relative size.
func (s Size) Percent() percent.Percent {
	return percent.Percent(s.v)
}

// Match is part of interface option.Type. Values of choices labelled option.Some
// will be called for absolute as well as for relative sizes.
func (s Size) Match(choices option.Maybe) (interface{}, error) {
	return choices.Match(s)
}

var _ option.Type = Size{}

func (s Size) String() string {
	switch s.flags {
	case sizeAbsolute:
		return fmt.Sprintf("%dpx", s.v)
	case sizePercent:
		return s.Percent().String()
	}
	return "auto"
}

// ParseSize parses a size property string. Valid sizes are
//
//     auto
//     15px
//     15
//     80%
//
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto(), nil
	}
	n, isPcnt, err := dimen.ParseDimen(s)
	if err != nil {
		return Auto(), core.WrapError(err, core.EINVALID, "illegal size %q", s)
	}
	if isPcnt {
		return Pct(percent.FromInt(n)), nil
	}
	return Px(n), nil
}
