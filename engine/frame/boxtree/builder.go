package boxtree

import (
	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/style"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts heterogeneous content into a list of boxes.
// Strings become text boxes, bitmaps become bitmap boxes, both styled with
// st. Boxes are passed through unchanged and slices are flattened. Nil
// entries, including nil pointers to boxes or bitmaps, are dropped. Any
// other type of content results in an error with code core.EINVALID.
func Normalize(st style.ComputedStyle, content ...interface{}) ([]frame.Boxed, error) {
	boxes := make([]frame.Boxed, 0, len(content))
	var err error
	for _, c := range content {
		if boxes, err = appendContent(boxes, st, c); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	return boxes, nil
}

func appendContent(boxes []frame.Boxed, st style.ComputedStyle, c interface{}) ([]frame.Boxed, error) {
	var err error
	switch x := c.(type) {
	case nil:
		// dropped
	case string:
		boxes = append(boxes, Text(st, x))
	case frame.Boxed:
		if !frame.IsNil(x) {
			boxes = append(boxes, x)
		}
	case bitmap.Image:
		if !nilImage(x) {
			boxes = append(boxes, Bitmap(st, x))
		}
	case []frame.Boxed:
		for _, b := range x {
			if boxes, err = appendContent(boxes, st, b); err != nil {
				return nil, err
			}
		}
	case []interface{}:
		for _, y := range x {
			if boxes, err = appendContent(boxes, st, y); err != nil {
				return nil, err
			}
		}
	default:
		return nil, core.Error(core.EINVALID, "cannot build a box from content of type %T", c)
	}
	return boxes, nil
}

// Block creates a block container from content, see Normalize.
// It panics if content contains unsupported types; use Normalize and
// frame.NewBlockBox to handle content of unknown origin.
func Block(st style.ComputedStyle, content ...interface{}) *frame.BlockBox {
	return frame.NewBlockBox(st, must(Normalize(st, content...))...)
}

// Inline creates an inline container from content, see Normalize.
// It panics if content contains unsupported types.
func Inline(st style.ComputedStyle, content ...interface{}) *frame.InlineBox {
	return frame.NewInlineBox(st, must(Normalize(st, content...))...)
}

// Text creates a text leaf. The text is normalized to NFC.
func Text(st style.ComputedStyle, text string) *frame.TextBox {
	return frame.NewTextBox(st, norm.NFC.String(text))
}

// Bitmap creates a bitmap leaf.
func Bitmap(st style.ComputedStyle, img bitmap.Image) *frame.BitMapBox {
	return frame.NewBitMapBox(st, img)
}

func must(boxes []frame.Boxed, err error) []frame.Boxed {
	if err != nil {
		panic(err)
	}
	return boxes
}

func nilImage(img bitmap.Image) bool {
	switch x := img.(type) {
	case *bitmap.BitMap:
		return x == nil
	case *bitmap.Scaled:
		return x == nil
	}
	return false
}
