package markup

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/decal/core"
	"github.com/npillmayer/decal/core/font"
	"github.com/npillmayer/decal/engine/bitmap"
	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/frame/boxtree"
	"github.com/npillmayer/decal/engine/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resources are the named styles and bitmaps markup may refer to.
type Resources struct {
	Styles  map[string]style.ComputedStyle // selected by attribute class
	Bitmaps map[string]bitmap.Image        // selected by attribute src of img
	Root    style.ComputedStyle            // style of top-level text
	Fonts   *font.Registry                 // resolves attribute font, may be nil
}

// Parse reads an HTML fragment and returns the top-level boxes it describes.
// The result may be passed to decal.Update.
func Parse(r io.Reader, res Resources) ([]frame.Boxed, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse markup")
	}
	b := builder{res: res}
	content, err := b.contents(nodes, res.Root)
	if err != nil {
		tracer().Errorf("markup: %v", err)
		return nil, err
	}
	return boxtree.Normalize(res.Root, content...)
}

// ParseString is like Parse for markup given as a string.
func ParseString(s string, res Resources) ([]frame.Boxed, error) {
	return Parse(strings.NewReader(s), res)
}

type builder struct {
	res Resources
}

func (b builder) contents(nodes []*html.Node, parent style.ComputedStyle) ([]interface{}, error) {
	content := make([]interface{}, 0, len(nodes))
	for _, n := range nodes {
		c, err := b.content(n, parent)
		if err != nil {
			return nil, err
		}
		content = append(content, c) // nil is dropped by the builder
	}
	return content, nil
}

func (b builder) children(n *html.Node, parent style.ComputedStyle) ([]frame.Boxed, error) {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	content, err := b.contents(nodes, parent)
	if err != nil {
		return nil, err
	}
	return boxtree.Normalize(parent, content...)
}

func (b builder) content(n *html.Node, parent style.ComputedStyle) (interface{}, error) {
	switch n.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text == "" {
			return nil, nil
		}
		return text, nil
	case html.ElementNode:
		// handled below
	default:
		return nil, nil
	}
	st, err := b.styleOf(n, parent)
	if err != nil {
		return nil, err
	}
	switch n.DataAtom {
	case atom.Img:
		src := attr(n, "src")
		img, ok := b.res.Bitmaps[src]
		if !ok {
			return nil, core.Error(core.EMISSING, "no bitmap for image source %q", src)
		}
		return boxtree.Bitmap(st, img), nil
	case atom.Br:
		return nil, nil
	case atom.Span, atom.B, atom.I, atom.Em, atom.Strong, atom.A:
		children, err := b.children(n, st)
		if err != nil {
			return nil, err
		}
		return frame.NewInlineBox(st, children...), nil
	case atom.Div, atom.P, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		// block
	default:
		tracer().Infof("unknown element <%s> will stack children vertically", n.Data)
	}
	children, err := b.children(n, st)
	if err != nil {
		return nil, err
	}
	return frame.NewBlockBox(st, children...), nil
}

// styleOf returns the style for an element: the style of its class, or the
// text properties of its parent, then modified by attributes.
func (b builder) styleOf(n *html.Node, parent style.ComputedStyle) (style.ComputedStyle, error) {
	var st style.ComputedStyle
	if class := attr(n, "class"); class != "" {
		var ok bool
		if st, ok = b.res.Styles[class]; !ok {
			return st, core.Error(core.EMISSING, "no style for class %q", class)
		}
	} else {
		st = inherit(parent)
	}
	var opts []style.Option
	for _, a := range n.Attr {
		switch a.Key {
		case "width", "height":
			sz, err := style.ParseSize(a.Val)
			if err != nil {
				return st, err
			}
			if a.Key == "width" {
				opts = append(opts, style.WithWidth(sz))
			} else {
				opts = append(opts, style.WithHeight(sz))
			}
		case "x", "y":
			v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(a.Val), "px"))
			if err != nil {
				return st, core.WrapError(err, core.EINVALID, "illegal coordinate %s=%q", a.Key, a.Val)
			}
			if a.Key == "x" {
				opts = append(opts, style.WithX(v))
			} else {
				opts = append(opts, style.WithY(v))
			}
		case "font":
			f, err := b.fontOf(a.Val)
			if err != nil {
				return st, err
			}
			opts = append(opts, style.WithFont(f))
		case "align":
			align, err := parseAlign(a.Val)
			if err != nil {
				return st, err
			}
			opts = append(opts, style.WithAlign(align))
		}
	}
	return st.With(opts...), nil
}

// inherit returns the default style with the text properties of parent.
func inherit(parent style.ComputedStyle) style.ComputedStyle {
	st := style.Default()
	st.Font = parent.Font
	st.Foreground = parent.Foreground
	st.DecorationLine = parent.DecorationLine
	st.DecorationColor = parent.DecorationColor
	st.DecorationThickness = parent.DecorationThickness
	st.DecorationOffset = parent.DecorationOffset
	return st
}

// fontOf resolves a font attribute of the form "<name> <size>px" with the
// font registry. Fonts unknown to the registry are replaced by the fallback font.
func (b builder) fontOf(val string) (font.Metrics, error) {
	if b.res.Fonts == nil {
		return nil, core.Error(core.EMISSING, "no font registry for font %q", val)
	}
	fields := strings.Fields(val)
	if len(fields) < 2 {
		return nil, core.Error(core.EINVALID, "font %q needs a name and a size", val)
	}
	last := fields[len(fields)-1]
	size, err := strconv.ParseFloat(strings.TrimSuffix(last, "px"), 64)
	if err != nil || size <= 0 {
		return nil, core.Error(core.EINVALID, "illegal font size in %q", val)
	}
	name := strings.Join(fields[:len(fields)-1], " ")
	sc, err := b.res.Fonts.ShapedCase(name, size)
	if sc == nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot prepare font %q", val)
	}
	if err != nil {
		tracer().Infof("markup: %v", err)
	}
	return sc, nil
}

func parseAlign(s string) (style.Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left":
		return style.AlignStart, nil
	case "center":
		return style.AlignCenter, nil
	case "end", "right":
		return style.AlignEnd, nil
	}
	return style.AlignStart, core.Error(core.EINVALID, "illegal alignment %q", s)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
