/*
Package framedebug writes box trees in GraphViz DOT format, for debugging.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/decal/engine/frame"
	"github.com/npillmayer/decal/engine/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root frame.Node, w io.Writer) error {
	header, err := template.New("boxTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
			"fill":  fill,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[frame.Node]string, 64)
	var parents []frame.Node
	frame.Walk(root, func(n frame.Node, depth int) bool {
		if err != nil {
			return false
		}
		parents = append(parents[:depth], n)
		if err = box(n, w, dict, &gparams); err != nil {
			return false
		}
		if depth > 0 {
			err = gparams.EdgeTmpl.Execute(w, cedge{dict[parents[depth-1]], dict[n]})
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Helper structs
type cbox struct {
	N    frame.Node
	Name string
}

type cedge struct {
	From, To string
}

func box(n frame.Node, w io.Writer, dict map[frame.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	return gparams.BoxTmpl.Execute(w, &cbox{n, name})
}

func label(n frame.Node) string {
	var s string
	switch b := n.(type) {
	case *frame.Viewport:
		s = fmt.Sprintf("%s %v %v", n.Kind().Symbol(), b.Position, b.Dimensions)
	case *frame.TextBox:
		s = fmt.Sprintf("%s \\\"%s\\\"\n%v %v", n.Kind().Symbol(), escape(shortText(b.Text())),
			b.Position, b.Dimensions)
	case frame.Boxed:
		cb := b.CSSBox()
		s = fmt.Sprintf("%s %s\n%v %v", n.Kind().Symbol(), n.Kind(), cb.Position, cb.Dimensions)
	}
	return "\"" + strings.Replace(s, "\n", `\n`, -1) + "\""
}

func escape(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	return strings.Replace(s, `"`, `\"`, -1)
}

func shortText(s string) string {
	if r := []rune(s); len(r) > 10 {
		return string(r[:10]) + "…"
	}
	return s
}

func fill(n frame.Node) string {
	switch n.Kind() {
	case frame.TextKind, frame.BitMapKind:
		return "grey95"
	case frame.ViewportKind:
		return "white"
	}
	if n.(frame.Boxed).CSSBox().Style.Background != style.Transparent {
		return "lightblue3"
	}
	return "lightblue1"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor={{ fill .N }} ] ;
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
