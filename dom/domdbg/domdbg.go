/*
Package domdbg implements helpers to debug the styling of a tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	tp "github.com/xlab/treeprint"
)

// maximum depth of trees to print
const maxDepth = 256

// PrintStyles renders a tree of nodes together with the styles a stylesheet
// computes for them, e.g.
//
//     diagram {}
//     └── box.large {fill: (1,0,0,1);} ::after {content: "x";}
//
func PrintStyles(root dom.StyleNode, sheet style.Styler) string {
	if root == nil {
		return "<empty>"
	}
	p := tp.New()
	p.SetValue(label(root, sheet))
	printChildren(p, root, sheet, 1)
	return p.String()
}

func printChildren(p tp.Tree, n dom.StyleNode, sheet style.Styler, depth int) {
	if depth > maxDepth {
		p.AddNode("…")
		return
	}
	for _, ch := range n.Children() {
		if len(ch.Children()) == 0 {
			p.AddNode(label(ch, sheet))
			continue
		}
		printChildren(p.AddBranch(label(ch, sheet)), ch, sheet, depth+1)
	}
}

func label(n dom.StyleNode, sheet style.Styler) string {
	s := nodeName(n)
	if sheet != nil {
		s += " " + sheet.Match(n).String()
	}
	return s
}

// nodeName returns the name of a node, decorated with its id, classes and
// states, as it would be selected.
func nodeName(n dom.StyleNode) string {
	var sb strings.Builder
	sb.WriteString(n.Name())
	if id := n.Attribute("id"); id != "" {
		sb.WriteString("#" + id)
	}
	for _, c := range strings.Fields(n.Attribute("class")) {
		sb.WriteString("." + c)
	}
	for _, s := range n.State() {
		sb.WriteString(":" + s)
	}
	return sb.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	SEdgeTmpl *template.Template
}

type node struct {
	Name  string
	Label string
}

type edge struct {
	N1, N2 string
}

type styleRecord struct {
	Name       string
	Title      string
	Properties []style.KeyValue
}

// ToGraphViz outputs a diagram for a tree of nodes. The diagram is in
// GraphViz (DOT) format. If sheet is not nil, every node is connected to a
// record with its computed style, and to another one for its "::after"
// pseudo-element, if present.
func ToGraphViz(root dom.StyleNode, sheet style.Styler, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Parse(styleTmpl))
	gparams.SEdgeTmpl = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		count := 0
		if _, err = nodes(root, sheet, w, &count, &gparams, 0); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n dom.StyleNode, sheet style.Styler, w io.Writer, count *int,
	gparams *graphParamsType, depth int) (string, error) {
	//
	*count++
	name := fmt.Sprintf("node%05d", *count)
	if err := gparams.NodeTmpl.Execute(w, node{name, nodeName(n)}); err != nil {
		return name, err
	}
	if sheet != nil {
		if err := styles(name, sheet.Match(n), w, gparams); err != nil {
			return name, err
		}
	}
	if depth >= maxDepth {
		return name, nil
	}
	for _, ch := range n.Children() {
		chname, err := nodes(ch, sheet, w, count, gparams, depth+1)
		if err != nil {
			return name, err
		}
		if err = gparams.EdgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

func styles(name string, st *style.Style, w io.Writer, gparams *graphParamsType) error {
	prev := name
	for i, s := range []*style.Style{st, st.After()} {
		if s.Len() == 0 {
			continue
		}
		rec := styleRecord{Name: name + "_style", Title: "style"}
		if i > 0 {
			rec.Name, rec.Title = name+"_after", "::after"
		}
		props := s.Properties()
		for _, k := range props.Keys() {
			rec.Properties = append(rec.Properties, style.KeyValue{Key: k, Value: style.Property(props[k].String())})
		}
		if err := gparams.StyleTmpl.Execute(w, rec); err != nil {
			return err
		}
		if err := gparams.SEdgeTmpl.Execute(w, edge{prev, rec.Name}); err != nil {
			return err
		}
		prev = rec.Name
	}
	return nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Title }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value | html }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const styleEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [dir=none weight=1 style="dashed"] ;
`
