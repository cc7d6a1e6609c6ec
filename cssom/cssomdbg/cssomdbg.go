/*
Package cssomdbg implements helpers to debug a CSSOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package cssomdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/cssom/media"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/xlab/treeprint"
)

// Tree renders the rules of a stylesheet as an indented tree, one branch
// per rule and one leaf per declaration.
func Tree(sheet *cssom.Stylesheet) string {
	root := treeprint.New()
	root.SetValue("stylesheet")
	if !sheet.Namespaces.IsEmpty() {
		ns := root.AddBranch("namespaces")
		if uri, ok := maybe.Value(sheet.Namespaces.Default); ok {
			ns.AddNode("(default) → " + uri)
		}
		for _, p := range sheet.Namespaces.Prefixes() {
			uri, _ := sheet.Namespaces.Lookup(p)
			ns.AddNode(p + " → " + uri)
		}
	}
	addRules(root, sheet)
	return root.String()
}

func addRules(branch treeprint.Tree, rules cssom.HasCSSRules) {
	for _, rule := range rules.RulesSlice() {
		switch r := rule.(type) {
		case *cssom.StyleRule:
			b := branch.AddBranch(r.Selector())
			for _, d := range r.Declarations {
				b.AddNode(d.String())
			}
		case *cssom.MediaRule:
			b := branch.AddBranch("@media " + cssom.String(r.Media))
			addAbsoluteLengths(b, r.Media)
			addRules(b, r)
		case *cssom.SupportsRule:
			addRules(branch.AddBranch("@supports "+cssom.String(r.Condition)), r)
		case *cssom.CounterStyleRule:
			branch.AddNode(cssom.String(r))
		case *cssom.KeyframesRule:
			b := branch.AddBranch(fmt.Sprintf("@keyframes %s", r.Name))
			for _, k := range r.Keyframes {
				sels := make([]string, len(k.Selectors))
				for i, s := range k.Selectors {
					sels[i] = cssom.String(s)
				}
				kb := b.AddBranch(strings.Join(sels, ","))
				for _, d := range k.Declarations {
					kb.AddNode(d.String())
				}
			}
		case *cssom.FontFaceRule:
			b := branch.AddBranch("@font-face")
			for _, d := range r.Declarations {
				b.AddNode(d.String())
			}
		case *cssom.PageRule:
			b := branch.AddBranch(strings.TrimSpace("@page " + r.Selector))
			for _, d := range r.Declarations {
				b.AddNode(d.String())
			}
		case *cssom.ImportRule:
			branch.AddNode(cssom.String(r))
		default:
			panic(fmt.Sprintf("cssomdbg: unknown rule type %T", r))
		}
	}
}

// addAbsoluteLengths adds a leaf in TeX points for every absolute length of
// a media list.
func addAbsoluteLengths(b treeprint.Tree, ml media.MediaList) {
	for _, l := range ml.Lengths() {
		if du, ok := l.Dimen(); ok {
			b.AddNode(fmt.Sprintf("%s = %.2fpt", cssom.String(l), float64(du)/float64(dimen.PT)))
		}
	}
}

// --- GraphViz --------------------------------------------------------------

type ruleNode struct {
	Name  string
	Label string
	Kind  string
}

type edge struct {
	From, To string
}

// ToGraphViz outputs a diagram for the rule tree of a stylesheet. The
// diagram is in GraphViz (DOT) format.
func ToGraphViz(sheet *cssom.Stylesheet, w io.Writer) error {
	head := template.Must(template.New("sheet").Parse(graphHeadTmpl))
	nodeTmpl := template.Must(template.New("rule").Parse(ruleNodeTmpl))
	edgeTmpl := template.Must(template.New("edge").Parse(ruleEdgeTmpl))
	if err := head.Execute(w, "Helvetica"); err != nil {
		return err
	}
	g := &graph{w: w, node: nodeTmpl, edge: edgeTmpl}
	g.emit(ruleNode{Name: "sheet", Label: "stylesheet", Kind: "sheet"})
	g.rules("sheet", sheet)
	if g.err != nil {
		return g.err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

type graph struct {
	w          io.Writer
	node, edge *template.Template
	count      int
	err        error
}

func (g *graph) emit(n ruleNode) {
	if g.err == nil {
		g.err = g.node.Execute(g.w, n)
	}
}

func (g *graph) rules(parent string, rules cssom.HasCSSRules) {
	for _, r := range rules.RulesSlice() {
		g.count++
		name := fmt.Sprintf("rule%05d", g.count)
		g.emit(ruleNode{Name: name, Label: label(r), Kind: r.Kind().String()})
		if g.err == nil {
			g.err = g.edge.Execute(g.w, edge{From: parent, To: name})
		}
		if nested, ok := r.(cssom.HasCSSRules); ok {
			g.rules(name, nested)
		}
	}
}

func label(r cssom.Rule) string {
	switch r := r.(type) {
	case *cssom.StyleRule:
		return r.Selector()
	case *cssom.MediaRule:
		return "@media " + cssom.String(r.Media)
	case *cssom.SupportsRule:
		return "@supports " + cssom.String(r.Condition)
	case *cssom.CounterStyleRule:
		return "@counter-style " + string(r.Name())
	case *cssom.KeyframesRule:
		return "@keyframes " + r.Name
	}
	return shortText(cssom.String(r))
}

func shortText(s string) string {
	if r := []rune(s); len(r) > 24 {
		s = string(r[:24]) + "…"
	}
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ . }}" fontsize=14] ;
  edge [fontname = "{{ . }}" fontsize=14] ;
`

const ruleNodeTmpl = `{{ if eq .Kind "style" }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const ruleEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
