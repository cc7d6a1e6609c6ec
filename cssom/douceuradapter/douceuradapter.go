/*
Package douceuradapter converts stylesheets to the object model of
github.com/aymerick/douceur, for use with douceur-based tooling like its
HTML inliner.

Values are handed over as their canonical text. Rules douceur has no own
representation for become at-rules with a prelude and either declarations
or nested rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// ToDouceur converts a stylesheet into a douceur stylesheet.
func ToDouceur(sheet *cssom.Stylesheet) *css.Stylesheet {
	dsheet := css.NewStylesheet()
	dsheet.Rules = convertRules(sheet, 0)
	return dsheet
}

func convertRules(rules cssom.HasCSSRules, level int) []*css.Rule {
	drules := make([]*css.Rule, 0, len(rules.RulesSlice()))
	for _, r := range rules.RulesSlice() {
		drules = append(drules, convertRule(r, level))
	}
	return drules
}

func convertRule(rule cssom.Rule, level int) *css.Rule {
	var d *css.Rule
	switch r := rule.(type) {
	case *cssom.StyleRule:
		d = css.NewRule(css.QualifiedRule)
		d.Prelude = r.Selector()
		d.Selectors = r.Selectors.Texts()
		d.Declarations = Declarations(r.Declarations)
	case *cssom.MediaRule:
		d = atRule("@media", cssom.String(r.Media))
		d.Rules = convertRules(r, level+1)
	case *cssom.SupportsRule:
		d = atRule("@supports", cssom.String(r.Condition))
		d.Rules = convertRules(r, level+1)
	case *cssom.KeyframesRule:
		name := "@keyframes"
		if v, ok := maybe.Value(r.VendorPrefix); ok {
			name = "@" + v.String() + "keyframes"
		}
		d = atRule(name, tokens.EscapeIdent(r.Name))
		for _, k := range r.Keyframes {
			frame := css.NewRule(css.QualifiedRule)
			for _, s := range k.Selectors {
				frame.Selectors = append(frame.Selectors, cssom.String(s))
			}
			frame.Prelude = strings.Join(frame.Selectors, ",")
			frame.Declarations = Declarations(k.Declarations)
			frame.EmbedLevel = level + 1
			d.Rules = append(d.Rules, frame)
		}
	case *cssom.CounterStyleRule:
		d = atRule("@counter-style", cssom.String(r.Name()))
		r.EachSpecified(func(descriptor string, value tokens.Serializer) {
			decl := css.NewDeclaration()
			decl.Property = descriptor
			decl.Value = tokens.CSSString(value)
			d.Declarations = append(d.Declarations, decl)
		})
	case *cssom.FontFaceRule:
		d = atRule("@font-face", "")
		d.Declarations = Declarations(r.Declarations)
	case *cssom.PageRule:
		d = atRule("@page", r.Selector)
		d.Declarations = Declarations(r.Declarations)
	case *cssom.ImportRule:
		prelude := tokens.QuoteString(r.URL)
		if !r.Media.IsEmpty() {
			prelude += " " + cssom.String(r.Media)
		}
		d = atRule("@import", prelude)
	default:
		panic(fmt.Sprintf("douceuradapter: unknown rule type %T", r))
	}
	d.EmbedLevel = level
	return d
}

func atRule(name, prelude string) *css.Rule {
	d := css.NewRule(css.AtRule)
	d.Name = name
	d.Prelude = prelude
	return d
}

// Declarations converts property declarations to douceur declarations.
// Property names include their vendor prefix.
func Declarations(decls properties.PropertyDeclarations) []*css.Declaration {
	ddecls := make([]*css.Declaration, 0, len(decls))
	for _, d := range decls {
		dd := css.NewDeclaration()
		dd.Property = d.FullName()
		if d.Value != nil {
			dd.Value = d.Value.String()
		}
		dd.Important = d.IsImportant()
		ddecls = append(ddecls, dd)
	}
	return ddecls
}
