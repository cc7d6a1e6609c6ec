package cssom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/cssom/counterstyle"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	sheet, err := cssom.Parse(`a{color:red} @counter-style x{system:alphabetic;}`)
	if err == nil {
		t.Fatalf("expected parse to fail, got %s", sheet)
	}
	assert.Nil(t, sheet, "no partial stylesheet")
	assert.True(t, csserr.Is(err, csserr.CounterStyleWithoutSymbols), "got %v", err)
}

func TestNamespaceOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	_, err := cssom.Parse(`a{color:red}
@namespace foo "urn:x";`)
	require.Error(t, err)
	assert.True(t, csserr.Is(err, csserr.NamespaceAfterOtherRules), "got %v", err)
	loc, _ := csserr.LocationOf(err)
	assert.Equal(t, tokens.Location{Line: 2, Column: 1}, loc)
	//
	sheet, err := cssom.Parse(`@namespace foo "urn:x"; a{color:red}`)
	require.NoError(t, err)
	uri, ok := sheet.Namespaces.Lookup("foo")
	assert.True(t, ok)
	assert.Equal(t, "urn:x", uri)
	assert.Equal(t, 1, sheet.Rules.Len(), "@namespace is not kept")
	assert.Equal(t, "a{color:red;}", sheet.String())
}

func TestNamespaces(t *testing.T) {
	sheet, err := cssom.Parse(`@charset "utf-8";
@import "base.css";
@namespace url(http://www.w3.org/1999/xhtml);
@namespace svg url("http://www.w3.org/2000/svg");
svg|rect{fill:blue}`)
	require.NoError(t, err)
	assert.Equal(t, "http://www.w3.org/1999/xhtml", maybe.OrElse(sheet.Namespaces.Default, ""))
	assert.Equal(t, []string{"svg"}, sheet.Namespaces.Prefixes())
	require.Equal(t, 2, sheet.Rules.Len())
	assert.Equal(t, cssom.ImportRuleKind, sheet.Rules.At(0).Kind())
	assert.Equal(t, "svg|rect", sheet.Rules.At(1).(*cssom.StyleRule).Selector())
	//
	_, err = cssom.Parse(`math|mi{color:red}`)
	assert.True(t, csserr.Is(err, csserr.UnknownNamespacePrefix), "got %v", err)
}

func TestOrderingErrors(t *testing.T) {
	var tests = []struct {
		css  string
		kind csserr.Kind
	}{
		{`a{} @import "x.css";`, csserr.ImportAfterOtherRules},
		{`@namespace "urn:x"; @import "x.css";`, csserr.ImportAfterOtherRules},
		{`a{} @charset "utf-8";`, csserr.UnexpectedCharsetRule},
		{`@import "x.css"; @charset "utf-8";`, csserr.UnexpectedCharsetRule},
		{`@charset "utf-8"; @charset "utf-8";`, csserr.UnexpectedCharsetRule},
		{`@media print{@import "x.css";}`, csserr.RuleNotAllowedHere},
		{`@media print{@namespace "urn:x";}`, csserr.RuleNotAllowedHere},
		{`@media print{@charset "utf-8";}`, csserr.UnexpectedCharsetRule},
		{`@font-feature-values Font One{}`, csserr.UnsupportedAtRule},
		{`@-webkit-media print{}`, csserr.UnsupportedAtRule},
		{`a{@media print{}}`, csserr.AtRuleNotAllowedInDeclarationList},
		{`a{color:}`, csserr.EmptyPropertyValue},
		{`a{color:red !important !important}`, csserr.Basic},
		{`a`, csserr.Basic},
		{`a:unknown-pseudo(1){color:red}`, csserr.InvalidSelector},
		{`{color:red}`, csserr.InvalidSelector},
		{`@keyframes x{50%{opacity:0 !important}}`, csserr.ImportantNotAllowedInKeyframes},
		{`@keyframes x{120%{opacity:0}}`, csserr.InvalidKeyframeSelector},
		{`@keyframes x{middle{opacity:0}}`, csserr.InvalidKeyframeSelector},
		{`@keyframes none{}`, csserr.Basic},
		{`@font-face foo{src:url(x)}`, csserr.Basic},
		{`@counter-style none{symbols:a}`, csserr.CounterStyleNameNotAllowed},
		{`@supports (a:b) and (c:d) or (e:f){}`, csserr.MixedSupportsOperators},
		{`@media (min-hover:none){}`, csserr.MediaFeatureNotRangeable},
	}
	for i, tt := range tests {
		_, err := cssom.Parse(tt.css)
		if err == nil {
			t.Errorf("%d. %q: expected error, got none", i, tt.css)
			continue
		}
		if !csserr.Is(err, tt.kind) {
			t.Errorf("%d. %q: expected error kind %v, got %v", i, tt.css, tt.kind, err)
		}
	}
}

func TestCanonicalSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	var tests = []struct {
		css, out string
	}{
		{`a { color : red }`, `a{color:red;}`},
		{"h1,  h2 > p\n{ margin: 0 auto ; -WEBKIT-Transition: all 1s }", `h1, h2 > p{margin:0 auto;-webkit-transition:all 1s;}`},
		{`<!-- a{color:red} -->`, `a{color:red;}`},
		{`@counter-style thumbs{system:cyclic;symbols:"\1F44D";suffix:" ";}`,
			`@counter-style thumbs{system:cyclic;suffix:" ";symbols:"👍";}`},
		{`@media screen and (min-width: 30em) { a{color:red} @media print { b{x:y} } }`,
			`@media screen and (min-width:30em){a{color:red;}@media print{b{x:y;}}}`},
		{`@supports (display: grid) and (not (display: inline-grid)) { .g{display:grid} }`,
			`@supports (display:grid) and (not (display:inline-grid)){.g{display:grid;}}`},
		{`@-webkit-keyframes fade { from { opacity: 0 } 50%, 75% { opacity: .5 } to { opacity: 1 } }`,
			`@-webkit-keyframes fade{0%{opacity:0;}50%,75%{opacity:.5;}100%{opacity:1;}}`},
		{`@keyframes "slide in" {}`, `@keyframes slide\ in{}`},
		{`@font-face { font-family: "Open Sans"; src: url(/fonts/os.woff2) format("woff2") }`,
			`@font-face{font-family:"Open Sans";src:url(/fonts/os.woff2) format("woff2");}`},
		{`@page :first { margin: 1in }`, `@page :first{margin:1in;}`},
		{`@page{margin:1in}`, `@page{margin:1in;}`},
		{`@import url(print.css) print, (orientation: landscape);`, `@import "print.css" print, (orientation:landscape);`},
		{`@import 'all.css'`, `@import "all.css";`},
		{`a{color:red!IMPORTANT;margin:inherit}`, `a{color:red!important;margin:inherit;}`},
		{`a{color:red`, `a{color:red;}`},
		{``, ``},
	}
	for i, tt := range tests {
		sheet, err := cssom.Parse(tt.css)
		if err != nil {
			t.Errorf("%d. %q: unexpected error: %v", i, tt.css, err)
			continue
		}
		if out := sheet.String(); out != tt.out {
			t.Errorf("%d. expected\n%s\ngot\n%s", i, tt.out, out)
		}
	}
}

func TestCounterStyleRule(t *testing.T) {
	sheet, err := cssom.Parse(`@counter-style thumbs{system:cyclic;symbols:"\1F44D";suffix:" ";}`)
	require.NoError(t, err)
	require.Equal(t, 1, sheet.Rules.Len())
	r, ok := sheet.Rules.At(0).(*cssom.CounterStyleRule)
	require.True(t, ok, "expected *CounterStyleRule, got %T", sheet.Rules.At(0))
	assert.Equal(t, counterstyle.Name("thumbs"), r.Name())
	assert.Equal(t, counterstyle.Cyclic, r.System().Kind)
	symbols, ok := r.Symbols()
	assert.True(t, ok)
	assert.Len(t, symbols, 1)
	assert.Equal(t, " ", r.Suffix().Value)
	d := r.Specified()
	assert.True(t, maybe.IsNothing(d.Negative))
	assert.True(t, maybe.IsNothing(d.Prefix))
	assert.True(t, maybe.IsNothing(d.AdditiveSymbols))
}

func TestImportantInStyleRuleAndKeyframes(t *testing.T) {
	sheet, err := cssom.Parse(`a{opacity:0.5 !important}`)
	require.NoError(t, err)
	assert.True(t, sheet.Rules.At(0).(*cssom.StyleRule).IsImportant("opacity"))
	//
	_, err = cssom.Parse("@keyframes k {\n  to { opacity: 0.5 !important }\n}")
	require.Error(t, err)
	assert.True(t, csserr.Is(err, csserr.ImportantNotAllowedInKeyframes), "got %v", err)
	loc, ok := csserr.LocationOf(err)
	require.True(t, ok)
	assert.Equal(t, tokens.Location{Line: 2, Column: 21}, loc)
}

func TestStyleRuleHelpers(t *testing.T) {
	sheet, err := cssom.Parse(`p.note{margin-top:15px;color:red!important;-moz-box-sizing:border-box;color:blue}`)
	require.NoError(t, err)
	r := sheet.Rules.At(0).(*cssom.StyleRule)
	assert.Equal(t, "p.note", r.Selector())
	assert.Equal(t, []string{"margin-top", "color", "-moz-box-sizing"}, r.Properties())
	assert.Equal(t, "15px", r.Value("margin-top"))
	assert.Equal(t, "red", r.Value("color"))
	assert.Equal(t, "border-box", r.Value("-moz-box-sizing"))
	assert.Equal(t, "", r.Value("padding"))
	assert.True(t, r.IsImportant("color"))
	assert.False(t, r.IsImportant("margin-top"))
	assert.True(t, r.Selectors.IsCompiled())
	assert.Equal(t, 1, r.Selectors.Len())
}

func TestValidateSelectorsOption(t *testing.T) {
	css := `a:unknown-pseudo(1){color:red}`
	sheet, err := cssom.Parse(css, cssom.ValidateSelectors(false))
	require.NoError(t, err)
	r := sheet.Rules.At(0).(*cssom.StyleRule)
	assert.False(t, r.Selectors.IsCompiled())
	assert.Equal(t, "a:unknown-pseudo(1){color:red;}", sheet.String())
}

func TestLineOffset(t *testing.T) {
	_, err := cssom.Parse("a{}\n@foo;", cssom.LineOffset(10))
	require.Error(t, err)
	assert.Equal(t, "12:1: unsupported at-rule: @foo", err.Error())
}

func TestSourceURLs(t *testing.T) {
	sheet, err := cssom.Parse("a{color:red}\n/*# sourceMappingURL=style.css.map */\n/*# sourceURL=style.css */")
	require.NoError(t, err)
	assert.Equal(t, "style.css.map", maybe.OrElse(sheet.SourceMapURL, ""))
	assert.Equal(t, "style.css", maybe.OrElse(sheet.SourceURL, ""))
	var b strings.Builder
	require.NoError(t, sheet.ToCSS(&b, true))
	assert.Equal(t, "/*# sourceMappingURL=style.css.map */\n/*# sourceURL=style.css */\na{color:red;}", b.String())
	b.Reset()
	require.NoError(t, sheet.ToCSS(&b, false))
	assert.Equal(t, "a{color:red;}", b.String())
	//
	sheet, err = cssom.Parse("a{color:red}")
	require.NoError(t, err)
	assert.True(t, maybe.IsNothing(sheet.SourceMapURL))
	b.Reset()
	require.NoError(t, sheet.ToCSS(&b, true))
	assert.Equal(t, "a{color:red;}", b.String())
}

func TestNestedRules(t *testing.T) {
	sheet, err := cssom.Parse(`@media print{a{x:y}@supports (display:grid){b{x:y}c{x:y}}}d{x:y}`)
	require.NoError(t, err)
	m, ok := sheet.Rules.At(0).(*cssom.MediaRule)
	require.True(t, ok)
	assert.Equal(t, 2, m.CSSRules().Len())
	s, ok := m.RulesSlice()[1].(*cssom.SupportsRule)
	require.True(t, ok)
	assert.Len(t, s.RulesVec(), 2)
	var visited []string
	cssom.Walk(sheet, func(r cssom.Rule, depth int) bool {
		visited = append(visited, strings.Repeat(".", depth)+r.Kind().String())
		return true
	})
	assert.Equal(t, []string{"@media", ".style", ".@supports", "..style", "..style", "style"}, visited)
}

func TestCSSRulesEditing(t *testing.T) {
	sheet, err := cssom.Parse(`@import "a.css"; a{x:y} b{x:y}`)
	require.NoError(t, err)
	rules := sheet.CSSRules()
	imp := rules.At(0)
	c, err := cssom.Parse(`c{x:y}`)
	require.NoError(t, err)
	style := c.Rules.At(0)
	//
	assert.Error(t, rules.Insert(4, style), "out of range")
	assert.Error(t, rules.Insert(-1, style), "out of range")
	err = rules.Insert(0, style)
	assert.True(t, csserr.Is(err, csserr.RuleNotAllowedHere), "got %v", err)
	err = rules.Insert(2, imp)
	assert.True(t, csserr.Is(err, csserr.ImportAfterOtherRules), "got %v", err)
	require.NoError(t, rules.Insert(1, imp))
	require.NoError(t, rules.Insert(4, style))
	assert.Equal(t, `@import "a.css";@import "a.css";a{x:y;}b{x:y;}c{x:y;}`, sheet.String())
	//
	r, err := rules.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, "a{x:y;}", cssom.String(r))
	_, err = rules.Remove(4)
	assert.Error(t, err)
	//
	vec := sheet.RulesVec()
	vec[0] = style
	assert.Equal(t, cssom.ImportRuleKind, sheet.Rules.At(0).Kind(), "Vec is a copy")
	mut := sheet.RulesVecMut()
	*mut = (*mut)[:1]
	assert.Equal(t, 1, sheet.Rules.Len())
	assert.False(t, sheet.Empty())
}

func TestAppendRules(t *testing.T) {
	a, err := cssom.Parse(`a{x:y}`)
	require.NoError(t, err)
	b, err := cssom.Parse(`b{x:y}`)
	require.NoError(t, err)
	a.AppendRules(b)
	assert.Equal(t, "a{x:y;}b{x:y;}", a.String())
}

func TestSelectorTexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	sheet, err := cssom.Parse(`a[title="x,y"] ,  h1 > b , c:first-child{margin:0}`)
	require.NoError(t, err)
	r := sheet.Rules.At(0).(*cssom.StyleRule)
	assert.Equal(t, []string{`a[title="x,y"]`, "h1 > b", "c:first-child"}, r.Selectors.Texts())
}
