package douceuradapter

import (
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	sheet, err := cssom.Parse(`h1, h2 > p { margin: 0 auto; -webkit-transition: all 1s !important; color: red }`)
	require.NoError(t, err)
	d := ToDouceur(sheet)
	require.Len(t, d.Rules, 1)
	r := d.Rules[0]
	assert.Equal(t, css.QualifiedRule, r.Kind)
	assert.Equal(t, "h1, h2 > p", r.Prelude)
	assert.Equal(t, []string{"h1", "h2 > p"}, r.Selectors)
	require.Len(t, r.Declarations, 3)
	var props []string
	for _, decl := range r.Declarations {
		props = append(props, decl.Property)
	}
	assert.Equal(t, []string{"margin", "-webkit-transition", "color"}, props, "declaration order")
	assert.Equal(t, "0 auto", r.Declarations[0].Value)
	assert.True(t, r.Declarations[1].Important)
	assert.False(t, r.Declarations[2].Important)
}

func TestAtRules(t *testing.T) {
	sheet, err := cssom.Parse(`@import "base.css" screen;
@media print { a { color: black } }
@-webkit-keyframes fade { from, 50% { opacity: 0 } to { opacity: 1 } }
@counter-style thumbs { system: cyclic; symbols: "\1F44D"; suffix: " " }
@font-face { font-family: Serif }`)
	require.NoError(t, err)
	d := ToDouceur(sheet)
	require.Len(t, d.Rules, 5)
	var names []string
	for _, r := range d.Rules {
		assert.Equal(t, css.AtRule, r.Kind)
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"@import", "@media", "@-webkit-keyframes", "@counter-style", "@font-face"}, names)
	assert.Equal(t, `"base.css" screen`, d.Rules[0].Prelude)
	//
	media := d.Rules[1]
	assert.Equal(t, "print", media.Prelude)
	require.Len(t, media.Rules, 1)
	assert.Equal(t, 1, media.Rules[0].EmbedLevel)
	assert.Equal(t, "a", media.Rules[0].Prelude)
	//
	kf := d.Rules[2]
	assert.Equal(t, "fade", kf.Prelude)
	require.Len(t, kf.Rules, 2)
	assert.Equal(t, "0%,50%", kf.Rules[0].Prelude)
	assert.Equal(t, []string{"100%"}, kf.Rules[1].Selectors)
	//
	cs := d.Rules[3]
	require.Len(t, cs.Declarations, 3)
	assert.Equal(t, "system", cs.Declarations[0].Property)
	assert.Equal(t, "cyclic", cs.Declarations[0].Value)
	assert.Equal(t, "suffix", cs.Declarations[1].Property)
	assert.Equal(t, "symbols", cs.Declarations[2].Property)
}

func TestDouceurReadsCanonicalOutput(t *testing.T) {
	sheet, err := cssom.Parse(`a { color : red }  h1,h2 { margin: 0 !important }`)
	require.NoError(t, err)
	want := ToDouceur(sheet)
	got, err := parser.Parse(sheet.String())
	require.NoError(t, err)
	require.Len(t, got.Rules, len(want.Rules))
	for i := range want.Rules {
		assert.Equal(t, want.Rules[i].Selectors, got.Rules[i].Selectors, "rule %d", i)
		require.Len(t, got.Rules[i].Declarations, len(want.Rules[i].Declarations))
		for j, decl := range want.Rules[i].Declarations {
			assert.Equal(t, decl.Property, got.Rules[i].Declarations[j].Property)
			assert.Equal(t, decl.Important, got.Rules[i].Declarations[j].Important)
		}
	}
}
