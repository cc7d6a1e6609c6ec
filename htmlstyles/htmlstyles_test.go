package htmlstyles

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testDoc = `<!DOCTYPE html>
<html><head>
<style>p { color: red; margin: 0 } p.note { color: blue } #x { color: green !important }</style>
<style media="print">@media screen { p { font-size: 10pt } }</style>
</head><body>
<p id="x" class="note" style="color: black; margin: 1em">hello</p>
<p>plain</p>
<style>div { display: none }</style>
</body></html>`

func parseDoc(t *testing.T, doc string) *html.Node {
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.html")
	defer teardown()
	//
	styles, err := ExtractStyleElements(parseDoc(t, testDoc))
	require.NoError(t, err)
	require.Len(t, styles, 3)
	assert.True(t, styles[0].Media.IsEmpty())
	assert.Equal(t, "print", cssom.String(styles[1].Media))
	assert.Equal(t, "div{display:none;}", styles[2].Sheet.String())
	assert.Equal(t, 3, styles[0].Sheet.Rules.Len())
}

func TestExtractStyleElementsFailsFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.html")
	defer teardown()
	//
	doc := `<html><head><style>a{}</style><style>@foo{}</style></head><body></body></html>`
	_, err := ExtractStyleElements(parseDoc(t, doc))
	require.Error(t, err)
	assert.True(t, csserr.Is(err, csserr.UnsupportedAtRule), "expected unsupported at-rule, got %v", err)
}

func TestMatchingRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.html")
	defer teardown()
	//
	root := parseDoc(t, testDoc)
	styles, err := ExtractStyleElements(root)
	require.NoError(t, err)
	x := cascadia.Query(root, cascadia.MustCompile("#x"))
	require.NotNil(t, x)
	matches := MatchingRules(styles, x)
	var sels []string
	for _, m := range matches {
		sels = append(sels, m.Rule.Selector())
	}
	assert.Equal(t, []string{"p", "p", "p.note", "#x"}, sels)
	//
	plain := cascadia.Query(root, cascadia.MustCompile("p:not(.note)"))
	require.NotNil(t, plain)
	assert.Len(t, MatchingRules(styles, plain), 2)
	assert.Empty(t, MatchingRules(styles, root), "document node is not an element")
}

func TestCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.html")
	defer teardown()
	//
	root := parseDoc(t, testDoc)
	styles, err := ExtractStyleElements(root)
	require.NoError(t, err)
	x := cascadia.Query(root, cascadia.MustCompile("#x"))
	decls, err := Cascade(styles, x)
	require.NoError(t, err)
	got := make(map[string]string)
	var names []string
	for _, d := range decls {
		names = append(names, d.FullName())
		got[d.FullName()] = d.Value.String()
	}
	assert.Equal(t, []string{"color", "font-size", "margin"}, names)
	assert.Equal(t, "green", got["color"], "important beats inline style")
	assert.Equal(t, "1em", got["margin"], "inline style beats stylesheet")
	assert.Equal(t, "10pt", got["font-size"])
	//
	plain := cascadia.Query(root, cascadia.MustCompile("p:not(.note)"))
	decls, err = Cascade(styles, plain)
	require.NoError(t, err)
	if c, ok := decls.Get("color"); !ok || c.Value.String() != "red" {
		t.Errorf("expected plain paragraph to be red")
	}
}

func TestInlineStyleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.html")
	defer teardown()
	//
	root := parseDoc(t, `<html><body><p style="color:">x</p></body></html>`)
	p := cascadia.Query(root, cascadia.MustCompile("p"))
	_, err := InlineStyle(p)
	assert.True(t, csserr.Is(err, csserr.EmptyPropertyValue), "got %v", err)
}
