package cssomdbg

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const testCSS = `@namespace svg url(http://www.w3.org/2000/svg);
@media print { a { color: black } }
@keyframes fade { from { opacity: 0 } to { opacity: 1 } }
@counter-style thumbs { system: cyclic; symbols: "\1F44D"; suffix: " " }
p.note { margin: 0 }`

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	sheet, err := cssom.Parse(testCSS)
	if err != nil {
		t.Fatal(err)
	}
	tree := Tree(sheet)
	t.Logf("\n%s", tree)
	for _, s := range []string{
		"stylesheet",
		"svg → http://www.w3.org/2000/svg",
		"@media print",
		"color:black;",
		"@keyframes fade",
		"100%",
		`@counter-style thumbs{system:cyclic;suffix:" ";symbols:"👍";}`,
		"p.note",
		"margin:0;",
	} {
		if !strings.Contains(tree, s) {
			t.Errorf("expected tree to contain %q", s)
		}
	}
}

func TestGraphViz(t *testing.T) {
	sheet, err := cssom.Parse(testCSS)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err = ToGraphViz(sheet, &b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a digraph: %s", dot)
	}
	// 4 top-level rules plus one nested style rule
	if n := strings.Count(dot, "->"); n != 5 {
		t.Errorf("expected 5 edges, got %d", n)
	}
	if !strings.Contains(dot, `"@media print"`) {
		t.Errorf("expected node for @media rule")
	}
}

func TestTreeShowsAbsoluteLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	sheet, err := cssom.Parse(`@media (96px <= width <= 30em), (height: 1in) { a { color: red } }`)
	if err != nil {
		t.Fatal(err)
	}
	tree := Tree(sheet)
	t.Logf("\n%s", tree)
	if strings.Count(tree, "= 72.27pt") != 2 {
		t.Errorf("expected 96px and 1in to be shown as 72.27pt")
	}
	if strings.Contains(tree, "30em =") {
		t.Errorf("expected relative length 30em to have no absolute size")
	}
}

func TestShortTextKeepsRunes(t *testing.T) {
	s := shortText(strings.Repeat("é", 30))
	if !utf8.ValidString(s) {
		t.Fatalf("expected valid UTF-8, got %q", s)
	}
	if n := utf8.RuneCountInString(s); n != 25 {
		t.Errorf("expected 24 runes plus ellipsis, got %d runes", n)
	}
	if s = shortText("p.note"); s != "p.note" {
		t.Errorf("expected short text to be kept, got %q", s)
	}
}
