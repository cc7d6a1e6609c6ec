package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatStdin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	out, err := run(t, "a { color : red }\n@media print { b { margin: 0 } }", "format")
	require.NoError(t, err)
	assert.Equal(t, "a{color:red;}@media print{b{margin:0;}}\n", out)
}

func TestFormatFileWithSourceURLs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	path := writeFile(t, "style.css", "a{color:red}\n/*# sourceMappingURL=style.css.map */")
	out, err := run(t, "", "format", "--source-urls", path)
	require.NoError(t, err)
	assert.Equal(t, "/*# sourceMappingURL=style.css.map */\na{color:red;}\n", out)
	//
	out, err = run(t, "", "format", path)
	require.NoError(t, err)
	assert.Equal(t, "a{color:red;}\n", out)
}

func TestFormatErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	_, err := run(t, "a{}\n@foo;", "format")
	require.Error(t, err)
	assert.Equal(t, "<stdin>: 2:1: unsupported at-rule: @foo", err.Error())
	//
	_, err = run(t, "a{}\n@foo;", "format", "--line-offset", "10")
	require.Error(t, err)
	assert.Equal(t, "<stdin>: 12:1: unsupported at-rule: @foo", err.Error())
	//
	_, err = run(t, "", "format", filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open input")
}

func TestConfigFromEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	t.Setenv("CSSFMT_LINE_OFFSET", "5")
	_, err := run(t, "@foo;", "format")
	require.Error(t, err)
	assert.Equal(t, "<stdin>: 6:1: unsupported at-rule: @foo", err.Error())
	//
	t.Setenv("CSSFMT_LINE_OFFSET", "-1")
	_, err = run(t, "a{}", "format")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.cssom")
	defer teardown()
	//
	css := `a:unknown-pseudo(1){color:red}`
	_, err := run(t, css, "format")
	require.Error(t, err, "selector validation is on by default")
	//
	conf := writeFile(t, "cssfmt.yaml", "validate_selectors: false\n")
	out, err := run(t, css, "format", "--config", conf)
	require.NoError(t, err)
	assert.Equal(t, "a:unknown-pseudo(1){color:red;}\n", out)
	//
	_, err = run(t, css, "format", "--config", conf, "--validate-selectors=true")
	require.Error(t, err, "flags take precedence over the config file")
}

func TestTreeOfHTMLDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.html")
	defer teardown()
	//
	doc := `<html><head><style>p { color: red }</style></head>
<body><style>@media print { div { display: none } }</style></body></html>`
	out, err := run(t, doc, "tree", "--html")
	require.NoError(t, err)
	for _, s := range []string{"stylesheet", "p", "color:red;", "@media print", "div"} {
		assert.Contains(t, out, s)
	}
	out, err = run(t, doc, "tree", "--html", "--graphviz")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph"), "expected DOT output, got %q", out)
}
