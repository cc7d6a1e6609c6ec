package supports_test

import (
	"testing"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/cssom/supports"
	"github.com/npillmayer/csskit/tokens"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(css string) (supports.Condition, error) {
	return supports.ParseCondition(tokens.NewInput(css))
}

func TestConditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.supports")
	defer teardown()
	//
	var tests = []struct {
		css, out string
	}{
		{"(display: grid)", "(display:grid)"},
		{"not (display: grid)", "not (display:grid)"},
		{"NOT (display:grid)", "not (display:grid)"},
		{"(display: flex) and (gap: 1em)", "(display:flex) and (gap:1em)"},
		{"(a: b) or (c: d) OR (e: f)", "(a:b) or (c:d) or (e:f)"},
		{"(display: flex) and ((gap: 1em) or (margin: 0))", "(display:flex) and ((gap:1em) or (margin:0))"},
		{"((display: grid))", "((display:grid))"},
		{"(not (display: grid))", "(not (display:grid))"},
		{"(-webkit-box-shadow: 0 0 2px black)", "(-webkit-box-shadow:0 0 2px black)"},
		{"(--x: )", "(--x:)"},
		{"selector(a > b)", "selector(a > b)"},
		{"(foo bar)", "(foo bar)"},
		{"not selector(:has(a))", "not selector(:has(a))"},
	}
	for i, tt := range tests {
		c, err := parse(tt.css)
		if err != nil {
			t.Errorf("%d. %q: unexpected error: %v", i, tt.css, err)
			continue
		}
		if out := supports.String(c); out != tt.out {
			t.Errorf("%d. expected %q, got %q", i, tt.out, out)
		}
	}
}

func TestConditionStructure(t *testing.T) {
	c, err := parse("(display: flex) and (not (gap: 1em))")
	require.NoError(t, err)
	and, ok := c.(supports.And)
	require.True(t, ok, "expected And, got %T", c)
	require.Len(t, and, 2)
	d, ok := and[0].(supports.Declaration)
	require.True(t, ok, "expected Declaration, got %T", and[0])
	assert.Equal(t, "display", d.Declaration.Name)
	n, ok := and[1].(supports.Nested)
	require.True(t, ok, "expected Nested, got %T", and[1])
	assert.IsType(t, supports.Not{}, n.Condition)
	//
	c, err = parse("selector(a)")
	require.NoError(t, err)
	assert.Equal(t, "selector", c.(supports.GeneralEnclosed).Function)
}

func TestConditionErrors(t *testing.T) {
	var tests = []struct {
		css  string
		kind csserr.Kind
	}{
		{"(a: b) and (c: d) or (e: f)", csserr.MixedSupportsOperators},
		{"(a: b) or (c: d) and (e: f)", csserr.MixedSupportsOperators},
		{"((a: b) and (c: d) or (e: f))", csserr.MixedSupportsOperators},
		{"display: grid", csserr.Basic},
		{"(a: b) (c: d)", csserr.Basic},
		{"(a: b) and", csserr.Basic},
		{"not (a: b) and (c: d)", csserr.Basic},
		{"(a: b) xor (c: d)", csserr.Basic},
		{"", csserr.Basic},
	}
	for i, tt := range tests {
		_, err := parse(tt.css)
		if err == nil {
			t.Errorf("%d. %q: expected error, got none", i, tt.css)
			continue
		}
		if !csserr.Is(err, tt.kind) {
			t.Errorf("%d. %q: expected error kind %v, got %v", i, tt.css, tt.kind, err)
		}
	}
}

func TestEval(t *testing.T) {
	known := map[string]bool{"display": true, "gap": true}
	supported := func(d properties.PropertyDeclaration) bool {
		return known[d.Name]
	}
	var tests = []struct {
		css    string
		result bool
	}{
		{"(display: grid)", true},
		{"(color-scheme: dark)", false},
		{"not (color-scheme: dark)", true},
		{"(display: grid) and (color-scheme: dark)", false},
		{"(display: grid) or (color-scheme: dark)", true},
		{"selector(a > b)", false},
		{"not (foo bar)", true},
	}
	for i, tt := range tests {
		c, err := parse(tt.css)
		require.NoError(t, err, "%d. %q", i, tt.css)
		if r := c.Eval(supported); r != tt.result {
			t.Errorf("%d. %q: expected %v, got %v", i, tt.css, tt.result, r)
		}
	}
}
