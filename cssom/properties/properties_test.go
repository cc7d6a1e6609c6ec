package properties_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(p properties.DeclarationParser, css string) (properties.PropertyDeclaration, error) {
	return p.ParseDeclaration(tokens.NewInput(css))
}

func TestDeclarationSpecifiedValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.properties")
	defer teardown()
	//
	d, err := parse(properties.DeclarationParser{}, "width:10px")
	require.NoError(t, err)
	assert.Equal(t, "width", d.Name)
	assert.True(t, maybe.IsNothing(d.VendorPrefix))
	v, ok := d.Value.(properties.SpecifiedValue)
	require.True(t, ok, "expected specified value, got %T", d.Value)
	assert.Equal(t, "10px", v.String())
	assert.False(t, d.IsImportant())
	assert.Equal(t, "width:10px;", d.String())
}

func TestDeclarationNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.properties")
	defer teardown()
	//
	var tests = []struct {
		css    string
		name   string
		prefix maybe.Maybe[properties.VendorPrefix]
		out    string
	}{
		{"COLOR: Red", "color", maybe.Nothing[properties.VendorPrefix](), "color:Red;"},
		{"-WebKit-Transition: all  1s", "transition", maybe.Just(properties.Webkit), "-webkit-transition:all 1s;"},
		{"-moz-box-sizing:border-box", "box-sizing", maybe.Just(properties.Moz), "-moz-box-sizing:border-box;"},
		{"-foo-bar: 1", "-foo-bar", maybe.Nothing[properties.VendorPrefix](), "-foo-bar:1;"},
		{"--Main-Color: #06c", "--Main-Color", maybe.Nothing[properties.VendorPrefix](), "--Main-Color:#06c;"},
		{"--webkit-thing: x", "--webkit-thing", maybe.Nothing[properties.VendorPrefix](), "--webkit-thing:x;"},
		{"margin: 0 auto !IMPORTANT", "margin", maybe.Nothing[properties.VendorPrefix](), "margin:0 auto!important;"},
		{"font-family: \"Helvetica Neue\", sans-serif", "font-family", maybe.Nothing[properties.VendorPrefix](), `font-family:"Helvetica Neue", sans-serif;`},
	}
	for i, tt := range tests {
		d, err := parse(properties.DeclarationParser{}, tt.css)
		if err != nil {
			t.Errorf("%d. %q: unexpected error: %v", i, tt.css, err)
			continue
		}
		if d.Name != tt.name {
			t.Errorf("%d. expected name %q, got %q", i, tt.name, d.Name)
		}
		if d.VendorPrefix.IsJust() != tt.prefix.IsJust() ||
			maybe.OrElse(d.VendorPrefix, 0) != maybe.OrElse(tt.prefix, 0) {
			t.Errorf("%d. expected vendor prefix %v, got %v", i, tt.prefix, d.VendorPrefix)
		}
		if out := d.String(); out != tt.out {
			t.Errorf("%d. expected %q, got %q", i, tt.out, out)
		}
	}
}

func TestDeclarationWideKeyword(t *testing.T) {
	d, err := parse(properties.DeclarationParser{}, "color: INHERIT !important")
	require.NoError(t, err)
	assert.Equal(t, properties.Inherit, d.Value)
	assert.True(t, d.IsImportant())
	//
	d, err = parse(properties.DeclarationParser{}, "margin: inherit 0")
	require.NoError(t, err)
	_, ok := d.Value.(properties.SpecifiedValue)
	assert.True(t, ok, "a wide keyword must be the whole value")
}

func TestImportantInKeyframes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.properties")
	defer teardown()
	//
	css := "opacity: 0.5\n  !important"
	_, err := parse(properties.DeclarationParser{InKeyframes: true}, css)
	require.Error(t, err)
	assert.True(t, csserr.Is(err, csserr.ImportantNotAllowedInKeyframes))
	loc, _ := csserr.LocationOf(err)
	assert.Equal(t, tokens.Location{Line: 2, Column: 3}, loc, "error must point to the '!'")
	//
	d, err := parse(properties.DeclarationParser{}, css)
	require.NoError(t, err)
	assert.True(t, d.IsImportant())
	//
	d, err = parse(properties.DeclarationParser{InKeyframes: true}, "opacity: 0.5")
	require.NoError(t, err)
	assert.False(t, d.IsImportant())
}

func TestDeclarationErrors(t *testing.T) {
	var tests = []struct {
		css  string
		kind csserr.Kind
	}{
		{"width:", csserr.EmptyPropertyValue},
		{"width: !important", csserr.EmptyPropertyValue},
		{"width: 10px !imp", csserr.Basic},
		{"width: 10px !important garbage", csserr.Basic},
		{"width: 10px )", csserr.Basic},
		{"10px: width", csserr.Basic},
	}
	for i, tt := range tests {
		_, err := parse(properties.DeclarationParser{}, tt.css)
		if err == nil {
			t.Errorf("%d. %q: expected error, got none", i, tt.css)
			continue
		}
		if !csserr.Is(err, tt.kind) {
			t.Errorf("%d. %q: expected error kind %v, got %v", i, tt.css, tt.kind, err)
		}
	}
	d, err := parse(properties.DeclarationParser{}, "--empty:")
	require.NoError(t, err, "custom properties may be empty")
	assert.Equal(t, "--empty:;", d.String())
}

func TestDeclarationList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.properties")
	defer teardown()
	//
	in := tokens.NewInput("color:red; ; margin : 0 !important; color: blue;padding:1px")
	decls, err := properties.DeclarationParser{}.ParseDeclarationList(in)
	require.NoError(t, err)
	require.Len(t, decls, 4)
	assert.Equal(t, []string{"color", "margin", "padding"}, decls.Names())
	c, ok := decls.Get("COLOR")
	require.True(t, ok)
	assert.Equal(t, "blue", c.Value.String())
	assert.Equal(t, "color:red;margin:0!important;color:blue;padding:1px;", tokens.CSSString(decls))
	//
	in = tokens.NewInput("color:red; @media print {}")
	_, err = properties.DeclarationParser{}.ParseDeclarationList(in)
	assert.True(t, csserr.Is(err, csserr.AtRuleNotAllowedInDeclarationList))
}

func TestImportantDeclarationWins(t *testing.T) {
	in := tokens.NewInput("color:red!important;color:blue")
	decls, err := properties.DeclarationParser{}.ParseDeclarationList(in)
	require.NoError(t, err)
	c, _ := decls.Get("color")
	assert.Equal(t, "red", c.Value.String())
}

func TestCompareDeclarations(t *testing.T) {
	a, _ := parse(properties.DeclarationParser{}, "color: red")
	b, _ := parse(properties.DeclarationParser{}, "COLOR:red")
	c, _ := parse(properties.DeclarationParser{}, "color:red !important")
	assert.True(t, a.Equal(b))
	assert.Equal(t, -1, properties.Compare(a, c))
	assert.Equal(t, 1, properties.Compare(c, a))
}

func TestCustomPropertyNamesAreNeverPrefixed(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	props := gopter.NewProperties(parameters)

	props.Property("'--' names are custom and unprefixed", prop.ForAll(
		func(prefix string, id string) bool {
			name := "--" + prefix + id
			d, err := parse(properties.DeclarationParser{}, name+": 1")
			if err != nil {
				t.Logf("%s: %v", name, err)
				return false
			}
			return d.HasCustomPropertyName() && !d.HasVendorPrefix() &&
				maybe.IsNothing(d.VendorPrefix) && d.Name == name
		},
		gen.OneConstOf("", "webkit-", "moz-", "ms-", "o-"),
		gen.Identifier(),
	))
	props.Property("known vendor prefixes are split off", prop.ForAll(
		func(prefix string, id string) bool {
			d, err := parse(properties.DeclarationParser{}, prefix+id+": 1")
			if err != nil {
				return false
			}
			id = strings.ToLower(id)
			return d.HasVendorPrefix() && !d.HasCustomPropertyName() &&
				d.Name == id && d.FullName() == prefix+id
		},
		gen.OneConstOf("-webkit-", "-moz-", "-ms-", "-o-", "-epub-", "-servo-"),
		gen.Identifier(),
	))
	props.TestingRun(t)
}
