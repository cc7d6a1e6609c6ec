package cssom

import (
	"io"

	"github.com/npillmayer/csskit/cssom/counterstyle"
	"github.com/npillmayer/csskit/cssom/media"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/cssom/supports"
	"github.com/npillmayer/csskit/tokens"
)

// CounterStyleRule is an @counter-style rule. The embedded counter style
// has been validated.
type CounterStyleRule struct {
	*counterstyle.CounterStyle
	location tokens.Location
}

func (*CounterStyleRule) isRule()                      {}
func (*CounterStyleRule) Kind() RuleKind               { return CounterStyleRuleKind }
func (r *CounterStyleRule) Location() tokens.Location { return r.location }

// MediaRule is an @media rule. Its rules apply for media matching any of
// the queries in Media.
type MediaRule struct {
	ruleContainer
	Media    media.MediaList
	location tokens.Location
}

func (*MediaRule) isRule()                      {}
func (*MediaRule) Kind() RuleKind               { return MediaRuleKind }
func (r *MediaRule) Location() tokens.Location { return r.location }

func (r *MediaRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("@media ")
	cw.Node(r.Media)
	cw.Char('{')
	cw.Node(&r.Rules)
	cw.Char('}')
	return cw.Err()
}

// SupportsRule is an @supports rule.
type SupportsRule struct {
	ruleContainer
	Condition supports.Condition
	location  tokens.Location
}

func (*SupportsRule) isRule()                      {}
func (*SupportsRule) Kind() RuleKind               { return SupportsRuleKind }
func (r *SupportsRule) Location() tokens.Location { return r.location }

func (r *SupportsRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("@supports ")
	cw.Node(r.Condition)
	cw.Char('{')
	cw.Node(&r.Rules)
	cw.Char('}')
	return cw.Err()
}

// FontFaceRule is an @font-face rule. Its descriptors are kept as
// declarations.
type FontFaceRule struct {
	Declarations properties.PropertyDeclarations
	location     tokens.Location
}

func (*FontFaceRule) isRule()                      {}
func (*FontFaceRule) Kind() RuleKind               { return FontFaceRuleKind }
func (r *FontFaceRule) Location() tokens.Location { return r.location }

func (r *FontFaceRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("@font-face{")
	cw.Node(r.Declarations)
	cw.Char('}')
	return cw.Err()
}

// PageRule is an @page rule. Selector is the page selector text, e.g.
// ":first", and empty if there is none.
type PageRule struct {
	Selector     string
	Declarations properties.PropertyDeclarations
	location     tokens.Location
}

func (*PageRule) isRule()                      {}
func (*PageRule) Kind() RuleKind               { return PageRuleKind }
func (r *PageRule) Location() tokens.Location { return r.location }

func (r *PageRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("@page")
	if r.Selector != "" {
		cw.Char(' ')
		cw.Text(r.Selector)
	}
	cw.Char('{')
	cw.Node(r.Declarations)
	cw.Char('}')
	return cw.Err()
}

// ImportRule is an @import rule.
type ImportRule struct {
	URL      string
	Media    media.MediaList // empty for all media
	location tokens.Location
}

func (*ImportRule) isRule()                      {}
func (*ImportRule) Kind() RuleKind               { return ImportRuleKind }
func (r *ImportRule) Location() tokens.Location { return r.location }

func (r *ImportRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("@import ")
	cw.Quoted(r.URL)
	if !r.Media.IsEmpty() {
		cw.Char(' ')
		cw.Node(r.Media)
	}
	cw.Char(';')
	return cw.Err()
}

var (
	_ HasCSSRules = (*MediaRule)(nil)
	_ HasCSSRules = (*SupportsRule)(nil)
)
