package cssom

import (
	"io"

	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/tokens"
	"golang.org/x/net/html"
)

// StyleRule is a qualified rule: selectors plus a block of declarations.
type StyleRule struct {
	Selectors    SelectorList
	Declarations properties.PropertyDeclarations
	location     tokens.Location
}

func (*StyleRule) isRule()                      {}
func (*StyleRule) Kind() RuleKind               { return StyleRuleKind }
func (r *StyleRule) Location() tokens.Location { return r.location }

// Selector returns the prelude / selectors of the rule.
func (r *StyleRule) Selector() string {
	return r.Selectors.String()
}

// Properties returns the property names of a rule, e.g. "margin-top",
// including vendor prefixes, in order of appearance.
func (r *StyleRule) Properties() []string {
	return r.Declarations.Names()
}

// Value returns the canonical text of the value for property key, e.g.
// "15px". If key is declared more than once, the declaration winning in
// the cascade is used.
func (r *StyleRule) Value(key string) string {
	if d, ok := r.Declarations.Get(key); ok && d.Value != nil {
		return d.Value.String()
	}
	return ""
}

// IsImportant returns true if a property key is marked as important ("!").
func (r *StyleRule) IsImportant(key string) bool {
	d, ok := r.Declarations.Get(key)
	return ok && d.IsImportant()
}

// Matches reports wether the rule's selectors match an HTML element node.
func (r *StyleRule) Matches(n *html.Node) bool {
	return r.Selectors.Matches(n)
}

func (r *StyleRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Node(r.Selectors)
	cw.Char('{')
	cw.Node(r.Declarations)
	cw.Char('}')
	return cw.Err()
}
