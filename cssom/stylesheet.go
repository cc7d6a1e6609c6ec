package cssom

import (
	"io"
	"sort"

	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// Stylesheet is a parsed CSS stylesheet.
type Stylesheet struct {
	ruleContainer
	SourceMapURL maybe.Maybe[string] // from a '/*# sourceMappingURL=… */' comment
	SourceURL    maybe.Maybe[string] // from a '/*# sourceURL=… */' comment
	Namespaces   *Namespaces
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet.Rules.Len() == 0
}

// AppendRules appends the rules of another stylesheet.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	sheet.Rules.Append(other.Rules.Slice()...)
}

// ToCSS writes the stylesheet. If includeSourceURLs is set, source map and
// source URL directives are written first, each on a line of its own.
func (sheet *Stylesheet) ToCSS(w io.Writer, includeSourceURLs bool) error {
	cw := tokens.NewWriter(w)
	if includeSourceURLs {
		if u, ok := maybe.Value(sheet.SourceMapURL); ok {
			cw.Text("/*# sourceMappingURL=" + u + " */\n")
		}
		if u, ok := maybe.Value(sheet.SourceURL); ok {
			cw.Text("/*# sourceURL=" + u + " */\n")
		}
	}
	cw.Node(&sheet.Rules)
	return cw.Err()
}

// String renders the stylesheet without source URL directives.
func (sheet *Stylesheet) String() string {
	return String(&sheet.Rules)
}

// String renders a node to CSS.
func String(node tokens.Serializer) string {
	return tokens.CSSString(node)
}

var _ HasCSSRules = (*Stylesheet)(nil)

// --- Namespaces ------------------------------------------------------------

// Namespaces is the table of namespaces declared by @namespace rules.
type Namespaces struct {
	Default  maybe.Maybe[string] // URI of the default namespace
	prefixes map[string]string
}

func newNamespaces() *Namespaces {
	return &Namespaces{Default: maybe.Nothing[string](), prefixes: make(map[string]string)}
}

// Lookup returns the URI declared for a prefix.
func (ns *Namespaces) Lookup(prefix string) (string, bool) {
	if ns == nil {
		return "", false
	}
	uri, ok := ns.prefixes[prefix]
	return uri, ok
}

// Prefixes returns all declared prefixes, sorted.
func (ns *Namespaces) Prefixes() []string {
	if ns == nil {
		return nil
	}
	p := make([]string, 0, len(ns.prefixes))
	for prefix := range ns.prefixes {
		p = append(p, prefix)
	}
	sort.Strings(p)
	return p
}

// IsEmpty is true if no namespace has been declared.
func (ns *Namespaces) IsEmpty() bool {
	return ns == nil || maybe.IsNothing(ns.Default) && len(ns.prefixes) == 0
}

// declare records a namespace. A later declaration for the same prefix
// overrides an earlier one.
func (ns *Namespaces) declare(prefix maybe.Maybe[string], uri string) {
	if p, ok := maybe.Value(prefix); ok {
		ns.prefixes[p] = uri
		return
	}
	ns.Default = maybe.Just(uri)
}

// --- Options ---------------------------------------------------------------

type config struct {
	lineOffset        int
	validateSelectors bool
}

func defaultConfig() config {
	return config{validateSelectors: true}
}

// Option is a type to help configuring a parse.
type Option struct {
	config func(config) config
}

// LineOffset shifts all line numbers reported by the parser, e.g. for
// stylesheets embedded into an HTML document.
func LineOffset(n int) Option {
	return Option{config: func(c config) config {
		c.lineOffset = n
		return c
	}}
}

// ValidateSelectors decides about selectors cascadia cannot compile. If
// validation is switched off, such selectors are kept as text, but never
// match. Validation is on by default.
//
//     sheet, err := cssom.Parse(css, cssom.ValidateSelectors(false))
//
func ValidateSelectors(validate bool) Option {
	return Option{config: func(c config) config {
		c.validateSelectors = validate
		return c
	}}
}
