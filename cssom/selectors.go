package cssom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/tokens"
	"golang.org/x/net/html"
)

// SelectorList is the prelude of a style rule. It keeps the selectors'
// canonical text and, if cascadia could compile them, the compiled
// selector group.
type SelectorList struct {
	text  string
	group cascadia.SelectorGroup // nil if not compiled
}

// NewSelectorList compiles a selector list without namespace prefixes.
func NewSelectorList(text string) (SelectorList, error) {
	g, err := cascadia.ParseGroupWithPseudoElements(text)
	if err != nil {
		return SelectorList{}, csserr.Newf(csserr.InvalidSelector, tokens.Location{}, "%s: %v", text, err)
	}
	return SelectorList{text: text, group: g}, nil
}

func (sl SelectorList) String() string {
	return sl.text
}

func (sl SelectorList) ToCSS(w io.Writer) error {
	_, err := io.WriteString(w, sl.text)
	return err
}

// Texts returns the text of each selector of the list. Commas nested in
// blocks or strings do not separate selectors.
func (sl SelectorList) Texts() []string {
	in := tokens.NewInput(sl.text)
	var sels []string
	for !in.IsExhausted() {
		err := in.ParseUntilAfter(tokens.DelimComma, func(in *tokens.Input) error {
			toks, err := in.Rest()
			if len(toks) > 0 {
				sels = append(sels, tokens.TokensString(toks))
			}
			return err
		})
		if err != nil {
			// text is the parser's rendering of valid tokens
			tracer().Errorf("cannot split selector list %q: %v", sl.text, err)
			return []string{sl.text}
		}
	}
	return sels
}

// IsCompiled is false for selectors cascadia does not understand, which
// have been kept because selector validation was switched off.
func (sl SelectorList) IsCompiled() bool {
	return sl.group != nil
}

// Len returns the number of selectors in the list.
func (sl SelectorList) Len() int {
	return len(sl.group)
}

// Matches reports wether any of the selectors matches n.
func (sl SelectorList) Matches(n *html.Node) bool {
	return sl.group != nil && sl.group.Match(n)
}

// Specificity returns the highest specificity of all selectors matching n.
func (sl SelectorList) Specificity(n *html.Node) (spec cascadia.Specificity, ok bool) {
	for _, sel := range sl.group {
		if sel.Match(n) {
			if s := sel.Specificity(); !ok || spec.Less(s) {
				spec, ok = s, true
			}
		}
	}
	return
}

// parseSelectorList parses the prelude of a style rule. Namespace prefixes
// are checked against ns and stripped from the text handed to cascadia,
// which does not support them.
func parseSelectorList(in *tokens.Input, ns *Namespaces, validate bool) (SelectorList, error) {
	loc := in.Location()
	toks, err := in.Rest()
	if err != nil {
		return SelectorList{}, csserr.Wrap(err)
	}
	if len(toks) == 0 {
		return SelectorList{}, csserr.New(csserr.InvalidSelector, loc, "empty selector")
	}
	var compile strings.Builder
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if i+1 < len(toks) && toks[i+1].IsDelim('|') && (t.Kind == tokens.Ident || t.IsDelim('*')) {
			if t.Kind == tokens.Ident {
				if _, ok := ns.Lookup(t.Value); !ok {
					return SelectorList{}, csserr.New(csserr.UnknownNamespacePrefix, t.Location, t.Value)
				}
			}
			i++ // skip '|'
			continue
		}
		if t.IsDelim('|') { // '|E', element without a namespace
			continue
		}
		if t.Kind == tokens.Whitespace {
			compile.WriteByte(' ')
			continue
		}
		compile.WriteString(t.Raw)
	}
	text := tokens.TokensString(toks)
	g, err := cascadia.ParseGroupWithPseudoElements(compile.String())
	if err != nil {
		if validate {
			tracer().Debugf("%s: invalid selector %q: %v", loc, text, err)
			return SelectorList{}, csserr.Newf(csserr.InvalidSelector, loc, "%s: %v", text, err)
		}
		g = nil
	}
	return SelectorList{text: text, group: g}, nil
}
