package cssom

import (
	"errors"
	"strings"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom/counterstyle"
	"github.com/npillmayer/csskit/cssom/media"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/cssom/supports"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/result"
	"github.com/npillmayer/csskit/tokens"
)

// Parse parses a stylesheet. It either returns a complete stylesheet or
// the first error found, as a *csserr.Error.
func Parse(css string, opts ...Option) (*Stylesheet, error) {
	conf := defaultConfig()
	for _, option := range opts {
		conf = option.config(conf)
	}
	in := tokens.NewInputWithLineOffset(css, conf.lineOffset)
	sheet := &Stylesheet{Namespaces: newNamespaces()}
	p := &ruleParser{conf: conf, ns: sheet.Namespaces}
	if err := collect(&ruleList{p: p, in: in}, &sheet.Rules); err != nil {
		tracer().Debugf("parse of stylesheet aborted: %v", err)
		return nil, err
	}
	u, ok := in.SourceMapURL()
	sheet.SourceMapURL = maybe.Of(u, ok)
	u, ok = in.SourceURL()
	sheet.SourceURL = maybe.Of(u, ok)
	tracer().Debugf("parsed stylesheet with %d rules", sheet.Rules.Len())
	return sheet, nil
}

// collect appends all rules of a rule list to rules. It stops at the
// first error.
func collect(l *ruleList, rules *CSSRules) error {
	for {
		item, ok := l.next()
		if !ok {
			return nil
		}
		var r Rule
		var err error
		switch m := item.Match(); m {
		case m.Ok(&r):
			rules.Append(r)
		case m.Err(&err):
			return err
		}
	}
}

// ruleList iterates over the rules of a rule list: either the top level of
// a stylesheet or the body of a conditional group rule.
type ruleList struct {
	p      *ruleParser
	in     *tokens.Input
	nested bool
	done   bool
}

// next returns the next rule of the list or an error. After an error, the
// list is done. ok is false if there are no more rules.
func (l *ruleList) next() (item result.Result[Rule], ok bool) {
	for !l.done {
		l.in.SkipWhitespace()
		if l.in.IsExhausted() {
			l.done = true
			break
		}
		r, err := l.p.parseRule(l.in, l.nested)
		if err != nil {
			l.done = true
			return result.Err[Rule](err), true
		}
		if r != nil { // nil for rules which are not kept, e.g. @charset
			return result.Ok(r), true
		}
	}
	return nil, false
}

// --- State machine ---------------------------------------------------------

type parserState uint8

const (
	stateStart parserState = iota
	stateImports
	stateNamespaces
	stateBody
)

var stateNames = [...]string{"Start", "Imports", "Namespaces", "Body"}

func (s parserState) String() string {
	return stateNames[s]
}

// ruleParser holds the state of one parse of a stylesheet. The namespace
// table is filled left to right while parsing.
type ruleParser struct {
	conf  config
	state parserState
	ns    *Namespaces
}

func (p *ruleParser) advance(s parserState) {
	if s != p.state {
		tracer().Debugf("parser state %s → %s", p.state, s)
		p.state = s
	}
}

var errPeek = errors.New("peek")

// peek returns the next token without consuming it.
func peek(in *tokens.Input) (tokens.Token, error) {
	var t tokens.Token
	err := in.Try(func(in *tokens.Input) error {
		var err error
		if t, err = in.Next(); err == nil {
			err = errPeek
		}
		return err
	})
	if err == errPeek {
		err = nil
	}
	return t, err
}

// parseRule parses the next rule. Rules which only change the parser's
// state are consumed and reported as a nil rule.
func (p *ruleParser) parseRule(in *tokens.Input, nested bool) (Rule, error) {
	t, err := peek(in)
	if err != nil {
		return nil, csserr.Wrap(err)
	}
	switch t.Kind {
	case tokens.CDO, tokens.CDC:
		if !nested {
			_, _ = in.Next()
			return nil, nil
		}
	case tokens.AtKeyword:
		_, _ = in.Next()
		return p.parseAtRule(t, in, nested)
	}
	if !nested {
		p.advance(stateBody)
	}
	return p.parseStyleRule(in, t.Location)
}

func (p *ruleParser) parseAtRule(t tokens.Token, in *tokens.Input, nested bool) (Rule, error) {
	tracer().Debugf("%s: @%s", t.Location, t.Value)
	prefix, name := properties.SplitVendorPrefix(strings.ToLower(t.Value))
	if !maybe.IsNothing(prefix) && name != "keyframes" {
		return nil, csserr.New(csserr.UnsupportedAtRule, t.Location, "@"+t.Value)
	}
	switch name {
	case "charset":
		if nested || p.state != stateStart {
			return nil, csserr.New(csserr.UnexpectedCharsetRule, t.Location, "")
		}
		err := in.ParseUntilAfter(tokens.DelimSemicolon, func(in *tokens.Input) error {
			_, err := in.ExpectString()
			return err
		})
		p.advance(stateImports)
		return nil, csserr.Wrap(err)
	case "import":
		if nested {
			return nil, csserr.New(csserr.RuleNotAllowedHere, t.Location, "@import")
		}
		if p.state > stateImports {
			return nil, csserr.New(csserr.ImportAfterOtherRules, t.Location, "")
		}
		p.advance(stateImports)
		return p.parseImport(in, t.Location)
	case "namespace":
		if nested {
			return nil, csserr.New(csserr.RuleNotAllowedHere, t.Location, "@namespace")
		}
		if p.state > stateNamespaces {
			return nil, csserr.New(csserr.NamespaceAfterOtherRules, t.Location, "")
		}
		p.advance(stateNamespaces)
		return nil, p.parseNamespace(in)
	}
	if !nested {
		p.advance(stateBody)
	}
	switch name {
	case "counter-style":
		cs, err := counterstyle.Parse(in)
		if err != nil {
			return nil, err
		}
		return &CounterStyleRule{CounterStyle: cs, location: t.Location}, nil
	case "media":
		return p.parseMedia(in, t.Location)
	case "supports":
		return p.parseSupports(in, t.Location)
	case "keyframes":
		return p.parseKeyframes(in, prefix, t.Location)
	case "font-face":
		return p.parseFontFace(in, t.Location)
	case "page":
		return p.parsePage(in, t.Location)
	}
	tracer().Debugf("%s: unsupported at-rule @%s", t.Location, t.Value)
	return nil, csserr.New(csserr.UnsupportedAtRule, t.Location, "@"+t.Value)
}

// parseBlock parses “prelude { body }”.
func parseBlock(in *tokens.Input, prelude, body func(*tokens.Input) error) error {
	if err := in.ParseUntilBefore(tokens.DelimCurly, prelude); err != nil {
		return csserr.Wrap(err)
	}
	if err := in.ExpectCurlyBlock(); err != nil {
		return csserr.Wrap(err)
	}
	return csserr.Wrap(in.ParseNestedBlock(body))
}

func (p *ruleParser) parseNestedRules(in *tokens.Input, rules *CSSRules) error {
	return collect(&ruleList{p: p, in: in, nested: true}, rules)
}

func (p *ruleParser) parseStyleRule(in *tokens.Input, loc tokens.Location) (Rule, error) {
	r := &StyleRule{location: loc}
	err := parseBlock(in, func(in *tokens.Input) (err error) {
		r.Selectors, err = parseSelectorList(in, p.ns, p.conf.validateSelectors)
		return
	}, func(in *tokens.Input) (err error) {
		r.Declarations, err = properties.DeclarationParser{}.ParseDeclarationList(in)
		return
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *ruleParser) parseImport(in *tokens.Input, loc tokens.Location) (Rule, error) {
	r := &ImportRule{location: loc}
	err := in.ParseUntilAfter(tokens.DelimSemicolon, func(in *tokens.Input) (err error) {
		if r.URL, err = in.ExpectURLOrString(); err != nil {
			return
		}
		r.Media, err = media.ParseMediaList(in)
		return
	})
	if err != nil {
		return nil, csserr.Wrap(err)
	}
	return r, nil
}

// @namespace <prefix>? [ <string> | <url> ] ;
func (p *ruleParser) parseNamespace(in *tokens.Input) error {
	err := in.ParseUntilAfter(tokens.DelimSemicolon, func(in *tokens.Input) error {
		prefix := maybe.Nothing[string]()
		if name, err := tokens.Try(in, (*tokens.Input).ExpectIdent); err == nil {
			prefix = maybe.Just(name)
		}
		uri, err := in.ExpectURLOrString()
		if err != nil {
			return err
		}
		tracer().Debugf("namespace %s → %q", maybe.OrElse(prefix, "(default)"), uri)
		p.ns.declare(prefix, uri)
		return nil
	})
	return csserr.Wrap(err)
}

func (p *ruleParser) parseMedia(in *tokens.Input, loc tokens.Location) (Rule, error) {
	r := &MediaRule{location: loc}
	err := parseBlock(in, func(in *tokens.Input) (err error) {
		r.Media, err = media.ParseMediaList(in)
		return
	}, func(in *tokens.Input) error {
		return p.parseNestedRules(in, &r.Rules)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *ruleParser) parseSupports(in *tokens.Input, loc tokens.Location) (Rule, error) {
	r := &SupportsRule{location: loc}
	err := parseBlock(in, func(in *tokens.Input) (err error) {
		r.Condition, err = supports.ParseCondition(in)
		return
	}, func(in *tokens.Input) error {
		return p.parseNestedRules(in, &r.Rules)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *ruleParser) parseKeyframes(in *tokens.Input, prefix maybe.Maybe[properties.VendorPrefix],
	loc tokens.Location) (Rule, error) {
	//
	r := &KeyframesRule{VendorPrefix: prefix, location: loc}
	err := parseBlock(in, func(in *tokens.Input) (err error) {
		r.Name, err = parseKeyframesName(in)
		return
	}, func(in *tokens.Input) error {
		for !in.IsExhausted() {
			k := &Keyframe{}
			err := parseBlock(in, func(in *tokens.Input) (err error) {
				k.Selectors, err = parseKeyframeSelectors(in)
				return
			}, func(in *tokens.Input) (err error) {
				k.Declarations, err = properties.DeclarationParser{InKeyframes: true}.ParseDeclarationList(in)
				return
			})
			if err != nil {
				return err
			}
			r.Keyframes = append(r.Keyframes, k)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func parseKeyframesName(in *tokens.Input) (string, error) {
	t, err := in.Next()
	if err != nil {
		return "", err
	}
	switch t.Kind {
	case tokens.String:
		return t.Value, nil
	case tokens.Ident:
		if _, wide := properties.WideKeywordFromName(t.Value); !wide && !t.IsIdent("none") {
			return t.Value, nil
		}
	}
	return "", tokens.Unexpected(t, "keyframes name")
}

// <keyframe-selector># with <keyframe-selector> = from | to | <percentage>
func parseKeyframeSelectors(in *tokens.Input) ([]KeyframeSelector, error) {
	var sels []KeyframeSelector
	for {
		t, err := in.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case t.IsIdent("from"):
			sels = append(sels, 0)
		case t.IsIdent("to"):
			sels = append(sels, 100)
		case t.Kind == tokens.Percentage && t.Number >= 0 && t.Number <= 100:
			sels = append(sels, KeyframeSelector(t.Number))
		default:
			return nil, csserr.New(csserr.InvalidKeyframeSelector, t.Location, t.Raw)
		}
		if in.IsExhausted() {
			return sels, nil
		}
		if err = in.ExpectComma(); err != nil {
			return nil, err
		}
	}
}

func (p *ruleParser) parseFontFace(in *tokens.Input, loc tokens.Location) (Rule, error) {
	r := &FontFaceRule{location: loc}
	err := parseBlock(in, func(*tokens.Input) error {
		return nil
	}, func(in *tokens.Input) (err error) {
		r.Declarations, err = properties.DeclarationParser{}.ParseDeclarationList(in)
		return
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *ruleParser) parsePage(in *tokens.Input, loc tokens.Location) (Rule, error) {
	r := &PageRule{location: loc}
	err := parseBlock(in, func(in *tokens.Input) error {
		toks, err := in.Rest()
		r.Selector = tokens.TokensString(toks)
		return err
	}, func(in *tokens.Input) (err error) {
		r.Declarations, err = properties.DeclarationParser{}.ParseDeclarationList(in)
		return
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
