package properties

import (
	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/tokens"
)

// DeclarationParser parses declarations. Inside of @keyframes,
// “!important” is not allowed.
type DeclarationParser struct {
	InKeyframes bool
}

// ParseDeclarationList parses the contents of a {}-block holding
// declarations. The first malformed declaration ends the parse.
func (p DeclarationParser) ParseDeclarationList(in *tokens.Input) (PropertyDeclarations, error) {
	var decls PropertyDeclarations
	err := ForEachDeclaration(in, func(name tokens.Token, in *tokens.Input) error {
		d, err := p.ParseValue(name.Value, in)
		if err != nil {
			return err
		}
		decls = append(decls, d)
		return nil
	})
	return decls, err
}

// ParseDeclaration parses a single “name: value [!important]”, which has to
// make up all of in. It is used where a declaration stands alone, e.g. in
// an @supports condition.
func (p DeclarationParser) ParseDeclaration(in *tokens.Input) (PropertyDeclaration, error) {
	name, err := in.ExpectIdent()
	if err != nil {
		return PropertyDeclaration{}, csserr.Wrap(err)
	}
	if err = in.ExpectColon(); err != nil {
		return PropertyDeclaration{}, csserr.Wrap(err)
	}
	return p.ParseValue(name, in)
}

// ParseValue parses the part of a declaration after the colon. in has to
// end where the declaration ends, i.e. before the ';'.
func (p DeclarationParser) ParseValue(name string, in *tokens.Input) (PropertyDeclaration, error) {
	start := in.Location()
	name = NormalizeName(name)
	decl := PropertyDeclaration{}
	decl.VendorPrefix, decl.Name = SplitVendorPrefix(name)
	err := in.ParseUntilBefore(tokens.DelimBang, func(in *tokens.Input) error {
		if kw, err := tokens.Try(in, parseWideKeyword); err == nil {
			decl.Value = kw
			return nil
		}
		toks, err := in.Rest()
		if err != nil {
			return err
		}
		decl.Value = SpecifiedValue{Tokens: toks}
		return nil
	})
	if err != nil {
		return decl, csserr.Wrap(err)
	}
	if v, ok := decl.Value.(SpecifiedValue); ok && v.IsEmpty() && !decl.HasCustomPropertyName() {
		return decl, csserr.New(csserr.EmptyPropertyValue, start, name)
	}
	bang := in.Location()
	if err = in.Try(parseImportant); err == nil {
		decl.Importance = Important
		if p.InKeyframes {
			tracer().Debugf("%s: !important for %s in keyframes", bang, name)
			return decl, csserr.New(csserr.ImportantNotAllowedInKeyframes, bang, name)
		}
	}
	if err = in.ExpectExhausted(); err != nil {
		return decl, csserr.Wrap(err)
	}
	return decl, nil
}

func parseImportant(in *tokens.Input) error {
	if err := in.ExpectDelim('!'); err != nil {
		return err
	}
	return in.ExpectIdentMatching("important")
}

// ForEachDeclaration iterates over the declarations of a declaration list,
// as found in the body of a style rule or of a descriptor-based at-rule.
// For every declaration, f is called with the ident token of the
// declaration's name and an input holding the tokens after the colon, up to
// the terminating ';'. f has to consume all of its input. At-rules in the
// list are an error.
func ForEachDeclaration(in *tokens.Input, f func(name tokens.Token, in *tokens.Input) error) error {
	for {
		t, err := in.Next()
		if err != nil {
			if e, ok := err.(*tokens.Error); ok && e.Kind == tokens.EndOfInput {
				return nil
			}
			return csserr.Wrap(err)
		}
		switch t.Kind {
		case tokens.Semicolon:
			continue
		case tokens.AtKeyword:
			return csserr.New(csserr.AtRuleNotAllowedInDeclarationList, t.Location, "@"+t.Value)
		case tokens.Ident:
		default:
			return csserr.Wrap(tokens.Unexpected(t, "declaration"))
		}
		if err = in.ExpectColon(); err != nil {
			return csserr.Wrap(err)
		}
		err = in.ParseUntilAfter(tokens.DelimSemicolon, func(in *tokens.Input) error {
			return f(t, in)
		})
		if err != nil {
			return csserr.Wrap(err)
		}
	}
}
