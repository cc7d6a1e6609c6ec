package supports

import (
	"strings"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/tokens"
)

// ParseCondition parses a supports condition, which has to make up all of in.
func ParseCondition(in *tokens.Input) (Condition, error) {
	c, err := parseCondition(in)
	if err != nil {
		return nil, csserr.Wrap(err)
	}
	if err = in.ExpectExhausted(); err != nil {
		return nil, csserr.Wrap(err)
	}
	return c, nil
}

func parseCondition(in *tokens.Input) (Condition, error) {
	if in.Try(func(in *tokens.Input) error { return in.ExpectIdentMatching("not") }) == nil {
		c, err := parseInParens(in)
		if err != nil {
			return nil, err
		}
		return Not{Condition: c}, nil
	}
	first, err := parseInParens(in)
	if err != nil {
		return nil, err
	}
	conds := []Condition{first}
	op := ""
	for !in.IsExhausted() {
		t, err := in.Next()
		if err != nil {
			return nil, err
		}
		if !t.IsIdent("and") && !t.IsIdent("or") {
			return nil, tokens.Unexpected(t, "'and' or 'or'")
		}
		next := strings.ToLower(t.Value)
		if op != "" && op != next {
			tracer().Debugf("%s: mixed 'and' and 'or'", t.Location)
			return nil, csserr.New(csserr.MixedSupportsOperators, t.Location, "")
		}
		op = next
		c, err := parseInParens(in)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	switch op {
	case "and":
		return And(conds), nil
	case "or":
		return Or(conds), nil
	}
	return first, nil
}

// <supports-in-parens> = ( <supports-condition> ) | <supports-feature> | <general-enclosed>
func parseInParens(in *tokens.Input) (Condition, error) {
	t, err := in.Next()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case tokens.LParen:
		var c Condition
		err = in.ParseNestedBlock(func(in *tokens.Input) error {
			c, err = parseParenContents(in)
			return err
		})
		return c, err
	case tokens.Function:
		g := GeneralEnclosed{Function: t.Value}
		err = in.ParseNestedBlock(func(in *tokens.Input) error {
			g.Tokens, err = in.Rest()
			return err
		})
		return g, err
	}
	return nil, tokens.Unexpected(t, "'('")
}

func parseParenContents(in *tokens.Input) (Condition, error) {
	c, err := tokens.Try(in, func(in *tokens.Input) (Condition, error) {
		c, err := parseCondition(in)
		if err == nil {
			err = in.ExpectExhausted()
		}
		return c, err
	})
	if err == nil {
		return Nested{Condition: c}, nil
	}
	if csserr.Is(err, csserr.MixedSupportsOperators) {
		return nil, err
	}
	var p properties.DeclarationParser
	if d, err := tokens.Try(in, p.ParseDeclaration); err == nil {
		return Declaration{Declaration: d}, nil
	}
	toks, err := in.Rest()
	if err != nil {
		return nil, err
	}
	return GeneralEnclosed{Tokens: toks}, nil
}
