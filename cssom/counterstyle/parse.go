package counterstyle

import (
	"strings"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// Parse parses an @counter-style rule after its at-keyword, i.e. the name
// of the style and the block of descriptors.
func Parse(in *tokens.Input) (*CounterStyle, error) {
	in.SkipWhitespace()
	loc := in.Location()
	name, err := parseRuleName(in)
	if err != nil {
		return nil, err
	}
	if err = in.ExpectCurlyBlock(); err != nil {
		return nil, csserr.Wrap(err)
	}
	var d Descriptors
	err = in.ParseNestedBlock(func(in *tokens.Input) error {
		return parseDescriptors(in, &d)
	})
	if err != nil {
		return nil, csserr.Wrap(err)
	}
	return newAt(name, loc, d)
}

// parseRuleName parses the name of a style in the prelude of the rule.
// Besides the names which are never allowed, 'decimal' and 'disc' cannot
// be redefined.
func parseRuleName(in *tokens.Input) (Name, error) {
	t, err := in.Next()
	if err != nil {
		return "", csserr.Wrap(err)
	}
	if t.Kind != tokens.Ident {
		return "", csserr.Wrap(tokens.Unexpected(t, "counter style name"))
	}
	if t.IsIdent("decimal") || t.IsIdent("disc") || !isValidName(t.Value) {
		return "", csserr.New(csserr.CounterStyleNameNotAllowed, t.Location, t.Value)
	}
	return Name(t.Value), nil
}

// ParseName parses a <counter-style-name>, as referenced by other
// descriptors or properties.
func ParseName(in *tokens.Input) (Name, error) {
	t, err := in.Next()
	if err != nil {
		return "", err
	}
	if t.Kind != tokens.Ident {
		return "", tokens.Unexpected(t, "counter style name")
	}
	if !isValidName(t.Value) {
		return "", csserr.New(csserr.CounterStyleNameNotAllowed, t.Location, t.Value)
	}
	return Name(t.Value), nil
}

// isValidName excludes 'none' and the keywords which are not valid
// custom identifiers.
func isValidName(name string) bool {
	if strings.EqualFold(name, "none") || strings.EqualFold(name, "default") {
		return false
	}
	_, wide := properties.WideKeywordFromName(name)
	return !wide
}

// parseDescriptors parses the body of the rule. A later descriptor of the
// same name replaces an earlier one.
func parseDescriptors(in *tokens.Input, d *Descriptors) error {
	return properties.ForEachDeclaration(in, func(name tokens.Token, in *tokens.Input) error {
		var err error
		switch strings.ToLower(name.Value) {
		case "system":
			d.System, err = parseValue(in, parseSystem)
		case "negative":
			d.Negative, err = parseValue(in, parseNegative)
		case "prefix":
			d.Prefix, err = parseValue(in, parseSymbol)
		case "suffix":
			d.Suffix, err = parseValue(in, parseSymbol)
		case "range":
			d.Range, err = parseValue(in, parseRanges)
		case "pad":
			d.Pad, err = parseValue(in, parsePad)
		case "fallback":
			d.Fallback, err = parseValue(in, ParseName)
		case "symbols":
			d.Symbols, err = parseValue(in, parseSymbols)
		case "additive-symbols":
			d.AdditiveSymbols, err = parseValue(in, parseAdditiveSymbols)
		case "speak-as":
			d.SpeakAs, err = parseValue(in, parseSpeakAs)
		default:
			tracer().Debugf("%s: unknown descriptor %q", name.Location, name.Value)
			return csserr.New(csserr.UnsupportedCounterStyleDescriptor, name.Location, name.Value)
		}
		return err
	})
}

func parseValue[T any](in *tokens.Input, f func(*tokens.Input) (T, error)) (maybe.Maybe[T], error) {
	v, err := f(in)
	if err != nil {
		return maybe.Nothing[T](), csserr.Wrap(err)
	}
	return maybe.Just(v), nil
}

// <symbol> = <string> | <custom-ident>
func parseSymbol(in *tokens.Input) (Symbol, error) {
	t, err := in.Next()
	if err != nil {
		return Symbol{}, err
	}
	switch t.Kind {
	case tokens.String:
		return StringSymbol(t.Value), nil
	case tokens.Ident:
		if _, wide := properties.WideKeywordFromName(t.Value); !wide && !strings.EqualFold(t.Value, "default") {
			return IdentSymbol(t.Value), nil
		}
	}
	return Symbol{}, tokens.Unexpected(t, "symbol")
}

// cyclic | numeric | alphabetic | symbolic | additive |
// [fixed <integer>?] | [extends <counter-style-name>]
func parseSystem(in *tokens.Input) (System, error) {
	t, err := in.Next()
	if err != nil {
		return System{}, err
	}
	kind, ok := systemKindByName[strings.ToLower(t.Value)]
	if t.Kind != tokens.Ident || !ok {
		return System{}, tokens.Unexpected(t, "counter style system")
	}
	switch kind {
	case Fixed:
		first, err := tokens.Try(in, (*tokens.Input).ExpectInteger)
		if err == nil {
			return FixedSystem(first), nil
		}
		return SimpleSystem(Fixed), nil
	case Extends:
		name, err := ParseName(in)
		if err != nil {
			return System{}, err
		}
		return ExtendsSystem(name), nil
	}
	return SimpleSystem(kind), nil
}

// <symbol> <symbol>?
func parseNegative(in *tokens.Input) (Negative, error) {
	before, err := parseSymbol(in)
	if err != nil {
		return Negative{}, err
	}
	after, err := tokens.Try(in, parseSymbol)
	return Negative{Before: before, After: maybe.Of(after, err == nil)}, nil
}

// [ [ <integer> | infinite ]{2} ]# | auto
func parseRanges(in *tokens.Input) (Ranges, error) {
	if in.Try(func(in *tokens.Input) error { return in.ExpectIdentMatching("auto") }) == nil {
		return Ranges{}, nil
	}
	var ranges Ranges
	for {
		loc := in.Location()
		start, err := parseRangeBound(in)
		if err != nil {
			return nil, err
		}
		end, err := parseRangeBound(in)
		if err != nil {
			return nil, err
		}
		r := Range{Start: start, End: end}
		s, sok := maybe.Value(start)
		e, eok := maybe.Value(end)
		if sok && eok && s > e {
			return nil, csserr.Newf(csserr.InvalidCounterStyleDescriptor, loc,
				"range start %d greater than end %d", s, e)
		}
		ranges = append(ranges, r)
		if in.IsExhausted() {
			return ranges, nil
		}
		if err = in.ExpectComma(); err != nil {
			return nil, err
		}
	}
}

func parseRangeBound(in *tokens.Input) (maybe.Maybe[int], error) {
	infinite := in.Try(func(in *tokens.Input) error {
		return in.ExpectIdentMatching("infinite")
	})
	if infinite == nil {
		return maybe.Nothing[int](), nil
	}
	n, err := in.ExpectInteger()
	if err != nil {
		return nil, err
	}
	return maybe.Just(n), nil
}

// <integer [0,∞]> && <symbol>
func parsePad(in *tokens.Input) (Pad, error) {
	n, sym, err := parseWeightedSymbol(in)
	return Pad{Width: n, Symbol: sym}, err
}

// <symbol>+
func parseSymbols(in *tokens.Input) (Symbols, error) {
	var syms Symbols
	for {
		s, err := parseSymbol(in)
		if err != nil {
			return nil, err
		}
		syms = append(syms, s)
		if in.IsExhausted() {
			return syms, nil
		}
	}
}

// [ <integer [0,∞]> && <symbol> ]#
func parseAdditiveSymbols(in *tokens.Input) (AdditiveSymbols, error) {
	var syms AdditiveSymbols
	for {
		loc := in.Location()
		weight, sym, err := parseWeightedSymbol(in)
		if err != nil {
			return nil, err
		}
		if n := len(syms); n > 0 && weight >= syms[n-1].Weight {
			return nil, csserr.Newf(csserr.InvalidCounterStyleDescriptor, loc,
				"additive symbol weights must be decreasing, %d follows %d", weight, syms[n-1].Weight)
		}
		syms = append(syms, AdditiveSymbol{Weight: weight, Symbol: sym})
		if in.IsExhausted() {
			return syms, nil
		}
		if err = in.ExpectComma(); err != nil {
			return nil, err
		}
	}
}

// parseWeightedSymbol parses a non-negative integer and a symbol, in
// either order.
func parseWeightedSymbol(in *tokens.Input) (int, Symbol, error) {
	loc := in.Location()
	n, err := tokens.Try(in, (*tokens.Input).ExpectInteger)
	var sym Symbol
	if err == nil {
		if sym, err = parseSymbol(in); err != nil {
			return 0, sym, err
		}
	} else {
		if sym, err = parseSymbol(in); err != nil {
			return 0, sym, err
		}
		if n, err = in.ExpectInteger(); err != nil {
			return 0, sym, err
		}
	}
	if n < 0 {
		return 0, sym, csserr.Newf(csserr.InvalidCounterStyleDescriptor, loc, "negative integer %d", n)
	}
	return n, sym, nil
}

// auto | bullets | numbers | words | spell-out | <counter-style-name>
func parseSpeakAs(in *tokens.Input) (SpeakAs, error) {
	t, err := in.Next()
	if err != nil {
		return SpeakAs{}, err
	}
	if t.Kind == tokens.Ident {
		if kind, ok := speakAsByName[strings.ToLower(t.Value)]; ok {
			return SpeakAs{Kind: kind}, nil
		}
		if isValidName(t.Value) {
			return SpeakAs{Kind: SpeakLikeStyle, Style: Name(t.Value)}, nil
		}
	}
	return SpeakAs{}, tokens.Unexpected(t, "speak-as value")
}
