package counterstyle

import (
	"io"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// Descriptors holds the descriptors of a counter style as specified. A nil
// field is treated like Nothing, i.e. as not specified.
type Descriptors struct {
	System          maybe.Maybe[System]
	Negative        maybe.Maybe[Negative]
	Prefix          maybe.Maybe[Symbol]
	Suffix          maybe.Maybe[Symbol]
	Range           maybe.Maybe[Ranges]
	Pad             maybe.Maybe[Pad]
	Fallback        maybe.Maybe[Name]
	Symbols         maybe.Maybe[Symbols]
	AdditiveSymbols maybe.Maybe[AdditiveSymbols]
	SpeakAs         maybe.Maybe[SpeakAs]
}

// CounterStyle is a validated @counter-style rule.
type CounterStyle struct {
	name     Name
	location tokens.Location
	desc     Descriptors
}

// New creates a counter style from a set of descriptors, which have to
// satisfy the constraints between a style's system and its symbols.
func New(name Name, d Descriptors) (*CounterStyle, error) {
	return newAt(name, tokens.Location{}, d)
}

func newAt(name Name, loc tokens.Location, d Descriptors) (*CounterStyle, error) {
	cs := &CounterStyle{name: name, location: loc, desc: d}
	if err := cs.validate(); err != nil {
		tracer().Debugf("counter style %s rejected: %v", name, err)
		return nil, err
	}
	return cs, nil
}

// validate checks the descriptors against the effective system. The checks
// run in a fixed order and the first failing one is reported.
func (cs *CounterStyle) validate() error {
	sys := cs.System()
	_, hasSymbols := maybe.Value(cs.desc.Symbols)
	_, hasAdditive := maybe.Value(cs.desc.AdditiveSymbols)
	detail := string(cs.name) + ": " + sys.Kind.String()
	switch {
	case sys.NeedsSymbols() && !hasSymbols:
		return csserr.New(csserr.CounterStyleWithoutSymbols, cs.location, detail)
	case (sys.Kind == Alphabetic || sys.Kind == Numeric) && len(maybe.OrElse(cs.desc.Symbols, nil)) < 2:
		return csserr.New(csserr.CounterStyleNotEnoughSymbols, cs.location, detail)
	case sys.Kind == Additive && !hasAdditive:
		return csserr.New(csserr.CounterStyleWithoutAdditiveSymbols, cs.location, detail)
	case sys.Kind == Extends && hasSymbols:
		return csserr.New(csserr.CounterStyleExtendsWithSymbols, cs.location, detail)
	case sys.Kind == Extends && hasAdditive:
		return csserr.New(csserr.CounterStyleExtendsWithAdditiveSymbols, cs.location, detail)
	}
	return nil
}

// Name returns the name of the counter style.
func (cs *CounterStyle) Name() Name {
	return cs.name
}

// Location is the position of the style's name in the input. It is the zero
// location for styles created with New.
func (cs *CounterStyle) Location() tokens.Location {
	return cs.location
}

// Specified returns the descriptors as specified by the author.
func (cs *CounterStyle) Specified() Descriptors {
	return cs.desc
}

// System returns the effective system, which defaults to 'symbolic'.
func (cs *CounterStyle) System() System {
	return maybe.OrElse(cs.desc.System, SimpleSystem(Symbolic))
}

// Negative returns the effective 'negative' descriptor, which defaults to
// "-".
func (cs *CounterStyle) Negative() Negative {
	return maybe.OrElse(cs.desc.Negative, Negative{
		Before: StringSymbol("-"),
		After:  maybe.Nothing[Symbol](),
	})
}

// Prefix returns the effective prefix, which defaults to the empty string.
func (cs *CounterStyle) Prefix() Symbol {
	return maybe.OrElse(cs.desc.Prefix, StringSymbol(""))
}

// Suffix returns the effective suffix, which defaults to ". ".
func (cs *CounterStyle) Suffix() Symbol {
	return maybe.OrElse(cs.desc.Suffix, StringSymbol(". "))
}

// Range returns the effective range, which defaults to 'auto'.
func (cs *CounterStyle) Range() Ranges {
	return maybe.OrElse(cs.desc.Range, Ranges{})
}

// Pad returns the effective padding, which defaults to no padding.
func (cs *CounterStyle) Pad() Pad {
	return maybe.OrElse(cs.desc.Pad, Pad{Width: 0, Symbol: StringSymbol("")})
}

// Fallback returns the effective fallback style, which defaults to
// 'decimal'.
func (cs *CounterStyle) Fallback() Name {
	return maybe.OrElse(cs.desc.Fallback, Decimal)
}

// Symbols returns the symbols, if specified. There is no default.
func (cs *CounterStyle) Symbols() (Symbols, bool) {
	return maybe.Value(cs.desc.Symbols)
}

// AdditiveSymbols returns the additive symbols, if specified. There is no
// default.
func (cs *CounterStyle) AdditiveSymbols() (AdditiveSymbols, bool) {
	return maybe.Value(cs.desc.AdditiveSymbols)
}

// SpeakAs returns the effective 'speak-as' descriptor, which defaults to
// 'auto'.
func (cs *CounterStyle) SpeakAs() SpeakAs {
	return maybe.OrElse(cs.desc.SpeakAs, SpeakAs{Kind: SpeakAuto})
}

// ToCSS writes the rule, including only the descriptors which have been
// specified.
func (cs *CounterStyle) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("@counter-style ")
	cw.Node(cs.name)
	cw.Char('{')
	cs.EachSpecified(func(descriptor string, value tokens.Serializer) {
		cw.Text(descriptor)
		cw.Char(':')
		cw.Node(value)
		cw.Char(';')
	})
	cw.Char('}')
	return cw.Err()
}

// EachSpecified calls f for every descriptor which has been specified, in
// canonical order.
func (cs *CounterStyle) EachSpecified(f func(descriptor string, value tokens.Serializer)) {
	ifSpecified(f, "system", cs.desc.System)
	ifSpecified(f, "negative", cs.desc.Negative)
	ifSpecified(f, "prefix", cs.desc.Prefix)
	ifSpecified(f, "suffix", cs.desc.Suffix)
	ifSpecified(f, "range", cs.desc.Range)
	ifSpecified(f, "pad", cs.desc.Pad)
	ifSpecified(f, "fallback", cs.desc.Fallback)
	ifSpecified(f, "symbols", cs.desc.Symbols)
	ifSpecified(f, "additive-symbols", cs.desc.AdditiveSymbols)
	ifSpecified(f, "speak-as", cs.desc.SpeakAs)
}

func ifSpecified[T tokens.Serializer](f func(string, tokens.Serializer), name string, value maybe.Maybe[T]) {
	if v, ok := maybe.Value(value); ok {
		f(name, v)
	}
}
