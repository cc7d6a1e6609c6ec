package media

import (
	"errors"
	"strings"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// featureParser parses the contents of the parentheses of an expression for
// one feature. The feature's name has been looked up beforehand; prefix is
// "min-", "max-" or empty. If the name is not the first token, the
// expression is in range syntax with a leading value.
type featureParser interface {
	parse(in *tokens.Input, prefix string, valueFirst bool) (Expression, error)
	feature() Feature
}

type rangeFeature[T Value] struct {
	f     Feature
	value func(*tokens.Input) (T, error)
	wrap  func(Range[T]) Expression
}

type keywordFeature[K keyword] struct {
	f     Feature
	names []string
	wrap  func(K) Expression
}

var features = map[string]featureParser{}

func init() {
	for _, p := range []featureParser{
		rangeFeature[Length]{FeatureWidth, parseLength, func(r Range[Length]) Expression { return Width{r} }},
		rangeFeature[Length]{FeatureHeight, parseLength, func(r Range[Length]) Expression { return Height{r} }},
		rangeFeature[Ratio]{FeatureAspectRatio, parseRatio, func(r Range[Ratio]) Expression { return AspectRatio{r} }},
		rangeFeature[Resolution]{FeatureResolution, parseResolution, func(r Range[Resolution]) Expression { return ResolutionExpr{r} }},
		rangeFeature[ColorBitDepth]{FeatureColor, parseUint[ColorBitDepth], func(r Range[ColorBitDepth]) Expression { return Color{r} }},
		rangeFeature[ColorIndex]{FeatureColorIndex, parseUint[ColorIndex], func(r Range[ColorIndex]) Expression { return ColorIndexExpr{r} }},
		rangeFeature[MonochromeBitDepth]{FeatureMonochrome, parseUint[MonochromeBitDepth], func(r Range[MonochromeBitDepth]) Expression { return Monochrome{r} }},
		keywordFeature[OrientationValue]{FeatureOrientation, orientationNames, func(v OrientationValue) Expression { return Orientation{v} }},
		keywordFeature[ScanValue]{FeatureScan, scanNames, func(v ScanValue) Expression { return Scan{v} }},
		keywordFeature[GridValue]{FeatureGrid, gridNames, func(v GridValue) Expression { return Grid{v} }},
		keywordFeature[UpdateValue]{FeatureUpdate, updateNames, func(v UpdateValue) Expression { return Update{v} }},
		keywordFeature[OverflowBlockValue]{FeatureOverflowBlock, overflowBlockNames, func(v OverflowBlockValue) Expression { return OverflowBlock{v} }},
		keywordFeature[OverflowInlineValue]{FeatureOverflowInline, overflowInlineNames, func(v OverflowInlineValue) Expression { return OverflowInline{v} }},
		keywordFeature[ColorGamutValue]{FeatureColorGamut, colorGamutNames, func(v ColorGamutValue) Expression { return ColorGamut{v} }},
		keywordFeature[PointerValue]{FeaturePointer, pointerNames, func(v PointerValue) Expression { return Pointer{v} }},
		keywordFeature[HoverValue]{FeatureHover, hoverNames, func(v HoverValue) Expression { return Hover{v} }},
		keywordFeature[PointerValue]{FeatureAnyPointer, pointerNames, func(v PointerValue) Expression { return AnyPointer{v} }},
		keywordFeature[HoverValue]{FeatureAnyHover, hoverNames, func(v HoverValue) Expression { return AnyHover{v} }},
		keywordFeature[Transform3DValue]{FeatureTransform3D, transform3DNames, func(v Transform3DValue) Expression { return Transform3D{v} }},
	} {
		features[p.feature().String()] = p
	}
}

func (rf rangeFeature[T]) feature() Feature   { return rf.f }
func (kf keywordFeature[K]) feature() Feature { return kf.f }

// ParseExpression parses a parenthesized media feature expression.
func ParseExpression(in *tokens.Input) (Expression, error) {
	if err := in.ExpectParenBlock(); err != nil {
		return nil, csserr.Wrap(err)
	}
	var expr Expression
	err := in.ParseNestedBlock(func(in *tokens.Input) error {
		name, valueFirst, err := findFeatureName(in)
		if err != nil {
			return err
		}
		lower := strings.ToLower(name.Value)
		prefix := ""
		p, ok := features[lower]
		if !ok {
			for _, pre := range []string{"min-", "max-"} {
				if strings.HasPrefix(lower, pre) {
					prefix = pre
					p, ok = features[lower[len(pre):]]
				}
			}
		}
		if !ok {
			tracer().Debugf("%s: unsupported media feature %q", name.Location, name.Value)
			return csserr.New(csserr.UnsupportedMediaFeature, name.Location, name.Value)
		}
		if prefix != "" && !p.feature().IsRangeable() {
			return csserr.New(csserr.MediaFeatureNotRangeable, name.Location, name.Value)
		}
		if prefix != "" && valueFirst {
			return tokens.Unexpected(name, "media feature name without prefix")
		}
		expr, err = p.parse(in, prefix, valueFirst)
		return err
	})
	if err != nil {
		return nil, csserr.Wrap(err)
	}
	return expr, nil
}

var errRewind = errors.New("rewind")

// findFeatureName looks ahead for the first ident in an expression without
// consuming anything. valueFirst is true if other tokens precede it.
func findFeatureName(in *tokens.Input) (name tokens.Token, valueFirst bool, err error) {
	err = in.Try(func(in *tokens.Input) error {
		for {
			t, err := in.Next()
			if err != nil {
				return err
			}
			if t.Kind == tokens.Ident {
				name = t
				return errRewind
			}
			valueFirst = true
		}
	})
	if err == errRewind {
		err = nil
	}
	if err != nil {
		return name, false, tokens.Unexpected(tokens.Token{Kind: tokens.EOF, Location: in.Location()}, "media feature")
	}
	return name, valueFirst, nil
}

// --- Range syntax ----------------------------------------------------------

type comparison uint8

const (
	lt comparison = iota
	le
	gt
	ge
	eq
)

func (c comparison) isLess() bool    { return c == lt || c == le }
func (c comparison) isGreater() bool { return c == gt || c == ge }
func (c comparison) inclusive() bool { return c == le || c == ge || c == eq }

// flip turns 'v < f' into 'f > v'.
func (c comparison) flip() comparison {
	switch c {
	case lt:
		return gt
	case le:
		return ge
	case gt:
		return lt
	case ge:
		return le
	}
	return eq
}

func isComparison(t tokens.Token) bool {
	return t.IsDelim('<') || t.IsDelim('>') || t.IsDelim('=')
}

// parseComparison parses '<', '<=', '>', '>=' or '='. There must not be
// whitespace between '<' or '>' and '='.
func parseComparison(in *tokens.Input) (comparison, error) {
	t, err := in.Next()
	if err != nil {
		return 0, err
	}
	orEqual := func(in *tokens.Input) error {
		t, err := in.NextIncludingWhitespace()
		if err == nil && !t.IsDelim('=') {
			err = tokens.Unexpected(t, "'='")
		}
		return err
	}
	switch {
	case t.IsDelim('<'):
		if in.Try(orEqual) == nil {
			return le, nil
		}
		return lt, nil
	case t.IsDelim('>'):
		if in.Try(orEqual) == nil {
			return ge, nil
		}
		return gt, nil
	case t.IsDelim('='):
		return eq, nil
	}
	return 0, tokens.Unexpected(t, "comparison")
}

// bounds collects the ends of a range from comparisons 'feature op value'.
type bounds[T Value] struct {
	lo, hi maybe.Maybe[Bound[T]]
}

func (b *bounds[T]) add(c comparison, v T) {
	bound := maybe.Just(Bound[T]{Value: v, Inclusive: c.inclusive()})
	switch c {
	case lt, le:
		b.hi = bound
	case gt, ge:
		b.lo = bound
	case eq:
		b.lo, b.hi = bound, bound
	}
}

func (rf rangeFeature[T]) parse(in *tokens.Input, prefix string, valueFirst bool) (Expression, error) {
	var b bounds[T]
	if valueFirst { // v op f [op v]
		v, err := rf.value(in)
		if err != nil {
			return nil, err
		}
		c1, err := parseComparison(in)
		if err != nil {
			return nil, err
		}
		if _, err = in.ExpectIdent(); err != nil {
			return nil, err
		}
		b.add(c1.flip(), v)
		if !in.IsExhausted() {
			loc := in.Location()
			c2, err := parseComparison(in)
			if err != nil {
				return nil, err
			}
			if c1 == eq || !(c1.isLess() && c2.isLess() || c1.isGreater() && c2.isGreater()) {
				return nil, csserr.New(csserr.InvalidMediaValue, loc, "comparisons of a range must point in the same direction")
			}
			v2, err := rf.value(in)
			if err != nil {
				return nil, err
			}
			b.add(c2, v2)
		}
		return rf.wrapRange(b)
	}
	if _, err := in.ExpectIdent(); err != nil {
		return nil, err
	}
	if in.IsExhausted() {
		if prefix != "" {
			return nil, tokens.Unexpected(tokens.Token{Kind: tokens.EOF, Location: in.Location()}, "':'")
		}
		return rf.wrap(BooleanRange[T]()), nil
	}
	if in.Try(func(in *tokens.Input) error { return in.ExpectColon() }) == nil {
		v, err := rf.value(in)
		if err != nil {
			return nil, err
		}
		switch prefix {
		case "min-":
			return rf.wrap(AtLeast(v)), nil
		case "max-":
			return rf.wrap(AtMost(v)), nil
		}
		return rf.wrap(Exactly(v)), nil
	}
	if prefix != "" {
		t, _ := in.Next()
		return nil, tokens.Unexpected(t, "':'")
	}
	c, err := parseComparison(in)
	if err != nil {
		return nil, err
	}
	v, err := rf.value(in)
	if err != nil {
		return nil, err
	}
	b.add(c, v)
	return rf.wrapRange(b)
}

func (rf rangeFeature[T]) wrapRange(b bounds[T]) (Expression, error) {
	r, err := NewRange(b.lo, b.hi)
	if err != nil {
		return nil, err
	}
	return rf.wrap(r), nil
}

func (kf keywordFeature[K]) parse(in *tokens.Input, prefix string, valueFirst bool) (Expression, error) {
	loc := in.Location()
	if valueFirst {
		return nil, csserr.New(csserr.MediaFeatureNotRangeable, loc, kf.f.String())
	}
	if _, err := in.ExpectIdent(); err != nil {
		return nil, err
	}
	if in.IsExhausted() {
		return kf.wrap(0), nil
	}
	t, err := in.Next()
	if err != nil {
		return nil, err
	}
	if isComparison(t) {
		return nil, csserr.New(csserr.MediaFeatureNotRangeable, t.Location, kf.f.String())
	}
	if t.Kind != tokens.Colon {
		return nil, tokens.Unexpected(t, "':'")
	}
	v, err := parseKeyword[K](in, kf.names, kf.f.String()+" value")
	if err != nil {
		return nil, err
	}
	return kf.wrap(v), nil
}
