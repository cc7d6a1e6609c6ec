package csserr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/csskit/tokens"
)

// Kind is the reason of a parse error.
type Kind uint8

const (
	Basic Kind = iota // an error of the lexical layer, see tokens.Error

	// rule lists
	UnsupportedAtRule
	UnexpectedCharsetRule
	ImportAfterOtherRules
	NamespaceAfterOtherRules
	RuleNotAllowedHere
	InvalidSelector
	UnknownNamespacePrefix

	// declarations
	AtRuleNotAllowedInDeclarationList
	EmptyPropertyValue
	ImportantNotAllowedInKeyframes

	// @counter-style
	CounterStyleNameNotAllowed
	UnsupportedCounterStyleDescriptor
	InvalidCounterStyleDescriptor
	CounterStyleWithoutSymbols
	CounterStyleNotEnoughSymbols
	CounterStyleWithoutAdditiveSymbols
	CounterStyleExtendsWithSymbols
	CounterStyleExtendsWithAdditiveSymbols

	// @media
	UnsupportedMediaFeature
	MediaFeatureNotRangeable
	InvalidMediaValue
	EmptyMediaRange

	// @supports
	MixedSupportsOperators

	// @keyframes
	InvalidKeyframeSelector
)

var kindText = map[Kind]string{
	Basic:                                  "syntax error",
	UnsupportedAtRule:                      "unsupported at-rule",
	UnexpectedCharsetRule:                  "@charset must be the first rule",
	ImportAfterOtherRules:                  "@import after other rules",
	NamespaceAfterOtherRules:               "@namespace after other rules",
	RuleNotAllowedHere:                     "rule not allowed here",
	InvalidSelector:                        "invalid selector",
	UnknownNamespacePrefix:                 "unknown namespace prefix",
	AtRuleNotAllowedInDeclarationList:      "at-rule not allowed in declaration list",
	EmptyPropertyValue:                     "empty property value",
	ImportantNotAllowedInKeyframes:         "!important not allowed in keyframes",
	CounterStyleNameNotAllowed:             "counter style name not allowed",
	UnsupportedCounterStyleDescriptor:      "unsupported counter style descriptor",
	InvalidCounterStyleDescriptor:          "invalid counter style descriptor value",
	CounterStyleWithoutSymbols:             "counter style without symbols",
	CounterStyleNotEnoughSymbols:           "counter style has not enough symbols",
	CounterStyleWithoutAdditiveSymbols:     "additive counter style without additive symbols",
	CounterStyleExtendsWithSymbols:         "extending counter style with symbols",
	CounterStyleExtendsWithAdditiveSymbols: "extending counter style with additive symbols",
	UnsupportedMediaFeature:                "unsupported media feature",
	MediaFeatureNotRangeable:               "media feature is not rangeable",
	InvalidMediaValue:                      "invalid media feature value",
	EmptyMediaRange:                        "media range without bounds",
	MixedSupportsOperators:                 "'and' and 'or' mixed without parentheses",
	InvalidKeyframeSelector:                "invalid keyframe selector",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return fmt.Sprintf("error kind %d", k)
}

// Error is a located parse error.
type Error struct {
	Kind     Kind
	Location tokens.Location
	Detail   string // additional information, e.g. the offending name
	Err      error  // for Kind Basic: the *tokens.Error
}

func (e *Error) Error() string {
	if e.Kind == Basic && e.Err != nil {
		return e.Err.Error()
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Location, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Kind)
}

// Unwrap returns the underlying error of a Basic error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of kind k at location loc.
func New(k Kind, loc tokens.Location, detail string) *Error {
	return &Error{Kind: k, Location: loc, Detail: detail}
}

// Newf creates an error of kind k at location loc with a formatted detail.
func Newf(k Kind, loc tokens.Location, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Location: loc, Detail: fmt.Sprintf(format, args...)}
}

// Wrap converts err into a *Error. A *Error is returned unchanged; any
// other error (usually a *tokens.Error) becomes a Basic error. Wrap(nil)
// is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var terr *tokens.Error
	if errors.As(err, &terr) {
		return &Error{Kind: Basic, Location: terr.Location, Err: err}
	}
	return &Error{Kind: Basic, Err: err}
}

// Is reports wether err is a csskit error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// KindOf returns the kind of a csskit error. ok is false if err is not a
// csskit error.
func KindOf(err error) (k Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return Basic, false
}

// LocationOf returns the location of a csskit or tokenizer error.
func LocationOf(err error) (tokens.Location, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Location, true
	}
	var terr *tokens.Error
	if errors.As(err, &terr) {
		return terr.Location, true
	}
	return tokens.Location{}, false
}
