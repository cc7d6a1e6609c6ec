package tokens

import (
	"fmt"
	"strings"
)

// Kind is the type of a cooked token.
type Kind uint8

// Token kinds. They follow section 4 of CSS Syntax Level 3.
const (
	EOF Kind = iota
	Ident
	AtKeyword
	Hash
	String
	URL
	Number
	Percentage
	Dimension
	UnicodeRange
	Function
	Delim
	Colon
	Semicolon
	Comma
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Whitespace
	CDO
	CDC
	IncludeMatch
	DashMatch
	PrefixMatch
	SuffixMatch
	SubstringMatch
	Invalid // the scanner could not tokenize the input here
)

var kindNames = [...]string{
	EOF:            "EOF",
	Ident:          "ident",
	AtKeyword:      "at-keyword",
	Hash:           "hash",
	String:         "string",
	URL:            "url",
	Number:         "number",
	Percentage:     "percentage",
	Dimension:      "dimension",
	UnicodeRange:   "unicode-range",
	Function:       "function",
	Delim:          "delim",
	Colon:          "':'",
	Semicolon:      "';'",
	Comma:          "','",
	LParen:         "'('",
	RParen:         "')'",
	LBracket:       "'['",
	RBracket:       "']'",
	LBrace:         "'{'",
	RBrace:         "'}'",
	Whitespace:     "whitespace",
	CDO:            "'<!--'",
	CDC:            "'-->'",
	IncludeMatch:   "'~='",
	DashMatch:      "'|='",
	PrefixMatch:    "'^='",
	SuffixMatch:    "'$='",
	SubstringMatch: "'*='",
	Invalid:        "invalid token",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// opens reports wether tokens of kind k start a block.
func (k Kind) opens() bool {
	return k == LParen || k == LBracket || k == LBrace || k == Function
}

// closes reports wether tokens of kind k end a block.
func (k Kind) closes() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// closer returns the kind of token which ends a block started by k.
func (k Kind) closer() Kind {
	switch k {
	case LParen, Function:
		return RParen
	case LBracket:
		return RBracket
	case LBrace:
		return RBrace
	}
	return EOF
}

// Location is a position in the CSS input. Lines and columns start at 1,
// unless a line offset has been configured for the input.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token is a cooked CSS token.
//
// Value holds the unescaped payload: the name of an ident, at-keyword, hash
// or function (without '@', '#' or '('), the content of a string or url, or
// the character of a delim. Raw is the token's text as found in the input.
type Token struct {
	Kind      Kind
	Value     string
	Raw       string
	Number    float64 // for Number, Percentage and Dimension
	IsInteger bool    // numeric part has integer syntax
	Unit      string  // for Dimension, unescaped
	Location  Location
}

// IsIdent checks for an ident with a given name, ignoring ASCII case.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Ident && strings.EqualFold(t.Value, name)
}

// IsDelim checks for a delim token with character c.
func (t Token) IsDelim(c byte) bool {
	return t.Kind == Delim && len(t.Value) == 1 && t.Value[0] == c
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Whitespace:
		return "whitespace"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Raw)
}
