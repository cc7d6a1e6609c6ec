package tokens

import "fmt"

// ErrorKind classifies the errors of the lexical layer.
type ErrorKind uint8

const (
	UnexpectedToken ErrorKind = iota // a token of the wrong kind
	EndOfInput                       // input (or the current block) ended prematurely
	BadToken                         // the scanner could not tokenize the input
	NoBlock                          // a nested block was requested, but no block token was read
)

// Error is a parse error of the lexical layer. It is the “basic” error every
// grammar runs into when it sees a token it does not expect.
type Error struct {
	Kind     ErrorKind
	Token    Token
	Expected string
	Location Location
}

func (e *Error) Error() string {
	switch e.Kind {
	case EndOfInput:
		if e.Expected != "" {
			return fmt.Sprintf("%s: unexpected end of input, expected %s", e.Location, e.Expected)
		}
		return fmt.Sprintf("%s: unexpected end of input", e.Location)
	case BadToken:
		return fmt.Sprintf("%s: cannot tokenize input: %s", e.Location, e.Token.Value)
	case NoBlock:
		return fmt.Sprintf("%s: no block to parse", e.Location)
	}
	if e.Expected != "" {
		return fmt.Sprintf("%s: unexpected %s, expected %s", e.Location, e.Token, e.Expected)
	}
	return fmt.Sprintf("%s: unexpected %s", e.Location, e.Token)
}

// Unexpected creates an error for token t, which does not fit the grammar.
// expected describes what the grammar would have accepted; it may be empty.
func Unexpected(t Token, expected string) *Error {
	if t.Kind == EOF {
		return &Error{Kind: EndOfInput, Token: t, Expected: expected, Location: t.Location}
	}
	return &Error{Kind: UnexpectedToken, Token: t, Expected: expected, Location: t.Location}
}
