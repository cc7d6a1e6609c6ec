package tokens

import (
	"math"
	"strings"
)

func (in *Input) expect(k Kind, expected string) (Token, error) {
	t, err := in.Next()
	if err != nil {
		if e, ok := err.(*Error); ok && e.Expected == "" {
			e.Expected = expected
		}
		return t, err
	}
	if t.Kind != k {
		return t, Unexpected(t, expected)
	}
	return t, nil
}

// ExpectIdent consumes an ident and returns its (unescaped) name.
func (in *Input) ExpectIdent() (string, error) {
	t, err := in.expect(Ident, "identifier")
	return t.Value, err
}

// ExpectIdentMatching consumes an ident with a given name, ignoring ASCII case.
func (in *Input) ExpectIdentMatching(name string) error {
	t, err := in.expect(Ident, name)
	if err == nil && !strings.EqualFold(t.Value, name) {
		return Unexpected(t, name)
	}
	return err
}

// ExpectString consumes a string and returns its content.
func (in *Input) ExpectString() (string, error) {
	t, err := in.expect(String, "string")
	return t.Value, err
}

// ExpectURLOrString consumes an url(…) or a string and returns the URL.
func (in *Input) ExpectURLOrString() (string, error) {
	t, err := in.Next()
	if err != nil {
		return "", err
	}
	switch t.Kind {
	case URL, String:
		return t.Value, nil
	case Function:
		if strings.EqualFold(t.Value, "url") {
			var u string
			err = in.ParseNestedBlock(func(in *Input) error {
				var err error
				u, err = in.ExpectString()
				return err
			})
			return u, err
		}
	}
	return "", Unexpected(t, "url or string")
}

// ExpectColon consumes a ':'.
func (in *Input) ExpectColon() error {
	_, err := in.expect(Colon, "':'")
	return err
}

// ExpectComma consumes a ','.
func (in *Input) ExpectComma() error {
	_, err := in.expect(Comma, "','")
	return err
}

// ExpectDelim consumes a delim token with character c.
func (in *Input) ExpectDelim(c byte) error {
	t, err := in.expect(Delim, "'"+string(c)+"'")
	if err == nil && !t.IsDelim(c) {
		return Unexpected(t, "'"+string(c)+"'")
	}
	return err
}

// ExpectNumber consumes a number token.
func (in *Input) ExpectNumber() (float64, error) {
	t, err := in.expect(Number, "number")
	return t.Number, err
}

// ExpectInteger consumes a number token with integer syntax.
func (in *Input) ExpectInteger() (int, error) {
	t, err := in.expect(Number, "integer")
	if err != nil {
		return 0, err
	}
	if !t.IsInteger || t.Number > math.MaxInt32 || t.Number < math.MinInt32 {
		return 0, Unexpected(t, "integer")
	}
	return int(t.Number), nil
}

// ExpectCurlyBlock consumes the start of a {}-block. The block's contents
// may then be parsed with ParseNestedBlock.
func (in *Input) ExpectCurlyBlock() error {
	_, err := in.expect(LBrace, "'{'")
	return err
}

// ExpectParenBlock consumes the start of a ()-block.
func (in *Input) ExpectParenBlock() error {
	_, err := in.expect(LParen, "'('")
	return err
}
