package properties

import (
	"io"
	"strings"

	"github.com/npillmayer/csskit/tokens"
)

// UnparsedValue is the value of a declaration. It is either a WideKeyword
// or a SpecifiedValue.
type UnparsedValue interface {
	tokens.Serializer
	String() string
	isUnparsedValue()
}

// WideKeyword is one of the CSS-wide keywords, which every property accepts
// as its whole value.
type WideKeyword uint8

const (
	Initial WideKeyword = iota + 1
	Inherit
	Unset
	Revert
)

var wideKeywords = map[WideKeyword]string{
	Initial: "initial",
	Inherit: "inherit",
	Unset:   "unset",
	Revert:  "revert",
}

var wideKeywordByName = map[string]WideKeyword{
	"initial": Initial,
	"inherit": Inherit,
	"unset":   Unset,
	"revert":  Revert,
}

// WideKeywordFromName looks up a wide keyword, ignoring ASCII case.
func WideKeywordFromName(name string) (WideKeyword, bool) {
	kw, ok := wideKeywordByName[strings.ToLower(name)]
	return kw, ok
}

func (kw WideKeyword) String() string {
	return wideKeywords[kw]
}

func (kw WideKeyword) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text(kw.String())
	return cw.Err()
}

func (WideKeyword) isUnparsedValue() {}

// parseWideKeyword succeeds only if a wide keyword is all there is.
func parseWideKeyword(in *tokens.Input) (WideKeyword, error) {
	t, err := in.Next()
	if err != nil {
		return 0, err
	}
	kw, ok := WideKeywordFromName(t.Value)
	if t.Kind != tokens.Ident || !ok {
		return 0, tokens.Unexpected(t, "wide keyword")
	}
	return kw, in.ExpectExhausted()
}

// SpecifiedValue is a value kept as the token sequence found in the input.
// Leading and trailing whitespace is not part of the value.
type SpecifiedValue struct {
	Tokens []tokens.Token
}

// ToCSS writes the tokens, collapsing whitespace.
func (v SpecifiedValue) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Tokens(v.Tokens)
	return cw.Err()
}

func (v SpecifiedValue) String() string {
	return tokens.TokensString(v.Tokens)
}

// IsEmpty is true for a value without tokens, as is allowed for custom
// properties.
func (v SpecifiedValue) IsEmpty() bool {
	return len(v.Tokens) == 0
}

func (SpecifiedValue) isUnparsedValue() {}

// Importance of a declaration, i.e. presence of “!important”.
type Importance uint8

const (
	Normal Importance = iota
	Important
)

// IsImportant is true if the declaration was marked with “!important”.
func (imp Importance) IsImportant() bool {
	return imp == Important
}

func (imp Importance) String() string {
	if imp == Important {
		return "!important"
	}
	return ""
}

// ToCSS writes “!important” or nothing.
func (imp Importance) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text(imp.String())
	return cw.Err()
}
