package media

import (
	"io"
	"strings"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// Qualifier is the optional 'only' or 'not' in front of a media type.
type Qualifier uint8

const (
	NoQualifier Qualifier = iota
	Only
	Not
)

// Query is a single media query, e.g. 'not print and (color)'.
type Query struct {
	Qualifier   Qualifier
	MediaType   maybe.Maybe[string] // lower-case; Nothing if the query starts with an expression
	Expressions []Expression
}

func (q Query) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	and := false
	if mt, ok := maybe.Value(q.MediaType); ok {
		switch q.Qualifier {
		case Only:
			cw.Text("only ")
		case Not:
			cw.Text("not ")
		}
		cw.Ident(mt)
		and = true
	}
	for _, e := range q.Expressions {
		if and {
			cw.Text(" and ")
		}
		cw.Node(e)
		and = true
	}
	return cw.Err()
}

// MediaList is a comma separated list of media queries. An empty list
// matches all media.
type MediaList []Query

func (ml MediaList) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	for i, q := range ml {
		if i > 0 {
			cw.Text(", ")
		}
		cw.Node(q)
	}
	return cw.Err()
}

// IsEmpty is true for a list without queries.
func (ml MediaList) IsEmpty() bool {
	return len(ml) == 0
}

// ParseMediaList parses a media query list. It consumes all of in.
func ParseMediaList(in *tokens.Input) (MediaList, error) {
	var ml MediaList
	for !in.IsExhausted() {
		var q Query
		err := in.ParseUntilAfter(tokens.DelimComma, func(in *tokens.Input) error {
			var err error
			q, err = ParseQuery(in)
			return err
		})
		if err != nil {
			return nil, csserr.Wrap(err)
		}
		ml = append(ml, q)
	}
	tracer().Debugf("parsed media list with %d queries", len(ml))
	return ml, nil
}

var reservedMediaTypes = map[string]bool{
	"only": true, "not": true, "and": true, "or": true, "layer": true,
}

// ParseQuery parses a single media query:
//
//	[ only | not ]? <media-type> [ and <expression> ]*
//	<expression> [ and <expression> ]*
func ParseQuery(in *tokens.Input) (Query, error) {
	q := Query{MediaType: maybe.Nothing[string]()}
	t, err := tokens.Try(in, expectIdentToken)
	if err == nil {
		name := strings.ToLower(t.Value)
		switch name {
		case "only":
			q.Qualifier = Only
		case "not":
			q.Qualifier = Not
		}
		if q.Qualifier != NoQualifier {
			if t, err = in.Next(); err != nil {
				return q, csserr.Wrap(err)
			}
			if t.Kind != tokens.Ident {
				return q, csserr.Wrap(tokens.Unexpected(t, "media type"))
			}
			name = strings.ToLower(t.Value)
		}
		if reservedMediaTypes[name] {
			return q, csserr.Wrap(tokens.Unexpected(t, "media type"))
		}
		q.MediaType = maybe.Just(name)
	} else {
		e, err := ParseExpression(in)
		if err != nil {
			return q, err
		}
		q.Expressions = append(q.Expressions, e)
	}
	for !in.IsExhausted() {
		if err = in.ExpectIdentMatching("and"); err != nil {
			return q, csserr.Wrap(err)
		}
		e, err := ParseExpression(in)
		if err != nil {
			return q, err
		}
		q.Expressions = append(q.Expressions, e)
	}
	return q, nil
}

func expectIdentToken(in *tokens.Input) (tokens.Token, error) {
	t, err := in.Next()
	if err == nil && t.Kind != tokens.Ident {
		err = tokens.Unexpected(t, "media type")
	}
	return t, err
}

// Lengths returns the lengths bounding the width and height features of
// the list, in order of appearance. Boolean context has no lengths.
func (ml MediaList) Lengths() []Length {
	var ls []Length
	for _, q := range ml {
		for _, e := range q.Expressions {
			switch x := e.(type) {
			case Width:
				ls = appendLengths(ls, x.Range)
			case Height:
				ls = appendLengths(ls, x.Range)
			}
		}
	}
	return ls
}

func appendLengths(ls []Length, r Range[Length]) []Length {
	if r.IsBoolean() {
		return ls
	}
	lo, lok := maybe.Value(r.Min)
	if lok {
		ls = append(ls, lo.Value)
	}
	if hi, ok := maybe.Value(r.Max); ok && (!lok || hi.Value != lo.Value) {
		ls = append(ls, hi.Value)
	}
	return ls
}
