package tokens

// Delimiters is a set of tokens which bound a sub-parse.
type Delimiters uint8

const (
	DelimBang      Delimiters = 1 << iota // an unescaped '!'
	DelimSemicolon                        // ';'
	DelimComma                            // ','
	DelimCurly                            // the start of a {}-block
)

func (d Delimiters) matches(t Token) bool {
	switch t.Kind {
	case Semicolon:
		return d&DelimSemicolon != 0
	case Comma:
		return d&DelimComma != 0
	case LBrace:
		return d&DelimCurly != 0
	case Delim:
		return d&DelimBang != 0 && t.Value == "!"
	}
	return false
}

// Input is a cursor over a tokenized CSS text. An Input may be a view onto a
// part of the text only, e.g. the contents of a block or the tokens before a
// delimiter; it then reports end of input at the end of its view.
//
// When Next returns a token starting a block (a function, '(', '[' or '{'),
// the caller may parse the block's contents with ParseNestedBlock. If it
// does not, the next call to Next skips the whole block.
type Input struct {
	s     *stream
	pos   int // index of the next token
	stop  int // end of this view (exclusive)
	block int // index of a block opener just returned by Next, or -1
}

// NewInput tokenizes css and returns an Input positioned at its start.
func NewInput(css string) *Input {
	return NewInputWithLineOffset(css, 0)
}

// NewInputWithLineOffset tokenizes css. All reported line numbers are
// shifted by lineOffset, e.g. when css is embedded in an HTML document.
func NewInputWithLineOffset(css string, lineOffset int) *Input {
	s := tokenize(css, lineOffset)
	return &Input{s: s, stop: len(s.toks), block: -1}
}

// SourceMapURL returns the URL of a '/*# sourceMappingURL=… */' directive
// comment, if present.
func (in *Input) SourceMapURL() (string, bool) {
	return in.s.sourceMapURL, in.s.hasSourceMap
}

// SourceURL returns the URL of a '/*# sourceURL=… */' directive comment,
// if present.
func (in *Input) SourceURL() (string, bool) {
	return in.s.sourceURL, in.s.hasSourceURL
}

// skipBlock moves past a block whose opener has been returned by Next and
// which the caller did not enter.
func (in *Input) skipBlock() {
	if in.block >= 0 {
		in.pos = in.s.partner[in.block] + 1
		if in.pos > in.stop {
			in.pos = in.stop
		}
		in.block = -1
	}
}

// endLocation is the location reported for the end of this view.
func (in *Input) endLocation() Location {
	if in.stop < len(in.s.toks) {
		return in.s.toks[in.stop].Location
	}
	return in.s.eof
}

// Location returns the source location of the next token.
func (in *Input) Location() Location {
	in.skipBlock()
	if in.pos < in.stop {
		return in.s.toks[in.pos].Location
	}
	return in.endLocation()
}

// NextIncludingWhitespace returns the next token, which may be whitespace.
// At the end of the view it returns an EOF token and an EndOfInput error.
func (in *Input) NextIncludingWhitespace() (Token, error) {
	in.skipBlock()
	if in.pos >= in.stop {
		eof := Token{Kind: EOF, Location: in.endLocation()}
		return eof, &Error{Kind: EndOfInput, Token: eof, Location: eof.Location}
	}
	t := in.s.toks[in.pos]
	if t.Kind == Invalid {
		return t, &Error{Kind: BadToken, Token: t, Location: t.Location}
	}
	if t.Kind.opens() {
		in.block = in.pos
	}
	in.pos++
	return t, nil
}

// Next returns the next token which is not whitespace.
func (in *Input) Next() (Token, error) {
	for {
		t, err := in.NextIncludingWhitespace()
		if err != nil || t.Kind != Whitespace {
			return t, err
		}
	}
}

// SkipWhitespace moves past whitespace tokens.
func (in *Input) SkipWhitespace() {
	in.skipBlock()
	for in.pos < in.stop && in.s.toks[in.pos].Kind == Whitespace {
		in.pos++
	}
}

// IsExhausted reports wether only whitespace is left in this view.
func (in *Input) IsExhausted() bool {
	state := in.state()
	defer in.reset(state)
	_, err := in.Next()
	return err != nil && err.(*Error).Kind == EndOfInput
}

// ExpectExhausted returns an error if anything but whitespace is left in
// this view.
func (in *Input) ExpectExhausted() error {
	state := in.state()
	t, err := in.Next()
	if err != nil {
		if e := err.(*Error); e.Kind == EndOfInput {
			return nil
		}
		return err
	}
	in.reset(state)
	return Unexpected(t, "end of input")
}

type inputState struct {
	pos, block int
}

func (in *Input) state() inputState {
	return inputState{pos: in.pos, block: in.block}
}

func (in *Input) reset(s inputState) {
	in.pos, in.block = s.pos, s.block
}

// Try runs f speculatively. If f fails, the position of in is rolled back
// to where it was before the call.
func (in *Input) Try(f func(*Input) error) error {
	state := in.state()
	if err := f(in); err != nil {
		in.reset(state)
		return err
	}
	return nil
}

// Try is the value-returning form of Input.Try.
func Try[T any](in *Input, f func(*Input) (T, error)) (T, error) {
	var result T
	err := in.Try(func(in *Input) error {
		var err error
		result, err = f(in)
		return err
	})
	return result, err
}

// ParseNestedBlock parses the contents of the block whose start token was
// the last token returned by Next. f has to consume the block's contents
// completely. Afterwards in is positioned after the end of the block.
func (in *Input) ParseNestedBlock(f func(*Input) error) error {
	if in.block < 0 {
		return &Error{Kind: NoBlock, Location: in.Location()}
	}
	opener := in.block
	end := in.s.partner[opener]
	if end > in.stop {
		end = in.stop
	}
	nested := &Input{s: in.s, pos: opener + 1, stop: end, block: -1}
	err := f(nested)
	if err == nil {
		err = nested.ExpectExhausted()
	}
	in.block = -1
	in.pos = end + 1
	if in.pos > in.stop {
		in.pos = in.stop
	}
	return err
}

// delimiterIndex finds the first token of this view, starting at the
// current position, which is in d. Blocks are skipped as a whole.
func (in *Input) delimiterIndex(d Delimiters) int {
	in.skipBlock()
	i := in.pos
	for i < in.stop {
		t := in.s.toks[i]
		if d.matches(t) {
			return i
		}
		if t.Kind.opens() {
			i = in.s.partner[i] + 1
			continue
		}
		i++
	}
	return in.stop
}

// ParseUntilBefore runs f on a view of the tokens up to (and excluding) the
// first delimiter in d. f has to consume the view completely. The delimiter
// itself is not consumed.
func (in *Input) ParseUntilBefore(d Delimiters, f func(*Input) error) error {
	end := in.delimiterIndex(d)
	if end > in.stop {
		end = in.stop
	}
	view := &Input{s: in.s, pos: in.pos, stop: end, block: -1}
	err := f(view)
	if err == nil {
		err = view.ExpectExhausted()
	}
	in.pos, in.block = end, -1
	return err
}

// ParseUntilAfter is like ParseUntilBefore, but consumes the delimiter, too.
func (in *Input) ParseUntilAfter(d Delimiters, f func(*Input) error) error {
	err := in.ParseUntilBefore(d, f)
	if in.pos < in.stop && d.matches(in.s.toks[in.pos]) {
		in.pos++
	}
	return err
}

// Rest consumes everything left in this view, including the contents of
// nested blocks, and returns it as a flat token list. It fails on tokens the
// scanner could not tokenize and on closing brackets without a matching
// opening one. Leading and trailing whitespace is dropped.
func (in *Input) Rest() ([]Token, error) {
	in.skipBlock()
	var toks []Token
	for ; in.pos < in.stop; in.pos++ {
		t := in.s.toks[in.pos]
		switch {
		case t.Kind == Invalid:
			return nil, &Error{Kind: BadToken, Token: t, Location: t.Location}
		case t.Kind.closes() && in.s.partner[in.pos] < 0:
			return nil, Unexpected(t, "")
		}
		toks = append(toks, t)
	}
	return TrimWhitespace(toks), nil
}

// TrimWhitespace removes leading and trailing whitespace tokens.
func TrimWhitespace(toks []Token) []Token {
	for len(toks) > 0 && toks[0].Kind == Whitespace {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Kind == Whitespace {
		toks = toks[:len(toks)-1]
	}
	return toks
}
