package tokens

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// stream is the fully tokenized input, shared between all Input cursors
// of one parse.
type stream struct {
	toks         []Token
	partner      []int // opener → index of its closer (len(toks) if unclosed); closer → its opener; else -1
	eof          Location
	sourceMapURL string
	hasSourceMap bool
	sourceURL    string
	hasSourceURL bool
}

// tokenize runs the Gorilla scanner over css and cooks the raw tokens.
// Tokenization stops at the first scanner error, which is kept as an
// Invalid token at the end of the stream.
func tokenize(css string, lineOffset int) *stream {
	s := &stream{}
	sc := scanner.New(css)
	var pending *scanner.Token // a '+' or '-' which may be the sign of a number or part of a name
	for {
		raw := sc.Next()
		loc := Location{Line: raw.Line + lineOffset, Column: raw.Column}
		if pending != nil {
			p := *pending
			pending = nil
			if merged, ok := mergeSign(p, raw, lineOffset); ok {
				s.toks = append(s.toks, merged)
				continue
			}
			s.toks = append(s.toks, cook(&p, lineOffset))
		}
		switch raw.Type {
		case scanner.TokenEOF:
			s.eof = loc
			s.match()
			tracer().Debugf("tokenized %d tokens", len(s.toks))
			return s
		case scanner.TokenError:
			s.toks = append(s.toks, Token{Kind: Invalid, Value: raw.Value, Raw: raw.Value, Location: loc})
			s.eof = loc
			s.match()
			tracer().Debugf("scanner error at %s: %s", loc, raw.Value)
			return s
		case scanner.TokenComment:
			s.scanDirective(raw.Value)
			continue
		case scanner.TokenBOM:
			continue
		case scanner.TokenChar:
			if raw.Value == "-" || raw.Value == "+" {
				pending = raw
				continue
			}
		}
		s.toks = append(s.toks, cook(raw, lineOffset))
	}
}

// mergeSign joins a sign character with an immediately following number
// ("-" "2px" → "-2px") and a dash with an immediately following name
// starting with a dash ("-" "-main-color" → "--main-color"). The latter
// happens for custom property names, which older scanners do not know.
func mergeSign(sign scanner.Token, next *scanner.Token, lineOffset int) (Token, bool) {
	switch next.Type {
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
		if strings.HasPrefix(next.Value, "+") || strings.HasPrefix(next.Value, "-") {
			return Token{}, false
		}
		joined := *next
		joined.Value = sign.Value + next.Value
		joined.Line, joined.Column = sign.Line, sign.Column
		return cook(&joined, lineOffset), true
	case scanner.TokenIdent, scanner.TokenFunction:
		if sign.Value != "-" || !strings.HasPrefix(next.Value, "-") {
			return Token{}, false
		}
		joined := *next
		joined.Value = "-" + next.Value
		joined.Line, joined.Column = sign.Line, sign.Column
		return cook(&joined, lineOffset), true
	}
	return Token{}, false
}

// cook converts a raw scanner token.
func cook(raw *scanner.Token, lineOffset int) Token {
	t := Token{
		Raw:      raw.Value,
		Location: Location{Line: raw.Line + lineOffset, Column: raw.Column},
	}
	v := raw.Value
	switch raw.Type {
	case scanner.TokenIdent:
		t.Kind, t.Value = Ident, unescape(v)
	case scanner.TokenAtKeyword:
		t.Kind, t.Value = AtKeyword, unescape(v[1:])
	case scanner.TokenHash:
		t.Kind, t.Value = Hash, unescape(v[1:])
	case scanner.TokenString:
		t.Kind, t.Value = String, unquote(v)
	case scanner.TokenURI:
		t.Kind, t.Value = URL, urlContent(v)
	case scanner.TokenNumber:
		t.Kind = Number
		t.Number, t.IsInteger = parseNumber(v)
		t.Value = v
	case scanner.TokenPercentage:
		t.Kind = Percentage
		t.Value = strings.TrimSuffix(v, "%")
		t.Number, t.IsInteger = parseNumber(t.Value)
	case scanner.TokenDimension:
		t.Kind = Dimension
		n := numericPrefix(v)
		t.Value = v[:n]
		t.Number, t.IsInteger = parseNumber(t.Value)
		t.Unit = unescape(v[n:])
	case scanner.TokenUnicodeRange:
		t.Kind, t.Value = UnicodeRange, v
	case scanner.TokenFunction:
		t.Kind, t.Value = Function, unescape(strings.TrimSuffix(v, "("))
	case scanner.TokenCDO:
		t.Kind = CDO
	case scanner.TokenCDC:
		t.Kind = CDC
	case scanner.TokenS:
		t.Kind, t.Value = Whitespace, " "
	case scanner.TokenIncludes:
		t.Kind = IncludeMatch
	case scanner.TokenDashMatch:
		t.Kind = DashMatch
	case scanner.TokenPrefixMatch:
		t.Kind = PrefixMatch
	case scanner.TokenSuffixMatch:
		t.Kind = SuffixMatch
	case scanner.TokenSubstringMatch:
		t.Kind = SubstringMatch
	case scanner.TokenChar:
		t.Kind, t.Value = charKind(v), v
	default:
		t.Kind, t.Value = Invalid, v
	}
	return t
}

func charKind(c string) Kind {
	switch c {
	case ":":
		return Colon
	case ";":
		return Semicolon
	case ",":
		return Comma
	case "(":
		return LParen
	case ")":
		return RParen
	case "[":
		return LBracket
	case "]":
		return RBracket
	case "{":
		return LBrace
	case "}":
		return RBrace
	}
	return Delim
}

// numericPrefix returns the length of the number at the start of a
// dimension token.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i+1 < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, !strings.ContainsAny(s, ".eE")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// urlContent extracts the (unescaped) URL from an url(…) token.
func urlContent(v string) string {
	open := strings.IndexByte(v, '(')
	if open < 0 {
		return v
	}
	inner := strings.TrimSuffix(v[open+1:], ")")
	inner = strings.TrimSpace(inner)
	if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') {
		return unquote(inner)
	}
	return unescape(inner)
}

// match pairs block openers with their closers. A closer which does not end
// the innermost open block is an ordinary token. Blocks left open at the end
// of the input are closed by EOF.
func (s *stream) match() {
	s.partner = make([]int, len(s.toks))
	var stack []int
	for i, t := range s.toks {
		s.partner[i] = -1
		switch {
		case t.Kind.opens():
			stack = append(stack, i)
		case t.Kind.closes():
			if n := len(stack); n > 0 && s.toks[stack[n-1]].Kind.closer() == t.Kind {
				s.partner[stack[n-1]] = i
				s.partner[i] = stack[n-1]
				stack = stack[:n-1]
			}
		}
	}
	for _, i := range stack {
		s.partner[i] = len(s.toks)
	}
}

// scanDirective looks for source-map and source-URL directives in a comment.
// Both the current ('#') and the older ('@') form are accepted. The last
// directive in the input wins.
func (s *stream) scanDirective(comment string) {
	c := strings.TrimPrefix(comment, "/*")
	c = strings.TrimSuffix(c, "*/")
	if len(c) < 2 || (c[0] != '#' && c[0] != '@') || (c[1] != ' ' && c[1] != '\t') {
		return
	}
	c = c[2:]
	if url, ok := directive(c, "sourceMappingURL="); ok {
		s.sourceMapURL, s.hasSourceMap = url, true
	} else if url, ok := directive(c, "sourceURL="); ok {
		s.sourceURL, s.hasSourceURL = url, true
	}
}

func directive(c, name string) (string, bool) {
	if !strings.HasPrefix(c, name) {
		return "", false
	}
	c = c[len(name):]
	if end := strings.IndexAny(c, " \t\n\r\f"); end >= 0 {
		c = c[:end]
	}
	return c, true
}
