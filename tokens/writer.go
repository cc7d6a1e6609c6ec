package tokens

import (
	"io"
	"strings"
)

// Serializer is implemented by every node of a csskit parse tree. ToCSS
// writes the node's canonical CSS text to w.
type Serializer interface {
	ToCSS(w io.Writer) error
}

// Writer is the sink for canonical serialization. It remembers the first
// write error; all subsequent writes are no-ops, and Err reports the error.
// Nodes compose their output by passing the Writer on to their children.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w. If w already is a *Writer, it is returned unchanged,
// so that a write error anywhere in a tree of nodes is kept.
func NewWriter(w io.Writer) *Writer {
	if cw, ok := w.(*Writer); ok {
		return cw
	}
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}

// Err returns the first error of any write.
func (w *Writer) Err() error {
	return w.err
}

// Text writes s unchanged.
func (w *Writer) Text(s string) {
	_, _ = w.Write([]byte(s))
}

// Char writes a single ASCII character.
func (w *Writer) Char(c byte) {
	_, _ = w.Write([]byte{c})
}

// Ident writes s as an escaped CSS identifier.
func (w *Writer) Ident(s string) {
	w.Text(EscapeIdent(s))
}

// Quoted writes s as a double-quoted CSS string.
func (w *Writer) Quoted(s string) {
	w.Text(QuoteString(s))
}

// Number writes a number in its shortest form.
func (w *Writer) Number(f float64) {
	w.Text(FormatNumber(f))
}

// Node writes a child node, unless an earlier write failed.
func (w *Writer) Node(n Serializer) {
	if w.err != nil {
		return
	}
	if err := n.ToCSS(w); err != nil && w.err == nil {
		w.err = err
	}
}

// Tokens writes a token list as found in the input. Runs of whitespace are
// collapsed into a single space.
func (w *Writer) Tokens(toks []Token) {
	space := false
	for _, t := range toks {
		if t.Kind == Whitespace {
			space = true
			continue
		}
		if space {
			w.Char(' ')
			space = false
		}
		w.Text(t.Raw)
	}
}

// CSSString renders a node to a string.
func CSSString(n Serializer) string {
	var b strings.Builder
	_ = n.ToCSS(&b)
	return b.String()
}

// TokensString renders a token list, see Writer.Tokens.
func TokensString(toks []Token) string {
	var b strings.Builder
	NewWriter(&b).Tokens(toks)
	return b.String()
}
