package supports

import (
	"io"
	"strings"

	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/tokens"
)

// Condition is the condition of an @supports rule. The concrete types are
// Not, And, Or, Nested, Declaration and GeneralEnclosed.
type Condition interface {
	tokens.Serializer
	// Eval evaluates the condition, with supported deciding on single
	// declarations.
	Eval(supported func(properties.PropertyDeclaration) bool) bool
	isCondition()
}

// Not is “not <in-parens>”.
type Not struct {
	Condition Condition
}

// And is “<in-parens> and <in-parens> …”.
type And []Condition

// Or is “<in-parens> or <in-parens> …”.
type Or []Condition

// Nested is a condition in parentheses.
type Nested struct {
	Condition Condition
}

// Declaration is a declaration in parentheses, e.g. “(display: grid)”.
type Declaration struct {
	Declaration properties.PropertyDeclaration
}

// GeneralEnclosed is a function or a parenthesized token list which is
// neither a condition nor a declaration. Function is empty for the latter.
type GeneralEnclosed struct {
	Function string
	Tokens   []tokens.Token
}

func (Not) isCondition()             {}
func (And) isCondition()             {}
func (Or) isCondition()              {}
func (Nested) isCondition()          {}
func (Declaration) isCondition()     {}
func (GeneralEnclosed) isCondition() {}

func (c Not) Eval(supported func(properties.PropertyDeclaration) bool) bool {
	return !c.Condition.Eval(supported)
}

func (c And) Eval(supported func(properties.PropertyDeclaration) bool) bool {
	for _, sub := range c {
		if !sub.Eval(supported) {
			return false
		}
	}
	return true
}

func (c Or) Eval(supported func(properties.PropertyDeclaration) bool) bool {
	for _, sub := range c {
		if sub.Eval(supported) {
			return true
		}
	}
	return false
}

func (c Nested) Eval(supported func(properties.PropertyDeclaration) bool) bool {
	return c.Condition.Eval(supported)
}

func (c Declaration) Eval(supported func(properties.PropertyDeclaration) bool) bool {
	return supported(c.Declaration)
}

// Eval is always false.
func (GeneralEnclosed) Eval(func(properties.PropertyDeclaration) bool) bool {
	return false
}

func (c Not) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text("not ")
	cw.Node(c.Condition)
	return cw.Err()
}

func (c And) ToCSS(w io.Writer) error {
	return writeJoined(w, c, " and ")
}

func (c Or) ToCSS(w io.Writer) error {
	return writeJoined(w, c, " or ")
}

func writeJoined(w io.Writer, conds []Condition, op string) error {
	cw := tokens.NewWriter(w)
	for i, c := range conds {
		if i > 0 {
			cw.Text(op)
		}
		cw.Node(c)
	}
	return cw.Err()
}

func (c Nested) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Char('(')
	cw.Node(c.Condition)
	cw.Char(')')
	return cw.Err()
}

func (c Declaration) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Char('(')
	cw.Text(strings.TrimSuffix(c.Declaration.String(), ";"))
	cw.Char(')')
	return cw.Err()
}

func (c GeneralEnclosed) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	if c.Function != "" {
		cw.Ident(c.Function)
	}
	cw.Char('(')
	cw.Tokens(c.Tokens)
	cw.Char(')')
	return cw.Err()
}

// String renders a condition.
func String(c Condition) string {
	return tokens.CSSString(c)
}
