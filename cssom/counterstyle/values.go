package counterstyle

import (
	"io"
	"strconv"

	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// Name is the name of a counter style, a custom identifier.
type Name string

// Decimal is the counter style every other style falls back to.
const Decimal Name = "decimal"

func (n Name) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Ident(string(n))
	return cw.Err()
}

// --- Symbols ---------------------------------------------------------------

// Symbol is a string or an identifier used to render a counter.
type Symbol struct {
	IsIdent bool
	Value   string
}

// StringSymbol creates a symbol from a CSS string.
func StringSymbol(s string) Symbol {
	return Symbol{Value: s}
}

// IdentSymbol creates a symbol from a CSS identifier.
func IdentSymbol(s string) Symbol {
	return Symbol{IsIdent: true, Value: s}
}

func (s Symbol) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	if s.IsIdent {
		cw.Ident(s.Value)
	} else {
		cw.Quoted(s.Value)
	}
	return cw.Err()
}

// Symbols is the value of the 'symbols' descriptor.
type Symbols []Symbol

func (syms Symbols) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	for i, s := range syms {
		if i > 0 {
			cw.Char(' ')
		}
		cw.Node(s)
	}
	return cw.Err()
}

// AdditiveSymbol is a weighted symbol of an additive counter style.
type AdditiveSymbol struct {
	Weight int
	Symbol Symbol
}

// AdditiveSymbols is the value of the 'additive-symbols' descriptor. Weights
// are strictly decreasing.
type AdditiveSymbols []AdditiveSymbol

func (syms AdditiveSymbols) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	for i, s := range syms {
		if i > 0 {
			cw.Text(", ")
		}
		cw.Text(strconv.Itoa(s.Weight))
		cw.Char(' ')
		cw.Node(s.Symbol)
	}
	return cw.Err()
}

// --- System ----------------------------------------------------------------

// SystemKind is the algorithm of a counter style.
type SystemKind uint8

const (
	Cyclic SystemKind = iota
	Numeric
	Alphabetic
	Symbolic
	Additive
	Fixed
	Extends
)

var systemNames = map[SystemKind]string{
	Cyclic:     "cyclic",
	Numeric:    "numeric",
	Alphabetic: "alphabetic",
	Symbolic:   "symbolic",
	Additive:   "additive",
	Fixed:      "fixed",
	Extends:    "extends",
}

var systemKindByName = map[string]SystemKind{
	"cyclic":     Cyclic,
	"numeric":    Numeric,
	"alphabetic": Alphabetic,
	"symbolic":   Symbolic,
	"additive":   Additive,
	"fixed":      Fixed,
	"extends":    Extends,
}

func (k SystemKind) String() string {
	return systemNames[k]
}

// System is the value of the 'system' descriptor.
type System struct {
	Kind    SystemKind
	First   maybe.Maybe[int] // Fixed: value of the first symbol, if given
	Extends Name             // Extends: the style to extend
}

// SimpleSystem creates a system without parameters.
func SimpleSystem(k SystemKind) System {
	return System{Kind: k}
}

// FixedSystem creates a fixed system starting at first.
func FixedSystem(first int) System {
	return System{Kind: Fixed, First: maybe.Just(first)}
}

// ExtendsSystem creates a system extending another counter style.
func ExtendsSystem(name Name) System {
	return System{Kind: Extends, Extends: name}
}

// FirstSymbolValue is the counter value of the first symbol of a fixed
// system, which defaults to 1.
func (s System) FirstSymbolValue() int {
	return maybe.OrElse(s.First, 1)
}

// NeedsSymbols is true for all systems which render with 'symbols'.
func (s System) NeedsSymbols() bool {
	switch s.Kind {
	case Cyclic, Fixed, Symbolic, Alphabetic, Numeric:
		return true
	}
	return false
}

func (s System) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text(s.Kind.String())
	switch s.Kind {
	case Fixed:
		if first, ok := maybe.Value(s.First); ok {
			cw.Char(' ')
			cw.Text(strconv.Itoa(first))
		}
	case Extends:
		cw.Char(' ')
		cw.Node(s.Extends)
	}
	return cw.Err()
}

// --- Negative --------------------------------------------------------------

// Negative is the value of the 'negative' descriptor: a symbol in front of
// negative counter values and an optional one after them.
type Negative struct {
	Before Symbol
	After  maybe.Maybe[Symbol]
}

func (n Negative) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Node(n.Before)
	if after, ok := maybe.Value(n.After); ok {
		cw.Char(' ')
		cw.Node(after)
	}
	return cw.Err()
}

// --- Range -----------------------------------------------------------------

// Range is a closed interval of counter values. A missing end stands for
// 'infinite'.
type Range struct {
	Start maybe.Maybe[int]
	End   maybe.Maybe[int]
}

// Contains checks if a counter value is in the range.
func (r Range) Contains(n int) bool {
	if start, ok := maybe.Value(r.Start); ok && n < start {
		return false
	}
	if end, ok := maybe.Value(r.End); ok && n > end {
		return false
	}
	return true
}

func (r Range) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	writeBound(cw, r.Start)
	cw.Char(' ')
	writeBound(cw, r.End)
	return cw.Err()
}

func writeBound(cw *tokens.Writer, b maybe.Maybe[int]) {
	if n, ok := maybe.Value(b); ok {
		cw.Text(strconv.Itoa(n))
	} else {
		cw.Text("infinite")
	}
}

// Ranges is the value of the 'range' descriptor. An empty list means 'auto',
// i.e. the range depends on the system.
type Ranges []Range

// IsAuto is true for the 'auto' range.
func (rs Ranges) IsAuto() bool {
	return len(rs) == 0
}

func (rs Ranges) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	if rs.IsAuto() {
		cw.Text("auto")
		return cw.Err()
	}
	for i, r := range rs {
		if i > 0 {
			cw.Text(", ")
		}
		cw.Node(r)
	}
	return cw.Err()
}

// --- Pad -------------------------------------------------------------------

// Pad is the value of the 'pad' descriptor: counter representations shorter
// than Width are padded with Symbol.
type Pad struct {
	Width  int
	Symbol Symbol
}

func (p Pad) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text(strconv.Itoa(p.Width))
	cw.Char(' ')
	cw.Node(p.Symbol)
	return cw.Err()
}

// --- Speak-as --------------------------------------------------------------

// SpeakAsKind tells speech synthesizers how to read a counter.
type SpeakAsKind uint8

const (
	SpeakAuto SpeakAsKind = iota
	SpeakBullets
	SpeakNumbers
	SpeakWords
	SpeakSpellOut
	SpeakLikeStyle // speak like another counter style
)

var speakAsNames = map[SpeakAsKind]string{
	SpeakAuto:     "auto",
	SpeakBullets:  "bullets",
	SpeakNumbers:  "numbers",
	SpeakWords:    "words",
	SpeakSpellOut: "spell-out",
}

var speakAsByName = map[string]SpeakAsKind{
	"auto":      SpeakAuto,
	"bullets":   SpeakBullets,
	"numbers":   SpeakNumbers,
	"words":     SpeakWords,
	"spell-out": SpeakSpellOut,
}

// SpeakAs is the value of the 'speak-as' descriptor.
type SpeakAs struct {
	Kind  SpeakAsKind
	Style Name // for SpeakLikeStyle
}

func (s SpeakAs) ToCSS(w io.Writer) error {
	if s.Kind == SpeakLikeStyle {
		return s.Style.ToCSS(w)
	}
	cw := tokens.NewWriter(w)
	cw.Text(speakAsNames[s.Kind])
	return cw.Err()
}
