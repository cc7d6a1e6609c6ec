package media

import (
	"io"
	"strings"

	"github.com/npillmayer/csskit/tokens"
)

// Keyword values of discrete media features. The zero value of each type
// stands for a feature in boolean context, e.g. '(hover)'.

type OrientationValue uint8

const (
	OrientationUnset OrientationValue = iota
	Portrait
	Landscape
)

type ScanValue uint8

const (
	ScanUnset ScanValue = iota
	Interlace
	Progressive
)

// GridValue is the value of the 'grid' feature, which is 0 or 1.
type GridValue uint8

const (
	GridUnset  GridValue = iota
	GridBitmap           // 0
	GridDevice           // 1
)

type UpdateValue uint8

const (
	UpdateUnset UpdateValue = iota
	UpdateNone
	UpdateSlow
	UpdateFast
)

type OverflowBlockValue uint8

const (
	OverflowBlockUnset OverflowBlockValue = iota
	OverflowBlockNone
	OverflowBlockScroll
	OverflowBlockOptionalPaged
	OverflowBlockPaged
)

type OverflowInlineValue uint8

const (
	OverflowInlineUnset OverflowInlineValue = iota
	OverflowInlineNone
	OverflowInlineScroll
)

type ColorGamutValue uint8

const (
	ColorGamutUnset ColorGamutValue = iota
	SRGB
	P3
	Rec2020
)

// PointerValue is the value of 'pointer' and 'any-pointer'.
type PointerValue uint8

const (
	PointerUnset PointerValue = iota
	PointerNone
	PointerCoarse
	PointerFine
)

// HoverValue is the value of 'hover' and 'any-hover'.
type HoverValue uint8

const (
	HoverUnset HoverValue = iota
	HoverNone
	HoverHover
)

// Transform3DValue is the value of '-webkit-transform-3d', which is 0 or 1.
type Transform3DValue uint8

const (
	Transform3DUnset Transform3DValue = iota
	Transform3DFalse                  // 0
	Transform3DTrue                   // 1
)

var orientationNames = []string{"", "portrait", "landscape"}
var scanNames = []string{"", "interlace", "progressive"}
var gridNames = []string{"", "0", "1"}
var updateNames = []string{"", "none", "slow", "fast"}
var overflowBlockNames = []string{"", "none", "scroll", "optional-paged", "paged"}
var overflowInlineNames = []string{"", "none", "scroll"}
var colorGamutNames = []string{"", "srgb", "p3", "rec2020"}
var pointerNames = []string{"", "none", "coarse", "fine"}
var hoverNames = []string{"", "none", "hover"}
var transform3DNames = []string{"", "0", "1"}

func (v OrientationValue) String() string    { return orientationNames[v] }
func (v ScanValue) String() string           { return scanNames[v] }
func (v GridValue) String() string           { return gridNames[v] }
func (v UpdateValue) String() string         { return updateNames[v] }
func (v OverflowBlockValue) String() string  { return overflowBlockNames[v] }
func (v OverflowInlineValue) String() string { return overflowInlineNames[v] }
func (v ColorGamutValue) String() string     { return colorGamutNames[v] }
func (v PointerValue) String() string        { return pointerNames[v] }
func (v HoverValue) String() string          { return hoverNames[v] }
func (v Transform3DValue) String() string    { return transform3DNames[v] }

// keyword is the constraint for the keyword types above.
type keyword interface {
	~uint8
	String() string
}

// parseKeyword matches the next token against the names of a keyword type.
// Index 0 of names (the unset value) never matches. Names which are digits
// match number tokens.
func parseKeyword[K keyword](in *tokens.Input, names []string, what string) (K, error) {
	t, err := in.Next()
	if err != nil {
		return 0, err
	}
	var text string
	switch {
	case t.Kind == tokens.Ident:
		text = strings.ToLower(t.Value)
	case t.Kind == tokens.Number && t.IsInteger:
		text = t.Value
	default:
		return 0, invalidValue(t, what)
	}
	for i := 1; i < len(names); i++ {
		if names[i] == text {
			return K(i), nil
		}
	}
	return 0, invalidValue(t, what)
}

func writeKeyword[K keyword](w io.Writer, name string, v K) error {
	cw := tokens.NewWriter(w)
	cw.Char('(')
	cw.Text(name)
	if v != 0 {
		cw.Char(':')
		cw.Text(v.String())
	}
	cw.Char(')')
	return cw.Err()
}
