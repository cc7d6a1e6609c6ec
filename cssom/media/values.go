package media

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/tokens"
	"github.com/npillmayer/tyse/core/dimen"
)

// Value is a quantity a range feature is compared against.
type Value interface {
	tokens.Serializer
	IsZero() bool
}

// --- Length ----------------------------------------------------------------

// LengthUnit is the unit of a Length.
type LengthUnit uint8

const (
	PX LengthUnit = iota
	CM
	MM
	Q
	IN
	PT
	PC
	EM
	REM
	EX
	CH
	VW
	VH
	VMIN
	VMAX
)

var lengthUnits = map[LengthUnit]string{
	PX: "px", CM: "cm", MM: "mm", Q: "q", IN: "in", PT: "pt", PC: "pc",
	EM: "em", REM: "rem", EX: "ex", CH: "ch",
	VW: "vw", VH: "vh", VMIN: "vmin", VMAX: "vmax",
}

var lengthUnitByName = func() map[string]LengthUnit {
	m := make(map[string]LengthUnit, len(lengthUnits))
	for u, s := range lengthUnits {
		m[s] = u
	}
	return m
}()

// inches per unit, for absolute units
var inchesPer = map[LengthUnit]float64{
	PX: 1.0 / 96,
	CM: 1.0 / 2.54,
	MM: 1.0 / 25.4,
	Q:  1.0 / 101.6,
	IN: 1.0,
	PT: 1.0 / 72,
	PC: 1.0 / 6,
}

func (u LengthUnit) String() string {
	return lengthUnits[u]
}

// IsAbsolute is true for units which do not depend on fonts or the viewport.
func (u LengthUnit) IsAbsolute() bool {
	_, ok := inchesPer[u]
	return ok
}

// Length is a CSS length.
type Length struct {
	Value float64
	Unit  LengthUnit
}

func (l Length) IsZero() bool {
	return l.Value == 0
}

func (l Length) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Number(l.Value)
	cw.Text(l.Unit.String())
	return cw.Err()
}

// Dimen converts an absolute length to design units. For font- or
// viewport-relative lengths, ok is false.
func (l Length) Dimen() (du dimen.DU, ok bool) {
	f, ok := inchesPer[l.Unit]
	if !ok {
		return 0, false
	}
	points := l.Value * f * 72.27 // TeX points per inch
	return dimen.DU(math.Round(points * float64(dimen.PT))), true
}

func parseLength(in *tokens.Input) (Length, error) {
	t, err := in.Next()
	if err != nil {
		return Length{}, err
	}
	switch t.Kind {
	case tokens.Number:
		if t.Number == 0 {
			return Length{Value: 0, Unit: PX}, nil
		}
	case tokens.Dimension:
		if u, ok := lengthUnitByName[strings.ToLower(t.Unit)]; ok {
			return Length{Value: t.Number, Unit: u}, nil
		}
	}
	return Length{}, invalidValue(t, "length")
}

// --- Ratio -----------------------------------------------------------------

// Ratio is an aspect ratio, e.g. 16/9.
type Ratio struct {
	Num, Den int
}

func (r Ratio) IsZero() bool {
	return r.Num == 0
}

func (r Ratio) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text(strconv.Itoa(r.Num))
	cw.Char('/')
	cw.Text(strconv.Itoa(r.Den))
	return cw.Err()
}

// Float returns the ratio as a number.
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// <ratio> = <positive-integer> [ / <positive-integer> ]?
func parseRatio(in *tokens.Input) (Ratio, error) {
	loc := in.Location()
	num, err := in.ExpectInteger()
	if err != nil {
		return Ratio{}, err
	}
	den := 1
	if in.Try(func(in *tokens.Input) error { return in.ExpectDelim('/') }) == nil {
		if den, err = in.ExpectInteger(); err != nil {
			return Ratio{}, err
		}
	}
	if num <= 0 || den <= 0 {
		return Ratio{}, csserr.Newf(csserr.InvalidMediaValue, loc, "ratio %d/%d", num, den)
	}
	return Ratio{Num: num, Den: den}, nil
}

// --- Resolution ------------------------------------------------------------

// ResolutionUnit is the unit of a Resolution.
type ResolutionUnit uint8

const (
	DPPX ResolutionUnit = iota
	DPI
	DPCM
)

var resolutionUnits = map[ResolutionUnit]string{
	DPPX: "dppx", DPI: "dpi", DPCM: "dpcm",
}

func (u ResolutionUnit) String() string {
	return resolutionUnits[u]
}

// Resolution is a pixel density.
type Resolution struct {
	Value float64
	Unit  ResolutionUnit
}

func (r Resolution) IsZero() bool {
	return r.Value == 0
}

func (r Resolution) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Number(r.Value)
	cw.Text(r.Unit.String())
	return cw.Err()
}

// DotsPerPixel converts to dppx.
func (r Resolution) DotsPerPixel() float64 {
	switch r.Unit {
	case DPI:
		return r.Value / 96
	case DPCM:
		return r.Value * 2.54 / 96
	}
	return r.Value
}

func parseResolution(in *tokens.Input) (Resolution, error) {
	t, err := in.Next()
	if err != nil {
		return Resolution{}, err
	}
	if t.Kind == tokens.Dimension && t.Number > 0 {
		switch strings.ToLower(t.Unit) {
		case "dppx", "x":
			return Resolution{Value: t.Number, Unit: DPPX}, nil
		case "dpi":
			return Resolution{Value: t.Number, Unit: DPI}, nil
		case "dpcm":
			return Resolution{Value: t.Number, Unit: DPCM}, nil
		}
	}
	return Resolution{}, invalidValue(t, "resolution")
}

// --- Counts ----------------------------------------------------------------

// ColorBitDepth is the number of bits per color component.
type ColorBitDepth uint

// MonochromeBitDepth is the number of bits per pixel of a monochrome device.
type MonochromeBitDepth uint

// ColorIndex is the number of entries of a device's color lookup table.
type ColorIndex uint

func (n ColorBitDepth) IsZero() bool      { return n == 0 }
func (n MonochromeBitDepth) IsZero() bool { return n == 0 }
func (n ColorIndex) IsZero() bool         { return n == 0 }

func (n ColorBitDepth) ToCSS(w io.Writer) error      { return writeUint(w, uint(n)) }
func (n MonochromeBitDepth) ToCSS(w io.Writer) error { return writeUint(w, uint(n)) }
func (n ColorIndex) ToCSS(w io.Writer) error         { return writeUint(w, uint(n)) }

func writeUint(w io.Writer, n uint) error {
	cw := tokens.NewWriter(w)
	cw.Text(strconv.FormatUint(uint64(n), 10))
	return cw.Err()
}

func parseUint[T ~uint](in *tokens.Input) (T, error) {
	t, err := in.Next()
	if err != nil {
		return 0, err
	}
	if t.Kind != tokens.Number || !t.IsInteger || t.Number < 0 || t.Number > math.MaxInt32 {
		return 0, invalidValue(t, "non-negative integer")
	}
	return T(t.Number), nil
}

func invalidValue(t tokens.Token, expected string) error {
	if t.Kind == tokens.EOF {
		return tokens.Unexpected(t, expected)
	}
	return csserr.Newf(csserr.InvalidMediaValue, t.Location, "%s is not a %s", t.Raw, expected)
}
