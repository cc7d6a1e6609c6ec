package media

import (
	"fmt"
	"io"

	"github.com/npillmayer/csskit/tokens"
)

// Feature identifies a media feature.
type Feature uint8

const (
	FeatureWidth Feature = iota
	FeatureHeight
	FeatureAspectRatio
	FeatureOrientation
	FeatureResolution
	FeatureScan
	FeatureGrid
	FeatureUpdate
	FeatureOverflowBlock
	FeatureOverflowInline
	FeatureColor
	FeatureColorIndex
	FeatureMonochrome
	FeatureColorGamut
	FeaturePointer
	FeatureHover
	FeatureAnyPointer
	FeatureAnyHover
	FeatureTransform3D
)

var featureNames = [...]string{
	FeatureWidth:          "width",
	FeatureHeight:         "height",
	FeatureAspectRatio:    "aspect-ratio",
	FeatureOrientation:    "orientation",
	FeatureResolution:     "resolution",
	FeatureScan:           "scan",
	FeatureGrid:           "grid",
	FeatureUpdate:         "update",
	FeatureOverflowBlock:  "overflow-block",
	FeatureOverflowInline: "overflow-inline",
	FeatureColor:          "color",
	FeatureColorIndex:     "color-index",
	FeatureMonochrome:     "monochrome",
	FeatureColorGamut:     "color-gamut",
	FeaturePointer:        "pointer",
	FeatureHover:          "hover",
	FeatureAnyPointer:     "any-pointer",
	FeatureAnyHover:       "any-hover",
	FeatureTransform3D:    "-webkit-transform-3d",
}

func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return fmt.Sprintf("feature(%d)", f)
}

// Expression is a media feature expression, e.g. '(min-width: 30em)'. The
// set of implementations is closed; there is one type per Feature.
type Expression interface {
	tokens.Serializer
	Feature() Feature
	isExpression()
}

// Range features

type Width struct{ Range Range[Length] }
type Height struct{ Range Range[Length] }
type AspectRatio struct{ Range Range[Ratio] }
type ResolutionExpr struct{ Range Range[Resolution] }
type Color struct{ Range Range[ColorBitDepth] }
type ColorIndexExpr struct{ Range Range[ColorIndex] }
type Monochrome struct{ Range Range[MonochromeBitDepth] }

// Discrete features

type Orientation struct{ Value OrientationValue }
type Scan struct{ Value ScanValue }
type Grid struct{ Value GridValue }
type Update struct{ Value UpdateValue }
type OverflowBlock struct{ Value OverflowBlockValue }
type OverflowInline struct{ Value OverflowInlineValue }
type ColorGamut struct{ Value ColorGamutValue }
type Pointer struct{ Value PointerValue }
type Hover struct{ Value HoverValue }
type AnyPointer struct{ Value PointerValue }
type AnyHover struct{ Value HoverValue }
type Transform3D struct{ Value Transform3DValue }

func (Width) Feature() Feature          { return FeatureWidth }
func (Height) Feature() Feature         { return FeatureHeight }
func (AspectRatio) Feature() Feature    { return FeatureAspectRatio }
func (ResolutionExpr) Feature() Feature { return FeatureResolution }
func (Color) Feature() Feature          { return FeatureColor }
func (ColorIndexExpr) Feature() Feature { return FeatureColorIndex }
func (Monochrome) Feature() Feature     { return FeatureMonochrome }
func (Orientation) Feature() Feature    { return FeatureOrientation }
func (Scan) Feature() Feature           { return FeatureScan }
func (Grid) Feature() Feature           { return FeatureGrid }
func (Update) Feature() Feature         { return FeatureUpdate }
func (OverflowBlock) Feature() Feature  { return FeatureOverflowBlock }
func (OverflowInline) Feature() Feature { return FeatureOverflowInline }
func (ColorGamut) Feature() Feature     { return FeatureColorGamut }
func (Pointer) Feature() Feature        { return FeaturePointer }
func (Hover) Feature() Feature          { return FeatureHover }
func (AnyPointer) Feature() Feature     { return FeatureAnyPointer }
func (AnyHover) Feature() Feature       { return FeatureAnyHover }
func (Transform3D) Feature() Feature    { return FeatureTransform3D }

func (e Width) ToCSS(w io.Writer) error          { return writeRange(w, FeatureWidth.String(), e.Range) }
func (e Height) ToCSS(w io.Writer) error         { return writeRange(w, FeatureHeight.String(), e.Range) }
func (e AspectRatio) ToCSS(w io.Writer) error    { return writeRange(w, FeatureAspectRatio.String(), e.Range) }
func (e ResolutionExpr) ToCSS(w io.Writer) error { return writeRange(w, FeatureResolution.String(), e.Range) }
func (e Color) ToCSS(w io.Writer) error          { return writeRange(w, FeatureColor.String(), e.Range) }
func (e ColorIndexExpr) ToCSS(w io.Writer) error { return writeRange(w, FeatureColorIndex.String(), e.Range) }
func (e Monochrome) ToCSS(w io.Writer) error     { return writeRange(w, FeatureMonochrome.String(), e.Range) }
func (e Orientation) ToCSS(w io.Writer) error    { return writeKeyword(w, FeatureOrientation.String(), e.Value) }
func (e Scan) ToCSS(w io.Writer) error           { return writeKeyword(w, FeatureScan.String(), e.Value) }
func (e Grid) ToCSS(w io.Writer) error           { return writeKeyword(w, FeatureGrid.String(), e.Value) }
func (e Update) ToCSS(w io.Writer) error         { return writeKeyword(w, FeatureUpdate.String(), e.Value) }
func (e OverflowBlock) ToCSS(w io.Writer) error  { return writeKeyword(w, FeatureOverflowBlock.String(), e.Value) }
func (e OverflowInline) ToCSS(w io.Writer) error { return writeKeyword(w, FeatureOverflowInline.String(), e.Value) }
func (e ColorGamut) ToCSS(w io.Writer) error     { return writeKeyword(w, FeatureColorGamut.String(), e.Value) }
func (e Pointer) ToCSS(w io.Writer) error        { return writeKeyword(w, FeaturePointer.String(), e.Value) }
func (e Hover) ToCSS(w io.Writer) error          { return writeKeyword(w, FeatureHover.String(), e.Value) }
func (e AnyPointer) ToCSS(w io.Writer) error     { return writeKeyword(w, FeatureAnyPointer.String(), e.Value) }
func (e AnyHover) ToCSS(w io.Writer) error       { return writeKeyword(w, FeatureAnyHover.String(), e.Value) }
func (e Transform3D) ToCSS(w io.Writer) error    { return writeKeyword(w, FeatureTransform3D.String(), e.Value) }

func (Width) isExpression()          {}
func (Height) isExpression()         {}
func (AspectRatio) isExpression()    {}
func (ResolutionExpr) isExpression() {}
func (Color) isExpression()          {}
func (ColorIndexExpr) isExpression() {}
func (Monochrome) isExpression()     {}
func (Orientation) isExpression()    {}
func (Scan) isExpression()           {}
func (Grid) isExpression()           {}
func (Update) isExpression()         {}
func (OverflowBlock) isExpression()  {}
func (OverflowInline) isExpression() {}
func (ColorGamut) isExpression()     {}
func (Pointer) isExpression()        {}
func (Hover) isExpression()          {}
func (AnyPointer) isExpression()     {}
func (AnyHover) isExpression()       {}
func (Transform3D) isExpression()    {}

// IsRangeable is true for features which accept min-/max- prefixes and
// range syntax.
func (f Feature) IsRangeable() bool {
	switch f {
	case FeatureWidth, FeatureHeight, FeatureAspectRatio, FeatureResolution,
		FeatureColor, FeatureColorIndex, FeatureMonochrome:
		return true
	}
	return false
}
