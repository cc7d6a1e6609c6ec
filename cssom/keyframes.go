package cssom

import (
	"io"

	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// KeyframesRule is an @keyframes rule, possibly vendor prefixed.
type KeyframesRule struct {
	VendorPrefix maybe.Maybe[properties.VendorPrefix]
	Name         string
	Keyframes    []*Keyframe
	location     tokens.Location
}

func (*KeyframesRule) isRule()                      {}
func (*KeyframesRule) Kind() RuleKind               { return KeyframesRuleKind }
func (r *KeyframesRule) Location() tokens.Location { return r.location }

func (r *KeyframesRule) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Char('@')
	if v, ok := maybe.Value(r.VendorPrefix); ok {
		cw.Node(v)
	}
	cw.Text("keyframes ")
	cw.Ident(r.Name)
	cw.Char('{')
	for _, k := range r.Keyframes {
		cw.Node(k)
	}
	cw.Char('}')
	return cw.Err()
}

// KeyframeSelector is the position of a keyframe, as a percentage of the
// animation's duration: 'from' is 0, 'to' is 100.
type KeyframeSelector float64

func (s KeyframeSelector) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Number(float64(s))
	cw.Char('%')
	return cw.Err()
}

// Keyframe is a block of declarations inside of @keyframes. Declarations
// may not be !important.
type Keyframe struct {
	Selectors    []KeyframeSelector
	Declarations properties.PropertyDeclarations
}

func (k *Keyframe) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	for i, s := range k.Selectors {
		if i > 0 {
			cw.Char(',')
		}
		cw.Node(s)
	}
	cw.Char('{')
	cw.Node(k.Declarations)
	cw.Char('}')
	return cw.Err()
}
