package properties

import (
	"io"
	"strings"

	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// VendorPrefix is a browser vendor's marker in front of a name,
// e.g. “-webkit-”.
type VendorPrefix uint8

const (
	Webkit VendorPrefix = iota + 1
	Moz
	Ms
	O
	Epub
	Servo
)

var vendorPrefixes = map[VendorPrefix]string{
	Webkit: "-webkit-",
	Moz:    "-moz-",
	Ms:     "-ms-",
	O:      "-o-",
	Epub:   "-epub-",
	Servo:  "-servo-",
}

func (v VendorPrefix) String() string {
	return vendorPrefixes[v]
}

// ToCSS writes the prefix, including both dashes.
func (v VendorPrefix) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	cw.Text(v.String())
	return cw.Err()
}

// IsCustomPropertyName is true for names starting with “--”.
func IsCustomPropertyName(name string) bool {
	return strings.HasPrefix(name, "--")
}

// SplitVendorPrefix separates a known vendor prefix from a lower-case name.
// Custom property names never carry a vendor prefix, and neither do names
// with an unknown prefix: “-foo-bar” is returned unchanged.
func SplitVendorPrefix(name string) (maybe.Maybe[VendorPrefix], string) {
	if IsCustomPropertyName(name) || !strings.HasPrefix(name, "-") {
		return maybe.Nothing[VendorPrefix](), name
	}
	for v, p := range vendorPrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			return maybe.Just(v), name[len(p):]
		}
	}
	return maybe.Nothing[VendorPrefix](), name
}

// NormalizeName lower-cases a declaration name, except for custom property
// names, which are case-sensitive.
func NormalizeName(name string) string {
	if IsCustomPropertyName(name) {
		return name
	}
	return strings.ToLower(name)
}
