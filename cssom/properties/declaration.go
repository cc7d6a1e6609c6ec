package properties

import (
	"io"
	"strings"

	"github.com/npillmayer/csskit/maybe"
	"github.com/npillmayer/csskit/tokens"
)

// PropertyDeclaration is a parsed “name: value” pair.
type PropertyDeclaration struct {
	VendorPrefix maybe.Maybe[VendorPrefix] // Nothing if the name is not prefixed
	Name         string                    // normalized, without vendor prefix
	Value        UnparsedValue
	Importance   Importance
}

// HasCustomPropertyName is true for custom properties (“--foo”).
func (d PropertyDeclaration) HasCustomPropertyName() bool {
	return IsCustomPropertyName(d.Name)
}

// HasVendorPrefix is true for a name with a known vendor prefix as well as
// for names starting with a single dash, e.g. “-foo-bar”.
func (d PropertyDeclaration) HasVendorPrefix() bool {
	if d.HasCustomPropertyName() {
		return false
	}
	return !maybe.IsNothing(d.VendorPrefix) || strings.HasPrefix(d.Name, "-")
}

// HasNameIgnoringCase compares the unprefixed name, ignoring ASCII case.
func (d PropertyDeclaration) HasNameIgnoringCase(name string) bool {
	return strings.EqualFold(d.Name, name)
}

// FullName is the name including its vendor prefix.
func (d PropertyDeclaration) FullName() string {
	if v, ok := maybe.Value(d.VendorPrefix); ok {
		return v.String() + d.Name
	}
	return d.Name
}

// IsImportant is true if the declaration was marked “!important”.
func (d PropertyDeclaration) IsImportant() bool {
	return d.Importance.IsImportant()
}

// ToCSS writes “prefix name:value importance;”.
func (d PropertyDeclaration) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	if v, ok := maybe.Value(d.VendorPrefix); ok {
		cw.Node(v)
	}
	cw.Ident(d.Name)
	cw.Char(':')
	if d.Value != nil {
		cw.Node(d.Value)
	}
	cw.Node(d.Importance)
	cw.Char(';')
	return cw.Err()
}

func (d PropertyDeclaration) String() string {
	return tokens.CSSString(d)
}

// Equal compares two declarations field by field. Values compare by their
// canonical text.
func (d PropertyDeclaration) Equal(other PropertyDeclaration) bool {
	return Compare(d, other) == 0
}

// Compare orders declarations by name, vendor prefix, value text and
// importance.
func Compare(a, b PropertyDeclaration) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	pa := maybe.OrElse(a.VendorPrefix, 0)
	pb := maybe.OrElse(b.VendorPrefix, 0)
	if pa != pb {
		if pa < pb {
			return -1
		}
		return 1
	}
	if c := strings.Compare(valueText(a.Value), valueText(b.Value)); c != 0 {
		return c
	}
	if a.Importance != b.Importance {
		if a.Importance < b.Importance {
			return -1
		}
		return 1
	}
	return 0
}

func valueText(v UnparsedValue) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// PropertyDeclarations is the declaration list of a rule, in source order.
type PropertyDeclarations []PropertyDeclaration

// Get returns the declaration which is in effect for a (full) property
// name: the last important one or, if there is none, the last one.
func (decls PropertyDeclarations) Get(name string) (PropertyDeclaration, bool) {
	name = NormalizeName(name)
	var found PropertyDeclaration
	ok := false
	for _, d := range decls {
		if d.FullName() != name {
			continue
		}
		if !ok || d.IsImportant() || !found.IsImportant() {
			found, ok = d, true
		}
	}
	return found, ok
}

// Names returns the full property names, without duplicates, in order of
// their first appearance.
func (decls PropertyDeclarations) Names() []string {
	seen := make(map[string]bool, len(decls))
	names := make([]string, 0, len(decls))
	for _, d := range decls {
		n := d.FullName()
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// ToCSS writes all declarations, each terminated by ';'.
func (decls PropertyDeclarations) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	for _, d := range decls {
		cw.Node(d)
	}
	return cw.Err()
}
