package htmlstyles

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/cssom/properties"
	"golang.org/x/net/html"
)

// Match is a style rule matching an element node.
type Match struct {
	Rule        *cssom.StyleRule
	Specificity cascadia.Specificity // of the most specific matching selector
}

// MatchingRules returns the style rules of all stylesheets which match
// element node n, ordered by ascending specificity. Rules of equal
// specificity keep their source order.
func MatchingRules(styles []*StyleElement, n *html.Node) []Match {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	var matches []Match
	for _, s := range styles {
		cssom.Walk(s.Sheet, func(r cssom.Rule, depth int) bool {
			if sr, ok := r.(*cssom.StyleRule); ok {
				if spec, ok := sr.Selectors.Specificity(n); ok {
					matches = append(matches, Match{Rule: sr, Specificity: spec})
				}
			}
			return true
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Specificity.Less(matches[j].Specificity)
	})
	tracer().Debugf("%d rules match <%s>", len(matches), n.Data)
	return matches
}

// Cascade determines the declarations in effect for element node n, one
// per property name, sorted by name. Normal declarations of the
// stylesheets lose against normal declarations of the 'style' attribute,
// which lose against important declarations of the stylesheets, which in
// turn lose against important declarations of the 'style' attribute.
// Within each of these levels, specificity and then source order decide.
// Inheritance is not performed.
func Cascade(styles []*StyleElement, n *html.Node) (properties.PropertyDeclarations, error) {
	inline, err := InlineStyle(n)
	if err != nil {
		return nil, err
	}
	var sheet properties.PropertyDeclarations
	for _, m := range MatchingRules(styles, n) {
		sheet = append(sheet, m.Rule.Declarations...)
	}
	winners := make(map[string]properties.PropertyDeclaration)
	for _, important := range []bool{false, true} {
		for _, decls := range []properties.PropertyDeclarations{sheet, inline} {
			for _, d := range decls {
				if d.IsImportant() == important {
					winners[d.FullName()] = d
				}
			}
		}
	}
	result := make(properties.PropertyDeclarations, 0, len(winners))
	for _, d := range winners {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FullName() < result[j].FullName()
	})
	return result, nil
}
