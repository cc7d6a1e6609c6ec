package cssom

import (
	"fmt"
	"io"

	"github.com/npillmayer/csskit/csserr"
	"github.com/npillmayer/csskit/tokens"
)

// Rule is the type stylesheets consist of.
type Rule interface {
	tokens.Serializer
	Kind() RuleKind
	Location() tokens.Location // where the rule starts in the input
	isRule()
}

// RuleKind enumerates the types of rules.
type RuleKind uint8

const (
	StyleRuleKind RuleKind = iota
	CounterStyleRuleKind
	MediaRuleKind
	SupportsRuleKind
	KeyframesRuleKind
	FontFaceRuleKind
	PageRuleKind
	ImportRuleKind
)

var ruleKindNames = [...]string{
	StyleRuleKind:        "style",
	CounterStyleRuleKind: "@counter-style",
	MediaRuleKind:        "@media",
	SupportsRuleKind:     "@supports",
	KeyframesRuleKind:    "@keyframes",
	FontFaceRuleKind:     "@font-face",
	PageRuleKind:         "@page",
	ImportRuleKind:       "@import",
}

func (k RuleKind) String() string {
	if int(k) < len(ruleKindNames) {
		return ruleKindNames[k]
	}
	return fmt.Sprintf("RuleKind(%d)", k)
}

// --- Rule collections ------------------------------------------------------

// HasCSSRules is implemented by everything holding a list of rules: style
// sheets and conditional group rules.
type HasCSSRules interface {
	CSSRules() *CSSRules
	RulesSlice() []Rule   // read-only view
	RulesVec() []Rule     // a copy owned by the caller
	RulesVecMut() *[]Rule // the backing slice itself
}

// CSSRules is an ordered list of rules.
type CSSRules struct {
	rules []Rule
}

// NewCSSRules creates a rule list holding rules.
func NewCSSRules(rules ...Rule) CSSRules {
	return CSSRules{rules: rules}
}

// Len returns the number of rules.
func (rl *CSSRules) Len() int {
	return len(rl.rules)
}

// At returns the i-th rule. It panics if i is out of range.
func (rl *CSSRules) At(i int) Rule {
	return rl.rules[i]
}

// Slice returns the rules. Clients must not modify it.
func (rl *CSSRules) Slice() []Rule {
	return rl.rules
}

// Vec returns a copy of the rules.
func (rl *CSSRules) Vec() []Rule {
	v := make([]Rule, len(rl.rules))
	copy(v, rl.rules)
	return v
}

// VecMut returns the backing slice, for clients wanting to edit the list
// in place. Edits bypass the checks of Insert.
func (rl *CSSRules) VecMut() *[]Rule {
	return &rl.rules
}

// Append appends rules without any checks.
func (rl *CSSRules) Append(rules ...Rule) {
	rl.rules = append(rl.rules, rules...)
}

// Insert inserts r at position i, with 0 ≤ i ≤ Len. @import rules may not
// be inserted after other rules, and other rules not before an @import.
func (rl *CSSRules) Insert(i int, r Rule) error {
	if i < 0 || i > len(rl.rules) {
		return csserr.Newf(csserr.Basic, r.Location(), "index %d out of range [0…%d]", i, len(rl.rules))
	}
	if r.Kind() == ImportRuleKind {
		if i > 0 && rl.rules[i-1].Kind() != ImportRuleKind {
			return csserr.New(csserr.ImportAfterOtherRules, r.Location(), "")
		}
	} else if i < len(rl.rules) && rl.rules[i].Kind() == ImportRuleKind {
		return csserr.Newf(csserr.RuleNotAllowedHere, r.Location(), "%s before @import", r.Kind())
	}
	rl.rules = append(rl.rules, nil)
	copy(rl.rules[i+1:], rl.rules[i:])
	rl.rules[i] = r
	return nil
}

// Remove removes and returns the rule at position i.
func (rl *CSSRules) Remove(i int) (Rule, error) {
	if i < 0 || i >= len(rl.rules) {
		return nil, csserr.Newf(csserr.Basic, tokens.Location{}, "index %d out of range [0…%d)", i, len(rl.rules))
	}
	r := rl.rules[i]
	rl.rules = append(rl.rules[:i], rl.rules[i+1:]...)
	return r, nil
}

// ToCSS writes the rules one after another, without separators.
func (rl *CSSRules) ToCSS(w io.Writer) error {
	cw := tokens.NewWriter(w)
	for _, r := range rl.rules {
		cw.Node(r)
	}
	return cw.Err()
}

// ruleContainer implements HasCSSRules for types embedding it.
type ruleContainer struct {
	Rules CSSRules
}

func (c *ruleContainer) CSSRules() *CSSRules  { return &c.Rules }
func (c *ruleContainer) RulesSlice() []Rule   { return c.Rules.Slice() }
func (c *ruleContainer) RulesVec() []Rule     { return c.Rules.Vec() }
func (c *ruleContainer) RulesVecMut() *[]Rule { return c.Rules.VecMut() }

// Walk calls f for every rule in rules and, depth first, for the rules of
// nested rule lists. If f returns false, the rules nested in r are skipped.
func Walk(rules HasCSSRules, f func(r Rule, depth int) bool) {
	walk(rules, 0, f)
}

func walk(rules HasCSSRules, depth int, f func(Rule, int) bool) {
	for _, r := range rules.RulesSlice() {
		if f(r, depth) {
			if nested, ok := r.(HasCSSRules); ok {
				walk(nested, depth+1, f)
			}
		}
	}
}
