package css

import (
	"io"
	"strings"
)

// Declaration is single property: value pair. Empty Value means the
// declaration is not emitted.
type Declaration struct {
	Property string
	Value    string
}

// Group is an ordered list of declarations pushed to a selector at once.
type Group []Declaration

// Decls builds a group from alternating property and value arguments.
// Trailing property without value is ignored.
func Decls(pairs ...string) Group {
	g := make(Group, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		g = append(g, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return g
}

// Emitted returns declarations of the group which have a value.
func (g Group) Emitted() []Declaration {
	out := make([]Declaration, 0, len(g))
	for _, d := range g {
		if d.Value != "" {
			out = append(out, d)
		}
	}
	return out
}

// RuleSet accumulates declaration groups per selector preserving selector
// insertion order. Selectors may receive groups many times, nothing is
// deduplicated: later declarations shadow earlier ones through the cascade.
type RuleSet struct {
	order  []string
	groups map[string][]Group
}

// NewRuleSet returns empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{groups: make(map[string][]Group)}
}

// Add appends groups to selector, creating it if necessary.
func (rs *RuleSet) Add(selector string, groups ...Group) {
	if rs.groups == nil {
		rs.groups = make(map[string][]Group)
	}
	if _, ok := rs.groups[selector]; !ok {
		rs.order = append(rs.order, selector)
		rs.groups[selector] = nil
	}
	rs.groups[selector] = append(rs.groups[selector], groups...)
}

// Selectors returns selectors in insertion order.
func (rs *RuleSet) Selectors() []string {
	if rs == nil {
		return nil
	}
	return append([]string(nil), rs.order...)
}

// Groups returns groups pushed for selector.
func (rs *RuleSet) Groups(selector string) []Group {
	if rs == nil {
		return nil
	}
	return rs.groups[selector]
}

// Declarations returns all emitted declarations of selector in push order.
func (rs *RuleSet) Declarations(selector string) []Declaration {
	var out []Declaration
	for _, g := range rs.Groups(selector) {
		out = append(out, g.Emitted()...)
	}
	return out
}

// Lookup returns last emitted value of property for selector, which is the
// value that wins the cascade.
func (rs *RuleSet) Lookup(selector, property string) (string, bool) {
	decls := rs.Declarations(selector)
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Property == property {
			return decls[i].Value, true
		}
	}
	return "", false
}

// Merge appends everything from other keeping other's selector order.
func (rs *RuleSet) Merge(other *RuleSet) {
	if other == nil {
		return
	}
	for _, sel := range other.order {
		rs.Add(sel, other.groups[sel]...)
	}
}

// Empty reports whether serialization would produce nothing.
func (rs *RuleSet) Empty() bool {
	if rs == nil {
		return true
	}
	for _, sel := range rs.order {
		if len(rs.Declarations(sel)) > 0 {
			return false
		}
	}
	return true
}

// Rules converts rule set into stylesheet rules, selectors without emitted
// declarations are dropped.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	rules := make([]Rule, 0, len(rs.order))
	for _, sel := range rs.order {
		decls := rs.Declarations(sel)
		if len(decls) == 0 {
			continue
		}
		rules = append(rules, Rule{Selector: sel, Declarations: decls})
	}
	return rules
}

// Serialize produces compact CSS text: selector{prop:value;...} per selector.
func (rs *RuleSet) Serialize() string {
	var sb strings.Builder
	rs.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// WriteTo writes compact CSS, implementing io.WriterTo.
func (rs *RuleSet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, rule := range rs.Rules() {
		n, err := writeRule(w, &rule)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
