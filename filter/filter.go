// Package filter parses DEBUG-style filter specifications and decides whether
// a label is enabled by them.
//
// A specification is a list of tokens separated by spaces or, when the string
// holds no space, by commas. A token names a label exactly ("db"), a label
// prefix when it ends in '*' ("db:*"), or every label ("*"). A leading '-'
// turns the token into an exclusion. Exclusions always win over inclusions and
// a label nothing opts in stays disabled:
//
//	rules := filter.Parse("app:*,-app:noisy")
//	rules.Match("app:http")  // true
//	rules.Match("app:noisy") // false
//	rules.Match("other")     // false
package filter

import "strings"

const (
	// Negation is the leading marker that turns a token into an exclusion.
	Negation = "-"
	// Wildcard is the trailing marker that turns a token into a prefix match.
	// On its own it matches every label.
	Wildcard = "*"
)

// Rule is one token of a filter specification.
type Rule struct {
	// Negate is set for tokens that started with Negation.
	Negate bool
	// Pattern is the token without its Negation marker. A trailing Wildcard
	// is kept.
	Pattern string
}

// Wildcard reports whether the rule matches by prefix.
func (r Rule) Wildcard() bool {
	return strings.HasSuffix(r.Pattern, Wildcard)
}

// Prefix returns the pattern with the trailing Wildcard removed.
func (r Rule) Prefix() string {
	return strings.TrimSuffix(r.Pattern, Wildcard)
}

// Match reports whether label is named by the rule, ignoring Negate.
func (r Rule) Match(label string) bool {
	if r.Wildcard() {
		return strings.HasPrefix(label, r.Prefix())
	}
	return label == r.Pattern
}

func (r Rule) String() string {
	if r.Negate {
		return Negation + r.Pattern
	}
	return r.Pattern
}

// Rules is an ordered filter specification.
type Rules []Rule

// Parse splits spec into rules. Empty tokens are dropped, so an empty or
// blank spec yields no rules and every label is disabled.
func Parse(spec string) Rules {
	var tokens []string
	switch {
	case strings.Contains(spec, " "):
		tokens = strings.Split(spec, " ")
	case strings.Contains(spec, ","):
		tokens = strings.Split(spec, ",")
	default:
		tokens = []string{spec}
	}

	rules := make(Rules, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, Negation) {
			rules = append(rules, Rule{Negate: true, Pattern: token[len(Negation):]})
			continue
		}
		rules = append(rules, Rule{Pattern: token})
	}
	return rules
}

// Match reports whether label is enabled. Exclusions are scanned first and
// any hit disables the label regardless of inclusions; otherwise the first
// inclusion naming the label enables it.
func (rs Rules) Match(label string) bool {
	for _, r := range rs {
		if r.Negate && r.Match(label) {
			return false
		}
	}
	for _, r := range rs {
		if !r.Negate && r.Match(label) {
			return true
		}
	}
	return false
}

// Empty reports whether rs holds no rules.
func (rs Rules) Empty() bool { return len(rs) == 0 }

// String renders the rules back as a space separated specification.
func (rs Rules) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// Match parses spec and evaluates label against it.
func Match(spec, label string) bool {
	return Parse(spec).Match(label)
}
