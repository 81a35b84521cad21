// Package blacklist provides blacklist rule parsing and kernel suppression.
package blacklist

import "regexp"

// Kind discriminates the two rule forms.
type Kind string

const (
	// KindGroup suppresses every kernel whose version group equals the pattern.
	KindGroup Kind = "GROUP"
	// KindKernel suppresses every kernel whose package name matches the
	// pattern, applied as a regular expression anchored at the start.
	KindKernel Kind = "KERNEL"
)

// Rule is a single suppression rule.
type Rule struct {
	Kind    Kind
	Pattern string         // group label, or regular expression source
	re      *regexp.Regexp // compiled matcher for KindKernel rules
}

// RuleSet is an insertion-ordered sequence of rules, built once from file
// contents and immutable thereafter. Rules are not deduplicated.
type RuleSet struct {
	Rules []Rule
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rules)
}
