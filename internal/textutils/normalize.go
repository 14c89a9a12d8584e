// Package textutils provides text canonicalization utilities used by the
// name-based matcher.
package textutils

import "strings"

// Rule is a single literal-text substitution applied during name
// normalization. Rules are ordered: a rule's output can be affected by a later
// rule but a rule never re-runs over its own output.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultRules collapses common legal-entity suffix variants to one canonical
// form. The order matters: "Private Limited" must be rewritten before the bare
// "Limited" rule runs, or it would become "Private Ltd".
var DefaultRules = []Rule{
	{From: "Private Limited", To: "Pvt Ltd"},
	{From: "Pvt. Ltd", To: "Pvt Ltd"},
	{From: "Limited", To: "Ltd"},
	{From: "Ltd.", To: "Ltd"},
}

// NormalizeName canonicalizes a company or person name for equality
// comparison using DefaultRules. An empty or whitespace-only name normalizes
// to the empty string.
func NormalizeName(name string) string {
	return NormalizeNameWithRules(name, DefaultRules)
}

// NormalizeNameWithRules trims the name, applies each substitution rule in
// order as a plain literal replacement, then lowercases the result.
// Idempotent: normalizing an already-normalized name returns it unchanged.
func NormalizeNameWithRules(name string, rules []Rule) string {
	name = strings.TrimSpace(name)
	for _, rule := range rules {
		name = strings.ReplaceAll(name, rule.From, rule.To)
	}
	return strings.ToLower(name)
}
