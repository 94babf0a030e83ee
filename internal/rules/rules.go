// Package rules produces the canned text returned by each endpoint. Every
// generator is a pure function of its normalized input.
package rules

import "strings"

// Rule pairs a predicate over lower-cased input with the text it yields
type Rule struct {
	Name  string
	Match func(text string) bool
	Text  string
}

// Table is an ordered list of rules
type Table []Rule

// First returns the text of the first matching rule, or fallback.
func (t Table) First(text, fallback string) string {
	for _, r := range t {
		if r.Match(text) {
			return r.Text
		}
	}
	return fallback
}

// All returns the texts of every matching rule, in table order.
func (t Table) All(text string) []string {
	var out []string
	for _, r := range t {
		if r.Match(text) {
			out = append(out, r.Text)
		}
	}
	return out
}

// ContainsAny matches when any keyword is a substring of the input.
func ContainsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}
