// Package rule implements the test ID attribute rule: deciding which
// elements are subject to it, which required attributes an element is
// missing, and synthesizing the missing attributes for auto-fix.
package rule

import (
	"regexp"

	"github.com/ariel-frischer/testidcheck/internal/markup"
)

// Rule is the immutable rule configuration for one run.
type Rule struct {
	requiredAttributes  []string
	exemptElements      map[string]struct{}
	internalPattern     *regexp.Regexp
	interactiveElements map[string]struct{}
	dynamicFunction     string
}

// Options holds the inputs used to build a Rule.
type Options struct {
	RequiredAttributes  []string
	ExemptElements      []string
	InternalPattern     *regexp.Regexp
	InteractiveElements []string
	DynamicFunction     string
}

// New builds a Rule. Duplicate required attributes are dropped, keeping
// the first occurrence.
func New(opts Options) *Rule {
	return &Rule{
		requiredAttributes:  dedupe(opts.RequiredAttributes),
		exemptElements:      toSet(opts.ExemptElements),
		internalPattern:     opts.InternalPattern,
		interactiveElements: toSet(opts.InteractiveElements),
		dynamicFunction:     opts.DynamicFunction,
	}
}

// RequiredAttributes returns the required attribute names in rule order.
func (r *Rule) RequiredAttributes() []string {
	out := make([]string, len(r.requiredAttributes))
	copy(out, r.requiredAttributes)
	return out
}

// DynamicFunction returns the helper whose spread call satisfies the rule.
func (r *Rule) DynamicFunction() string {
	return r.dynamicFunction
}

// InScope reports whether an element named name is subject to the rule.
// Exempt names and names matching the internal pattern are never in scope;
// everything else must be listed as interactive.
func (r *Rule) InScope(name string) bool {
	if _, ok := r.exemptElements[name]; ok {
		return false
	}
	if r.internalPattern != nil && r.internalPattern.MatchString(name) {
		return false
	}
	_, ok := r.interactiveElements[name]
	return ok
}

// Missing returns the required attributes el does not satisfy, in rule
// order. A spread call to the dynamic function satisfies all of them.
func (r *Rule) Missing(el *markup.Element) []string {
	if el.SpreadsCall(r.dynamicFunction) {
		return nil
	}

	var missing []string
	for _, attr := range r.requiredAttributes {
		if !el.HasAttribute(attr) {
			missing = append(missing, attr)
		}
	}
	return missing
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
