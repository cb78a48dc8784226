package rule

import "github.com/ariel-frischer/testidcheck/internal/markup"

// Planner synthesizes missing attributes on elements of a parsed document.
type Planner struct {
	rule *Rule
	ids  IDGenerator
}

// NewPlanner returns a Planner for r drawing values from ids.
func NewPlanner(r *Rule, ids IDGenerator) *Planner {
	return &Planner{rule: r, ids: ids}
}

// Fix inserts attr on el with a freshly generated value and records the
// insertion on doc. It returns false, leaving doc untouched, when el
// already satisfies attr.
func (p *Planner) Fix(doc *markup.Document, el *markup.Element, attr string) (markup.Insertion, bool) {
	if el.HasAttribute(attr) || el.SpreadsCall(p.rule.dynamicFunction) {
		return markup.Insertion{}, false
	}
	return doc.Insert(el, attr, p.ids.NextID()), true
}

// FixAll applies Fix for every attribute el is missing and returns the
// insertions made.
func (p *Planner) FixAll(doc *markup.Document, el *markup.Element) []markup.Insertion {
	var out []markup.Insertion
	for _, attr := range p.rule.Missing(el) {
		if ins, ok := p.Fix(doc, el, attr); ok {
			out = append(out, ins)
		}
	}
	return out
}
