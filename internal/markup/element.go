// Package markup models the markup elements of one source file: element
// names, attribute entries and source positions, plus the text insertions
// produced by auto-fix and their rendering back to source text.
package markup

import "fmt"

// AttributeKind tags the variant of an attribute entry on an element.
type AttributeKind int

const (
	// Named is a literal attribute such as testID="x".
	Named AttributeKind = iota
	// SpreadCall is a spread whose expression is a call, e.g. {...getTestID()}.
	SpreadCall
	// SpreadOther is any other spread, e.g. {...props}.
	SpreadOther
)

// String returns the name of the attribute kind.
func (k AttributeKind) String() string {
	switch k {
	case Named:
		return "named"
	case SpreadCall:
		return "spread-call"
	case SpreadOther:
		return "spread"
	default:
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
}

// Attribute is one entry of an element's attribute list.
type Attribute struct {
	Kind AttributeKind
	// Name is set for Named attributes.
	Name string
	// Value is the raw source text of a Named attribute's value (empty for
	// boolean shorthand) or the spread expression text otherwise.
	Value string
	// Callee is the source text of the called function for SpreadCall.
	Callee string
}

// NamedAttr returns a Named attribute entry.
func NamedAttr(name, value string) Attribute {
	return Attribute{Kind: Named, Name: name, Value: value}
}

// SpreadCallAttr returns a SpreadCall attribute entry calling callee.
func SpreadCallAttr(callee string) Attribute {
	return Attribute{Kind: SpreadCall, Callee: callee, Value: callee + "()"}
}

// SpreadAttr returns a SpreadOther attribute entry wrapping expr.
func SpreadAttr(expr string) Attribute {
	return Attribute{Kind: SpreadOther, Value: expr}
}

// Is reports whether a is a Named attribute called name.
func (a Attribute) Is(name string) bool {
	return a.Kind == Named && a.Name == name
}

// Calls reports whether a spreads a direct call to fn.
func (a Attribute) Calls(fn string) bool {
	return a.Kind == SpreadCall && fn != "" && a.Callee == fn
}

// Element is an opening or self-closing markup tag.
type Element struct {
	Name       string
	Attributes []Attribute
	// Line and Column are 1-based.
	Line   int
	Column int

	// insertAt is the byte offset just past the last attribute (or the
	// name when there are none); new attributes are inserted here.
	insertAt int
}

// NewElement creates an element whose new attributes are inserted at
// byte offset insertAt of the owning document's source.
func NewElement(name string, line, column, insertAt int, attrs ...Attribute) *Element {
	return &Element{
		Name:       name,
		Attributes: attrs,
		Line:       line,
		Column:     column,
		insertAt:   insertAt,
	}
}

// InsertOffset returns the byte offset at which new attributes are inserted.
func (e *Element) InsertOffset() int {
	return e.insertAt
}

// HasAttribute reports whether a Named attribute called name is present.
func (e *Element) HasAttribute(name string) bool {
	for _, a := range e.Attributes {
		if a.Is(name) {
			return true
		}
	}
	return false
}

// SpreadsCall reports whether any spread entry is a direct call to fn.
func (e *Element) SpreadsCall(fn string) bool {
	for _, a := range e.Attributes {
		if a.Calls(fn) {
			return true
		}
	}
	return false
}
