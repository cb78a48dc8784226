package markup

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrMalformed is returned by Render when the recorded insertions cannot be
// applied to the document source.
var ErrMalformed = errors.New("malformed document")

// Insertion is a pending attribute insertion into the source text.
type Insertion struct {
	Offset  int
	Element string
	Line    int
	Attr    string
	Value   string
}

// Text returns the source text that the insertion adds. JSX string
// attributes have no escapes, so the value is written as is.
func (i Insertion) Text() string {
	return " " + i.Attr + "=" + quoted(i.Value)
}

func quoted(value string) string {
	return `"` + value + `"`
}

// literalValue reports whether value can be written between double quotes
// and read back unchanged.
func literalValue(value string) bool {
	return !strings.ContainsFunc(value, func(r rune) bool {
		return r == '"' || unicode.IsControl(r)
	})
}

// Document is the parsed representation of one source file.
type Document struct {
	Path     string
	Source   []byte
	Elements []*Element

	insertions []Insertion
}

// NewDocument creates a document for path with the given source and elements.
func NewDocument(path string, source []byte, elements ...*Element) *Document {
	return &Document{Path: path, Source: source, Elements: elements}
}

// Insert appends a Named attribute to el and records the matching source
// insertion. el must belong to d.
func (d *Document) Insert(el *Element, attr, value string) Insertion {
	el.Attributes = append(el.Attributes, NamedAttr(attr, quoted(value)))
	ins := Insertion{
		Offset:  el.insertAt,
		Element: el.Name,
		Line:    el.Line,
		Attr:    attr,
		Value:   value,
	}
	d.insertions = append(d.insertions, ins)
	return ins
}

// Changed reports whether any insertion has been recorded.
func (d *Document) Changed() bool {
	return len(d.insertions) > 0
}

// Insertions returns a copy of the recorded insertions in the order they
// were made.
func (d *Document) Insertions() []Insertion {
	out := make([]Insertion, len(d.insertions))
	copy(out, d.insertions)
	return out
}

// Render returns the source text with all insertions applied. Insertions at
// the same offset keep the order in which they were made.
func (d *Document) Render() ([]byte, error) {
	if !d.Changed() {
		return d.Source, nil
	}

	ordered := d.Insertions()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Offset < ordered[j].Offset
	})

	var buf bytes.Buffer
	buf.Grow(len(d.Source) + 32*len(ordered))

	last := 0
	for _, ins := range ordered {
		if !literalValue(ins.Value) {
			return nil, fmt.Errorf("%w: value %q for %s on <%s> cannot be quoted",
				ErrMalformed, ins.Value, ins.Attr, ins.Element)
		}
		if ins.Offset < last || ins.Offset > len(d.Source) {
			return nil, fmt.Errorf("%w: insertion of %s on <%s> at offset %d outside source (%d bytes)",
				ErrMalformed, ins.Attr, ins.Element, ins.Offset, len(d.Source))
		}
		buf.Write(d.Source[last:ins.Offset])
		buf.WriteString(ins.Text())
		last = ins.Offset
	}
	buf.Write(d.Source[last:])

	return buf.Bytes(), nil
}
