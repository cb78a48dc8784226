// Package jsx turns JavaScript and TypeScript sources containing JSX into
// markup documents using the tree-sitter TSX grammar.
package jsx

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"github.com/ariel-frischer/testidcheck/internal/markup"
)

// SyntaxError reports source text the grammar could not parse.
type SyntaxError struct {
	Path   string
	Line   int
	Column int
	Near   string
}

func (e *SyntaxError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("syntax error at %d:%d near %q", e.Line, e.Column, e.Near)
	}
	return fmt.Sprintf("syntax error at %d:%d", e.Line, e.Column)
}

// Parser parses source files into markup documents. The zero value is
// ready to use and safe for concurrent use; each call gets its own
// tree-sitter parser.
type Parser struct{}

// ParseFile reads and parses the file at path.
func (p Parser) ParseFile(ctx context.Context, path string) (*markup.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return p.Parse(ctx, path, src)
}

// Parse parses src, reporting path in the resulting document.
func (Parser) Parse(ctx context.Context, path string, src []byte) (*markup.Document, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tsx.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(path, root, src)
	}

	doc := markup.NewDocument(path, src)
	collect(root, src, func(el *markup.Element) {
		doc.Elements = append(doc.Elements, el)
	})
	return doc, nil
}

// collect walks n in source order and calls emit for each opening or
// self-closing element with a name. Fragments (<>) have none.
func collect(n *sitter.Node, src []byte, emit func(*markup.Element)) {
	switch n.Type() {
	case "jsx_opening_element", "jsx_self_closing_element":
		if el := element(n, src); el != nil {
			emit(el)
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		collect(n.NamedChild(i), src, emit)
	}
}

func element(n *sitter.Node, src []byte) *markup.Element {
	name := n.ChildByFieldName("name")
	if name == nil {
		return nil
	}

	// The node itself can start at whitespace the grammar folds into the
	// '<' token, so position the element by its name.
	start := name.StartPoint()
	insertAt := name.EndByte()
	var attrs []markup.Attribute

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "jsx_attribute":
			attrs = append(attrs, namedAttribute(child, src))
		case "jsx_expression":
			attrs = append(attrs, spreadAttribute(child, src))
		case "comment":
			continue
		default:
			// name and type arguments
			if child.EndByte() > insertAt {
				insertAt = child.EndByte()
			}
			continue
		}
		insertAt = child.EndByte()
	}

	return markup.NewElement(
		name.Content(src),
		int(start.Row)+1,
		int(start.Column),
		int(insertAt),
		attrs...,
	)
}

func namedAttribute(n *sitter.Node, src []byte) markup.Attribute {
	var name, value string
	if n.NamedChildCount() > 0 {
		name = n.NamedChild(0).Content(src)
	}
	if n.NamedChildCount() > 1 {
		value = n.NamedChild(1).Content(src)
	}
	return markup.NamedAttr(name, value)
}

// spreadAttribute classifies a braced attribute entry. Only {...call()}
// (optionally parenthesized) where the callee is a plain identifier counts as a spread call.
func spreadAttribute(n *sitter.Node, src []byte) markup.Attribute {
	spread := firstNamed(n, "spread_element")
	if spread == nil {
		return markup.SpreadAttr(n.Content(src))
	}

	arg := firstNamed(spread, "")
	if arg == nil {
		return markup.SpreadAttr(spread.Content(src))
	}
	for arg.Type() == "parenthesized_expression" {
		inner := firstNamed(arg, "")
		if inner == nil {
			break
		}
		arg = inner
	}
	if arg.Type() == "call_expression" {
		fn := arg.ChildByFieldName("function")
		if fn != nil && fn.Type() == "identifier" {
			return markup.Attribute{
				Kind:   markup.SpreadCall,
				Callee: fn.Content(src),
				Value:  arg.Content(src),
			}
		}
	}
	return markup.SpreadAttr(arg.Content(src))
}

// firstNamed returns the first named child of n of the given type, or the
// first named non-comment child when typ is empty.
func firstNamed(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		if typ == "" || child.Type() == typ {
			return child
		}
	}
	return nil
}

func syntaxError(path string, root *sitter.Node, src []byte) *SyntaxError {
	bad := firstErrorNode(root)
	if bad == nil {
		bad = root
	}
	p := bad.StartPoint()

	near := bad.Content(src)
	if i := strings.IndexByte(near, '\n'); i >= 0 {
		near = near[:i]
	}
	if len(near) > 40 {
		near = near[:40]
	}

	return &SyntaxError{
		Path:   path,
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
		Near:   strings.TrimSpace(near),
	}
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := firstErrorNode(child); found != nil {
			return found
		}
	}
	return nil
}
