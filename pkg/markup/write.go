package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Syntax selects how a tree is serialized.
type Syntax int

const (
	// SyntaxHTML emits HTML5: void elements have no closing tag, empty
	// non-void elements get an explicit end tag.
	SyntaxHTML Syntax = iota
	// SyntaxNative emits the native-UI template syntax: childless elements
	// self-close.
	SyntaxNative
)

func (s Syntax) String() string {
	switch s {
	case SyntaxNative:
		return "native"
	default:
		return "html"
	}
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {}, "track": {},
	"wbr": {},
}

// Write serializes n into w.
func Write(w io.Writer, n *Node, syntax Syntax) error {
	var builder strings.Builder
	writeNode(&builder, n, syntax)
	_, err := io.WriteString(w, builder.String())
	return err
}

// Render serializes n into a string.
func Render(n *Node, syntax Syntax) string {
	var builder strings.Builder
	writeNode(&builder, n, syntax)
	return builder.String()
}

// Component adapts a tree to templ.Component so hosts rendering templ views
// can embed it directly.
func Component(n *Node, syntax Syntax) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Write(w, n, syntax)
	})
}

func writeNode(b *strings.Builder, n *Node, syntax Syntax) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		if n.Text != "" {
			b.WriteString(templ.EscapeString(n.Text))
		}
		for _, child := range n.Children {
			writeNode(b, child, syntax)
		}
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		if !ValidAttrName(attr.Key) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		if attr.Flag {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteByte('"')
	}

	hasContent := n.Text != "" || len(n.Children) > 0
	switch {
	case syntax == SyntaxHTML && isVoid(n.Tag):
		b.WriteByte('>')
		return
	case syntax == SyntaxNative && !hasContent:
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')
	if n.Text != "" {
		b.WriteString(templ.EscapeString(n.Text))
	}
	for _, child := range n.Children {
		writeNode(b, child, syntax)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func isVoid(tag string) bool {
	_, ok := voidElements[strings.ToLower(tag)]
	return ok
}
