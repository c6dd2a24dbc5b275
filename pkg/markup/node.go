// Package markup holds the declarative output tree shared by every
// vocabulary. A Node is either an element (Tag set), a text leaf (Tag empty,
// no children) or a fragment (Tag empty, children set). The tree carries no
// vocabulary knowledge; serializers pick the syntax.
package markup

import (
	"slices"
	"sort"
	"strings"
)

// Attr is a single attribute. Flag attributes render without a value
// (`readonly`, `multiple`).
type Attr struct {
	Key   string `json:"key" msgpack:"k"`
	Value string `json:"value,omitempty" msgpack:"v,omitempty"`
	Flag  bool   `json:"flag,omitempty" msgpack:"f,omitempty"`
}

// Node is one element of the markup tree.
type Node struct {
	Tag      string  `json:"tag,omitempty" msgpack:"t,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty" msgpack:"a,omitempty"`
	Children []*Node `json:"children,omitempty" msgpack:"c,omitempty"`
	Text     string  `json:"text,omitempty" msgpack:"x,omitempty"`
}

// Element builds an element node, dropping nil children.
func Element(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{
		Tag:      tag,
		Attrs:    attrs,
		Children: compact(children),
	}
}

// Text builds a text leaf.
func Text(value string) *Node {
	return &Node{Text: value}
}

// Fragment groups nodes without emitting a wrapping tag.
func Fragment(children ...*Node) *Node {
	return &Node{Children: compact(children)}
}

// A returns a valued attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Flag returns a boolean attribute.
func Flag(key string) Attr {
	return Attr{Key: key, Flag: true}
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == "" && len(n.Children) == 0
}

// Attr looks up an attribute by key.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present (valued or flag).
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// SetAttr replaces an existing attribute in place or appends it.
func (n *Node) SetAttr(attr Attr) {
	if n == nil || attr.Key == "" {
		return
	}
	for i := range n.Attrs {
		if n.Attrs[i].Key == attr.Key {
			n.Attrs[i] = attr
			return
		}
	}
	n.Attrs = append(n.Attrs, attr)
}

// Append adds children, skipping nils.
func (n *Node) Append(children ...*Node) *Node {
	if n == nil {
		return nil
	}
	n.Children = append(n.Children, compact(children)...)
	return n
}

// Find walks the tree depth-first and returns every node matching fn,
// including n itself.
func (n *Node) Find(fn func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(node *Node) {
		if fn(node) {
			out = append(out, node)
		}
	})
	return out
}

// FindTag returns every element with the given tag.
func (n *Node) FindTag(tag string) []*Node {
	return n.Find(func(node *Node) bool {
		return node.Tag == tag
	})
}

// TextContent concatenates all text leaves under n.
func (n *Node) TextContent() string {
	var builder strings.Builder
	n.walk(func(node *Node) {
		if node.IsText() {
			builder.WriteString(node.Text)
		}
	})
	return builder.String()
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Tag:   n.Tag,
		Text:  n.Text,
		Attrs: slices.Clone(n.Attrs),
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}

// ExtraAttrs converts a free-form attribute map into sorted attributes.
// Keys that cannot be emitted as attribute names are dropped.
func ExtraAttrs(extra map[string]string) []Attr {
	if len(extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(extra))
	for key := range extra {
		if ValidAttrName(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]Attr, 0, len(keys))
	for _, key := range keys {
		out = append(out, A(key, extra[key]))
	}
	return out
}

// Merge applies extra attributes on top of n, replacing keys already set.
func (n *Node) Merge(extra map[string]string) *Node {
	for _, attr := range ExtraAttrs(extra) {
		n.SetAttr(attr)
	}
	return n
}

// ValidAttrName rejects empty names and names carrying characters that would
// break out of the attribute position.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n\r\f\"'<>/=`")
}

func compact(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		if node != nil {
			out = append(out, node)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
