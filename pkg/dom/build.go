package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a shorthand html.Attribute constructor.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Element creates an element node with attributes and children.
func Element(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Text creates a text node. The renderer escapes its content.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
