package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/domfx/dom/style"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	htmlNode       *html.Node
	parent         *StyNode
	children       []*StyNode
	computedStyles *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *StyNode {
	return &StyNode{htmlNode: html}
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Parent returns the parent styled node, or nil for the root.
func (sn *StyNode) Parent() *StyNode {
	if sn == nil {
		return nil
	}
	return sn.parent
}

// Children returns the child nodes.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

// AddChild appends a child node and returns it.
func (sn *StyNode) AddChild(ch *StyNode) *StyNode {
	ch.parent = sn
	sn.children = append(sn.children, ch)
	return ch
}

// NodeName returns the tag name of an element node, "#text" for text nodes,
// and "#document" for the root of a document.
func (sn *StyNode) NodeName() string {
	if sn.htmlNode == nil {
		return ""
	}
	switch sn.htmlNode.Type {
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	}
	return sn.htmlNode.Data
}

// Styles returns the property map of the node. May be nil.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// GetPropertyValue returns the property value for a given key.
// If the property is inherited, it cascades to the ancestors.
// No user-agent defaults are applied.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	p, ok := sn.computedStyles.Property(key)
	if ok && p != "inherit" && !p.IsEmpty() {
		return p
	}
	if p == "inherit" || style.IsCascading(key) {
		tracer().P("key", key).Debugf("styling: cascading for key %s", key)
		for anc := sn.parent; anc != nil; anc = anc.parent {
			if p, ok := anc.computedStyles.Property(key); ok && p != "inherit" && !p.IsEmpty() {
				return p
			}
		}
	}
	return style.NullStyle
}

// --- Inline styles ---------------------------------------------------------

// InlineStyle returns the content of the node's style attribute.
func (sn *StyNode) InlineStyle() string {
	if sn.htmlNode == nil {
		return ""
	}
	for _, a := range sn.htmlNode.Attr {
		if a.Key == "style" && a.Namespace == "" {
			return a.Val
		}
	}
	return ""
}

// SetInlineStyle replaces the content of the node's style attribute. An empty
// css text removes the attribute.
func (sn *StyNode) SetInlineStyle(cssText string) {
	if sn.htmlNode == nil {
		return
	}
	cssText = strings.TrimSpace(cssText)
	attrs := sn.htmlNode.Attr[:0]
	found := false
	for _, a := range sn.htmlNode.Attr {
		if a.Key == "style" && a.Namespace == "" {
			if cssText == "" {
				continue
			}
			a.Val = cssText
			found = true
		}
		attrs = append(attrs, a)
	}
	if !found && cssText != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: cssText})
	}
	sn.htmlNode.Attr = attrs
}

// Attribute returns the value of an attribute and whether it is present.
func (sn *StyNode) Attribute(key string) (string, bool) {
	if sn.htmlNode == nil {
		return "", false
	}
	for _, a := range sn.htmlNode.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
