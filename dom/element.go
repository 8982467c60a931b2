package dom

import (
	"bytes"
	"strings"

	"github.com/npillmayer/domfx/dom/fx"
	"github.com/npillmayer/domfx/dom/selector"
	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domfx/dom/styledtree"
	"github.com/npillmayer/domfx/dom/w3cdom"
	"golang.org/x/net/html"
)

// Element wraps an element node of a document.
type Element struct {
	doc       *Document
	node      *html.Node
	sty       *styledtree.StyNode // access to attributes
	listeners []listener
	effect    *effect // running effect, if any
}

type listener struct {
	id        int
	eventType string
	handler   func(*fx.Event)
}

// effect is a show/hide effect waiting for its end event.
type effect struct {
	plan *fx.Plan
	off  func()
}

var _ w3cdom.InlineStyler = &Element{}

// Node returns the HTML node of the element.
func (el *Element) Node() *html.Node {
	return el.node
}

// NodeName returns the lower case tag name.
func (el *Element) NodeName() string {
	return el.node.Data
}

// HTML renders the element as HTML.
func (el *Element) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, el.node); err != nil {
		tracer().Errorf("cannot render <%s>: %v", el.node.Data, err)
	}
	return buf.String()
}

// Attribute returns the value of an attribute and whether it is present.
func (el *Element) Attribute(key string) (string, bool) {
	return el.sty.Attribute(key)
}

// SetAttribute sets an attribute.
func (el *Element) SetAttribute(key, value string) {
	for i, a := range el.node.Attr {
		if a.Key == key && a.Namespace == "" {
			el.node.Attr[i].Val = value
			el.doc.invalidate()
			return
		}
	}
	el.node.Attr = append(el.node.Attr, html.Attribute{Key: key, Val: value})
	el.doc.invalidate()
}

// InlineStyle returns the content of the style attribute.
func (el *Element) InlineStyle() string {
	return el.sty.InlineStyle()
}

// SetInlineStyle replaces the content of the style attribute.
func (el *Element) SetInlineStyle(cssText string) {
	el.sty.SetInlineStyle(cssText)
	el.doc.invalidate()
}

// SetStyle sets a single property of the inline style. An empty value removes
// the property.
func (el *Element) SetStyle(key, value string) {
	kvs, err := douceuradapter.ParseInline(el.InlineStyle())
	if err != nil {
		tracer().Errorf("cannot parse style attribute of <%s>: %v", el.node.Data, err)
	}
	decls := make([]string, 0, len(kvs)+1)
	for _, kv := range kvs {
		if kv.Key != key {
			decls = append(decls, kv.Key+": "+kv.Value.String())
		}
	}
	if value != "" {
		decls = append(decls, key+": "+value)
	}
	el.SetInlineStyle(strings.Join(decls, "; "))
}

// Computed returns the computed styles of the element.
func (el *Element) Computed() w3cdom.ComputedStyles {
	return el.doc.computedStyles(el.node)
}

// Style returns a computed style property, resolving vendor-prefixed
// equivalents.
func (el *Element) Style(key string) string {
	return style.Get(el.Computed(), key).String()
}

// Append appends elements as children. Elements attached elsewhere are
// moved.
func (el *Element) Append(children ...*Element) *Element {
	for _, ch := range children {
		if ch.node.Parent != nil {
			ch.node.Parent.RemoveChild(ch.node)
		}
		el.node.AppendChild(ch.node)
	}
	el.doc.invalidate()
	return el
}

// --- Traversal -------------------------------------------------------------

// Parent returns the nearest ancestor matching an optional selector.
func (el *Element) Parent(sel string) (*Element, error) {
	return el.traverse("parent", sel, func(n *html.Node) *html.Node { return n.Parent })
}

// Next returns the next sibling element matching an optional selector.
func (el *Element) Next(sel string) (*Element, error) {
	return el.traverse("next", sel, func(n *html.Node) *html.Node { return n.NextSibling })
}

// Prev returns the previous sibling element matching an optional selector.
func (el *Element) Prev(sel string) (*Element, error) {
	return el.traverse("prev", sel, func(n *html.Node) *html.Node { return n.PrevSibling })
}

// NextAll returns all following sibling elements matching an optional selector.
func (el *Element) NextAll(sel string) ([]*Element, error) {
	return el.traverseAll("nextAll", sel, func(n *html.Node) *html.Node { return n.NextSibling })
}

// PrevAll returns all preceding sibling elements matching an optional selector,
// nearest first.
func (el *Element) PrevAll(sel string) ([]*Element, error) {
	return el.traverseAll("prevAll", sel, func(n *html.Node) *html.Node { return n.PrevSibling })
}

func (el *Element) traverse(method, sel string, step func(*html.Node) *html.Node) (*Element, error) {
	m, err := matcher(method, sel)
	if err != nil {
		return nil, err
	}
	for n := step(el.node); n != nil; n = step(n) {
		if n.Type == html.ElementNode && (m == nil || m.Matches(n)) {
			return el.doc.wrap(n), nil
		}
	}
	return nil, nil
}

func (el *Element) traverseAll(method, sel string, step func(*html.Node) *html.Node) ([]*Element, error) {
	m, err := matcher(method, sel)
	if err != nil {
		return nil, err
	}
	var all []*Element
	for n := step(el.node); n != nil; n = step(n) {
		if n.Type == html.ElementNode && (m == nil || m.Matches(n)) {
			all = append(all, el.doc.wrap(n))
		}
	}
	return all, nil
}

func matcher(method, sel string) (*selector.Matcher, error) {
	if sel == "" {
		return nil, nil
	}
	m, err := selector.Compile(sel, nil)
	if err != nil {
		return nil, &MethodError{Method: method, Err: err}
	}
	return m, nil
}
