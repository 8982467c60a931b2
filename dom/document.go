package dom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/domfx/dom/fx"
	"github.com/npillmayer/domfx/dom/selector"
	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/style/css"
	"github.com/npillmayer/domfx/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domfx/dom/styledtree"
	"github.com/npillmayer/domfx/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an HTML document together with its global styles.
type Document struct {
	root     *html.Node
	global   *douceuradapter.CSSStyles // rules added by ImportStyles
	fx       *fx.Coordinator
	elements map[*html.Node]*Element
	styled   map[*html.Node]*styledtree.StyNode // nil if styles are outdated
	handlers int                                // last event handler id
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return NewDocument(root), nil
}

// NewDocument wraps an HTML parse tree. Effects are computed for
// fx.DefaultPlatform.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:     root,
		global:   douceuradapter.NewStyleSheet(),
		fx:       fx.New(fx.DefaultPlatform()),
		elements: make(map[*html.Node]*Element),
	}
}

// SetPlatform sets the platform effects are computed for.
func (d *Document) SetPlatform(platform fx.Platform) {
	d.fx = fx.New(platform)
}

// Root returns the root node of the document.
func (d *Document) Root() *html.Node {
	return d.root
}

// Find returns the first element in document order matching a selector, or
// nil.
func (d *Document) Find(sel string) (*Element, error) {
	all, err := d.find(sel, true)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// FindAll returns all elements matching a selector, in document order.
func (d *Document) FindAll(sel string) ([]*Element, error) {
	return d.find(sel, false)
}

func (d *Document) find(sel string, first bool) ([]*Element, error) {
	m, err := selector.Compile(sel, nil)
	if err != nil {
		return nil, &StaticMethodError{Method: "find"}
	}
	var found []*Element
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if m.Matches(n) {
			found = append(found, d.wrap(n))
			if first {
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.root)
	return found, nil
}

// Create expands an emmet abbreviation (see Emmet) and returns the resulting
// elements. They are not yet part of the document, see Element.Append.
func (d *Document) Create(template interface{}, varMap interface{}) ([]*Element, error) {
	abbr, ok := template.(string)
	if !ok {
		return nil, &StaticMethodError{Method: "create"}
	}
	vars, err := toVars(varMap, "create")
	if err != nil {
		return nil, err
	}
	markup := templates.Expand(abbr, vars)
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", abbr, err)
	}
	var elements []*Element
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, d.wrap(n))
		}
	}
	tracer().Debugf("created %d elements from %q", len(elements), abbr)
	return elements, nil
}

// ImportStyles appends a global CSS rule. cssText is either a string of
// declarations or a map from property names to values. Property names of a
// map are vendor-prefixed as needed by the document's platform.
func (d *Document) ImportStyles(sel interface{}, cssText interface{}) error {
	s, ok := sel.(string)
	if !ok {
		return &StaticMethodError{Method: "importStyles"}
	}
	var decls map[string]string
	switch c := cssText.(type) {
	case string:
		if err := d.global.AddRuleText(s, c); err != nil {
			return fmt.Errorf("importStyles: %w", err)
		}
		d.invalidate()
		return nil
	case map[string]string:
		decls = c
	case map[string]interface{}:
		decls = make(map[string]string, len(c))
		for k, v := range c {
			decls[k] = fmt.Sprint(v)
		}
	default:
		return &StaticMethodError{Method: "importStyles"}
	}
	d.global.AddRule(s, d.hookDeclarations(decls))
	d.invalidate()
	return nil
}

// hookDeclarations turns a map of declarations into a list, running the
// property names through the style hooks. Declarations are sorted by property
// name.
func (d *Document) hookDeclarations(decls map[string]string) []style.KeyValue {
	prefix := d.fx.Platform().VendorPrefix
	kvs := make([]style.KeyValue, 0, len(decls))
	for key, value := range decls {
		kvs = append(kvs, style.KeyValue{Key: style.Prefixed(prefix, key), Value: style.Property(value)})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs
}

// GlobalStyles returns the stylesheet of rules added by ImportStyles.
func (d *Document) GlobalStyles() string {
	return d.global.String()
}

// --- Styling ---------------------------------------------------------------

func (d *Document) invalidate() {
	d.styled = nil
}

// computedStyles returns the computed styles of an element node. Styled trees
// are built lazily, for the document and for every detached subtree.
func (d *Document) computedStyles(n *html.Node) w3cdom.ComputedStyles {
	if sn, ok := d.styled[n]; ok {
		return css.Computed(sn)
	}
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	tree, err := douceuradapter.Style(root, d.global)
	if err != nil {
		tracer().Errorf("cannot style document: %v", err)
		return css.Snapshot(style.NewPropertyMap())
	}
	if d.styled == nil {
		d.styled = make(map[*html.Node]*styledtree.StyNode)
	}
	var collect func(*styledtree.StyNode)
	collect = func(sn *styledtree.StyNode) {
		d.styled[sn.HTMLNode()] = sn
		for _, ch := range sn.Children() {
			collect(ch)
		}
	}
	collect(tree)
	return css.Computed(d.styled[n])
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n, sty: styledtree.NewNodeForHTMLNode(n)}
	d.elements[n] = el
	return el
}
