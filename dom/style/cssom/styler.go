package cssom

import (
	"errors"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/styledtree"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned if Style is called without an HTML tree.
var ErrNoDocument = errors.New("cannot style an empty document")

// InlineParser parses the content of a style attribute into properties.
type InlineParser func(cssText string) ([]style.KeyValue, error)

// Builder creates styled trees. It caches compiled selectors and is not safe for
// concurrent use.
type Builder struct {
	parseInline InlineParser
	selectors   map[string]cascadia.Selector
}

// NewBuilder creates a builder for styled trees. If parseInline is nil, style
// attributes are ignored.
func NewBuilder(parseInline InlineParser) *Builder {
	return &Builder{
		parseInline: parseInline,
		selectors:   make(map[string]cascadia.Selector),
	}
}

// Style creates a styled tree for an HTML tree. The root of the styled tree
// corresponds to doc, and every element node below doc gets a styled node.
// Properties from matching rules are applied in stylesheet order, declarations
// marked as important win over later ones, and inline styles come last.
func (b *Builder) Style(doc *html.Node, sheets ...StyleSheet) (*styledtree.StyNode, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	var rules []Rule
	for _, sheet := range sheets {
		if sheet != nil && !sheet.Empty() {
			rules = append(rules, sheet.Rules()...)
		}
	}
	root := styledtree.NewNodeForHTMLNode(doc)
	b.styleNode(root, rules)
	b.styleChildren(root, rules)
	return root, nil
}

func (b *Builder) styleChildren(parent *styledtree.StyNode, rules []Rule) {
	for ch := parent.HTMLNode().FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		sn := parent.AddChild(styledtree.NewNodeForHTMLNode(ch))
		b.styleNode(sn, rules)
		b.styleChildren(sn, rules)
	}
}

func (b *Builder) styleNode(sn *styledtree.StyNode, rules []Rule) {
	h := sn.HTMLNode()
	if h.Type != html.ElementNode {
		return
	}
	pmap := style.NewPropertyMap()
	important := make(map[string]bool)
	for _, rule := range rules {
		sel := b.selector(rule.Selector())
		if sel == nil || !sel.Match(h) {
			continue
		}
		for _, key := range rule.Properties() {
			imp := rule.IsImportant(key)
			if important[key] && !imp {
				continue
			}
			if imp {
				important[key] = true
			}
			addProperty(pmap, key, rule.Value(key))
		}
	}
	if b.parseInline != nil {
		if cssText := sn.InlineStyle(); cssText != "" {
			kvs, err := b.parseInline(cssText)
			if err != nil {
				tracer().Errorf("cannot parse style attribute of <%s>: %v", h.Data, err)
			}
			for _, kv := range kvs {
				if !important[kv.Key] {
					addProperty(pmap, kv.Key, kv.Value)
				}
			}
		}
	}
	sn.SetStyles(pmap)
}

// selector returns a compiled selector, or nil if the selector is invalid.
func (b *Builder) selector(s string) cascadia.Selector {
	if sel, ok := b.selectors[s]; ok {
		return sel
	}
	sel, err := cascadia.Compile(s)
	if err != nil {
		tracer().Errorf("cannot compile selector %q: %v", s, err)
		sel = nil
	}
	b.selectors[s] = sel
	return sel
}

// addProperty adds a property to a property map, splitting shorthand
// properties into their individual components.
func addProperty(pmap *style.PropertyMap, key string, value style.Property) {
	if kvs, err := style.SplitCompoundProperty(key, value); err == nil {
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
		return
	}
	pmap.Add(key, value)
}
