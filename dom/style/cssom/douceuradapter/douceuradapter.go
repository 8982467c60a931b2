/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/style/cssom"
	"github.com/npillmayer/domfx/dom/styledtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// NewStyleSheet creates an empty stylesheet.
func NewStyleSheet() *CSSStyles {
	return Wrap(css.NewStylesheet())
}

// Parse parses CSS text into a stylesheet.
func Parse(cssText string) (*CSSStyles, error) {
	c, err := parser.Parse(cssText)
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// String renders the stylesheet as CSS text.
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		for _, r := range other.Rules() {
			decls := make([]style.KeyValue, 0, len(r.Properties()))
			for _, key := range r.Properties() {
				decls = append(decls, style.KeyValue{Key: key, Value: r.Value(key)})
			}
			sheet.AddRule(r.Selector(), decls)
		}
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// AddRule appends a qualified rule for a selector with a list of declarations.
func (sheet *CSSStyles) AddRule(selector string, decls []style.KeyValue) {
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = selector
	for _, sel := range strings.Split(selector, ",") {
		rule.Selectors = append(rule.Selectors, strings.TrimSpace(sel))
	}
	for _, kv := range decls {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property: kv.Key,
			Value:    kv.Value.String(),
		})
	}
	tracer().Debugf("add rule %s { %d declarations }", selector, len(decls))
	sheet.css.Rules = append(sheet.css.Rules, rule)
}

// AddRuleText appends a qualified rule for a selector, with declarations given
// as CSS text, e.g. "color: red; width: 10px".
func (sheet *CSSStyles) AddRuleText(selector string, cssText string) error {
	decls, err := ParseInline(cssText)
	if err != nil {
		return err
	}
	sheet.AddRule(selector, decls)
	return nil
}

// Rules returns all the rules of a stylesheet.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ParseInline parses a list of declarations, as found in style attributes.
// It is suitable as a cssom.InlineParser.
//
// douceur assigns a declaration's value only when a terminator follows it,
// so the text is wrapped into a block.
func ParseInline(cssText string) ([]style.KeyValue, error) {
	decls, err := parser.ParseDeclarations("{" + cssText + "}")
	if err != nil {
		return nil, fmt.Errorf("parse declarations: %w", err)
	}
	kvs := make([]style.KeyValue, len(decls))
	for i, d := range decls {
		kvs[i] = style.KeyValue{Key: d.Property, Value: style.Property(d.Value)}
	}
	return kvs, nil
}

var _ cssom.InlineParser = ParseInline

// Style creates a styled tree for an HTML document, using the stylesheets
// embedded in <style> elements and the inline styles of elements, plus
// additional stylesheets.
func Style(doc *html.Node, sheets ...*CSSStyles) (*styledtree.StyNode, error) {
	var all []cssom.StyleSheet
	for _, sheet := range ExtractStyleElements(doc) {
		all = append(all, sheet)
	}
	for _, sheet := range sheets {
		if sheet != nil {
			all = append(all, sheet)
		}
	}
	return cssom.NewBuilder(ParseInline).Style(doc, all...)
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	ch := h.FirstChild
	for ch != nil {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				tracer().Errorf("cannot parse <style> element: %v", err)
				break
			}
			css = append(css, Wrap(c))
		}
		ch = ch.NextSibling
	}
	return css
}

// tracer traces with key 'domfx.style'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.style")
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
