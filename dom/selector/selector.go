/*
Package selector matches HTML elements against CSS selectors.

Simple selectors of the form

    tag#id[attr=value].class

(every part being optional) are matched directly. All other selectors are
compiled with cascadia.

A Matcher may be bound to a context node. It then matches an element if the
element itself or any of its ancestors up to and including the context
matches the selector, and reports the matching node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'domfx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.dom")
}

var reQuick = regexp.MustCompile(`^(\w*)(?:#([\w\-]+))?(?:\[([\w\-=]+)\])?(?:\.([\w\-]+))?$`)

// quick is a pre-digested simple selector.
type quick struct {
	tag, id    string
	attr, val  string
	hasVal     bool
	class      string
	hasAttrSel bool
}

func parseQuick(sel string) (*quick, bool) {
	m := reQuick.FindStringSubmatch(sel)
	if m == nil {
		return nil, false
	}
	q := &quick{tag: strings.ToLower(m[1]), id: m[2], class: m[4]}
	if m[3] != "" {
		q.hasAttrSel = true
		q.attr, q.val, q.hasVal = strings.Cut(m[3], "=")
	}
	return q, true
}

func (q *quick) match(n *html.Node) bool {
	if q.tag != "" && n.Data != q.tag {
		return false
	}
	if q.id != "" {
		if id, ok := attr(n, "id"); !ok || id != q.id {
			return false
		}
	}
	if q.hasAttrSel {
		v, ok := attr(n, q.attr)
		if !ok || (q.hasVal && v != q.val) {
			return false
		}
	}
	if q.class != "" {
		class, _ := attr(n, "class")
		if !strings.Contains(" "+class+" ", " "+q.class+" ") {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// Matcher matches elements against a selector.
type Matcher struct {
	selector string
	quick    *quick
	compiled cascadia.Selector
	context  *html.Node
}

// Compile creates a matcher for a selector. If context is non-nil, Match will
// walk up the ancestors of an element, stopping at context.
func Compile(selector string, context *html.Node) (*Matcher, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("invalid selector %q: empty", selector)
	}
	m := &Matcher{selector: selector, context: context}
	if q, ok := parseQuick(selector); ok {
		m.quick = q
		return m, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	tracer().Debugf("selector %q compiled with cascadia", selector)
	m.compiled = sel
	return m, nil
}

// MustCompile is like Compile, but panics for invalid selectors.
func MustCompile(selector string, context *html.Node) *Matcher {
	m, err := Compile(selector, context)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the selector.
func (m *Matcher) String() string {
	return m.selector
}

// Match returns the node which matches the selector, or nil. Only element
// nodes are considered. Without a context, this is either n itself or nil.
// With a context, it is the nearest ancestor-or-self of n matching the
// selector, not looking beyond the context.
func (m *Matcher) Match(n *html.Node) *html.Node {
	for ; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if m.matches(n) {
			return n
		}
		if m.context == nil || n == m.context {
			break
		}
	}
	return nil
}

// Matches reports whether element n itself matches the selector.
func (m *Matcher) Matches(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && m.matches(n)
}

func (m *Matcher) matches(n *html.Node) bool {
	if m.quick != nil {
		return m.quick.match(n)
	}
	return m.compiled.Match(n)
}
