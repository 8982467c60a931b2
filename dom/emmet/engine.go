package emmet

import (
	"strings"
	"sync"
	"sync/atomic"
)

// voidElements are rendered without a closing tag.
var voidElements = strings.Fields("area base br col hr img input link meta param command keygen source")

// Engine expands abbreviations. It owns a cache of already rendered literals,
// which grows monotonically. An Engine is safe for concurrent use.
type Engine struct {
	mu     sync.RWMutex
	cache  map[string]string
	parses atomic.Uint64 // number of abbreviations run through the scanner
}

// New creates an engine with a cache pre-populated with the void elements.
func New() *Engine {
	e := &Engine{cache: make(map[string]string, 64)}
	for _, tag := range voidElements {
		e.cache[tag] = "<" + tag + ">"
	}
	return e
}

// Expand expands an abbreviation into an HTML string.
//
// If vars is non-nil, {name} and {index} placeholders are substituted (see
// Format) before the abbreviation is parsed, and the resulting HTML is cached
// under the substituted abbreviation. Without vars, only single tags are
// cached.
func (e *Engine) Expand(abbr string, vars Vars) string {
	if abbr == "" {
		return abbr
	}
	if vars != nil {
		abbr = Format(abbr, vars)
	}
	if html, ok := e.lookup(abbr); ok {
		tracer().Debugf("emmet: cache hit for %q", abbr)
		return html
	}
	e.parses.Add(1)
	rpn := toRPN(abbr)
	tracer().Debugf("emmet: %q => RPN %v", abbr, rpn)
	if len(rpn) == 1 && !rpn[0].isOperator() {
		return e.tag(rpn[0].term)
	}
	html := e.evaluate(rpn)
	if vars != nil {
		e.store(abbr, html)
	}
	return html
}

// CacheSize returns the number of cached literals.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

func (e *Engine) lookup(abbr string) (string, bool) {
	e.mu.RLock()
	html, ok := e.cache[abbr]
	e.mu.RUnlock()
	return html, ok
}

func (e *Engine) store(abbr, html string) {
	e.mu.Lock()
	e.cache[abbr] = html
	e.mu.Unlock()
}

// tag returns the canonical HTML for an empty element.
func (e *Engine) tag(name string) string {
	if html, ok := e.lookup(name); ok {
		return html
	}
	html := "<" + name + "></" + name + ">"
	e.store(name, html)
	return html
}

// --- Default engine --------------------------------------------------------

var defaultEngine = New()

// Expand expands an abbreviation using a process-wide default engine.
func Expand(abbr string, vars Vars) string {
	return defaultEngine.Expand(abbr, vars)
}
