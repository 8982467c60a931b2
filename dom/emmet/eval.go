package emmet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reAttr  = regexp.MustCompile("([\\w\\-]+)(?:=((?:`((?:\\\\?.)*)?`)|[^\\s]+))?")
	reIndex = regexp.MustCompile(`(\$+)(?:@(-)?(\d+)?)?`)
)

// operand is an entry of the evaluation stack. It is either a bare term
// (a tag name, text or count, not yet materialized) or a list of HTML fragments.
type operand struct {
	literal bool
	text    string
	frags   []string
}

// raw returns the operand as plain text.
func (x *operand) raw() string {
	if x == nil {
		return ""
	}
	if x.literal {
		return x.text
	}
	return strings.Join(x.frags, "")
}

// fragments materializes an operand into HTML fragments. A bare term is
// interpreted as a tag name.
func (e *Engine) fragments(x *operand) []string {
	if x == nil {
		return nil
	}
	if x.literal {
		return []string{e.tag(x.text)}
	}
	return x.frags
}

// html materializes an operand into a single HTML string.
func (e *Engine) html(x *operand) string {
	if x != nil && x.literal {
		return e.tag(x.text)
	}
	return x.raw()
}

// evaluate reduces an RPN token sequence into an HTML string.
func (e *Engine) evaluate(rpn []token) string {
	var stack []*operand
	pop := func() *operand {
		if len(stack) == 0 {
			return nil
		}
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return x
	}
	for _, t := range rpn {
		if !t.isOperator() {
			stack = append(stack, &operand{literal: true, text: t.term})
			continue
		}
		term, target := pop(), pop()
		node := e.fragments(target)
		var inject func(string) string
		switch t.op {
		case opClass:
			inject = injectAttrs(` class="` + term.raw() + `"`)
		case opID:
			inject = injectAttrs(` id="` + term.raw() + `"`)
		case opAttrOpen:
			inject = injectAttrs(" " + normalizeAttrs(term.raw()))
		case opText:
			// the text becomes the new node, the target stays on the stack
			if target != nil {
				stack = append(stack, &operand{frags: node})
			} else {
				stack = append(stack, nil)
			}
			node = []string{term.raw()}
		case opRepeat:
			node = repeat(count(term.raw()), strings.Join(node, ""))
		default:
			h := e.html(term)
			if t.op == opChild {
				inject = injectChild(h)
			} else {
				node = append(node, h)
			}
		}
		if inject != nil {
			mapped := make([]string, len(node))
			for i, frag := range node {
				mapped[i] = inject(frag)
			}
			node = mapped
		}
		stack = append(stack, &operand{frags: node})
	}
	return strings.Join(e.fragments(pop()), "")
}

// injectAttrs returns an injector which inserts attributes into the opening
// tag of an HTML fragment.
func injectAttrs(attrs string) func(string) string {
	return func(frag string) string {
		i := strings.IndexByte(frag, '>')
		if i < 0 {
			return frag
		}
		return frag[:i] + attrs + frag[i:]
	}
}

// injectChild returns an injector which inserts HTML in front of the closing
// tag of an HTML fragment.
func injectChild(child string) func(string) string {
	return func(frag string) string {
		i := strings.LastIndexByte(frag, '<')
		if i < 0 {
			return frag + child
		}
		return frag[:i] + child + frag[i:]
	}
}

// normalizeAttrs quotes the values of a list of attributes. Values containing
// a double quote are wrapped in single quotes, bare attribute names get their
// name as value.
func normalizeAttrs(attrs string) string {
	return reAttr.ReplaceAllStringFunc(attrs, func(m string) string {
		sm := reAttr.FindStringSubmatch(m)
		name, value, quoted := sm[1], sm[2], sm[3]
		q := `"`
		if strings.Contains(value, `"`) {
			q = "'"
		}
		switch {
		case quoted != "":
			value = quoted
		case value == "":
			value = name
		}
		return name + "=" + q + value + q
	})
}

// maxRepeat is the largest repetition count honored.
const maxRepeat = 1 << 16

// count interprets a repetition term. Non-numeric terms and counts beyond
// maxRepeat repeat zero times.
func count(term string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(term), 64)
	if err != nil || f <= 0 || f > maxRepeat || math.IsNaN(f) {
		return 0
	}
	return int(math.Ceil(f))
}

// repeat creates n copies of an HTML string, substituting index placeholders.
//
// A placeholder is a run of '$', optionally followed by '@', an optional '-' to
// count backwards and an optional numeric base (default 1). The index is
// zero-padded to the number of '$'. Indices wider than the placeholder are
// kept in full, not cut to the placeholder width.
func repeat(n int, html string) []string {
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, reIndex.ReplaceAllStringFunc(html, func(m string) string {
			sm := reIndex.FindStringSubmatch(m)
			dollars, reverse, base := sm[1], sm[2], sm[3]
			index := i
			if reverse != "" {
				index = n - i - 1
			}
			if base != "" {
				b, _ := strconv.Atoi(base)
				index += b
			} else {
				index++
			}
			return fmt.Sprintf("%0*d", len(dollars), index)
		}))
	}
	return result
}
