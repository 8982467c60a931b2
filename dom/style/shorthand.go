package style

import (
	"strings"
)

// SplitList splits a comma separated CSS list value into its items. Commas
// nested in parentheses, as in
//
//     cubic-bezier(0.1, 0.7, 1.0, 0.1), linear
//
// do not separate items. Items are trimmed. An empty value results in a list
// with a single empty item.
func SplitList(value Property) []string {
	var items []string
	s := string(value)
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				items = append(items, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(items, strings.TrimSpace(s[start:]))
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) Property {
	return Property(strings.Join(items, ", "))
}

// TransitionLonghands are the individual properties of the transition shorthand,
// in the order their values appear in a computed style.
var TransitionLonghands = [4]string{
	"transition-timing-function",
	"transition-property",
	"transition-duration",
	"transition-delay",
}

// splitTransition splits a transition shorthand like
//
//     opacity 0.3s ease-in 0.1s, visibility 0s
//
// into its longhand properties. Within every layer, the first time value is
// the duration and the second one is the delay.
func splitTransition(prefix string, value Property) ([]KeyValue, error) {
	layers := SplitList(value)
	var timing, props, durations, delays []string
	for _, layer := range layers {
		t, p, du, de := "ease", "all", "0s", "0s"
		times := 0
		for _, field := range fieldsOutsideParens(layer) {
			switch {
			case isTimeValue(field):
				if times == 0 {
					du = field
				} else {
					de = field
				}
				times++
			case isTimingFunction(field):
				t = field
			default:
				p = field
			}
		}
		timing = append(timing, t)
		props = append(props, p)
		durations = append(durations, du)
		delays = append(delays, de)
	}
	return []KeyValue{
		{prefix + TransitionLonghands[0], JoinList(timing)},
		{prefix + TransitionLonghands[1], JoinList(props)},
		{prefix + TransitionLonghands[2], JoinList(durations)},
		{prefix + TransitionLonghands[3], JoinList(delays)},
	}, nil
}

func fieldsOutsideParens(s string) []string {
	var fields []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case (c == ' ' || c == '\t' || c == '\n') && depth == 0:
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

func isTimeValue(s string) bool {
	if !strings.HasSuffix(s, "s") {
		return false
	}
	num := strings.TrimSuffix(strings.TrimSuffix(s, "s"), "m")
	if num == "" {
		return false
	}
	for i, c := range num {
		if (c < '0' || c > '9') && c != '.' && !(i == 0 && (c == '-' || c == '+')) {
			return false
		}
	}
	return true
}

func isTimingFunction(s string) bool {
	switch s {
	case "ease", "ease-in", "ease-out", "ease-in-out", "linear", "step-start", "step-end":
		return true
	}
	return strings.HasPrefix(s, "cubic-bezier(") || strings.HasPrefix(s, "steps(")
}
