package emmet

import (
	"fmt"
	"regexp"
	"strconv"
)

var rePlaceholder = regexp.MustCompile(`\{([\w\-]+)\}`)

// Vars supplies values for placeholders.
type Vars interface {
	Lookup(key string) (interface{}, bool)
}

// Map supplies values for {name} placeholders.
type Map map[string]interface{}

// Lookup is part of interface Vars.
func (m Map) Lookup(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

// List supplies values for {0}, {1}, … placeholders.
type List []interface{}

// Lookup is part of interface Vars.
func (l List) Lookup(key string) (interface{}, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(l) {
		return nil, false
	}
	return l[i], true
}

// Format substitutes {name} and {index} placeholders in a template. Placeholders
// without a value in vars are left untouched.
//
//     Format("{0}-{size}", …)
//
func Format(template string, vars Vars) string {
	if vars == nil {
		return template
	}
	return rePlaceholder.ReplaceAllStringFunc(template, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := vars.Lookup(key)
		if !ok {
			return m
		}
		switch x := v.(type) {
		case nil:
			return ""
		case string:
			return x
		case func() string:
			return x()
		}
		return fmt.Sprint(v)
	})
}
