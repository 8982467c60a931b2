package dom

import (
	"github.com/npillmayer/domfx/dom/emmet"
)

var templates = emmet.New()

// Emmet expands an emmet-like abbreviation into an HTML string.
// template has to be a string. varMap may be nil, a map from names to values,
// a slice of values or an emmet.Vars; its values are substituted for {name}
// or {index} placeholders before expansion.
//
// Results of expansions with a varMap are cached.
func Emmet(template interface{}, varMap interface{}) (string, error) {
	abbr, ok := template.(string)
	if !ok {
		return "", &StaticMethodError{Method: "emmet"}
	}
	vars, err := toVars(varMap, "emmet")
	if err != nil {
		return "", err
	}
	return templates.Expand(abbr, vars), nil
}

// Format substitutes {name} and {index} placeholders in a string.
// Arguments are as for Emmet.
func Format(template interface{}, varMap interface{}) (string, error) {
	s, ok := template.(string)
	if !ok {
		return "", &StaticMethodError{Method: "format"}
	}
	vars, err := toVars(varMap, "format")
	if err != nil {
		return "", err
	}
	return emmet.Format(s, vars), nil
}

func toVars(varMap interface{}, method string) (emmet.Vars, error) {
	switch v := varMap.(type) {
	case nil:
		return nil, nil
	case emmet.Vars:
		return v, nil
	case map[string]interface{}:
		return emmet.Map(v), nil
	case map[string]string:
		m := make(emmet.Map, len(v))
		for key, val := range v {
			m[key] = val
		}
		return m, nil
	case []interface{}:
		return emmet.List(v), nil
	case []string:
		l := make(emmet.List, len(v))
		for i, val := range v {
			l[i] = val
		}
		return l, nil
	}
	tracer().Errorf("%s: unsupported variables of type %T", method, varMap)
	return nil, &StaticMethodError{Method: method}
}
