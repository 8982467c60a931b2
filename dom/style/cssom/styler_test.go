package cssom

import (
	"strings"
	"testing"

	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type testRule struct {
	selector string
	keys     []string
	values   []style.Property
	imp      map[string]bool
}

func (r testRule) Selector() string     { return r.selector }
func (r testRule) Properties() []string { return r.keys }
func (r testRule) IsImportant(key string) bool {
	return r.imp[key]
}
func (r testRule) Value(key string) style.Property {
	for i, k := range r.keys {
		if k == key {
			return r.values[i]
		}
	}
	return style.NullStyle
}

type testSheet []Rule

func (s *testSheet) AppendRules(other StyleSheet) { *s = append(*s, other.Rules()...) }
func (s *testSheet) Empty() bool                  { return len(*s) == 0 }
func (s *testSheet) Rules() []Rule                { return *s }

func rule(sel string, kv ...string) testRule {
	r := testRule{selector: sel, imp: map[string]bool{}}
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i]
		if strings.HasPrefix(key, "!") {
			key = key[1:]
			r.imp[key] = true
		}
		r.keys = append(r.keys, key)
		r.values = append(r.values, style.Property(kv[i+1]))
	}
	return r
}

func inline(cssText string) ([]style.KeyValue, error) {
	var kvs []style.KeyValue
	for _, decl := range strings.Split(cssText, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) == 2 {
			kvs = append(kvs, style.KeyValue{
				Key:   strings.TrimSpace(kv[0]),
				Value: style.Property(strings.TrimSpace(kv[1])),
			})
		}
	}
	return kvs, nil
}

func TestBuilderNoDocument(t *testing.T) {
	_, err := NewBuilder(nil).Style(nil)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestBuilderCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.style")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(
		`<div id="a" class="x" style="margin: 1px; color: green">text<span class="x"></span></div>`))
	require.NoError(t, err)
	sheet := &testSheet{
		rule(".x", "color", "red", "!width", "10px"),
		rule("#a", "width", "20px", "padding", "2px 4px"),
		rule("span", "color", "blue"),
		rule("::invalid((", "color", "black"),
	}
	root, err := NewBuilder(inline).Style(h, sheet, nil, &testSheet{})
	require.NoError(t, err)
	//
	var div, span *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Data == "div" {
			div = n
		} else if n.Data == "span" {
			span = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(h)
	require.NotNil(t, div)
	require.NotNil(t, span)
	//
	var styledDiv = root
	for _, path := range []string{"html", "body", "div"} {
		found := false
		for _, ch := range styledDiv.Children() {
			if ch.NodeName() == path {
				styledDiv = ch
				found = true
				break
			}
		}
		require.True(t, found, "expected styled node for <%s>", path)
	}
	assert.Equal(t, div, styledDiv.HTMLNode())
	styles := styledDiv.Styles()
	assert.Equal(t, style.Property("10px"), styles.GetPropertyValue("width"), "important rule must win")
	assert.Equal(t, style.Property("green"), styles.GetPropertyValue("color"), "inline style comes last")
	assert.Equal(t, style.Property("4px"), styles.GetPropertyValue("padding-left"))
	assert.Equal(t, style.Property("1px"), styles.GetPropertyValue("margin-bottom"))
	//
	require.Len(t, styledDiv.Children(), 1, "text nodes are not styled")
	styledSpan := styledDiv.Children()[0]
	assert.Equal(t, style.Property("blue"), styledSpan.Styles().GetPropertyValue("color"))
}
