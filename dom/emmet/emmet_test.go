package emmet

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSingleTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.emmet")
	defer teardown()
	//
	e := New()
	assert.Equal(t, "<a></a>", e.Expand("a", nil))
	assert.Equal(t, "<br>", e.Expand("br", nil))
	assert.Equal(t, "<img>", e.Expand("img", nil))
	assert.Equal(t, "", e.Expand("", nil))
}

func TestExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.emmet")
	defer teardown()
	//
	e := New()
	for _, c := range []struct{ abbr, html string }{
		{"ul>li*2", "<ul><li></li><li></li></ul>"},
		{"i.icon+span", `<i class="icon"></i><span></span>`},
		{"div#main.a.b", `<div id="main" class="a b"></div>`},
		{"img#logo", `<img id="logo">`},
		{"a[href=/x title]", `<a href="/x" title="title"></a>`},
		{"input[disabled]", `<input disabled="disabled">`},
		{`input[value=a"b]`, `<input value='a"b'>`},
		{"a[title=`a b`]", `<a title="a b"></a>`},
		{"div>p^span", "<div><p></p></div><span></span>"},
		{"a>b^^c", "<a><b></b></a><c></c>"},
		{"ul>(li>a)+li", "<ul><li><a></a></li><li></li></ul>"},
		{"ul>li*2>a", "<ul><li><a></a></li><li><a></a></li></ul>"},
		{"p>`a > b`", "<p>a > b</p>"},
		{"p>`+`", "<p>+</p>"},
		{"b>``", "<b></b>"},
		{"span+`text`", "<span></span>text"},
		{"a[]", "<a></a>"},
	} {
		assert.Equal(t, c.html, e.Expand(c.abbr, nil), "abbreviation %q", c.abbr)
	}
}

func TestIndexedRepetition(t *testing.T) {
	e := New()
	assert.Equal(t,
		`<li class="item1"></li><li class="item2"></li><li class="item3"></li>`,
		e.Expand("li.item$*3", nil))
	assert.Equal(t,
		`<li class="item00"></li><li class="item01"></li>`,
		e.Expand("li.item$$@0*2", nil))
	assert.Equal(t,
		`<li class="item3"></li><li class="item2"></li><li class="item1"></li>`,
		e.Expand("li.item$@-*3", nil))
	assert.Equal(t, "", e.Expand("li*x", nil))
}

func TestOversizedRepetition(t *testing.T) {
	e := New()
	assert.NotPanics(t, func() {
		assert.Equal(t, "", e.Expand("li*99999999999999999999", nil))
		assert.Equal(t, "", e.Expand("li*1e300", nil))
		assert.Equal(t, "<p></p>", e.Expand("p+li*99999999999999999999", nil))
	})
	assert.Equal(t, 0, count("99999999999999999999"))
	assert.Equal(t, maxRepeat, count("65536"))
}

func TestIndexIsNotTruncated(t *testing.T) {
	frags := repeat(12, "$")
	assert.Len(t, frags, 12)
	assert.Equal(t, "1", frags[0])
	assert.Equal(t, "12", frags[11])
}

func TestExpandWithVars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.emmet")
	defer teardown()
	//
	e := New()
	html := e.Expand("b>`hello {user}`", Map{"user": "world"})
	assert.Equal(t, "<b>hello world</b>", html)
	parses := e.parses.Load()
	html = e.Expand("b>`hello {user}`", Map{"user": "world"})
	assert.Equal(t, "<b>hello world</b>", html)
	assert.Equal(t, parses, e.parses.Load(), "second expansion should be served from cache")
	//
	assert.Equal(t, `<i class="icon"></i><span></span>`, e.Expand("i.{0}+span", List{"icon"}))
}

func TestNoCachingWithoutVars(t *testing.T) {
	e := New()
	first := e.Expand("ul>li", nil)
	second := e.Expand("ul>li", nil)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(2), e.parses.Load())
	// single tags are cached nevertheless
	e.Expand("section", nil)
	e.Expand("section", nil)
	assert.Equal(t, uint64(3), e.parses.Load())
}

func TestRPN(t *testing.T) {
	rpn := toRPN("i.icon+span")
	expected := []token{{term: "i"}, {term: "icon"}, {op: opClass}, {term: "span"}, {op: opSibling}}
	assert.Equal(t, expected, rpn)
	//
	rpn = toRPN("div.a.b")
	expected = []token{{term: "div"}, {term: "a b"}, {op: opClass}}
	assert.Equal(t, expected, rpn)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "a-2", Format("{0}-{1}", List{"a", 2}))
	assert.Equal(t, "x {missing} y", Format("{a} {missing} {b}", Map{"a": "x", "b": "y"}))
	assert.Equal(t, "{0}", Format("{0}", List{}))
	assert.Equal(t, "unchanged {a}", Format("unchanged {a}", nil))
}

func TestDefaultEngine(t *testing.T) {
	assert.Equal(t, "<hr>", Expand("hr", nil))
}
