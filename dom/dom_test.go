package dom

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/domfx/dom/emmet"
	"github.com/npillmayer/domfx/dom/fx"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head></head><body>
<ul id="list"><li id="a"></li><li id="b" class="x"></li><li id="c"></li></ul>
<div id="box" style="color: red"></div>
</body></html>`

func parse(t *testing.T) *Document {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func find(t *testing.T, doc *Document, sel string) *Element {
	el, err := doc.Find(sel)
	require.NoError(t, err)
	require.NotNil(t, el, "no element for %q", sel)
	return el
}

func TestEmmet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	_, err := Emmet(42, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	var serr *StaticMethodError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "emmet", serr.Method)
	assert.Equal(t, "invalid call of DOM.emmet", err.Error())
	//
	s, err := Emmet("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	s, err = Emmet("b>`hello {user}`", map[string]string{"user": "world"})
	require.NoError(t, err)
	assert.Equal(t, "<b>hello world</b>", s)
	s, err = Emmet("i.{0}", []string{"icon"})
	require.NoError(t, err)
	assert.Equal(t, `<i class="icon"></i>`, s)
	s, err = Emmet("a#{id}", emmet.Map{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, `<a id="7"></a>`, s)
	_, err = Emmet("a", 3.14)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	//
	s, err = Format("{0}-{x}", []interface{}{1, "two"})
	require.NoError(t, err)
	assert.Equal(t, "1-{x}", s)
	_, err = Format(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateAndAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	els, err := doc.Create("ul>li.item$*2", nil)
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, `<ul><li class="item1"></li><li class="item2"></li></ul>`, els[0].HTML())
	//
	els, err = doc.Create("li#{0}+li", []string{"d"})
	require.NoError(t, err)
	require.Len(t, els, 2)
	list := find(t, doc, "#list")
	list.Append(els...)
	assert.Contains(t, list.HTML(), `<li id="c"></li><li id="d"></li><li></li></ul>`)
	assert.Same(t, els[0], find(t, doc, "#d"))
	//
	_, err = doc.Create(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	a, b, c := find(t, doc, "#a"), find(t, doc, "#b"), find(t, doc, "#c")
	next, err := a.Next("")
	require.NoError(t, err)
	assert.Same(t, b, next)
	next, _ = a.Next(".x")
	assert.Same(t, b, next)
	next, _ = b.Next(".x")
	assert.Nil(t, next)
	prev, _ := c.Prev("#a")
	assert.Same(t, a, prev)
	all, _ := a.NextAll("")
	assert.Equal(t, []*Element{b, c}, all)
	all, _ = c.PrevAll("li")
	assert.Equal(t, []*Element{b, a}, all)
	parent, _ := a.Parent("")
	assert.Equal(t, "ul", parent.NodeName())
	parent, _ = a.Parent("body")
	assert.Equal(t, "body", parent.NodeName())
	//
	_, err = a.Next("a[")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	var merr *MethodError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "next", merr.Method)
	_, err = doc.Find("::(")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	empty, err := doc.Find("")
	assert.Nil(t, empty)
	var serr *StaticMethodError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "find", serr.Method)
	lis, err := doc.FindAll("li")
	require.NoError(t, err)
	assert.Len(t, lis, 3)
}

func TestImportStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	box := find(t, doc, "#box")
	assert.Equal(t, "auto", box.Style("width"))
	require.NoError(t, doc.ImportStyles("#box", "width: 10px"))
	assert.Equal(t, "10px", box.Style("width"))
	assert.Equal(t, "red", box.Style("color"))
	//
	pf := fx.DefaultPlatform()
	pf.VendorPrefix = "-webkit-"
	doc.SetPlatform(pf)
	require.NoError(t, doc.ImportStyles("li", map[string]string{
		"transition-duration": "1s",
		"color":               "blue",
	}))
	css := doc.GlobalStyles()
	assert.Contains(t, css, "-webkit-transition-duration: 1s")
	assert.Contains(t, css, "color: blue")
	li := find(t, doc, "#a")
	assert.Equal(t, "1s", li.Style("transition-duration"))
	//
	assert.ErrorIs(t, doc.ImportStyles(1, "color: red"), ErrInvalidArgument)
	assert.ErrorIs(t, doc.ImportStyles("p", 1), ErrInvalidArgument)
}

func TestHideWithoutEffect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	box := find(t, doc, "#box")
	calls := 0
	box.Hide("", func() { calls++ })
	assert.Equal(t, 1, calls, "without width, hiding has no effect")
	assert.True(t, box.IsHidden())
	assert.Nil(t, box.Effect())
	assert.Equal(t, "color: red; visibility: hidden", box.InlineStyle())
	assert.Equal(t, "hidden", box.Style("visibility"))
	box.Show("", nil)
	assert.False(t, box.IsHidden())
	assert.Equal(t, "color: red; visibility: inherit", box.InlineStyle())
}

func TestHideWithTransition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	require.NoError(t, doc.ImportStyles("#box", "width: 100px; transition: opacity 0.3s"))
	box := find(t, doc, "#box")
	calls := 0
	box.Hide("", func() { calls++ })
	assert.Equal(t, 0, calls)
	assert.True(t, box.IsHidden())
	plan := box.Effect()
	require.NotNil(t, plan)
	assert.Equal(t, 300*time.Millisecond, plan.Duration)
	assert.True(t, strings.HasPrefix(box.InlineStyle(), "color: red;transition-timing-function:ease, linear;"))
	assert.Contains(t, box.InlineStyle(), "transition-property:opacity, visibility;")
	assert.Contains(t, box.InlineStyle(), "transition-delay:0s, 300ms;visibility:hidden;")
	//
	box.Dispatch(&fx.Event{Type: fx.TransitionEnd, PropertyName: "opacity"})
	assert.Equal(t, 0, calls)
	assert.NotNil(t, box.Effect())
	box.Dispatch(&fx.Event{Type: fx.TransitionEnd, PropertyName: "visibility"})
	assert.Equal(t, 1, calls)
	assert.Nil(t, box.Effect())
	assert.Equal(t, "color: red; visibility: hidden", box.InlineStyle())
	box.Dispatch(&fx.Event{Type: fx.TransitionEnd, PropertyName: "visibility"})
	assert.Equal(t, 1, calls)
}

func TestShowWithAnimation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	require.NoError(t, doc.ImportStyles("#box", map[string]interface{}{
		"width":              "50px",
		"animation-duration": "0.5s",
	}))
	box := find(t, doc, "#box")
	calls := 0
	box.Show("fadeIn", func() { calls++ })
	require.NotNil(t, box.Effect())
	assert.Equal(t, fx.AnimationEnd, box.Effect().EventType())
	assert.Equal(t, "color: red;animation-direction:normal;animation-name:fadeIn;visibility:inherit",
		box.InlineStyle())
	box.Dispatch(&fx.Event{Type: fx.AnimationEnd, AnimationName: "fadeOut"})
	assert.Equal(t, 0, calls)
	box.Dispatch(&fx.Event{Type: fx.AnimationEnd, AnimationName: "fadeIn"})
	assert.Equal(t, 1, calls)
	assert.Equal(t, "color: red; visibility: inherit", box.InlineStyle())
}

func TestAbandonedEffect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	require.NoError(t, doc.ImportStyles("#box", "width: 100px; transition: opacity 1s"))
	box := find(t, doc, "#box")
	hidden, shown := 0, 0
	box.Hide("", func() { hidden++ })
	require.NotNil(t, box.Effect())
	box.Show("", func() { shown++ })
	require.NotNil(t, box.Effect())
	assert.Contains(t, box.InlineStyle(), "visibility:inherit;")
	box.Dispatch(&fx.Event{Type: fx.TransitionEnd, PropertyName: "visibility"})
	assert.Equal(t, 0, hidden, "abandoned effects never complete")
	assert.Equal(t, 1, shown)
	assert.False(t, box.IsHidden())
}

func TestEventBubbling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	doc := parse(t)
	list, a := find(t, doc, "#list"), find(t, doc, "#a")
	var seen []string
	off := list.On("ping", func(e *fx.Event) {
		assert.Same(t, a, e.Target)
		seen = append(seen, "list")
	})
	a.On("ping", func(e *fx.Event) { seen = append(seen, "a") })
	a.Dispatch(&fx.Event{Type: "ping"})
	assert.Equal(t, []string{"a", "list"}, seen)
	off()
	a.Dispatch(&fx.Event{Type: "ping"})
	assert.Equal(t, []string{"a", "list", "a"}, seen)
	a.On("ping", func(e *fx.Event) { e.StopPropagation() })
	list.On("ping", func(e *fx.Event) { seen = append(seen, "list") })
	a.Dispatch(&fx.Event{Type: "ping"})
	assert.Equal(t, []string{"a", "list", "a", "a"}, seen)
}
