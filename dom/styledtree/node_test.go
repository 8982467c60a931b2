package styledtree

import (
	"testing"

	"github.com/npillmayer/domfx/dom/style"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestInlineStyle(t *testing.T) {
	h := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	sn := NewNodeForHTMLNode(h)
	assert.Equal(t, "", sn.InlineStyle())
	sn.SetInlineStyle("color:red")
	assert.Equal(t, "color:red", sn.InlineStyle())
	sn.SetInlineStyle("visibility:hidden")
	assert.Equal(t, "visibility:hidden", sn.InlineStyle())
	assert.Len(t, h.Attr, 1)
	sn.SetInlineStyle("")
	assert.Len(t, h.Attr, 0)
	assert.Equal(t, "div", sn.NodeName())
}

func TestCascadingProperty(t *testing.T) {
	parent := NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: "div"})
	pmap := style.NewPropertyMap()
	pmap.Add("visibility", "hidden")
	pmap.Add("width", "100px")
	parent.SetStyles(pmap)
	child := parent.AddChild(NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: "span"}))
	assert.Equal(t, parent, child.Parent())
	assert.Equal(t, style.Property("hidden"), child.GetPropertyValue("visibility"))
	assert.Equal(t, style.NullStyle, child.GetPropertyValue("width"))
}
