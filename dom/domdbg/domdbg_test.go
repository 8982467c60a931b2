package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/domfx/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<html><body>
<div id="box" class="fade in" style="margin: 2px; transition: opacity 1s"><p>Hi</p></div>
</body></html>`

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	root, err := douceuradapter.Style(h)
	require.NoError(t, err)
	out := Dump(root, nil)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "div#box.fade.in")
	assert.Contains(t, out, "[Margins]  margin-top: 2px")
	assert.Contains(t, out, "[Animation]  transition-duration: 1s")
	assert.Contains(t, out, "p")
	//
	out = Dump(root, []string{"Margins"})
	assert.NotContains(t, out, "transition-duration")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.dom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	root, err := douceuradapter.Style(h)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(root, &buf, nil))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="div"`)
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "transition-property")
}
