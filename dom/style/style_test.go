package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupNames(t *testing.T) {
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, PGAnimation, GroupNameFromPropertyKey("transition-delay"))
	assert.Equal(t, PGAnimation, GroupNameFromPropertyKey("-webkit-transition-delay"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("funny-margin"))
}

func TestPropertyMapAsGetter(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Add("-webkit-transition-duration", "0.3s")
	pmap.Add("width", "10px")
	assert.Equal(t, Property("0.3s"), Get(pmap, "transition-duration"))
	assert.Equal(t, Property("10px"), Get(pmap, "width"))
	assert.Equal(t, NullStyle, Get(pmap, "height"))
	assert.Equal(t, NullStyle, Get(nil, "height"))
}

func TestSplitList(t *testing.T) {
	items := SplitList("cubic-bezier(0.1, 0.7, 1, 0.1), linear, steps(4, end)")
	assert.Equal(t, []string{"cubic-bezier(0.1, 0.7, 1, 0.1)", "linear", "steps(4, end)"}, items)
	assert.Equal(t, []string{""}, SplitList(""))
	assert.Equal(t, []string{"color", "transform"}, SplitList("color,transform"))
	assert.Equal(t, Property("a, b"), JoinList([]string{"a", "b"}))
}

func TestSplitCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domfx.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("padding", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t, KeyValue{"padding-left", "2px"}, kv[3])
	kv, err = SplitCompoundProperty("border-radius", "3px")
	require.NoError(t, err)
	assert.Equal(t, "border-top-right-radius", kv[0].Key)
	_, err = SplitCompoundProperty("color", "red")
	assert.Error(t, err)
}

func TestSplitTransition(t *testing.T) {
	kv, err := SplitCompoundProperty("transition",
		"opacity 0.3s cubic-bezier(0.1, 0.7, 1, 0.1) 100ms, visibility 0s")
	require.NoError(t, err)
	require.Len(t, kv, 4)
	assert.Equal(t, KeyValue{"transition-timing-function", "cubic-bezier(0.1, 0.7, 1, 0.1), ease"}, kv[0])
	assert.Equal(t, KeyValue{"transition-property", "opacity, visibility"}, kv[1])
	assert.Equal(t, KeyValue{"transition-duration", "0.3s, 0s"}, kv[2])
	assert.Equal(t, KeyValue{"transition-delay", "100ms, 0s"}, kv[3])
	//
	kv, err = SplitCompoundProperty("-webkit-transition", "1s")
	require.NoError(t, err)
	assert.Equal(t, KeyValue{"-webkit-transition-property", "all"}, kv[1])
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, "-webkit-animation-name", Prefixed("-webkit-", "animation-name"))
	assert.Equal(t, "visibility", Prefixed("-webkit-", "visibility"))
	assert.Equal(t, "transition-delay", Prefixed("", "transition-delay"))
}

func TestUserAgentDefaults(t *testing.T) {
	assert.Equal(t, Property("0s"), GetUserAgentDefaultProperty(nil, "transition-duration"))
	assert.Equal(t, Property("all"), GetUserAgentDefaultProperty(nil, "-moz-transition-property"))
	assert.Equal(t, Property("auto"), GetUserAgentDefaultProperty(nil, "width"))
	assert.Equal(t, Property("none"), GetUserAgentDefaultProperty(nil, "display"))
	defaults := InitializeDefaultPropertyValues(nil)
	assert.Equal(t, Property("ease"), defaults.GetPropertyValue("transition-timing-function"))
}
