package css

import (
	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/styledtree"
	"github.com/npillmayer/domfx/dom/w3cdom"
)

// Computed returns the computed styles of a styled node. Property values
// cascade to ancestors where CSS defines inheritance, vendor-prefixed
// declarations stand in for unset standard ones, and user-agent defaults fill
// in the rest.
func Computed(node *styledtree.StyNode) w3cdom.ComputedStyles {
	return nodeStyles{node: node}
}

type nodeStyles struct {
	node *styledtree.StyNode
}

func (ns nodeStyles) GetPropertyValue(key string) style.Property {
	p, _ := GetProperty(ns.node, key)
	return p
}

func (ns nodeStyles) Styles() *style.PropertyMap {
	return ns.node.Styles()
}

// Snapshot wraps a flat property map as computed styles, without any cascading.
// Unset properties report their user-agent default.
func Snapshot(pmap *style.PropertyMap) w3cdom.ComputedStyles {
	return snapshot{pmap: pmap}
}

type snapshot struct {
	pmap *style.PropertyMap
}

var uaDefaults = style.InitializeDefaultPropertyValues(nil)

func (s snapshot) GetPropertyValue(key string) style.Property {
	if p := withVendorPrefixes(s.pmap, key); !p.IsEmpty() {
		return p
	}
	return uaDefaults.GetPropertyValue(style.StripVendorPrefix(key))
}

func (s snapshot) Styles() *style.PropertyMap {
	return s.pmap
}

// withVendorPrefixes reads a locally set property, trying vendor-prefixed
// variants if the key is unset.
func withVendorPrefixes(pmap *style.PropertyMap, key string) style.Property {
	if p := GetLocalProperty(pmap, key); !p.IsEmpty() || style.VendorPrefix(key) != "" {
		return p
	}
	for _, prefix := range style.VendorPrefixes {
		if p := GetLocalProperty(pmap, prefix+key); !p.IsEmpty() {
			return p
		}
	}
	return style.NullStyle
}

// HasLayoutWidth reports whether computed styles describe an element which
// takes up horizontal space, i.e. is displayed and has a non-zero width.
// Widths of `auto` count as not laid out, as browsers report them for
// elements without a layout box.
func HasLayoutWidth(styles style.Getter) bool {
	if mode, _ := ParseDisplay(style.Get(styles, "display").String()); mode.Contains(DisplayNone) {
		return false
	}
	w, err := ParseDimen(style.Get(styles, "width"))
	if err != nil {
		tracer().Debugf("cannot interpret width: %v", err)
		return false
	}
	return !w.IsUnset() && !w.IsAuto() && !w.IsZero()
}
