package css

import (
	"fmt"

	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/styledtree"
)

// GetCascadedProperty gets the value of a property. The search cascades to
// parent property maps, if available.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
//
// The call to GetCascadedProperty will flag an error if the style property
// isn't set for the node or any of its ancestors.
func GetCascadedProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	for n := node; n != nil; n = n.Parent() {
		p := withVendorPrefixes(n.Styles(), key)
		if !p.IsEmpty() && !p.IsInherit() {
			return p, nil
		}
	}
	return style.NullStyle, fmt.Errorf("no ancestor sets property %s", key)
}

// GetProperty gets the value of a property. If the property is not set
// locally on the style node and the property is inheritable, the search
// cascades to parent property maps, if available. If the search fails, the
// user-agent default is returned.
func GetProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	if node == nil {
		return style.NullStyle, fmt.Errorf("cannot get property %s of nil node", key)
	}
	p := withVendorPrefixes(node.Styles(), key)
	if p.IsInherit() || (p.IsEmpty() && style.IsCascading(style.StripVendorPrefix(key))) {
		if node.Parent() != nil {
			if cp, err := GetCascadedProperty(node.Parent(), key); err == nil {
				return cp, nil
			}
		}
		p = style.NullStyle
	}
	if p.IsEmpty() || p.IsInitial() {
		p = style.GetUserAgentDefaultProperty(node.HTMLNode(), style.StripVendorPrefix(key))
	}
	return p, nil
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	groupname := style.GroupNameFromPropertyKey(key)
	var group *style.PropertyGroup
	group = pmap.Group(groupname)
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}
