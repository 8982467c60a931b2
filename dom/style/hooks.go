package style

import "strings"

// VendorPrefixes are tried in order when a property is not set under its
// standard name.
var VendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

// VendorPrefix returns the vendor prefix of a property key, or "".
func VendorPrefix(key string) string {
	for _, prefix := range VendorPrefixes {
		if strings.HasPrefix(key, prefix) {
			return prefix
		}
	}
	return ""
}

// StripVendorPrefix returns a property key without its vendor prefix.
//
//     StripVendorPrefix("-webkit-transition-delay") => "transition-delay"
//
func StripVendorPrefix(key string) string {
	return strings.TrimPrefix(key, VendorPrefix(key))
}

// Getter is anything which hands out property values by key, e.g. computed
// styles or a PropertyMap.
type Getter interface {
	GetPropertyValue(string) Property
}

// Get reads a property from a style source, resolving vendor-prefixed
// equivalents: if the standard key is unset, the prefixed variants are
// consulted in the order of VendorPrefixes.
func Get(styles Getter, key string) Property {
	if styles == nil {
		return NullStyle
	}
	key = StripVendorPrefix(key)
	if p := styles.GetPropertyValue(key); !p.IsEmpty() {
		return p
	}
	for _, prefix := range VendorPrefixes {
		if p := styles.GetPropertyValue(prefix + key); !p.IsEmpty() {
			tracer().Debugf("style hook: %s resolved to %s%s", key, prefix, key)
			return p
		}
	}
	return NullStyle
}

// Prefixed returns the property key with a vendor prefix for properties which
// need one on engines requiring the prefix.
func Prefixed(prefix, key string) string {
	if prefix == "" {
		return key
	}
	switch StripVendorPrefix(key) {
	case "transition-property", "transition-duration", "transition-delay",
		"transition-timing-function", "transition",
		"animation-name", "animation-duration", "animation-delay", "animation-direction",
		"animation-timing-function", "animation-iteration-count", "animation-fill-mode",
		"animation":
		return prefix + StripVendorPrefix(key)
	}
	return key
}
