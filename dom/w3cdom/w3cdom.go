/*
Package w3cdom defines interface types modeled after the W3C Document Object Model.

See also https://www.w3schools.com/XML/dom_intro.asp

Status

Early draft: API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/domfx/dom/style"
)

// ComputedStyles represents the resolved CSS styles of a node, as returned by
// window.getComputedStyle() in a browser.
type ComputedStyles interface {
	GetPropertyValue(string) style.Property // resolved value, including defaults
	Styles() *style.PropertyMap             // locally set properties
}

// InlineStyler is a node carrying an inline style attribute.
type InlineStyler interface {
	InlineStyle() string   // current css text of the style attribute
	SetInlineStyle(string) // replace the css text of the style attribute
}
