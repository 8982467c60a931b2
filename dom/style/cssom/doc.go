/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Function Style walks an HTML parse tree and creates a styled tree, where every
element node links to a property map. Properties are collected from rules of
stylesheets whose selectors match the element (selector matching is done with
https://godoc.org/github.com/andybalholm/cascadia) and from the inline style
attribute of the element.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
of package cssom.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'domfx.style'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.style")
}
