/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

cssom.Style() will create a styled tree from an HTML parse tree and a set
of stylesheets. Every styled node links an HTML element to its property map
and knows its parent and children. Inline styles live in the `style`
attribute of the underlying HTML node, which is where transitions and
animations get applied.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domfx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.dom")
}
