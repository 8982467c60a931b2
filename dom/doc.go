/*
Package dom is a small DOM abstraction on top of golang.org/x/net/html.

Overview

A Document wraps an HTML parse tree together with the stylesheets which
apply to it. Elements are lightweight wrappers for element nodes; there is
exactly one wrapper per node and document.

    doc, _ := dom.Parse(strings.NewReader(page))
    doc.ImportStyles(".fade", "transition: opacity 0.3s")
    el, _ := doc.Find(".fade")
    el.Hide("", func() { … })

Templates

Emmet expands emmet-like abbreviations into HTML, see package emmet:

    dom.Emmet("ul>li.item$*3", nil)

Document.Create turns the expansion into elements right away.

Effects

Show and Hide use package fx to find out whether changing the visibility of
an element triggers a CSS transition or animation. If it does, the effect's
styles are applied and completion is signalled by the end event, which
clients deliver through Element.Dispatch. Otherwise visibility changes at
once.

Documents are not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domfx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.dom")
}
