/*
Package emmet expands emmet-like abbreviations into HTML fragments.

Overview

An abbreviation is a terse shorthand for HTML markup:

    ul>li.item$*3        // <ul><li class="item1"></li>…<li class="item3"></li></ul>
    i.icon+span          // <i class="icon"></i><span></span>
    a[href=/home]>`Home` // <a href="/home">Home</a>

Supported operators are '>' (child), '+' (sibling), '^' (climb up), '*' (repeat),
'.' (class), '#' (id), '[…]' (attributes), '`…`' (text) and '(…)' (grouping).
Expansion is done in two passes: the abbreviation is first converted into
reverse polish notation with a shunting-yard scanner, which is then reduced
into a list of HTML fragments.

The grammar is lenient on purpose. Malformed abbreviations never produce an
error but expand to whatever the operators make of them.

Caching

Every Engine owns a cache from literal abbreviations to HTML. The cache
never evicts entries. Single tags are always cached; complete expansions are
cached only if they have been produced with a variable map, i.e. when
placeholders have already been substituted.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emmet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domfx.emmet'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.emmet")
}
