/*
Package fx coordinates CSS transitions and keyframe animations which show or
hide an element.

Overview

Given the computed styles of an element, Compute decides whether showing or
hiding it will produce a visual effect, and if so, returns a Plan:

    plan := fx.Compute(node, computed, "", true, func() { … })
    if plan == nil {
        // no visual effect, hide synchronously
    }

The plan carries the CSS text to apply to the element's inline style, the
inline style to restore afterwards, and an event handler. Clients deliver
animationend/transitionend events to Plan.HandleEvent, which recognizes the
single relevant event and calls the completion callback exactly once.

Transitions without an explicit transition for 'visibility' get one
synthesized, so that an element becomes hidden only after all other
properties have finished their transition.

Compute neither starts timers nor waits for events. If the host never
delivers a matching end event, the callback is never called.

Platforms

Some engines report animation styles unreliably. A Platform describes the
host engine and may be loaded from a YAML or TOML file:

    name: legacy-webkit
    engine-version: 9
    vendor-prefix: -webkit-

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domfx.fx'.
func tracer() tracing.Trace {
	return tracing.Select("domfx.fx")
}
