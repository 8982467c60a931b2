package dom

import (
	"strconv"
	"strings"

	"github.com/npillmayer/domfx/dom/fx"
)

// On registers a handler for events of a type, e.g. fx.TransitionEnd. It
// returns a function which removes the handler again.
func (el *Element) On(eventType string, handler func(*fx.Event)) (off func()) {
	el.doc.handlers++
	id := el.doc.handlers
	el.listeners = append(el.listeners, listener{id: id, eventType: eventType, handler: handler})
	return func() {
		for i, l := range el.listeners {
			if l.id == id {
				el.listeners = append(el.listeners[:i], el.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers an event to the handlers of the element and then of its
// ancestors, until a handler stops propagation. An event without a target
// is targeted at el.
//
// Clients call Dispatch for animationend and transitionend events reported by
// the host, which will complete running effects.
func (el *Element) Dispatch(e *fx.Event) {
	if e.Target == nil {
		e.Target = el
	}
	for n := el.node; n != nil; n = n.Parent {
		target, ok := el.doc.elements[n]
		if !ok || len(target.listeners) == 0 {
			continue
		}
		for _, l := range append([]listener(nil), target.listeners...) {
			if l.eventType == e.Type {
				l.handler(e)
			}
		}
		if e.PropagationStopped() {
			return
		}
	}
}

// Hide hides the element. If hiding triggers a CSS transition, or if
// animationName names a keyframe animation with non-zero duration, the
// effect's styles are applied and the element is hidden when the effect's
// end event is dispatched to it; done is called then. Otherwise the element
// is hidden and done is called before Hide returns.
//
// An effect still running from a previous call of Show or Hide is abandoned
// without calling its done.
func (el *Element) Hide(animationName string, done func()) *Element {
	el.toggle(animationName, true, done)
	return el
}

// Show shows the element. See Hide.
func (el *Element) Show(animationName string, done func()) *Element {
	el.toggle(animationName, false, done)
	return el
}

// IsHidden reports whether the element has been hidden with Hide.
func (el *Element) IsHidden() bool {
	v, _ := el.Attribute("aria-hidden")
	return v == "true"
}

// Effect returns the plan of the running effect, or nil.
func (el *Element) Effect() *fx.Plan {
	if el.effect == nil {
		return nil
	}
	return el.effect.plan
}

func (el *Element) toggle(animationName string, hiding bool, done func()) {
	el.abortEffect()
	el.SetAttribute("aria-hidden", strconv.FormatBool(hiding))
	plan := el.doc.fx.Compute(el, el.Computed(), animationName, hiding, func() {
		el.endEffect()
		el.setVisibility(hiding)
		if done != nil {
			done()
		}
	})
	if plan == nil {
		tracer().Debugf("<%s>: no effect, visibility changes at once", el.node.Data)
		el.setVisibility(hiding)
		if done != nil {
			done()
		}
		return
	}
	el.SetInlineStyle(joinDeclarations(plan.InitialCSSText, plan.CSSText))
	off := el.On(plan.EventType(), func(e *fx.Event) { plan.HandleEvent(e) })
	el.effect = &effect{plan: plan, off: off}
}

// endEffect removes the event handler of the running effect and restores the
// inline style it replaced.
func (el *Element) endEffect() {
	if el.effect == nil {
		return
	}
	el.effect.off()
	el.SetInlineStyle(el.effect.plan.InitialCSSText)
	el.effect = nil
}

func (el *Element) abortEffect() {
	if el.effect != nil {
		tracer().Infof("<%s>: abandoning running effect", el.node.Data)
		el.endEffect()
	}
}

func (el *Element) setVisibility(hiding bool) {
	if hiding {
		el.SetStyle("visibility", "hidden")
	} else {
		el.SetStyle("visibility", "inherit")
	}
}

func joinDeclarations(a, b string) string {
	a = strings.TrimRight(strings.TrimSpace(a), ";")
	if a == "" {
		return b
	}
	return a + ";" + b
}
