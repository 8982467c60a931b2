package fx

import (
	"sync/atomic"
	"time"

	"github.com/npillmayer/domfx/dom/w3cdom"
)

// Names of the events signalling the end of an effect.
const (
	AnimationEnd  = "animationend"
	TransitionEnd = "transitionend"
)

// Event is an animationend or transitionend event, as delivered by the host.
type Event struct {
	Type          string              // AnimationEnd or TransitionEnd
	Target        w3cdom.InlineStyler // the element the effect ran on
	AnimationName string              // for animationend
	PropertyName  string              // for transitionend
	stopped       bool
}

// StopPropagation prevents further handlers from seeing the event.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation has been called.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// Plan is a visual effect ready to be applied to an element.
//
// Clients append CSSText to the element's inline style, deliver end events to
// HandleEvent and, once it returns true, restore InitialCSSText.
type Plan struct {
	CSSText        string        // declarations which trigger the effect
	InitialCSSText string        // inline style of the element before the effect
	Duration       time.Duration // effective duration of the effect
	node           w3cdom.InlineStyler
	animationName  string
	done           func()
	fired          atomic.Bool
}

// EventType returns the type of event which signals the end of the effect.
func (p *Plan) EventType() string {
	if p.animationName != "" {
		return AnimationEnd
	}
	return TransitionEnd
}

// HandleEvent checks if an event signals the end of this plan's effect. Events
// for other elements, other animations or for transitions of properties other
// than 'visibility' are ignored and left untouched. For the matching event,
// propagation is stopped and the completion callback is called. The callback
// is called at most once, and HandleEvent returns true only for the call which
// triggered it.
func (p *Plan) HandleEvent(e *Event) bool {
	if e == nil || e.Target != p.node {
		return false
	}
	if e.Type != "" && e.Type != p.EventType() {
		return false
	}
	if p.animationName != "" {
		if e.AnimationName != p.animationName {
			return false
		}
	} else if e.PropertyName != "visibility" {
		return false
	}
	e.StopPropagation()
	if !p.fired.CompareAndSwap(false, true) {
		return false
	}
	tracer().Debugf("fx: %s completed", p.EventType())
	if p.done != nil {
		p.done()
	}
	return true
}

// Done reports whether the completion callback has been called.
func (p *Plan) Done() bool {
	return p.fired.Load()
}
