package fx

import (
	"strings"
	"time"

	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/style/css"
	"github.com/npillmayer/domfx/dom/w3cdom"
)

// Coordinator computes effect plans for a platform.
type Coordinator struct {
	platform Platform
}

// New creates a coordinator for a platform.
func New(platform Platform) *Coordinator {
	return &Coordinator{platform: platform}
}

// Platform returns the platform the coordinator computes plans for.
func (c *Coordinator) Platform() Platform {
	return c.platform
}

var defaultCoordinator = New(DefaultPlatform())

// Compute computes an effect plan for the default platform.
// See Coordinator.Compute.
func Compute(node w3cdom.InlineStyler, computed style.Getter, animationName string,
	hiding bool, done func()) *Plan {
	return defaultCoordinator.Compute(node, computed, animationName, hiding, done)
}

// Compute computes the plan for showing or hiding node. computed are the
// computed styles of node. If animationName is set, the effect is the keyframe
// animation of that name, otherwise it is the transitions set up for node.
// done will be called by the plan's event handler.
//
// Compute returns nil if there is no visual effect: if the platform does not
// support effects, if node is not laid out with a non-zero width, or if the
// effective duration is zero. Clients should then show or hide node at once.
func (c *Coordinator) Compute(node w3cdom.InlineStyler, computed style.Getter, animationName string,
	hiding bool, done func()) *Plan {
	//
	if node == nil || !c.platform.SupportsEffects() {
		tracer().Debugf("fx: effects not supported on platform %q", c.platform.Name)
		return nil
	}
	if !css.HasLayoutWidth(computed) {
		tracer().Debugf("fx: element has no width, skipping effect")
		return nil
	}
	var rules []string
	var ms float64
	prefix := c.platform.VendorPrefix
	if animationName != "" {
		ms = css.Milliseconds(style.Get(computed, "animation-duration"))
		if ms <= 0 {
			return nil
		}
		direction := "normal"
		if hiding {
			direction = "reverse"
		}
		rules = []string{
			style.Prefixed(prefix, "animation-direction") + ":" + direction,
			style.Prefixed(prefix, "animation-name") + ":" + animationName,
			"visibility:inherit", // keyframes do the hiding
		}
	} else {
		tv := readTransitionValues(computed)
		ms = tv.duration()
		if ms <= 0 {
			return nil
		}
		if indexOf(tv[1], "all") < 0 {
			tv.setVisibility(tv.visibilitySlot(), ms, hiding)
		}
		for i, key := range style.TransitionLonghands {
			rules = append(rules, style.Prefixed(prefix, key)+":"+strings.Join(tv[i], ", "))
		}
		visibility := "inherit"
		if hiding {
			visibility = "hidden"
		}
		rules = append(rules,
			"visibility:"+visibility,
			"will-change:"+strings.Join(tv[1], ", "),
		)
	}
	plan := &Plan{
		CSSText:        strings.Join(rules, ";"),
		InitialCSSText: node.InlineStyle(),
		Duration:       time.Duration(ms * float64(time.Millisecond)),
		node:           node,
		animationName:  animationName,
		done:           done,
	}
	tracer().P("event", plan.EventType()).Debugf("fx: plan %q for %v", plan.CSSText, plan.Duration)
	return plan
}

// --- Transition values -----------------------------------------------------

// transitionValues holds the lists of the transition longhand properties, in
// the order of style.TransitionLonghands: timing functions, properties,
// durations and delays. All lists have the length of the property list.
type transitionValues [4][]string

func readTransitionValues(computed style.Getter) transitionValues {
	var tv transitionValues
	for i, key := range style.TransitionLonghands {
		tv[i] = style.SplitList(style.Get(computed, key))
	}
	n := len(tv[1])
	for i := range tv {
		tv[i] = repeatList(tv[i], n)
	}
	return tv
}

// repeatList repeats or truncates a list of values to length n, as CSS does for
// transition value lists of unequal length.
func repeatList(values []string, n int) []string {
	if len(values) == n {
		return values
	}
	r := make([]string, n)
	for i := range r {
		r[i] = values[i%len(values)]
	}
	return r
}

// duration returns the maximum of duration plus delay over all properties, in
// milliseconds.
func (tv transitionValues) duration() float64 {
	var longest float64
	for i := range tv[1] {
		d := css.Milliseconds(style.Property(tv[2][i])) + css.Milliseconds(style.Property(tv[3][i]))
		if d > longest {
			longest = d
		}
	}
	return longest
}

// visibilitySlot returns the index of the transition entry for 'visibility'.
// An existing entry for visibility is re-used, or else an entry with zero
// duration. If there is none, an entry is appended.
func (tv *transitionValues) visibilitySlot() int {
	if i := indexOf(tv[1], "visibility"); i >= 0 {
		return i
	}
	if i := indexOf(tv[2], "0s"); i >= 0 {
		return i
	}
	for k := range tv {
		tv[k] = append(tv[k], "")
	}
	return len(tv[1]) - 1
}

// setVisibility sets up the visibility transition at index i. When hiding,
// visibility flips to hidden after ms milliseconds, i.e. at the end of all
// other transitions. When showing, visibility takes ms milliseconds to
// transition to visible, which flips it at once.
func (tv *transitionValues) setVisibility(i int, ms float64, hiding bool) {
	tv[0][i] = "linear"
	tv[1][i] = "visibility"
	if hiding {
		tv[2][i] = "0s"
		tv[3][i] = css.FormatMilliseconds(ms)
	} else {
		tv[2][i] = css.FormatMilliseconds(ms)
		tv[3][i] = "0s"
	}
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}
