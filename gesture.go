package hlist

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	// Samples older than this are ignored when estimating a release velocity.
	velocityWindow = 100 * time.Millisecond

	// DefaultMinFlingVelocity is the slowest release, in cells per second,
	// that starts a fling.
	DefaultMinFlingVelocity = 30.0
	// DefaultMaxFlingVelocity caps release velocities, in cells per second.
	DefaultMaxFlingVelocity = 800.0
)

type velocitySample struct {
	x    int
	time time.Time
}

// velocityTracker estimates the horizontal pointer velocity from the samples
// recorded during a drag.
type velocityTracker struct {
	samples []velocitySample
}

func (t *velocityTracker) reset() {
	t.samples = t.samples[:0]
}

func (t *velocityTracker) add(x int, at time.Time) {
	t.samples = append(t.samples, velocitySample{x: x, time: at})

	// Drop samples that fell out of the window.
	cutoff := at.Add(-velocityWindow)
	drop := 0
	for drop < len(t.samples)-1 && t.samples[drop].time.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		kept := copy(t.samples, t.samples[drop:])
		t.samples = t.samples[:kept]
	}
}

// velocity returns the estimated velocity in cells per second, positive when
// the pointer moves right.
func (t *velocityTracker) velocity() float64 {
	if len(t.samples) < 2 {
		return 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	elapsed := last.time.Sub(first.time).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(last.x-first.x) / elapsed
}

// gestureDetector turns the mouse actions delivered to a list into drags,
// flings, wheel steps and item clicks.
type gestureDetector struct {
	list    *HorizontalList
	tracker velocityTracker

	dragging bool
	lastX    int

	minFlingVelocity float64
	maxFlingVelocity float64
}

func newGestureDetector(list *HorizontalList) *gestureDetector {
	return &gestureDetector{
		list:             list,
		minFlingVelocity: DefaultMinFlingVelocity,
		maxFlingVelocity: DefaultMaxFlingVelocity,
	}
}

func (g *gestureDetector) handle(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	l := g.list
	x, y := event.Position()
	if !g.dragging && !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		l.flinger.stop()
		g.dragging = true
		g.lastX = x
		g.tracker.reset()
		g.tracker.add(x, l.now())
		// Capturing keeps the drag with this list until the button is released.
		return l, SetFocusCommand{Target: l}
	case MouseMove:
		if !g.dragging {
			return nil, nil
		}
		g.tracker.add(x, l.now())
		dx := x - g.lastX
		g.lastX = x
		if dx != 0 && l.trackMotionScroll(dx, true) {
			return l, RedrawCommand{}
		}
		return l, nil
	case MouseLeftUp:
		if !g.dragging {
			return nil, nil
		}
		g.dragging = false
		g.tracker.add(x, l.now())
		v := g.tracker.velocity()
		if math.Abs(v) < g.minFlingVelocity {
			return nil, RedrawCommand{}
		}
		v = math.Copysign(min(math.Abs(v), g.maxFlingVelocity), v)
		// A pointer moving right scrolls the content towards lower positions.
		l.flinger.start(-int(v))
		return nil, RedrawCommand{}
	case MouseLeftClick:
		index, element := l.elementAt(x, y)
		if element == nil {
			return nil, nil
		}
		position := l.engine.state.firstPosition + index
		if l.itemClick != nil {
			l.itemClick.OnItemClick(l, element, position, l.adapter.ItemID(position))
		}
		return nil, RedrawCommand{}
	case MouseScrollLeft, MouseScrollUp:
		l.flinger.stop()
		if l.trackMotionScroll(l.wheelStep, true) {
			return nil, RedrawCommand{}
		}
		return nil, ConsumeEventCommand{}
	case MouseScrollRight, MouseScrollDown:
		l.flinger.stop()
		if l.trackMotionScroll(-l.wheelStep, true) {
			return nil, RedrawCommand{}
		}
		return nil, ConsumeEventCommand{}
	}

	return nil, nil
}
