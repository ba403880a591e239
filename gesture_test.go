package hlist

import (
	"math"
	"testing"
	"time"

	. "github.com/fulldump/biff"
	"github.com/gdamore/tcell/v2"
)

type gestureFixture struct {
	*fixture
	clock     *fakeClock
	scheduler *manualScheduler
}

func newGestureFixture() *gestureFixture {
	f := &gestureFixture{
		fixture: newFixture(8, 100, 300),
		clock:   newFakeClock(),
	}
	f.scheduler = newManualScheduler(f.clock)
	f.list.now = f.clock.Now
	f.list.SetScheduler(f.scheduler)
	return f
}

func (f *gestureFixture) mouse(action MouseAction, x int) (Primitive, Command) {
	return f.list.MouseHandler(action, tcell.NewEventMouse(x, 0, tcell.ButtonNone, tcell.ModNone))
}

func TestVelocityTracker(t *testing.T) {
	start := time.Unix(0, 0)
	tracker := velocityTracker{}

	AssertEqual(tracker.velocity(), 0.0)

	tracker.add(10, start)
	tracker.add(20, start.Add(50*time.Millisecond))

	AssertTrue(math.Abs(tracker.velocity()-200) < 1e-6)

	// Samples older than the window no longer count.
	tracker.add(20, start.Add(400*time.Millisecond))

	AssertEqual(len(tracker.samples), 1)
	AssertEqual(tracker.velocity(), 0.0)

	tracker.reset()
	AssertEqual(len(tracker.samples), 0)
}

func TestGesture_DragMovesContent(t *testing.T) {
	f := newGestureFixture()

	capture, command := f.mouse(MouseLeftDown, 200)

	AssertTrue(capture == Primitive(f.list))
	AssertEqual(command, SetFocusCommand{Target: f.list})

	f.clock.Advance(10 * time.Millisecond)
	capture, command = f.mouse(MouseMove, 190)

	AssertTrue(capture == Primitive(f.list))
	AssertEqual(command, RedrawCommand{})
	AssertEqual(f.lefts(), []int{-10, 90, 190, 290})

	// Dragging continues outside the list.
	f.clock.Advance(10 * time.Millisecond)
	f.mouse(MouseMove, 400)

	AssertEqual(f.lefts(), []int{0, 100, 200})
}

func TestGesture_QuickReleaseFlings(t *testing.T) {
	f := newGestureFixture()
	f.mouse(MouseLeftDown, 200)
	f.clock.Advance(10 * time.Millisecond)
	f.mouse(MouseMove, 190)
	f.clock.Advance(10 * time.Millisecond)
	f.mouse(MouseMove, 180)
	f.clock.Advance(10 * time.Millisecond)

	capture, command := f.mouse(MouseLeftUp, 180)

	AssertNil(capture)
	AssertEqual(command, RedrawCommand{})
	AssertTrue(f.list.Flinging())

	before := f.list.FirstVisiblePosition()
	f.scheduler.runAll(1000)

	AssertFalse(f.list.Flinging())
	AssertTrue(f.list.FirstVisiblePosition() >= before)
	AssertTrue(f.lefts()[0] < -20 || f.list.FirstVisiblePosition() > before)
}

func TestGesture_SlowReleaseDoesNotFling(t *testing.T) {
	f := newGestureFixture()
	f.mouse(MouseLeftDown, 200)
	f.clock.Advance(200 * time.Millisecond)
	f.mouse(MouseMove, 199)
	f.clock.Advance(200 * time.Millisecond)

	f.mouse(MouseLeftUp, 199)

	AssertFalse(f.list.Flinging())
}

func TestGesture_DownStopsFling(t *testing.T) {
	f := newGestureFixture()
	f.list.Fling(300)

	f.mouse(MouseLeftDown, 100)

	AssertFalse(f.list.Flinging())
	AssertEqual(f.scheduler.live(), 0)
}

func TestGesture_ClickReportsItem(t *testing.T) {
	f := newGestureFixture()
	f.adapter.SetItemIDFunc(func(item int) int64 { return int64(item) * 10 })
	var clicked Element
	position, id := -1, int64(-1)
	f.list.SetOnItemClickListener(ItemClickFunc(func(list *HorizontalList, element Element, p int, i int64) {
		clicked, position, id = element, p, i
	}))

	_, command := f.mouse(MouseLeftClick, 150)

	AssertEqual(command, RedrawCommand{})
	AssertTrue(clicked == f.list.ChildAt(1))
	AssertEqual(position, 1)
	AssertEqual(id, int64(10))
}

func TestGesture_ClickOutside(t *testing.T) {
	f := newGestureFixture()
	clicks := 0
	f.list.SetOnItemClickListener(ItemClickFunc(func(*HorizontalList, Element, int, int64) { clicks++ }))

	capture, command := f.mouse(MouseLeftClick, 400)

	AssertNil(capture)
	AssertNil(command)
	AssertEqual(clicks, 0)
}

func TestGesture_Wheel(t *testing.T) {
	f := newGestureFixture()

	_, command := f.mouse(MouseScrollRight, 10)

	AssertEqual(command, RedrawCommand{})
	AssertEqual(f.lefts()[0], -DefaultWheelStep)

	f.mouse(MouseScrollUp, 10)
	_, command = f.mouse(MouseScrollLeft, 10)

	AssertEqual(command, ConsumeEventCommand{})
	AssertEqual(f.lefts()[0], 0)
}

func TestGesture_MoveWithoutDrag(t *testing.T) {
	f := newGestureFixture()

	capture, command := f.mouse(MouseMove, 100)

	AssertNil(capture)
	AssertNil(command)
	AssertEqual(f.lefts(), []int{0, 100, 200})
}
