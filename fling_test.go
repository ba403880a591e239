package hlist

import (
	"testing"

	. "github.com/fulldump/biff"
)

type flingFixture struct {
	*fixture
	clock     *fakeClock
	scheduler *manualScheduler
	deltas    []int
}

func newFlingFixture(count int) *flingFixture {
	f := &flingFixture{
		fixture: newFixture(count, 10, 30),
		clock:   newFakeClock(),
	}
	f.scheduler = newManualScheduler(f.clock)
	f.list.now = f.clock.Now
	f.list.SetScheduler(f.scheduler)
	f.list.SetOnScrollListener(ScrollFunc(func(list *HorizontalList, deltaX, firstPosition, firstItemLeft int) {
		f.deltas = append(f.deltas, deltaX)
	}))
	return f
}

func TestFling_MovesContentLeft(t *testing.T) {
	f := newFlingFixture(100)

	f.list.Fling(200)

	AssertTrue(f.list.Flinging())
	frames := f.scheduler.runAll(1000)

	AssertTrue(frames > 1 && frames < 1000)
	AssertFalse(f.list.Flinging())
	AssertEqual(f.scheduler.live(), 0)

	total := 0
	for _, delta := range f.deltas {
		AssertTrue(delta < 0)
		total += delta
	}
	AssertEqual(total, -f.list.flinger.scroller.finalX)
	AssertTrue(f.list.FirstVisiblePosition() > 0)
}

func TestFling_FrameNeverExceedsViewport(t *testing.T) {
	f := newFlingFixture(100)

	f.list.Fling(1000000)
	frames := f.scheduler.runAll(10000)

	AssertTrue(frames < 10000)
	AssertFalse(f.list.Flinging())
	for _, delta := range f.deltas {
		AssertTrue(delta >= -29 && delta < 0)
	}
	// The fling ran into the end of the data.
	last := f.list.ChildAt(f.list.ChildCount() - 1).(*fixedItem)
	AssertEqual(last.position, 99)
	AssertEqual(elementRight(last), 30)
}

func TestFling_StopsAtBoundary(t *testing.T) {
	f := newFlingFixture(100)

	f.list.Fling(-500)
	frames := f.scheduler.runAll(1000)

	// The first frame does not move and the second is refused.
	AssertEqual(frames, 2)
	AssertFalse(f.list.Flinging())
	AssertEqual(len(f.deltas), 0)
	AssertEqual(f.list.FirstVisiblePosition(), 0)
}

func TestFling_StopIsIdempotent(t *testing.T) {
	f := newFlingFixture(100)
	f.list.Fling(200)
	f.scheduler.runNext()

	f.list.StopFling()
	f.list.StopFling()

	AssertFalse(f.list.Flinging())
	AssertEqual(f.scheduler.live(), 0)
	AssertTrue(f.list.flinger.scroller.isFinished())

	f.scheduler.runAll(1000)
	AssertEqual(len(f.deltas), 0)
}

func TestFling_RestartReplacesPendingFrame(t *testing.T) {
	f := newFlingFixture(100)

	f.list.Fling(200)
	f.list.Fling(300)

	AssertEqual(f.scheduler.live(), 1)
	AssertTrue(f.list.Flinging())
}

func TestFling_IgnoredWithoutScheduler(t *testing.T) {
	f := newFixture(100, 10, 30)

	f.list.Fling(200)
	f.list.Fling(0)

	AssertFalse(f.list.Flinging())
}

func TestFling_EndsWhenDataIsGone(t *testing.T) {
	f := newFlingFixture(100)
	f.list.Fling(200)
	f.scheduler.runNext()

	f.adapter.Clear()
	f.scheduler.runAll(1000)

	AssertFalse(f.list.Flinging())
	AssertEqual(len(f.deltas), 0)
}
