package hlist

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// flingFrameInterval is the delay between two fling frames.
const flingFrameInterval = 16 * time.Millisecond

// flinger turns a release velocity into a series of decaying scroll steps. It
// is idle or running; while running exactly one frame is posted to the list's
// scheduler.
type flinger struct {
	list     *HorizontalList
	scroller *scroller
	// Simulated position reported by the previous frame.
	lastX int
	task  *Task

	logger zerolog.Logger
}

func newFlinger(list *HorizontalList, now func() time.Time) *flinger {
	return &flinger{
		list:     list,
		scroller: newScroller(now),
		logger:   zerolog.Nop(),
	}
}

// start begins a fling with the given velocity in cells per second. A
// positive velocity moves the content leftwards. Zero velocities are ignored.
func (f *flinger) start(velocity int) {
	if velocity == 0 {
		return
	}
	if f.list.scheduler == nil {
		f.logger.Debug().Int("velocity", velocity).Msg("fling ignored without scheduler")
		return
	}
	f.task.Cancel()

	initialX := 0
	if velocity < 0 {
		initialX = math.MaxInt32
	}
	f.lastX = initialX
	f.scroller.fling(initialX, velocity, 0, math.MaxInt32)
	f.logger.Debug().Int("velocity", velocity).Dur("duration", f.scroller.duration).Msg("fling started")
	f.post(0)
}

// stop cancels the pending frame and finishes the simulation where it is.
func (f *flinger) stop() {
	f.task.Cancel()
	f.task = nil
	f.endFling()
}

func (f *flinger) running() bool {
	return f.task != nil
}

func (f *flinger) post(delay time.Duration) {
	var task *Task
	task = f.list.scheduler.PostDelayed(delay, func() {
		if f.task != task {
			return
		}
		f.run()
	})
	f.task = task
}

// run computes one frame.
func (f *flinger) run() {
	f.task = nil
	engine := f.list.engine
	if engine.count() == 0 {
		f.endFling()
		return
	}
	engine.state.shouldStopFling = false

	more := f.scroller.computeOffset()
	x := f.scroller.currX
	delta := f.lastX - x

	// Never move more than one viewport per frame.
	limit := max(engine.viewport.width()-1, 0)
	delta = min(max(delta, -limit), limit)

	f.list.trackMotionScroll(delta, true)

	if more && !engine.state.shouldStopFling {
		f.lastX = x
		f.post(flingFrameInterval)
		return
	}
	f.endFling()
}

func (f *flinger) endFling() {
	if !f.scroller.isFinished() {
		f.logger.Debug().Msg("fling finished")
	}
	f.scroller.forceFinished()
}
