package hlist

import (
	"time"
)

// fixedItem is an element of constant width remembering the position it was
// last bound to.
type fixedItem struct {
	*Box
	width    int
	position int
}

func newFixedItem(width, position int) *fixedItem {
	return &fixedItem{Box: NewBox(), width: width, position: position}
}

func (f *fixedItem) Width(height int) int {
	return f.width
}

// fixture is a list over count items of equal width in a one row viewport.
type fixture struct {
	list    *HorizontalList
	adapter *SliceAdapter[int]

	created int
	rebound int
}

func newFixture(count, itemWidth, viewportWidth int) *fixture {
	f := &fixture{}
	f.adapter = NewSliceAdapter(sequence(count), func(position int, item int, recycled Element) Element {
		if e, ok := recycled.(*fixedItem); ok {
			f.rebound++
			e.position = position
			return e
		}
		f.created++
		return newFixedItem(itemWidth, position)
	})
	f.list = NewHorizontalList()
	f.list.SetRect(0, 0, viewportWidth, 1)
	f.list.SetAdapter(f.adapter)
	f.list.Layout()
	return f
}

func sequence(count int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = i
	}
	return values
}

// positions returns the bound position of every attached element.
func (f *fixture) positions() []int {
	positions := []int{}
	for i := 0; i < f.list.ChildCount(); i++ {
		positions = append(positions, f.list.ChildAt(i).(*fixedItem).position)
	}
	return positions
}

// lefts returns the list-local left edge of every attached element.
func (f *fixture) lefts() []int {
	lefts := []int{}
	for i := 0; i < f.list.ChildCount(); i++ {
		lefts = append(lefts, elementLeft(f.list.ChildAt(i)))
	}
	return lefts
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type postedTask struct {
	delay time.Duration
	f     func()
	task  *Task
}

// manualScheduler queues posted functions until the test runs them. Running a
// task advances the clock by its delay first.
type manualScheduler struct {
	clock   *fakeClock
	pending []postedTask
}

func newManualScheduler(clock *fakeClock) *manualScheduler {
	return &manualScheduler{clock: clock}
}

func (s *manualScheduler) PostDelayed(delay time.Duration, f func()) *Task {
	task := NewTask(nil)
	s.pending = append(s.pending, postedTask{delay: delay, f: f, task: task})
	return task
}

// runNext runs the oldest pending task and reports whether there was one.
func (s *manualScheduler) runNext() bool {
	if len(s.pending) == 0 {
		return false
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	if s.clock != nil {
		s.clock.Advance(next.delay)
	}
	next.task.Run(next.f)
	return true
}

// runAll runs tasks until none are left or limit tasks ran. It returns the
// number of tasks run.
func (s *manualScheduler) runAll(limit int) int {
	n := 0
	for n < limit && s.runNext() {
		n++
	}
	return n
}

// live returns the number of pending tasks that were not canceled.
func (s *manualScheduler) live() int {
	n := 0
	for _, p := range s.pending {
		if !p.task.Canceled() {
			n++
		}
	}
	return n
}
