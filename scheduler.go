package hlist

import (
	"sync/atomic"
	"time"
)

// Scheduler runs functions on the goroutine that owns the primitives, after a
// delay. [Application] implements it.
type Scheduler interface {
	PostDelayed(delay time.Duration, f func()) *Task
}

// Task is a function posted to a Scheduler. A canceled task never runs.
type Task struct {
	canceled atomic.Bool
	// Optional hook releasing scheduler resources, such as a timer.
	stop func()
}

// NewTask returns a pending task. stop, if not nil, is called once when the
// task is canceled.
func NewTask(stop func()) *Task {
	return &Task{stop: stop}
}

// Cancel prevents the task from running. It is safe to call more than once
// and on a nil task.
func (t *Task) Cancel() {
	if t == nil || t.canceled.Swap(true) {
		return
	}
	if t.stop != nil {
		t.stop()
	}
}

// Canceled reports whether Cancel was called.
func (t *Task) Canceled() bool {
	return t.canceled.Load()
}

// Run calls f unless the task was canceled. Schedulers call it on the owning
// goroutine.
func (t *Task) Run(f func()) {
	if t.Canceled() {
		return
	}
	f()
}
