package hlist

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const (
	eventQueueSize  = 100
	updateQueueSize = 100
)

// MouseAction is what the mouse logically did, derived from raw tcell events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	// A left press and release without movement in between.
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var wheelActions = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseTracker turns the button state carried by successive mouse events into
// actions.
type mouseTracker struct {
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
}

func (m *mouseTracker) actions(event *tcell.EventMouse) []MouseAction {
	var actions []MouseAction
	x, y := event.Position()
	buttons := event.Buttons()

	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
		m.x, m.y = x, y
	}
	if (buttons^m.buttons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			actions = append(actions, MouseLeftDown)
			m.downX, m.downY = x, y
		} else {
			actions = append(actions, MouseLeftUp)
			if x == m.downX && y == m.downY {
				actions = append(actions, MouseLeftClick)
			}
		}
	}
	for _, wheel := range wheelActions {
		if buttons&wheel.button != 0 {
			actions = append(actions, wheel.action)
		}
	}
	m.buttons = buttons
	return actions
}

// update is a function run on the event loop. done, if set, is closed after
// f returns.
type update struct {
	f      func()
	redraw bool
	done   chan struct{}
}

// Application owns the screen and runs the event loop. Every change to
// primitives happens on the loop goroutine, either from event handlers or
// through [Application.QueueUpdate].
//
// It implements [Scheduler], so a [HorizontalList] posts its fling frames to
// the loop:
//
//	app := hlist.NewApplication()
//	list := hlist.NewHorizontalList().SetScheduler(app)
//	if err := app.SetRoot(list).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	mu     sync.RWMutex
	screen tcell.Screen
	root   Primitive
	focus  Primitive

	events  chan tcell.Event
	updates chan update

	// Closed once Run returns.
	done     chan struct{}
	doneOnce sync.Once

	mouse mouseTracker
	// Receives follow-up mouse actions while set.
	capture Primitive

	logger zerolog.Logger
}

func NewApplication() *Application {
	return &Application{
		events:  make(chan tcell.Event, eventQueueSize),
		updates: make(chan update, updateQueueSize),
		done:    make(chan struct{}),
		logger:  zerolog.Nop(),
	}
}

// SetScreen makes Run use screen instead of the terminal. screen must not be
// initialized yet.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
	}
	return a
}

func (a *Application) SetLogger(logger zerolog.Logger) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger = logger
	return a
}

// SetRoot sets the primitive covering the whole screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	a.mu.Unlock()
	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	a.mu.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(next Primitive) { a.SetFocus(next) })
	}
	return a
}

func (a *Application) openScreen() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		a.screen = screen
	}
	if err := a.screen.Init(); err != nil {
		a.screen = nil
		return nil, fmt.Errorf("init screen: %w", err)
	}
	a.screen.EnableMouse()
	return a.screen, nil
}

// Run opens the screen and runs the event loop until [Application.Stop] is
// called or the screen fails.
func (a *Application) Run() (err error) {
	defer a.doneOnce.Do(func() { close(a.done) })

	screen, err := a.openScreen()
	if err != nil {
		return err
	}
	// A panic would leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.poll(screen)
	}()

	a.draw()
	err = a.loop(screen)

	a.Stop()
	a.doneOnce.Do(func() { close(a.done) })
	wg.Wait()
	return err
}

// poll forwards screen events until the screen is finalized, then sends nil.
func (a *Application) poll(screen tcell.Screen) {
	for {
		event := screen.PollEvent()
		select {
		case a.events <- event:
		case <-a.done:
			return
		}
		if event == nil {
			return
		}
	}
}

func (a *Application) loop(screen tcell.Screen) error {
	for {
		select {
		case event := <-a.events:
			switch event := event.(type) {
			case nil:
				return nil
			case *tcell.EventKey:
				a.handleKey(event)
			case *tcell.EventMouse:
				a.handleMouse(event)
			case *tcell.EventResize:
				screen.Clear()
				a.draw()
			case *tcell.EventError:
				a.logger.Error().Err(event).Msg("screen error")
				return fmt.Errorf("screen: %w", event)
			}
		case u := <-a.updates:
			u.f()
			if u.redraw {
				a.draw()
			}
			if u.done != nil {
				close(u.done)
			}
		}
	}
}

func (a *Application) handleKey(event *tcell.EventKey) {
	a.mu.RLock()
	root := a.root
	a.mu.RUnlock()
	if root != nil && root.HasFocus() && a.execute(root.InputHandler(event)) {
		a.draw()
	}
}

func (a *Application) handleMouse(event *tcell.EventMouse) {
	redraw := false
	for _, action := range a.mouse.actions(event) {
		target := a.capture
		if target == nil {
			a.mu.RLock()
			target = a.root
			a.mu.RUnlock()
		}
		if target == nil {
			continue
		}
		capture, cmd := target.MouseHandler(action, event)
		a.capture = capture
		if a.execute(cmd) {
			redraw = true
		}
	}
	if redraw {
		a.draw()
	}
}

// Stop finalizes the screen, which ends Run.
func (a *Application) Stop() {
	a.mu.Lock()
	screen := a.screen
	a.screen = nil
	a.mu.Unlock()
	if screen != nil {
		screen.Fini()
	}
}

func (a *Application) draw() {
	a.mu.RLock()
	screen, root := a.screen, a.root
	a.mu.RUnlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	root.Draw(screen)
	screen.Show()
}

// QueueUpdate runs f on the event loop and waits for it. It returns right
// away once the application has stopped, without running f.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	select {
	case a.updates <- update{f: f, done: done}:
	case <-a.done:
		return a
	}
	select {
	case <-done:
	case <-a.done:
	}
	return a
}

// PostDelayed runs f on the event loop after delay, followed by a redraw.
// Tasks still pending when the application stops are dropped.
func (a *Application) PostDelayed(delay time.Duration, f func()) *Task {
	var timer *time.Timer
	task := NewTask(func() { timer.Stop() })
	timer = time.AfterFunc(delay, func() {
		if task.Canceled() {
			return
		}
		select {
		case a.updates <- update{f: func() { task.Run(f) }, redraw: true}:
		case <-a.done:
		}
	})
	return task
}

// execute carries out cmd and reports whether the screen needs a redraw.
func (a *Application) execute(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.execute(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.mu.RLock()
		changed := a.focus != c.Target
		a.mu.RUnlock()
		a.SetFocus(c.Target)
		return changed
	}
	return false
}

var _ Scheduler = &Application{}
