package hlist

import (
	"time"

	"github.com/ayn2op/hlist/keybind"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// DefaultWheelStep is the number of cells a wheel notch or arrow key scrolls.
const DefaultWheelStep = 3

// OnScrollListener is notified after every movement of a list. deltaX is the
// distance actually moved.
type OnScrollListener interface {
	OnScroll(list *HorizontalList, deltaX, firstPosition, firstItemLeft int)
}

// ScrollFunc adapts a function to an [OnScrollListener].
type ScrollFunc func(list *HorizontalList, deltaX, firstPosition, firstItemLeft int)

// OnScroll implements [OnScrollListener].
func (f ScrollFunc) OnScroll(list *HorizontalList, deltaX, firstPosition, firstItemLeft int) {
	f(list, deltaX, firstPosition, firstItemLeft)
}

// OnItemClickListener is notified when an element is clicked or activated.
type OnItemClickListener interface {
	OnItemClick(list *HorizontalList, element Element, position int, id int64)
}

// ItemClickFunc adapts a function to an [OnItemClickListener].
type ItemClickFunc func(list *HorizontalList, element Element, position int, id int64)

// OnItemClick implements [OnItemClickListener].
func (f ItemClickFunc) OnItemClick(list *HorizontalList, element Element, position int, id int64) {
	f(list, element, position, id)
}

// SavedState is the scroll position of a list.
type SavedState struct {
	FirstPosition int
	FirstItemLeft int
}

// HorizontalList displays the elements of an [Adapter] side by side and
// scrolls them horizontally. Only the elements intersecting the list's inner
// rect exist at any time; elements scrolled out are kept for reuse and handed
// back to the adapter for other positions.
//
// Element rects are list-local: x is relative to the list's left edge. Drags
// move the content, a quick release flings it when a [Scheduler] is set, and
// clicks are reported to the [OnItemClickListener].
type HorizontalList struct {
	*Box

	adapter      Adapter
	subscription Subscription

	engine  *layoutEngine
	flinger *flinger
	gesture *gestureDetector

	scheduler Scheduler
	now       func() time.Time

	scroll    OnScrollListener
	itemClick OnItemClickListener

	keyMap    KeyMap
	wheelStep int

	needsLayout bool
	// State to restore once an invalidated adapter has data again.
	pendingState *SavedState

	logger zerolog.Logger
}

// NewHorizontalList returns an empty list.
func NewHorizontalList() *HorizontalList {
	l := &HorizontalList{
		Box:         NewBox(),
		now:         time.Now,
		keyMap:      DefaultKeyMap(),
		wheelStep:   DefaultWheelStep,
		needsLayout: true,
		logger:      zerolog.Nop(),
	}
	l.engine = newLayoutEngine(l)
	l.engine.children.onAttach = func(element Element) {
		bindDirtyParent(element, l.Box)
	}
	l.engine.children.onDetach = func(element Element) {
		unbindDirtyParent(element, l.Box)
	}
	l.flinger = newFlinger(l, func() time.Time { return l.now() })
	l.gesture = newGestureDetector(l)
	return l
}

// SetAdapter replaces the adapter. Every element of the previous adapter is
// dropped and the list scrolls back to the start.
func (l *HorizontalList) SetAdapter(adapter Adapter) *HorizontalList {
	if l.adapter != nil {
		l.adapter.Unsubscribe(l.subscription)
	}
	l.flinger.stop()
	l.engine.clear()
	l.adapter = adapter
	l.engine.adapter = adapter
	l.pendingState = nil
	if adapter != nil {
		l.subscription = adapter.Subscribe(l.onDataChanged, l.onDataInvalidated)
		l.engine.state.itemCount = adapter.Count()
	}
	l.requestLayout()
	return l
}

// Adapter returns the current adapter.
func (l *HorizontalList) Adapter() Adapter {
	return l.adapter
}

// SetScheduler sets the scheduler fling frames are posted to. Without one,
// releases never fling.
func (l *HorizontalList) SetScheduler(scheduler Scheduler) *HorizontalList {
	l.flinger.stop()
	l.scheduler = scheduler
	return l
}

// SetLogger sets the logger used for debug events.
func (l *HorizontalList) SetLogger(logger zerolog.Logger) *HorizontalList {
	l.logger = logger
	l.engine.setLogger(logger)
	l.flinger.logger = logger
	return l
}

// SetOnScrollListener sets the listener notified after each movement.
func (l *HorizontalList) SetOnScrollListener(listener OnScrollListener) *HorizontalList {
	l.scroll = listener
	return l
}

// SetOnItemClickListener sets the listener notified of clicked elements.
func (l *HorizontalList) SetOnItemClickListener(listener OnItemClickListener) *HorizontalList {
	l.itemClick = listener
	return l
}

// SetRecyclerListener sets the listener notified when elements are scrapped.
// If it also implements [DestroyListener], it learns about elements dropped
// from the scrap pool.
func (l *HorizontalList) SetRecyclerListener(listener RecyclerListener) *HorizontalList {
	l.engine.recycler.listener = listener
	return l
}

// SetKeyMap replaces the key bindings.
func (l *HorizontalList) SetKeyMap(keyMap KeyMap) *HorizontalList {
	l.keyMap = keyMap
	return l
}

// KeyMap returns the key bindings.
func (l *HorizontalList) KeyMap() KeyMap {
	return l.keyMap
}

// SetWheelStep sets the number of cells scrolled per wheel notch or arrow key.
func (l *HorizontalList) SetWheelStep(step int) *HorizontalList {
	l.wheelStep = max(step, 1)
	return l
}

// SetFlingFriction sets the friction applied to flings. Larger values stop
// flings sooner.
func (l *HorizontalList) SetFlingFriction(friction float64) *HorizontalList {
	if friction > 0 {
		l.flinger.scroller.setFriction(friction)
	}
	return l
}

// SetCellsPerInch sets the cell density used to scale fling physics.
func (l *HorizontalList) SetCellsPerInch(cellsPerInch float64) *HorizontalList {
	if cellsPerInch > 0 {
		l.flinger.scroller.setCellsPerInch(cellsPerInch)
	}
	return l
}

// SetMinFlingVelocity sets the slowest release, in cells per second, that
// starts a fling.
func (l *HorizontalList) SetMinFlingVelocity(velocity float64) *HorizontalList {
	l.gesture.minFlingVelocity = max(velocity, 0)
	return l
}

// SetMaxFlingVelocity caps release velocities, in cells per second.
func (l *HorizontalList) SetMaxFlingVelocity(velocity float64) *HorizontalList {
	if velocity > 0 {
		l.gesture.maxFlingVelocity = velocity
	}
	return l
}

// SetFirstPosition makes position the first element of the next layout.
func (l *HorizontalList) SetFirstPosition(position int) *HorizontalList {
	l.engine.jumpTo(position, l.engine.state.firstItemLeft)
	l.requestLayout()
	return l
}

// SetFirstItemLeft sets the list-local left edge of the first element for the
// next layout.
func (l *HorizontalList) SetFirstItemLeft(left int) *HorizontalList {
	l.engine.state.firstItemLeft = left
	l.requestLayout()
	return l
}

// ScrollToStart shows the first item at the left edge.
func (l *HorizontalList) ScrollToStart() *HorizontalList {
	l.flinger.stop()
	l.engine.jumpTo(0, unknownLeft)
	l.Layout()
	return l
}

// ScrollToEnd shows the last item at the right edge.
func (l *HorizontalList) ScrollToEnd() *HorizontalList {
	l.flinger.stop()
	l.updateViewport()
	l.engine.jumpTo(max(l.engine.count()-1, 0), l.engine.viewport.left)
	l.Layout()
	return l
}

// FirstVisiblePosition returns the position of the leftmost attached element.
func (l *HorizontalList) FirstVisiblePosition() int {
	return l.engine.state.firstPosition
}

// ChildCount returns the number of attached elements.
func (l *HorizontalList) ChildCount() int {
	return l.engine.children.count()
}

// ChildAt returns the attached element at index, or nil.
func (l *HorizontalList) ChildAt(index int) Element {
	return l.engine.children.at(index)
}

// ItemCount returns the number of items the list knows about.
func (l *HorizontalList) ItemCount() int {
	return l.engine.state.itemCount
}

// ReclaimElements returns every element held by the list, attached first and
// then scrapped.
func (l *HorizontalList) ReclaimElements() []Element {
	elements := make([]Element, 0, l.engine.children.count()+l.engine.recycler.scrapCount())
	elements = append(elements, l.engine.children.elements...)
	return append(elements, l.engine.recycler.scrap...)
}

// Flinging reports whether a fling is in progress.
func (l *HorizontalList) Flinging() bool {
	return l.flinger.running()
}

// StopFling ends a fling in progress.
func (l *HorizontalList) StopFling() {
	l.flinger.stop()
}

// Fling starts a fling with the given velocity in cells per second. Positive
// velocities move the content leftwards.
func (l *HorizontalList) Fling(velocity int) {
	l.flinger.start(velocity)
}

// ScrollBy moves the content by deltaX cells, rightwards when positive. It
// reports whether the content moved.
func (l *HorizontalList) ScrollBy(deltaX int) bool {
	l.layoutIfNeeded()
	return l.trackMotionScroll(deltaX, true)
}

// ScrollLengths returns the item count and the number of attached elements.
func (l *HorizontalList) ScrollLengths() ScrollLengths {
	return ScrollLengths{
		ContentLen:  l.engine.state.itemCount,
		ViewportLen: l.engine.children.count(),
	}
}

// ScrollOffset returns the first attached position.
func (l *HorizontalList) ScrollOffset() int {
	return l.engine.state.firstPosition
}

// SaveState returns the current scroll position.
func (l *HorizontalList) SaveState() SavedState {
	left := l.engine.state.firstItemLeft
	if first := l.engine.children.first(); first != nil {
		left = elementLeft(first)
	}
	if left == unknownLeft {
		left = l.engine.viewport.left
	}
	return SavedState{
		FirstPosition: l.engine.state.firstPosition,
		FirstItemLeft: left,
	}
}

// RestoreState scrolls back to a saved position. Positions only identify the
// same items when ids are stable, so the state is applied only if the adapter
// has stable ids and items.
func (l *HorizontalList) RestoreState(state SavedState) bool {
	if l.adapter == nil || !l.adapter.HasStableIDs() || l.adapter.Count() == 0 {
		return false
	}
	l.logger.Debug().Int("position", state.FirstPosition).Int("left", state.FirstItemLeft).Msg("restoring scroll position")
	l.engine.jumpTo(state.FirstPosition, state.FirstItemLeft)
	l.requestLayout()
	return true
}

func (l *HorizontalList) onDataChanged() {
	l.engine.state.dataChanged = true
	l.engine.state.itemCount = l.adapter.Count()
	l.logger.Debug().Int("count", l.engine.state.itemCount).Msg("data changed")

	if l.pendingState != nil && l.adapter.HasStableIDs() && l.engine.state.itemCount > 0 {
		state := *l.pendingState
		l.pendingState = nil
		l.RestoreState(state)
	}
	l.requestLayout()
}

func (l *HorizontalList) onDataInvalidated() {
	l.engine.state.dataChanged = true
	if l.adapter.HasStableIDs() {
		state := l.SaveState()
		l.pendingState = &state
	}
	l.engine.state.itemCount = 0
	l.logger.Debug().Bool("saved", l.pendingState != nil).Msg("data invalidated")
	l.requestLayout()
}

func (l *HorizontalList) requestLayout() {
	if l.engine.state.inLayout || l.engine.state.blockLayoutRequests {
		return
	}
	l.needsLayout = true
	l.MarkDirty()
}

// updateViewport derives the list-local content area from the inner rect and
// reports whether it changed.
func (l *HorizontalList) updateViewport() bool {
	x, y, _, _ := l.GetRect()
	innerX, innerY, innerWidth, innerHeight := l.GetInnerRect()
	vp := viewport{
		left:   innerX - x,
		right:  innerX - x + innerWidth,
		top:    innerY - y,
		height: innerHeight,
	}
	old := l.engine.viewport
	changed := vp != old
	// Keep the content where it was relative to the new left padding.
	if old.width() > 0 && vp.left != old.left && l.engine.state.firstItemLeft != unknownLeft {
		l.engine.state.firstItemLeft += vp.left - old.left
	}
	l.engine.viewport = vp
	return changed
}

// Layout lays the elements out for the current rect.
func (l *HorizontalList) Layout() {
	changed := l.updateViewport()
	l.needsLayout = false
	if l.engine.viewport.width() <= 0 {
		return
	}
	l.engine.layout(changed)
}

func (l *HorizontalList) layoutIfNeeded() {
	if l.updateViewport() || l.needsLayout {
		l.Layout()
	}
}

// trackMotionScroll moves the content and notifies the scroll listener when
// notify is set.
func (l *HorizontalList) trackMotionScroll(deltaX int, notify bool) bool {
	applied, moved := l.engine.track(deltaX)
	if !moved {
		return false
	}
	if notify && l.scroll != nil {
		l.scroll.OnScroll(l, applied, l.engine.state.firstPosition, l.engine.state.firstItemLeft)
	}
	l.MarkDirty()
	return true
}

// elementAt returns the attached element under the screen coordinate and its
// index, or nil.
func (l *HorizontalList) elementAt(x, y int) (int, Element) {
	if !l.InInnerRect(x, y) {
		return -1, nil
	}
	rectX, rectY, _, _ := l.GetRect()
	x, y = x-rectX, y-rectY
	for i, element := range l.engine.children.elements {
		left, top, width, height := element.GetRect()
		if x >= left && x < left+width && y >= top && y < top+height {
			return i, element
		}
	}
	return -1, nil
}

// Draw draws the list and its attached elements.
func (l *HorizontalList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	l.layoutIfNeeded()

	x, y, _, _ := l.GetRect()
	innerX, innerY, innerWidth, innerHeight := l.GetInnerRect()
	if innerWidth <= 0 || innerHeight <= 0 {
		return
	}
	clipped := newClippedScreen(screen, x, y, innerX, innerY, innerWidth, innerHeight)
	for _, element := range l.engine.children.elements {
		element.Draw(clipped)
	}
	l.MarkClean()
}

// InputHandler handles the list's key bindings.
func (l *HorizontalList) InputHandler(event *tcell.EventKey) Command {
	l.layoutIfNeeded()
	keys := l.keyMap
	page := max(l.engine.viewport.width()-1, 1)

	var moved bool
	switch {
	case keybind.Matches(event, keys.ScrollLeft):
		l.flinger.stop()
		moved = l.trackMotionScroll(l.wheelStep, true)
	case keybind.Matches(event, keys.ScrollRight):
		l.flinger.stop()
		moved = l.trackMotionScroll(-l.wheelStep, true)
	case keybind.Matches(event, keys.PageLeft):
		l.flinger.stop()
		moved = l.trackMotionScroll(page, true)
	case keybind.Matches(event, keys.PageRight):
		l.flinger.stop()
		moved = l.trackMotionScroll(-page, true)
	case keybind.Matches(event, keys.Start):
		l.ScrollToStart()
		moved = true
	case keybind.Matches(event, keys.End):
		l.ScrollToEnd()
		moved = true
	case keybind.Matches(event, keys.Activate):
		l.activate()
		return ConsumeEventCommand{}
	default:
		return nil
	}

	if moved {
		return RedrawCommand{}
	}
	return ConsumeEventCommand{}
}

// activate reports the first fully visible element to the item click
// listener.
func (l *HorizontalList) activate() {
	if l.itemClick == nil || l.adapter == nil {
		return
	}
	for i, element := range l.engine.children.elements {
		if elementLeft(element) >= l.engine.viewport.left && elementRight(element) <= l.engine.viewport.right {
			position := l.engine.state.firstPosition + i
			l.itemClick.OnItemClick(l, element, position, l.adapter.ItemID(position))
			return
		}
	}
}

// MouseHandler handles drags, flings, wheel scrolling and clicks.
func (l *HorizontalList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	l.layoutIfNeeded()
	return l.gesture.handle(action, event)
}

var _ Primitive = &HorizontalList{}

// clippedScreen draws list-local element coordinates onto the list's inner
// rect.
type clippedScreen struct {
	tcell.Screen
	// Translation from list-local to screen coordinates.
	dx, dy int
	// Clip rect in screen coordinates.
	x, y, width, height int
}

func newClippedScreen(screen tcell.Screen, dx, dy, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		dx:     dx,
		dy:     dy,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	x, y = x+s.dx, y+s.dy
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return s.Screen.GetContent(x+s.dx, y+s.dy)
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	x, y = x+s.dx, y+s.dy
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}
