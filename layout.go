package hlist

import (
	"math"

	"github.com/rs/zerolog"
)

// unknownLeft marks viewportState.firstItemLeft as not yet known.
const unknownLeft = math.MinInt

// viewportState is the mutable layout state of a list. It is owned by the
// layoutEngine and only changed on the goroutine driving the list.
type viewportState struct {
	// Position of the leftmost attached element.
	firstPosition int
	// Left edge of that element, or unknownLeft.
	firstItemLeft int
	// Cached adapter count.
	itemCount int
	// Set by data set notifications, consumed by the next fillList.
	dataChanged bool

	inLayout            bool
	blockLayoutRequests bool

	// Set by track when a boundary refuses movement; read by the fling.
	shouldStopFling bool
}

func newViewportState() viewportState {
	return viewportState{firstItemLeft: unknownLeft}
}

// viewport is the list's content area in list-local cells.
type viewport struct {
	// Left and right content edges; the padding is left and width-right.
	left, right int
	// Top content edge and the content height.
	top, height int
}

func (v viewport) width() int {
	return v.right - v.left
}

// layoutEngine places elements produced by an adapter next to each other,
// recycling the ones that leave the viewport.
type layoutEngine struct {
	list     *HorizontalList
	adapter  Adapter
	children *childList
	recycler *recycleBin
	state    viewportState
	viewport viewport
	logger   zerolog.Logger
}

func newLayoutEngine(list *HorizontalList) *layoutEngine {
	children := &childList{}
	return &layoutEngine{
		list:     list,
		children: children,
		recycler: newRecycleBin(children),
		state:    newViewportState(),
		logger:   zerolog.Nop(),
	}
}

func (e *layoutEngine) setLogger(logger zerolog.Logger) {
	e.logger = logger
	e.recycler.logger = logger
}

// count is the number of positions the engine may ask the adapter for.
func (e *layoutEngine) count() int {
	if e.adapter == nil {
		return 0
	}
	return min(e.state.itemCount, e.adapter.Count())
}

// layout runs one layout pass. changed reports a new viewport size, which
// forces every known element to be measured again.
func (e *layoutEngine) layout(changed bool) {
	if e.adapter == nil {
		return
	}
	if e.count() == 0 {
		e.reset()
		return
	}

	e.state.inLayout = true
	if changed {
		for i := 0; i < e.children.count(); i++ {
			if params := e.children.at(i).LayoutParams(); params != nil {
				params.ForceLayout()
			}
		}
		e.recycler.markChildrenDirty()
	}
	e.fillList()
	if first := e.children.first(); first != nil {
		e.state.firstItemLeft = elementLeft(first)
	}
	e.state.inLayout = false
}

// reset scraps every attached element and forgets the scroll position. The
// cached item count survives.
func (e *layoutEngine) reset() {
	e.scrapChildren()
	itemCount := e.state.itemCount
	e.state = newViewportState()
	e.state.itemCount = itemCount
	e.logger.Debug().Int("count", itemCount).Msg("layout reset")
	e.list.MarkDirty()
}

// clear destroys every element, attached or scrapped, and drops all state.
// Used when the adapter is replaced.
func (e *layoutEngine) clear() {
	for i := 0; i < e.children.count(); i++ {
		e.recycler.destroyElement(e.children.at(i))
	}
	e.children.detachAll()
	e.recycler.activeViews = e.recycler.activeViews[:0]
	e.recycler.clear()
	e.state = newViewportState()
	e.list.MarkDirty()
}

// scrapChildren moves every attached element to the scrap pool, tagged with
// its current position.
func (e *layoutEngine) scrapChildren() {
	for i := 0; i < e.children.count(); i++ {
		e.recycler.addScrapView(e.children.at(i), e.state.firstPosition+i)
	}
	e.children.detachAll()
}

// jumpTo makes position the first position of the next layout pass, with its
// left edge at left (or the left padding when left is unknownLeft).
func (e *layoutEngine) jumpTo(position, left int) {
	e.scrapChildren()
	e.state.firstPosition = max(position, 0)
	e.state.firstItemLeft = left
}

// fillList rebuilds the attached elements from firstPosition rightwards and
// closes any gap left at the end of the data.
func (e *layoutEngine) fillList() {
	e.state.blockLayoutRequests = true
	defer func() { e.state.blockLayoutRequests = false }()

	childCount := e.children.count()
	if e.state.dataChanged {
		for i := 0; i < childCount; i++ {
			e.recycler.addScrapView(e.children.at(i), e.state.firstPosition+i)
		}
	} else {
		e.recycler.fillActiveViews(childCount, e.state.firstPosition)
	}

	firstLeft := e.viewport.left
	if childCount != 0 {
		firstLeft = elementLeft(e.children.first())
		e.children.detachAll()
	}
	if e.state.firstItemLeft != unknownLeft {
		firstLeft = e.state.firstItemLeft
	}

	// The data may have shrunk below the remembered position.
	if count := e.count(); e.state.firstPosition >= count || e.state.firstPosition < 0 {
		e.state.firstPosition = min(max(e.state.firstPosition, 0), max(count-1, 0))
		e.state.firstItemLeft = unknownLeft
		firstLeft = e.viewport.left
	}

	e.fillRight(e.state.firstPosition, firstLeft)
	e.correctTooLeft()

	e.state.dataChanged = false
	e.recycler.scrapActiveViews()
	e.list.MarkDirty()
}

// fillRight attaches elements from startPosition upwards, the first one with
// its left edge at startEdge, until the right edge of the viewport is
// reached.
func (e *layoutEngine) fillRight(startPosition, startEdge int) {
	count := e.count()
	nextEdge := startEdge
	for position := startPosition; nextEdge < e.viewport.right && position < count; position++ {
		child := e.obtainElement(position, nextEdge, true)
		if child == nil {
			return
		}
		nextEdge = elementRight(child)
	}
}

// fillLeft attaches elements from startPosition downwards, the first one with
// its right edge at startEdge, until the left edge of the viewport is passed.
// An element ending exactly on the left edge is still attached. firstPosition
// becomes the lowest position attached.
func (e *layoutEngine) fillLeft(startPosition, startEdge int) {
	nextEdge := startEdge
	position := startPosition
	for ; nextEdge >= e.viewport.left && position >= 0; position-- {
		child := e.obtainElement(position, nextEdge, false)
		if child == nil {
			break
		}
		nextEdge = elementLeft(child)
	}
	e.state.firstPosition = position + 1
}

// correctTooLeft removes the gap between the last element and the right edge
// of the viewport when the last item is attached, shifting everything right
// and filling the space opened on the left. The first item never ends up right
// of the left padding. It returns the shift applied.
func (e *layoutEngine) correctTooLeft() int {
	childCount := e.children.count()
	if childCount == 0 || e.state.firstPosition+childCount != e.count() {
		return 0
	}

	first, last := e.children.first(), e.children.last()
	rightOffset := e.viewport.right - elementRight(last)
	if rightOffset <= 0 {
		return 0
	}
	if e.state.firstPosition == 0 {
		// Never pull the first item past the left padding.
		leftGap := e.viewport.left - elementLeft(first)
		if leftGap <= 0 {
			return 0
		}
		rightOffset = min(rightOffset, leftGap)
	}

	e.children.offsetAll(rightOffset)
	if e.state.firstPosition > 0 {
		e.fillLeft(e.state.firstPosition-1, elementLeft(first))
	}
	// Data narrower than the viewport: the backfill reached position 0 short
	// of the left padding.
	if e.state.firstPosition == 0 {
		if excess := elementLeft(e.children.first()) - e.viewport.left; excess > 0 {
			e.children.offsetAll(-excess)
			rightOffset -= excess
		}
	}
	return rightOffset
}

// correctTooRight removes the gap between the first item and the left
// padding, shifting everything left and filling the space opened on the
// right. It returns the shift applied.
func (e *layoutEngine) correctTooRight() int {
	childCount := e.children.count()
	if e.state.firstPosition != 0 || childCount == 0 {
		return 0
	}

	leftOffset := e.viewport.left - elementLeft(e.children.first())
	if leftOffset >= 0 {
		return 0
	}

	e.children.offsetAll(leftOffset)
	if next := e.state.firstPosition + childCount; next < e.count() {
		e.fillRight(next, elementRight(e.children.last()))
	}
	return leftOffset
}

// obtainElement returns an attached element for position with one edge at
// edge: the right edge when filling leftwards, the left edge otherwise.
func (e *layoutEngine) obtainElement(position, edge int, toRight bool) Element {
	child := e.recycler.getActiveView(position)
	recycled := child != nil
	if child == nil {
		scrap := e.recycler.getScrapView(position)
		if scrap != nil {
			child = e.adapter.View(position, scrap, e.list)
			if child != scrap {
				e.logger.Debug().Int("position", position).Msg("adapter did not reuse the recycled element")
				e.recycler.addScrapView(scrap, position)
			}
		} else {
			child = e.adapter.View(position, nil, e.list)
		}
	}
	if child == nil {
		e.logger.Debug().Int("position", position).Msg("adapter returned no element")
		return nil
	}

	e.setupChild(child, edge, toRight, recycled)
	return child
}

// setupChild attaches child and positions it. Elements from the active set
// keep their measured size unless a layout was requested for them.
func (e *layoutEngine) setupChild(child Element, edge int, toRight, recycled bool) {
	params := child.LayoutParams()
	if params == nil {
		params = NewLayoutParams()
		child.SetLayoutParams(params)
	}
	e.children.attach(child, !toRight)

	if recycled && !params.forceLayout {
		left := edge
		if !toRight {
			left = edge - elementWidth(child)
		}
		offsetElement(child, left-elementLeft(child))
		return
	}

	height := e.viewport.height
	if params.Height >= 0 {
		height = params.Height
	}
	width := params.Width
	if width <= 0 {
		width = child.Width(height)
	}
	width = max(width, 1)

	left := edge
	if !toRight {
		left = edge - width
	}
	child.SetRect(left, e.viewport.top, width, height)
	params.forceLayout = false
}
