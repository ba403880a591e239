package hlist

// track moves the attached elements by deltaX cells, recycling the ones that
// leave the viewport and filling the space that opens up. Positive values move
// the content rightwards. It returns the distance actually moved, clamped at
// either end of the data, and whether the move was accepted. A refused move sets
// shouldStopFling.
func (e *layoutEngine) track(deltaX int) (int, bool) {
	childCount := e.children.count()
	if childCount == 0 || deltaX == 0 {
		return 0, false
	}

	firstPosition := e.state.firstPosition
	lastPosition := firstPosition + childCount - 1

	switch {
	case firstPosition == 0 && deltaX > 0:
		leftGap := e.viewport.left - elementLeft(e.children.first())
		if leftGap <= 0 {
			e.state.shouldStopFling = true
			return 0, false
		}
		deltaX = min(leftGap, deltaX)
	case lastPosition == e.count()-1 && deltaX < 0:
		rightGap := e.viewport.right - elementRight(e.children.last())
		if rightGap >= 0 {
			e.state.shouldStopFling = true
			return 0, false
		}
		deltaX = max(rightGap, deltaX)
	}

	e.state.blockLayoutRequests = true
	defer func() { e.state.blockLayoutRequests = false }()

	e.removeNonVisible(deltaX)
	e.children.offsetAll(deltaX)

	// A correction pulls back content moved past the end of the data.
	if deltaX < 0 {
		e.fillRight(lastPosition+1, elementRight(e.children.last()))
		deltaX += e.correctTooLeft()
	} else {
		e.fillLeft(e.state.firstPosition-1, elementLeft(e.children.first()))
		deltaX += e.correctTooRight()
	}

	e.trimInvisible()

	e.state.firstItemLeft = elementLeft(e.children.first())
	return deltaX, true
}

// trimInvisible scraps elements a correction pass pushed out of the viewport.
// Jumps larger than the viewport can leave them behind.
func (e *layoutEngine) trimInvisible() {
	for e.children.count() > 1 && elementLeft(e.children.last()) >= e.viewport.right {
		position := e.state.firstPosition + e.children.count() - 1
		e.recycler.addScrapView(e.children.detachLast(), position)
	}
	for e.children.count() > 1 && elementRight(e.children.first()) < e.viewport.left {
		e.recycler.addScrapView(e.children.detachFirst(), e.state.firstPosition)
		e.state.firstPosition++
	}
}

// removeNonVisible scraps the elements that will be entirely outside the
// viewport once moved by deltaX. The element on the trailing side is always
// kept so the fill has an edge to continue from.
func (e *layoutEngine) removeNonVisible(deltaX int) {
	if deltaX < 0 {
		start := e.viewport.left - deltaX
		for e.children.count() > 1 && elementRight(e.children.first()) < start {
			e.recycler.addScrapView(e.children.detachFirst(), e.state.firstPosition)
			e.state.firstPosition++
		}
		return
	}

	end := e.viewport.right - deltaX
	for e.children.count() > 1 && elementLeft(e.children.last()) > end {
		position := e.state.firstPosition + e.children.count() - 1
		e.recycler.addScrapView(e.children.detachLast(), position)
	}
}
