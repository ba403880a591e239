package hlist

import "github.com/rs/zerolog"

// RecyclerListener is notified whenever an element is moved into the scrap
// pool. The element is not displayed any more and expensive resources
// associated with it may be released.
type RecyclerListener interface {
	OnElementScrapped(element Element)
}

// RecyclerFunc adapts a function to a [RecyclerListener].
type RecyclerFunc func(element Element)

// OnElementScrapped implements [RecyclerListener].
func (f RecyclerFunc) OnElementScrapped(element Element) {
	f(element)
}

// DestroyListener may be implemented by a RecyclerListener to learn about
// elements that are dropped from the scrap pool for good.
type DestroyListener interface {
	OnElementDestroyed(element Element)
}

// recycleBin keeps the elements that were attached at the start of a layout
// pass (the active set) and the detached elements kept for reuse (the scrap
// pool).
type recycleBin struct {
	children *childList
	listener RecyclerListener
	// Called for every element dropped from the scrap pool.
	destroy func(element Element)
	logger  zerolog.Logger

	// Position of the element stored at activeViews[0].
	firstActivePosition int
	// Elements that were on screen at the start of layout, indexed by
	// position - firstActivePosition. Entries are consumed by getActiveView
	// and leftovers move to the scrap pool at the end of layout.
	activeViews []Element

	// Unordered; each element's LayoutParams records where it came from.
	scrap []Element
}

func newRecycleBin(children *childList) *recycleBin {
	return &recycleBin{
		children: children,
		logger:   zerolog.Nop(),
	}
}

// fillActiveViews snapshots the first count attached elements into the
// active set. The capacity only grows.
func (r *recycleBin) fillActiveViews(count int, firstPosition int) {
	if len(r.activeViews) < count {
		r.activeViews = make([]Element, count)
	}
	r.firstActivePosition = firstPosition

	for i := 0; i < count; i++ {
		child := r.children.at(i)
		if child == nil || child.LayoutParams() == nil {
			continue
		}
		r.activeViews[i] = child
	}
}

// getActiveView removes and returns the active element for position, or nil.
func (r *recycleBin) getActiveView(position int) Element {
	index := position - r.firstActivePosition
	if index < 0 || index >= len(r.activeViews) {
		return nil
	}
	match := r.activeViews[index]
	r.activeViews[index] = nil
	return match
}

// getScrapView returns a scrapped element, preferring one that was last bound
// to position. It returns nil when the pool is empty.
func (r *recycleBin) getScrapView(position int) Element {
	size := len(r.scrap)
	if size == 0 {
		return nil
	}
	for i, element := range r.scrap {
		if element.LayoutParams().scrappedFromPosition == position {
			r.scrap = append(r.scrap[:i], r.scrap[i+1:]...)
			return element
		}
	}
	element := r.scrap[size-1]
	r.scrap[size-1] = nil
	r.scrap = r.scrap[:size-1]
	return element
}

// addScrapView puts element into the scrap pool, tagged with position.
// Elements that were never laid out by the list are ignored.
func (r *recycleBin) addScrapView(element Element, position int) {
	params := element.LayoutParams()
	if params == nil {
		r.logger.Debug().Int("position", position).Msg("element without layout params not scrapped")
		return
	}
	params.scrappedFromPosition = position
	r.scrap = append(r.scrap, element)

	if r.listener != nil {
		r.listener.OnElementScrapped(element)
	}
}

// scrapActiveViews moves every element left in the active set to the scrap
// pool and prunes the pool.
func (r *recycleBin) scrapActiveViews() {
	for i := len(r.activeViews) - 1; i >= 0; i-- {
		victim := r.activeViews[i]
		if victim == nil {
			continue
		}
		r.activeViews[i] = nil
		victim.LayoutParams().scrappedFromPosition = r.firstActivePosition + i
		r.scrap = append(r.scrap, victim)

		if r.listener != nil {
			r.listener.OnElementScrapped(victim)
		}
	}

	r.pruneScrapViews()
}

// pruneScrapViews makes sure the scrap pool does not hold more elements than
// the active set can, which happens when an adapter does not recycle.
func (r *recycleBin) pruneScrapViews() {
	extras := len(r.scrap) - len(r.activeViews)
	if extras <= 0 {
		return
	}
	for _, element := range r.scrap[:extras] {
		r.destroyElement(element)
	}
	kept := copy(r.scrap, r.scrap[extras:])
	clear(r.scrap[kept:])
	r.scrap = r.scrap[:kept]
	r.logger.Debug().Int("pruned", extras).Int("kept", len(r.scrap)).Msg("pruned scrap pool")
}

// markChildrenDirty makes every scrapped element measure again on reuse.
func (r *recycleBin) markChildrenDirty() {
	for _, element := range r.scrap {
		element.LayoutParams().ForceLayout()
	}
}

// clear empties the scrap pool, destroying every element.
func (r *recycleBin) clear() {
	for i := len(r.scrap) - 1; i >= 0; i-- {
		r.destroyElement(r.scrap[i])
		r.scrap[i] = nil
	}
	r.scrap = r.scrap[:0]
}

func (r *recycleBin) destroyElement(element Element) {
	if r.destroy != nil {
		r.destroy(element)
	}
	if listener, ok := r.listener.(DestroyListener); ok {
		listener.OnElementDestroyed(element)
	}
}

func (r *recycleBin) scrapCount() int {
	return len(r.scrap)
}

func (r *recycleBin) capacity() int {
	return len(r.activeViews)
}
