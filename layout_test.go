package hlist

import (
	"math/rand"
	"testing"

	. "github.com/fulldump/biff"
)

func TestLayout_FillsViewportFromStart(t *testing.T) {
	f := newFixture(8, 100, 300)

	AssertEqual(f.list.FirstVisiblePosition(), 0)
	AssertEqual(f.positions(), []int{0, 1, 2})
	AssertEqual(f.lefts(), []int{0, 100, 200})
	AssertEqual(f.created, 3)
}

func TestLayout_ShortDataStaysAtStart(t *testing.T) {
	f := newFixture(2, 100, 300)

	AssertEqual(f.positions(), []int{0, 1})
	AssertEqual(f.lefts(), []int{0, 100})

	AssertFalse(f.list.ScrollBy(-10))
	AssertFalse(f.list.ScrollBy(10))
	AssertEqual(f.lefts(), []int{0, 100})
}

func TestLayout_EmptyAdapter(t *testing.T) {
	f := newFixture(0, 100, 300)

	AssertEqual(f.list.ChildCount(), 0)
	AssertFalse(f.list.ScrollBy(-10))
}

func TestLayout_CorrectsGapAtEnd(t *testing.T) {
	f := newFixture(8, 100, 300)

	f.list.SetFirstPosition(5)
	f.list.SetFirstItemLeft(-50)
	f.list.Layout()

	// 5, 6 and 7 would leave 50 cells empty on the right.
	AssertEqual(f.list.FirstVisiblePosition(), 4)
	AssertEqual(f.positions(), []int{4, 5, 6, 7})
	AssertEqual(f.lefts(), []int{-100, 0, 100, 200})
}

func TestLayout_ScrollToEnd(t *testing.T) {
	f := newFixture(8, 100, 300)

	f.list.ScrollToEnd()

	AssertEqual(f.positions(), []int{4, 5, 6, 7})
	AssertEqual(f.lefts(), []int{-100, 0, 100, 200})

	f.list.ScrollToStart()

	AssertEqual(f.positions(), []int{0, 1, 2})
	AssertEqual(f.lefts(), []int{0, 100, 200})
}

func TestLayout_ReusesElementsOnDataChange(t *testing.T) {
	f := newFixture(8, 100, 300)
	before := []Element{f.list.ChildAt(0), f.list.ChildAt(1), f.list.ChildAt(2)}

	f.adapter.SetItems(sequence(8))
	f.list.Layout()

	AssertEqual(f.created, 3)
	AssertEqual(f.rebound, 3)
	for i, element := range before {
		AssertTrue(f.list.ChildAt(i) == element)
	}
}

func TestLayout_DataShrinksBelowFirstPosition(t *testing.T) {
	f := newFixture(8, 100, 300)
	f.list.ScrollToEnd()

	f.adapter.SetItems(sequence(3))
	f.list.Layout()

	AssertEqual(f.list.FirstVisiblePosition(), 0)
	AssertEqual(f.positions(), []int{0, 1, 2})
	AssertEqual(f.lefts(), []int{0, 100, 200})
}

func TestLayout_ResizeMeasuresAgain(t *testing.T) {
	f := newFixture(8, 100, 300)

	f.list.SetRect(0, 0, 150, 1)
	f.list.Layout()

	AssertEqual(f.positions(), []int{0, 1})
	AssertEqual(f.lefts(), []int{0, 100})
	AssertEqual(f.list.engine.recycler.scrapCount(), 1)
}

func TestLayout_ViewportHonorsBorders(t *testing.T) {
	f := newFixture(8, 10, 32)

	f.list.SetBorders(BordersLeft | BordersRight)
	f.list.Layout()

	// The inner rect spans list-local cells [1, 31).
	AssertEqual(f.lefts(), []int{1, 11, 21})
	_, top, _, height := f.list.ChildAt(0).GetRect()
	AssertEqual(top, 0)
	AssertEqual(height, 1)
}

func TestLayout_SetAdapterDropsElements(t *testing.T) {
	f := newFixture(8, 100, 300)
	f.list.ScrollBy(-150)

	f.list.SetAdapter(nil)
	f.list.Layout()

	AssertEqual(f.list.ChildCount(), 0)
	AssertEqual(f.list.engine.recycler.scrapCount(), 0)
	AssertEqual(f.list.FirstVisiblePosition(), 0)
	AssertEqual(f.adapter.Observers(), 0)
}

func TestLayout_ContiguousWhileScrolling(t *testing.T) {
	f := newFixture(8, 100, 300)
	r := rand.New(rand.NewSource(7))

	for step := 0; step < 500; step++ {
		f.list.ScrollBy(r.Intn(801) - 400)

		positions, lefts := f.positions(), f.lefts()
		count := len(positions)
		AssertTrue(count > 0 && count <= 4)
		first := f.list.FirstVisiblePosition()
		for i := range positions {
			AssertEqual(positions[i], first+i)
			if i > 0 {
				AssertEqual(lefts[i], lefts[i-1]+100)
			}
		}

		// Every attached element touches the viewport and there are no gaps.
		AssertTrue(lefts[0]+100 >= 0)
		AssertTrue(lefts[count-1] < 300)
		AssertTrue(lefts[0] <= 0)
		AssertTrue(lefts[count-1]+100 >= 300)
		AssertEqual(f.list.engine.state.firstItemLeft, lefts[0])
	}
}

func TestLayout_ScrollToEndWithShortData(t *testing.T) {
	f := newFixture(2, 100, 300)

	f.list.ScrollToEnd()

	AssertEqual(f.positions(), []int{0, 1})
	AssertEqual(f.lefts(), []int{0, 100})
	AssertFalse(f.list.ScrollBy(10))
	AssertFalse(f.list.ScrollBy(-10))

	f.list.Layout()

	AssertEqual(f.lefts(), []int{0, 100})
}

func TestLayout_ShrinkBelowViewportWidth(t *testing.T) {
	f := newFixture(8, 100, 300)
	f.list.ScrollBy(-150)

	// Position 1 still exists, but two items no longer fill the viewport.
	f.adapter.SetItems(sequence(2))
	f.list.Layout()

	AssertEqual(f.list.FirstVisiblePosition(), 0)
	AssertEqual(f.positions(), []int{0, 1})
	AssertEqual(f.lefts(), []int{0, 100})
	AssertEqual(f.list.engine.state.firstItemLeft, 0)
	AssertFalse(f.list.ScrollBy(10))
	AssertFalse(f.list.ScrollBy(-10))
}

func TestLayout_ShrinkBelowViewportWidthWithPadding(t *testing.T) {
	f := newFixture(8, 10, 32)
	f.list.SetBorders(BordersLeft | BordersRight)
	f.list.ScrollToEnd()

	f.adapter.SetItems(sequence(2))
	f.list.Layout()

	AssertEqual(f.positions(), []int{0, 1})
	AssertEqual(f.lefts(), []int{1, 11})
}

func TestLayout_AdapterReplacesRecycledElement(t *testing.T) {
	width := 100
	created := []Element{}
	adapter := NewSliceAdapter(sequence(8), func(position int, item int, recycled Element) Element {
		element := newFixedItem(width, position)
		created = append(created, element)
		return element
	})
	list := NewHorizontalList()
	list.SetRect(0, 0, 300, 1)
	list.SetAdapter(adapter)
	list.Layout()
	list.Layout()
	before := []Element{list.ChildAt(0), list.ChildAt(1), list.ChildAt(2)}

	scrapped := []Element{}
	list.SetRecyclerListener(RecyclerFunc(func(element Element) {
		scrapped = append(scrapped, element)
	}))
	width = 50
	adapter.SetItems(sequence(8))
	list.Layout()

	// The offered element went back to the pool after being turned down.
	offered := 0
	for _, element := range scrapped {
		if element == before[0] {
			offered++
		}
	}
	AssertTrue(offered >= 2)

	AssertEqual(list.ChildCount(), 6)
	for i := 0; i < list.ChildCount(); i++ {
		child := list.ChildAt(i)
		AssertTrue(child == created[len(created)-6+i])
		AssertEqual(elementWidth(child), 50)
		AssertEqual(elementLeft(child), i*50)
	}
	AssertTrue(list.engine.recycler.scrapCount() <= list.engine.recycler.capacity())
}

func TestLayout_SetAdapterDestroysAttachedElements(t *testing.T) {
	f := newFixture(8, 100, 300)
	f.list.ScrollBy(-150)
	recorder := &destroyRecorder{}
	f.list.SetRecyclerListener(recorder)
	held := f.list.ReclaimElements()

	f.list.SetAdapter(nil)

	AssertEqual(len(held), 4)
	AssertEqual(recorder.destroyed, held)
}

func TestLayout_EndFollowsAdapterCount(t *testing.T) {
	f := newFixture(8, 100, 300)
	// The adapter shrinks without telling the list.
	f.adapter.items = sequence(4)

	AssertTrue(f.list.ScrollBy(-200))

	AssertEqual(f.positions(), []int{0, 1, 2, 3})
	AssertEqual(f.lefts(), []int{-100, 0, 100, 200})
	AssertFalse(f.list.ScrollBy(-10))
}
