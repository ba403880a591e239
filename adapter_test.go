package hlist

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestDataSetObservable(t *testing.T) {
	o := &DataSetObservable{}
	changed, invalidated := 0, 0
	first := o.Subscribe(func() { changed++ }, func() { invalidated++ })
	o.Subscribe(func() { changed++ }, nil)

	o.NotifyChanged()
	o.NotifyInvalidated()

	AssertEqual(changed, 2)
	AssertEqual(invalidated, 1)

	o.Unsubscribe(first)
	o.NotifyChanged()

	AssertEqual(changed, 3)
	AssertEqual(o.Observers(), 1)
}

func TestDataSetObservable_UnsubscribeWhileNotifying(t *testing.T) {
	o := &DataSetObservable{}
	calls := 0
	var sub Subscription
	sub = o.Subscribe(func() {
		calls++
		o.Unsubscribe(sub)
	}, nil)
	o.Subscribe(func() { calls++ }, nil)

	o.NotifyChanged()

	AssertEqual(calls, 2)
	AssertEqual(o.Observers(), 1)
}

func TestSliceAdapter(t *testing.T) {
	a := NewSliceAdapter([]string{"a", "b"}, func(position int, item string, recycled Element) Element {
		return NewTextItem(item)
	})

	AssertEqual(a.Count(), 2)
	AssertEqual(a.Item(1), "b")
	AssertNil(a.Item(2))
	AssertNil(a.Item(-1))
	AssertFalse(a.HasStableIDs())
	AssertEqual(a.ItemID(1), int64(1))

	a.SetItemIDFunc(func(item string) int64 { return int64(item[0]) })

	AssertTrue(a.HasStableIDs())
	AssertEqual(a.ItemID(0), int64('a'))
	AssertEqual(a.View(1, nil, nil).(*TextItem).GetLabel(), "b")
}

func TestSliceAdapter_Notifications(t *testing.T) {
	a := NewSliceAdapter([]int{}, func(position int, item int, recycled Element) Element {
		return newFixedItem(1, position)
	})
	changed, invalidated := 0, 0
	a.Subscribe(func() { changed++ }, func() { invalidated++ })

	a.Append(1, 2)
	a.SetItems([]int{3})
	a.Clear()

	AssertEqual(changed, 2)
	AssertEqual(invalidated, 1)
	AssertEqual(a.Count(), 0)
	AssertEqual(len(a.Items()), 0)
}
