package hlist

// Subscription identifies a data set observer registered with an adapter.
type Subscription uint64

// Adapter supplies the items of a HorizontalList and the elements that render
// them.
type Adapter interface {
	// Count returns the number of items.
	Count() int
	// Item returns the item at position, or nil if there is none.
	Item(position int) any
	// ItemID returns the id of the item at position. The value is only
	// meaningful when HasStableIDs returns true.
	ItemID(position int) int64
	// HasStableIDs reports whether an item keeps its id when the data changes.
	HasStableIDs() bool

	// View returns an element displaying the item at position. If recycled
	// is not nil it is an element that previously displayed some item and
	// may be rebound and returned instead of creating a new one.
	View(position int, recycled Element, list *HorizontalList) Element

	// Subscribe registers callbacks invoked when the data is replaced
	// (onChanged) or gone (onInvalidated).
	Subscribe(onChanged, onInvalidated func()) Subscription
	// Unsubscribe removes a registration made by Subscribe.
	Unsubscribe(sub Subscription)
}

type dataSetObserver struct {
	id            Subscription
	onChanged     func()
	onInvalidated func()
}

// DataSetObservable implements the subscription half of [Adapter]. Embed it
// in an adapter and call NotifyChanged or NotifyInvalidated from the
// goroutine that owns the list.
type DataSetObservable struct {
	last      Subscription
	observers []dataSetObserver
}

// Subscribe implements [Adapter].
func (o *DataSetObservable) Subscribe(onChanged, onInvalidated func()) Subscription {
	o.last++
	o.observers = append(o.observers, dataSetObserver{
		id:            o.last,
		onChanged:     onChanged,
		onInvalidated: onInvalidated,
	})
	return o.last
}

// Unsubscribe implements [Adapter].
func (o *DataSetObservable) Unsubscribe(sub Subscription) {
	for i, observer := range o.observers {
		if observer.id == sub {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the number of registered observers.
func (o *DataSetObservable) Observers() int {
	return len(o.observers)
}

// NotifyChanged tells every observer the data was replaced.
func (o *DataSetObservable) NotifyChanged() {
	// Observers may unsubscribe while being notified.
	observers := append([]dataSetObserver(nil), o.observers...)
	for _, observer := range observers {
		if observer.onChanged != nil {
			observer.onChanged()
		}
	}
}

// NotifyInvalidated tells every observer the data is no longer available.
func (o *DataSetObservable) NotifyInvalidated() {
	observers := append([]dataSetObserver(nil), o.observers...)
	for _, observer := range observers {
		if observer.onInvalidated != nil {
			observer.onInvalidated()
		}
	}
}

// BindFunc returns an element for item. recycled is nil or an element that
// may be rebound.
type BindFunc[T any] func(position int, item T, recycled Element) Element

// SliceAdapter is an [Adapter] backed by a slice.
type SliceAdapter[T any] struct {
	DataSetObservable

	items []T
	bind  BindFunc[T]
	id    func(item T) int64
}

// NewSliceAdapter returns an adapter over items whose elements are produced by
// bind.
func NewSliceAdapter[T any](items []T, bind BindFunc[T]) *SliceAdapter[T] {
	return &SliceAdapter[T]{
		items: items,
		bind:  bind,
	}
}

// SetItemIDFunc sets the function deriving stable ids from items. Without it
// ids are positions and are not stable.
func (a *SliceAdapter[T]) SetItemIDFunc(id func(item T) int64) *SliceAdapter[T] {
	a.id = id
	return a
}

// SetItems replaces the items and notifies observers.
func (a *SliceAdapter[T]) SetItems(items []T) *SliceAdapter[T] {
	a.items = items
	a.NotifyChanged()
	return a
}

// Append adds items to the end and notifies observers.
func (a *SliceAdapter[T]) Append(items ...T) *SliceAdapter[T] {
	a.items = append(a.items, items...)
	a.NotifyChanged()
	return a
}

// Clear drops all items and tells observers the data is gone.
func (a *SliceAdapter[T]) Clear() *SliceAdapter[T] {
	a.items = nil
	a.NotifyInvalidated()
	return a
}

// Items returns the backing slice.
func (a *SliceAdapter[T]) Items() []T {
	return a.items
}

// Count implements [Adapter].
func (a *SliceAdapter[T]) Count() int {
	return len(a.items)
}

// Item implements [Adapter].
func (a *SliceAdapter[T]) Item(position int) any {
	if position < 0 || position >= len(a.items) {
		return nil
	}
	return a.items[position]
}

// ItemID implements [Adapter].
func (a *SliceAdapter[T]) ItemID(position int) int64 {
	if a.id == nil || position < 0 || position >= len(a.items) {
		return int64(position)
	}
	return a.id(a.items[position])
}

// HasStableIDs implements [Adapter].
func (a *SliceAdapter[T]) HasStableIDs() bool {
	return a.id != nil
}

// View implements [Adapter].
func (a *SliceAdapter[T]) View(position int, recycled Element, list *HorizontalList) Element {
	return a.bind(position, a.items[position], recycled)
}

var _ Adapter = &SliceAdapter[string]{}
