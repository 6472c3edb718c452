package list

import (
	"iter"

	"github.com/segmentio/intrusive/container"
	"github.com/segmentio/intrusive/internal/contract"
)

// Element is the node allocated by List to hold a value.
type Element[T any] struct {
	Link[*Element[T]]
	// The value stored with this element.
	Value T
}

// Next returns the element following e, or nil if e is the last element or is
// not part of a list.
func (e *Element[T]) Next() *Element[T] {
	if e.next == nil {
		return nil
	}
	return e.next.owner
}

// Prev returns the element preceding e, or nil if e is the first element or is
// not part of a list.
func (e *Element[T]) Prev() *Element[T] {
	if e.prev == nil {
		return nil
	}
	return e.prev.owner
}

// List is a doubly-linked list of values of type T, each held by an Element
// allocated by the list. It supports the operations of stacks, queues and
// deques.
//
// The list owns its values: values which implement container.Releaser are
// released when the list is cleared or when RemoveIf drops them. Values
// returned by the Pop and Remove methods are handed to the caller.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	impl Intrusive[*Element[T]]
}

// Len returns the number of values in the list.
//
// Complexity: O(n)
func (l *List[T]) Len() int { return l.impl.Len() }

// Empty returns true if the list contains no values.
func (l *List[T]) Empty() bool { return l.impl.Empty() }

// Front returns the first element of the list, or nil if the list is empty.
func (l *List[T]) Front() *Element[T] { return l.impl.Front() }

// Back returns the last element of the list, or nil if the list is empty.
func (l *List[T]) Back() *Element[T] { return l.impl.Back() }

// PushFront inserts a new element holding value at the front of the list and
// returns it.
func (l *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.PushFront(e)
	return e
}

// PushBack inserts a new element holding value at the back of the list and
// returns it.
func (l *List[T]) PushBack(value T) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.PushBack(e)
	return e
}

// InsertBefore inserts a new element holding value right before mark and
// returns it.
func (l *List[T]) InsertBefore(value T, mark *Element[T]) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.InsertBefore(At(mark), e)
	return e
}

// InsertAfter inserts a new element holding value right after mark and returns
// it.
func (l *List[T]) InsertAfter(value T, mark *Element[T]) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.InsertAfter(At(mark), e)
	return e
}

// PopFront removes the first element of the list and returns its value. The
// boolean is false if the list was empty.
func (l *List[T]) PopFront() (value T, ok bool) {
	if e, ok := l.impl.PopFront(); ok {
		return take(e), true
	}
	return value, false
}

// PopBack removes the last element of the list and returns its value. The
// boolean is false if the list was empty.
func (l *List[T]) PopBack() (value T, ok bool) {
	if e, ok := l.impl.PopBack(); ok {
		return take(e), true
	}
	return value, false
}

// Remove removes e from the list and returns its value. Elements are only
// created by the list so e is unlinked directly, without searching the list.
//
// Complexity: O(1)
func (l *List[T]) Remove(e *Element[T]) T {
	contract.Check(e.Linked(), "list: removing an element which is not part of a list")
	e.Unlink()
	return take(e)
}

// MoveToFront moves e at the front of the list.
func (l *List[T]) MoveToFront(e *Element[T]) {
	if l.impl.Front() != e {
		e.Unlink()
		l.impl.PushFront(e)
	}
}

// MoveToBack moves e at the back of the list.
func (l *List[T]) MoveToBack(e *Element[T]) {
	if l.impl.Back() != e {
		e.Unlink()
		l.impl.PushBack(e)
	}
}

// Clear removes all values from the list, releasing them.
func (l *List[T]) Clear() {
	for {
		e, ok := l.impl.PopBack()
		if !ok {
			break
		}
		container.Release(take(e))
	}
}

// Append moves all values of other to the back of the list, leaving other
// empty.
func (l *List[T]) Append(other *List[T]) { l.impl.Append(&other.impl) }

// Prepend moves all values of other to the front of the list, leaving other
// empty.
func (l *List[T]) Prepend(other *List[T]) { l.impl.Prepend(&other.impl) }

// MoveFrom releases the values of the list and replaces them with the values of
// other, leaving other empty.
func (l *List[T]) MoveFrom(other *List[T]) {
	if other != l {
		l.Clear()
		l.impl.Append(&other.impl)
	}
}

// Sort sorts the values of the list according to cmp. The sort is stable.
func (l *List[T]) Sort(cmp func(T, T) int) {
	Sort(l.impl.Begin(), l.impl.End(), func(a, b *Element[T]) int {
		return cmp(a.Value, b.Value)
	})
}

// Reverse reverses the order of the values of the list.
func (l *List[T]) Reverse() { Reverse(l.impl.Begin(), l.impl.End()) }

// RemoveIf removes and releases the values for which pred returns true, and
// returns how many were removed.
func (l *List[T]) RemoveIf(pred func(T) bool) (n int) {
	end := l.impl.End()
	x := Remove(l.impl.Begin(), end, func(e *Element[T]) bool { return pred(e.Value) })
	for x != end {
		e := x.Value()
		x = x.Next()
		e.Unlink()
		container.Release(take(e))
		n++
	}
	return n
}

// All returns a sequence of the values of the list, from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range l.impl.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the values of the list, from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range l.impl.Backward() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Validate verifies the consistency of the list, see Intrusive.Validate.
func (l *List[T]) Validate() bool { return l.impl.Validate() }

// take moves the value out of the unlinked element e, so the element does not
// retain it.
func take[T any](e *Element[T]) (value T) {
	value, e.Value = e.Value, value
	return value
}
