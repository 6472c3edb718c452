package slist

import (
	"iter"

	"github.com/segmentio/intrusive/container"
)

// Element is the node allocated by List and TailList to hold a value.
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

// List is a singly linked list of values of type T, each held by an Element
// allocated by the list. Pushing at the front is constant time, pushing at the
// back is linear; TailList makes both constant time.
//
// Values which implement container.Releaser are released when the list is
// cleared.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	impl Intrusive[*Element[T]]
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int { return l.impl.Len() }

// Empty returns true if the list contains no values.
func (l *List[T]) Empty() bool { return l.impl.Empty() }

// Front returns the first element of the list, or nil if the list is empty.
func (l *List[T]) Front() *Element[T] { return l.impl.Front() }

// Back returns the last element of the list, or nil if the list is empty.
//
// Complexity: O(n)
func (l *List[T]) Back() *Element[T] { return l.impl.Back() }

// PushFront inserts a new element holding value at the front of the list.
func (l *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.PushFront(e)
	return e
}

// PushBack inserts a new element holding value at the back of the list.
//
// Complexity: O(n)
func (l *List[T]) PushBack(value T) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.PushBack(e)
	return e
}

// InsertAfter inserts a new element holding value right after mark.
func (l *List[T]) InsertAfter(value T, mark *Element[T]) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.InsertAfter(At(mark), e)
	return e
}

// PopFront removes the first element of the list and returns its value.
func (l *List[T]) PopFront() (value T, ok bool) {
	if e, ok := l.impl.PopFront(); ok {
		return take(e), true
	}
	return value, false
}

// Clear removes all values from the list, releasing them.
func (l *List[T]) Clear() { clearValues(&l.impl.head) }

// Sort sorts the values of the list according to cmp. The sort is stable.
func (l *List[T]) Sort(cmp func(T, T) int) {
	Sort(l.impl.BeginP(), l.impl.End(), byValue(cmp))
}

// Reverse reverses the order of the values of the list.
func (l *List[T]) Reverse() { Reverse(l.impl.BeginP(), l.impl.End()) }

// All returns a sequence of the values of the list, from front to back.
func (l *List[T]) All() iter.Seq[T] { return values(l.impl.All()) }

// TailList is a singly linked list of values of type T which maintains a
// pointer to its last element, making pushes at both ends constant time.
//
// The zero-value is a valid, empty list.
type TailList[T any] struct {
	impl IntrusiveTail[*Element[T]]
}

// Len returns the number of values in the list.
func (l *TailList[T]) Len() int { return l.impl.Len() }

// Empty returns true if the list contains no values.
func (l *TailList[T]) Empty() bool { return l.impl.Empty() }

// Front returns the first element of the list, or nil if the list is empty.
func (l *TailList[T]) Front() *Element[T] { return l.impl.Front() }

// Back returns the last element of the list, or nil if the list is empty.
func (l *TailList[T]) Back() *Element[T] { return l.impl.Back() }

// PushFront inserts a new element holding value at the front of the list.
func (l *TailList[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.PushFront(e)
	return e
}

// PushBack inserts a new element holding value at the back of the list.
func (l *TailList[T]) PushBack(value T) *Element[T] {
	e := &Element[T]{Value: value}
	l.impl.PushBack(e)
	return e
}

// PopFront removes the first element of the list and returns its value.
func (l *TailList[T]) PopFront() (value T, ok bool) {
	if e, ok := l.impl.PopFront(); ok {
		return take(e), true
	}
	return value, false
}

// Append moves all values of other to the back of the list, leaving other
// empty.
func (l *TailList[T]) Append(other *TailList[T]) { l.impl.Append(&other.impl) }

// Clear removes all values from the list, releasing them.
func (l *TailList[T]) Clear() {
	clearValues(&l.impl.head)
	l.impl.reset()
}

// Sort sorts the values of the list according to cmp. The sort is stable.
func (l *TailList[T]) Sort(cmp func(T, T) int) { l.impl.Sort(byValue(cmp)) }

// Reverse reverses the order of the values of the list.
func (l *TailList[T]) Reverse() { l.impl.Reverse() }

// All returns a sequence of the values of the list, from front to back.
func (l *TailList[T]) All() iter.Seq[T] { return values(l.impl.All()) }

// Validate verifies the consistency of the list, see IntrusiveTail.Validate.
func (l *TailList[T]) Validate() bool { return l.impl.Validate() }

func clearValues[T any](head *Link[*Element[T]]) {
	if head.next == nil {
		return
	}
	for head.next != head {
		container.Release(take(head.UnlinkNext().owner))
	}
}

func byValue[T any](cmp func(T, T) int) func(a, b *Element[T]) int {
	return func(a, b *Element[T]) int { return cmp(a.Value, b.Value) }
}

func values[T any](seq iter.Seq[*Element[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range seq {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func take[T any](e *Element[T]) (value T) {
	value, e.Value = e.Value, value
	return value
}
