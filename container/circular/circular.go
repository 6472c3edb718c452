// Package circular implements sentinel-less rings of intrusive elements.
//
// A ring is represented by a single pointer to its last element, the tail. The
// front of the ring is the element following the tail, which makes both ends
// reachable in constant time without a sentinel node. The ring is empty when
// the tail is nil.
//
// List links its elements with list.Link and is bidirectional, Forward links
// them with slist.Link and only moves forward: popping from its back and
// removing elements are linear time, and it cannot be reversed.
//
// Rings do not own their elements, except for DeleteAll which releases all of
// them (see container.Releaser). Rings must not be copied after first use and
// are not safe for concurrent use.
package circular

import (
	"iter"

	"github.com/segmentio/intrusive/container"
	"github.com/segmentio/intrusive/container/list"
	"github.com/segmentio/intrusive/internal/contract"
)

// List is a doubly linked ring.
//
// The zero-value is a valid, empty ring.
type List[T list.Linker[T]] struct {
	tail *list.Link[T]
}

// Empty returns true if the ring contains no elements.
func (r *List[T]) Empty() bool { return r.tail == nil }

// Front returns the first element of the ring, or the zero-value of T if the
// ring is empty.
func (r *List[T]) Front() (elem T) {
	if r.tail != nil {
		elem = r.tail.Next().Value()
	}
	return elem
}

// Back returns the last element of the ring, or the zero-value of T if the
// ring is empty.
func (r *List[T]) Back() (elem T) {
	if r.tail != nil {
		elem = r.tail.Value()
	}
	return elem
}

// PushFront inserts elem at the front of the ring.
func (r *List[T]) PushFront(elem T) {
	n := list.LinkOf(elem)
	if r.tail == nil {
		checkUnlinked(n.Linked())
		n.Init()
		r.tail = n
	} else {
		r.tail.InsertAfter(n)
	}
}

// PushBack inserts elem at the back of the ring.
func (r *List[T]) PushBack(elem T) {
	r.PushFront(elem)
	r.tail = r.tail.Next()
}

// PopFront removes the first element of the ring and returns it. The boolean
// is false if the ring was empty.
func (r *List[T]) PopFront() (elem T, ok bool) {
	if r.tail == nil {
		return elem, false
	}
	return r.unlink(r.tail.Next()), true
}

// PopBack removes the last element of the ring and returns it. The tail moves
// to its predecessor.
func (r *List[T]) PopBack() (elem T, ok bool) {
	if r.tail == nil {
		return elem, false
	}
	return r.unlink(r.tail), true
}

// Remove unlinks elem, which must be part of the ring.
func (r *List[T]) Remove(elem T) {
	n := elem.ListLink()
	if contract.Enabled() {
		contract.Check(r.contains(n), "circular: removing an element which is not part of the ring")
	}
	r.unlink(n)
}

func (r *List[T]) contains(n *list.Link[T]) bool {
	if r.tail != nil {
		for x := r.tail.Next(); ; x = x.Next() {
			if x == n {
				return true
			}
			if x == r.tail {
				break
			}
		}
	}
	return false
}

func (r *List[T]) unlink(n *list.Link[T]) T {
	switch {
	case n.Next() == n:
		r.tail = nil
	case n == r.tail:
		r.tail = n.Prev()
	}
	return n.Unlink().Value()
}

// Shift rotates the ring by one position: the front element becomes the back
// element. No element is modified.
func (r *List[T]) Shift() {
	if r.tail != nil {
		r.tail = r.tail.Next()
	}
}

// Len returns the number of elements in the ring.
//
// Complexity: O(n)
func (r *List[T]) Len() (n int) {
	for range r.All() {
		n++
	}
	return n
}

// Reverse reverses the order of the elements of the ring: the front element
// becomes the back element and vice versa.
//
// Complexity: O(n)
func (r *List[T]) Reverse() {
	if r.tail == nil {
		return
	}
	front := r.tail.Next()
	a, b := r.tail, front
	for {
		c := b.Next()
		b.Join(a)
		if b == r.tail {
			break
		}
		a, b = b, c
	}
	r.tail = front
}

// DeleteAll releases every element of the ring, from front to back, leaving
// the ring empty. Elements are unlinked before being released.
func (r *List[T]) DeleteAll() {
	if r.tail == nil {
		return
	}
	start := r.tail.Next()
	r.tail = nil
	for x := start; ; {
		next := x.Next()
		container.Release(x.Unlink().Value())
		if next == start || next == x {
			break
		}
		x = next
	}
}

// All returns a sequence of the elements of the ring, from front to back. The
// element being visited may be removed from the ring during the iteration.
func (r *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.tail == nil {
			return
		}
		for x := r.tail.Next(); ; {
			next, last := x.Next(), x == r.tail
			if !yield(x.Value()) || last || r.tail == nil {
				return
			}
			x = next
		}
	}
}

// Backward returns a sequence of the elements of the ring, from back to front.
// The element being visited may be removed from the ring during the iteration.
func (r *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.tail == nil {
			return
		}
		front := r.tail.Next()
		for x := r.tail; ; {
			prev, first := x.Prev(), x == front
			if !yield(x.Value()) || first || r.tail == nil {
				return
			}
			x = prev
		}
	}
}

// Validate verifies the ring invariants: every link of the ring is consistent
// with its neighbors and the walk from the tail comes back to it.
//
// Complexity: O(n)
func (r *List[T]) Validate() bool {
	if r.tail == nil {
		return true
	}
	x := r.tail
	for {
		next := x.Next()
		if next == nil || next.Prev() != x {
			return false
		}
		if x = next; x == r.tail {
			return true
		}
	}
}

func checkUnlinked(linked bool) {
	contract.Check(!linked, "circular: inserting a node which is already linked")
}
