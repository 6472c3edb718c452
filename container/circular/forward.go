package circular

import (
	"iter"

	"github.com/segmentio/intrusive/container"
	"github.com/segmentio/intrusive/container/slist"
)

// Forward is a singly linked ring.
//
// The zero-value is a valid, empty ring.
type Forward[T slist.Linker[T]] struct {
	tail *slist.Link[T]
}

// Empty returns true if the ring contains no elements.
func (r *Forward[T]) Empty() bool { return r.tail == nil }

// Front returns the first element of the ring, or the zero-value of T if the
// ring is empty.
func (r *Forward[T]) Front() (elem T) {
	if r.tail != nil {
		elem = r.tail.Next().Value()
	}
	return elem
}

// Back returns the last element of the ring, or the zero-value of T if the
// ring is empty.
func (r *Forward[T]) Back() (elem T) {
	if r.tail != nil {
		elem = r.tail.Value()
	}
	return elem
}

// PushFront inserts elem at the front of the ring.
func (r *Forward[T]) PushFront(elem T) {
	n := slist.LinkOf(elem)
	if r.tail == nil {
		checkUnlinked(n.Linked())
		n.Init()
		r.tail = n
	} else {
		r.tail.InsertAfter(n)
	}
}

// PushBack inserts elem at the back of the ring.
func (r *Forward[T]) PushBack(elem T) {
	r.PushFront(elem)
	r.tail = r.tail.Next()
}

// PopFront removes the first element of the ring and returns it. The boolean
// is false if the ring was empty.
func (r *Forward[T]) PopFront() (elem T, ok bool) {
	if r.tail == nil {
		return elem, false
	}
	return r.unlinkNext(r.tail), true
}

// PopBack removes the last element of the ring and returns it.
//
// Complexity: O(n)
func (r *Forward[T]) PopBack() (elem T, ok bool) {
	if r.tail == nil {
		return elem, false
	}
	return r.unlinkNext(r.prevOf(r.tail)), true
}

// Remove unlinks elem from the ring, returning false if elem was not part of
// it.
//
// Complexity: O(n)
func (r *Forward[T]) Remove(elem T) bool {
	n := elem.SListLink()
	if r.tail == nil || !n.Linked() {
		return false
	}
	p := r.prevOf(n)
	if p == nil {
		return false
	}
	r.unlinkNext(p)
	return true
}

// prevOf returns the node before n, or nil if n is not part of the ring.
func (r *Forward[T]) prevOf(n *slist.Link[T]) *slist.Link[T] {
	for p := r.tail; ; {
		if p.Next() == n {
			return p
		}
		if p = p.Next(); p == r.tail {
			return nil
		}
	}
}

func (r *Forward[T]) unlinkNext(p *slist.Link[T]) T {
	n := p.Next()
	switch {
	case n == p:
		r.tail = nil
	case n == r.tail:
		r.tail = p
	}
	return p.UnlinkNext().Value()
}

// Shift rotates the ring by one position: the front element becomes the back
// element. No element is modified.
func (r *Forward[T]) Shift() {
	if r.tail != nil {
		r.tail = r.tail.Next()
	}
}

// Len returns the number of elements in the ring.
//
// Complexity: O(n)
func (r *Forward[T]) Len() (n int) {
	for range r.All() {
		n++
	}
	return n
}

// DeleteAll releases every element of the ring, from front to back, leaving
// the ring empty. Elements are unlinked before being released.
func (r *Forward[T]) DeleteAll() {
	if r.tail == nil {
		return
	}
	tail := r.tail
	r.tail = nil
	for {
		n := tail.Next()
		last := n == tail
		container.Release(tail.UnlinkNext().Value())
		if last {
			break
		}
	}
}

// All returns a sequence of the elements of the ring, from front to back.
func (r *Forward[T]) All() iter.Seq[T] {
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

// Validate verifies that the walk from the tail comes back to it.
//
// Complexity: O(n)
func (r *Forward[T]) Validate() bool {
	if r.tail == nil {
		return true
	}
	slow, fast := r.tail, r.tail
	for {
		for i := 0; i < 2; i++ {
			if fast = fast.Next(); fast == nil {
				return false
			}
			if fast == r.tail {
				return true
			}
		}
		if slow = slow.Next(); slow == fast {
			return false
		}
	}
}
