package slist

import "github.com/segmentio/intrusive/container"

// Owned is a singly linked list which owns its elements: elements erased from
// the list or left in it when it is cleared are released (see
// container.Releaser). Popping elements transfers their ownership to the
// caller.
//
// The zero-value is a valid, empty list.
type Owned[T Linker[T]] struct {
	Intrusive[T]
}

// Clear releases all elements of the list, from front to back, leaving the list
// empty.
func (l *Owned[T]) Clear() {
	for {
		elem, ok := l.PopFront()
		if !ok {
			break
		}
		container.Release(elem)
	}
}

// DeleteAll is an alias of Clear.
func (l *Owned[T]) DeleteAll() { l.Clear() }

// Erase unlinks and releases the elements between the position of p and last
// (exclusive) and returns p, which refers to last afterward.
func (l *Owned[T]) Erase(p IteratorP[T], last Iterator[T]) IteratorP[T] {
	for p.prev.next != last.node {
		container.Release(p.Remove())
	}
	return p
}

// Extract removes the elements between the position of p and last (exclusive)
// and returns them as a new owning list.
func (l *Owned[T]) Extract(p IteratorP[T], last Iterator[T]) *Owned[T] {
	out := new(Owned[T])
	out.Intrusive.Append(l.Intrusive.Extract(p, last))
	return out
}

// Append moves all elements of other to the back of the list.
func (l *Owned[T]) Append(other *Owned[T]) { l.Intrusive.Append(&other.Intrusive) }

// Prepend moves all elements of other to the front of the list.
func (l *Owned[T]) Prepend(other *Owned[T]) { l.Intrusive.Prepend(&other.Intrusive) }

// MoveFrom releases the elements of the list and replaces them with the
// elements of other, leaving other empty.
func (l *Owned[T]) MoveFrom(other *Owned[T]) {
	if other != l {
		l.Clear()
		l.Intrusive.Append(&other.Intrusive)
	}
}

// RemoveIf releases the elements for which pred returns true and returns how
// many were removed.
func (l *Owned[T]) RemoveIf(pred func(T) bool) (n int) {
	for it := range l.Insertable() {
		if pred(it.Value()) {
			container.Release(it.Remove())
			n++
		}
	}
	return n
}
