package list

import "github.com/segmentio/intrusive/container"

// Owned is an intrusive list which owns its elements: elements erased from the
// list or left in it when it is cleared are released (see container.Releaser).
//
// Popping elements transfers their ownership to the caller, they are not
// released.
//
// An element must not be part of more than one owning list at a time.
//
// The zero-value is a valid, empty list.
type Owned[T Linker[T]] struct {
	Intrusive[T]
}

// Clear releases all elements of the list, from back to front, leaving the list
// empty.
func (l *Owned[T]) Clear() {
	for {
		elem, ok := l.PopBack()
		if !ok {
			break
		}
		container.Release(elem)
	}
}

// DeleteAll releases all elements of the list, from front to back, leaving the
// list empty.
func (l *Owned[T]) DeleteAll() {
	l.Del(l.Begin(), l.End())
}

// Del unlinks and releases the elements of the half-open range [first, last)
// and returns last.
func (l *Owned[T]) Del(first, last Iterator[T]) Iterator[T] {
	for x := first.node; x != last.node; {
		next := x.next
		container.Release(x.Unlink().owner)
		x = next
	}
	return last
}

// Erase is like Del, the list owns the elements it erases.
func (l *Owned[T]) Erase(first, last Iterator[T]) Iterator[T] {
	return l.Del(first, last)
}

// Extract removes the half-open range [first, last) from the list and returns
// it as a new owning list.
//
// Complexity: O(1)
func (l *Owned[T]) Extract(first, last Iterator[T]) *Owned[T] {
	out := new(Owned[T])
	out.Intrusive.Append(l.Intrusive.Extract(first, last))
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
// many were removed. The order of the remaining elements is preserved.
func (l *Owned[T]) RemoveIf(pred func(T) bool) (n int) {
	end := l.End()
	for x := Remove(l.Begin(), end, pred); x != end; x = l.Del(x, x.Next()) {
		n++
	}
	return n
}
