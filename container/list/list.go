// Package list contains the implementation of type-safe, intrusive,
// doubly-linked lists.
//
// The standard library provides an implementation of a non-intrusive
// doubly-linked list in the container/list package. Non-intrusive means that
// the list tracks values via an intermediary object, which carries a reference
// to the actual values. The lists of this package adopt a different approach:
// values inserted in the list are struct types which embed a Link field that
// the list uses to chain the values together without requiring an extra
// object.
//
// Lists are circular and carry a sentinel node which never holds a value: the
// first element follows the sentinel, the last element precedes it, and an
// empty list has the sentinel linked to itself. This removes all special cases
// from insertion and removal, which are constant time operations, as are the
// splicing operations (Append, Prepend, Extract, SpliceAfter...) that move
// whole runs of elements between lists without visiting them.
//
// Three flavors of lists are provided:
//
//   - Intrusive does not own its elements, the program remains responsible for
//     their lifetime.
//   - Owned takes ownership of its elements and releases them (see
//     container.Releaser) when they are erased or when the list is cleared.
//   - List holds values of arbitrary types in Element wrappers it allocates.
//
// To use an intrusive list, a program must first declare the type of values it
// will push in:
//
//	type Object struct {
//		list.Link[*Object]
//		Data string
//	}
//
// The zero-value of lists is an empty list ready to use:
//
//	l := list.Intrusive[*Object]{}
//	l.PushBack(&Object{Data: "A"})
//	l.PushBack(&Object{Data: "B"})
//
//	for x := range l.All() {
//		...
//	}
//
// Lists must not be copied after first use, their sentinel is referenced by the
// elements. Use MoveFrom and Swap to transfer contents between lists.
//
// Lists are not safe for concurrent use.
package list

import (
	"iter"

	"github.com/segmentio/intrusive/internal/contract"
)

// Intrusive is a doubly-linked list of elements embedding a Link. The list does
// not own its elements.
//
// The zero-value is a valid, empty list.
type Intrusive[T Linker[T]] struct {
	head Link[T]
}

func (l *Intrusive[T]) lazyInit() {
	if l.head.next == nil {
		l.head.Init()
	}
}

// Init initializes the sentinel of the list. Calling it is never required
// since the zero-value is an empty list, but it may be used to reset a list
// whose memory is reused. The list must not contain elements.
func (l *Intrusive[T]) Init() {
	contract.Check(l.Empty(), "initializing a list which contains elements")
	l.head.Init()
}

// Empty returns true if the list contains no elements.
func (l *Intrusive[T]) Empty() bool {
	return l.head.next == nil || l.head.next == &l.head
}

// Front returns the first element of the list, or the zero-value of T if the
// list is empty.
func (l *Intrusive[T]) Front() (elem T) {
	if !l.Empty() {
		elem = l.head.next.owner
	}
	return elem
}

// Back returns the last element of the list, or the zero-value of T if the
// list is empty.
func (l *Intrusive[T]) Back() (elem T) {
	if !l.Empty() {
		elem = l.head.prev.owner
	}
	return elem
}

// Begin returns an iterator to the first element of the list.
func (l *Intrusive[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.head.next}
}

// End returns an iterator to the sentinel of the list, which follows the last
// element.
func (l *Intrusive[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.head}
}

// PushFront inserts elem at the front of the list.
//
// elem must not already be part of a list.
func (l *Intrusive[T]) PushFront(elem T) {
	l.lazyInit()
	l.head.InsertAfter(LinkOf(elem))
}

// PushBack inserts elem at the back of the list.
//
// elem must not already be part of a list.
func (l *Intrusive[T]) PushBack(elem T) {
	l.lazyInit()
	l.head.InsertBefore(LinkOf(elem))
}

// PopFront removes the first element of the list and returns it. The boolean
// is false if the list was empty.
func (l *Intrusive[T]) PopFront() (elem T, ok bool) {
	if !l.Empty() {
		elem, ok = l.head.next.Unlink().owner, true
	}
	return elem, ok
}

// PopBack removes the last element of the list and returns it. The boolean is
// false if the list was empty.
func (l *Intrusive[T]) PopBack() (elem T, ok bool) {
	if !l.Empty() {
		elem, ok = l.head.prev.Unlink().owner, true
	}
	return elem, ok
}

// InsertBefore inserts elem before the position of it and returns an iterator
// to elem.
func (l *Intrusive[T]) InsertBefore(it Iterator[T], elem T) Iterator[T] {
	n := LinkOf(elem)
	it.node.InsertBefore(n)
	return Iterator[T]{n}
}

// InsertAfter inserts elem after the position of it and returns an iterator to
// elem.
func (l *Intrusive[T]) InsertAfter(it Iterator[T], elem T) Iterator[T] {
	n := LinkOf(elem)
	it.node.InsertAfter(n)
	return Iterator[T]{n}
}

// Remove unlinks elem from the list.
//
// elem must be part of the list; this is verified when contract checks are
// enabled, at the cost of a walk through the list.
func (l *Intrusive[T]) Remove(elem T) {
	n := elem.ListLink()
	if contract.Enabled() {
		contract.Check(l.indexOf(n) >= 0, "list: removing an element which is not part of the list")
	}
	n.Unlink()
}

// Clear unlinks all elements of the list, leaving it empty.
//
// Complexity: O(n)
func (l *Intrusive[T]) Clear() {
	l.lazyInit()
	unlinkRange(l.head.next, &l.head)
}

// Len returns the number of elements in the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) Len() (n int) {
	if !l.Empty() {
		for x := l.head.next; x != &l.head; x = x.next {
			n++
		}
	}
	return n
}

// Len32 is like Len but truncates the result to 32 bits.
func (l *Intrusive[T]) Len32() uint32 { return uint32(l.Len()) }

// IndexOf returns the position of elem in the list, or -1 if elem is not part
// of the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) IndexOf(elem T) int {
	return l.indexOf(elem.ListLink())
}

// Contains returns true if elem is part of the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) Contains(elem T) bool {
	return l.IndexOf(elem) >= 0
}

func (l *Intrusive[T]) indexOf(n *Link[T]) int {
	if !l.Empty() {
		i := 0
		for x := l.head.next; x != &l.head; x = x.next {
			if x == n {
				return i
			}
			i++
		}
	}
	return -1
}

// Validate verifies that the list is circular and that the prev and next
// pointers of every node are consistent. It is intended for use in tests and
// debug assertions.
//
// Complexity: O(n)
func (l *Intrusive[T]) Validate() bool {
	if l.head.next == nil {
		return l.head.prev == nil
	}
	for x := &l.head; ; {
		next := x.next
		if next == nil || next.prev != x {
			return false
		}
		if x = next; x == &l.head {
			return true
		}
	}
}

// Erase unlinks the elements of the half-open range [first, last) and returns
// last.
//
// Complexity: O(n) in the size of the range
func (l *Intrusive[T]) Erase(first, last Iterator[T]) Iterator[T] {
	unlinkRange(first.node, last.node)
	return last
}

// Extract removes the half-open range [first, last) from the list and returns
// it as a new list. The elements are spliced, not copied.
//
// Complexity: O(1)
func (l *Intrusive[T]) Extract(first, last Iterator[T]) *Intrusive[T] {
	out := new(Intrusive[T])
	out.head.Init()
	if first != last {
		tail := first.node.UnlinkTo(last.node)
		insertRun(&out.head, first.node, tail)
	}
	return out
}

// Append moves all elements of other to the back of the list, leaving other
// empty.
//
// Complexity: O(1)
func (l *Intrusive[T]) Append(other *Intrusive[T]) {
	if other != l && !other.Empty() {
		l.lazyInit()
		first, last := other.take()
		insertRun(l.head.prev, first, last)
	}
}

// Prepend moves all elements of other to the front of the list, leaving other
// empty.
//
// Complexity: O(1)
func (l *Intrusive[T]) Prepend(other *Intrusive[T]) {
	if other != l && !other.Empty() {
		l.lazyInit()
		first, last := other.take()
		insertRun(&l.head, first, last)
	}
}

// MoveFrom replaces the content of the list with the elements of other,
// leaving other empty. Elements previously held by the list are unlinked.
func (l *Intrusive[T]) MoveFrom(other *Intrusive[T]) {
	if other != l {
		l.Clear()
		l.Append(other)
	}
}

func (l *Intrusive[T]) take() (first, last *Link[T]) {
	first, last = l.head.next, l.head.prev
	l.head.Init()
	return first, last
}

// All returns a sequence of the elements of the list, from front to back.
//
// The element being visited may be removed from the list during the iteration.
func (l *Intrusive[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Empty() {
			return
		}
		for x := l.head.next; x != &l.head; {
			next := x.next
			if !yield(x.owner) {
				return
			}
			x = next
		}
	}
}

// Backward returns a sequence of the elements of the list, from back to front.
//
// The element being visited may be removed from the list during the iteration.
func (l *Intrusive[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Empty() {
			return
		}
		for x := l.head.prev; x != &l.head; {
			prev := x.prev
			if !yield(x.owner) {
				return
			}
			x = prev
		}
	}
}

// Swap exchanges the contents of a and b.
//
// Complexity: O(1)
func Swap[T Linker[T]](a, b *Intrusive[T]) {
	if a == b {
		return
	}
	aEmpty, bEmpty := a.Empty(), b.Empty()
	var af, al, bf, bl *Link[T]
	if !aEmpty {
		af, al = a.take()
	}
	if !bEmpty {
		bf, bl = b.take()
	}
	a.head.Init()
	b.head.Init()
	if !bEmpty {
		insertRun(&a.head, bf, bl)
	}
	if !aEmpty {
		insertRun(&b.head, af, al)
	}
}

func unlinkRange[T any](first, last *Link[T]) {
	for x := first; x != last; {
		next := x.next
		x.Unlink()
		x = next
	}
}
