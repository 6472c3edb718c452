// Package slist contains the implementation of type-safe, intrusive, singly
// linked lists.
//
// Singly linked lists use one pointer per element instead of two, at the cost
// of operations which need the predecessor of an element: removing an element
// or inserting before it. Those are constant time when the predecessor is
// known, which is what the IteratorP type provides by tracking the node before
// its logical position, and linear time otherwise.
//
// Like the doubly linked lists of the list package, the lists are circular and
// use a sentinel node. Intrusive appends to its back in linear time;
// IntrusiveTail maintains a pointer to the last element so appending is
// constant time, at the cost of keeping that pointer up to date on every
// operation that may change the last element.
//
// Owned, List and TailList are the owning variants, releasing their elements
// when they drop them (see container.Releaser).
//
// Lists must not be copied after first use. Lists are not safe for concurrent
// use.
package slist

import (
	"iter"

	"github.com/segmentio/intrusive/internal/contract"
)

// Intrusive is a singly linked list of elements embedding a Link. The list does
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
//
// Complexity: O(n)
func (l *Intrusive[T]) Back() (elem T) {
	if !l.Empty() {
		elem = lastOf(&l.head).owner
	}
	return elem
}

// Begin returns an iterator to the first element of the list.
func (l *Intrusive[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.head.next}
}

// BeginP returns a predecessor iterator to the first element of the list.
func (l *Intrusive[T]) BeginP() IteratorP[T] {
	l.lazyInit()
	return IteratorP[T]{&l.head}
}

// End returns an iterator to the sentinel of the list.
func (l *Intrusive[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.head}
}

// PushFront inserts elem at the front of the list.
//
// Complexity: O(1)
func (l *Intrusive[T]) PushFront(elem T) {
	l.lazyInit()
	l.head.InsertAfter(LinkOf(elem))
}

// PushBack inserts elem at the back of the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) PushBack(elem T) {
	l.lazyInit()
	lastOf(&l.head).InsertAfter(LinkOf(elem))
}

// PopFront removes the first element of the list and returns it. The boolean
// is false if the list was empty.
func (l *Intrusive[T]) PopFront() (elem T, ok bool) {
	if !l.Empty() {
		elem, ok = l.head.UnlinkNext().owner, true
	}
	return elem, ok
}

// InsertAfter inserts elem after the position of it and returns an iterator to
// elem.
func (l *Intrusive[T]) InsertAfter(it Iterator[T], elem T) Iterator[T] {
	n := LinkOf(elem)
	it.node.InsertAfter(n)
	return Iterator[T]{n}
}

// Prev returns a predecessor iterator positioned at elem, or false if elem is
// not part of the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) Prev(elem T) (IteratorP[T], bool) {
	if p := prevOf(&l.head, elem.SListLink()); p != nil {
		return IteratorP[T]{p}, true
	}
	return IteratorP[T]{}, false
}

// Remove unlinks elem from the list, returning false if elem was not part of
// it.
//
// Complexity: O(n)
func (l *Intrusive[T]) Remove(elem T) bool {
	if p := prevOf(&l.head, elem.SListLink()); p != nil {
		p.UnlinkNext()
		return true
	}
	return false
}

// Clear unlinks all elements of the list, leaving it empty.
//
// Complexity: O(n)
func (l *Intrusive[T]) Clear() {
	l.lazyInit()
	for l.head.next != &l.head {
		l.head.UnlinkNext()
	}
}

// Len returns the number of elements in the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) Len() int { return length(&l.head) }

// Len32 is like Len but truncates the result to 32 bits.
func (l *Intrusive[T]) Len32() uint32 { return uint32(l.Len()) }

// IndexOf returns the position of elem in the list, or -1 if elem is not part
// of the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) IndexOf(elem T) int { return indexOf(&l.head, elem.SListLink()) }

// Contains returns true if elem is part of the list.
//
// Complexity: O(n)
func (l *Intrusive[T]) Contains(elem T) bool { return l.IndexOf(elem) >= 0 }

// Validate verifies that the list is circular through its sentinel.
//
// Complexity: O(n)
func (l *Intrusive[T]) Validate() bool { return validate(&l.head) }

// Erase unlinks the elements between the position of p and last (exclusive)
// and returns p, which refers to last afterward.
//
// Complexity: O(n) in the size of the range
func (l *Intrusive[T]) Erase(p IteratorP[T], last Iterator[T]) IteratorP[T] {
	for p.prev.next != last.node {
		p.prev.UnlinkNext()
	}
	return p
}

// Extract removes the elements between the position of p and last (exclusive)
// and returns them as a new list.
//
// Complexity: O(n) in the size of the range
func (l *Intrusive[T]) Extract(p IteratorP[T], last Iterator[T]) *Intrusive[T] {
	out := new(Intrusive[T])
	out.head.Init()
	if first, tail := p.prev.UnlinkNextTo(last.node); first != nil {
		out.head.SpliceAfter(first, tail)
	}
	return out
}

// Append moves all elements of other to the back of the list, leaving other
// empty.
//
// Complexity: O(n)
func (l *Intrusive[T]) Append(other *Intrusive[T]) {
	if other != l && !other.Empty() {
		l.lazyInit()
		first, last := other.take()
		lastOf(&l.head).SpliceAfter(first, last)
	}
}

// Prepend moves all elements of other to the front of the list, leaving other
// empty.
//
// Complexity: O(n) in the size of other
func (l *Intrusive[T]) Prepend(other *Intrusive[T]) {
	if other != l && !other.Empty() {
		l.lazyInit()
		first, last := other.take()
		l.head.SpliceAfter(first, last)
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
	first, last = l.head.next, lastOf(&l.head)
	l.head.next = &l.head
	return first, last
}

// Insertable returns a sequence of predecessor iterators positioned at each
// element of the list. The body of the loop may insert elements at the yielded
// position (they are not visited) or remove the element at that position:
//
//	for it := range l.Insertable() {
//		if it.Value().Stale {
//			it.Remove()
//		} else if x := it.Value(); x.Split {
//			it.Insert(x.Half())
//		}
//	}
func (l *Intrusive[T]) Insertable() iter.Seq[IteratorP[T]] {
	return func(yield func(IteratorP[T]) bool) {
		l.lazyInit()
		for p := &l.head; p.next != &l.head; {
			cur := p.next
			if !yield(IteratorP[T]{p}) {
				return
			}
			if cur.Linked() {
				p = cur
			}
		}
	}
}

// Appender returns a cursor which appends elements at the back of the list.
// Appending through the cursor is constant time, only its creation walks the
// list. The list must not be used until the appender is closed.
func (l *Intrusive[T]) Appender() *Appender[T] {
	l.lazyInit()
	return &Appender[T]{head: &l.head, tail: lastOf(&l.head)}
}

// All returns a sequence of the elements of the list, from front to back.
//
// The element being visited may be removed from the list during the iteration.
func (l *Intrusive[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		all(&l.head, yield)
	}
}

// Swap exchanges the contents of a and b.
//
// Complexity: O(n)
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
		a.head.SpliceAfter(bf, bl)
	}
	if !aEmpty {
		b.head.SpliceAfter(af, al)
	}
}

func all[T any](head *Link[T], yield func(T) bool) {
	if head.next == nil {
		return
	}
	for x := head.next; x != head; {
		next := x.next
		if !yield(x.owner) {
			return
		}
		x = next
	}
}

func lastOf[T any](head *Link[T]) *Link[T] {
	x := head
	for x.next != head {
		x = x.next
	}
	return x
}

func prevOf[T any](head, n *Link[T]) *Link[T] {
	if head.next == nil {
		return nil
	}
	for p := head; p.next != head; p = p.next {
		if p.next == n {
			return p
		}
	}
	return nil
}

func length[T any](head *Link[T]) (n int) {
	if head.next != nil {
		for x := head.next; x != head; x = x.next {
			n++
		}
	}
	return n
}

func indexOf[T any](head, n *Link[T]) int {
	if head.next != nil {
		i := 0
		for x := head.next; x != head; x = x.next {
			if x == n {
				return i
			}
			i++
		}
	}
	return -1
}

// validate walks the ring from its sentinel, using a second cursor moving at
// twice the speed to detect cycles which do not go through the sentinel.
func validate[T any](head *Link[T]) bool {
	if head.next == nil {
		return true
	}
	slow, fast := head, head
	for {
		for i := 0; i < 2; i++ {
			if fast = fast.next; fast == nil {
				return false
			}
			if fast == head {
				return true
			}
		}
		if slow = slow.next; slow == fast {
			return false
		}
	}
}

func checkLinked[T any](n *Link[T]) {
	contract.Check(!n.Linked(), "slist: inserting a node which is already linked")
}
