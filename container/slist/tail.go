package slist

import "iter"

// IntrusiveTail is a singly linked list which maintains a pointer to its last
// element, making PushBack, Back and Append constant time operations. The next
// pointer of the last element always refers to the sentinel of the list.
//
// The list does not own its elements.
//
// The zero-value is a valid, empty list.
type IntrusiveTail[T Linker[T]] struct {
	head Link[T]
	tail *Link[T]
}

func (l *IntrusiveTail[T]) lazyInit() {
	if l.head.next == nil {
		l.head.Init()
		l.tail = &l.head
	}
}

func (l *IntrusiveTail[T]) reset() {
	l.head.Init()
	l.tail = &l.head
}

// Empty returns true if the list contains no elements.
func (l *IntrusiveTail[T]) Empty() bool {
	return l.head.next == nil || l.head.next == &l.head
}

// Front returns the first element of the list, or the zero-value of T if the
// list is empty.
func (l *IntrusiveTail[T]) Front() (elem T) {
	if !l.Empty() {
		elem = l.head.next.owner
	}
	return elem
}

// Back returns the last element of the list, or the zero-value of T if the
// list is empty.
//
// Complexity: O(1)
func (l *IntrusiveTail[T]) Back() (elem T) {
	if !l.Empty() {
		elem = l.tail.owner
	}
	return elem
}

// Begin returns an iterator to the first element of the list.
func (l *IntrusiveTail[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.head.next}
}

// BeginP returns a predecessor iterator to the first element of the list.
func (l *IntrusiveTail[T]) BeginP() IteratorP[T] {
	l.lazyInit()
	return IteratorP[T]{&l.head}
}

// End returns an iterator to the sentinel of the list.
func (l *IntrusiveTail[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.head}
}

// PushFront inserts elem at the front of the list.
func (l *IntrusiveTail[T]) PushFront(elem T) {
	l.lazyInit()
	n := LinkOf(elem)
	l.head.InsertAfter(n)
	if l.tail == &l.head {
		l.tail = n
	}
}

// PushBack inserts elem at the back of the list.
//
// Complexity: O(1)
func (l *IntrusiveTail[T]) PushBack(elem T) {
	l.lazyInit()
	n := LinkOf(elem)
	l.tail.InsertAfter(n)
	l.tail = n
}

// PopFront removes the first element of the list and returns it. The boolean
// is false if the list was empty.
func (l *IntrusiveTail[T]) PopFront() (elem T, ok bool) {
	if !l.Empty() {
		n := l.head.UnlinkNext()
		if n == l.tail {
			l.tail = &l.head
		}
		elem, ok = n.owner, true
	}
	return elem, ok
}

// InsertAfter inserts elem after the position of it and returns an iterator to
// elem.
func (l *IntrusiveTail[T]) InsertAfter(it Iterator[T], elem T) Iterator[T] {
	n := LinkOf(elem)
	it.node.InsertAfter(n)
	if it.node == l.tail {
		l.tail = n
	}
	return Iterator[T]{n}
}

// InsertAt inserts elem at the position of p, before the element which was
// there.
func (l *IntrusiveTail[T]) InsertAt(p IteratorP[T], elem T) {
	n := LinkOf(elem)
	p.prev.InsertAfter(n)
	if p.prev == l.tail {
		l.tail = n
	}
}

// RemoveAt unlinks the element at the position of p and returns it.
func (l *IntrusiveTail[T]) RemoveAt(p IteratorP[T]) T {
	n := p.prev.UnlinkNext()
	if n == l.tail {
		l.tail = p.prev
	}
	return n.owner
}

// Prev returns a predecessor iterator positioned at elem, or false if elem is
// not part of the list.
//
// Complexity: O(n)
func (l *IntrusiveTail[T]) Prev(elem T) (IteratorP[T], bool) {
	if p := prevOf(&l.head, elem.SListLink()); p != nil {
		return IteratorP[T]{p}, true
	}
	return IteratorP[T]{}, false
}

// Remove unlinks elem from the list, returning false if elem was not part of
// it.
//
// Complexity: O(n)
func (l *IntrusiveTail[T]) Remove(elem T) bool {
	p, ok := l.Prev(elem)
	if ok {
		l.RemoveAt(p)
	}
	return ok
}

// Clear unlinks all elements of the list, leaving it empty.
func (l *IntrusiveTail[T]) Clear() {
	l.lazyInit()
	for l.head.next != &l.head {
		l.head.UnlinkNext()
	}
	l.tail = &l.head
}

// Len returns the number of elements in the list.
//
// Complexity: O(n)
func (l *IntrusiveTail[T]) Len() int { return length(&l.head) }

// Len32 is like Len but truncates the result to 32 bits.
func (l *IntrusiveTail[T]) Len32() uint32 { return uint32(l.Len()) }

// IndexOf returns the position of elem in the list, or -1 if elem is not part
// of the list.
func (l *IntrusiveTail[T]) IndexOf(elem T) int { return indexOf(&l.head, elem.SListLink()) }

// Contains returns true if elem is part of the list.
func (l *IntrusiveTail[T]) Contains(elem T) bool { return l.IndexOf(elem) >= 0 }

// Validate verifies that the list is circular through its sentinel and that
// the tail pointer refers to the last element.
//
// Complexity: O(n)
func (l *IntrusiveTail[T]) Validate() bool {
	if l.head.next == nil {
		return l.tail == nil
	}
	return validate(&l.head) && l.tail != nil && l.tail.next == &l.head
}

// Erase unlinks the elements between the position of p and last (exclusive)
// and returns p, which refers to last afterward.
func (l *IntrusiveTail[T]) Erase(p IteratorP[T], last Iterator[T]) IteratorP[T] {
	for p.prev.next != last.node {
		l.RemoveAt(p)
	}
	return p
}

// Extract removes the elements between the position of p and last (exclusive)
// and returns them as a new list.
func (l *IntrusiveTail[T]) Extract(p IteratorP[T], last Iterator[T]) *IntrusiveTail[T] {
	out := new(IntrusiveTail[T])
	out.reset()
	if first, tail := p.prev.UnlinkNextTo(last.node); first != nil {
		out.head.SpliceAfter(first, tail)
		out.tail = tail
		if last.node == &l.head {
			l.tail = p.prev
		}
	}
	return out
}

// Append moves all elements of other to the back of the list, leaving other
// empty.
//
// Complexity: O(1)
func (l *IntrusiveTail[T]) Append(other *IntrusiveTail[T]) {
	if other != l && !other.Empty() {
		l.lazyInit()
		first, last := other.take()
		l.tail.SpliceAfter(first, last)
		l.tail = last
	}
}

// Prepend moves all elements of other to the front of the list, leaving other
// empty.
//
// Complexity: O(1)
func (l *IntrusiveTail[T]) Prepend(other *IntrusiveTail[T]) {
	if other != l && !other.Empty() {
		l.lazyInit()
		first, last := other.take()
		l.head.SpliceAfter(first, last)
		if l.tail == &l.head {
			l.tail = last
		}
	}
}

// MoveFrom replaces the content of the list with the elements of other,
// leaving other empty. Elements previously held by the list are unlinked.
func (l *IntrusiveTail[T]) MoveFrom(other *IntrusiveTail[T]) {
	if other != l {
		l.Clear()
		l.Append(other)
	}
}

func (l *IntrusiveTail[T]) take() (first, last *Link[T]) {
	first, last = l.head.next, l.tail
	l.reset()
	return first, last
}

// Sort sorts the elements of the list according to cmp. The sort is stable.
//
// Complexity: O(n log n)
func (l *IntrusiveTail[T]) Sort(cmp func(T, T) int) {
	if !l.Empty() {
		Sort(l.BeginP(), l.End(), cmp)
		l.tail = lastOf(&l.head)
	}
}

// Reverse reverses the order of the elements of the list.
//
// Complexity: O(n)
func (l *IntrusiveTail[T]) Reverse() {
	if !l.Empty() {
		first := l.head.next
		Reverse(l.BeginP(), l.End())
		l.tail = first
	}
}

// Appender returns a cursor which appends elements at the back of the list in
// constant time. The list must not be used until the appender is closed.
func (l *IntrusiveTail[T]) Appender() *Appender[T] {
	l.lazyInit()
	return &Appender[T]{head: &l.head, tail: l.tail, update: &l.tail}
}

// All returns a sequence of the elements of the list, from front to back.
//
// The element being visited may be removed from the list during the iteration,
// through RemoveAt or Remove.
func (l *IntrusiveTail[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		all(&l.head, yield)
	}
}

// SwapTail exchanges the contents of a and b, maintaining the tail pointers of
// both lists.
//
// Complexity: O(1)
func SwapTail[T Linker[T]](a, b *IntrusiveTail[T]) {
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
	a.reset()
	b.reset()
	if !bEmpty {
		a.head.SpliceAfter(bf, bl)
		a.tail = bl
	}
	if !aEmpty {
		b.head.SpliceAfter(af, al)
		b.tail = al
	}
}
