package slist

// Iterator is a forward position in a singly linked list.
type Iterator[T Linker[T]] struct{ node *Link[T] }

// At returns an iterator positioned at e.
func At[T Linker[T]](e T) Iterator[T] { return Iterator[T]{LinkOf(e)} }

// Value returns the element that it refers to.
func (it Iterator[T]) Value() T { return it.node.owner }

// Next returns an iterator to the following node.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.node.next} }

// Link returns the node that it refers to.
func (it Iterator[T]) Link() *Link[T] { return it.node }

// IteratorP is a predecessor iterator: it stores the node before its logical
// position, which allows inserting and removing elements at that position in
// constant time.
//
// The methods of IteratorP which modify the list do not maintain the tail of
// an IntrusiveTail list, they must only be used on Intrusive lists.
type IteratorP[T Linker[T]] struct{ prev *Link[T] }

// Value returns the element at the position of it.
func (it IteratorP[T]) Value() T { return it.prev.next.owner }

// Next returns a predecessor iterator to the following position.
func (it IteratorP[T]) Next() IteratorP[T] { return IteratorP[T]{it.prev.next} }

// Pred returns the node before the position of it.
func (it IteratorP[T]) Pred() *Link[T] { return it.prev }

// Iterator returns a plain iterator to the position of it.
func (it IteratorP[T]) Iterator() Iterator[T] { return Iterator[T]{it.prev.next} }

// Is returns true if it is positioned at x.
func (it IteratorP[T]) Is(x Iterator[T]) bool { return it.prev.next == x.node }

// Insert inserts elem at the position of it, before the element which was
// there. The iterator refers to elem afterward.
func (it IteratorP[T]) Insert(elem T) {
	it.prev.InsertAfter(LinkOf(elem))
}

// Remove unlinks the element at the position of it and returns it. The
// iterator refers to the following element afterward.
func (it IteratorP[T]) Remove() T {
	return it.prev.UnlinkNext().owner
}
