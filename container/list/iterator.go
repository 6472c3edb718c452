package list

// Iterator is a bidirectional position in an intrusive list. Iterators are
// comparable values: two iterators are equal when they refer to the same node.
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		e := it.Value()
//		...
//	}
//
// Unlinking the node that an iterator refers to invalidates only that
// iterator; iterators referring to other nodes, including its neighbors,
// remain valid since nodes are never relocated.
type Iterator[T any] struct{ node *Link[T] }

// At returns an iterator positioned at e, which must be linked in a list.
func At[T Linker[T]](e T) Iterator[T] { return Iterator[T]{LinkOf(e)} }

// Value returns the element that it refers to. The value of the end iterator
// is the zero-value of T.
func (it Iterator[T]) Value() T { return it.node.owner }

// Next returns an iterator to the following node.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.node.next} }

// Prev returns an iterator to the preceding node.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.node.prev} }

// Link returns the node that it refers to.
func (it Iterator[T]) Link() *Link[T] { return it.node }

// Valid returns true if it refers to a linked node.
func (it Iterator[T]) Valid() bool { return it.node != nil && it.node.Linked() }
