package slist

// Appender is a cursor appending elements at the back of a singly linked list.
//
// While elements are being appended the chain is left open: the last appended
// element is not linked back to the sentinel of the list until Close is
// called, which is why the list must not be used in the meantime. Programs
// typically defer the call to Close right after creating the appender:
//
//	a := l.Appender()
//	defer a.Close()
//
//	for _, x := range elems {
//		a.Append(x)
//	}
type Appender[T Linker[T]] struct {
	head   *Link[T]
	tail   *Link[T]
	update **Link[T]
}

// Append inserts elem after the last appended element.
func (a *Appender[T]) Append(elem T) {
	n := LinkOf(elem)
	checkLinked(n)
	a.tail.next = n
	a.tail = n
}

// Close terminates the chain by linking the last appended element back to the
// sentinel of the list. Calling Close more than once is a no-op.
func (a *Appender[T]) Close() {
	if a.head != nil {
		a.tail.next = a.head
		if a.update != nil {
			*a.update = a.tail
		}
		a.head = nil
	}
}
