package slist

import "github.com/segmentio/intrusive/internal/contract"

// Link values must be embedded as a struct field in the elements of singly
// linked lists. The type parameter is the pointer type of the element:
//
//	type Job struct {
//		slist.Link[*Job]
//		Name string
//	}
//
// A link is linked if and only if its next pointer is not nil.
//
// The zero-value is an unlinked link.
type Link[T any] struct {
	next  *Link[T]
	owner T
}

// Linker is the constraint satisfied by the elements of singly linked lists.
type Linker[T any] interface {
	SListLink() *Link[T]
}

// SListLink returns l, the method is promoted to types embedding a Link.
func (l *Link[T]) SListLink() *Link[T] { return l }

// LinkOf returns the link embedded in e, recording e as the value that the
// link projects to.
func LinkOf[T Linker[T]](e T) *Link[T] {
	l := e.SListLink()
	l.owner = e
	return l
}

// Init makes l a circular singleton.
func (l *Link[T]) Init() { l.next = l }

// Linked returns true if l is part of a list.
func (l *Link[T]) Linked() bool { return l.next != nil }

// Next returns the link following l, or nil if l is not linked.
func (l *Link[T]) Next() *Link[T] { return l.next }

// Value returns the element that l is embedded in.
func (l *Link[T]) Value() T { return l.owner }

// InsertAfter inserts the unlinked node n right after l.
func (l *Link[T]) InsertAfter(n *Link[T]) {
	contract.Check(!n.Linked(), "slist: inserting a node which is already linked")
	n.next = l.next
	l.next = n
}

// SpliceAfter inserts the detached chain [first, last] right after l. The
// chain must have been unlinked from its previous list (see UnlinkNextTo), and
// l must not be part of it.
func (l *Link[T]) SpliceAfter(first, last *Link[T]) {
	if contract.Enabled() {
		for n := first; n != last; {
			if n == l {
				contract.Fail("slist: splicing a chain into itself")
				return
			}
			if n = n.next; n == nil || n == first {
				contract.Fail("slist: the end of the spliced chain is not reachable from its start")
				return
			}
		}
		contract.Check(last != l, "slist: splicing a chain into itself")
	}
	last.next = l.next
	l.next = first
}

// UnlinkNext removes the node following l and returns it.
func (l *Link[T]) UnlinkNext() *Link[T] {
	n := l.next
	l.next = n.next
	n.next = nil
	return n
}

// UnlinkNextTo detaches the nodes between l and to, exclusive of both, and
// returns the first and last nodes of the detached chain. The chain keeps its
// internal links; the next pointer of its last node is stale. Both results are
// nil if the range is empty.
//
// Complexity: O(n) in the length of the chain
func (l *Link[T]) UnlinkNextTo(to *Link[T]) (first, last *Link[T]) {
	if l.next == to {
		return nil, nil
	}
	first = l.next
	for last = first; last.next != to; last = last.next {
	}
	l.next = to
	return first, last
}
