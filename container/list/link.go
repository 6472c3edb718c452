package list

import "github.com/segmentio/intrusive/internal/contract"

// Link values must be embedded as a struct field in the elements of intrusive
// lists. The type parameter is the pointer type of the element itself:
//
//	type Timer struct {
//		list.Link[*Timer]
//		When time.Time
//	}
//
// Embedding the field promotes the ListLink method, which makes *Timer satisfy
// Linker[*Timer] and allows it to be inserted in an Intrusive[*Timer] list.
//
// A link is linked if and only if its next pointer is not nil. For every linked
// link n, n.prev.next == n and n.next.prev == n. Lists are circular: the last
// element links back to a sentinel owned by the list.
//
// The zero-value is an unlinked link.
type Link[T any] struct {
	prev, next *Link[T]
	owner      T
}

// Linker is the constraint satisfied by the elements of intrusive lists.
type Linker[T any] interface {
	ListLink() *Link[T]
}

// ListLink returns l, the method is promoted to types embedding a Link.
func (l *Link[T]) ListLink() *Link[T] { return l }

// LinkOf returns the link embedded in e, recording e as the value that the
// link projects to.
func LinkOf[T Linker[T]](e T) *Link[T] {
	l := e.ListLink()
	l.owner = e
	return l
}

// Init makes l a circular singleton, linked to itself. It is used to
// initialize sentinels and the first element of sentinel-less rings.
func (l *Link[T]) Init() {
	l.prev = l
	l.next = l
}

// Linked returns true if l is part of a list.
func (l *Link[T]) Linked() bool { return l.next != nil }

// Next returns the link following l, or nil if l is not linked.
func (l *Link[T]) Next() *Link[T] { return l.next }

// Prev returns the link preceding l, or nil if l is not linked.
func (l *Link[T]) Prev() *Link[T] { return l.prev }

// Value returns the element that l is embedded in. The value of a list
// sentinel is the zero-value of T.
func (l *Link[T]) Value() T { return l.owner }

// Join makes n the successor of l. The predecessor of l and the successor of n
// are not modified, which leaves the list temporarily inconsistent until the
// matching half-splice is performed.
func (l *Link[T]) Join(n *Link[T]) {
	l.next = n
	n.prev = l
}

// InsertAfter inserts the unlinked node n right after l.
func (l *Link[T]) InsertAfter(n *Link[T]) {
	contract.Check(!n.Linked(), "list: inserting a node which is already linked")
	n.Join(l.next)
	l.Join(n)
}

// InsertBefore inserts the unlinked node n right before l.
func (l *Link[T]) InsertBefore(n *Link[T]) {
	contract.Check(!n.Linked(), "list: inserting a node which is already linked")
	l.prev.Join(n)
	n.Join(l)
}

// SpliceAfter moves the contiguous run of nodes [first, last] (inclusive) right
// after l in constant time.
//
// If the run is still part of a list, that list is repaired. Runs previously
// detached with UnlinkTo are accepted as well. l must not be part of the run.
func (l *Link[T]) SpliceAfter(first, last *Link[T]) {
	checkSplice(l, first, last)
	detachRun(first, last)
	insertRun(l, first, last)
}

// SpliceBefore moves the contiguous run of nodes [first, last] (inclusive)
// right before l in constant time, see SpliceAfter.
func (l *Link[T]) SpliceBefore(first, last *Link[T]) {
	checkSplice(l, first, last)
	detachRun(first, last)
	insertRun(l.prev, first, last)
}

// Unlink removes l from its list and returns it. The neighbors of l are joined
// together and l reports being unlinked afterward.
func (l *Link[T]) Unlink() *Link[T] {
	l.prev.Join(l.next)
	l.prev = nil
	l.next = nil
	return l
}

// UnlinkTo detaches the half-open run [l, to) from its list in constant time
// and returns the last node of the run.
//
// The nodes of the run remain chained together so the run can be spliced
// elsewhere; the outer pointers of its first and last nodes are stale until
// it is. The run must not be empty (l != to).
func (l *Link[T]) UnlinkTo(to *Link[T]) *Link[T] {
	contract.Check(l != to, "list: unlinking an empty range")
	last := to.prev
	l.prev.Join(to)
	return last
}

// Replace substitutes the unlinked node n for l at the same position, leaving
// l unlinked.
func (l *Link[T]) Replace(n *Link[T]) {
	contract.Check(!n.Linked(), "list: replacing with a node which is already linked")
	next := l.next
	l.prev.Join(n)
	n.Join(next)
	if next == l { // l was a singleton ring
		n.Init()
	}
	l.prev = nil
	l.next = nil
}

func detachRun[T any](first, last *Link[T]) {
	if p := first.prev; p != nil && p.next == first {
		p.Join(last.next)
	}
}

func insertRun[T any](at, first, last *Link[T]) {
	next := at.next
	at.Join(first)
	last.Join(next)
}

func checkSplice[T any](at, first, last *Link[T]) {
	if !contract.Enabled() {
		return
	}
	for n := first; ; {
		if n == at {
			contract.Fail("list: splicing a range into itself")
			return
		}
		if n == last {
			return
		}
		if n = n.next; n == nil || n == first {
			contract.Fail("list: the end of the spliced range is not reachable from its start")
			return
		}
	}
}
