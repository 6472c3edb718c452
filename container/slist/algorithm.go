package slist

// Sort sorts the elements between the position of lo and hi (exclusive)
// according to cmp, and returns an iterator to the new first element of the
// range. The predecessor of lo is the anchor the sorted range is spliced
// after, which is why a predecessor iterator is required.
//
// The sort is the same stable, bottom-up merge sort as list.Sort: passes merge
// adjacent pairs of runs by splicing nodes, doubling the size of the runs,
// until a pass leaves a single run.
//
// Sorting a range which ends at the back of an IntrusiveTail list invalidates
// its tail pointer, use IntrusiveTail.Sort instead.
//
// Complexity: O(n log n)
func Sort[T Linker[T]](lo IteratorP[T], hi Iterator[T], cmp func(T, T) int) Iterator[T] {
	anchor, end := lo.prev, hi.node
	if anchor.next == end || anchor.next.next == end {
		return Iterator[T]{anchor.next}
	}

	for chunk := 1; ; chunk *= 2 {
		merges := 0
		p := anchor

		for p.next != end {
			lastLeft := advance(p, end, chunk)
			if lastLeft.next == end {
				break
			}
			lastRight := advance(lastLeft, end, chunk)
			p = merge(p, lastLeft, lastRight, cmp)
			merges++
		}

		if merges == 0 || (merges == 1 && p.next == end) {
			break
		}
	}

	return Iterator[T]{anchor.next}
}

// advance returns the node n steps after p, stopping before end.
func advance[T any](p, end *Link[T], n int) *Link[T] {
	for i := 0; i < n && p.next != end; i++ {
		p = p.next
	}
	return p
}

// merge merges the adjacent sorted runs (pa, pb] and (pb, pend] and returns the
// last node of the merged run.
func merge[T any](pa, pb, pend *Link[T], cmp func(T, T) int) *Link[T] {
	a, b, end := pa.next, pb.next, pend.next

	for a != b && b != end {
		if cmp(b.owner, a.owner) < 0 {
			pb.next = b.next
			b.next = a
			pa.next = b
			pa = b
			b = pb.next
		} else {
			pa = a
			a = a.next
		}
	}

	if b == end {
		return pb
	}
	return pend
}

// Reverse reverses the order of the elements between the position of lo and
// hi (exclusive).
//
// Reversing a range which ends at the back of an IntrusiveTail list
// invalidates its tail pointer, use IntrusiveTail.Reverse instead.
//
// Complexity: O(n)
func Reverse[T Linker[T]](lo IteratorP[T], hi Iterator[T]) {
	prev, x := hi.node, lo.prev.next
	for x != hi.node {
		next := x.next
		x.next = prev
		prev = x
		x = next
	}
	lo.prev.next = prev
}
