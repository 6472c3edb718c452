package list

// Sort sorts the half-open range [lo, hi) according to cmp and returns an
// iterator to the new first element of the range.
//
// The sort is a stable, bottom-up merge sort: each pass merges adjacent pairs
// of sorted runs, doubling the size of the runs, until a pass leaves a single
// run. Elements are merged by splicing nodes, no memory is allocated and
// iterators to the elements of the range remain valid (though they may not
// refer to the same positions anymore). The iterator lo is not the first
// element of the range after the sort unless it already was the smallest,
// the returned iterator must be used instead.
//
// Complexity: O(n log n)
func Sort[T any](lo, hi Iterator[T], cmp func(T, T) int) Iterator[T] {
	if lo == hi || lo.node.next == hi.node {
		return lo
	}

	anchor := lo.node.prev // stable across passes, never part of the range

	for chunk := 1; ; chunk *= 2 {
		merges := 0
		a := anchor.next

		for a != hi.node {
			b := advance(a, hi.node, chunk)
			if b == hi.node {
				break
			}
			end := advance(b, hi.node, chunk)
			merge(a, b, end, cmp)
			merges++
			a = end
		}

		if merges == 0 || (merges == 1 && a == hi.node) {
			break
		}
	}

	return Iterator[T]{anchor.next}
}

func advance[T any](x, end *Link[T], n int) *Link[T] {
	for i := 0; i < n && x != end; i++ {
		x = x.next
	}
	return x
}

// merge merges the adjacent sorted runs [a, b) and [b, end).
func merge[T any](a, b, end *Link[T], cmp func(T, T) int) {
	for a != b && b != end {
		if cmp(b.owner, a.owner) < 0 {
			next := b.next
			b.prev.Join(next)
			a.prev.Join(b)
			b.Join(a)
			b = next
		} else {
			a = a.next
		}
	}
}

// Remove moves the elements of [begin, end) for which pred returns true to the
// end of the range, and returns an iterator to the first of them.
//
// Elements for which pred returns false keep their relative order at the front
// of the range. Each matching element is spliced right before the current
// logical end of the range, which then moves onto it: removing even numbers
// from [1, 2, 3, 4, 5] yields [1, 3, 5, 4, 2] and an iterator to 4.
//
// Remove does not unlink or release anything, it only partitions the range.
// Programs following the erase-remove idiom call Erase (or Owned.Del to
// release the elements) on the range between the returned iterator and end;
// Owned.RemoveIf combines both steps.
//
// Complexity: O(n)
func Remove[T any](begin, end Iterator[T], pred func(T) bool) Iterator[T] {
	stop := end.node
	for x := begin.node; x != stop; {
		next := x.next
		if pred(x.owner) {
			if next == stop {
				stop = x
				break
			}
			x.prev.Join(next)
			stop.prev.Join(x)
			x.Join(stop)
			stop = x
		}
		x = next
	}
	return Iterator[T]{stop}
}

// Reverse reverses the order of the elements in [begin, end) in place, by
// swapping the prev and next pointers of every node and realigning the links of
// the range boundaries.
//
// Complexity: O(n)
func Reverse[T any](begin, end Iterator[T]) {
	if begin == end {
		return
	}
	first, last := begin.node, end.node.prev
	before, after := first.prev, end.node

	for x := first; x != after; {
		next := x.next
		x.prev, x.next = x.next, x.prev
		x = next
	}

	before.Join(last)
	first.Join(after)
}
