package slist

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type resource struct {
	name     string
	released *[]string
}

func (r resource) Release() { *r.released = append(*r.released, r.name) }

func collect[T any](seq iter.Seq[T]) []T {
	return append([]T{}, slices.Collect(seq)...)
}

func TestList(t *testing.T) {
	l := new(List[string])
	if !l.Empty() || l.Front() != nil || l.Back() != nil {
		t.Fatal("zero-value list is not empty")
	}

	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, collect(l.All())); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if l.Back().Value != "c" || l.Len() != 3 {
		t.Error("wrong back of the list")
	}

	v, ok := l.PopFront()
	if !ok || v != "a" {
		t.Errorf("wrong value popped: got=%q want=%q", v, "a")
	}
	l.Clear()
	if _, ok := l.PopFront(); ok {
		t.Error("popping from a cleared list found a value")
	}
}

func TestListReleasesValues(t *testing.T) {
	var released []string
	l := new(List[resource])
	for _, name := range []string{"a", "b", "c"} {
		l.PushBack(resource{name: name, released: &released})
	}

	r, _ := l.PopFront()
	if len(released) != 0 {
		t.Error("popping a value released it")
	}
	r.Release()

	l.Clear()
	if diff := cmp.Diff([]string{"a", "b", "c"}, released); diff != "" {
		t.Errorf("release order mismatch (-want +got):\n%s", diff)
	}
}

func makeOwned(released *int, values ...int) (*Owned[*Int], []*Int) {
	l := new(Owned[*Int])
	ints := makeInts(values...)
	for i := len(ints) - 1; i >= 0; i-- {
		ints[i].released = released
		l.PushFront(ints[i])
	}
	return l, ints
}

func TestOwned(t *testing.T) {
	t.Run("clearing the list releases all elements", func(t *testing.T) {
		released := 0
		l, _ := makeOwned(&released, 0, 1, 2)
		l.DeleteAll()
		if released != 3 || !l.Empty() {
			t.Errorf("wrong number of released elements: got=%d want=3", released)
		}
	})

	t.Run("popping transfers ownership to the caller", func(t *testing.T) {
		released := 0
		l, _ := makeOwned(&released, 0, 1)
		x, _ := l.PopFront()
		l.Clear()
		if released != 1 || x.Linked() {
			t.Errorf("wrong number of released elements: got=%d want=1", released)
		}
	})

	t.Run("erasing a range releases its elements", func(t *testing.T) {
		released := 0
		l, ints := makeOwned(&released, 0, 1, 2, 3)
		p, _ := l.Prev(ints[1])
		l.Erase(p, At(ints[3]))
		if released != 2 {
			t.Errorf("wrong number of released elements: got=%d want=2", released)
		}
		assertList(t, &l.Intrusive, 0, 3)
	})

	t.Run("removing elements matching a predicate releases them", func(t *testing.T) {
		released := 0
		l, _ := makeOwned(&released, 1, 2, 3, 4, 5)
		n := l.RemoveIf(func(x *Int) bool { return x.Value%2 != 0 })
		if n != 3 || released != 3 {
			t.Errorf("wrong number of removed elements: got=%d released=%d want=3", n, released)
		}
		assertList(t, &l.Intrusive, 2, 4)
	})

	t.Run("moving a list releases the previous elements", func(t *testing.T) {
		released := 0
		a, _ := makeOwned(&released, 0, 1)
		b, _ := makeOwned(nil, 2)
		a.MoveFrom(b)
		if released != 2 {
			t.Errorf("wrong number of released elements: got=%d want=2", released)
		}
		assertList(t, &a.Intrusive, 2)
		assertList(t, &b.Intrusive)
	})

	t.Run("extracted elements are owned by the new list", func(t *testing.T) {
		released := 0
		l, ints := makeOwned(&released, 0, 1, 2)
		p, _ := l.Prev(ints[1])
		x := l.Extract(p, l.End())
		l.Append(new(Owned[*Int]))
		x.Prepend(l)
		assertList(t, &x.Intrusive, 0, 1, 2)
		x.Clear()
		if released != 3 {
			t.Errorf("wrong number of released elements: got=%d want=3", released)
		}
	})
}
