package script

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/segmentio/intrusive/container/circular"
	"github.com/segmentio/intrusive/container/list"
	"github.com/segmentio/intrusive/container/slist"
)

// sequence is the set of operations supported by all kinds of lists, the
// other operations are exposed through optional interfaces.
type sequence interface {
	pushFront(int)
	pushBack(int)
	popFront() (int, bool)
	reverse()
	removeIf(func(int) bool)
	values() []int
	clear()
}

type backPopper interface{ popBack() (int, bool) }

type sorter interface{ sort(func(int, int) int) }

type shifter interface{ shift() }

func newSequence(kind string) (sequence, error) {
	switch kind {
	case "", "list":
		return new(doubly), nil
	case "slist":
		return new(singly), nil
	case "ring":
		return new(ring), nil
	default:
		return nil, errors.Errorf("unknown kind of list %q", kind)
	}
}

type doubly struct{ list.List[int] }

func (l *doubly) pushFront(v int) { l.PushFront(v) }
func (l *doubly) pushBack(v int) { l.PushBack(v) }
func (l *doubly) popFront() (int, bool) { return l.PopFront() }
func (l *doubly) popBack() (int, bool) { return l.PopBack() }
func (l *doubly) sort(cmp func(int, int) int) { l.Sort(cmp) }
func (l *doubly) reverse() { l.Reverse() }
func (l *doubly) removeIf(pred func(int) bool) { l.RemoveIf(pred) }
func (l *doubly) values() []int { return collect(l.All()) }
func (l *doubly) clear() { l.Clear() }

type singly struct{ slist.TailList[int] }

func (l *singly) pushFront(v int) { l.PushFront(v) }
func (l *singly) pushBack(v int) { l.PushBack(v) }
func (l *singly) popFront() (int, bool) { return l.PopFront() }
func (l *singly) sort(cmp func(int, int) int) { l.Sort(cmp) }
func (l *singly) reverse() { l.Reverse() }
func (l *singly) values() []int { return collect(l.All()) }
func (l *singly) clear() { l.Clear() }

func (l *singly) removeIf(pred func(int) bool) {
	kept := new(slist.TailList[int])
	for {
		v, ok := l.PopFront()
		if !ok {
			break
		}
		if !pred(v) {
			kept.PushBack(v)
		}
	}
	l.Append(kept)
}

type node struct {
	list.Link[*node]
	value int
}

type ring struct{ circular.List[*node] }

func (r *ring) pushFront(v int) { r.PushFront(&node{value: v}) }
func (r *ring) pushBack(v int) { r.PushBack(&node{value: v}) }
func (r *ring) shift() { r.Shift() }
func (r *ring) reverse() { r.Reverse() }
func (r *ring) clear() { r.DeleteAll() }

func (r *ring) popFront() (int, bool) {
	n, ok := r.PopFront()
	if !ok {
		return 0, false
	}
	return n.value, true
}

func (r *ring) popBack() (int, bool) {
	n, ok := r.PopBack()
	if !ok {
		return 0, false
	}
	return n.value, true
}

func (r *ring) removeIf(pred func(int) bool) {
	for n := range r.All() {
		if pred(n.value) {
			r.Remove(n)
		}
	}
}

func (r *ring) values() []int {
	v := []int{}
	for n := range r.All() {
		v = append(v, n.value)
	}
	return v
}

func collect(seq iter.Seq[int]) []int {
	v := []int{}
	for x := range seq {
		v = append(v, x)
	}
	return v
}
