package circular

import (
	"os"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/intrusive/container/list"
	"github.com/segmentio/intrusive/container/slist"
	"github.com/segmentio/intrusive/internal/contract"
)

func TestMain(m *testing.M) {
	restore := contract.Configure(contract.WithMode(contract.ModePanic))
	code := m.Run()
	restore()
	os.Exit(code)
}

type (
	dlink = list.Link[*node]
	slink = slist.Link[*node]
)

// node can be linked in both kinds of rings at the same time.
type node struct {
	dlink
	slink
	value    int
	released *[]int
}

func (n *node) Release() {
	if n.released != nil {
		*n.released = append(*n.released, n.value)
	}
}

func makeNodes(released *[]int, values ...int) []*node {
	nodes := make([]*node, len(values))
	for i, v := range values {
		nodes[i] = &node{value: v, released: released}
	}
	return nodes
}

type ring interface {
	Empty() bool
	Front() *node
	Back() *node
	PushFront(*node)
	PushBack(*node)
	PopFront() (*node, bool)
	PopBack() (*node, bool)
	Shift()
	Len() int
	DeleteAll()
	Validate() bool
}

type forwardRing struct{ Forward[*node] }

func (r *forwardRing) all() []int { return valuesOf(r.All()) }

type listRing struct{ List[*node] }

func (r *listRing) all() []int { return valuesOf(r.All()) }

func valuesOf(seq func(func(*node) bool)) []int {
	v := []int{}
	for n := range seq {
		v = append(v, n.value)
	}
	return v
}

func TestRings(t *testing.T) {
	rings := []struct {
		name string
		make func() (ring, func() []int)
	}{
		{
			name: "list",
			make: func() (ring, func() []int) { r := new(listRing); return r, r.all },
		},
		{
			name: "forward",
			make: func() (ring, func() []int) { r := new(forwardRing); return r, r.all },
		},
	}

	tests := []struct {
		scenario string
		function func(*testing.T, ring, func() []int)
	}{
		{
			scenario: "the zero-value is a valid empty ring",
			function: testRingZeroValue,
		},

		{
			scenario: "pushing at both ends derives the front from the tail",
			function: testRingPush,
		},

		{
			scenario: "popping from both ends moves the tail",
			function: testRingPop,
		},

		{
			scenario: "shifting rotates the ring by one position",
			function: testRingShift,
		},

		{
			scenario: "deleting all elements releases them once from front to back",
			function: testRingDeleteAll,
		},
	}

	for _, r := range rings {
		t.Run(r.name, func(t *testing.T) {
			for _, test := range tests {
				t.Run(test.scenario, func(t *testing.T) {
					ring, all := r.make()
					test.function(t, ring, all)
				})
			}
		})
	}
}

func assertRing(t *testing.T, r ring, all func() []int, v ...int) {
	t.Helper()

	if v == nil {
		v = []int{}
	}
	if !r.Validate() {
		t.Error("ring does not validate")
		return
	}
	if diff := cmp.Diff(v, all()); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
	if n := r.Len(); n != len(v) {
		t.Errorf("ring length mismatch: want=%d got=%d", len(v), n)
	}
	if r.Empty() != (len(v) == 0) {
		t.Errorf("ring emptiness mismatch: want=%t got=%t", len(v) == 0, r.Empty())
	}
	if len(v) != 0 && (r.Front().value != v[0] || r.Back().value != v[len(v)-1]) {
		t.Errorf("wrong ends of the ring: front=%d back=%d", r.Front().value, r.Back().value)
	}
}

func testRingZeroValue(t *testing.T, r ring, all func() []int) {
	assertRing(t, r, all)
	if r.Front() != nil || r.Back() != nil {
		t.Error("empty ring has elements")
	}
	if _, ok := r.PopFront(); ok {
		t.Error("popping the front of an empty ring found an element")
	}
	if _, ok := r.PopBack(); ok {
		t.Error("popping the back of an empty ring found an element")
	}
	r.Shift()
	r.DeleteAll()
	assertRing(t, r, all)
}

func testRingPush(t *testing.T, r ring, all func() []int) {
	nodes := makeNodes(nil, 0, 1, 2, 3)
	r.PushFront(nodes[1])
	assertRing(t, r, all, 1)
	r.PushBack(nodes[2])
	r.PushFront(nodes[0])
	r.PushBack(nodes[3])
	assertRing(t, r, all, 0, 1, 2, 3)
}

func testRingPop(t *testing.T, r ring, all func() []int) {
	for _, n := range makeNodes(nil, 0, 1, 2, 3) {
		r.PushBack(n)
	}

	back, ok := r.PopBack()
	if !ok || back.value != 3 {
		t.Fatal("popping the back did not return the last element")
	}
	assertRing(t, r, all, 0, 1, 2)

	front, ok := r.PopFront()
	if !ok || front.value != 0 {
		t.Fatal("popping the front did not return the first element")
	}
	assertRing(t, r, all, 1, 2)

	r.PopBack()
	r.PopBack()
	assertRing(t, r, all)

	r.PushBack(back)
	r.PushFront(front)
	assertRing(t, r, all, 0, 3)
}

func testRingShift(t *testing.T, r ring, all func() []int) {
	for _, n := range makeNodes(nil, 0, 1, 2) {
		r.PushBack(n)
	}
	r.Shift()
	assertRing(t, r, all, 1, 2, 0)
	r.Shift()
	r.Shift()
	assertRing(t, r, all, 0, 1, 2)
}

func testRingDeleteAll(t *testing.T, r ring, all func() []int) {
	var released []int
	nodes := makeNodes(&released, 0, 1, 2, 3)
	for _, n := range nodes {
		r.PushBack(n)
	}
	r.DeleteAll()
	assertRing(t, r, all)
	if diff := cmp.Diff([]int{0, 1, 2, 3}, released); diff != "" {
		t.Errorf("release mismatch (-want +got):\n%s", diff)
	}
	for _, n := range nodes {
		if n.ListLink().Linked() || n.SListLink().Linked() {
			t.Errorf("node %d still linked after deletion", n.value)
		}
	}
}

func TestListRemoveAndReverse(t *testing.T) {
	r := new(List[*node])
	nodes := makeNodes(nil, 0, 1, 2, 3, 4)
	for _, n := range nodes {
		r.PushBack(n)
	}

	r.Remove(nodes[4])
	r.Remove(nodes[0])
	r.Remove(nodes[2])
	if !r.Validate() {
		t.Fatal("ring does not validate")
	}
	if diff := cmp.Diff([]int{1, 3}, valuesOf(r.All())); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}

	r.PushBack(nodes[4])
	r.PushFront(nodes[0])
	r.Reverse()
	if !r.Validate() {
		t.Fatal("reversed ring does not validate")
	}
	if diff := cmp.Diff([]int{4, 3, 1, 0}, valuesOf(r.All())); diff != "" {
		t.Errorf("reversed ring mismatch (-want +got):\n%s", diff)
	}
	backward := valuesOf(r.Backward())
	slices.Reverse(backward)
	if diff := cmp.Diff([]int{4, 3, 1, 0}, backward); diff != "" {
		t.Errorf("backward ring mismatch (-want +got):\n%s", diff)
	}
}

func TestListRemoveWhileRanging(t *testing.T) {
	r := new(List[*node])
	for _, n := range makeNodes(nil, 0, 1, 2, 3, 4) {
		r.PushBack(n)
	}
	for n := range r.All() {
		if n.value%2 == 0 {
			r.Remove(n)
		}
	}
	if diff := cmp.Diff([]int{1, 3}, valuesOf(r.All())); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
}

func TestListRemoveForeignElement(t *testing.T) {
	r := new(List[*node])
	r.PushBack(&node{value: 1})
	defer func() {
		if recover() == nil {
			t.Error("removing an element of another ring did not panic")
		}
	}()
	other := new(List[*node])
	x := &node{value: 2}
	other.PushBack(x)
	r.Remove(x)
}

func TestForwardRemove(t *testing.T) {
	r := new(Forward[*node])
	nodes := makeNodes(nil, 0, 1, 2)
	for _, n := range nodes {
		r.PushBack(n)
	}
	if !r.Remove(nodes[2]) {
		t.Fatal("removing the back of the ring failed")
	}
	if r.Remove(nodes[2]) {
		t.Error("removing an element twice succeeded")
	}
	if r.Back() != nodes[1] {
		t.Errorf("wrong back after removal: got=%d want=1", r.Back().value)
	}
	r.Remove(nodes[0])
	r.Remove(nodes[1])
	if !r.Empty() {
		t.Error("ring is not empty after removing all elements")
	}
}

func TestRingsShareNodes(t *testing.T) {
	a := new(List[*node])
	b := new(Forward[*node])
	for _, n := range makeNodes(nil, 0, 1, 2) {
		a.PushBack(n)
		b.PushFront(n)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, valuesOf(a.All())); diff != "" {
		t.Errorf("list ring mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 1, 0}, valuesOf(b.All())); diff != "" {
		t.Errorf("forward ring mismatch (-want +got):\n%s", diff)
	}
}
