package ref

import (
	"math"
	"os"
	"testing"

	"github.com/segmentio/intrusive/internal/contract"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	restore := contract.Configure(contract.WithMode(contract.ModePanic))
	code := m.Run()
	restore()
	os.Exit(code)
}

type object struct {
	Referee
	PtrList[*object]
	name     string
	released int
}

// Release kills both kinds of references to the object.
func (obj *object) Release() {
	obj.released++
	obj.Referee.Release()
	obj.PtrList.Release()
}

func TestPtrGroup(t *testing.T) {
	require := require.New(t)

	obj := &object{name: "a"}
	p := NewPtr(obj)
	q := p.Clone()
	r := q.Clone()
	require.Equal(3, p.Len())
	require.Same(obj, r.Get())

	r.Drop()
	require.False(r.Valid())
	require.Nil(r.Get())
	require.Equal(2, p.Len())
	require.Equal(0, r.Len())
	require.Equal(0, obj.released, "dropping a handle released the value")

	q.Kill()
	require.Equal(1, obj.released)
	for _, x := range []*Ptr[*object]{p, q} {
		require.False(x.Valid())
		require.Nil(x.Get())
		require.False(x.ListLink().Linked())
	}

	q.Kill()
	require.Equal(1, obj.released, "killing a null handle released the value again")
	require.False(p.Clone().Valid())
}

func TestPtrLastHandle(t *testing.T) {
	p := NewPtr(42)
	require.Equal(t, 1, p.Len())
	p.Drop()
	require.False(t, p.Valid())
	require.Equal(t, 0, p.Get())
}

func TestPtrList(t *testing.T) {
	require := require.New(t)

	a := &object{name: "a"}
	b := &object{name: "b"}

	var x, y PtrLink[*object]
	x.Set(&a.PtrList, a)
	y.Set(&a.PtrList, a)
	require.Equal(2, a.PtrList.Len())
	require.Same(a, x.Get())

	y.Set(&b.PtrList, b)
	require.Equal(1, a.PtrList.Len())
	require.Equal(1, b.PtrList.Len())

	a.Release()
	require.False(x.Valid())
	require.Nil(x.Get())
	require.Zero(a.PtrList.Len())
	require.Same(b, y.Get())

	y.Clear()
	require.Zero(b.PtrList.Len())
	x.Clear()
}

func TestRefNulling(t *testing.T) {
	require := require.New(t)

	obj := &object{name: "R"}
	r1 := NewRef(obj)
	r2 := r1.Clone()
	require.Equal(2, obj.Refs())
	require.Same(obj, r1.Get())
	require.Same(obj, r2.Get())

	obj.Release()
	require.Nil(r1.Get())
	require.Nil(r2.Get())
	require.False(r1.Valid())
	require.False(r2.Valid())
	require.Zero(obj.Refs())

	// Clearing a reference which was already nulled is a no-op.
	r1.Clear()
	require.Zero(obj.Refs())
}

func TestRefAssignmentReregisters(t *testing.T) {
	require := require.New(t)

	a := &object{name: "a"}
	b := &object{name: "b"}

	var r Ref[*object]
	r.Set(a)
	require.Equal(1, a.Refs())

	r.Set(b)
	require.Zero(a.Refs())
	require.Equal(1, b.Refs())

	a.KillRefs()
	require.Same(b, r.Get())

	r.Set(nil)
	require.False(r.Valid())
	require.Zero(b.Refs())

	r.Set(a)
	require.Equal(1, a.Refs(), "references registered after killing are tracked")
	require.Nil(new(Ref[*object]).Clone().Get())
}

func TestSlots(t *testing.T) {
	require := require.New(t)

	var s Slots[string]
	_, ok := s.Get(Handle{})
	require.False(ok, "the zero handle resolved")

	a := s.Insert("a")
	b := s.Insert("b")
	require.Equal(2, s.Len())

	v, ok := s.Get(a)
	require.True(ok)
	require.Equal("a", v)

	v, ok = s.Remove(a)
	require.True(ok)
	require.Equal("a", v)
	_, ok = s.Remove(a)
	require.False(ok)
	_, ok = s.Get(a)
	require.False(ok, "a removed value resolved")

	c := s.Insert("c")
	require.Equal(a.Index, c.Index, "the free slot was not reused")
	require.NotEqual(a.Generation, c.Generation)
	_, ok = s.Get(a)
	require.False(ok, "a stale handle resolved to the new value of its slot")

	seen := map[Handle]string{}
	for h, v := range s.All() {
		seen[h] = v
	}
	require.Equal(map[Handle]string{b: "b", c: "c"}, seen)
	require.Equal(2, s.Len())
}

func TestSlotsRetireExhaustedGenerations(t *testing.T) {
	require := require.New(t)

	var s Slots[string]
	a := s.Insert("a")
	s.slots[a.Index].generation = math.MaxUint32 - 2
	a.Generation = math.MaxUint32 - 2

	// The slot reaches the last generation a value can be stored with.
	_, ok := s.Remove(a)
	require.True(ok)
	b := s.Insert("b")
	require.Equal(a.Index, b.Index)
	require.Equal(uint32(math.MaxUint32), b.Generation)

	_, ok = s.Remove(b)
	require.True(ok)
	c := s.Insert("c")
	require.NotEqual(b.Index, c.Index, "a slot with an exhausted generation was reused")

	for _, h := range []Handle{{}, a, b, {Index: b.Index}} {
		_, ok := s.Get(h)
		require.False(ok, "stale handle %+v resolved", h)
	}
	v, ok := s.Get(c)
	require.True(ok)
	require.Equal("c", v)
	require.Equal(1, s.Len())
}
