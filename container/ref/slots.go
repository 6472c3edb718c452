package ref

import (
	"iter"
	"math"
)

// Handle refers to a value stored in Slots. Handles remain safe to use after
// the value was removed: they resolve to nothing, even if the slot was reused.
//
// The zero-value is a handle which never resolves.
type Handle struct {
	Index      uint32
	Generation uint32
}

// Slots is an arena of values referenced by generation-counted handles.
//
// The zero-value is a valid, empty arena.
type Slots[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

type slot[T any] struct {
	value      T
	generation uint32
	used       bool
}

// Insert stores value in a free slot and returns a handle to it.
func (s *Slots[T]) Insert(value T) Handle {
	var i uint32
	if n := len(s.free); n > 0 {
		i, s.free = s.free[n-1], s.free[:n-1]
	} else {
		i = uint32(len(s.slots))
		s.slots = append(s.slots, slot[T]{})
	}
	x := &s.slots[i]
	x.value, x.used = value, true
	x.generation++
	s.count++
	return Handle{Index: i, Generation: x.generation}
}

// Get returns the value that h refers to. The boolean is false if the value
// was removed.
func (s *Slots[T]) Get(h Handle) (value T, ok bool) {
	if x := s.lookup(h); x != nil {
		return x.value, true
	}
	return value, false
}

// Remove removes the value that h refers to and returns it. Handles to the
// value resolve to nothing afterward. The boolean is false if the value had
// already been removed.
//
// A slot whose generation counter is exhausted is retired instead of being
// reused, so generations never wrap around to those of stale handles.
func (s *Slots[T]) Remove(h Handle) (value T, ok bool) {
	x := s.lookup(h)
	if x == nil {
		return value, false
	}
	value = x.value
	if x.generation == math.MaxUint32 {
		*x = slot[T]{generation: x.generation}
	} else {
		*x = slot[T]{generation: x.generation + 1}
		s.free = append(s.free, h.Index)
	}
	s.count--
	return value, true
}

// Len returns the number of values stored in s.
func (s *Slots[T]) Len() int { return s.count }

// All returns a sequence of the handles and values stored in s, in slot order.
func (s *Slots[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range s.slots {
			if x := &s.slots[i]; x.used {
				if !yield(Handle{Index: uint32(i), Generation: x.generation}, x.value) {
					return
				}
			}
		}
	}
}

func (s *Slots[T]) lookup(h Handle) *slot[T] {
	if int(h.Index) < len(s.slots) {
		if x := &s.slots[h.Index]; x.used && x.generation == h.Generation {
			return x
		}
	}
	return nil
}
