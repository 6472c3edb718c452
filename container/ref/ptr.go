// Package ref implements references which are nulled when the object they
// refer to goes away.
//
// The package offers three ways of tracking the holders of a reference. Ptr
// handles form a group: every copy of a handle joins the ring of the original,
// and killing any of them releases the pointee and nulls the whole group.
// PtrList is embedded in the referenced object, which nulls the PtrLink values
// registered with it when it goes away. Referee and Ref do the same without
// the referenced object knowing the types of its references.
//
// Slots is the alternative to intrusive registries: objects live in the slots
// of an arena and are referenced by handles carrying a generation number, so
// handles to removed objects resolve to nothing.
//
// None of the types of this package are safe for concurrent use.
package ref

import (
	"github.com/segmentio/intrusive/container"
	"github.com/segmentio/intrusive/container/list"
)

// Ptr is a handle to a value shared by a group of handles. The value is not
// owned by the handles until Kill is called on one of them.
type Ptr[T any] struct {
	link  list.Link[*Ptr[T]]
	value T
	valid bool
}

// ListLink satisfies list.Linker, the handles of a group form a ring.
func (p *Ptr[T]) ListLink() *list.Link[*Ptr[T]] { return &p.link }

// NewPtr returns a handle to value, alone in its group.
func NewPtr[T any](value T) *Ptr[T] {
	p := &Ptr[T]{value: value, valid: true}
	list.LinkOf(p).Init()
	return p
}

// Clone returns a new handle to the value of p, in the same group as p.
// Cloning a handle which was dropped or killed returns an invalid handle.
func (p *Ptr[T]) Clone() *Ptr[T] {
	c := &Ptr[T]{}
	if p.valid {
		c.value, c.valid = p.value, true
		p.link.InsertAfter(list.LinkOf(c))
	}
	return c
}

// Get returns the value that p refers to, or the zero-value of T if p was
// dropped or killed.
func (p *Ptr[T]) Get() T { return p.value }

// Valid returns true if p still refers to a value.
func (p *Ptr[T]) Valid() bool { return p.valid }

// Drop removes p from its group and nulls it. The value is not released, the
// other handles of the group are left untouched.
func (p *Ptr[T]) Drop() {
	if p.valid {
		p.link.Unlink()
		p.null()
	}
}

// Kill releases the value that p refers to (see container.Releaser) then nulls
// every handle of the group.
func (p *Ptr[T]) Kill() {
	if !p.valid {
		return
	}
	container.Release(p.value)
	for {
		n := p.link.Next()
		if n == &p.link {
			break
		}
		n.Unlink().Value().null()
	}
	p.link.Unlink()
	p.null()
}

// Len returns the number of handles in the group of p, zero if p is invalid.
func (p *Ptr[T]) Len() int {
	if !p.valid {
		return 0
	}
	n := 1
	for x := p.link.Next(); x != &p.link; x = x.Next() {
		n++
	}
	return n
}

func (p *Ptr[T]) null() {
	var zero T
	p.value, p.valid = zero, false
}
