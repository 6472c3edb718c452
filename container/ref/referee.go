package ref

import "github.com/segmentio/intrusive/container/list"

// Referee is embedded in objects which may be referenced by Ref values. It
// keeps track of the references to the object, regardless of their type, so
// they can be nulled when the object goes away:
//
//	type Object struct {
//		ref.Referee
//		Name string
//	}
//
//	func (obj *Object) Release() {
//		obj.Referee.Release()
//	}
//
// The zero-value is a referee with no references.
type Referee struct {
	refs list.Intrusive[*anchor]
}

// Registry returns r. The method is promoted to the types embedding a Referee,
// which makes them satisfy Referable.
func (r *Referee) Registry() *Referee { return r }

// Refs returns the number of references registered with r.
func (r *Referee) Refs() int { return r.refs.Len() }

// KillRefs nulls every reference registered with r and unregisters them.
// References registered afterward are tracked as usual.
func (r *Referee) KillRefs() {
	for {
		a, ok := r.refs.PopFront()
		if !ok {
			break
		}
		a.ref.zap()
		a.owner = nil
	}
}

// Release is the teardown path of objects embedding a Referee, it kills all
// references to the object.
func (r *Referee) Release() { r.KillRefs() }

// Referable is the constraint satisfied by the pointer types of objects
// embedding a Referee.
type Referable interface {
	comparable
	Registry() *Referee
}

// zapper is implemented by the references, so the referee can null them
// without knowing their type.
type zapper interface {
	zap()
}

type anchor struct {
	list.Link[*anchor]
	owner *Referee
	ref   zapper
}

// Ref is a weak reference to an object embedding a Referee. The reference is
// nulled when the object kills its references.
//
// Refs must not be copied, use Clone or Set to create new references to the
// same object.
//
// The zero-value is a null reference.
type Ref[T Referable] struct {
	anchor anchor
	target T
}

// NewRef returns a reference to target.
func NewRef[T Referable](target T) *Ref[T] {
	r := new(Ref[T])
	r.Set(target)
	return r
}

// Set makes r refer to target, registering it with the referee of the target.
// Setting r to the zero-value of T nulls it.
func (r *Ref[T]) Set(target T) {
	r.Clear()
	var zero T
	if target == zero {
		return
	}
	owner := target.Registry()
	r.target = target
	r.anchor.owner, r.anchor.ref = owner, r
	owner.refs.PushBack(&r.anchor)
}

// Get returns the object that r refers to, or the zero-value of T if r is null.
func (r *Ref[T]) Get() T { return r.target }

// Valid returns true if r refers to an object.
func (r *Ref[T]) Valid() bool { return r.anchor.owner != nil }

// Clone returns a new reference to the object that r refers to.
func (r *Ref[T]) Clone() *Ref[T] { return NewRef(r.target) }

// Clear unregisters r and nulls it.
func (r *Ref[T]) Clear() {
	if owner := r.anchor.owner; owner != nil {
		owner.refs.Remove(&r.anchor)
		r.anchor.owner = nil
		r.zap()
	}
}

func (r *Ref[T]) zap() {
	var zero T
	r.target = zero
}
