package ref

import "github.com/segmentio/intrusive/container/list"

// PtrList is embedded in objects which are referenced by PtrLink values. The
// object must call Release when it goes away, which nulls every link
// registered with the list.
//
// The zero-value is a valid, empty list.
type PtrList[T any] struct {
	links list.Intrusive[*PtrLink[T]]
}

// Len returns the number of links registered with l.
func (l *PtrList[T]) Len() int { return l.links.Len() }

// Release nulls and unregisters every link of l.
func (l *PtrList[T]) Release() {
	for {
		link, ok := l.links.PopFront()
		if !ok {
			break
		}
		link.null()
	}
}

// PtrLink is a reference to a value of type T which embeds a PtrList.
//
// The zero-value is a null link.
type PtrLink[T any] struct {
	link   list.Link[*PtrLink[T]]
	target T
	list   *PtrList[T]
}

// ListLink satisfies list.Linker.
func (p *PtrLink[T]) ListLink() *list.Link[*PtrLink[T]] { return &p.link }

// Set makes p refer to target, registering p with the list embedded in the
// target. The previous target of p is forgotten.
func (p *PtrLink[T]) Set(l *PtrList[T], target T) {
	p.Clear()
	p.target, p.list = target, l
	l.links.PushBack(p)
}

// Get returns the target of p, or the zero-value of T if p is null.
func (p *PtrLink[T]) Get() T { return p.target }

// Valid returns true if p refers to a value.
func (p *PtrLink[T]) Valid() bool { return p.list != nil }

// Clear unregisters p from the list of its target and nulls it.
func (p *PtrLink[T]) Clear() {
	if p.list != nil {
		p.list.links.Remove(p)
		p.null()
	}
}

func (p *PtrLink[T]) null() {
	var zero T
	p.target, p.list = zero, nil
}
