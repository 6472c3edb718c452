// Package container contains the ownership conventions shared by the
// intrusive containers of the sub-packages.
//
// Containers are split in two families. Non-owning containers (such as
// list.Intrusive or slist.Intrusive) only link and unlink elements; the program
// remains responsible for their lifetime. Owning containers (list.Owned,
// list.List, slist.Owned, hierarchy children...) take exclusive ownership of
// the elements inserted in them and release the elements they drop, exactly
// once. Elements which need to run code when they are released (close files,
// invalidate references, count destructions in tests) implement the Releaser
// interface; elements which do not are simply left to the garbage collector.
//
// Popping an element from an owning container transfers ownership back to the
// caller, the element is not released.
package container

// Releaser is implemented by elements which must be notified when an owning
// container drops them.
type Releaser interface {
	Release()
}

// Release releases v if it implements Releaser.
func Release(v any) {
	if r, ok := v.(Releaser); ok {
		r.Release()
	}
}
