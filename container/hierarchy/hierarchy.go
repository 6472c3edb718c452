// Package hierarchy implements trees of intrusive nodes.
//
// Every node of a tree embeds a Node, which links it in the list of children
// of its parent and holds the list of its own children:
//
//	type Object struct {
//		hierarchy.Node[*Object]
//		Name string
//	}
//
// Children are kept in a singly linked list, so appending a child and
// detaching it from its parent are linear in the number of its siblings.
//
// A tree owns its nodes: deleting a node releases its whole subtree (see
// container.Releaser), children before their parents. Trees are not safe for
// concurrent use.
package hierarchy

import (
	"iter"

	"github.com/segmentio/intrusive/container"
	"github.com/segmentio/intrusive/container/list"
	"github.com/segmentio/intrusive/container/slist"
	"github.com/segmentio/intrusive/internal/contract"
)

// Node values must be embedded in the nodes of trees. The type parameter is
// the pointer type of the node.
//
// The zero-value is a node with no parent and no children.
type Node[T slist.Linker[T]] struct {
	slist.Link[T]
	parent   T
	children slist.Owned[T]
}

// HierarchyNode returns n. The method is promoted to types embedding a Node,
// which makes them satisfy Hierarchical.
func (n *Node[T]) HierarchyNode() *Node[T] { return n }

// Hierarchical is the constraint satisfied by the nodes of trees.
type Hierarchical[T slist.Linker[T]] interface {
	comparable
	slist.Linker[T]
	HierarchyNode() *Node[T]
}

// Attach makes child the first child of parent. It is an alias of PushFront.
func Attach[T Hierarchical[T]](parent, child T) { PushFront(parent, child) }

// PushFront makes child the first child of parent. The child must not be
// attached to another parent.
func PushFront[T Hierarchical[T]](parent, child T) {
	setParent(parent, child)
	parent.HierarchyNode().children.PushFront(child)
}

// PushBack makes child the last child of parent. The child must not be
// attached to another parent.
//
// Complexity: O(n) in the number of children of parent
func PushBack[T Hierarchical[T]](parent, child T) {
	setParent(parent, child)
	parent.HierarchyNode().children.PushBack(child)
}

func setParent[T Hierarchical[T]](parent, child T) {
	var zero T
	n := child.HierarchyNode()
	contract.Check(n.parent == zero, "hierarchy: attaching a node which already has a parent")
	contract.Check(child != parent && !IsAncestor(child, parent), "hierarchy: attaching a node under itself")
	n.parent = parent
}

// Detach removes n from the children of its parent and returns it. Detaching
// a node which has no parent is a no-op.
//
// Complexity: O(n) in the number of siblings of n
func Detach[T Hierarchical[T]](n T) T {
	var zero T
	node := n.HierarchyNode()
	if node.parent != zero {
		found := node.parent.HierarchyNode().children.Remove(n)
		contract.Check(found, "hierarchy: node missing from the children of its parent")
		node.parent = zero
	}
	return n
}

// Delete detaches n from its parent and releases its whole subtree, children
// before their parents and n last.
func Delete[T Hierarchical[T]](n T) {
	deleteSubtree(Detach(n))
}

// DeleteChildren releases the subtrees of all children of n, leaving it
// without children.
func DeleteChildren[T Hierarchical[T]](n T) {
	var zero T
	children := &n.HierarchyNode().children
	for {
		child, ok := children.PopFront()
		if !ok {
			break
		}
		child.HierarchyNode().parent = zero
		deleteSubtree(child)
	}
}

func deleteSubtree[T Hierarchical[T]](n T) {
	DeleteChildren(n)
	container.Release(n)
}

// Parent returns the parent of n, or the zero-value of T if n is a root.
func Parent[T Hierarchical[T]](n T) T { return n.HierarchyNode().parent }

// Sibling returns the next sibling of n, or the zero-value of T if n is the
// last child of its parent or a root.
func Sibling[T Hierarchical[T]](n T) (sibling T) {
	if next := n.SListLink().Next(); next != nil {
		// The sentinel of the children list projects to the zero-value.
		sibling = next.Value()
	}
	return sibling
}

// FirstChild returns the first child of n, or the zero-value of T if n has no
// children.
func FirstChild[T Hierarchical[T]](n T) T { return n.HierarchyNode().children.Front() }

// Children returns a sequence of the children of n, in order. The child being
// visited may be detached during the iteration.
func Children[T Hierarchical[T]](n T) iter.Seq[T] { return n.HierarchyNode().children.All() }

// NumChildren returns the number of children of n.
//
// Complexity: O(n) in the number of children
func NumChildren[T Hierarchical[T]](n T) int { return n.HierarchyNode().children.Len() }

// IsLeaf returns true if n has no children.
func IsLeaf[T Hierarchical[T]](n T) bool { return n.HierarchyNode().children.Empty() }

// Depth returns the number of ancestors of n.
func Depth[T Hierarchical[T]](n T) (depth int) {
	for range Ancestors(n) {
		depth++
	}
	return depth
}

// Ancestors returns a sequence of the ancestors of n, from its parent to the
// root of its tree.
func Ancestors[T Hierarchical[T]](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for p := Parent(n); p != zero; p = Parent(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// IsAncestor returns true if a is an ancestor of n.
func IsAncestor[T Hierarchical[T]](a, n T) bool {
	for p := range Ancestors(n) {
		if p == a {
			return true
		}
	}
	return false
}

// Root returns the root of the tree that n belongs to, which is n itself if it
// has no parent.
func Root[T Hierarchical[T]](n T) T {
	for p := range Ancestors(n) {
		n = p
	}
	return n
}

// LastGeneration returns the deepest node reached from n by following first
// children, which is the first node of n's subtree in depth-first order.
func LastGeneration[T Hierarchical[T]](n T) T {
	var zero T
	for c := FirstChild(n); c != zero; c = FirstChild(n) {
		n = c
	}
	return n
}

// PreOrder returns a sequence of the nodes of the subtree of n, parents before
// their children. From each node the walk descends into its first child, or
// skips to the next sibling of the node or of its closest ancestor which has
// one.
//
// The tree must not be modified during the iteration.
func PreOrder[T Hierarchical[T]](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for x := n; x != zero; {
			if !yield(x) {
				return
			}
			if c := FirstChild(x); c != zero {
				x = c
			} else {
				x = skipChildren(x, n)
			}
		}
	}
}

// skipChildren returns the node following the subtree of x in pre-order,
// without leaving the subtree of root.
func skipChildren[T Hierarchical[T]](x, root T) T {
	var zero T
	for x != root {
		if s := Sibling(x); s != zero {
			return s
		}
		x = Parent(x)
	}
	return zero
}

// BreadthFirst returns a sequence of the nodes of the subtree of n in level
// order: n, then its children, then its grandchildren, and so on.
//
// The tree must not be modified during the iteration.
func BreadthFirst[T Hierarchical[T]](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var queue list.List[T]
		for queue.PushBack(n); !queue.Empty(); {
			x, _ := queue.PopFront()
			if !yield(x) {
				return
			}
			for c := range Children(x) {
				queue.PushBack(c)
			}
		}
	}
}

// DepthFirst returns a sequence of the nodes of the subtree of n, children
// before their parents. The walk starts from the last generation of n and, at
// each step, moves to the last generation of the next sibling or up to the
// parent.
//
// The node being visited may be deleted during the iteration, which makes it
// possible to tear down a tree bottom-up.
func DepthFirst[T Hierarchical[T]](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for x := LastGeneration(n); ; {
			var next T
			if x != n {
				if s := Sibling(x); s != zero {
					next = LastGeneration(s)
				} else {
					next = Parent(x)
				}
			}
			if !yield(x) || next == zero {
				return
			}
			x = next
		}
	}
}

// CopyChildren makes deep copies of the children of src and attaches them, in
// the same order, as the last children of dst. Each copy is made by calling
// clone with the original node, which may be of a different type. Children
// attached to the copies by clone are kept, the copied grandchildren are added
// after them.
func CopyChildren[D Hierarchical[D], S Hierarchical[S]](dst D, src S, clone func(S) D) {
	a := dst.HierarchyNode().children.Appender()
	defer a.Close()

	for child := range Children(src) {
		c := clone(child)
		setParent(dst, c)
		a.Append(c)
		CopyChildren(c, child, clone)
	}
}
