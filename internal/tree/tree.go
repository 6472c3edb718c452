// Package tree loads hierarchies of named nodes from YAML documents:
//
//	name: root
//	children:
//	  - name: a
//	    children:
//	      - name: a1
//	  - name: b
//
// Nodes are linked with the hierarchy package, the children of a node keep
// the order of the document.
package tree

import (
	"io"
	"iter"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/intrusive/container/hierarchy"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML representation of a node and its descendants.
type Spec struct {
	Name     string `yaml:"name"`
	Children []Spec `yaml:"children,omitempty"`
}

// Node is a named node of a hierarchy.
type Node struct {
	hierarchy.Node[*Node]
	Name string
}

// Build constructs the hierarchy described by spec and returns its root.
func Build(spec Spec) *Node {
	n := &Node{Name: spec.Name}
	for _, child := range spec.Children {
		hierarchy.PushBack(n, Build(child))
	}
	return n
}

// Spec returns the representation of n and its descendants.
func (n *Node) Spec() Spec {
	spec := Spec{Name: n.Name}
	for child := range hierarchy.Children(n) {
		spec.Children = append(spec.Children, child.Spec())
	}
	return spec
}

// Decode reads a hierarchy from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Node, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, errors.Wrap(err, "decoding tree")
	}
	if err := validate(spec, "/"); err != nil {
		return nil, err
	}
	return Build(spec), nil
}

// Load reads the hierarchy stored in the file at path.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading tree")
	}
	defer f.Close()
	n, err := Decode(f)
	return n, errors.Wrapf(err, "loading tree %s", path)
}

// Encode writes the hierarchy rooted at n to w.
func Encode(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n.Spec()); err != nil {
		return errors.Wrap(err, "encoding tree")
	}
	return errors.Wrap(enc.Close(), "encoding tree")
}

func validate(spec Spec, path string) error {
	if spec.Name == "" {
		return errors.Errorf("decoding tree: node at %s has no name", path)
	}
	for i, child := range spec.Children {
		if err := validate(child, path+spec.Name+"/"); err != nil {
			return errors.Wrapf(err, "child %d", i)
		}
	}
	return nil
}

// Orders lists the traversal orders supported by Walk.
var Orders = []string{"breadth", "pre", "depth"}

// Walk returns the nodes of the hierarchy rooted at n in the given order:
// "breadth" visits the nodes level by level, "pre" visits parents before their
// children and "depth" visits children before their parents.
func Walk(n *Node, order string) (iter.Seq[*Node], error) {
	switch order {
	case "breadth":
		return hierarchy.BreadthFirst(n), nil
	case "pre":
		return hierarchy.PreOrder(n), nil
	case "depth":
		return hierarchy.DepthFirst(n), nil
	default:
		return nil, errors.Errorf("unknown traversal order %q", order)
	}
}

// Names returns the names of the nodes of seq.
func Names(seq iter.Seq[*Node]) []string {
	names := []string{}
	for n := range seq {
		names = append(names, n.Name)
	}
	return names
}

// Format renders the hierarchy rooted at n with one node per line, indented by
// depth.
func Format(n *Node) string {
	base := hierarchy.Depth(n)
	b := new(strings.Builder)
	for x := range hierarchy.PreOrder(n) {
		b.WriteString(strings.Repeat("  ", hierarchy.Depth(x)-base))
		b.WriteString(x.Name)
		b.WriteByte('\n')
	}
	return b.String()
}
