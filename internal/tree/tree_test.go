package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/intrusive/container/hierarchy"
)

const doc = `
name: root
children:
  - name: a
    children:
      - name: a1
      - name: a2
  - name: b
`

func decode(t *testing.T) *Node {
	t.Helper()
	root, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestWalk(t *testing.T) {
	root := decode(t)
	want := map[string][]string{
		"breadth": {"root", "a", "b", "a1", "a2"},
		"pre":     {"root", "a", "a1", "a2", "b"},
		"depth":   {"a1", "a2", "a", "b", "root"},
	}
	for _, order := range Orders {
		t.Run(order, func(t *testing.T) {
			seq, err := Walk(root, order)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want[order], Names(seq)); diff != "" {
				t.Errorf("traversal mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Walk(root, "random"); err == nil {
		t.Error("walking in an unknown order succeeded")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		scenario string
		doc      string
	}{
		{
			scenario: "unknown keys are rejected",
			doc:      "name: root\nsize: 3\n",
		},

		{
			scenario: "nodes must have a name",
			doc:      "name: root\nchildren:\n  - children: []\n",
		},

		{
			scenario: "malformed documents are rejected",
			doc:      "name: [root\n",
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(test.doc)); err == nil {
				t.Error("decoding succeeded")
			}
		})
	}
}

func TestEncode(t *testing.T) {
	root := decode(t)
	b := new(bytes.Buffer)
	if err := Encode(b, root); err != nil {
		t.Fatal(err)
	}
	clone, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(root.Spec(), clone.Spec()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	root := decode(t)
	want := "root\n  a\n    a1\n    a2\n  b\n"
	if got := Format(root); got != want {
		t.Errorf("wrong rendering:\n%s", got)
	}

	a := hierarchy.FirstChild(root)
	if got := Format(a); got != "a\n  a1\n  a2\n" {
		t.Errorf("wrong rendering of a subtree:\n%s", got)
	}
}
