// Package script runs scripts of list operations described in TOML documents:
//
//	kind = "list"
//
//	[[step]]
//	op = "push_back"
//	values = [3, 1, 2]
//
//	[[step]]
//	op = "sort"
//	expect = [1, 2, 3]
//
// Each step applies one operation to the list and may assert its content
// afterward.
package script

import (
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/segmentio/intrusive/compare"
	"github.com/sirupsen/logrus"
)

// Script is a sequence of operations applied to a list.
type Script struct {
	// Kind of list the operations are applied to: "list" (doubly linked,
	// the default), "slist" (singly linked with a tail pointer) or "ring"
	// (doubly linked ring).
	Kind  string `toml:"kind"`
	Steps []Step `toml:"step"`
}

// Step is an operation of a script.
type Step struct {
	Op     string `toml:"op"`
	Values []int  `toml:"values"`
	// Sort order of the "sort" operation, "asc" (the default) or "desc".
	Order string `toml:"order"`
	// Predicate of the "remove_if" operation: "even", "odd", "lt" or "gt",
	// the last two comparing with Arg.
	Pred string `toml:"pred"`
	Arg  int    `toml:"arg"`
	// When set, the content of the list after the step.
	Expect *[]int `toml:"expect"`
}

// ErrMismatch is returned by Run when the content of the list does not match
// the expectation of a step.
var ErrMismatch = errors.New("list content mismatch")

// ErrUnsupported is returned by Run when an operation is not supported by the
// kind of list of the script.
var ErrUnsupported = errors.New("operation not supported by this kind of list")

// Decode reads a script from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Script, error) {
	s := new(Script)
	md, err := toml.NewDecoder(r).Decode(s)
	if err := checkDecoded(md, err); err != nil {
		return nil, errors.Wrap(err, "decoding script")
	}
	return s, nil
}

// Load reads the script stored in the file at path, like Decode.
func Load(path string) (*Script, error) {
	s := new(Script)
	md, err := toml.DecodeFile(path, s)
	if err := checkDecoded(md, err); err != nil {
		return nil, errors.Wrapf(err, "loading script %s", path)
	}
	return s, nil
}

func checkDecoded(md toml.MetaData, err error) error {
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return errors.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Run applies the steps of s to a new list and returns its final content.
// Steps are logged to logger at debug level.
func (s *Script) Run(logger logrus.FieldLogger) ([]int, error) {
	seq, err := newSequence(s.Kind)
	if err != nil {
		return nil, err
	}
	defer seq.clear()

	for i, step := range s.Steps {
		log := logger.WithFields(logrus.Fields{"step": i, "op": step.Op})
		if err := apply(seq, step); err != nil {
			return nil, errors.Wrapf(err, "step %d (%s)", i, step.Op)
		}
		values := seq.values()
		log.WithField("values", values).Debug("applied")

		if step.Expect != nil && !slices.Equal(*step.Expect, values) {
			return values, errors.Wrapf(ErrMismatch, "step %d (%s): want %v, got %v", i, step.Op, *step.Expect, values)
		}
	}
	return seq.values(), nil
}

func apply(seq sequence, step Step) error {
	switch step.Op {
	case "push_back":
		for _, v := range step.Values {
			seq.pushBack(v)
		}
	case "push_front":
		for _, v := range step.Values {
			seq.pushFront(v)
		}
	case "pop_front":
		if _, ok := seq.popFront(); !ok {
			return errors.New("popping from an empty list")
		}
	case "pop_back":
		b, ok := seq.(backPopper)
		if !ok {
			return errors.Wrap(ErrUnsupported, step.Op)
		}
		if _, ok := b.popBack(); !ok {
			return errors.New("popping from an empty list")
		}
	case "sort":
		s, ok := seq.(sorter)
		if !ok {
			return errors.Wrap(ErrUnsupported, step.Op)
		}
		cmp := compare.Function[int]
		switch step.Order {
		case "", "asc":
		case "desc":
			cmp = compare.Reverse(cmp)
		default:
			return errors.Errorf("unknown sort order %q", step.Order)
		}
		s.sort(cmp)
	case "reverse":
		seq.reverse()
	case "remove_if":
		pred, err := predicate(step.Pred, step.Arg)
		if err != nil {
			return err
		}
		seq.removeIf(pred)
	case "shift":
		r, ok := seq.(shifter)
		if !ok {
			return errors.Wrap(ErrUnsupported, step.Op)
		}
		r.shift()
	case "clear":
		seq.clear()
	default:
		return errors.Errorf("unknown operation %q", step.Op)
	}
	return nil
}

func predicate(name string, arg int) (func(int) bool, error) {
	switch name {
	case "even":
		return func(v int) bool { return v%2 == 0 }, nil
	case "odd":
		return func(v int) bool { return v%2 != 0 }, nil
	case "lt":
		return func(v int) bool { return v < arg }, nil
	case "gt":
		return func(v int) bool { return v > arg }, nil
	default:
		return nil, errors.Errorf("unknown predicate %q", name)
	}
}
