package main

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/google/subcommands"
	"github.com/segmentio/intrusive/internal/tree"
)

// Tree implements subcommands.Command for the "tree" command.
type Tree struct {
	order string
}

// Name implements subcommands.Command.
func (*Tree) Name() string {
	return "tree"
}

// Synopsis implements subcommands.Command.
func (*Tree) Synopsis() string {
	return "walks hierarchies described in YAML documents"
}

// Usage implements subcommands.Command.
func (*Tree) Usage() string {
	return `tree [flags] <tree.yaml>

Without -order, the hierarchy is printed with one node per line.
`
}

// SetFlags implements subcommands.Command.
func (t *Tree) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.order, "order", "", "traversal order: "+strings.Join(tree.Orders, ", ")+".")
}

// Execute implements subcommands.Command.Execute.
func (t *Tree) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if t.order != "" && !slices.Contains(tree.Orders, t.order) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	logger := loggerArg(args).WithField("tree", f.Arg(0))

	root, err := tree.Load(f.Arg(0))
	if err != nil {
		logger.WithError(err).Error("loading failed")
		return subcommands.ExitFailure
	}
	if t.order == "" {
		fmt.Print(tree.Format(root))
		return subcommands.ExitSuccess
	}
	seq, err := tree.Walk(root, t.order)
	if err != nil {
		logger.WithError(err).Error("walking failed")
		return subcommands.ExitFailure
	}
	fmt.Println(strings.Join(tree.Names(seq), " "))
	return subcommands.ExitSuccess
}
