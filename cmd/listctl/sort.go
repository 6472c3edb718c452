package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/segmentio/intrusive/compare"
	"github.com/segmentio/intrusive/container/list"
)

// Sort implements subcommands.Command for the "sort" command.
type Sort struct {
	reverse bool
	unique  bool
}

// Name implements subcommands.Command.
func (*Sort) Name() string {
	return "sort"
}

// Synopsis implements subcommands.Command.
func (*Sort) Synopsis() string {
	return "sorts numbers with a linked list merge sort"
}

// Usage implements subcommands.Command.
func (*Sort) Usage() string {
	return `sort [flags] <number>...
`
}

// SetFlags implements subcommands.Command.
func (s *Sort) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.reverse, "r", false, "sort in descending order.")
	f.BoolVar(&s.unique, "u", false, "drop duplicate numbers.")
}

// Execute implements subcommands.Command.Execute.
func (s *Sort) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	logger := loggerArg(args)

	var numbers list.List[float64]
	for _, arg := range f.Args() {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			logger.WithError(err).WithField("arg", arg).Error("not a number")
			return subcommands.ExitUsageError
		}
		numbers.PushBack(x)
	}

	cmp := compare.Function[float64]
	if s.reverse {
		cmp = compare.Reverse(cmp)
	}
	numbers.Sort(cmp)

	if s.unique {
		for e := numbers.Front(); e != nil; {
			next := e.Next()
			if next != nil && next.Value == e.Value {
				numbers.Remove(next)
				continue
			}
			e = next
		}
	}

	fields := []string{}
	for x := range numbers.All() {
		fields = append(fields, strconv.FormatFloat(x, 'g', -1, 64))
	}
	fmt.Println(strings.Join(fields, " "))
	return subcommands.ExitSuccess
}
