package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/segmentio/intrusive/internal/script"
)

// Run implements subcommands.Command for the "run" command.
type Run struct {
	kind string
}

// Name implements subcommands.Command.
func (*Run) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.
func (*Run) Synopsis() string {
	return "runs scripts of list operations"
}

// Usage implements subcommands.Command.
func (*Run) Usage() string {
	return `run [flags] <script.toml>...
`
}

// SetFlags implements subcommands.Command.
func (r *Run) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.kind, "kind", "", "kind of list overriding the one of the scripts: list, slist or ring.")
}

// Execute implements subcommands.Command.Execute.
func (r *Run) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	logger := loggerArg(args)

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		log := logger.WithField("script", path)
		s, err := script.Load(path)
		if err != nil {
			log.WithError(err).Error("loading failed")
			status = subcommands.ExitFailure
			continue
		}
		if r.kind != "" {
			s.Kind = r.kind
		}
		values, err := s.Run(log)
		if err != nil {
			log.WithError(err).Error("run failed")
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %v\n", path, values)
	}
	return status
}
