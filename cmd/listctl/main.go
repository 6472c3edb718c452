// Command listctl exercises the containers of the module from the command
// line: it runs scripts of list operations, sorts numbers and walks trees.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/segmentio/intrusive/internal/contract"
	"github.com/sirupsen/logrus"
)

var (
	debug  = flag.Bool("debug", false, "enable debug logging.")
	strict = flag.Bool("strict", false, "panic on container contract violations instead of logging them.")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(Run), "")
	subcommands.Register(new(Sort), "")
	subcommands.Register(new(Tree), "")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	mode := contract.ModeLog
	if *strict {
		mode = contract.ModePanic
	}
	restore := contract.Configure(contract.WithMode(mode), contract.WithLogger(logger))
	status := subcommands.Execute(context.Background(), logger)
	restore()
	os.Exit(int(status))
}

// loggerArg extracts the logger passed by main to the commands.
func loggerArg(args []any) logrus.FieldLogger {
	return args[0].(logrus.FieldLogger)
}
