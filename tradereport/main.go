// Command tradereport reports on the trading performance of an account
// history export.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradereport/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// completes the command line and exits when run by the shell
	cmd.Completion(commander).Complete("tradereport")

	flag.Parse()

	// unknown commands may be extensions
	if args := flag.Args(); len(args) > 0 && !registered(commander, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
