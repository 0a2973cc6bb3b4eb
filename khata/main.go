package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hkhan/khata/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion over the registered subcommand names.
	completion := &complete.Command{Sub: map[string]*complete.Command{}}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		completion.Sub[c.Name()] = &complete.Command{}
	})
	completion.Complete("khata")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
