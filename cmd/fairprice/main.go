// Command fairprice computes fair buy prices locally and manages saved
// analyses on a fairprice server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

// commands lists the subcommands by group
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"valuation", &computeCmd{}},
	{"analyses", &saveCmd{}},
	{"analyses", &listCmd{}},
	{"folders", &foldersCmd{}},
	{"folders", &mkfolderCmd{}},
	{"folders", &exportCmd{}},
}

func main() {
	name := path.Base(os.Args[0])

	// Answers shell completion requests and exits; a no-op otherwise
	completion(flag.CommandLine).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range commands {
		commander.Register(c.cmd, c.group)
	}

	flag.Parse()
	setupLogger()
	os.Exit(int(commander.Execute(context.Background())))
}
