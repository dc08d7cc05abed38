// Command kampala is the operator tool for the Kampala Kuisine data store.
// It works directly on the configured storage slot, next to or instead of the server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&initCmd{}, "store")
	commander.Register(&clearCmd{}, "store")

	commander.Register(&exportCmd{}, "data")
	commander.Register(&importCmd{}, "data")
	commander.Register(&backupCmd{}, "data")
	commander.Register(&restoreCmd{}, "data")
	commander.Register(&queryCmd{}, "data")

	commander.Register(&txCmd{}, "bookkeeping")
	commander.Register(&addTxCmd{}, "bookkeeping")
	commander.Register(&payCmd{}, "bookkeeping")
	commander.Register(&reportCmd{}, "bookkeeping")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
