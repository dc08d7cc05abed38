package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the document with fixture data if none exists" }
func (*initCmd) Usage() string {
	return `kampala init

  Generates the starting document when the storage slot is empty. Does nothing otherwise.
`
}
func (*initCmd) SetFlags(*flag.FlagSet) {}

func (*initCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	if err := store.Initialize(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Data store ready.")
	return subcommands.ExitSuccess
}

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "destroy the stored document" }
func (*clearCmd) Usage() string {
	return `kampala clear -force

  Deletes the document from the storage slot. Take a backup first.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the deletion.")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Refusing to clear without -force.")
		return subcommands.ExitUsageError
	}
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	if err := store.Clear(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Document cleared.")
	return subcommands.ExitSuccess
}
