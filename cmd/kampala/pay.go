package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment from a debtor" }
func (*payCmd) Usage() string {
	return `kampala pay <debtor-id> <amount>

  Adds amount to what the debtor has paid and prints the new balance.
`
}
func (*payCmd) SetFlags(*flag.FlagSet) {}

func (*payCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: pay takes a debtor id and an amount.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	d, err := store.RecordDebtorPayment(ctx, f.Arg(0), amount)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (%s): paid %s of %s, balance %s, %s\n",
		d.ID, d.Name, d.AmountPaid.StringFixed(2), d.TotalDebt.StringFixed(2), d.Balance.StringFixed(2), d.Status)
	return subcommands.ExitSuccess
}
