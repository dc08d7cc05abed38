package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type txCmd struct {
	date     string
	typ      string
	category string
	head     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `kampala tx [-date YYYY-MM-DD] [-type sale|expense|payment|refund] [-category <name>] [-head N]
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Only transactions on this date.")
	f.StringVar(&c.typ, "type", "", "Only transactions of this type.")
	f.StringVar(&c.category, "category", "", "Only transactions in this category.")
	f.IntVar(&c.head, "head", 20, "Show at most this many rows. 0 shows all.")
}

func (c *txCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	txs, err := store.ListTransactions(ctx, models.TransactionFilter{
		Date:     c.date,
		Type:     c.typ,
		Category: c.category,
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	settings, err := store.GetSettings(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(transactionTable(txs, settings.Currency, c.head))
	return subcommands.ExitSuccess
}

// transactionTable renders up to head transactions as a markdown table.
func transactionTable(txs []models.Transaction, currency string, head int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Transactions (%d)\n\n", len(txs))
	if len(txs) == 0 {
		sb.WriteString("_No transactions._\n")
		return sb.String()
	}
	sb.WriteString("| ID | Date | Type | Category | Amount | Method | Recorded by |\n")
	sb.WriteString("|----|------|------|----------|-------:|--------|-------------|\n")
	shown := txs
	if head > 0 && len(shown) > head {
		shown = shown[:head]
	}
	for _, t := range shown {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			t.ID, t.Date, t.Type, t.Category, utils.FormatMoney(t.Amount, currency), t.PaymentMethod, t.RecordedBy)
	}
	if len(shown) < len(txs) {
		fmt.Fprintf(&sb, "\n_%d more not shown._\n", len(txs)-len(shown))
	}
	return sb.String()
}

type addTxCmd struct {
	typ         string
	category    string
	amount      string
	method      string
	description string
	reference   string
	by          string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a transaction" }
func (*addTxCmd) Usage() string {
	return `kampala add-tx -type <type> -amount <amount> -method <method> [-category c] [-desc d] [-ref r] [-by user]

  Records a transaction dated now. With -by, the named user is recorded as its author.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", models.TransactionSale, "Transaction type: sale, expense, payment or refund.")
	f.StringVar(&c.category, "category", "", "Category.")
	f.StringVar(&c.amount, "amount", "", "Amount, e.g. 12.50.")
	f.StringVar(&c.method, "method", models.PaymentCash, "Payment method: cash, card, mobile or glovo.")
	f.StringVar(&c.description, "desc", "", "Description.")
	f.StringVar(&c.reference, "ref", "", "External reference.")
	f.StringVar(&c.by, "by", "", "Username recording the transaction.")
}

func (c *addTxCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	ctx, err = asOperator(ctx, store, c.by)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	tx, err := store.AddTransaction(ctx, models.NewTransaction{
		Type:          c.typ,
		Category:      c.category,
		Description:   c.description,
		Amount:        amount,
		PaymentMethod: c.method,
		Reference:     c.reference,
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s: %s %s on %s at %s\n", tx.ID, tx.Type, tx.Amount.StringFixed(2), tx.Date, tx.Time)
	return subcommands.ExitSuccess
}
