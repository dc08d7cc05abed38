package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	compact bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the document" }
func (*queryCmd) Usage() string {
	return `kampala query [-compact] <jsonpath>

  Examples:
    kampala query '$.settings.currency'
    kampala query '$.debtors[?(@.status == "pending")].name'
    kampala query '$.transactions[0:5].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "compact", false, "Print the result on one line.")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one expression.")
		return subcommands.ExitUsageError
	}
	store, release, err := openStore(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer release()

	text, err := store.ExportData(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	out, err := queryDocument(text, f.Arg(0), !c.compact)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

// queryDocument evaluates expr against the JSON text and renders the match as JSON.
func queryDocument(text, expr string, indent bool) (string, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return "", fmt.Errorf("document is not valid JSON: %w", err)
	}
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", expr, err)
	}
	var out []byte
	if indent {
		out, err = json.MarshalIndent(val, "", "  ")
	} else {
		out, err = json.Marshal(val)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}
