package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata/renderer"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list customer accounts with balances" }
func (*customersCmd) Usage() string {
	return `khata customers

  Lists every customer account with its debit and credit totals and balance.
`
}

func (*customersCmd) SetFlags(f *flag.FlagSet) {}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	accounts, err := b.AllCustomersSummaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading customers: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CustomersMarkdown(accounts))
	return subcommands.ExitSuccess
}
