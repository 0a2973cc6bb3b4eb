package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata/renderer"
)

type customerCmd struct {
	id int64
}

func (*customerCmd) Name() string     { return "customer" }
func (*customerCmd) Synopsis() string { return "display one customer's account and history" }
func (*customerCmd) Usage() string {
	return `khata customer -id <id>

  Displays the customer's details, account summary, and transaction history
  with a running balance, newest first.
`
}

func (c *customerCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the customer")
}

func (c *customerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	customer, err := b.CustomerByID(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading customer: %v\n", err)
		return subcommands.ExitFailure
	}
	if customer == nil {
		fmt.Fprintf(os.Stderr, "customer %d not found\n", c.id)
		return subcommands.ExitFailure
	}

	summary, err := b.CustomerSummary(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	history, err := b.History(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing history: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CustomerMarkdown(customer, summary))
	printMarkdown(renderer.HistoryMarkdown(customer, history))
	return subcommands.ExitSuccess
}
