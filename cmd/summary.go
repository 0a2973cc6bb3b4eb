package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the stock summary" }
func (*summaryCmd) Usage() string {
	return `khata summary

  Displays the stock aggregated by item name and color: total quantity,
  total value, and average unit price per group.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	rows, err := b.StockSummary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing stock summary: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StockSummaryMarkdown(rows))
	return subcommands.ExitSuccess
}
