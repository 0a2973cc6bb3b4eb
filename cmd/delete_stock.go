package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteStockCmd struct {
	id int64
}

func (*deleteStockCmd) Name() string     { return "delete-stock" }
func (*deleteStockCmd) Synopsis() string { return "delete a stock entry" }
func (*deleteStockCmd) Usage() string {
	return `khata delete-stock -id <id>

  Deletes one stock entry. Deleting an unknown identifier is not an error.
`
}

func (c *deleteStockCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the entry to delete")
}

func (c *deleteStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := b.DeleteStock(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting stock entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted stock entry %d\n", c.id)
	return subcommands.ExitSuccess
}
