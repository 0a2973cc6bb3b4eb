package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteTxCmd struct {
	id int64
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `khata delete-tx -id <id>

  Deletes one transaction. Deleting an unknown identifier is not an error.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the transaction to delete")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := b.DeleteTransaction(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %d\n", c.id)
	return subcommands.ExitSuccess
}
