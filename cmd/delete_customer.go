package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCustomerCmd struct {
	id int64
}

func (*deleteCustomerCmd) Name() string     { return "delete-customer" }
func (*deleteCustomerCmd) Synopsis() string { return "delete a customer and its transactions" }
func (*deleteCustomerCmd) Usage() string {
	return `khata delete-customer -id <id>

  Deletes the customer account and every transaction recorded against it.
`
}

func (c *deleteCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the customer to delete")
}

func (c *deleteCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := b.DeleteCustomer(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting customer: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted customer %d and its transactions\n", c.id)
	return subcommands.ExitSuccess
}
