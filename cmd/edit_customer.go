package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCustomerCmd struct {
	id      int64
	name    string
	phone   string
	address string
}

func (*editCustomerCmd) Name() string     { return "edit-customer" }
func (*editCustomerCmd) Synopsis() string { return "edit an existing customer" }
func (*editCustomerCmd) Usage() string {
	return `khata edit-customer -id <id> [-name <name>] [-phone <phone>] [-address <address>]

  Edits the named fields of an existing customer; the rest keep their
  stored values.
`
}

func (c *editCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the customer to edit")
	f.StringVar(&c.name, "name", "", "customer name")
	f.StringVar(&c.phone, "phone", "", "customer phone number")
	f.StringVar(&c.address, "address", "", "customer address")
}

func (c *editCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			customer.Name = c.name
		case "phone":
			customer.Phone = c.phone
		case "address":
			customer.Address = c.address
		}
	})

	if err := b.UpdateCustomer(customer); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating customer: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated customer %d\n", c.id)
	return subcommands.ExitSuccess
}
