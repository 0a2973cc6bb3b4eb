package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata"
)

type addCustomerCmd struct {
	name    string
	phone   string
	address string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "open a customer account" }
func (*addCustomerCmd) Usage() string {
	return `khata add-customer -name <name> [-phone <phone>] [-address <address>]

  Opens a new customer account in the ledger.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "customer name")
	f.StringVar(&c.phone, "phone", "", "customer phone number")
	f.StringVar(&c.address, "address", "", "customer address")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	id, err := b.AddCustomer(&khata.Customer{Name: c.name, Phone: c.phone, Address: c.address})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding customer: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added customer %d: %s\n", id, c.name)
	return subcommands.ExitSuccess
}
