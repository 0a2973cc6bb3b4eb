package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata"
	"github.com/shopspring/decimal"
)

type editTxCmd struct {
	id          int64
	customer    int64
	typ         string
	amount      string
	description string
	date        string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "edit an existing transaction" }
func (*editTxCmd) Usage() string {
	return `khata edit-tx -id <id> [-c <customer>] [-t <debit|credit>] [-a <amount>] [-m <description>] [-d <date>]

  Edits the named fields of an existing transaction; the rest keep their
  stored values.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the transaction to edit")
	f.Int64Var(&c.customer, "c", 0, "identifier of the customer account")
	f.StringVar(&c.typ, "t", "", "transaction type (debit or credit)")
	f.StringVar(&c.amount, "a", "", "transaction amount")
	f.StringVar(&c.description, "m", "", "free text description")
	f.StringVar(&c.date, "d", "", "transaction date (YYYY-MM-DD)")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tx, err := b.TransactionByID(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if tx == nil {
		fmt.Fprintf(os.Stderr, "transaction %d not found\n", c.id)
		return subcommands.ExitFailure
	}

	var status subcommands.ExitStatus
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "c":
			tx.CustomerID = c.customer
		case "t":
			typ, err := khata.ParseTxType(c.typ)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				status = subcommands.ExitUsageError
				return
			}
			tx.Type = typ
		case "a":
			amount, err := decimal.NewFromString(c.amount)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
				status = subcommands.ExitUsageError
				return
			}
			tx.Amount = amount
		case "m":
			tx.Description = c.description
		case "d":
			date, err := khata.ParseDate(c.date)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
				status = subcommands.ExitUsageError
				return
			}
			tx.Date = date
		}
	})
	if status != subcommands.ExitSuccess {
		return status
	}

	if err := b.UpdateTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %d\n", c.id)
	return subcommands.ExitSuccess
}
