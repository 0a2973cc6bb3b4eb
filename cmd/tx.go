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

// txCmd is the shared implementation behind the debit and credit commands.
type txCmd struct {
	typ khata.TxType

	customer    int64
	amount      string
	description string
	date        string
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.customer, "c", 0, "identifier of the customer account")
	f.StringVar(&c.amount, "a", "", "transaction amount")
	f.StringVar(&c.description, "m", "", "free text description")
	f.StringVar(&c.date, "d", "", "transaction date (YYYY-MM-DD), defaults to today")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := &khata.Transaction{
		CustomerID:  c.customer,
		Type:        c.typ,
		Amount:      amount,
		Description: c.description,
	}
	if c.date != "" {
		tx.Date, err = khata.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	id, err := b.AddTransaction(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", c.typ, err)
		return subcommands.ExitFailure
	}

	balance, err := b.CustomerSummary(c.customer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing balance: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %d of %s, balance is now %s\n", c.typ, id, khata.M(amount), balance.Balance.SignedString())
	return subcommands.ExitSuccess
}

type debitCmd struct{ txCmd }

func (*debitCmd) Name() string     { return "debit" }
func (*debitCmd) Synopsis() string { return "record goods given on credit" }
func (*debitCmd) Usage() string {
	return `khata debit -c <customer> -a <amount> [-m <description>] [-d <date>]

  Records a debit: the customer took goods and owes the amount.
`
}

func newDebitCmd() *debitCmd { return &debitCmd{txCmd{typ: khata.Debit}} }

type creditCmd struct{ txCmd }

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "record a payment received" }
func (*creditCmd) Usage() string {
	return `khata credit -c <customer> -a <amount> [-m <description>] [-d <date>]

  Records a credit: the customer paid the amount back.
`
}

func newCreditCmd() *creditCmd { return &creditCmd{txCmd{typ: khata.Credit}} }
