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

type editStockCmd struct {
	id    int64
	item  string
	color string
	qty   int64
	price string
	date  string
}

func (*editStockCmd) Name() string     { return "edit-stock" }
func (*editStockCmd) Synopsis() string { return "edit an existing stock entry" }
func (*editStockCmd) Usage() string {
	return `khata edit-stock -id <id> [-item <name>] [-color <color>] [-q <quantity>] [-price <unit price>] [-d <date>]

  Edits the named fields of an existing entry; the rest keep their stored
  values. The total price is recomputed.
`
}

func (c *editStockCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "identifier of the entry to edit")
	f.StringVar(&c.item, "item", "", "item name")
	f.StringVar(&c.color, "color", "", "item color")
	f.Int64Var(&c.qty, "q", 0, "quantity purchased")
	f.StringVar(&c.price, "price", "", "unit price")
	f.StringVar(&c.date, "d", "", "purchase date (YYYY-MM-DD)")
}

func (c *editStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	entry, err := b.StockByID(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stock entry: %v\n", err)
		return subcommands.ExitFailure
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "stock entry %d not found\n", c.id)
		return subcommands.ExitFailure
	}

	var status subcommands.ExitStatus
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "item":
			entry.ItemName = c.item
		case "color":
			entry.ItemColor = c.color
		case "q":
			entry.Quantity = c.qty
		case "price":
			price, err := decimal.NewFromString(c.price)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing unit price: %v\n", err)
				status = subcommands.ExitUsageError
				return
			}
			entry.UnitPrice = price
		case "d":
			date, err := khata.ParseDate(c.date)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
				status = subcommands.ExitUsageError
				return
			}
			entry.Date = date
		}
	})
	if status != subcommands.ExitSuccess {
		return status
	}

	if err := b.UpdateStock(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating stock entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated stock entry %d\n", c.id)
	return subcommands.ExitSuccess
}
