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

type addStockCmd struct {
	item  string
	color string
	qty   int64
	price string
	date  string
}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "record a stock purchase" }
func (*addStockCmd) Usage() string {
	return `khata add-stock -item <name> -color <color> -q <quantity> [-price <unit price>] [-d <date>]

  Records one purchase line. The total price is computed as quantity times
  unit price; the date defaults to today.
`
}

func (c *addStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "item name")
	f.StringVar(&c.color, "color", "", "item color")
	f.Int64Var(&c.qty, "q", 0, "quantity purchased")
	f.StringVar(&c.price, "price", "0", "unit price")
	f.StringVar(&c.date, "d", "", "purchase date (YYYY-MM-DD), defaults to today")
}

func (c *addStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing unit price: %v\n", err)
		return subcommands.ExitUsageError
	}
	entry := &khata.StockEntry{
		ItemName:  c.item,
		ItemColor: c.color,
		Quantity:  c.qty,
		UnitPrice: price,
	}
	if c.date != "" {
		entry.Date, err = khata.ParseDate(c.date)
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

	id, err := b.AddStock(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stock entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added stock entry %d: %d x %s %s at %s\n", id, entry.Quantity, entry.ItemColor, entry.ItemName, khata.M(entry.UnitPrice))
	return subcommands.ExitSuccess
}
