package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata"
	"github.com/hkhan/khata/renderer"
)

type stockCmd struct {
	item  string
	color string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "list stock entries" }
func (*stockCmd) Usage() string {
	return `khata stock [-item <name>] [-color <color>]

  Lists the recorded stock entries, optionally filtered by item name or color.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "only entries of this item name")
	f.StringVar(&c.color, "color", "", "only entries of this color")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	entries, err := b.AllStock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stock: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.item != "" || c.color != "" {
		filtered := make([]*khata.StockEntry, 0, len(entries))
		for _, e := range entries {
			if c.item != "" && e.ItemName != c.item {
				continue
			}
			if c.color != "" && e.ItemColor != c.color {
				continue
			}
			filtered = append(filtered, e)
		}
		entries = filtered
	}

	printMarkdown(renderer.StockMarkdown(entries))
	return subcommands.ExitSuccess
}
