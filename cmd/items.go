package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata/renderer"
)

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the distinct item names" }
func (*itemsCmd) Usage() string {
	return `khata items

  Lists every distinct item name seen in the stock entries.
`
}

func (*itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	names, err := b.UniqueItemNames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stock: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ItemsMarkdown("Items", names))
	return subcommands.ExitSuccess
}

type colorsCmd struct{}

func (*colorsCmd) Name() string     { return "colors" }
func (*colorsCmd) Synopsis() string { return "list the distinct item colors" }
func (*colorsCmd) Usage() string {
	return `khata colors

  Lists every distinct color seen in the stock entries.
`
}

func (*colorsCmd) SetFlags(f *flag.FlagSet) {}

func (c *colorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	colors, err := b.UniqueColors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stock: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ItemsMarkdown("Colors", colors))
	return subcommands.ExitSuccess
}
