// Package cmd implements the CLI application to manage a khata book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hkhan/khata"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addStockCmd{}, "stock")
	c.Register(&editStockCmd{}, "stock")
	c.Register(&deleteStockCmd{}, "stock")
	c.Register(&stockCmd{}, "stock")
	c.Register(&summaryCmd{}, "stock")
	c.Register(&itemsCmd{}, "stock")
	c.Register(&colorsCmd{}, "stock")

	c.Register(&addCustomerCmd{}, "customers")
	c.Register(&editCustomerCmd{}, "customers")
	c.Register(&deleteCustomerCmd{}, "customers")
	c.Register(&customersCmd{}, "customers")
	c.Register(&customerCmd{}, "customers")

	c.Register(newDebitCmd(), "ledger")
	c.Register(newCreditCmd(), "ledger")
	c.Register(&editTxCmd{}, "ledger")
	c.Register(&deleteTxCmd{}, "ledger")

	c.Register(&dashboardCmd{}, "reports")

	c.Register(&backupCmd{}, "book")
	c.Register(&restoreCmd{}, "book")
	c.Register(&queryCmd{}, "book")
	c.Register(&configCmd{}, "book")
	c.Register(&topicCmd{}, "book")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbPath = flag.String("db", defaultDBPath(), "Path to the book database folder")

func defaultDBPath() string {
	if p := os.Getenv("KHATA_DB"); p != "" {
		return p
	}
	return ".khata"
}

// openBook opens the book over the app database folder. Callers own the
// returned book and must Close it.
func openBook() (*khata.Book, error) {
	store, err := khata.OpenStore(*dbPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open book at %q: %w", *dbPath, err)
	}
	return khata.NewBook(store), nil
}

// printMarkdown renders a markdown report to the terminal. On rendering
// failure the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
