package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata"
)

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export the whole book to a snapshot file" }
func (*backupCmd) Usage() string {
	return `khata backup [-o <file>]

  Writes every record of the book into a single portable JSON snapshot.
  Without -o the snapshot goes to stdout.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "snapshot file to write, stdout by default")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	snap, err := b.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting book: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating snapshot file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := khata.EncodeSnapshot(out, snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d stock entries, %d customers, %d transactions to %s\n",
			len(snap.Stock), len(snap.Customers), len(snap.Transactions), c.output)
	}
	return subcommands.ExitSuccess
}

type restoreCmd struct {
	input string
	yes   bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the whole book with a snapshot file" }
func (*restoreCmd) Usage() string {
	return `khata restore -i <file> -y

  Replaces every record of the book with the snapshot's content. This is
  destructive: all current records are deleted first. The -y flag is
  required to confirm.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "snapshot file to read")
	f.BoolVar(&c.yes, "y", false, "confirm replacing the current book")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintln(os.Stderr, "restore deletes the current book; run again with -y to confirm")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	snap, err := khata.DecodeSnapshot(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	if err := b.Import(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored %d stock entries, %d customers, %d transactions from %s\n",
		len(snap.Stock), len(snap.Customers), len(snap.Transactions), c.input)
	return subcommands.ExitSuccess
}
