package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	input string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a jsonpath query over the book" }
func (*queryCmd) Usage() string {
	return `khata query [-i <snapshot>] <jsonpath>

  Runs a jsonpath expression over the book's snapshot document and prints
  the result as JSON. With -i the expression runs over a snapshot file
  instead of the live book. Examples:

  $ khata query '$.customers[*].name'
  $ khata query -i book.json '$.stock[?(@.itemColor=="Blue")]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "snapshot file to query instead of the live book")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one jsonpath expression is required")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	var data []byte
	if c.input != "" {
		var err error
		data, err = os.ReadFile(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading snapshot file: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
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
		data, err = json.Marshal(snap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling book: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	// jsonpath wants a generic document.
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling book: %v\n", err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
