package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hkhan/khata"
)

type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "read or write a book setting" }
func (*configCmd) Usage() string {
	return `khata config <key> [<value>]

  With one argument, prints the setting stored under key. With two, stores
  the value (as a JSON document if it parses, as a string otherwise).

  $ khata config shopName "Khan Cloth House"
  $ khata config shopName
`
}

func (*configCmd) SetFlags(f *flag.FlagSet) {}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "usage: config <key> [<value>]")
		return subcommands.ExitUsageError
	}
	key := f.Arg(0)

	b, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	if f.NArg() == 1 {
		st, err := b.Setting(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading setting: %v\n", err)
			return subcommands.ExitFailure
		}
		if st == nil {
			fmt.Fprintf(os.Stderr, "setting %q not found\n", key)
			return subcommands.ExitFailure
		}
		fmt.Println(string(st.Value))
		return subcommands.ExitSuccess
	}

	raw := []byte(f.Arg(1))
	if !json.Valid(raw) {
		// Plain strings are stored as JSON strings.
		raw, err = json.Marshal(f.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding value: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := b.SaveSetting(&khata.Setting{ID: key, Value: raw}); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving setting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved setting %q\n", key)
	return subcommands.ExitSuccess
}
