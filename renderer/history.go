package renderer

import (
	"bytes"
	"fmt"

	"github.com/hkhan/khata"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a customer's transactions newest-first, with the
// running balance column.
func HistoryMarkdown(c *khata.Customer, entries []khata.HistoryEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", c.Name))
	if len(entries) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Type", "Amount", "Balance", "Description"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			string(e.Type),
			khata.M(e.Amount).String(),
			e.Balance.SignedString(),
			e.Description,
		})
	}
	doc.Table(table)

	// Top row carries the current position.
	doc.PlainText(fmt.Sprintf("Current balance: %s", entries[0].Balance.SignedString()))

	return doc.String()
}
