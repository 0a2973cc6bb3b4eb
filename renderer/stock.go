package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hkhan/khata"
	md "github.com/nao1215/markdown"
)

// StockMarkdown renders the raw stock entries, one row per purchase line.
func StockMarkdown(entries []*khata.StockEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Entries")
	if len(entries) == 0 {
		doc.PlainText("No stock entries recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Item", "Color", "Quantity", "Unit Price", "Total"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.String(),
			e.ItemName,
			e.ItemColor,
			strconv.FormatInt(e.Quantity, 10),
			khata.M(e.UnitPrice).String(),
			khata.M(e.TotalPrice).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// StockSummaryMarkdown renders the per-(item, color) aggregates.
func StockSummaryMarkdown(rows []khata.StockSummaryRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Summary")
	if len(rows) == 0 {
		doc.PlainText("No stock entries recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Color", "Quantity", "Total Value", "Avg Price"},
		Rows:   [][]string{},
	}
	var quantity int64
	value := khata.M(0)
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.ItemName,
			r.ItemColor,
			strconv.FormatInt(r.Quantity, 10),
			r.TotalValue.String(),
			r.AveragePrice.String(),
		})
		quantity += r.Quantity
		value = value.Add(r.TotalValue)
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %d pieces worth %s", quantity, value))

	return doc.String()
}
