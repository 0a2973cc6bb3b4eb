package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hkhan/khata"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the overview report: headline figures first,
// then the top lists.
func DashboardMarkdown(d *khata.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Stock Value", "Receivable", "Payable"},
		Rows: [][]string{{
			d.StockValue.String(),
			d.TotalReceivable.String(),
			d.TotalPayable.String(),
		}},
	})

	if len(d.TopStock) > 0 {
		doc.H2("Top Stock by Value")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Item", "Color", "Quantity", "Value"},
			Rows:      [][]string{},
		}
		for _, r := range d.TopStock {
			table.Rows = append(table.Rows, []string{
				r.ItemName,
				r.ItemColor,
				strconv.FormatInt(r.Quantity, 10),
				r.TotalValue.String(),
			})
		}
		doc.Table(table)
	}

	if len(d.Receivables) > 0 {
		doc.H2("Receivables")
		doc.Table(accountTable(d.Receivables))
	}
	if len(d.Payables) > 0 {
		doc.H2("Payables")
		doc.Table(accountTable(d.Payables))
	}

	if len(d.RecentStock) > 0 {
		doc.H2("Recent Stock")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Item", "Color", "Total"},
			Rows:      [][]string{},
		}
		for _, e := range d.RecentStock {
			table.Rows = append(table.Rows, []string{
				e.Date.String(),
				e.ItemName,
				e.ItemColor,
				khata.M(e.TotalPrice).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

func accountTable(accounts []khata.CustomerAccount) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Customer", "Balance"},
		Rows:      [][]string{},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{a.Name, a.Balance.String()})
	}
	return table
}

// ItemsMarkdown renders a plain bullet list, used for the distinct item
// name and color listings.
func ItemsMarkdown(title string, items []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(items) == 0 {
		doc.PlainText(fmt.Sprintf("No %s recorded.", title))
		return doc.String()
	}
	doc.BulletList(items...)

	return doc.String()
}
