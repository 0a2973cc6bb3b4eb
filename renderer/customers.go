package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hkhan/khata"
	md "github.com/nao1215/markdown"
)

// CustomersMarkdown renders the customer list with each account's position.
func CustomersMarkdown(accounts []khata.CustomerAccount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Customers")
	if len(accounts) == 0 {
		doc.PlainText("No customers recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Phone", "Debit", "Credit", "Balance"},
		Rows:   [][]string{},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Phone,
			a.TotalDebit.String(),
			a.TotalCredit.String(),
			a.Balance.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CustomerMarkdown renders one customer's detail card and summary.
func CustomerMarkdown(c *khata.Customer, s khata.CustomerSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Customer %s", c.Name))
	if c.Phone != "" {
		doc.PlainText(fmt.Sprintf("Phone: %s", c.Phone))
	}
	if c.Address != "" {
		doc.PlainText(fmt.Sprintf("Address: %s", c.Address))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Total Debit", "Total Credit", "Balance"},
		Rows: [][]string{{
			s.TotalDebit.String(),
			s.TotalCredit.String(),
			s.Balance.SignedString(),
		}},
	})

	return doc.String()
}
