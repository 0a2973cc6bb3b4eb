package khata

import (
	"sort"

	"github.com/shopspring/decimal"
)

// This file derives summaries from raw records. Everything here is
// recomputed on each read; nothing is cached or stored.

// CustomerSummary is the derived position of one customer account.
type CustomerSummary struct {
	TotalDebit  Money
	TotalCredit Money
	Balance     Money // TotalDebit - TotalCredit; positive = receivable
}

// CustomerAccount merges a customer's base fields with its summary.
type CustomerAccount struct {
	Customer
	CustomerSummary
}

// StockSummaryRow is one derived aggregate per distinct (name, color) group.
type StockSummaryRow struct {
	ItemName     string
	ItemColor    string
	Quantity     int64
	TotalValue   Money
	AveragePrice Money // TotalValue / Quantity, zero when quantity is zero
}

// HistoryEntry is a transaction annotated with the account balance after it.
type HistoryEntry struct {
	Transaction
	Balance Money
}

// CustomerSummary scans the customer's transactions and accumulates debit
// and credit totals. An unknown customer or an empty account yields zeros,
// not an error.
func (b *Book) CustomerSummary(customerID int64) (CustomerSummary, error) {
	txs, err := b.TransactionsByCustomer(customerID)
	if err != nil {
		return CustomerSummary{}, err
	}
	var debit, credit decimal.Decimal
	for _, tx := range txs {
		switch tx.Type {
		case Debit:
			debit = debit.Add(tx.Amount)
		case Credit:
			credit = credit.Add(tx.Amount)
		}
	}
	return CustomerSummary{
		TotalDebit:  M(debit),
		TotalCredit: M(credit),
		Balance:     M(debit.Sub(credit)),
	}, nil
}

// AllCustomersSummaries computes the summary of every customer. Each
// customer's transactions are scanned independently; fine at the scale of
// a single shop's book.
func (b *Book) AllCustomersSummaries() ([]CustomerAccount, error) {
	customers, err := b.AllCustomers()
	if err != nil {
		return nil, err
	}
	accounts := make([]CustomerAccount, 0, len(customers))
	for _, c := range customers {
		summary, err := b.CustomerSummary(c.ID)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, CustomerAccount{Customer: *c, CustomerSummary: summary})
	}
	return accounts, nil
}

// StockSummary groups all stock entries by (itemName, itemColor) and
// accumulates quantity and value per group. Rows come out in first-seen
// order of the group.
func (b *Book) StockSummary() ([]StockSummaryRow, error) {
	entries, err := b.AllStock()
	if err != nil {
		return nil, err
	}

	type group struct {
		quantity int64
		value    decimal.Decimal
	}
	groups := make(map[string]*group)
	var order []string
	names := make(map[string]*StockEntry)

	for _, e := range entries {
		key := e.ItemName + "\x00" + e.ItemColor
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
			names[key] = e
		}
		g.quantity += e.Quantity
		g.value = g.value.Add(e.TotalPrice)
	}

	rows := make([]StockSummaryRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		avg := decimal.Zero
		if g.quantity > 0 {
			avg = g.value.Div(decimal.NewFromInt(g.quantity))
		}
		rows = append(rows, StockSummaryRow{
			ItemName:     names[key].ItemName,
			ItemColor:    names[key].ItemColor,
			Quantity:     g.quantity,
			TotalValue:   M(g.value),
			AveragePrice: M(avg),
		})
	}
	return rows, nil
}

// History returns the customer's transactions newest-first, each annotated
// with the running balance. The balance is folded oldest-to-newest so the
// top row always shows the current balance; the rows are then reversed for
// display.
func (b *Book) History(customerID int64) ([]HistoryEntry, error) {
	txs, err := b.TransactionsByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	// Stable sort: same-day transactions keep their insertion order.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})

	entries := make([]HistoryEntry, len(txs))
	var balance decimal.Decimal
	for i, tx := range txs {
		balance = balance.Add(tx.Signed())
		entries[i] = HistoryEntry{Transaction: *tx, Balance: M(balance)}
	}
	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Dashboard is the set of derived figures the overview screen feeds on.
type Dashboard struct {
	StockValue      Money // sum of every entry's total price
	TotalReceivable Money // sum of positive balances
	TotalPayable    Money // sum of negative balances, as a positive figure

	TopStock    []StockSummaryRow // top groups by value, largest first
	Receivables []CustomerAccount // customers owing money, largest first
	Payables    []CustomerAccount // customers owed money, largest first, balance made positive
	RecentStock []*StockEntry     // latest entries by date
	MostActive  []CustomerAccount // customers by balance magnitude
}

// dashboardTop is how many rows each dashboard list keeps.
const dashboardTop = 5

// Dashboard derives the overview figures from the whole book.
func (b *Book) Dashboard() (*Dashboard, error) {
	d := &Dashboard{}

	entries, err := b.AllStock()
	if err != nil {
		return nil, err
	}
	var stockValue decimal.Decimal
	for _, e := range entries {
		stockValue = stockValue.Add(e.TotalPrice)
	}
	d.StockValue = M(stockValue)

	rows, err := b.StockSummary()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalValue.Cmp(rows[j].TotalValue) > 0
	})
	d.TopStock = top(rows)

	recent := make([]*StockEntry, len(entries))
	copy(recent, entries)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	d.RecentStock = top(recent)

	accounts, err := b.AllCustomersSummaries()
	if err != nil {
		return nil, err
	}
	var receivable, payable decimal.Decimal
	var receivables, payables []CustomerAccount
	for _, a := range accounts {
		if a.Balance.IsPositive() {
			receivable = receivable.Add(a.Balance.Decimal())
			receivables = append(receivables, a)
		}
		if a.Balance.IsNegative() {
			payable = payable.Add(a.Balance.Decimal().Abs())
			owed := a
			owed.Balance = a.Balance.Abs()
			payables = append(payables, owed)
		}
	}
	d.TotalReceivable = M(receivable)
	d.TotalPayable = M(payable)

	sort.SliceStable(receivables, func(i, j int) bool {
		return receivables[i].Balance.Cmp(receivables[j].Balance) > 0
	})
	d.Receivables = top(receivables)

	sort.SliceStable(payables, func(i, j int) bool {
		return payables[i].Balance.Cmp(payables[j].Balance) > 0
	})
	d.Payables = top(payables)

	active := make([]CustomerAccount, len(accounts))
	copy(active, accounts)
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Balance.Abs().Cmp(active[j].Balance.Abs()) > 0
	})
	d.MostActive = top(active)

	return d, nil
}

// top keeps the first dashboardTop elements of an already sorted slice.
func top[T any](s []T) []T {
	if len(s) > dashboardTop {
		return s[:dashboardTop]
	}
	return s
}
