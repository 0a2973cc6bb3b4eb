package khata

import (
	"fmt"
)

// Book is the boundary the presentation layer talks to: every read goes
// through it to the store, every write is validated before any mutation.
// A Book owns its Store handle; open one per database directory.
type Book struct {
	store *Store
}

// NewBook creates a book over an open store.
func NewBook(store *Store) *Book { return &Book{store: store} }

// Close releases the underlying store.
func (b *Book) Close() error { return b.store.Close() }

// Stock operations.

// AddStock validates the entry, recomputes its total price, defaults a zero
// date to today and persists it, returning the assigned identifier.
func (b *Book) AddStock(e *StockEntry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	return b.store.Add(e)
}

// UpdateStock replaces the stored entry wholesale. The identifier must name
// an existing entry; the total price is recomputed, never trusted.
func (b *Book) UpdateStock(e *StockEntry) error {
	if e.ID == 0 {
		return &ValidationError{Field: "ID", Reason: "missing identifier"}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	old, err := get[StockEntry](b.store, KindStock, e.Key())
	if err != nil {
		return err
	}
	if old == nil {
		return fmt.Errorf("stock entry %d: %w", e.ID, ErrNotFound)
	}
	return b.store.Put(e, old)
}

// DeleteStock removes the entry. Deleting an absent identifier is a no-op.
func (b *Book) DeleteStock(id int64) error {
	e, err := get[StockEntry](b.store, KindStock, recordKey(id))
	if err != nil {
		return err
	}
	if e == nil {
		return nil
	}
	return b.store.Remove(e)
}

// StockByID returns the entry, or nil when absent.
func (b *Book) StockByID(id int64) (*StockEntry, error) {
	return get[StockEntry](b.store, KindStock, recordKey(id))
}

// AllStock returns every stock entry in insertion order.
func (b *Book) AllStock() ([]*StockEntry, error) {
	return getAll[StockEntry](b.store, KindStock)
}

// UniqueItemNames returns the distinct item names, first-seen order.
func (b *Book) UniqueItemNames() ([]string, error) {
	entries, err := b.AllStock()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var names []string
	for _, e := range entries {
		if _, ok := seen[e.ItemName]; !ok {
			seen[e.ItemName] = struct{}{}
			names = append(names, e.ItemName)
		}
	}
	return names, nil
}

// UniqueColors returns the distinct item colors, first-seen order.
func (b *Book) UniqueColors() ([]string, error) {
	entries, err := b.AllStock()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var colors []string
	for _, e := range entries {
		if _, ok := seen[e.ItemColor]; !ok {
			seen[e.ItemColor] = struct{}{}
			colors = append(colors, e.ItemColor)
		}
	}
	return colors, nil
}

// Customer operations.

// AddCustomer validates and persists the customer, returning its identifier.
func (b *Book) AddCustomer(c *Customer) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return b.store.Add(c)
}

// UpdateCustomer replaces the stored customer wholesale.
func (b *Book) UpdateCustomer(c *Customer) error {
	if c.ID == 0 {
		return &ValidationError{Field: "ID", Reason: "missing identifier"}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	old, err := get[Customer](b.store, KindCustomers, c.Key())
	if err != nil {
		return err
	}
	if old == nil {
		return fmt.Errorf("customer %d: %w", c.ID, ErrNotFound)
	}
	return b.store.Put(c, old)
}

// DeleteCustomer removes the customer and every transaction referencing it,
// in a single store transaction so no orphan can survive a crash.
func (b *Book) DeleteCustomer(id int64) error {
	c, err := get[Customer](b.store, KindCustomers, recordKey(id))
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	txs, err := b.TransactionsByCustomer(id)
	if err != nil {
		return err
	}
	recs := make([]Record, 0, len(txs)+1)
	recs = append(recs, c)
	for _, tx := range txs {
		recs = append(recs, tx)
	}
	return b.store.Remove(recs...)
}

// CustomerByID returns the customer, or nil when absent.
func (b *Book) CustomerByID(id int64) (*Customer, error) {
	return get[Customer](b.store, KindCustomers, recordKey(id))
}

// AllCustomers returns every customer in insertion order.
func (b *Book) AllCustomers() ([]*Customer, error) {
	return getAll[Customer](b.store, KindCustomers)
}

// Transaction operations.

// AddTransaction validates the transaction, defaults a zero date to today,
// checks the customer reference exists and persists it.
func (b *Book) AddTransaction(t *Transaction) (int64, error) {
	if err := b.validateTransaction(t); err != nil {
		return 0, err
	}
	return b.store.Add(t)
}

// UpdateTransaction replaces the stored transaction wholesale. The customer
// reference is checked again so an edit cannot create an orphan.
func (b *Book) UpdateTransaction(t *Transaction) error {
	if t.ID == 0 {
		return &ValidationError{Field: "ID", Reason: "missing identifier"}
	}
	if err := b.validateTransaction(t); err != nil {
		return err
	}
	old, err := get[Transaction](b.store, KindTransactions, t.Key())
	if err != nil {
		return err
	}
	if old == nil {
		return fmt.Errorf("transaction %d: %w", t.ID, ErrNotFound)
	}
	return b.store.Put(t, old)
}

func (b *Book) validateTransaction(t *Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c, err := b.CustomerByID(t.CustomerID)
	if err != nil {
		return err
	}
	if c == nil {
		return &ValidationError{Field: "CustomerID", Reason: fmt.Sprintf("customer %d does not exist", t.CustomerID)}
	}
	return nil
}

// DeleteTransaction removes the transaction. Absent identifiers are a no-op.
func (b *Book) DeleteTransaction(id int64) error {
	t, err := get[Transaction](b.store, KindTransactions, recordKey(id))
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	return b.store.Remove(t)
}

// TransactionByID returns the transaction, or nil when absent.
func (b *Book) TransactionByID(id int64) (*Transaction, error) {
	return get[Transaction](b.store, KindTransactions, recordKey(id))
}

// TransactionsByCustomer returns the customer's transactions in insertion
// order, resolved through the customerId index.
func (b *Book) TransactionsByCustomer(customerID int64) ([]*Transaction, error) {
	return getByIndex[Transaction](b.store, KindTransactions, "customerId", recordKey(customerID))
}

// AllTransactions returns every transaction in insertion order.
func (b *Book) AllTransactions() ([]*Transaction, error) {
	return getAll[Transaction](b.store, KindTransactions)
}

// Settings operations.

// Setting returns the setting stored under id, or nil when absent.
func (b *Book) Setting(id string) (*Setting, error) {
	return get[Setting](b.store, KindSettings, id)
}

// SaveSetting stores the setting under its fixed key, inserting or
// replacing. Settings are the one kind with upsert semantics.
func (b *Book) SaveSetting(st *Setting) error {
	if err := st.Validate(); err != nil {
		return err
	}
	old, err := get[Setting](b.store, KindSettings, st.ID)
	if err != nil {
		return err
	}
	return b.store.Put(st, old)
}
