package khata

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SchemaVersion is the snapshot schema version written on export.
const SchemaVersion = 1

// Snapshot is the complete exported state of a book: every record of every
// kind, with identifiers, plus the generation timestamp and schema version.
type Snapshot struct {
	Stock        []*StockEntry  `json:"stock"`
	Customers    []*Customer    `json:"customers"`
	Transactions []*Transaction `json:"transactions"`
	Settings     []*Setting     `json:"settings"`
	ExportDate   time.Time      `json:"exportDate"`
	Version      int            `json:"version"`
}

// Export reads all four record kinds in full and wraps them in a snapshot.
// No filtering, no incremental export.
func (b *Book) Export() (*Snapshot, error) {
	snap := &Snapshot{
		ExportDate: time.Now().UTC(),
		Version:    SchemaVersion,
	}
	var err error
	if snap.Stock, err = b.AllStock(); err != nil {
		return nil, err
	}
	if snap.Customers, err = b.AllCustomers(); err != nil {
		return nil, err
	}
	if snap.Transactions, err = b.AllTransactions(); err != nil {
		return nil, err
	}
	if snap.Settings, err = getAll[Setting](b.store, KindSettings); err != nil {
		return nil, err
	}
	// Empty kinds still serialize as arrays, never null.
	if snap.Stock == nil {
		snap.Stock = []*StockEntry{}
	}
	if snap.Customers == nil {
		snap.Customers = []*Customer{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []*Transaction{}
	}
	if snap.Settings == nil {
		snap.Settings = []*Setting{}
	}
	return snap, nil
}

// Import restores a snapshot. It is destructive: every kind is cleared
// first, then the snapshot records are inserted preserving their original
// identifiers, and each kind's counter is raised past the largest imported
// identifier. A failure mid-way surfaces as an *ImportError and can leave
// the store partially cleared; there is no rollback.
func (b *Book) Import(snap *Snapshot) error {
	for _, kind := range Kinds {
		if err := b.store.Clear(kind); err != nil {
			return &ImportError{Step: "clear", Err: err}
		}
	}

	var maxStock, maxCustomer, maxTx int64
	for _, e := range snap.Stock {
		if err := b.store.Put(e, nil); err != nil {
			return &ImportError{Step: "insert", Err: err}
		}
		maxStock = max(maxStock, e.ID)
	}
	for _, c := range snap.Customers {
		if err := b.store.Put(c, nil); err != nil {
			return &ImportError{Step: "insert", Err: err}
		}
		maxCustomer = max(maxCustomer, c.ID)
	}
	for _, t := range snap.Transactions {
		if err := b.store.Put(t, nil); err != nil {
			return &ImportError{Step: "insert", Err: err}
		}
		maxTx = max(maxTx, t.ID)
	}
	for _, s := range snap.Settings {
		if err := b.store.Put(s, nil); err != nil {
			return &ImportError{Step: "insert", Err: err}
		}
	}

	if err := b.store.RaiseCounter(KindStock, maxStock); err != nil {
		return &ImportError{Step: "insert", Err: err}
	}
	if err := b.store.RaiseCounter(KindCustomers, maxCustomer); err != nil {
		return &ImportError{Step: "insert", Err: err}
	}
	if err := b.store.RaiseCounter(KindTransactions, maxTx); err != nil {
		return &ImportError{Step: "insert", Err: err}
	}
	return nil
}

// EncodeSnapshot writes the snapshot to w as an indented JSON document, the
// portable single-file backup format.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot document from r. Missing keys decode as
// empty collections.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, &ImportError{Step: "decode", Err: err}
	}
	return &snap, nil
}
