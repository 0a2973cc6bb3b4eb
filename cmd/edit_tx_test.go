package cmd

import (
	"context"
	"flag"
	"strconv"
	"testing"

	"github.com/google/subcommands"
	"github.com/hkhan/khata"
	"github.com/shopspring/decimal"
)

// seedLedger points the app database at a fresh folder and records one
// customer with one debit, returning the customer and transaction ids.
func seedLedger(t *testing.T) (customerID, txID int64) {
	t.Helper()

	old := *dbPath
	*dbPath = t.TempDir()
	t.Cleanup(func() { *dbPath = old })

	b, err := openBook()
	if err != nil {
		t.Fatalf("openBook() failed: %v", err)
	}
	customerID, err = b.AddCustomer(&khata.Customer{Name: "Ali"})
	if err != nil {
		t.Fatalf("AddCustomer() failed: %v", err)
	}
	txID, err = b.AddTransaction(&khata.Transaction{
		CustomerID:  customerID,
		Type:        khata.Debit,
		Amount:      decimal.NewFromInt(500),
		Description: "2 shirts",
		Date:        khata.MustParseDate("2025-02-01"),
	})
	if err != nil {
		t.Fatalf("AddTransaction() failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	return customerID, txID
}

// readTx reopens the book and returns the stored transaction.
func readTx(t *testing.T, id int64) *khata.Transaction {
	t.Helper()

	b, err := openBook()
	if err != nil {
		t.Fatalf("openBook() failed: %v", err)
	}
	defer b.Close()

	tx, err := b.TransactionByID(id)
	if err != nil {
		t.Fatalf("TransactionByID() failed: %v", err)
	}
	if tx == nil {
		t.Fatalf("transaction %d not found", id)
	}
	return tx
}

func TestEditTxMergesOnlySetFlags(t *testing.T) {
	testCases := []struct {
		name  string
		args  []string // -id is appended by the test
		check func(t *testing.T, tx *khata.Transaction)
	}{
		{
			name: "amount only",
			args: []string{"-a", "750"},
			check: func(t *testing.T, tx *khata.Transaction) {
				if !tx.Amount.Equal(decimal.NewFromInt(750)) {
					t.Errorf("Amount = %s, want 750", tx.Amount)
				}
				if tx.Type != khata.Debit {
					t.Errorf("Type = %s, want unchanged debit", tx.Type)
				}
				if tx.Description != "2 shirts" {
					t.Errorf("Description = %q, want unchanged", tx.Description)
				}
				if tx.Date.String() != "2025-02-01" {
					t.Errorf("Date = %s, want unchanged 2025-02-01", tx.Date)
				}
			},
		},
		{
			name: "type and date",
			args: []string{"-t", "credit", "-d", "2025-02-05"},
			check: func(t *testing.T, tx *khata.Transaction) {
				if tx.Type != khata.Credit {
					t.Errorf("Type = %s, want credit", tx.Type)
				}
				if tx.Date.String() != "2025-02-05" {
					t.Errorf("Date = %s, want 2025-02-05", tx.Date)
				}
				if !tx.Amount.Equal(decimal.NewFromInt(500)) {
					t.Errorf("Amount = %s, want unchanged 500", tx.Amount)
				}
			},
		},
		{
			name: "clearing the description",
			args: []string{"-m", ""},
			check: func(t *testing.T, tx *khata.Transaction) {
				if tx.Description != "" {
					t.Errorf("Description = %q, want cleared", tx.Description)
				}
				if !tx.Amount.Equal(decimal.NewFromInt(500)) {
					t.Errorf("Amount = %s, want unchanged 500", tx.Amount)
				}
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, txID := seedLedger(t)

			cmd := &editTxCmd{}
			f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(f)
			args := append([]string{"-id", strconv.FormatInt(txID, 10)}, tc.args...)
			if err := f.Parse(args); err != nil {
				t.Fatalf("Parse(%v) failed: %v", args, err)
			}

			if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want success", status)
			}
			tc.check(t, readTx(t, txID))
		})
	}
}

func TestEditTxRejectsUnknownCustomer(t *testing.T) {
	_, txID := seedLedger(t)

	cmd := &editTxCmd{}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-id", strconv.FormatInt(txID, 10), "-c", "99"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Fatalf("Execute() = %v, want failure for a move to an unknown customer", status)
	}

	tx := readTx(t, txID)
	if tx.CustomerID != 1 {
		t.Errorf("CustomerID = %d, want unchanged 1", tx.CustomerID)
	}
}

func TestEditTxRequiresID(t *testing.T) {
	cmd := &editTxCmd{}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-a", "100"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
		t.Fatalf("Execute() without -id = %v, want usage error", status)
	}
}
