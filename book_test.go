package khata

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestBook(t *testing.T) *Book {
	t.Helper()
	return NewBook(newTestStore(t))
}

func addCustomer(t *testing.T, b *Book, name string) int64 {
	t.Helper()
	id, err := b.AddCustomer(&Customer{Name: name})
	if err != nil {
		t.Fatalf("AddCustomer(%q) failed: %v", name, err)
	}
	return id
}

func addTx(t *testing.T, b *Book, customerID int64, typ TxType, amount float64, date string) int64 {
	t.Helper()
	id, err := b.AddTransaction(&Transaction{
		CustomerID: customerID,
		Type:       typ,
		Amount:     decimal.NewFromFloat(amount),
		Date:       MustParseDate(date),
	})
	if err != nil {
		t.Fatalf("AddTransaction(%d, %s, %v) failed: %v", customerID, typ, amount, err)
	}
	return id
}

func TestBook_AddStockComputesTotalPrice(t *testing.T) {
	b := newTestBook(t)

	e := &StockEntry{
		ItemName:   "Shirt",
		ItemColor:  "Blue",
		Quantity:   10,
		UnitPrice:  decimal.NewFromFloat(100),
		TotalPrice: decimal.NewFromFloat(999), // caller value must be ignored
		Date:       MustParseDate("2025-01-10"),
	}
	id, err := b.AddStock(e)
	if err != nil {
		t.Fatalf("AddStock() failed: %v", err)
	}

	got, err := b.StockByID(id)
	if err != nil {
		t.Fatalf("StockByID() failed: %v", err)
	}
	if !got.TotalPrice.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalPrice = %s, want 1000", got.TotalPrice)
	}
}

func TestBook_AddStockDefaultsDateToToday(t *testing.T) {
	b := newTestBook(t)

	e := &StockEntry{ItemName: "Shirt", ItemColor: "Blue", Quantity: 1}
	id, err := b.AddStock(e)
	if err != nil {
		t.Fatalf("AddStock() failed: %v", err)
	}
	got, err := b.StockByID(id)
	if err != nil {
		t.Fatalf("StockByID() failed: %v", err)
	}
	if got.Date.IsZero() {
		t.Errorf("Date was not defaulted, still zero")
	}
}

func TestBook_AddStockRejectsInvalid(t *testing.T) {
	b := newTestBook(t)

	testCases := []struct {
		name  string
		entry StockEntry
	}{
		{"empty item name", StockEntry{ItemColor: "Blue", Quantity: 1}},
		{"empty color", StockEntry{ItemName: "Shirt", Quantity: 1}},
		{"zero quantity", StockEntry{ItemName: "Shirt", ItemColor: "Blue", Quantity: 0}},
		{"negative quantity", StockEntry{ItemName: "Shirt", ItemColor: "Blue", Quantity: -3}},
		{"negative unit price", StockEntry{ItemName: "Shirt", ItemColor: "Blue", Quantity: 1, UnitPrice: decimal.NewFromInt(-5)}},
		{"NUL in item name", StockEntry{ItemName: "Shirt\x00", ItemColor: "Blue", Quantity: 1}},
		{"NUL in color", StockEntry{ItemName: "Shirt", ItemColor: "Blue\x00Red", Quantity: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.AddStock(&tc.entry)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("AddStock() error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestBook_UpdateStockIsStrict(t *testing.T) {
	b := newTestBook(t)

	err := b.UpdateStock(&StockEntry{ID: 99, ItemName: "Shirt", ItemColor: "Blue", Quantity: 1, Date: Today()})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStock(absent) error = %v, want ErrNotFound", err)
	}

	var verr *ValidationError
	err = b.UpdateStock(&StockEntry{ItemName: "Shirt", ItemColor: "Blue", Quantity: 1, Date: Today()})
	if !errors.As(err, &verr) {
		t.Errorf("UpdateStock(no id) error = %v, want *ValidationError", err)
	}
}

func TestBook_UpdateStockRecomputesTotalPrice(t *testing.T) {
	b := newTestBook(t)

	e := &StockEntry{ItemName: "Shirt", ItemColor: "Blue", Quantity: 10, UnitPrice: decimal.NewFromInt(100), Date: MustParseDate("2025-01-10")}
	id, err := b.AddStock(e)
	if err != nil {
		t.Fatalf("AddStock() failed: %v", err)
	}

	edit := *e
	edit.Quantity = 5
	edit.UnitPrice = decimal.NewFromInt(120)
	if err := b.UpdateStock(&edit); err != nil {
		t.Fatalf("UpdateStock() failed: %v", err)
	}

	got, err := b.StockByID(id)
	if err != nil {
		t.Fatalf("StockByID() failed: %v", err)
	}
	if !got.TotalPrice.Equal(decimal.NewFromInt(600)) {
		t.Errorf("TotalPrice after edit = %s, want 600", got.TotalPrice)
	}
}

func TestBook_DeleteStockAbsentIsNoop(t *testing.T) {
	b := newTestBook(t)
	if err := b.DeleteStock(404); err != nil {
		t.Errorf("DeleteStock(absent) failed: %v", err)
	}
}

func TestBook_UniqueItemNamesAndColors(t *testing.T) {
	b := newTestBook(t)

	entries := []StockEntry{
		{ItemName: "Shirt", ItemColor: "Blue", Quantity: 1},
		{ItemName: "Trouser", ItemColor: "Black", Quantity: 1},
		{ItemName: "Shirt", ItemColor: "Red", Quantity: 1},
		{ItemName: "Cap", ItemColor: "Blue", Quantity: 1},
	}
	for i := range entries {
		if _, err := b.AddStock(&entries[i]); err != nil {
			t.Fatalf("AddStock() failed: %v", err)
		}
	}

	names, err := b.UniqueItemNames()
	if err != nil {
		t.Fatalf("UniqueItemNames() failed: %v", err)
	}
	if want := []string{"Shirt", "Trouser", "Cap"}; !reflect.DeepEqual(names, want) {
		t.Errorf("UniqueItemNames() = %v, want %v", names, want)
	}

	colors, err := b.UniqueColors()
	if err != nil {
		t.Fatalf("UniqueColors() failed: %v", err)
	}
	if want := []string{"Blue", "Black", "Red"}; !reflect.DeepEqual(colors, want) {
		t.Errorf("UniqueColors() = %v, want %v", colors, want)
	}
}

func TestBook_AddCustomerRejectsInvalid(t *testing.T) {
	b := newTestBook(t)

	testCases := []struct {
		name     string
		customer Customer
	}{
		{"empty name", Customer{Phone: "0301-1234567"}},
		{"NUL in name", Customer{Name: "Ali\x00"}},
		{"NUL in phone", Customer{Name: "Ali", Phone: "0301\x001234567"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.AddCustomer(&tc.customer)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("AddCustomer() error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestBook_TransactionRequiresExistingCustomer(t *testing.T) {
	b := newTestBook(t)

	_, err := b.AddTransaction(&Transaction{CustomerID: 7, Type: Debit, Amount: decimal.NewFromInt(100)})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("AddTransaction(unknown customer) error = %v, want *ValidationError", err)
	}
}

func TestBook_UpdateTransactionIsStrict(t *testing.T) {
	b := newTestBook(t)
	ali := addCustomer(t, b, "Ali")

	err := b.UpdateTransaction(&Transaction{ID: 99, CustomerID: ali, Type: Debit, Amount: decimal.NewFromInt(50)})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTransaction(absent) error = %v, want ErrNotFound", err)
	}
}

func TestBook_DeleteCustomerCascades(t *testing.T) {
	b := newTestBook(t)

	ali := addCustomer(t, b, "Ali")
	babar := addCustomer(t, b, "Babar")
	addTx(t, b, ali, Debit, 500, "2025-02-01")
	addTx(t, b, ali, Credit, 200, "2025-02-02")
	keep := addTx(t, b, babar, Debit, 300, "2025-02-03")

	if err := b.DeleteCustomer(ali); err != nil {
		t.Fatalf("DeleteCustomer() failed: %v", err)
	}

	if c, err := b.CustomerByID(ali); err != nil || c != nil {
		t.Errorf("CustomerByID(deleted) = %v, %v; want nil, nil", c, err)
	}
	txs, err := b.TransactionsByCustomer(ali)
	if err != nil {
		t.Fatalf("TransactionsByCustomer() failed: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("orphan transactions survived the cascade: %d", len(txs))
	}

	// The other customer's book is untouched.
	txs, err = b.TransactionsByCustomer(babar)
	if err != nil {
		t.Fatalf("TransactionsByCustomer() failed: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != keep {
		t.Errorf("unrelated transactions affected: %+v", txs)
	}
}

func TestBook_SettingsUpsert(t *testing.T) {
	b := newTestBook(t)

	if err := b.SaveSetting(&Setting{ID: "shopName", Value: []byte(`"Khan Cloth House"`)}); err != nil {
		t.Fatalf("SaveSetting() failed: %v", err)
	}
	if err := b.SaveSetting(&Setting{ID: "shopName", Value: []byte(`"Khan Garments"`)}); err != nil {
		t.Fatalf("SaveSetting(overwrite) failed: %v", err)
	}

	got, err := b.Setting("shopName")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if got == nil || string(got.Value) != `"Khan Garments"` {
		t.Errorf("Setting() = %+v, want overwritten value", got)
	}

	absent, err := b.Setting("theme")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if absent != nil {
		t.Errorf("Setting(absent) = %+v, want nil", absent)
	}
}
