package khata

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseTxType(t *testing.T) {
	testCases := []struct {
		in      string
		want    TxType
		wantErr bool
	}{
		{"debit", Debit, false},
		{"credit", Credit, false},
		{"Debit", "", true},
		{"payment", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseTxType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTxType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTxType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransaction_Signed(t *testing.T) {
	debit := Transaction{Type: Debit, Amount: decimal.NewFromInt(100)}
	if !debit.Signed().Equal(decimal.NewFromInt(100)) {
		t.Errorf("debit Signed() = %s, want 100", debit.Signed())
	}
	credit := Transaction{Type: Credit, Amount: decimal.NewFromInt(100)}
	if !credit.Signed().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("credit Signed() = %s, want -100", credit.Signed())
	}
}

func TestStockEntry_JSONKeys(t *testing.T) {
	e := StockEntry{
		ID:        1,
		ItemName:  "Shirt",
		ItemColor: "Blue",
		Quantity:  10,
		UnitPrice: decimal.NewFromInt(100),
		Date:      MustParseDate("2025-01-10"),
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	data, err := json.Marshal(&e)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"id":1,"itemName":"Shirt","itemColor":"Blue","quantity":10,"unitPrice":100,"totalPrice":1000,"date":"2025-01-10"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant        %s", data, want)
	}
}

func TestTransaction_JSONKeys(t *testing.T) {
	tx := Transaction{
		ID:         2,
		CustomerID: 7,
		Type:       Credit,
		Amount:     decimal.NewFromInt(200),
		Date:       MustParseDate("2025-02-02"),
	}
	data, err := json.Marshal(&tx)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"id":2,"customerId":7,"type":"credit","amount":200,"date":"2025-02-02"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant        %s", data, want)
	}
}

func TestStockEntry_IndexValues(t *testing.T) {
	e := StockEntry{ItemName: "Shirt", ItemColor: "Blue", Date: MustParseDate("2025-01-10")}
	idx := e.Indexes()
	if idx["itemName"] != "Shirt" || idx["itemColor"] != "Blue" || idx["date"] != "2025-01-10" {
		t.Errorf("Indexes() = %v", idx)
	}
}

func TestTransaction_IndexUsesFixedWidthCustomerKey(t *testing.T) {
	tx := Transaction{CustomerID: 7, Type: Debit, Date: MustParseDate("2025-02-01")}
	idx := tx.Indexes()
	if idx["customerId"] != recordKey(7) {
		t.Errorf("customerId index = %q, want %q", idx["customerId"], recordKey(7))
	}
}

func TestSetting_KeyIsItsID(t *testing.T) {
	s := Setting{ID: "shopName"}
	if s.Key() != "shopName" {
		t.Errorf("Key() = %q, want %q", s.Key(), "shopName")
	}
}
