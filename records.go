package khata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind identifies one of the record stores of a book.
type Kind string

const (
	KindStock        Kind = "stock"
	KindCustomers    Kind = "customers"
	KindTransactions Kind = "transactions"
	KindSettings     Kind = "settings"
)

// Kinds lists every record kind, in snapshot order.
var Kinds = []Kind{KindStock, KindCustomers, KindTransactions, KindSettings}

// TxType is the direction of a ledger transaction.
type TxType string

const (
	// Debit increases the customer's owed balance (money owed to the business).
	Debit TxType = "debit"
	// Credit decreases the customer's owed balance (payment received).
	Credit TxType = "credit"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Debit:
		return Debit, nil
	case Credit:
		return Credit, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Record is the common contract between a stored record and the store:
// which kind it belongs to, the key it lives under, and the secondary
// index rows it maintains.
type Record interface {
	Kind() Kind
	Key() string
	Indexes() map[string]string
	setID(int64)
}

// recordKey encodes a numeric identifier fixed-width so that the
// lexicographic key order equals numeric (insertion) order.
func recordKey(id int64) string { return fmt.Sprintf("%016d", id) }

var validate = validator.New(validator.WithRequiredStructEnabled())

// noNUL rejects NUL bytes in attributes that feed index rows, whose key
// encoding uses NUL as the value/key separator.
func noNUL(field, value string) error {
	if strings.ContainsRune(value, 0) {
		return &ValidationError{Field: field, Reason: "must not contain a NUL byte"}
	}
	return nil
}

// firstValidationError converts a validator result into the boundary error type.
func firstValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		return &ValidationError{Field: e.Field(), Reason: fmt.Sprintf("failed %q constraint", e.Tag())}
	}
	return &ValidationError{Reason: err.Error()}
}

// StockEntry is one inventory purchase line.
type StockEntry struct {
	ID         int64           `json:"id"`
	ItemName   string          `json:"itemName" validate:"required"`
	ItemColor  string          `json:"itemColor" validate:"required"`
	Quantity   int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"` // always Quantity times UnitPrice, recomputed on write
	Date       Date            `json:"date"`
}

func (*StockEntry) Kind() Kind       { return KindStock }
func (e *StockEntry) Key() string    { return recordKey(e.ID) }
func (e *StockEntry) setID(id int64) { e.ID = id }

func (e *StockEntry) Indexes() map[string]string {
	return map[string]string{
		"itemName":  e.ItemName,
		"itemColor": e.ItemColor,
		"date":      e.Date.String(),
	}
}

// Validate checks the entry and applies quick fixes where applicable
// (a zero date becomes today). The total price is not trusted from the
// caller; it is recomputed.
func (e *StockEntry) Validate() error {
	if e.Date.IsZero() {
		e.Date = Today()
	}
	if err := firstValidationError(validate.Struct(e)); err != nil {
		return err
	}
	if err := noNUL("ItemName", e.ItemName); err != nil {
		return err
	}
	if err := noNUL("ItemColor", e.ItemColor); err != nil {
		return err
	}
	if e.UnitPrice.IsNegative() {
		return &ValidationError{Field: "UnitPrice", Reason: "must not be negative"}
	}
	e.TotalPrice = e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity))
	return nil
}

// Customer is one account in the customer ledger.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (*Customer) Kind() Kind       { return KindCustomers }
func (c *Customer) Key() string    { return recordKey(c.ID) }
func (c *Customer) setID(id int64) { c.ID = id }

func (c *Customer) Indexes() map[string]string {
	return map[string]string{
		"name":  c.Name,
		"phone": c.Phone,
	}
}

func (c *Customer) Validate() error {
	if err := firstValidationError(validate.Struct(c)); err != nil {
		return err
	}
	if err := noNUL("Name", c.Name); err != nil {
		return err
	}
	return noNUL("Phone", c.Phone)
}

// Transaction is one debit or credit against a customer account.
type Transaction struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customerId" validate:"required,gt=0"`
	Type        TxType          `json:"type" validate:"required,oneof=debit credit"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        Date            `json:"date"`
}

func (*Transaction) Kind() Kind       { return KindTransactions }
func (t *Transaction) Key() string    { return recordKey(t.ID) }
func (t *Transaction) setID(id int64) { t.ID = id }

func (t *Transaction) Indexes() map[string]string {
	return map[string]string{
		"customerId": recordKey(t.CustomerID),
		"date":       t.Date.String(),
		"type":       string(t.Type),
	}
}

// Validate checks the transaction fields. It does not check the customer
// reference; that needs the store and is done at the boundary.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if err := firstValidationError(validate.Struct(t)); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return &ValidationError{Field: "Amount", Reason: "must not be negative"}
	}
	return nil
}

// Signed returns the amount with the ledger sign convention applied:
// positive for debits, negative for credits.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Setting is an opaque configuration record stored under a fixed key.
type Setting struct {
	ID    string          `json:"id" validate:"required"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (*Setting) Kind() Kind                   { return KindSettings }
func (s *Setting) Key() string                { return s.ID }
func (s *Setting) setID(int64)                {} // settings carry their own fixed key
func (s *Setting) Indexes() map[string]string { return nil }

func (s *Setting) Validate() error {
	return firstValidationError(validate.Struct(s))
}
