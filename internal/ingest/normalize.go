// Package ingest turns raw transaction input into canonical transactions.
//
// Input arrives either as JSON records or as rows of a CSV file. Both are
// validated and normalized here. Derived fields (month and year) are only
// ever computed by Normalize, so every transaction passing through this
// package is consistent with its date.
package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrFieldMissing     = errors.New("must be set")
	ErrDateUnparseable  = fmt.Errorf("must be a date in the format %s", "yyyy-MM-dd")
	ErrAmountNotNumeric = errors.New("must be a decimal number")
	ErrAmountPrecision  = fmt.Errorf("must have at most %d digits, %d of them after the decimal point", types.AmountPrecision, types.AmountScale)
)

// FieldError is a validation error for a single field of a record.
//
// It matches models.ErrValidation as well as the underlying reason
// with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{models.ErrValidation, e.Err}
}

// Record is a transaction as submitted by a client, before normalization.
type Record struct {
	Date        types.Date       `json:"date" example:"2023-01-15"`                 // Date of the transaction, yyyy-MM-dd
	Description string           `json:"description" example:"Grocery shopping"`    // Description of the transaction
	Amount      *decimal.Decimal `json:"amount" example:"125.50" swaggertype:"string"` // Amount of the transaction
	Category    string           `json:"category" example:"Groceries"`              // Category label. Compared case-insensitively
}

// Normalize validates the record and returns its canonical transaction
// with Month and Year derived from Date.
func Normalize(r Record) (models.Transaction, error) {
	if r.Date.IsZero() {
		return models.Transaction{}, &FieldError{Field: "date", Err: ErrFieldMissing}
	}

	description := strings.TrimSpace(r.Description)
	if description == "" {
		return models.Transaction{}, &FieldError{Field: "description", Err: ErrFieldMissing}
	}

	if r.Amount == nil {
		return models.Transaction{}, &FieldError{Field: "amount", Err: ErrFieldMissing}
	}

	if !types.Representable(*r.Amount) {
		return models.Transaction{}, &FieldError{Field: "amount", Err: fmt.Errorf("%w, got %s", ErrAmountPrecision, r.Amount)}
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		return models.Transaction{}, &FieldError{Field: "category", Err: ErrFieldMissing}
	}

	return models.Transaction{
		Date:        r.Date,
		Description: description,
		Amount:      types.NewAmount(*r.Amount),
		Category:    category,
		Month:       r.Date.Month(),
		Year:        r.Date.Year(),
	}, nil
}

// NormalizeAll normalizes all records.
//
// The returned slice of errors has the same length as records. It contains nil
// for every record that was normalized successfully. ok is false if any record
// failed, in that case the transactions must not be persisted.
func NormalizeAll(records []Record) (transactions []models.Transaction, errs []error, ok bool) {
	transactions = make([]models.Transaction, 0, len(records))
	errs = make([]error, len(records))
	ok = true

	for i, r := range records {
		t, err := Normalize(r)
		if err != nil {
			errs[i] = err
			ok = false
			continue
		}
		transactions = append(transactions, t)
	}

	return transactions, errs, ok
}

// ParseText parses the textual representation of a record,
// e.g. the values of a CSV row.
func ParseText(date, description, amount, category string) (Record, error) {
	r := Record{
		Description: description,
		Category:    category,
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return Record{}, &FieldError{Field: "date", Err: ErrFieldMissing}
	}

	d, err := types.ParseDate(date)
	if err != nil {
		return Record{}, &FieldError{Field: "date", Err: fmt.Errorf("%w, got %q", ErrDateUnparseable, date)}
	}
	r.Date = d

	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Record{}, &FieldError{Field: "amount", Err: ErrFieldMissing}
	}

	a, err := decimal.NewFromString(amount)
	if err != nil {
		return Record{}, &FieldError{Field: "amount", Err: fmt.Errorf("%w, got %q", ErrAmountNotNumeric, amount)}
	}
	r.Amount = &a

	return r, nil
}

// NormalizeText is ParseText followed by Normalize.
func NormalizeText(date, description, amount, category string) (models.Transaction, error) {
	r, err := ParseText(date, description, amount, category)
	if err != nil {
		return models.Transaction{}, err
	}

	return Normalize(r)
}
