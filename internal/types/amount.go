package types

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Precision and scale of stored amounts.
const (
	AmountPrecision = 20
	AmountScale     = 8
)

var amountLimit = decimal.New(1, AmountPrecision-AmountScale)

// Amount is an exact decimal amount of money.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns the Amount for d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// Representable reports if d can be stored as an Amount without rounding,
// i.e. it has at most AmountScale fractional digits and AmountPrecision
// digits in total.
func Representable(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale)) && d.Abs().LessThan(amountLimit)
}

// GormDBDataType returns the column type for the dialect.
//
// SQLite converts DECIMAL columns to binary floating point numbers,
// so amounts are stored as text there.
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}

	return "DECIMAL(20,8)"
}
