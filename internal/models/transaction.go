package models

import (
	"github.com/monthly-expense/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction is a single expense or income entry.
//
// Month and Year are derived from Date. They are set during normalization
// at the ingestion boundary and stored to allow querying by month.
type Transaction struct {
	DefaultModel
	Date        types.Date      `json:"date" gorm:"not null" example:"2023-01-15"`
	Description string          `json:"description" gorm:"not null" example:"Grocery shopping"`
	Amount      types.Amount    `json:"amount" gorm:"not null" swaggertype:"string" example:"125.5"`
	Category    string          `json:"category" gorm:"not null" example:"Groceries"`
	CategoryKey string          `json:"-" gorm:"not null;default:'';index"`
	Month       int             `json:"month" gorm:"not null;index:idx_transactions_month_year,priority:1" example:"1"`
	Year        int             `json:"year" gorm:"not null;index:idx_transactions_month_year,priority:2" example:"2023"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.CategoryKey = CategoryKey(t.Category)
	return nil
}

// Consistent reports if Month and Year match the Date.
func (t Transaction) Consistent() bool {
	return t.Month == t.Date.Month() && t.Year == t.Date.Year()
}
