// Package store persists transactions and categories.
//
// All operations take a context which is passed to the database. Errors are
// the sentinel errors of the models package: models.ErrResourceNotFound when
// a record does not exist, models.ErrGeneral when the database fails.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/monthly-expense/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInconsistent = fmt.Errorf("%w: month and year must match the date", models.ErrValidation)

type Store struct {
	db *gorm.DB
}

// New returns a Store using the database connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Filter selects transactions. Zero values do not filter.
type Filter struct {
	Month       int    // Month of the transaction date, 1-12. Only used together with Year
	Year        int    // Year of the transaction date. Only used together with Month
	Category    string // Exact category, compared by models.CategoryKey
	Description string // Substring of the description, case-insensitive
}

// likeEscape is the escape character for LIKE patterns. A backslash is not
// portable, MySQL treats it as an escape in string literals.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

func (f Filter) apply(tx *gorm.DB) *gorm.DB {
	if f.Month != 0 && f.Year != 0 {
		tx = tx.Where(&models.Transaction{Month: f.Month, Year: f.Year})
	}

	if f.Category != "" {
		tx = tx.Where("category_key = ?", models.CategoryKey(f.Category))
	}

	if f.Description != "" {
		tx = tx.Where("LOWER(description) LIKE LOWER(?) ESCAPE '"+likeEscape+"'", "%"+likeReplacer.Replace(f.Description)+"%")
	}

	return tx
}

func (s *Store) transactions(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Transaction{})
}

// Insert persists a single transaction and returns it with its new ID.
func (s *Store) Insert(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if !t.Consistent() {
		return models.Transaction{}, ErrInconsistent
	}

	t.ID = 0
	err := s.db.WithContext(ctx).Create(&t).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return t, nil
}

// InsertMany persists all transactions in a single database transaction.
// Either all transactions are stored or none is.
func (s *Store) InsertMany(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, error) {
	if len(transactions) == 0 {
		return []models.Transaction{}, nil
	}

	created := make([]models.Transaction, len(transactions))
	for i, t := range transactions {
		if !t.Consistent() {
			return []models.Transaction{}, fmt.Errorf("transaction %d: %w", i, ErrInconsistent)
		}

		t.ID = 0
		created[i] = t
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&created).Error
	})
	if err != nil {
		return []models.Transaction{}, models.Translate(err)
	}

	return created, nil
}

// Find returns all transactions matching the filter in insertion order.
func (s *Store) Find(ctx context.Context, f Filter) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := f.apply(s.transactions(ctx)).Order("id").Find(&transactions).Error
	if err != nil {
		return []models.Transaction{}, err
	}

	return transactions, nil
}

// FindAll returns all transactions in insertion order.
func (s *Store) FindAll(ctx context.Context) ([]models.Transaction, error) {
	return s.Find(ctx, Filter{})
}

func (s *Store) FindByMonthYear(ctx context.Context, month, year int) ([]models.Transaction, error) {
	if month == 0 || year == 0 {
		return []models.Transaction{}, nil
	}

	return s.Find(ctx, Filter{Month: month, Year: year})
}

func (s *Store) FindByCategory(ctx context.Context, category string) ([]models.Transaction, error) {
	if category == "" {
		return []models.Transaction{}, nil
	}

	return s.Find(ctx, Filter{Category: category})
}

// FindByDescription returns all transactions whose description contains
// the fragment, ignoring case. An empty fragment matches all transactions.
func (s *Store) FindByDescription(ctx context.Context, fragment string) ([]models.Transaction, error) {
	return s.Find(ctx, Filter{Description: fragment})
}

// Get returns the transaction with the ID.
func (s *Store) Get(ctx context.Context, id uint64) (models.Transaction, error) {
	var t models.Transaction

	err := s.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return t, nil
}

// Replace replaces all fields of the transaction with the ID.
func (s *Store) Replace(ctx context.Context, id uint64, t models.Transaction) (models.Transaction, error) {
	if !t.Consistent() {
		return models.Transaction{}, ErrInconsistent
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}

	t.DefaultModel = existing.DefaultModel
	err = s.db.WithContext(ctx).Save(&t).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return t, nil
}

// Delete deletes the transaction with the ID.
func (s *Store) Delete(ctx context.Context, id uint64) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&t).Error
}

// DeleteAll deletes all transactions atomically and returns how many
// were deleted. Categories are not affected.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("true").Delete(&models.Transaction{})
		deleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, models.Translate(err)
	}

	return deleted, nil
}

// sum adds up the amounts of all transactions selected by tx.
//
// The amounts are summed as decimals instead of using SUM() in the
// database, which uses floating point arithmetic for some drivers.
func sum(tx *gorm.DB) (decimal.Decimal, error) {
	var amounts []decimal.Decimal

	err := tx.Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	if len(amounts) == 0 {
		return decimal.Zero, nil
	}

	return decimal.Sum(amounts[0], amounts[1:]...), nil
}

// SumAll returns the sum of all amounts, zero if there are no transactions.
func (s *Store) SumAll(ctx context.Context) (decimal.Decimal, error) {
	return sum(s.transactions(ctx))
}

// SumByMonthYear returns the sum of all amounts in the month.
func (s *Store) SumByMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error) {
	if month == 0 || year == 0 {
		return decimal.Zero, nil
	}

	return sum(Filter{Month: month, Year: year}.apply(s.transactions(ctx)))
}

// SumByCategory returns the sum of all amounts for the category, ignoring case.
func (s *Store) SumByCategory(ctx context.Context, category string) (decimal.Decimal, error) {
	if category == "" {
		return decimal.Zero, nil
	}

	return sum(Filter{Category: category}.apply(s.transactions(ctx)))
}
