// Package summary computes totals over the stored transactions.
//
// Nothing is cached, every call reads the current state of the store.
package summary

import (
	"context"

	"github.com/monthly-expense/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Source is the part of the store the Aggregator reads from.
type Source interface {
	FindAll(ctx context.Context) ([]models.Transaction, error)
	SumAll(ctx context.Context) (decimal.Decimal, error)
	SumByMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, category string) (decimal.Decimal, error)
}

type Aggregator struct {
	source Source
}

func New(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Total returns the sum of all transaction amounts.
func (a *Aggregator) Total(ctx context.Context) (decimal.Decimal, error) {
	return a.source.SumAll(ctx)
}

// MonthlyTotals returns the sum of amounts for every month of the year.
//
// The map always has exactly 12 entries with the keys 1 to 12. Months
// without transactions have a total of zero.
func (a *Aggregator) MonthlyTotals(ctx context.Context, year int) (map[int]decimal.Decimal, error) {
	totals := make(map[int]decimal.Decimal, 12)

	for month := 1; month <= 12; month++ {
		total, err := a.source.SumByMonthYear(ctx, month, year)
		if err != nil {
			return nil, err
		}
		totals[month] = total
	}

	log.Debug().Int("year", year).Msg("computed monthly totals")
	return totals, nil
}

// MonthTotal returns the sum of amounts in a single month.
func (a *Aggregator) MonthTotal(ctx context.Context, month, year int) (decimal.Decimal, error) {
	return a.source.SumByMonthYear(ctx, month, year)
}

// CategoryTotals returns the sum of amounts per category.
//
// Categories are grouped by models.CategoryKey, which is also the key
// in the map. Only categories with at least one transaction are contained.
func (a *Aggregator) CategoryTotals(ctx context.Context) (map[string]decimal.Decimal, error) {
	transactions, err := a.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		key := models.CategoryKey(t.Category)
		totals[key] = totals[key].Add(t.Amount.Decimal)
	}

	log.Debug().Int("categories", len(totals)).Msg("computed category totals")
	return totals, nil
}

// CategoryTotal returns the sum of amounts for the category, ignoring case.
func (a *Aggregator) CategoryTotal(ctx context.Context, category string) (decimal.Decimal, error) {
	return a.source.SumByCategory(ctx, category)
}
