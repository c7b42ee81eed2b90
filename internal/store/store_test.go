package store_test

import (
	"testing"

	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/store"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInsert() {
	t := suite.transaction("2023-01-15", "Grocery shopping", "125.50", "Groceries")
	t.ID = 42

	created, err := suite.store.Insert(suite.ctx, t)
	suite.Require().Nil(err)
	suite.Assert().NotZero(created.ID)
	suite.Assert().NotEqual(uint64(42), created.ID, "IDs are assigned by the store")

	found, err := suite.store.Get(suite.ctx, created.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, found.Month)
	suite.Assert().Equal(2023, found.Year)
	suite.Assert().True(found.Date.Equal(date("2023-01-15")))
	suite.assertDecimal("125.50", found.Amount.Decimal)
}

func (suite *TestSuiteStandard) TestInsertDistinctIDs() {
	a := suite.createTestTransaction("2023-01-15", "Same", "1", "Same")
	b := suite.createTestTransaction("2023-01-15", "Same", "1", "Same")
	suite.Assert().NotEqual(a.ID, b.ID)
}

func (suite *TestSuiteStandard) TestInsertInconsistent() {
	t := suite.transaction("2023-01-15", "Grocery shopping", "125.50", "Groceries")
	t.Month = 2

	_, err := suite.store.Insert(suite.ctx, t)
	suite.Assert().ErrorIs(err, store.ErrInconsistent)
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = suite.store.InsertMany(suite.ctx, []models.Transaction{t})
	suite.Assert().ErrorIs(err, store.ErrInconsistent)
}

func (suite *TestSuiteStandard) TestInsertMany() {
	created, err := suite.store.InsertMany(suite.ctx, []models.Transaction{
		suite.transaction("2023-01-15", "A", "1", "X"),
		suite.transaction("2023-01-16", "B", "2", "X"),
		suite.transaction("2023-01-17", "C", "3", "X"),
	})
	suite.Require().Nil(err)
	suite.Require().Len(created, 3)

	all, err := suite.store.FindAll(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(all, 3)
	for i, t := range all {
		suite.Assert().Equal(created[i].ID, t.ID, "Insertion order must be preserved")
	}
}

func (suite *TestSuiteStandard) TestInsertManyEmpty() {
	created, err := suite.store.InsertMany(suite.ctx, []models.Transaction{})
	suite.Assert().Nil(err)
	suite.Assert().Len(created, 0)
}

func (suite *TestSuiteStandard) TestInsertManyDatabaseError() {
	suite.CloseDB()

	_, err := suite.store.InsertMany(suite.ctx, []models.Transaction{
		suite.transaction("2023-01-15", "A", "1", "X"),
	})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestFindAllEmpty() {
	all, err := suite.store.FindAll(suite.ctx)
	suite.Assert().Nil(err)
	suite.Assert().NotNil(all)
	suite.Assert().Len(all, 0)
}

func (suite *TestSuiteStandard) TestFindByMonthYear() {
	suite.seed()

	tests := []struct {
		name  string
		month int
		year  int
		count int
	}{
		{"January", 1, 2023, 2},
		{"February", 2, 2023, 2},
		{"March", 3, 2023, 0},
		{"Other year", 1, 2022, 0},
		{"No month", 0, 2023, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			found, err := suite.store.FindByMonthYear(suite.ctx, tt.month, tt.year)
			suite.Assert().Nil(err)
			suite.Assert().Len(found, tt.count)
			for _, transaction := range found {
				suite.Assert().Equal(tt.month, transaction.Month)
				suite.Assert().Equal(tt.year, transaction.Year)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestFindByCategory() {
	suite.seed()

	tests := []struct {
		category string
		count    int
	}{
		{"Groceries", 2},
		{"groceries", 2},
		{"GROCERIES", 2},
		{"Grocer", 0},
		{"Housing", 1},
		{"", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.category, func(t *testing.T) {
			found, err := suite.store.FindByCategory(suite.ctx, tt.category)
			suite.Assert().Nil(err)
			suite.Assert().Len(found, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryUnicodeCase() {
	suite.createTestTransaction("2023-01-15", "Bakery", "10", "Épicerie")
	suite.createTestTransaction("2023-01-16", "Cheese", "5.50", "ÉPICERIE")

	for _, category := range []string{"Épicerie", "épicerie", "ÉPICERIE"} {
		suite.T().Run(category, func(t *testing.T) {
			found, err := suite.store.FindByCategory(suite.ctx, category)
			suite.Assert().Nil(err)
			suite.Assert().Len(found, 2)

			sum, err := suite.store.SumByCategory(suite.ctx, category)
			suite.Assert().Nil(err)
			suite.assertDecimal("15.50", sum)
		})
	}

	found, err := suite.store.Find(suite.ctx, store.Filter{Category: "  "})
	suite.Require().Nil(err)
	suite.Assert().Len(found, 0, "A blank category must not match every transaction")
}

func (suite *TestSuiteStandard) TestFindByDescription() {
	suite.seed()
	suite.createTestTransaction("2023-03-01", "100% juice_box", "2.50", "Groceries")

	tests := []struct {
		fragment string
		count    int
	}{
		{"shop", 1},
		{"SHOP", 1},
		{"e", 5},
		{"", 5},
		{"%", 1},
		{"_", 1},
		{"0%", 1},
		{"nothing", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.fragment, func(t *testing.T) {
			found, err := suite.store.FindByDescription(suite.ctx, tt.fragment)
			suite.Assert().Nil(err)
			suite.Assert().Len(found, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestFindCombined() {
	suite.seed()

	found, err := suite.store.Find(suite.ctx, store.Filter{Month: 2, Year: 2023, Category: "GROCERIES"})
	suite.Require().Nil(err)
	suite.Require().Len(found, 1)
	suite.Assert().Equal("Supermarket", found[0].Description)

	found, err = suite.store.Find(suite.ctx, store.Filter{Category: "groceries", Description: "market"})
	suite.Require().Nil(err)
	suite.Assert().Len(found, 1)
}

func (suite *TestSuiteStandard) TestGetNotFound() {
	_, err := suite.store.Get(suite.ctx, 1337)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestReplace() {
	t := suite.createTestTransaction("2023-01-15", "Grocery shopping", "125.50", "Groceries")

	replaced, err := suite.store.Replace(suite.ctx, t.ID, suite.transaction("2023-03-02", "Market", "10", "Food"))
	suite.Require().Nil(err)
	suite.Assert().Equal(t.ID, replaced.ID)

	found, err := suite.store.Get(suite.ctx, t.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(3, found.Month)
	suite.Assert().Equal(2023, found.Year)
	suite.Assert().Equal("Market", found.Description)
	suite.Assert().Equal("Food", found.Category)
	suite.assertDecimal("10", found.Amount.Decimal)
	suite.Assert().True(found.Consistent())

	_, err = suite.store.Replace(suite.ctx, 1337, suite.transaction("2023-03-02", "Market", "10", "Food"))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDelete() {
	t := suite.createTestTransaction("2023-01-15", "Grocery shopping", "125.50", "Groceries")

	suite.Require().Nil(suite.store.Delete(suite.ctx, t.ID))

	_, err := suite.store.Get(suite.ctx, t.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = suite.store.Delete(suite.ctx, t.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteAll() {
	suite.seed()
	suite.createTestCategory("Groceries")

	deleted, err := suite.store.DeleteAll(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(4), deleted)

	all, err := suite.store.FindAll(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(all, 0)

	total, err := suite.store.SumAll(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("0", total)

	categories, err := suite.store.ListCategories(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 1, "Categories must not be deleted")

	deleted, err = suite.store.DeleteAll(suite.ctx)
	suite.Assert().Nil(err)
	suite.Assert().Equal(int64(0), deleted)
}

func (suite *TestSuiteStandard) TestSums() {
	suite.seed()

	total, err := suite.store.SumAll(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("1465.75", total)

	january, err := suite.store.SumByMonthYear(suite.ctx, 1, 2023)
	suite.Require().Nil(err)
	suite.assertDecimal("205.50", january)

	groceries, err := suite.store.SumByCategory(suite.ctx, "GROCERIES")
	suite.Require().Nil(err)
	suite.assertDecimal("185.75", groceries)
}

func (suite *TestSuiteStandard) TestSumsEmpty() {
	tests := []struct {
		name string
		sum  func() (decimal.Decimal, error)
	}{
		{"All", func() (decimal.Decimal, error) { return suite.store.SumAll(suite.ctx) }},
		{"Month", func() (decimal.Decimal, error) { return suite.store.SumByMonthYear(suite.ctx, 7, 2023) }},
		{"Category", func() (decimal.Decimal, error) { return suite.store.SumByCategory(suite.ctx, "None") }},
		{"Empty category", func() (decimal.Decimal, error) { return suite.store.SumByCategory(suite.ctx, "") }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			sum, err := tt.sum()
			suite.Assert().Nil(err)
			suite.Assert().True(sum.IsZero(), "Sum is %s", sum)
		})
	}
}

// TestSumsExact verifies that sums do not suffer from floating point errors.
func (suite *TestSuiteStandard) TestSumsExact() {
	for i := 0; i < 10; i++ {
		suite.createTestTransaction("2023-01-15", "Ten cents", "0.10", "Coins")
	}
	suite.createTestTransaction("2023-01-15", "Refund", "-0.30", "Coins")

	total, err := suite.store.SumAll(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("0.70", total)
}

func (suite *TestSuiteStandard) TestLargeAmountsExact() {
	created := suite.createTestTransaction("2023-01-15", "Big", "123456789012.12345678", "Big")
	suite.createTestTransaction("2023-01-20", "Small", "0.00000001", "Big")

	found, err := suite.store.Get(suite.ctx, created.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("123456789012.12345678", found.Amount.Decimal)

	total, err := suite.store.SumAll(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("123456789012.12345679", total)

	total, err = suite.store.SumByMonthYear(suite.ctx, 1, 2023)
	suite.Require().Nil(err)
	suite.assertDecimal("123456789012.12345679", total)

	total, err = suite.store.SumByCategory(suite.ctx, "big")
	suite.Require().Nil(err)
	suite.assertDecimal("123456789012.12345679", total)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.store.Insert(suite.ctx, suite.transaction("2023-01-15", "A", "1", "X"))
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.FindAll(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.SumAll(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.DeleteAll(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.ListCategories(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
