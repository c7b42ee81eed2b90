package store_test

import (
	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/store"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	c, err := suite.store.CreateCategory(suite.ctx, models.Category{Name: " Groceries ", Description: "Food"})
	suite.Require().Nil(err)
	suite.Assert().NotZero(c.ID)
	suite.Assert().Equal("Groceries", c.Name)

	found, err := suite.store.GetCategory(suite.ctx, c.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Food", found.Description)
}

func (suite *TestSuiteStandard) TestCreateCategoryErrors() {
	_ = suite.createTestCategory("Groceries")

	_, err := suite.store.CreateCategory(suite.ctx, models.Category{Name: "Groceries"})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	_, err = suite.store.CreateCategory(suite.ctx, models.Category{Name: "  "})
	suite.Assert().ErrorIs(err, store.ErrCategoryNameEmpty)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

// TestCategoryNameCaseSensitiveUniqueness verifies that names only differing
// in case are distinct categories.
func (suite *TestSuiteStandard) TestCategoryNameCaseSensitiveUniqueness() {
	first := suite.createTestCategory("Food")
	_ = suite.createTestCategory("food")

	found, err := suite.store.FindCategoryByName(suite.ctx, "FOOD")
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, found.ID)
}

func (suite *TestSuiteStandard) TestFindCategoryByName() {
	c := suite.createTestCategory("Groceries")

	found, err := suite.store.FindCategoryByName(suite.ctx, "groceries")
	suite.Require().Nil(err)
	suite.Assert().Equal(c.ID, found.ID)

	_, err = suite.store.FindCategoryByName(suite.ctx, "Rent")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	e := suite.createTestCategory("Épicerie")
	found, err = suite.store.FindCategoryByName(suite.ctx, "ÉPICERIE")
	suite.Require().Nil(err)
	suite.Assert().Equal(e.ID, found.ID)
}

func (suite *TestSuiteStandard) TestListCategories() {
	_ = suite.createTestCategory("Utilities")
	_ = suite.createTestCategory("Groceries")
	_ = suite.createTestCategory("Rent")

	categories, err := suite.store.ListCategories(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 3)
	suite.Assert().Equal("Groceries", categories[0].Name)
	suite.Assert().Equal("Rent", categories[1].Name)
	suite.Assert().Equal("Utilities", categories[2].Name)
}

func (suite *TestSuiteStandard) TestReplaceCategory() {
	c := suite.createTestCategory("Groceries")
	_ = suite.createTestCategory("Rent")

	replaced, err := suite.store.ReplaceCategory(suite.ctx, c.ID, models.Category{Name: "Food", Description: "Everything edible"})
	suite.Require().Nil(err)
	suite.Assert().Equal(c.ID, replaced.ID)
	suite.Assert().Equal("Food", replaced.Name)

	_, err = suite.store.ReplaceCategory(suite.ctx, c.ID, models.Category{Name: "Rent"})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	_, err = suite.store.ReplaceCategory(suite.ctx, 1337, models.Category{Name: "Other"})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.ReplaceCategory(suite.ctx, c.ID, models.Category{})
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

// TestDeleteCategoryKeepsTransactions verifies that categories and
// transactions are only linked by name.
func (suite *TestSuiteStandard) TestDeleteCategoryKeepsTransactions() {
	c := suite.createTestCategory("Groceries")
	t := suite.createTestTransaction("2023-01-15", "Grocery shopping", "125.50", "Groceries")

	suite.Require().Nil(suite.store.DeleteCategory(suite.ctx, c.ID))

	_, err := suite.store.GetCategory(suite.ctx, c.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	found, err := suite.store.Get(suite.ctx, t.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Groceries", found.Category)

	err = suite.store.DeleteCategory(suite.ctx, c.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
