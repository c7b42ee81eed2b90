package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/monthly-expense/backend/internal/controllers/v1"
	"github.com/monthly-expense/backend/internal/ingest"
	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummaryTotal() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/total", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Total.IsZero(), "total of no transactions must be zero")

	seed(suite.T())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/total", "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.RequireFromString("1465.75").Equal(response.Data.Total), response.Data.Total.String())
}

// TestSummaryScenario follows a month of expenses from creation to the totals.
func (suite *TestSuiteStandard) TestSummaryScenario() {
	createTestTransactions(suite.T(), []ingest.Record{
		record("2023-01-15", "Grocery shopping", "125.50", "Groceries"),
		record("2023-01-20", "Electricity bill", "80.00", "Utilities"),
		record("2023-01-01", "Rent", "1200.00", "Housing"),
		record("2022-01-10", "Last year", "999.99", "Housing"),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/months?year=2023", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var months v1.MonthlyTotalsResponse
	test.DecodeResponse(suite.T(), &r, &months)

	suite.Require().Len(months.Data, 12)
	suite.Assert().True(decimal.RequireFromString("1405.50").Equal(months.Data[1]), months.Data[1].String())
	for month := 2; month <= 12; month++ {
		suite.Assert().True(months.Data[month].IsZero(), "month %d must be zero", month)
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/months/2023/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month v1.MonthTotalResponse
	test.DecodeResponse(suite.T(), &r, &month)
	suite.Assert().Equal(2023, month.Data.Year)
	suite.Assert().Equal(1, month.Data.Month)
	suite.Assert().True(decimal.RequireFromString("1405.50").Equal(month.Data.Total))
}

func (suite *TestSuiteStandard) TestSummaryMonthlyTotalsErrors() {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"Year not set", "/months", "the year query parameter must be set"},
		{"Year not a number", "/months?year=last", "the query string contains unparseable data"},
		{"Year negative", "/months?year=-1", "the year must be a positive number"},
		{"Year negative in path", "/months/-1/1", ""},
		{"Month out of range", "/months/2023/13", ""},
		{"Month zero", "/months/2023/0", ""},
		{"Month not a number", "/months/2023/january", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/summary"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response struct {
				Error *string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryCategories() {
	seed(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryTotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().True(decimal.RequireFromString("185.75").Equal(response.Data["groceries"]))
	suite.Assert().True(decimal.RequireFromString("80").Equal(response.Data["utilities"]))
	suite.Assert().True(decimal.RequireFromString("1200").Equal(response.Data["housing"]))
	suite.Assert().NotContains(response.Data, "Groceries")

	tests := []struct {
		name     string
		category string
		total    string
	}{
		{"Lower case", "groceries", "185.75"},
		{"Mixed case", "GroCeries", "185.75"},
		{"No transactions", "Travel", "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/summary/categories/"+tt.category, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryTotalResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.category, response.Data.Category)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(response.Data.Total), response.Data.Total.String())
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryCategoriesUnicode() {
	createTestTransactions(suite.T(), []ingest.Record{
		record("2023-01-15", "Bakery", "10", "Épicerie"),
		record("2023-01-16", "Cheese", "5.50", "ÉPICERIE"),
		record("2023-01-17", "Rent", "1200", "Housing"),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals v1.CategoryTotalsResponse
	test.DecodeResponse(suite.T(), &r, &totals)
	suite.Require().Len(totals.Data, 2)
	suite.Assert().True(decimal.RequireFromString("15.50").Equal(totals.Data["épicerie"]), totals.Data["épicerie"].String())

	// Every key of the category totals finds its transactions and total
	for key, total := range totals.Data {
		suite.T().Run(key, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/summary/categories/"+url.PathEscape(key), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryTotalResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, total.Equal(response.Data.Total), response.Data.Total.String())

			r = test.Request(t, http.MethodGet, "http://example.com/v1/transactions?category="+url.QueryEscape(key), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)

			sum := decimal.Zero
			for _, transaction := range list.Data {
				sum = sum.Add(transaction.Amount.Decimal)
			}
			assert.True(t, total.Equal(sum), sum.String())
		})
	}
}

// TestSummaryConsistency verifies that the sum of all category totals
// and the sum of all month totals equal the overall total.
func (suite *TestSuiteStandard) TestSummaryConsistency() {
	seed(suite.T())

	var total v1.TotalResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/total", "")
	test.DecodeResponse(suite.T(), &r, &total)

	var categories v1.CategoryTotalsResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/categories", "")
	test.DecodeResponse(suite.T(), &r, &categories)

	var months v1.MonthlyTotalsResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary/months?year=2023", "")
	test.DecodeResponse(suite.T(), &r, &months)

	categorySum := decimal.Zero
	for _, v := range categories.Data {
		categorySum = categorySum.Add(v)
	}

	monthSum := decimal.Zero
	for _, v := range months.Data {
		monthSum = monthSum.Add(v)
	}

	suite.Assert().True(total.Data.Total.Equal(categorySum))
	suite.Assert().True(total.Data.Total.Equal(monthSum))
}

func (suite *TestSuiteStandard) TestSummaryLinks() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("http://example.com/v1/summary/total", response.Links.Total)
	suite.Assert().Equal("http://example.com/v1/summary/categories", response.Links.Categories)
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	for _, path := range []string{"", "/total", "/months", "/months/2023/1", "/categories", "/categories/groceries"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/summary"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryDatabaseError() {
	for _, path := range []string{"/total", "/months?year=2023", "/months/2023/1", "/categories", "/categories/groceries"} {
		suite.T().Run(path, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, http.MethodGet, "http://example.com/v1/summary"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

			var response struct {
				Error *string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, models.ErrGeneral.Error(), *response.Error)
		})
	}
}
