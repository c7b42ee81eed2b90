package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/monthly-expense/backend/internal/controllers/v1"
	"github.com/monthly-expense/backend/internal/events"
	"github.com/monthly-expense/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestImport() {
	body, headers := test.LoadTestFile(suite.T(), "import/expenses.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Nil(response.Error)
	suite.Assert().Equal(4, response.Count)
	suite.Require().Len(response.Data, 4)

	dinner := response.Data[3]
	suite.Assert().Equal("Dinner, with friends", dinner.Description)
	suite.Assert().Equal("Restaurants", dinner.Category)
	suite.Assert().Equal(2, dinner.Month)
	suite.Assert().Equal(2023, dinner.Year)
	suite.Assert().True(decimal.RequireFromString("64.35").Equal(dinner.Amount.Decimal))

	recorded := suite.events.Events()
	suite.Require().Len(recorded, 1)
	suite.Assert().Equal(events.TransactionsImported, recorded[0].Type)
	suite.Assert().Equal(4, recorded[0].Count)
}

func (suite *TestSuiteStandard) TestImportReordered() {
	body, headers := test.LoadTestFile(suite.T(), "import/reordered.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Bakery", response.Data[0].Description)
	suite.Assert().Equal("groceries", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestImportEmptyFiles() {
	tests := []struct {
		name   string
		file   string
		status int
		count  int
	}{
		{"Header only", "import/header-only.csv", http.StatusCreated, 0},
		{"Empty file", "import/empty.csv", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.LoadTestFile(t, tt.file)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions/import", body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionImportResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.count, response.Count)
			assert.Len(t, response.Data, 0)
		})
	}
}

func (suite *TestSuiteStandard) TestImportErrors() {
	tests := []struct {
		name    string
		file    string
		message string
	}{
		{"Missing amount", "import/error-missing-amount.csv", "error in line 3 of the CSV: amount must be set"},
		{"Unparseable date", "import/error-date.csv", "error in line 2 of the CSV: date must be a date in the format yyyy-MM-dd, got \"15/01/2023\""},
		{"Unparseable amount", "import/error-amount.csv", "error in line 4 of the CSV: amount must be a decimal number, got \"twelve\""},
		{"Missing column", "import/error-missing-column.csv", "the CSV header is missing the column category"},
		{"Short row", "import/error-short-row.csv", "error in line 2 of the CSV: category must be set"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.LoadTestFile(t, tt.file)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions/import", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionImportResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.message)
			assert.Equal(t, 0, response.Count)
		})
	}

	// No transaction has been imported
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
	suite.Assert().Len(suite.events.Events(), 0)
}

func (suite *TestSuiteStandard) TestImportUpload() {
	tests := []struct {
		name     string
		fileName string
		message  string
	}{
		{"Wrong file type", "expenses.txt", "this endpoint only supports files matching the pattern: *.csv"},
		{"Upper case extension", "EXPENSES.CSV", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.MultipartString(t, tt.fileName, "Date,Description,Amount,Category\n2023-01-15,Rent,10,Housing\n")

			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions/import", body, headers)

			var response v1.TransactionImportResponse
			test.DecodeResponse(t, &r, &response)

			if tt.message == "" {
				test.AssertHTTPStatus(t, &r, http.StatusCreated)
				assert.Equal(t, 1, response.Count)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.message, *response.Error)
		})
	}

	suite.T().Run("No file", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions/import", "")
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

		var response v1.TransactionImportResponse
		test.DecodeResponse(t, &r, &response)
		assert.Equal(t, "you must send a file to this endpoint", *response.Error)
	})
}

func (suite *TestSuiteStandard) TestImportDatabaseError() {
	suite.CloseDB()

	body, headers := test.LoadTestFile(suite.T(), "import/expenses.csv")
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
