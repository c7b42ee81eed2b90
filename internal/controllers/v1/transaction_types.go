package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/store"
	"golang.org/x/exp/slices"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/42"` // The transaction itself
}

// Transaction is a transaction as returned by the API.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%d", url, model.ID),
		},
	}
}

func newTransactions(c *gin.Context, transactions []models.Transaction) []Transaction {
	// Marshal to an empty JSON array, not null
	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	return data
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                             // List of transactions
	Error *string       `json:"error" example:"the month and year query parameters must be set together"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                 // Data for the transaction
	Error *string      `json:"error" example:"amount must be set"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                                          // List of the created transactions or their respective error
	Error *string               `json:"error" example:"no transactions were created, 1 of 2 transactions are invalid"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionImportResponse struct {
	Data  []Transaction `json:"data"`                                                              // The imported transactions
	Count int           `json:"count" example:"12"`                                                // Number of imported transactions
	Error *string       `json:"error" example:"error in line 3 of the CSV: amount must be set"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Month       int    `form:"month"`       // By month of the date, requires year
	Year        int    `form:"year"`        // By year of the date, requires month
	Category    string `form:"category"`    // By category, case-insensitive
	Description string `form:"description"` // By text contained in the description, case-insensitive
}

func (f TransactionQueryFilter) model(setFields []string) (store.Filter, error) {
	month := slices.Contains(setFields, "Month")
	year := slices.Contains(setFields, "Year")

	if month != year {
		return store.Filter{}, errMonthYearQuery
	}

	if month && (f.Month < 1 || f.Month > 12) {
		return store.Filter{}, errMonthInvalid
	}

	if year && f.Year < 1 {
		return store.Filter{}, errYearInvalid
	}

	return store.Filter{
		Month:       f.Month,
		Year:        f.Year,
		Category:    f.Category,
		Description: f.Description,
	}, nil
}
