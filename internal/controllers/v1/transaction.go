package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/events"
	"github.com/monthly-expense/backend/internal/httputil"
	"github.com/monthly-expense/backend/internal/ingest"
	"github.com/monthly-expense/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
		r.DELETE("", DeleteTransactions)
	}

	// Import
	{
		r.OPTIONS("/import", OptionsTransactionImport)
		r.POST("/import", ImportTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PUT("/:id", ReplaceTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = repository().Get(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create transactions
// @Description	Creates transactions. Either all transactions are created or, if any of them is invalid, none.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]ingest.Record	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var records []ingest.Record

	// Bind data and return error if not possible
	err := httputil.BindData(c, &records)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	transactions, errs, ok := ingest.NormalizeAll(records)
	if !ok {
		status := http.StatusCreated
		r := TransactionCreateResponse{}

		var invalid int
		for _, err := range errs {
			if err != nil {
				invalid++
				status = r.appendError(err, status)
				continue
			}
			r.Data = append(r.Data, TransactionResponse{})
		}

		e := fmt.Sprintf("no transactions were created, %d of %d transactions are invalid", invalid, len(records))
		r.Error = &e
		c.JSON(status, r)
		return
	}

	created, err := repository().InsertMany(c, transactions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	r := TransactionCreateResponse{Data: make([]TransactionResponse, 0, len(created))}
	for _, t := range created {
		data := newTransaction(c, t)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	published(c, events.TransactionsCreated, created)
	IngestedTransactions.WithLabelValues(sourceAPI).Add(float64(len(created)))
	log.Info().Int("count", len(created)).Msg("created transactions")

	c.JSON(http.StatusCreated, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions in the order they were created
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			month		query	int		false	"Filter by month of the date, 1-12. Requires year"
// @Param			year		query	int		false	"Filter by year of the date. Requires month"
// @Param			category	query	string	false	"Filter by category, case-insensitive"
// @Param			description	query	string	false	"Filter by text in the description, case-insensitive"
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)
	f, err := filter.model(setFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions, err := repository().Find(c, f)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: newTransactions(c, transactions),
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := repository().Get(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Replace transaction
// @Description	Replaces all fields of an existing transaction. Month and year are derived from the new date.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID			true	"ID formatted as string"
// @Param			transaction	body		ingest.Record	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func ReplaceTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var record ingest.Record
	err = httputil.BindData(c, &record)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := ingest.Normalize(record)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err = repository().Replace(c, uri.ID, transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = repository().Delete(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete all transactions
// @Description	Permanently deletes all transactions. Categories are kept.
// @Tags			Transactions
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all transactions. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/transactions [delete]
func DeleteTransactions(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	deleted, err := repository().DeleteAll(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	e := events.New(events.TransactionsReset, nil)
	e.Count = int(deleted)
	events.Emit(c, e)
	log.Info().Int64("count", deleted).Msg("deleted all transactions")

	c.JSON(http.StatusNoContent, nil)
}

// published emits an event for the transactions. Nothing is emitted
// when no transactions were stored.
func published(c *gin.Context, t events.Type, transactions []models.Transaction) {
	if len(transactions) == 0 {
		return
	}

	ids := make([]uint64, 0, len(transactions))
	for _, transaction := range transactions {
		ids = append(ids, transaction.ID)
	}

	events.Emit(c, events.New(t, ids))
}
