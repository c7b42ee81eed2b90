package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/events"
	"github.com/monthly-expense/backend/internal/httputil"
	"github.com/monthly-expense/backend/internal/ingest"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

const csvPattern = "*.csv"

// getUploadedFile returns the form file and handles potential errors.
//
// The file name must match the pattern, ignoring case.
func getUploadedFile(c *gin.Context, pattern string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !glob.Glob(pattern, strings.ToLower(formFile.Filename)) {
		return nil, fmt.Errorf("%w: %s", errWrongFileType, pattern)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/transactions/import [options]
func OptionsTransactionImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions
// @Description	Imports transactions from a CSV file with the columns Date, Description, Amount and Category.
// @Description	Column names are case-insensitive and can be in any order. Dates must be in the format yyyy-MM-dd.
// @Description	If any row is invalid, no transaction is imported.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionImportResponse
// @Failure		400		{object}	TransactionImportResponse
// @Failure		500		{object}	TransactionImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/transactions/import [post]
func ImportTransactions(c *gin.Context) {
	f, err := getUploadedFile(c, csvPattern)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{
			Error: &e,
		})
		return
	}
	defer f.Close()

	transactions, err := ingest.ParseCSV(f)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{
			Error: &e,
		})
		return
	}

	created, err := repository().InsertMany(c, transactions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{
			Error: &e,
		})
		return
	}

	published(c, events.TransactionsImported, created)
	IngestedTransactions.WithLabelValues(sourceCSV).Add(float64(len(created)))
	log.Info().Int("count", len(created)).Msg("imported transactions")

	c.JSON(http.StatusCreated, TransactionImportResponse{
		Data:  newTransactions(c, created),
		Count: len(created),
	})
}
