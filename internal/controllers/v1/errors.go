package v1

import (
	"errors"
	"net/http"

	"github.com/monthly-expense/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the confirmation for the cleanup API call was incorrect"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Import errors
var (
	errNoFilePost    = errors.New("you must send a file to this endpoint")
	errWrongFileType = errors.New("this endpoint only supports files matching the pattern")
)

// Query errors
var (
	errMonthYearQuery = errors.New("the month and year query parameters must be set together")
	errMonthInvalid   = errors.New("the month must be between 1 and 12")
	errYearNotSet     = errors.New("the year query parameter must be set")
	errYearInvalid    = errors.New("the year must be a positive number")
)
