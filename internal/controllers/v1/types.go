package v1

import (
	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/store"
)

type URIID struct {
	ID uint64 `uri:"id" binding:"required" example:"42"` // ID of the resource
}

type URIMonth struct {
	Year  int `uri:"year" binding:"required,min=1" example:"2023"`    // Year
	Month int `uri:"month" binding:"required,min=1,max=12" example:"1"` // Month of the year, 1-12
}

type URICategory struct {
	Name string `uri:"name" binding:"required" example:"groceries"` // Name of the category, case-insensitive
}

// repository returns the store for the current database connection.
func repository() *store.Store {
	return store.New(models.DB)
}
