package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters.
type CategoryEditable struct {
	Name        string `json:"name" example:"Groceries"`                                     // Name of the category
	Description string `json:"description" example:"Food and household supplies" default:""` // Description of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3"`                           // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=Groceries"` // Transactions with this category
	Total        string `json:"total" example:"https://example.com/api/v1/summary/categories/Groceries"`         // Sum of the transactions with this category
}

// Category is a category as returned by the API.
type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%d", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.Name),
			Total:        fmt.Sprintf("%s/v1/summary/categories/%s", url, model.Name),
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                                 // Data for the category
	Error *string   `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                                 // List of categories
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name string `form:"name"` // By name, case-insensitive
}
