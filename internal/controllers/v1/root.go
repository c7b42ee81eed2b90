package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/httputil"
	"github.com/monthly-expense/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`            // URL of category list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`        // URL of transaction list endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/transactions/import"`       // URL of CSV import endpoint
	Summary      string `json:"summary" example:"https://example.com/api/v1/summary"`                  // URL of the summary endpoint
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterSummaryRoutes(r.Group("/summary"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Import:       url + "/v1/transactions/import",
			Summary:      url + "/v1/summary",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
