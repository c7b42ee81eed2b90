package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/httputil"
	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/summary"
	"github.com/shopspring/decimal"
)

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSummary)
		r.GET("", GetSummary)
	}

	{
		r.OPTIONS("/total", OptionsSummaryTotal)
		r.GET("/total", GetTotal)
	}

	{
		r.OPTIONS("/months", OptionsSummaryMonths)
		r.GET("/months", GetMonthlyTotals)
		r.OPTIONS("/months/:year/:month", OptionsSummaryMonth)
		r.GET("/months/:year/:month", GetMonthTotal)
	}

	{
		r.OPTIONS("/categories", OptionsSummaryCategories)
		r.GET("/categories", GetCategoryTotals)
		r.OPTIONS("/categories/:name", OptionsSummaryCategory)
		r.GET("/categories/:name", GetCategoryTotal)
	}
}

func aggregator() *summary.Aggregator {
	return summary.New(repository())
}

type SummaryLinks struct {
	Total      string `json:"total" example:"https://example.com/api/v1/summary/total"`                     // Sum of all transactions
	Months     string `json:"months" example:"https://example.com/api/v1/summary/months?year=2023"`         // Sums per month for a year, the year must be set
	Categories string `json:"categories" example:"https://example.com/api/v1/summary/categories"`           // Sums per category
}

type SummaryResponse struct {
	Links SummaryLinks `json:"links"`
}

type Total struct {
	Total decimal.Decimal `json:"total" example:"1325.5" swaggertype:"string"` // Sum of the amounts
}

type TotalResponse struct {
	Data  *Total  `json:"data"`  // The total
	Error *string `json:"error"` // The error, if any occurred
}

type MonthTotal struct {
	Year  int             `json:"year" example:"2023"`                         // Year
	Month int             `json:"month" example:"1"`                           // Month of the year
	Total decimal.Decimal `json:"total" example:"1325.5" swaggertype:"string"` // Sum of the amounts in the month
}

type MonthTotalResponse struct {
	Data  *MonthTotal `json:"data"`  // The total for the month
	Error *string     `json:"error"` // The error, if any occurred
}

type MonthlyTotalsResponse struct {
	Data  map[int]decimal.Decimal `json:"data" swaggertype:"object,string"`                      // Sums for the months 1 to 12. Always contains all months
	Error *string                 `json:"error" example:"the year query parameter must be set"` // The error, if any occurred
}

type CategoryTotal struct {
	Category string          `json:"category" example:"groceries"`                // Name of the category as requested
	Total    decimal.Decimal `json:"total" example:"125.5" swaggertype:"string"` // Sum of the amounts for the category
}

type CategoryTotalResponse struct {
	Data  *CategoryTotal `json:"data"`  // The total for the category
	Error *string        `json:"error"` // The error, if any occurred
}

type CategoryTotalsResponse struct {
	Data  map[string]decimal.Decimal `json:"data" swaggertype:"object,string"` // Sums per lowercased category name. Only contains categories with transactions
	Error *string                    `json:"error"`                            // The error, if any occurred
}

type QueryYear struct {
	Year int `form:"year" example:"2023"` // The year
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Summary
// @Description	Returns links to all summaries
// @Tags			Summary
// @Success		200	{object}	SummaryResponse
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1/summary"

	c.JSON(http.StatusOK, SummaryResponse{
		Links: SummaryLinks{
			Total:      url + "/total",
			Months:     url + "/months?year=YEAR",
			Categories: url + "/categories",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary/total [options]
func OptionsSummaryTotal(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Total
// @Description	Returns the sum of the amounts of all transactions
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	TotalResponse
// @Failure		500	{object}	TotalResponse
// @Router			/v1/summary/total [get]
func GetTotal(c *gin.Context) {
	total, err := aggregator().Total(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TotalResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TotalResponse{Data: &Total{Total: total}})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary/months [options]
func OptionsSummaryMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly totals
// @Description	Returns the sum of the amounts for every month of the year. Months without transactions have a sum of 0.
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	MonthlyTotalsResponse
// @Failure		400		{object}	MonthlyTotalsResponse
// @Failure		500		{object}	MonthlyTotalsResponse
// @Param			year	query		int	true	"The year"
// @Router			/v1/summary/months [get]
func GetMonthlyTotals(c *gin.Context) {
	var query QueryYear
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, MonthlyTotalsResponse{
			Error: &e,
		})
		return
	}

	if query.Year == 0 {
		e := errYearNotSet.Error()
		c.JSON(http.StatusBadRequest, MonthlyTotalsResponse{
			Error: &e,
		})
		return
	}

	if query.Year < 0 {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyTotalsResponse{
			Error: &e,
		})
		return
	}

	totals, err := aggregator().MonthlyTotals(c, query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyTotalsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyTotalsResponse{Data: totals})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Param			year	path	int	true	"The year"
// @Param			month	path	int	true	"The month, 1-12"
// @Router			/v1/summary/months/{year}/{month} [options]
func OptionsSummaryMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Month total
// @Description	Returns the sum of the amounts of all transactions in the month
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	MonthTotalResponse
// @Failure		400		{object}	MonthTotalResponse
// @Failure		500		{object}	MonthTotalResponse
// @Param			year	path		int	true	"The year"
// @Param			month	path		int	true	"The month, 1-12"
// @Router			/v1/summary/months/{year}/{month} [get]
func GetMonthTotal(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthTotalResponse{
			Error: &e,
		})
		return
	}

	total, err := aggregator().MonthTotal(c, uri.Month, uri.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthTotalResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthTotalResponse{Data: &MonthTotal{
		Year:  uri.Year,
		Month: uri.Month,
		Total: total,
	}})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary/categories [options]
func OptionsSummaryCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Category totals
// @Description	Returns the sum of the amounts per category. Category names are lowercased, only categories with transactions are contained.
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	CategoryTotalsResponse
// @Failure		500	{object}	CategoryTotalsResponse
// @Router			/v1/summary/categories [get]
func GetCategoryTotals(c *gin.Context) {
	totals, err := aggregator().CategoryTotals(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTotalsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryTotalsResponse{Data: totals})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Param			name	path	string	true	"Name of the category"
// @Router			/v1/summary/categories/{name} [options]
func OptionsSummaryCategory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Category total
// @Description	Returns the sum of the amounts for a category, ignoring case. The sum is 0 if there are no transactions for the category.
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	CategoryTotalResponse
// @Failure		400		{object}	CategoryTotalResponse
// @Failure		500		{object}	CategoryTotalResponse
// @Param			name	path		string	true	"Name of the category"
// @Router			/v1/summary/categories/{name} [get]
func GetCategoryTotal(c *gin.Context) {
	var uri URICategory
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTotalResponse{
			Error: &e,
		})
		return
	}

	total, err := aggregator().CategoryTotal(c, uri.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTotalResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryTotalResponse{Data: &CategoryTotal{
		Category: uri.Name,
		Total:    total,
	}})
}
