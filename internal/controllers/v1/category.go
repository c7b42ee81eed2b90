package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/httputil"
	"github.com/monthly-expense/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PUT("/:id", ReplaceCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = repository().GetCategory(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category. Names must be unique.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		409			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	category, err := repository().CreateCategory(c, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		Get categories
// @Description	Returns a list of categories ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			name	query		string	false	"Filter by name, case-insensitive"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &e,
		})
		return
	}

	var categories []models.Category
	if filter.Name != "" {
		category, err := repository().FindCategoryByName(c, filter.Name)
		if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
			e := err.Error()
			c.JSON(status(err), CategoryListResponse{
				Error: &e,
			})
			return
		}

		if err == nil {
			categories = append(categories, category)
		}
	} else {
		categories, err = repository().ListCategories(c)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CategoryListResponse{
				Error: &e,
			})
			return
		}
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	category, err := repository().GetCategory(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Replace category
// @Description	Replaces name and description of an existing category. Transactions are not changed.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		409			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func ReplaceCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	category, err := repository().ReplaceCategory(c, uri.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions keep their category label.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = repository().DeleteCategory(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
